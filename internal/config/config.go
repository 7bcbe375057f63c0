package config

import (
	"strings"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server      ServerConfig      `yaml:"server"`
	Database    DatabaseConfig    `yaml:"database"`
	Auth        AuthConfig        `yaml:"auth"`
	Log         LogConfig         `yaml:"log"`
	CORS        CORSConfig        `yaml:"cors"`
	Storage     StorageConfig     `yaml:"storage"`
	Payment     PaymentConfig     `yaml:"payment"`
	RateLimit   RateLimitConfig   `yaml:"rate_limit"`
	Maintenance MaintenanceConfig `yaml:"maintenance"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type,X-Request-Id"`
	ExposedHeaders   string `yaml:"exposed_headers"   env:"CORS_EXPOSED_HEADERS"   env-default:"X-Request-Id,Retry-After"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	// MaxBodyBytes caps request bodies; submissions carry base64 work files.
	MaxBodyBytes int64 `yaml:"max_body_bytes" env:"SERVER_MAX_BODY_BYTES" env-default:"20971520"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"2"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	MigrateOnStart  bool          `yaml:"migrate_on_start"   env:"DATABASE_MIGRATE_ON_START"   env-default:"true"`

	// ApplicationName shows up in pg_stat_activity.
	ApplicationName  string        `yaml:"application_name"  env:"DATABASE_APPLICATION_NAME"  env-default:"artcontest"`
	StatementTimeout time.Duration `yaml:"statement_timeout" env:"DATABASE_STATEMENT_TIMEOUT" env-default:"30s"`
}

// AuthConfig holds admin authentication settings.
type AuthConfig struct {
	JWTSecret      string        `yaml:"jwt_secret"       env:"AUTH_JWT_SECRET"       env-required:"true"`
	JWTIssuer      string        `yaml:"jwt_issuer"       env:"AUTH_JWT_ISSUER"       env-default:"artcontest"`
	AccessTokenTTL time.Duration `yaml:"access_token_ttl" env:"AUTH_ACCESS_TOKEN_TTL" env-default:"12h"`
	AdminLogin     string        `yaml:"admin_login"      env:"AUTH_ADMIN_LOGIN"      env-default:"admin"`
	// AdminPasswordHash is a bcrypt hash; generate it with cmd/hashpass.
	AdminPasswordHash string `yaml:"admin_password_hash" env:"AUTH_ADMIN_PASSWORD_HASH" env-required:"true"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// StorageConfig holds S3-compatible object storage settings for uploaded files.
type StorageConfig struct {
	Endpoint      string `yaml:"endpoint"        env:"STORAGE_ENDPOINT"        env-required:"true"`
	Region        string `yaml:"region"          env:"STORAGE_REGION"          env-default:"ru-central1"`
	Bucket        string `yaml:"bucket"          env:"STORAGE_BUCKET"          env-required:"true"`
	AccessKey     string `yaml:"access_key"      env:"STORAGE_ACCESS_KEY"`
	SecretKey     string `yaml:"secret_key"      env:"STORAGE_SECRET_KEY"`
	UseSSL        bool   `yaml:"use_ssl"         env:"STORAGE_USE_SSL"         env-default:"true"`
	PublicBaseURL string `yaml:"public_base_url" env:"STORAGE_PUBLIC_BASE_URL"`
}

// PublicURL returns the base URL uploaded objects are served from.
func (c StorageConfig) PublicURL() string {
	if c.PublicBaseURL != "" {
		return strings.TrimRight(c.PublicBaseURL, "/")
	}
	scheme := "http"
	if c.UseSSL {
		scheme = "https"
	}
	return scheme + "://" + c.Endpoint + "/" + c.Bucket
}

// PaymentConfig holds payment gateway settings.
type PaymentConfig struct {
	// Provider is "yookassa" or "stub".
	Provider  string        `yaml:"provider"   env:"PAYMENT_PROVIDER"   env-default:"stub"`
	APIURL    string        `yaml:"api_url"    env:"PAYMENT_API_URL"    env-default:"https://api.yookassa.ru/v3"`
	ShopID    string        `yaml:"shop_id"    env:"PAYMENT_SHOP_ID"`
	SecretKey string        `yaml:"secret_key" env:"PAYMENT_SECRET_KEY"`
	ReturnURL string        `yaml:"return_url" env:"PAYMENT_RETURN_URL" env-default:"http://localhost:3000/payment-success"`
	Currency  string        `yaml:"currency"   env:"PAYMENT_CURRENCY"   env-default:"RUB"`
	Timeout   time.Duration `yaml:"timeout"    env:"PAYMENT_TIMEOUT"    env-default:"15s"`
}

// RateLimitConfig limits public write endpoints per client IP.
type RateLimitConfig struct {
	SubmitPerMinute int           `yaml:"submit_per_minute" env:"RATE_LIMIT_SUBMIT_PER_MINUTE" env-default:"10"`
	LoginPerMinute  int           `yaml:"login_per_minute"  env:"RATE_LIMIT_LOGIN_PER_MINUTE"  env-default:"5"`
	CleanupInterval time.Duration `yaml:"cleanup_interval"  env:"RATE_LIMIT_CLEANUP_INTERVAL"  env-default:"5m"`
}

// MaintenanceConfig configures the offline maintenance commands.
type MaintenanceConfig struct {
	// TrashRetentionDays is how long a trashed application survives before
	// cleanup removes it for good.
	TrashRetentionDays int `yaml:"trash_retention_days" env:"MAINTENANCE_TRASH_RETENTION_DAYS" env-default:"90"`
	// PendingPaymentMaxAge bounds which pending payments reconcile re-checks.
	PendingPaymentMaxAge time.Duration `yaml:"pending_payment_max_age" env:"MAINTENANCE_PENDING_PAYMENT_MAX_AGE" env-default:"72h"`
}
