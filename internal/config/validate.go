package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if strings.TrimSpace(c.Auth.AdminLogin) == "" {
		return fmt.Errorf("auth.admin_login must not be empty")
	}
	if !strings.HasPrefix(c.Auth.AdminPasswordHash, "$2") {
		return fmt.Errorf("auth.admin_password_hash must be a bcrypt hash")
	}

	if c.Database.StatementTimeout < 0 {
		return fmt.Errorf("database.statement_timeout must not be negative")
	}

	if err := c.Payment.validate(); err != nil {
		return fmt.Errorf("payment: %w", err)
	}

	if c.RateLimit.SubmitPerMinute <= 0 || c.RateLimit.LoginPerMinute <= 0 {
		return fmt.Errorf("rate_limit: per-minute limits must be > 0")
	}

	if c.Maintenance.TrashRetentionDays < 1 {
		return fmt.Errorf("maintenance.trash_retention_days must be >= 1")
	}

	return nil
}

func (p *PaymentConfig) validate() error {
	switch p.Provider {
	case "stub":
	case "yookassa":
		if p.ShopID == "" || p.SecretKey == "" {
			return fmt.Errorf("shop_id and secret_key are required for yookassa")
		}
	default:
		return fmt.Errorf("unknown provider %q", p.Provider)
	}
	if p.ReturnURL == "" {
		return fmt.Errorf("return_url is required")
	}
	if p.Currency == "" {
		return fmt.Errorf("currency is required")
	}
	return nil
}
