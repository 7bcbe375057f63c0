package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// CLIConfig configures the contestctl admin console.
type CLIConfig struct {
	APIURL   string        `env:"CONTESTCTL_API_URL"  env-default:"http://localhost:8080"`
	Token    string        `env:"CONTESTCTL_TOKEN"`
	Timeout  time.Duration `env:"CONTESTCTL_TIMEOUT"  env-default:"30s"`
	TimeZone string        `env:"CONTESTCTL_TZ"       env-default:"Local"`
	Log      LogConfig
}

// Location resolves TimeZone for calendar-day filters.
func (c CLIConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("config: timezone %q: %w", c.TimeZone, err)
	}
	return loc, nil
}

// LoadCLI reads optional dotenv files and then the process environment.
// Missing dotenv files are skipped; variables already set are not overridden.
func LoadCLI(envFiles ...string) (*CLIConfig, error) {
	if err := loadDotEnv(envFiles...); err != nil {
		return nil, err
	}

	var cfg CLIConfig
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}
	if cfg.APIURL == "" {
		return nil, fmt.Errorf("config: CONTESTCTL_API_URL must not be empty")
	}
	return &cfg, nil
}
