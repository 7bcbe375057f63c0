package seeder

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds seeder pipeline settings.
type Config struct {
	FixturePath string   `yaml:"fixture_path" env:"SEEDER_FIXTURE_PATH"`
	Phases      []string `yaml:"phases"       env:"SEEDER_PHASES"       env-separator:","`
	DryRun      bool     `yaml:"dry_run"      env:"SEEDER_DRY_RUN"`
}

// Validate checks that a fixture is set and that every listed phase exists.
func (c *Config) Validate() error {
	if c.FixturePath == "" {
		return fmt.Errorf("seeder config: fixture_path is required")
	}
	for _, ph := range c.Phases {
		if !knownPhase(ph) {
			return fmt.Errorf("seeder config: unknown phase %q", ph)
		}
	}
	return nil
}

// LoadConfig reads seeder configuration from a YAML file and environment
// variables. ENV wins over YAML. An empty path reads the environment only.
func LoadConfig(path string) (*Config, error) {
	var cfg Config

	if path == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("seeder config: read env: %w", err)
		}
		return &cfg, nil
	}

	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("seeder config: file %s: %w", path, err)
	}
	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, fmt.Errorf("seeder config: read %s: %w", path, err)
	}
	return &cfg, nil
}

func knownPhase(name string) bool {
	for _, ph := range allPhases {
		if ph == name {
			return true
		}
	}
	return false
}
