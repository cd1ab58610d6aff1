package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
)

const envPrefix = "FIELDCHECK_"

// Config holds the settings of the fieldcheck command.
type Config struct {
	// PasswordMinLength is the minimum number of characters of a password.
	PasswordMinLength int `env:"PASSWORD_MIN_LENGTH" envDefault:"6"`
	// CodeMinLength is the minimum number of digits of a confirmation code.
	CodeMinLength int `env:"CODE_MIN_LENGTH" envDefault:"4"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	// LogFile receives JSON logs; "-" means stderr. The form owns the
	// terminal, so logs go to a file by default.
	LogFile string `env:"LOG_FILE" envDefault:"fieldcheck.log"`

	// PrintSchema prints the form's OpenAPI schema instead of running the form.
	PrintSchema bool `env:"PRINT_SCHEMA" envDefault:"false"`
}

// Load reads the configuration from the environment and validates it.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Level returns the parsed log level.
func (c *Config) Level() zerolog.Level {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}

func parseEnv(cfg *Config) error {
	err := env.ParseWithOptions(cfg, env.Options{Prefix: envPrefix})
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}

func (c *Config) validate() error {
	if c.PasswordMinLength < 1 {
		return fmt.Errorf("%w: password min length %d", ErrInvalidLengthConfigs, c.PasswordMinLength)
	}
	if c.CodeMinLength < 1 {
		return fmt.Errorf("%w: code min length %d", ErrInvalidLengthConfigs, c.CodeMinLength)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidLogConfigs, err)
	}
	return nil
}
