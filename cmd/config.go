package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/Rhymond/go-money"
	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix prefixes the environment variables read by kvt.
const EnvPrefix = "KVT"

// Config is the kvt configuration, read from KVT_* environment variables
// and overridden by the global flags.
type Config struct {
	Data     string `envconfig:"DATA" default:"receipts.jsonl" validate:"required"`
	Currency string `envconfig:"CURRENCY" default:"SEK" validate:"required,len=3,uppercase"`
	Top      int    `envconfig:"TOP" default:"10" validate:"gte=0"`
	Verbose  bool   `envconfig:"VERBOSE"`
}

// LoadConfig reads the configuration from the environment.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}
	return &cfg, nil
}

// Validate checks field constraints and that the currency is known.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	if money.GetCurrency(c.Currency) == nil {
		return fmt.Errorf("config validation failed: unknown currency %q", c.Currency)
	}
	return nil
}

// Env returns the configuration as KVT_* variables, in the form of os.Environ.
func (c *Config) Env() []string {
	return []string{
		EnvData + "=" + c.Data,
		EnvCurrency + "=" + c.Currency,
		fmt.Sprintf("%s=%d", EnvTop, c.Top),
		fmt.Sprintf("%s=%t", EnvVerbose, c.Verbose),
	}
}

// Logger returns a text logger on stderr, at debug level when verbose.
func (c *Config) Logger() *slog.Logger {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
