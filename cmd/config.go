package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds the application settings.
type Config struct {
	Store       StoreConfig `yaml:"store"`
	Currency    string      `yaml:"currency" default:"USD" validate:"len=3,uppercase"`
	Granularity string      `yaml:"granularity" default:"month" validate:"oneof=day week month year"`
	Log         LogConfig   `yaml:"log"`
}

// StoreConfig locates the data store.
type StoreConfig struct {
	Kind string `yaml:"kind" default:"jsonl" validate:"oneof=jsonl sqlite"`
	Path string `yaml:"path" default:".itk" validate:"required"`
}

// LogConfig sets up logging.
type LogConfig struct {
	Level  string `yaml:"level" default:"warn" validate:"oneof=trace debug info warn error disabled"`
	Format string `yaml:"format" default:"console" validate:"oneof=console json"`
}

// LoadConfig reads the configuration.
//
// Values come, by increasing priority, from the defaults, the YAML file at path
// (optional), the environment (a .env file is read if present) and the
// command line flags.
func LoadConfig(path string) (*Config, error) {
	var c Config
	if err := defaults.Set(&c); err != nil {
		return nil, fmt.Errorf("config defaults: %w", err)
	}

	b, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// no file, defaults it is.
	case err != nil:
		return nil, fmt.Errorf("read config: %w", err)
	default:
		if err := yaml.Unmarshal(b, &c); err != nil {
			return nil, fmt.Errorf("parse config %q: %w", path, err)
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("read .env: %w", err)
	}
	c.applyEnv()

	if *storePath != "" {
		c.Store.Path = *storePath
	}
	if *storeKind != "" {
		c.Store.Kind = *storeKind
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return &c, nil
}

// applyEnv overrides the configuration with environment variables.
func (c *Config) applyEnv() {
	if v := os.Getenv("ITK_STORE"); v != "" {
		c.Store.Path = v
	}
	if v := os.Getenv("ITK_STORE_KIND"); v != "" {
		c.Store.Kind = v
	}
	if v := os.Getenv("ITK_CURRENCY"); v != "" {
		c.Currency = v
	}
	if v := os.Getenv("ITK_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks if the configuration is valid.
func (c *Config) Validate() error { return validate.Struct(c) }
