// Package config loads the dictforge configuration from dictforge.yml
// with environment variable overrides.
package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/dictforge/dictforge/internal/export"
)

// Config represents the dictforge configuration
type Config struct {
	Dictionary string          `mapstructure:"dictionary"`
	Templates  TemplatesConfig `mapstructure:"templates"`
	SQL        SQLConfig       `mapstructure:"sql"`
}

// TemplatesConfig configures the template store backend
type TemplatesConfig struct {
	// Driver selects the backend: "yaml" (directory of files) or
	// "sqlite" (single-file library)
	Driver string `mapstructure:"driver"`
	// Dir is the template directory for the yaml driver
	Dir string `mapstructure:"dir"`
	// Path is the database file for the sqlite driver
	Path string `mapstructure:"path"`
}

// SQLConfig configures the SQL DDL export
type SQLConfig struct {
	Dialect string `mapstructure:"dialect"`
	Table   string `mapstructure:"table"`
}

// Load loads the configuration from dictforge.yml or dictforge.yaml
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("dictionary", "dictionary.yaml")
	v.SetDefault("templates.driver", "yaml")
	v.SetDefault("templates.dir", "templates")
	v.SetDefault("templates.path", "templates.db")
	v.SetDefault("sql.dialect", "postgres")
	v.SetDefault("sql.table", export.DefaultTable)

	v.SetConfigName("dictforge")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvPrefix("DICTFORGE")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found - use defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// validateConfig checks the configuration for errors
func validateConfig(config *Config) error {
	switch config.Templates.Driver {
	case "yaml", "sqlite":
	default:
		return fmt.Errorf("invalid templates.driver %q (expected yaml or sqlite)", config.Templates.Driver)
	}

	if _, err := export.ParseDialect(config.SQL.Dialect); err != nil {
		return fmt.Errorf("invalid sql.dialect: %w", err)
	}

	return nil
}
