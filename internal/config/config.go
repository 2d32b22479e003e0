package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"

	"proto-demo/pkg/logger"
)

// Config holds all configuration for the application
type Config struct {
	App    AppConfig
	Logger LoggerConfig
}

// AppConfig holds configuration for the application itself
type AppConfig struct {
	Environment string `mapstructure:"APP_ENV"`
}

// LoggerConfig holds configuration for the logger
type LoggerConfig struct {
	Level          string `mapstructure:"LOG_LEVEL"`
	Format         string `mapstructure:"LOG_FORMAT"`
	OutputPath     string `mapstructure:"LOG_OUTPUT_PATH"`
	EnableSampling bool   `mapstructure:"LOG_ENABLE_SAMPLING"`
	ServiceName    string `mapstructure:"SERVICE_NAME"`
	ServiceVersion string `mapstructure:"SERVICE_VERSION"`
}

// LoadConfig reads configuration from an app.env file in path and from
// environment variables. A missing file is not an error.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()

	v.AddConfigPath(path)
	v.SetConfigName("app") // Look for app.env
	v.SetConfigType("env")

	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Defaults depend on APP_ENV, which may come from the file
	setDefaults(v)

	return fromViper(v), nil
}

// Default returns the development configuration used when the loaded one
// cannot be read or fails validation.
func Default() *Config {
	v := viper.New()
	setDefaults(v)
	return fromViper(v)
}

func fromViper(v *viper.Viper) *Config {
	var config Config

	config.App.Environment = v.GetString("APP_ENV")

	config.Logger.Level = v.GetString("LOG_LEVEL")
	config.Logger.Format = v.GetString("LOG_FORMAT")
	config.Logger.OutputPath = v.GetString("LOG_OUTPUT_PATH")
	config.Logger.EnableSampling = v.GetBool("LOG_ENABLE_SAMPLING")
	config.Logger.ServiceName = v.GetString("SERVICE_NAME")
	config.Logger.ServiceVersion = v.GetString("SERVICE_VERSION")

	return &config
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_ENV", "development")

	if v.GetString("APP_ENV") == "production" {
		v.SetDefault("LOG_LEVEL", "info")
		v.SetDefault("LOG_FORMAT", "json")
		v.SetDefault("LOG_ENABLE_SAMPLING", true)
	} else {
		v.SetDefault("LOG_LEVEL", "warn")
		v.SetDefault("LOG_FORMAT", "console")
		v.SetDefault("LOG_ENABLE_SAMPLING", false)
	}
	v.SetDefault("LOG_OUTPUT_PATH", "stderr")
	v.SetDefault("SERVICE_NAME", "proto-demo")
	v.SetDefault("SERVICE_VERSION", "1.0.0")
}

// Validate checks the loaded configuration
func (c *Config) Validate() error {
	if !logger.ValidLevel(c.Logger.Level) {
		return fmt.Errorf("invalid LOG_LEVEL %q", c.Logger.Level)
	}
	if c.Logger.Format != "json" && c.Logger.Format != "console" {
		return fmt.Errorf("invalid LOG_FORMAT %q: must be json or console", c.Logger.Format)
	}
	if c.Logger.OutputPath == "stdout" {
		return errors.New("LOG_OUTPUT_PATH must not be stdout: stdout is reserved for program output")
	}
	return nil
}
