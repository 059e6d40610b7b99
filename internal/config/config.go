// Package config loads the CLI and example-app configuration from file and
// environment.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config is the top-level configuration.
type Config struct {
	Gateway GatewayConfig `mapstructure:"gateway"`
	Logger  LoggerConfig  `mapstructure:"logger"`
}

// GatewayConfig holds the gateway connection settings.
type GatewayConfig struct {
	// PublicKey is the merchant public key, pkey_ prefixed.
	PublicKey string `mapstructure:"public_key"`
	// BaseURL overrides the API endpoint; empty uses the production default.
	BaseURL string `mapstructure:"base_url"`
	// VaultURL overrides the token vault endpoint.
	VaultURL string `mapstructure:"vault_url"`
	// TimeoutSeconds bounds each gateway round trip.
	TimeoutSeconds int `mapstructure:"timeout_seconds"`
}

// LoggerConfig holds the logging settings.
type LoggerConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}

// Load reads configuration from an optional config file and PAYKIT_-prefixed
// environment variables. A missing config file is not an error; the
// environment alone can carry everything.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("paykit")
	v.SetConfigType("yaml")
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/paykit")
	}

	v.SetEnvPrefix("PAYKIT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("gateway.timeout_seconds", 30)
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "text")
	v.SetDefault("logger.output", "stderr")
}
