// Package config loads settings for the command-line front end.
package config

import (
	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/erlware-deprecated/ecrypt"
)

// Config holds the CLI defaults that can live in a file instead of flags.
type Config struct {
	Digits   int    `yaml:"digits"`
	Store    string `yaml:"store"`
	LogLevel string `yaml:"log_level"`
}

// Load reads the YAML config at path. An empty path yields the built-in
// defaults.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetDefault("digits", ecrypt.DefaultDigits)
	v.SetDefault("store", "ecrypt.db")
	v.SetDefault("log_level", "info")

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrap(err, "config: read")
		}
	}
	return &Config{
		Digits:   v.GetInt("digits"),
		Store:    v.GetString("store"),
		LogLevel: v.GetString("log_level"),
	}, nil
}
