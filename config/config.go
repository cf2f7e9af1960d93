// Package config loads shift-svg settings from defaults, an optional
// config file and SHIFTSVG_* environment variables, in that order of
// increasing precedence.
package config

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable, e.g.
// SHIFTSVG_HTTP_PORT for http.port.
const EnvPrefix = "SHIFTSVG"

// Config is the full application configuration.
type Config struct {
	HTTP    HTTPConfig    `mapstructure:"http"`
	Catalog CatalogConfig `mapstructure:"catalog"`
	Render  RenderConfig  `mapstructure:"render"`
	Log     LogConfig     `mapstructure:"log"`
}

// HTTPConfig configures the icon server.
type HTTPConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

// Addr returns the listen address (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// CatalogConfig points at an alternate catalog file. An empty path selects
// the built-in catalog.
type CatalogConfig struct {
	Path string `mapstructure:"path"`
}

// RenderConfig holds rendering defaults.
type RenderConfig struct {
	// DefaultKey is rendered when a request carries no key.
	DefaultKey string `mapstructure:"default_key"`
}

// LogConfig selects logger output.
type LogConfig struct {
	JSON  bool   `mapstructure:"json"`
	Level string `mapstructure:"level"`
}

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	v.SetDefault("http.host", "0.0.0.0")
	v.SetDefault("http.port", 8080)
	v.SetDefault("catalog.path", "")
	v.SetDefault("render.default_key", "empty")
	v.SetDefault("log.json", false)
	v.SetDefault("log.level", "info")
}

// New returns a viper instance with defaults and environment binding. When
// configFile is not empty it is read as well.
func New(configFile string) (*viper.Viper, error) {
	v := viper.New()

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	SetDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "reading config file %s", configFile)
		}
	}
	return v, nil
}

// Load builds the configuration from configFile (optional) and the
// environment.
func Load(configFile string) (*Config, error) {
	v, err := New(configFile)
	if err != nil {
		return nil, err
	}
	return LoadWithViper(v)
}

// LoadWithViper unmarshals the configuration held by v.
func LoadWithViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshalling config")
	}
	if cfg.HTTP.Port <= 0 || cfg.HTTP.Port > 65535 {
		return nil, errors.Newf("http.port out of range: %d", cfg.HTTP.Port)
	}
	if strings.TrimSpace(cfg.Render.DefaultKey) == "" {
		cfg.Render.DefaultKey = "empty"
	}
	return &cfg, nil
}
