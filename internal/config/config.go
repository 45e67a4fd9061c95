package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Supported SQL drivers.
const (
	DriverSQLite = "sqlite"
	DriverMySQL  = "mysql"
)

var ErrUnknownDriver = errors.New("unknown db driver")

// Config is the application configuration, read from configs/config.yml and
// TJB_* environment variables.
type Config struct {
	Port   string `mapstructure:"port"`
	Server struct {
		ReadHeaderTimeout time.Duration `mapstructure:"read_header_timeout"`
		WriteTimeout      time.Duration `mapstructure:"write_timeout"`
		IdleTimeout       time.Duration `mapstructure:"idle_timeout"`
	} `mapstructure:"server"`
	Log struct {
		Level string `mapstructure:"level"`
	} `mapstructure:"log"`
	DB struct {
		Driver string `mapstructure:"driver"`
		DSN    string `mapstructure:"dsn"`
	} `mapstructure:"db"`
	Auth struct {
		SigningKey string        `mapstructure:"signing_key"`
		TokenTTL   time.Duration `mapstructure:"token_ttl"`
	} `mapstructure:"auth"`
	Inventory struct {
		Path string `mapstructure:"path"`
	} `mapstructure:"inventory"`
	Session struct {
		TTL          time.Duration `mapstructure:"ttl"`
		ReapInterval time.Duration `mapstructure:"reap_interval"`
	} `mapstructure:"session"`
	Statistics struct {
		DefaultDays int `mapstructure:"default_days"`
	} `mapstructure:"statistics"`
	Assistant struct {
		SuggestionLimit int `mapstructure:"suggestion_limit"`
	} `mapstructure:"assistant"`
}

// SetDefaults registers fallback values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("port", "8080")
	v.SetDefault("log.level", "info")
	v.SetDefault("db.driver", DriverSQLite)
	v.SetDefault("db.dsn", "tjbuilding.db")
	v.SetDefault("auth.token_ttl", time.Hour)
	v.SetDefault("inventory.path", "configs/building.yml")
	v.SetDefault("session.ttl", 30*time.Minute)
	v.SetDefault("session.reap_interval", time.Minute)
	v.SetDefault("statistics.default_days", 7)
	v.SetDefault("assistant.suggestion_limit", 7)
}

// Load reads the config file at path (if non-empty) on top of defaults and
// environment overrides.
func Load(v *viper.Viper, path string) (Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix("TJB")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath("configs") // configs/config.yml
		v.SetConfigName("config")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks values viper cannot type-check.
func (c Config) Validate() error {
	switch c.DB.Driver {
	case DriverSQLite, DriverMySQL:
	default:
		return fmt.Errorf("db.driver %q: %w", c.DB.Driver, ErrUnknownDriver)
	}
	if c.Auth.SigningKey == "" {
		return errors.New("auth.signing_key must be set")
	}
	if c.Session.TTL <= 0 || c.Session.ReapInterval <= 0 {
		return errors.New("session.ttl and session.reap_interval must be positive")
	}
	return nil
}
