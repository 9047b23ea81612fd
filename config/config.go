package config

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/spf13/viper"
)

/* Config é um pacote auxiliar. Poderia ser uma lib externa*/

type Config struct {
	Port                   string  `mapstructure:"PORT"`
	APIBaseURL             string  `mapstructure:"API_BASE_URL"`
	EndpointsFile          string  `mapstructure:"ENDPOINTS_FILE"`
	RedisAddr              string  `mapstructure:"REDIS_ADDR"`
	RedisPassword          string  `mapstructure:"REDIS_PASSWORD"`
	RedisDB                int     `mapstructure:"REDIS_DB"`
	NotificationTTLSeconds int     `mapstructure:"NOTIFICATION_TTL_SECONDS"`
	SessionSecret          string  `mapstructure:"SESSION_SECRET"`
	SessionSecure          bool    `mapstructure:"SESSION_SECURE"`
	RateRPS                float64 `mapstructure:"RATE_RPS"`
	RateBurst              int     `mapstructure:"RATE_BURST"`
	PageSize               int     `mapstructure:"PAGE_SIZE"`
}

var defaults = map[string]any{
	"PORT":                     "8080",
	"API_BASE_URL":             "http://localhost:3333/",
	"ENDPOINTS_FILE":           "endpoints.yaml",
	"REDIS_ADDR":               "",
	"REDIS_PASSWORD":           "",
	"REDIS_DB":                 0,
	"NOTIFICATION_TTL_SECONDS": 300,
	"SESSION_SECRET":           "",
	"SESSION_SECURE":           false,
	"RATE_RPS":                 5.0,
	"RATE_BURST":               10,
	"PAGE_SIZE":                10,
}

// GetConfig reads .env from the working directory, environment variables win
func GetConfig() (*Config, error) {
	return Load(viper.New(), ".")
}

// Load reads the config from the .env file in dir, if any
func Load(v *viper.Viper, dir string) (*Config, error) {
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.SetConfigName(".env")
	v.SetConfigType("toml")
	v.AddConfigPath(dir)
	v.AutomaticEnv()

	err := v.ReadInConfig()
	var notFound viper.ConfigFileNotFoundError
	if err != nil && !errors.As(err, &notFound) {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var config Config
	err = v.Unmarshal(&config)
	if err != nil {
		return nil, fmt.Errorf("parsing config data: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return &config, nil
}

// Validate checks the values the binaries cannot start without
func (c *Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("PORT cannot be empty")
	}
	u, err := url.Parse(c.APIBaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("API_BASE_URL must be an http(s) URL: %q", c.APIBaseURL)
	}
	if c.EndpointsFile == "" {
		return fmt.Errorf("ENDPOINTS_FILE cannot be empty")
	}
	if c.RateRPS <= 0 || c.RateBurst <= 0 {
		return fmt.Errorf("RATE_RPS and RATE_BURST must be positive")
	}
	if c.PageSize <= 0 {
		return fmt.Errorf("PAGE_SIZE must be positive")
	}
	if c.NotificationTTLSeconds < 0 {
		return fmt.Errorf("NOTIFICATION_TTL_SECONDS cannot be negative")
	}
	return nil
}

// NotificationTTL returns how long pending toasts are kept
func (c *Config) NotificationTTL() time.Duration {
	return time.Duration(c.NotificationTTLSeconds) * time.Second
}

// UseRedis reports whether notifications go to Redis instead of memory
func (c *Config) UseRedis() bool {
	return c.RedisAddr != ""
}
