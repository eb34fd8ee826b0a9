package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type HTTPConfig struct {
	Host        string
	Port        int
	CORSOrigins []string
}

type SessionConfig struct {
	MaxEntries int
	TTL        time.Duration
}

type DashboardConfig struct {
	Currency string
}

type Config struct {
	Environment string
	HTTP        HTTPConfig
	Sessions    SessionConfig
	Dashboard   DashboardConfig
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("app")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("./deploy")
	v.AddConfigPath("./internal/config")
	v.AutomaticEnv()

	_ = v.ReadInConfig()

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Environment: v.GetString("APP_ENV"),
		HTTP: HTTPConfig{
			Host:        v.GetString("HTTP_HOST"),
			Port:        v.GetInt("HTTP_PORT"),
			CORSOrigins: parseList(v.GetString("CORS_ALLOWED_ORIGINS")),
		},
		Sessions: SessionConfig{
			MaxEntries: v.GetInt("SESSION_MAX_ENTRIES"),
		},
		Dashboard: DashboardConfig{
			Currency: strings.TrimSpace(v.GetString("DASHBOARD_CURRENCY")),
		},
	}

	if raw := strings.TrimSpace(v.GetString("SESSION_TTL")); raw != "" {
		ttl, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("SESSION_TTL: %w", err)
		}
		cfg.Sessions.TTL = ttl
	}

	if cfg.Environment == "" {
		cfg.Environment = "development"
	}
	if cfg.HTTP.Host == "" {
		cfg.HTTP.Host = "0.0.0.0"
	}
	if cfg.HTTP.Port == 0 {
		cfg.HTTP.Port = 7090
	}
	if cfg.Sessions.MaxEntries == 0 {
		cfg.Sessions.MaxEntries = 10000
	}
	if cfg.Sessions.TTL == 0 {
		cfg.Sessions.TTL = 2 * time.Hour
	}
	if cfg.Dashboard.Currency == "" {
		cfg.Dashboard.Currency = "INR"
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.HTTP.Port < 0 || cfg.HTTP.Port > 65535 {
		return fmt.Errorf("HTTP_PORT %d is out of range", cfg.HTTP.Port)
	}
	if cfg.Sessions.MaxEntries < 0 {
		return fmt.Errorf("SESSION_MAX_ENTRIES must be positive")
	}
	if cfg.Sessions.TTL < 0 {
		return fmt.Errorf("SESSION_TTL must be positive")
	}
	return nil
}

func parseList(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	items := strings.Split(raw, ",")
	result := make([]string, 0, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item != "" {
			result = append(result, item)
		}
	}
	return result
}

func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Environment, "production")
}
