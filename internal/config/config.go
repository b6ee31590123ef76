// Package config loads service configuration from environment variables with
// an optional YAML file overlay, and builds the process logger.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server         ServerConfig         `yaml:"server"`
	Auth           AuthConfig           `yaml:"auth"`
	RateLimit      RateLimitConfig      `yaml:"rate_limit"`
	Mock           MockConfig           `yaml:"mock"`
	Email          EmailConfig          `yaml:"email"`
	AdminBootstrap AdminBootstrapConfig `yaml:"admin_bootstrap"`
	Logging        LoggingConfig        `yaml:"logging"`
	Environment    string               `yaml:"environment"`
}

type ServerConfig struct {
	Host    string `yaml:"host"`
	Port    int    `yaml:"port"`
	BaseURL string `yaml:"base_url"`
}

type AuthConfig struct {
	JWTSecret string        `yaml:"jwt_secret"`
	JWTExpiry time.Duration `yaml:"jwt_expiry"`
	Issuer    string        `yaml:"issuer"`
}

type RateLimitConfig struct {
	PublicPerMinute   int `yaml:"public_per_minute"`
	AdminPerMinute    int `yaml:"admin_per_minute"`
	LoginPer15Minutes int `yaml:"login_per_15_minutes"`
}

// MockConfig tunes the in-memory data layer. Latency simulates the network
// round-trip the original console's mock API introduced.
type MockConfig struct {
	Latency       time.Duration `yaml:"latency"`
	AuditCapacity int           `yaml:"audit_capacity"`
}

type EmailConfig struct {
	Enabled bool   `yaml:"enabled"`
	APIKey  string `yaml:"api_key"`
	From    string `yaml:"from"`
}

type AdminBootstrapConfig struct {
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Load builds the configuration from the environment. When path is non-empty
// the YAML file is read first and environment variables override it.
func Load(path string) (Config, error) {
	cfg := defaults()

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config file: %w", err)
		}
	}

	cfg.Server.Host = getEnv("SERVER_HOST", cfg.Server.Host)
	cfg.Server.Port = getEnvInt("SERVER_PORT", cfg.Server.Port)
	cfg.Server.BaseURL = getEnv("SERVER_BASE_URL", cfg.Server.BaseURL)

	cfg.Auth.JWTSecret = getEnv("JWT_SECRET", cfg.Auth.JWTSecret)
	cfg.Auth.JWTExpiry = time.Duration(getEnvInt("JWT_EXPIRY_HOURS", int(cfg.Auth.JWTExpiry/time.Hour))) * time.Hour
	cfg.Auth.Issuer = getEnv("JWT_ISSUER", cfg.Auth.Issuer)

	cfg.RateLimit.PublicPerMinute = getEnvInt("RATE_LIMIT_PUBLIC", cfg.RateLimit.PublicPerMinute)
	cfg.RateLimit.AdminPerMinute = getEnvInt("RATE_LIMIT_ADMIN", cfg.RateLimit.AdminPerMinute)
	cfg.RateLimit.LoginPer15Minutes = getEnvInt("RATE_LIMIT_LOGIN", cfg.RateLimit.LoginPer15Minutes)

	cfg.Mock.Latency = time.Duration(getEnvInt("MOCK_LATENCY_MS", int(cfg.Mock.Latency/time.Millisecond))) * time.Millisecond
	cfg.Mock.AuditCapacity = getEnvInt("AUDIT_CAPACITY", cfg.Mock.AuditCapacity)

	cfg.Email.Enabled = getEnvBool("EMAIL_ENABLED", cfg.Email.Enabled)
	cfg.Email.APIKey = getEnv("RESEND_API_KEY", cfg.Email.APIKey)
	cfg.Email.From = getEnv("EMAIL_FROM", cfg.Email.From)

	cfg.AdminBootstrap.Email = getEnv("ADMIN_EMAIL", cfg.AdminBootstrap.Email)
	cfg.AdminBootstrap.Password = getEnv("ADMIN_PASSWORD", cfg.AdminBootstrap.Password)
	cfg.AdminBootstrap.Name = getEnv("ADMIN_NAME", cfg.AdminBootstrap.Name)

	cfg.Logging.Level = getEnv("LOG_LEVEL", cfg.Logging.Level)
	cfg.Logging.Format = getEnv("LOG_FORMAT", cfg.Logging.Format)
	cfg.Environment = getEnv("ENVIRONMENT", cfg.Environment)

	if cfg.Auth.JWTSecret == "" {
		return Config{}, fmt.Errorf("JWT_SECRET is required")
	}
	if cfg.Email.Enabled && cfg.Email.APIKey == "" {
		return Config{}, fmt.Errorf("RESEND_API_KEY is required when EMAIL_ENABLED is set")
	}
	return cfg, nil
}

func defaults() Config {
	return Config{
		Server: ServerConfig{
			Host:    "0.0.0.0",
			Port:    8080,
			BaseURL: "http://localhost:8080",
		},
		Auth: AuthConfig{
			JWTExpiry: 24 * time.Hour,
			Issuer:    "admin-console",
		},
		RateLimit: RateLimitConfig{
			PublicPerMinute:   120,
			AdminPerMinute:    0,
			LoginPer15Minutes: 10,
		},
		Mock: MockConfig{
			Latency:       0,
			AuditCapacity: 500,
		},
		Email: EmailConfig{
			From: "Admin Console <no-reply@admin-console.pro>",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
		Environment: "development",
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}
