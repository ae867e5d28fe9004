// Package config loads the application configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds every externally supplied setting, grouped by concern.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	JWT      JWTConfig
	SMTP     SMTPConfig
	CORS     CORSConfig
}

// ServerConfig holds the HTTP listener settings.
type ServerConfig struct {
	Port string
}

// DatabaseConfig holds the PostgreSQL connection settings.
type DatabaseConfig struct {
	Host          string
	Port          string
	User          string
	Password      string
	Name          string
	SSLMode       string
	RunMigrations bool
}

// JWTConfig holds the token signing secrets and lifetimes.
// Access and refresh tokens use independent secrets so leaking one
// does not compromise the other.
type JWTConfig struct {
	AccessSecret  string
	AccessExpiry  time.Duration
	RefreshSecret string
	RefreshExpiry time.Duration
}

// SMTPConfig holds the outbound mail settings. An empty Host disables
// notification delivery.
type SMTPConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	From     string
}

// CORSConfig holds the allowed browser origins.
type CORSConfig struct {
	AllowOrigins []string
}

// DSN builds the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
}

// Enabled reports whether mail delivery is configured.
func (s SMTPConfig) Enabled() bool {
	return s.Host != ""
}

// Addr returns the host:port dial address for the SMTP server.
func (s SMTPConfig) Addr() string {
	return s.Host + ":" + s.Port
}

// Load reads an optional .env file and then the environment.
// Missing token configuration is a startup-class error: the process must not
// come up able to mint unsigned or never-expiring credentials.
func Load() (*Config, error) {
	// .env is a local development convenience, absence is fine.
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Port: envOr("SERVER_PORT", "8080"),
		},
		Database: DatabaseConfig{
			Host:          envOr("DB_HOST", "localhost"),
			Port:          envOr("DB_PORT", "5432"),
			User:          os.Getenv("DB_USER"),
			Password:      os.Getenv("DB_PASSWORD"),
			Name:          os.Getenv("DB_NAME"),
			SSLMode:       envOr("DB_SSLMODE", "disable"),
			RunMigrations: os.Getenv("RUN_MIGRATIONS") == "true",
		},
		JWT: JWTConfig{
			AccessSecret:  os.Getenv("JWT_SECRET"),
			RefreshSecret: os.Getenv("JWT_REFRESH_SECRET"),
		},
		SMTP: SMTPConfig{
			Host:     os.Getenv("SMTP_HOST"),
			Port:     envOr("SMTP_PORT", "587"),
			User:     os.Getenv("SMTP_USER"),
			Password: os.Getenv("SMTP_PASSWORD"),
			From:     os.Getenv("SMTP_FROM"),
		},
	}

	if origins := os.Getenv("CORS_ALLOW_ORIGINS"); origins != "" {
		for _, o := range strings.Split(origins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.CORS.AllowOrigins = append(cfg.CORS.AllowOrigins, o)
			}
		}
	}

	if cfg.JWT.AccessSecret == "" {
		return nil, errors.New("JWT_SECRET is not set")
	}
	if cfg.JWT.RefreshSecret == "" {
		return nil, errors.New("JWT_REFRESH_SECRET is not set")
	}

	var err error
	if cfg.JWT.AccessExpiry, err = expiryFromEnv("JWT_ACCESS_EXPIRATION"); err != nil {
		return nil, err
	}
	if cfg.JWT.RefreshExpiry, err = expiryFromEnv("JWT_REFRESH_EXPIRATION"); err != nil {
		return nil, err
	}

	return cfg, nil
}

// expiryFromEnv parses a required token lifetime, given in seconds.
func expiryFromEnv(key string) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return 0, fmt.Errorf("%s is not set", key)
	}
	seconds, err := strconv.Atoi(raw)
	if err != nil || seconds <= 0 {
		return 0, fmt.Errorf("%s must be a positive number of seconds, got %q", key, raw)
	}
	return time.Duration(seconds) * time.Second, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
