package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setRequiredEnv sets the minimal environment Load needs to succeed.
func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("JWT_SECRET", "access-secret")
	t.Setenv("JWT_REFRESH_SECRET", "refresh-secret")
	t.Setenv("JWT_ACCESS_EXPIRATION", "900")
	t.Setenv("JWT_REFRESH_EXPIRATION", "604800")
}

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		setRequiredEnv(t)

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "8080", cfg.Server.Port)
		assert.Equal(t, "5432", cfg.Database.Port)
		assert.Equal(t, "disable", cfg.Database.SSLMode)
		assert.Equal(t, 15*time.Minute, cfg.JWT.AccessExpiry)
		assert.Equal(t, 7*24*time.Hour, cfg.JWT.RefreshExpiry)
		assert.False(t, cfg.SMTP.Enabled())
		assert.Empty(t, cfg.CORS.AllowOrigins)
	})

	t.Run("missing access secret", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("JWT_SECRET", "")

		_, err := Load()
		assert.ErrorContains(t, err, "JWT_SECRET")
	})

	t.Run("missing refresh secret", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("JWT_REFRESH_SECRET", "")

		_, err := Load()
		assert.ErrorContains(t, err, "JWT_REFRESH_SECRET")
	})

	t.Run("non-numeric expiration", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("JWT_ACCESS_EXPIRATION", "fifteen minutes")

		_, err := Load()
		assert.ErrorContains(t, err, "JWT_ACCESS_EXPIRATION")
	})

	t.Run("non-positive expiration", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("JWT_REFRESH_EXPIRATION", "0")

		_, err := Load()
		assert.ErrorContains(t, err, "JWT_REFRESH_EXPIRATION")
	})

	t.Run("cors origins are split and trimmed", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("CORS_ALLOW_ORIGINS", "https://hr.example.com, https://staging.example.com ,")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, []string{"https://hr.example.com", "https://staging.example.com"}, cfg.CORS.AllowOrigins)
	})
}

func TestDatabaseConfig_DSN(t *testing.T) {
	dsn := DatabaseConfig{
		Host:     "db",
		Port:     "5432",
		User:     "hr",
		Password: "secret",
		Name:     "onboarding",
		SSLMode:  "disable",
	}.DSN()
	assert.Equal(t, "host=db port=5432 user=hr password=secret dbname=onboarding sslmode=disable", dsn)
}

func TestSMTPConfig(t *testing.T) {
	cfg := SMTPConfig{Host: "smtp.example.com", Port: "587"}
	assert.True(t, cfg.Enabled())
	assert.Equal(t, "smtp.example.com:587", cfg.Addr())

	assert.False(t, SMTPConfig{}.Enabled())
}
