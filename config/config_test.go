package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingSecretIsFatal(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("ATS_JWT_SECRET", "")

	cfg, err := Load()
	require.ErrorIs(t, err, ErrMissingJWTSecret)
	assert.Nil(t, cfg)
}

func TestLoad_DefaultsAndOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "current")
	t.Setenv("JWT_PREVIOUS_SECRETS", " old-1 , ,old-2")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "current", cfg.JWT.Secret)
	assert.Equal(t, []string{"old-1", "old-2"}, cfg.JWT.PreviousSecrets)
	assert.Equal(t, 7*24*time.Hour, cfg.JWT.Expiration)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, int64(5_000_000), cfg.Upload.MaxBytes)
	assert.ElementsMatch(t, []string{".pdf", ".doc", ".docx"}, cfg.Upload.AllowedExtensions)
	assert.False(t, cfg.App.IsDevelopment())
}
