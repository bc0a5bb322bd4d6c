package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetEnvDuration(t *testing.T) {
	t.Setenv("TEST_DURATION", "2h")
	assert.Equal(t, 2*time.Hour, getEnvDuration("TEST_DURATION", time.Minute))

	t.Setenv("TEST_DURATION", "3600")
	assert.Equal(t, time.Hour, getEnvDuration("TEST_DURATION", time.Minute))

	t.Setenv("TEST_DURATION", "soon")
	assert.Equal(t, time.Minute, getEnvDuration("TEST_DURATION", time.Minute))

	t.Setenv("TEST_DURATION", "")
	assert.Equal(t, time.Minute, getEnvDuration("TEST_DURATION", time.Minute))
}

func TestGetEnvList(t *testing.T) {
	t.Setenv("TEST_ORIGINS", " https://a.az/ , ,https://b.az")
	assert.Equal(t, []string{"https://a.az", "https://b.az"}, getEnvList("TEST_ORIGINS", ""))

	assert.Equal(t, []string{"http://localhost:3000"}, getEnvList("TEST_ORIGINS_UNSET", "http://localhost:3000"))
}

func TestGetEnvIntAndBoolFallback(t *testing.T) {
	t.Setenv("TEST_INT", "abc")
	assert.Equal(t, 7, getEnvInt("TEST_INT", 7))
	t.Setenv("TEST_INT", "42")
	assert.Equal(t, 42, getEnvInt("TEST_INT", 7))

	t.Setenv("TEST_BOOL", "nope")
	assert.True(t, getEnvBool("TEST_BOOL", true))
	t.Setenv("TEST_BOOL", "false")
	assert.False(t, getEnvBool("TEST_BOOL", true))
}

func TestLoadConfigRequiresSecretInRelease(t *testing.T) {
	t.Setenv("GIN_MODE", "release")
	t.Setenv("JWT_SECRET", "")

	cfg, err := LoadConfig()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, errMissingJWTSecret)
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("GIN_MODE", "debug")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("STORAGE_TYPE", "LOCAL")
	t.Setenv("RATE_LIMIT_WINDOW_SECONDS", "30")
	t.Setenv("JWT_EXPIRY", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.False(t, cfg.IsProduction())
	assert.NotEmpty(t, cfg.JWTSecret)
	assert.Equal(t, "local", cfg.StorageType)
	assert.Equal(t, 30*time.Second, cfg.RateLimitWindow())
	assert.Equal(t, 7*24*time.Hour, cfg.JWTExpiry)
}
