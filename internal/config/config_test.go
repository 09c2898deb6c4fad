package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setCompleteEnv(t *testing.T) {
	t.Helper()

	t.Setenv("GAMESAPI_PRIMARY.ENV", "local")
	t.Setenv("GAMESAPI_SERVER.PORT", "8080")
	t.Setenv("GAMESAPI_SERVER.READ_TIMEOUT", "10")
	t.Setenv("GAMESAPI_SERVER.WRITE_TIMEOUT", "10")
	t.Setenv("GAMESAPI_SERVER.IDLE_TIMEOUT", "60")
	t.Setenv("GAMESAPI_SERVER.CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	t.Setenv("GAMESAPI_DATABASE.HOST", "localhost")
	t.Setenv("GAMESAPI_DATABASE.PORT", "5432")
	t.Setenv("GAMESAPI_DATABASE.USER", "games")
	t.Setenv("GAMESAPI_DATABASE.PASSWORD", "secret")
	t.Setenv("GAMESAPI_DATABASE.NAME", "games_api")
	t.Setenv("GAMESAPI_DATABASE.SSL_MODE", "disable")
}

func TestNewLoadsFromEnvironment(t *testing.T) {
	setCompleteEnv(t)

	cfg, err := New()

	require.NoError(t, err)
	assert.Equal(t, "local", cfg.Primary.Env)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 10, cfg.Server.ReadTimeout)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
}

func TestNewRejectsIncompleteEnvironment(t *testing.T) {
	setCompleteEnv(t)
	t.Setenv("GAMESAPI_DATABASE.HOST", "")

	_, err := New()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}
