package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("Success loading from env", func(t *testing.T) {
		// t.Setenv restores the previous values when the test ends.
		t.Setenv("DB_HOST", "localhost")
		t.Setenv("DB_USER", "testuser")
		t.Setenv("DB_PASSWORD", "testpass")
		t.Setenv("DB_NAME", "testdb")
		t.Setenv("DB_PORT", "5432")
		t.Setenv("APP_PORT", "8080")
		t.Setenv("APP_ENV", "test")
		t.Setenv("RELAY_URL", "https://relay.example.com/")
		t.Setenv("RELAY_ANON_KEY", "anon")
		t.Setenv("RELAY_TIMEOUT", "3s")
		t.Setenv("REDIS_URL", "redis://localhost:6379/2")
		t.Setenv("FEED_MODE", "poll")
		t.Setenv("FEED_POLL_INTERVAL", "30s")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "localhost", cfg.DBHost)
		assert.Equal(t, "testuser", cfg.DBUser)
		assert.Equal(t, "testpass", cfg.DBPassword)
		assert.Equal(t, "testdb", cfg.DBName)
		assert.Equal(t, "5432", cfg.DBPort)
		assert.Equal(t, "8080", cfg.AppPort)
		assert.Equal(t, "test", cfg.AppEnv)
		assert.Equal(t, "https://relay.example.com", cfg.RelayURL)
		assert.Equal(t, "anon", cfg.RelayAnonKey)
		assert.Equal(t, 3*time.Second, cfg.RelayTimeout)
		assert.Equal(t, "redis://localhost:6379/2", cfg.RedisURL)
		assert.Equal(t, "poll", cfg.FeedMode)
		assert.Equal(t, 30*time.Second, cfg.FeedPollInterval)
	})

	t.Run("Defaults", func(t *testing.T) {
		t.Setenv("DB_HOST", "localhost")
		t.Setenv("DB_NAME", "testdb")
		t.Setenv("DB_PORT", "")
		t.Setenv("APP_PORT", "")
		t.Setenv("RELAY_TIMEOUT", "not-a-duration")
		t.Setenv("FEED_MODE", "")
		t.Setenv("CORS_ORIGIN", "")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "5432", cfg.DBPort)
		assert.Equal(t, "8080", cfg.AppPort)
		assert.Equal(t, 10*time.Second, cfg.RelayTimeout)
		assert.Equal(t, "listen", cfg.FeedMode)
		assert.Equal(t, "http://localhost:3000", cfg.CORSOrigin)
	})

	t.Run("Missing database", func(t *testing.T) {
		t.Setenv("DB_HOST", "")
		t.Setenv("DB_NAME", "")

		_, err := Load()
		assert.ErrorIs(t, err, ErrMissingDatabase)
	})
}
