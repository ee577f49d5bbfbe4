package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_parseEnv(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	t.Run("process environment", func(t *testing.T) {
		os.Args = []string{"testbin"}
		t.Setenv(EnvAPIURL, "http://env/api/")
		t.Setenv(EnvLanguageID, "4")
		t.Setenv(EnvOnlineCheckInterval, "2s")
		t.Setenv(EnvFavoritesDSN, "postgres://env")

		var cfg Config
		cfg.LoadDefaults()
		parseEnv(&cfg)

		assert.Equal(t, "http://env/api/", cfg.APIBaseURL)
		assert.Equal(t, 4, cfg.LanguageID)
		assert.Equal(t, 2*time.Second, cfg.OnlineCheckInterval)
		assert.Equal(t, "postgres://env", cfg.FavoritesDSN)
		assert.Equal(t, "sqlite", cfg.SessionBackend)
	})

	t.Run("process environment beats dotenv", func(t *testing.T) {
		path := writeTempFile(t, "", "test.env",
			"NEWSDESK_SESSION_BACKEND=memory\nNEWSDESK_REDIS_URL=redis://dotenv:6379/0\n")
		os.Args = []string{"testbin", "-env", path}
		t.Setenv(EnvSessionBackend, "redis")

		var cfg Config
		cfg.LoadDefaults()
		parseEnv(&cfg)

		assert.Equal(t, "redis", cfg.SessionBackend)
		assert.Equal(t, "redis://dotenv:6379/0", cfg.RedisURL)
	})

	t.Run("bad number panics", func(t *testing.T) {
		os.Args = []string{"testbin"}
		t.Setenv(EnvLanguageID, "english")
		require.Panics(t, func() { parseEnv(&Config{}) })
	})

	t.Run("missing dotenv panics", func(t *testing.T) {
		os.Args = []string{"testbin", "-e", "/nonexistent/.env"}
		require.Panics(t, func() { parseEnv(&Config{}) })
	})
}
