package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, dir, name string, data map[string]any) string {
	t.Helper()
	b, err := json.Marshal(data)
	require.NoError(t, err)
	return writeTempFile(t, dir, name, string(b))
}

func writeTempFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	if dir == "" {
		dir = t.TempDir()
	}
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func Test_parseJson(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	dir := t.TempDir()
	full := writeTempJSON(t, dir, "full.json", map[string]any{
		"api_base_url":          "https://news.example/api/",
		"language_id":           3,
		"session_backend":       "redis",
		"session_dsn":           "s.db",
		"redis_url":             "redis://cache:6379/2",
		"favorites_dsn":         "postgres://fav",
		"online_check_interval": 7000000000,
		"log_level":             "warn",
	})

	t.Run("loads every field", func(t *testing.T) {
		os.Args = []string{"testbin", "-config", full}

		cfg := &Config{}
		parseJson(cfg)

		assert.Equal(t, &Config{
			APIBaseURL:          "https://news.example/api/",
			LanguageID:          3,
			SessionBackend:      "redis",
			SessionDSN:          "s.db",
			RedisURL:            "redis://cache:6379/2",
			FavoritesDSN:        "postgres://fav",
			OnlineCheckInterval: 7 * time.Second,
			LogLevel:            "warn",
		}, cfg)
	})

	t.Run("missing keys keep current values", func(t *testing.T) {
		partial := writeTempJSON(t, dir, "partial.json", map[string]any{"log_level": "error"})
		os.Args = []string{"testbin", "-c", partial}

		var cfg Config
		cfg.LoadDefaults()
		parseJson(&cfg)

		assert.Equal(t, "error", cfg.LogLevel)
		assert.Equal(t, "http://127.0.0.1:8080/api/", cfg.APIBaseURL)
		assert.Equal(t, 5*time.Second, cfg.OnlineCheckInterval)
	})

	t.Run("no flag, no changes", func(t *testing.T) {
		os.Args = []string{"testbin"}

		cfg := &Config{APIBaseURL: "http://defaults/", OnlineCheckInterval: 42 * time.Second}
		parseJson(cfg)

		assert.Equal(t, "http://defaults/", cfg.APIBaseURL)
		assert.Equal(t, 42*time.Second, cfg.OnlineCheckInterval)
	})

	t.Run("invalid JSON panics", func(t *testing.T) {
		bad := writeTempFile(t, dir, "bad.json", `{ this is not valid json`)
		os.Args = []string{"testbin", "-config", bad}
		require.Panics(t, func() { parseJson(&Config{}) })
	})

	t.Run("missing file panics", func(t *testing.T) {
		os.Args = []string{"testbin", "-c", filepath.Join(dir, "nope.json")}
		require.Panics(t, func() { parseJson(&Config{}) })
	})
}
