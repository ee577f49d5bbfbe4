package config

import (
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{name: "all flags", args: []string{"cmd",
			"-a", "http://api.example/api/", "-n", "2", "-s", "redis", "-d", "x.db",
			"-r", "redis://r:6379/1", "-f", "postgres://f", "-i", "10", "-l", "debug",
		}, expected: &Config{
			APIBaseURL:          "http://api.example/api/",
			LanguageID:          2,
			SessionBackend:      "redis",
			SessionDSN:          "x.db",
			RedisURL:            "redis://r:6379/1",
			FavoritesDSN:        "postgres://f",
			OnlineCheckInterval: 10 * time.Second,
			LogLevel:            "debug",
		}},
		{name: "foreign flags ignored", args: []string{"cmd", "-c", "cfg.json", "-x", "1", "-a", "http://h/"},
			expected: &Config{APIBaseURL: "http://h/"}},
		{name: "bad interval", args: []string{"cmd", "-i", "abc"}, expectPanic: true},
		{name: "bad language", args: []string{"cmd", "-n", "en"}, expectPanic: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args
			config := &Config{}

			if tt.expectPanic {
				require.Panics(t, func() { parseFlags(config) })
				return
			}
			require.NotPanics(t, func() { parseFlags(config) })
			assert.Empty(t, cmp.Diff(tt.expected, config))
		})
	}
}
