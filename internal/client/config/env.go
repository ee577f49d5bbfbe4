package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/dmitrijs2005/newsdesk/internal/flagx"
)

const (
	EnvAPIURL              = "NEWSDESK_API_URL"
	EnvLanguageID          = "NEWSDESK_LANGUAGE_ID"
	EnvSessionBackend      = "NEWSDESK_SESSION_BACKEND"
	EnvSessionDSN          = "NEWSDESK_SESSION_DSN"
	EnvRedisURL            = "NEWSDESK_REDIS_URL"
	EnvFavoritesDSN        = "NEWSDESK_FAVORITES_DSN"
	EnvOnlineCheckInterval = "NEWSDESK_ONLINE_CHECK_INTERVAL"
	EnvLogLevel            = "NEWSDESK_LOG_LEVEL"
)

// parseEnv overlays cfg with NEWSDESK_* variables. Values from the dotenv
// file named by -e/-env come first; the process environment wins over them.
// Unparsable numbers and durations panic.
func parseEnv(cfg *Config) {
	vars := map[string]string{}
	if file := flagx.EnvFileFlag(); file != "" {
		loaded, err := godotenv.Read(file)
		if err != nil {
			panic(err)
		}
		vars = loaded
	}
	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			return v, true
		}
		v, ok := vars[key]
		return v, ok && v != ""
	}

	if v, ok := lookup(EnvAPIURL); ok {
		cfg.APIBaseURL = v
	}
	if v, ok := lookup(EnvLanguageID); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			panic(err)
		}
		cfg.LanguageID = n
	}
	if v, ok := lookup(EnvSessionBackend); ok {
		cfg.SessionBackend = v
	}
	if v, ok := lookup(EnvSessionDSN); ok {
		cfg.SessionDSN = v
	}
	if v, ok := lookup(EnvRedisURL); ok {
		cfg.RedisURL = v
	}
	if v, ok := lookup(EnvFavoritesDSN); ok {
		cfg.FavoritesDSN = v
	}
	if v, ok := lookup(EnvOnlineCheckInterval); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			panic(err)
		}
		cfg.OnlineCheckInterval = d
	}
	if v, ok := lookup(EnvLogLevel); ok {
		cfg.LogLevel = v
	}
}
