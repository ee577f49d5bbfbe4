package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/newsdesk/internal/flagx"
	"github.com/dmitrijs2005/newsdesk/internal/timex"
)

// JsonConfig is the on-disk shape of Config. Intervals accept "5s" or
// integer nanoseconds.
type JsonConfig struct {
	APIBaseURL          string         `json:"api_base_url"`
	LanguageID          int            `json:"language_id"`
	SessionBackend      string         `json:"session_backend"`
	SessionDSN          string         `json:"session_dsn"`
	RedisURL            string         `json:"redis_url"`
	FavoritesDSN        string         `json:"favorites_dsn"`
	OnlineCheckInterval timex.Duration `json:"online_check_interval"`
	LogLevel            string         `json:"log_level"`
}

// parseJson overlays cfg with the file named by -c/-config. Keys missing
// from the file keep their current value. Read or decode errors panic.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.ConfigFileFlag()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	setString(&cfg.APIBaseURL, jc.APIBaseURL)
	if jc.LanguageID > 0 {
		cfg.LanguageID = jc.LanguageID
	}
	setString(&cfg.SessionBackend, jc.SessionBackend)
	setString(&cfg.SessionDSN, jc.SessionDSN)
	setString(&cfg.RedisURL, jc.RedisURL)
	setString(&cfg.FavoritesDSN, jc.FavoritesDSN)
	if jc.OnlineCheckInterval.Duration > 0 {
		cfg.OnlineCheckInterval = time.Duration(jc.OnlineCheckInterval.Duration)
	}
	setString(&cfg.LogLevel, jc.LogLevel)
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
