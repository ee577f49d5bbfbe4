package config

import "time"

// Config holds runtime settings for the newsdesk CLI.
//
// Fields:
//   - APIBaseURL: base address every relative endpoint path is resolved against.
//   - LanguageID: default language_id sent with listings.
//   - SessionBackend / SessionDSN / RedisURL: where the session is persisted.
//   - FavoritesDSN: PostgreSQL DSN of the hosted favorites database; empty disables favorites.
//   - OnlineCheckInterval: how often the client probes API reachability.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	APIBaseURL          string
	LanguageID          int
	SessionBackend      string
	SessionDSN          string
	RedisURL            string
	FavoritesDSN        string
	OnlineCheckInterval time.Duration
	LogLevel            string
}

// LoadDefaults populates c with development defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://127.0.0.1:8080/api/"
	c.LanguageID = 1
	c.SessionBackend = "sqlite"
	c.SessionDSN = "newsdesk.db"
	c.RedisURL = "redis://127.0.0.1:6379/0"
	c.FavoritesDSN = ""
	c.OnlineCheckInterval = 5 * time.Second
	c.LogLevel = "info"
}

// LoadConfig applies defaults, then the JSON file, then environment
// variables, then flags. Later sources take precedence.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
