package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/newsdesk/internal/flagx"
	"github.com/dmitrijs2005/newsdesk/internal/timex"
)

type JsonConfig struct {
	Addr        string         `json:"addr"`
	JWTSecret   string         `json:"jwt_secret"`
	TokenTTL    timex.Duration `json:"token_ttl"`
	CORSOrigins []string       `json:"cors_origins"`
	DatabaseDSN string         `json:"database_dsn"`
	LogLevel    string         `json:"log_level"`
}

// parseJson overlays config with the file named by -c/-config. Missing
// keys keep their current values; read or decode errors panic.
func parseJson(config *Config) {
	jsonConfigFile := flagx.ConfigFileFlag()
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.Addr != "" {
		config.Addr = c.Addr
	}
	if c.JWTSecret != "" {
		config.JWTSecret = c.JWTSecret
	}
	if c.TokenTTL.Duration > 0 {
		config.TokenTTL = time.Duration(c.TokenTTL.Duration)
	}
	if len(c.CORSOrigins) > 0 {
		config.CORSOrigins = c.CORSOrigins
	}
	if c.DatabaseDSN != "" {
		config.DatabaseDSN = c.DatabaseDSN
	}
	if c.LogLevel != "" {
		config.LogLevel = c.LogLevel
	}
}
