// Package config handles configuration for the mock API server:
// defaults, JSON overlay, environment and command-line flags.
package config

import (
	"strings"
	"time"
)

// Config holds runtime settings for the mock API.
//
// Fields:
//   - Addr: HTTP bind address.
//   - JWTSecret: HMAC secret for signing bearer tokens (HS256). Do not use the default outside development.
//   - TokenTTL: bearer token lifetime.
//   - CORSOrigins: allowed browser origins.
//   - DatabaseDSN: PostgreSQL DSN for the user store; empty keeps users in memory.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	Addr        string
	JWTSecret   string
	TokenTTL    time.Duration
	CORSOrigins []string
	DatabaseDSN string
	LogLevel    string
}

// LoadDefaults populates Config with development defaults.
func (c *Config) LoadDefaults() {
	c.Addr = ":8080"
	c.JWTSecret = "secretKey"
	c.TokenTTL = 24 * time.Hour
	c.CORSOrigins = []string{"*"}
	c.DatabaseDSN = ""
	c.LogLevel = "info"
}

// LoadConfig applies defaults, then JSON, then environment, then flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}

// splitOrigins parses a comma-separated origin list, dropping blanks and
// trailing slashes.
func splitOrigins(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if o := strings.TrimRight(strings.TrimSpace(p), "/"); o != "" {
			out = append(out, o)
		}
	}
	return out
}
