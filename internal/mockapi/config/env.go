package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/dmitrijs2005/newsdesk/internal/flagx"
)

const (
	EnvAddr        = "MOCKAPI_ADDR"
	EnvJWTSecret   = "MOCKAPI_JWT_SECRET"
	EnvTokenTTL    = "MOCKAPI_TOKEN_TTL"
	EnvCORSOrigins = "MOCKAPI_CORS_ORIGINS"
	EnvDatabaseDSN = "MOCKAPI_DATABASE_DSN"
	EnvLogLevel    = "MOCKAPI_LOG_LEVEL"
)

// parseEnv loads the dotenv file named by -e/-env into the process
// environment (existing variables win) and overlays MOCKAPI_* values.
func parseEnv(config *Config) {
	if file := flagx.EnvFileFlag(); file != "" {
		if err := godotenv.Load(file); err != nil {
			panic(err)
		}
	}

	if v := os.Getenv(EnvAddr); v != "" {
		config.Addr = v
	}
	if v := os.Getenv(EnvJWTSecret); v != "" {
		config.JWTSecret = v
	}
	if v := os.Getenv(EnvTokenTTL); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			panic(err)
		}
		config.TokenTTL = d
	}
	if v := os.Getenv(EnvCORSOrigins); v != "" {
		config.CORSOrigins = splitOrigins(v)
	}
	if v := os.Getenv(EnvDatabaseDSN); v != "" {
		config.DatabaseDSN = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		config.LogLevel = v
	}
}
