package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/newsdesk/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
//	-a string     bind address (e.g. ":8080")
//	-s string     JWT HMAC secret
//	-t duration   token lifetime (e.g. "24h")
//	-o string     comma-separated CORS origins
//	-d string     PostgreSQL DSN for users
//	-l string     log level
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-s", "-t", "-o", "-d", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.Addr, "a", config.Addr, "address and port to run server")
	fs.StringVar(&config.JWTSecret, "s", config.JWTSecret, "secret key")
	fs.DurationVar(&config.TokenTTL, "t", config.TokenTTL, "token validity duration")
	origins := fs.String("o", "", "comma-separated CORS origins")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	if *origins != "" {
		config.CORSOrigins = splitOrigins(*origins)
	}
}
