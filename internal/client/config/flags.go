package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/newsdesk/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
//	-a string   API base URL
//	-n int      default language id
//	-s string   session backend: sqlite, redis or memory
//	-d string   SQLite session database path
//	-r string   Redis URL for the redis session backend
//	-f string   favorites PostgreSQL DSN
//	-i int      online check interval in seconds
//	-l string   log level
//
// Only these flags are picked out of os.Args; -c and -e belong to the file
// loaders.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-n", "-s", "-d", "-r", "-f", "-i", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "API base URL")
	fs.IntVar(&cfg.LanguageID, "n", cfg.LanguageID, "default language id")
	fs.StringVar(&cfg.SessionBackend, "s", cfg.SessionBackend, "session backend (sqlite|redis|memory)")
	fs.StringVar(&cfg.SessionDSN, "d", cfg.SessionDSN, "SQLite session database")
	fs.StringVar(&cfg.RedisURL, "r", cfg.RedisURL, "Redis URL")
	fs.StringVar(&cfg.FavoritesDSN, "f", cfg.FavoritesDSN, "favorites database DSN")
	onlineCheckInterval := fs.Int("i", int(cfg.OnlineCheckInterval.Seconds()), "online check interval (in seconds)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.OnlineCheckInterval = time.Duration(*onlineCheckInterval) * time.Second
}
