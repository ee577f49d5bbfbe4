// Package storage opens the client's persistence backends and applies their
// embedded migrations: the session KV (SQLite, Redis or memory) and the
// optional hosted favorites database (PostgreSQL).
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"

	"github.com/dmitrijs2005/newsdesk/internal/client/migrations"
	"github.com/dmitrijs2005/newsdesk/internal/client/repositories/favorites"
	"github.com/dmitrijs2005/newsdesk/internal/client/repositories/metadata"
	"github.com/pressly/goose/v3"
	"github.com/redis/go-redis/v9"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

// Session backends.
const (
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

var ErrUnknownBackend = errors.New("unknown session backend")

// Options selects and addresses the backends.
type Options struct {
	SessionBackend string
	SessionDSN     string
	RedisURL       string
	// FavoritesDSN empty means favorites are disabled.
	FavoritesDSN string
}

type Repositories struct {
	Metadata  metadata.Repository
	Favorites favorites.Repository // nil when disabled

	closers []func() error
}

// Open builds the repositories described by opts. On error everything
// opened so far is closed again.
func Open(ctx context.Context, opts Options) (*Repositories, error) {
	repos := &Repositories{}
	if err := repos.open(ctx, opts); err != nil {
		_ = repos.Close()
		return nil, err
	}
	return repos, nil
}

func (r *Repositories) open(ctx context.Context, opts Options) error {
	switch opts.SessionBackend {
	case BackendSQLite, "":
		db, err := OpenSQLite(ctx, opts.SessionDSN)
		if err != nil {
			return err
		}
		r.closers = append(r.closers, db.Close)
		r.Metadata = metadata.NewSQLiteRepository(db)
	case BackendRedis:
		rdb, err := OpenRedis(ctx, opts.RedisURL)
		if err != nil {
			return err
		}
		r.closers = append(r.closers, rdb.Close)
		r.Metadata = metadata.NewRedisRepository(rdb, metadata.DefaultRedisPrefix)
	case BackendMemory:
		r.Metadata = metadata.NewMemoryRepository()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownBackend, opts.SessionBackend)
	}

	if opts.FavoritesDSN != "" {
		db, err := OpenPostgres(ctx, opts.FavoritesDSN)
		if err != nil {
			return err
		}
		r.closers = append(r.closers, db.Close)
		r.Favorites = favorites.NewPostgresRepository(db)
	}

	return nil
}

// Close releases every opened backend, returning the joined errors.
func (r *Repositories) Close() error {
	var errs []error
	for i := len(r.closers) - 1; i >= 0; i-- {
		errs = append(errs, r.closers[i]())
	}
	r.closers = nil
	return errors.Join(errs...)
}

// OpenSQLite opens the local session database and migrates it. The pool is
// limited to one connection so ":memory:" databases stay a single database
// and writers never contend.
func OpenSQLite(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlite open error: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := RunSQLiteMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// OpenPostgres opens the favorites database through the pgx stdlib driver
// and migrates it.
func OpenPostgres(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres open error: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("postgres ping error: %w", err)
	}
	if err := RunPostgresMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

func OpenRedis(ctx context.Context, url string) (*redis.Client, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("redis url error: %w", err)
	}
	rdb := redis.NewClient(opt)
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping error: %w", err)
	}
	return rdb, nil
}

func RunSQLiteMigrations(ctx context.Context, db *sql.DB) error {
	return runMigrations(ctx, db, goose.DialectSQLite3, migrations.SQLite, "sqlite")
}

func RunPostgresMigrations(ctx context.Context, db *sql.DB) error {
	return runMigrations(ctx, db, goose.DialectPostgres, migrations.Postgres, "postgres")
}

func runMigrations(ctx context.Context, db *sql.DB, dialect goose.Dialect, fsys fs.FS, dir string) error {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		return fmt.Errorf("migrations fs error: %w", err)
	}
	provider, err := goose.NewProvider(dialect, db, sub)
	if err != nil {
		return fmt.Errorf("migrations init error: %w", err)
	}
	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("migrations error: %w", err)
	}
	return nil
}
