package mockapi

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dmitrijs2005/newsdesk/internal/logging"
	"github.com/dmitrijs2005/newsdesk/internal/mockapi/config"
	"github.com/dmitrijs2005/newsdesk/internal/mockapi/content"
	"github.com/dmitrijs2005/newsdesk/internal/mockapi/migrations"
	"github.com/dmitrijs2005/newsdesk/internal/mockapi/users"
	"github.com/pressly/goose/v3"

	_ "github.com/jackc/pgx/v5/stdlib"
)

const shutdownTimeout = 5 * time.Second

type App struct {
	config *config.Config
	logger logging.Logger
	server *http.Server
	db     *sql.DB // nil when users live in memory
}

// NewApp keeps users in memory unless a database DSN is configured, in
// which case the PostgreSQL user store is opened and migrated.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.NewJSON(os.Stdout, c.LogLevel)
	app := &App{config: c, logger: logger}

	var repo users.Repository = users.NewMemoryRepository()
	if c.DatabaseDSN != "" {
		db, err := openPostgres(ctx, c.DatabaseDSN)
		if err != nil {
			return nil, fmt.Errorf("db init error: %w", err)
		}
		app.db = db
		repo = users.NewPostgresRepository(db)
	}

	us := users.NewService(repo, []byte(c.JWTSecret), c.TokenTTL)
	cs := content.Seeded()

	app.server = &http.Server{
		Addr:              c.Addr,
		Handler:           NewRouter(us, cs, logger, c.CORSOrigins),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return app, nil
}

func openPostgres(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db ping error: %w", err)
	}

	sub, err := fs.Sub(migrations.Postgres, "postgres")
	if err == nil {
		var provider *goose.Provider
		if provider, err = goose.NewProvider(goose.DialectPostgres, db, sub); err == nil {
			_, err = provider.Up(ctx)
		}
	}
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration error: %w", err)
	}
	return db, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// Run serves until ctx is canceled or a termination signal arrives, then
// shuts the server down gracefully.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()
	defer app.closeDB()

	app.initSignalHandler(cancelFunc)
	app.logger.Info(ctx, "starting mock api", "addr", app.config.Addr)

	errCh := make(chan error, 1)
	go func() {
		if err := app.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			app.logger.Error(ctx, "server failed", "error", err)
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	app.logger.Info(shutdownCtx, "shutting down")
	if err := app.server.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}

func (app *App) closeDB() {
	if app.db == nil {
		return
	}
	if err := app.db.Close(); err != nil {
		app.logger.Warn(context.Background(), "db close failed", "error", err)
	}
}
