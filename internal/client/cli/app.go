package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/dmitrijs2005/newsdesk/internal/client/client"
	"github.com/dmitrijs2005/newsdesk/internal/client/config"
	"github.com/dmitrijs2005/newsdesk/internal/client/models"
	"github.com/dmitrijs2005/newsdesk/internal/client/services"
	"github.com/dmitrijs2005/newsdesk/internal/client/session"
	"github.com/dmitrijs2005/newsdesk/internal/client/storage"
	"github.com/dmitrijs2005/newsdesk/internal/logging"
	"github.com/prometheus/client_golang/prometheus"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

// authAPI is the part of services.AuthService the commands use.
type authAPI interface {
	SignUp(ctx context.Context, in services.SignUpInput) client.Result[models.User]
	SignIn(ctx context.Context, email, password string) client.Result[models.User]
	SignOut(ctx context.Context) client.Result[struct{}]
	GetUserByID(ctx context.Context, id int64) client.Result[models.User]
	UpdateProfile(ctx context.Context, in services.ProfileUpdate) client.Result[models.User]
	RefreshUser(ctx context.Context, u models.User) error
	Session(ctx context.Context) models.Session
}

// newsAPI is the part of services.NewsService the commands use.
type newsAPI interface {
	GetNewsByCategory(ctx context.Context, slug string, opts services.ListOptions) client.Result[models.Page[models.News]]
	GetNews(ctx context.Context, f services.NewsFilter, opts services.ListOptions) client.Result[models.Page[models.News]]
	GetNewsByTag(ctx context.Context, slug string, opts services.ListOptions) client.Result[models.Page[models.News]]
	SearchNews(ctx context.Context, text string, opts services.ListOptions) client.Result[models.Page[models.News]]
	GetHeadlines(ctx context.Context, opts services.ListOptions) client.Result[models.Page[models.News]]
	GetNewsBySlug(ctx context.Context, slug string) client.Result[models.News]
	GetBreakingNews(ctx context.Context, slug string, opts services.ListOptions) client.Result[models.Page[models.BreakingNews]]
	GetCategories(ctx context.Context, opts services.ListOptions) client.Result[models.Page[models.Category]]
	GetTags(ctx context.Context, opts services.ListOptions) client.Result[models.Page[models.Tag]]
	GetFeaturedSections(ctx context.Context, opts services.ListOptions) client.Result[models.FeaturedSections]
	SetNewsView(ctx context.Context, newsID int64) client.Result[struct{}]
	SetBreakingNewsView(ctx context.Context, breakingNewsID int64) client.Result[struct{}]
	SetLike(ctx context.Context, newsID int64, like bool) client.Result[struct{}]
	SetBookmark(ctx context.Context, newsID int64, bookmark bool) client.Result[struct{}]
	GetBookmarks(ctx context.Context, opts services.ListOptions) client.Result[models.Page[models.News]]
	Ping(ctx context.Context) error
}

type favoritesAPI interface {
	Add(ctx context.Context, n models.News) error
	Remove(ctx context.Context, newsID int64) error
	List(ctx context.Context, offset int) ([]models.Favorite, error)
}

type App struct {
	config    *config.Config
	auth      authAPI
	news      newsAPI
	favorites favoritesAPI // nil when no favorites DSN is configured
	registry  prometheus.Gatherer
	logger    logging.Logger
	out       io.Writer
	reader    *bufio.Reader

	closers []func() error

	mu       sync.Mutex
	mode     Mode
	userName string
	// stories printed by the latest listing, by ID
	listed map[int64]models.News
}

// NewApp opens the session and favorites backends and builds the services
// on top of a single HTTP executor.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.NewText(os.Stderr, c.LogLevel)

	repos, err := storage.Open(ctx, storage.Options{
		SessionBackend: c.SessionBackend,
		SessionDSN:     c.SessionDSN,
		RedisURL:       c.RedisURL,
		FavoritesDSN:   c.FavoritesDSN,
	})
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}

	store := session.NewStore(repos.Metadata, logger)
	notifier := session.NewNotifier()

	registry := prometheus.NewRegistry()
	metrics, err := client.NewMetrics(registry)
	if err != nil {
		_ = repos.Close()
		return nil, err
	}

	exec, err := client.NewHTTPExecutor(c.APIBaseURL, store,
		client.WithLogger(logger),
		client.WithMetrics(metrics),
	)
	if err != nil {
		_ = repos.Close()
		return nil, err
	}

	app := &App{
		config:   c,
		auth:     services.NewAuthService(exec, store, notifier, logger),
		news:     services.NewNewsService(exec, c.LanguageID),
		registry: registry,
		logger:   logger,
		out:      os.Stdout,
		reader:   bufio.NewReader(os.Stdin),
		closers:  []func() error{repos.Close},
	}
	if repos.Favorites != nil {
		app.favorites = services.NewFavoritesService(repos.Favorites, store)
	}

	unsubscribe := notifier.Subscribe(func() { app.refreshUser(context.Background()) })
	app.closers = append(app.closers, func() error { unsubscribe(); return nil })
	app.refreshUser(ctx)

	return app, nil
}

// Run starts the online watcher and the REPL, and releases the backends
// when the user exits.
func (a *App) Run(ctx context.Context) {
	defer a.close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	fmt.Fprintln(a.out, "Welcome to newsdesk CLI (type 'help' for commands)")
	if a.isLoggedIn() {
		fmt.Fprintf(a.out, "Signed in as %s\n", a.currentUser())
	}

	go a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)

	runREPL(ctx, a, a.getStatus, a.reader)
}

func (a *App) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			a.logger.Warn(context.Background(), "close failed", "error", err)
		}
	}
	a.closers = nil
}

func (a *App) isLoggedIn() bool {
	return a.auth.Session(context.Background()).IsLoggedIn
}

// refreshUser re-reads the session to keep the prompt in sync. It is the
// session-changed listener.
func (a *App) refreshUser(ctx context.Context) {
	name := ""
	if s := a.auth.Session(ctx); s.IsLoggedIn && s.User != nil {
		name = s.User.Name
		if name == "" {
			name = s.User.Email
		}
	}
	a.mu.Lock()
	a.userName = name
	a.mu.Unlock()
}

func (a *App) currentUser() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.userName
}

func (a *App) currentMode() Mode {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.mode
}

func (a *App) setMode(mode Mode) {
	a.mu.Lock()
	changed := a.mode != mode
	a.mode = mode
	a.mu.Unlock()

	if changed && a.logger != nil {
		a.logger.Info(context.Background(), "switched mode", "mode", string(mode))
	}
}

func (a *App) getStatus() string {
	a.mu.Lock()
	defer a.mu.Unlock()

	s := ""
	if a.userName != "" {
		s = a.userName + " "
	}
	if a.mode != "" {
		s = s + string(a.mode)
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

// checkOnline probes the API once and updates the mode.
func (a *App) checkOnline(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if err := a.news.Ping(ctx); err != nil {
		a.setMode(ModeOffline)
		return
	}
	a.setMode(ModeOnline)
}

// StartOnlineStatusWatcher probes the API immediately and then every
// interval until ctx is canceled.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	a.checkOnline(ctx)
	if interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			a.checkOnline(ctx)
		case <-ctx.Done():
			return
		}
	}
}
