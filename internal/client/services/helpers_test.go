package services

import (
	"context"
	"errors"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/newsdesk/internal/client/client"
	"github.com/dmitrijs2005/newsdesk/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/newsdesk/internal/client/session"
	"github.com/dmitrijs2005/newsdesk/internal/logging"
	"github.com/dmitrijs2005/newsdesk/internal/mockapi"
	"github.com/dmitrijs2005/newsdesk/internal/mockapi/content"
	"github.com/dmitrijs2005/newsdesk/internal/mockapi/users"
)

// fakeExecutor records requests and replays canned responses in order.
// When the queue is empty it answers {"error":false}.
type fakeExecutor struct {
	mu        sync.Mutex
	requests  []client.Request
	responses []client.Result[*client.Payload]
	// tokenAtCall is the store token seen when each request was made.
	tokens      *session.Store
	tokenAtCall []string
}

func (f *fakeExecutor) Execute(ctx context.Context, req client.Request) client.Result[*client.Payload] {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.requests = append(f.requests, req)
	if f.tokens != nil {
		tok, _ := f.tokens.Token(ctx)
		f.tokenAtCall = append(f.tokenAtCall, tok)
	}
	if len(f.responses) == 0 {
		return jsonResponse(200, `{"error":false}`)
	}
	r := f.responses[0]
	f.responses = f.responses[1:]
	return r
}

func (f *fakeExecutor) enqueue(r ...client.Result[*client.Payload]) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.responses = append(f.responses, r...)
}

func (f *fakeExecutor) last(t *testing.T) client.Request {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	require.NotEmpty(t, f.requests)
	return f.requests[len(f.requests)-1]
}

func jsonResponse(status int, body string) client.Result[*client.Payload] {
	return client.Normalize(status, "application/json", []byte(body))
}

func transportFailure() client.Result[*client.Payload] {
	return client.Result[*client.Payload]{Kind: client.KindTransport, Error: "dial tcp: connection refused"}
}

// failingRepo rejects every write; reads see an empty store.
type failingRepo struct{ metadata.Repository }

var errDiskFull = errors.New("disk full")

func (failingRepo) SetMany(context.Context, map[string][]byte) error { return errDiskFull }
func (failingRepo) Delete(context.Context, ...string) error          { return errDiskFull }
func (failingRepo) Get(context.Context, string) ([]byte, error)      { return nil, nil }
func (failingRepo) GetMany(context.Context, ...string) (map[string][]byte, error) {
	return map[string][]byte{}, nil
}

type counter struct {
	mu sync.Mutex
	n  int
}

func (c *counter) inc() {
	c.mu.Lock()
	c.n++
	c.mu.Unlock()
}

func (c *counter) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.n
}

type fixture struct {
	exec     *fakeExecutor
	store    *session.Store
	notifier *session.Notifier
	auth     *AuthService
	news     *NewsService
	notified *counter
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := session.NewStore(metadata.NewMemoryRepository(), logging.NewNop())
	notifier := session.NewNotifier()
	exec := &fakeExecutor{tokens: store}
	notified := &counter{}
	unsubscribe := notifier.Subscribe(notified.inc)
	t.Cleanup(unsubscribe)

	return &fixture{
		exec:     exec,
		store:    store,
		notifier: notifier,
		auth:     NewAuthService(exec, store, notifier, logging.NewNop()),
		news:     NewNewsService(exec, DefaultLanguageID),
		notified: notified,
	}
}

// liveFixture wires the real executor to an in-process mock API.
type liveFixture struct {
	store    *session.Store
	notifier *session.Notifier
	auth     *AuthService
	news     *NewsService
}

func newLiveFixture(t *testing.T) *liveFixture {
	t.Helper()
	us := users.NewService(users.NewMemoryRepository(), []byte("test-secret"), time.Hour)
	srv := httptest.NewServer(mockapi.NewRouter(us, content.Seeded(), logging.NewNop(), []string{"*"}))
	t.Cleanup(srv.Close)

	store := session.NewStore(metadata.NewMemoryRepository(), logging.NewNop())
	notifier := session.NewNotifier()
	exec, err := client.NewHTTPExecutor(srv.URL+mockapi.APIPrefix, store)
	require.NoError(t, err)

	return &liveFixture{
		store:    store,
		notifier: notifier,
		auth:     NewAuthService(exec, store, notifier, logging.NewNop()),
		news:     NewNewsService(exec, DefaultLanguageID),
	}
}
