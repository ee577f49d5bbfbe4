package mockapi

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/newsdesk/internal/mockapi/config"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	c := &config.Config{}
	c.LoadDefaults()
	c.Addr = "127.0.0.1:0"
	c.LogLevel = "error"
	return c
}

func TestNewApp_InMemory(t *testing.T) {
	app, err := NewApp(context.Background(), testConfig())
	require.NoError(t, err)
	require.Nil(t, app.db)
	require.NotNil(t, app.server.Handler)
}

func TestNewApp_UnreachableDatabase(t *testing.T) {
	c := testConfig()
	c.DatabaseDSN = "postgres://user@127.0.0.1:1/mock?connect_timeout=1&sslmode=disable"

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := NewApp(ctx, c)
	require.ErrorContains(t, err, "db init error")
}

func TestRun_StopsOnCancel(t *testing.T) {
	app, err := NewApp(context.Background(), testConfig())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return")
	}
}
