package httpserver_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/backend/pkg/config"
	"github.com/dmitrymomot/backend/pkg/health"
	"github.com/dmitrymomot/backend/pkg/httpserver"
	"github.com/dmitrymomot/backend/pkg/mongo"
)

func freeAddr(t *testing.T) string {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())
	return addr
}

func waitUp(t *testing.T, url string) *http.Response {
	t.Helper()
	var resp *http.Response
	require.Eventually(t, func() bool {
		r, err := http.Get(url)
		if err != nil {
			return false
		}
		resp = r
		return true
	}, 2*time.Second, 20*time.Millisecond)
	return resp
}

func TestServerServesHealthUntilCancelled(t *testing.T) {
	t.Parallel()

	addr := freeAddr(t)
	state := mongo.NewConnectionState()
	var stopped atomic.Bool

	srv := httpserver.New(
		httpserver.WithAddr(addr),
		httpserver.WithStopHook(func(*slog.Logger) { stopped.Store(true) }),
	)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx, health.Router(state, nil)) }()

	resp := waitUp(t, "http://"+addr+"/readyz")
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	assert.Equal(t, "NOT_READY", string(body))

	state.SetConnected(true)
	resp, err := http.Get("http://" + addr + "/readyz")
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not stop")
	}
	assert.True(t, stopped.Load())
}

func TestServerStartHook(t *testing.T) {
	t.Parallel()

	var started atomic.Bool
	srv := httpserver.New(
		httpserver.WithAddr(freeAddr(t)),
		httpserver.WithStartHook(func(*slog.Logger) { started.Store(true) }),
	)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx, nil) }()

	require.Eventually(t, started.Load, time.Second, 10*time.Millisecond)
	cancel()
	require.NoError(t, <-done)
}

func TestServerAddrInUse(t *testing.T) {
	t.Parallel()

	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()

	srv := httpserver.New(httpserver.WithAddr(l.Addr().String()))
	err = srv.Run(context.Background(), nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, httpserver.ErrStart))
}

func TestServerRunTwice(t *testing.T) {
	t.Parallel()

	addr := freeAddr(t)
	srv := httpserver.New(httpserver.WithAddr(addr))
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx, nil) }()
	_ = waitUp(t, "http://"+addr+"/").Body.Close()

	err := srv.Run(context.Background(), nil)
	assert.True(t, errors.Is(err, httpserver.ErrStart))

	cancel()
	require.NoError(t, <-done)
}

func TestShutdownIsIdempotent(t *testing.T) {
	t.Parallel()

	var stops atomic.Int32
	var srv *httpserver.Server

	addr := freeAddr(t)
	srv = httpserver.New(
		httpserver.WithAddr(addr),
		httpserver.WithStopHook(func(*slog.Logger) { stops.Add(1) }),
	)
	done := make(chan error, 1)
	go func() { done <- srv.Run(context.Background(), nil) }()
	_ = waitUp(t, "http://"+addr+"/").Body.Close()

	require.NoError(t, srv.Shutdown(context.Background()))
	require.NoError(t, srv.Shutdown(context.Background()))
	require.NoError(t, <-done)
	assert.Equal(t, int32(1), stops.Load())
}

func TestShutdownBeforeRun(t *testing.T) {
	t.Parallel()
	assert.NoError(t, httpserver.New().Shutdown(context.Background()))
}

func TestNewFromConfig(t *testing.T) {
	t.Setenv("HTTP_READ_TIMEOUT", "3s")
	t.Setenv("HTTP_SHUTDOWN_TIMEOUT", "1s")

	var cfg httpserver.Config
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, 3*time.Second, cfg.ReadTimeout)
	assert.Equal(t, 30*time.Second, cfg.WriteTimeout)
	assert.Equal(t, 120*time.Second, cfg.IdleTimeout)
	assert.Equal(t, time.Second, cfg.ShutdownTimeout)

	addr := freeAddr(t)
	srv := httpserver.NewFromConfig(addr, cfg)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx, health.Router(mongo.NewConnectionState(), nil)) }()

	resp := waitUp(t, "http://"+addr+"/livez")
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()
	require.NoError(t, <-done)
}

func TestOptionPanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { httpserver.WithAddr("") })
	assert.Panics(t, func() { httpserver.WithReadTimeout(0) })
	assert.Panics(t, func() { httpserver.WithWriteTimeout(-time.Second) })
	assert.Panics(t, func() { httpserver.WithIdleTimeout(0) })
	assert.Panics(t, func() { httpserver.WithShutdownTimeout(0) })
	assert.Panics(t, func() { httpserver.WithStartHook(nil) })
	assert.Panics(t, func() { httpserver.WithStopHook(nil) })
	assert.NotPanics(t, func() { httpserver.WithLogger(nil) })
}
