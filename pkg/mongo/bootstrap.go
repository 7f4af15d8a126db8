package mongo

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/dmitrymomot/backend/pkg/logger"
)

// Bootstrapper establishes the startup database connection with a bounded
// number of retries and a fixed delay, keeping State in sync.
type Bootstrapper struct {
	cfg   Config
	state State
	log   *slog.Logger
	dial  Dialer
	sleep func(time.Duration)

	mu      sync.Mutex
	client  *mongo.Client
	lastErr error
	closed  bool
}

// Option configures a Bootstrapper.
type Option func(*Bootstrapper)

// WithLogger supplies the logger. Nil keeps the noop logger.
func WithLogger(l *slog.Logger) Option {
	return func(b *Bootstrapper) {
		if l != nil {
			b.log = l
		}
	}
}

// WithDialer replaces the driver-backed Dial.
func WithDialer(d Dialer) Option {
	if d == nil {
		panic("WithDialer: nil dialer")
	}
	return func(b *Bootstrapper) { b.dial = d }
}

// WithSleep replaces time.Sleep for the delay between attempts.
func WithSleep(fn func(time.Duration)) Option {
	if fn == nil {
		panic("WithSleep: nil sleep func")
	}
	return func(b *Bootstrapper) { b.sleep = fn }
}

// NewBootstrapper returns a Bootstrapper writing connectivity into state.
func NewBootstrapper(cfg Config, state State, opts ...Option) *Bootstrapper {
	if state == nil {
		panic("NewBootstrapper: nil state")
	}
	b := &Bootstrapper{
		cfg:   cfg.normalize(),
		state: state,
		log:   logger.Noop(),
		dial:  Dial,
		sleep: time.Sleep,
	}
	for _, opt := range opts {
		opt(b)
	}
	b.log = b.log.With(logger.Component("mongo"))
	return b
}

// Connect runs the bootstrap sequence: one attempt plus up to MaxRetries
// retries, RetryDelay apart. Every failure sets State to disconnected, the
// first success sets it to connected. It returns the connected client, or nil
// once the retries are exhausted. Failures are only logged, never returned,
// and the process is never terminated: an external supervisor is expected to
// restart the service when the health check keeps failing.
//
// The sequence cannot be aborted: cancellation of ctx is ignored, its values
// are kept for logging.
func (b *Bootstrapper) Connect(ctx context.Context) *mongo.Client {
	ctx = context.WithoutCancel(ctx)
	total := b.cfg.MaxRetries + 1
	uri := RedactURI(b.cfg.URI)

	for attempt := 0; ; attempt++ {
		if b.isClosed() {
			b.log.InfoContext(ctx, "mongo bootstrap stopped, bootstrapper closed")
			return nil
		}

		b.log.DebugContext(ctx, "connecting to mongo",
			logger.Attempt(attempt+1, total),
			logger.URI(uri),
			logger.Database(b.cfg.DBName),
		)

		client, err := b.dial(ctx, b.cfg)
		if err == nil {
			if !b.storeClient(client) {
				b.log.InfoContext(ctx, "mongo connected after close, disconnecting")
				_ = client.Disconnect(ctx)
				return nil
			}
			b.log.InfoContext(ctx, "connected to mongo",
				logger.Attempt(attempt+1, total),
				logger.Database(DatabaseName(b.cfg)),
			)
			return client
		}

		b.state.SetConnected(false)
		attemptErr := &AttemptError{Attempt: attempt, Err: err}
		b.setResult(nil, attemptErr)
		b.log.ErrorContext(ctx, "mongo connection attempt failed",
			logger.Attempt(attempt+1, total),
			logger.Error(err),
		)

		if attempt >= b.cfg.MaxRetries {
			b.setResult(nil, errors.Join(ErrRetriesExhausted, attemptErr))
			b.log.ErrorContext(ctx, "failed to connect to mongo after max retries, orchestrator should restart this service",
				logger.RetryCount(attempt),
				logger.Error(ErrRetriesExhausted),
			)
			return nil
		}

		b.log.InfoContext(ctx, "retrying mongo connection", logger.Duration(b.cfg.RetryDelay))
		b.sleep(b.cfg.RetryDelay)
	}
}

// storeClient records a successful connection and sets the state, unless
// Close already ran; then it reports false and leaves everything untouched.
func (b *Bootstrapper) storeClient(client *mongo.Client) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return false
	}
	b.client = client
	b.lastErr = nil
	b.state.SetConnected(true)
	return true
}

func (b *Bootstrapper) isClosed() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.closed
}

func (b *Bootstrapper) setResult(client *mongo.Client, err error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.client = client
	b.lastErr = err
}

// Client returns the connected client, or nil before success.
func (b *Bootstrapper) Client() *mongo.Client {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.client
}

// Err returns the most recent failure: an *AttemptError while retrying,
// ErrRetriesExhausted joined with the last attempt once the budget is spent,
// or nil after success.
func (b *Bootstrapper) Err() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.lastErr
}

// Database returns the selected database handle, or nil before success.
func (b *Bootstrapper) Database() *mongo.Database {
	client := b.Client()
	if client == nil {
		return nil
	}
	return client.Database(DatabaseName(b.cfg))
}

// State returns the connectivity flag the bootstrapper writes.
func (b *Bootstrapper) State() State {
	return b.state
}

// Close disconnects the client, if any, and marks the state disconnected.
// It is final: a Connect still retrying stops before its next attempt, and a
// client it obtains after Close is disconnected instead of being kept.
func (b *Bootstrapper) Close(ctx context.Context) error {
	b.mu.Lock()
	client := b.client
	b.client = nil
	b.closed = true
	b.state.SetConnected(false)
	b.mu.Unlock()

	if client == nil {
		return nil
	}
	return client.Disconnect(ctx)
}
