package health

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/backend/pkg/environment"
	"github.com/dmitrymomot/backend/pkg/logger"
	"github.com/dmitrymomot/backend/pkg/mongo"
	"github.com/dmitrymomot/backend/pkg/requestid"
)

// Check reports whether a dependency is ready to serve.
type Check func(context.Context) error

// Values of Response.Status.
const (
	StatusOK          = "ok"
	StatusUnavailable = "unavailable"
)

// Values of Response.Database.
const (
	DatabaseConnected    = "connected"
	DatabaseDisconnected = "disconnected"
)

// Response is the JSON body of GET /health.
type Response struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

const defaultCheckTimeout = 2 * time.Second

type options struct {
	env          environment.Environment
	logger       *slog.Logger
	checkTimeout time.Duration
}

// Option configures the router.
type Option func(*options)

// WithEnvironment tags request contexts with env so it shows up in logs.
func WithEnvironment(env environment.Environment) Option {
	return func(o *options) { o.env = env }
}

// WithLogger logs failed readiness checks to l. Nil keeps the noop logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithCheckTimeout bounds each readiness check.
func WithCheckTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("WithCheckTimeout: duration must be > 0")
	}
	return func(o *options) { o.checkTimeout = d }
}

// Router serves the probe endpoints:
//
//	GET /livez   200 ALIVE
//	GET /readyz  200 READY | 503 NOT_READY
//	GET /health  200|503 {"status":"ok|unavailable","database":"connected|disconnected"}
//
// state is only read. check runs on every readiness request; a nil check
// falls back to the connectivity flag.
func Router(state mongo.State, check Check, opts ...Option) http.Handler {
	if state == nil {
		panic("health.Router: state is nil")
	}
	o := &options{
		env:          environment.Development,
		logger:       logger.Noop(),
		checkTimeout: defaultCheckTimeout,
	}
	for _, opt := range opts {
		opt(o)
	}
	if check == nil {
		check = mongo.StateCheck(state)
	}
	h := &handler{state: state, check: check, opts: o, logger: o.logger.With(logger.Component("health"))}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestid.Middleware)
	r.Use(environment.Middleware(o.env))

	r.Get("/livez", h.live)
	r.Get("/readyz", h.ready)
	r.Get("/health", h.health)
	return r
}

type handler struct {
	state  mongo.State
	check  Check
	opts   *options
	logger *slog.Logger
}

func (h *handler) live(w http.ResponseWriter, _ *http.Request) {
	writeText(w, http.StatusOK, "ALIVE")
}

func (h *handler) ready(w http.ResponseWriter, r *http.Request) {
	if err := h.run(r.Context()); err != nil {
		writeText(w, http.StatusServiceUnavailable, "NOT_READY")
		return
	}
	writeText(w, http.StatusOK, "READY")
}

func (h *handler) health(w http.ResponseWriter, r *http.Request) {
	resp := Response{Status: StatusOK, Database: DatabaseConnected}
	code := http.StatusOK

	if !h.state.Connected() {
		resp.Database = DatabaseDisconnected
	}
	if err := h.run(r.Context()); err != nil {
		resp.Status = StatusUnavailable
		code = http.StatusServiceUnavailable
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(resp)
}

func (h *handler) run(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, h.opts.checkTimeout)
	defer cancel()

	err := h.check(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "readiness check failed", logger.Error(err))
	}
	return err
}

func writeText(w http.ResponseWriter, code int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(code)
	_, _ = w.Write([]byte(body))
}
