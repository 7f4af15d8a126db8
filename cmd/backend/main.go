package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/dmitrymomot/backend/pkg/config"
	"github.com/dmitrymomot/backend/pkg/environment"
	"github.com/dmitrymomot/backend/pkg/health"
	"github.com/dmitrymomot/backend/pkg/httpserver"
	"github.com/dmitrymomot/backend/pkg/logger"
	"github.com/dmitrymomot/backend/pkg/mongo"
	"github.com/dmitrymomot/backend/pkg/requestid"
)

const serviceName = "backend"

func main() {
	rc := config.MustResolve()

	env, err := config.ParseEnv(nil)
	if err != nil {
		slog.Error("failed to parse environment", logger.Error(err))
		os.Exit(1)
	}
	mode := env.Mode()

	log := logger.New(
		logger.WithEnvironment(mode, serviceName),
		logger.WithContextExtractors(requestid.LoggerExtractor(), environment.LoggerExtractor()),
	)
	logger.SetAsDefault(log)

	if env.PortDefaulted() {
		log.Debug("BACKEND_PORT missing or invalid, using default", logger.Port(rc.Port))
	}

	ctx := environment.WithContext(context.Background(), mode)

	var mcfg mongo.Config
	if err := config.Load(&mcfg); err != nil {
		log.Error("failed to load mongo settings", logger.Error(err))
		os.Exit(1)
	}
	mcfg.URI = rc.Mongo.URI
	mcfg.DBName = rc.Mongo.DBName

	var hcfg httpserver.Config
	if err := config.Load(&hcfg); err != nil {
		log.Error("failed to load http settings", logger.Error(err))
		os.Exit(1)
	}

	state := mongo.NewConnectionState()
	boot := mongo.NewBootstrapper(mcfg, state, mongo.WithLogger(log))

	// Probes are served while the bootstrapper is still retrying.
	go boot.Connect(ctx)

	srv := httpserver.NewFromConfig(rc.Addr(), hcfg,
		httpserver.WithLogger(log),
		httpserver.WithStopHook(func(l *slog.Logger) {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := boot.Close(ctx); err != nil {
				l.Error("failed to disconnect mongo", logger.Error(err))
			}
		}),
	)

	router := health.Router(state, boot.Healthcheck(),
		health.WithLogger(log),
		health.WithEnvironment(mode),
	)
	if err := srv.Run(ctx, router); err != nil {
		log.Error("server stopped with error", logger.Error(err))
		os.Exit(1)
	}
}
