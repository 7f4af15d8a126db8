// Package httpserver runs the backend's HTTP listener with graceful shutdown.
//
// Run blocks until the context is cancelled or SIGINT/SIGTERM arrives, then
// calls http.Server.Shutdown bounded by the configured shutdown timeout and
// runs the registered stop hooks (the entrypoint uses one to disconnect the
// MongoDB client). Listener failures are wrapped with ErrStart, shutdown
// failures with ErrShutdown.
//
//	rc := config.MustResolve()
//	var hc httpserver.Config
//	_ = config.Load(&hc)
//
//	srv := httpserver.NewFromConfig(rc.Addr(), hc,
//	    httpserver.WithLogger(log),
//	    httpserver.WithStopHook(func(*slog.Logger) { _ = boot.Close(context.Background()) }),
//	)
//	if err := srv.Run(ctx, health.Router(state, boot.Healthcheck())); err != nil {
//	    log.Error("server stopped", logger.Error(err))
//	}
package httpserver
