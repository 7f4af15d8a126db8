// Package mongo bootstraps the backend's MongoDB connection at startup.
//
// A Bootstrapper makes one connection attempt plus up to MaxRetries retries
// (5 by default) with a fixed RetryDelay (2s) between them. Each attempt uses a
// 5s server-selection timeout and a 45s operation timeout and is verified with
// a ping against the primary. Connectivity is published through a State that
// is injected into both the bootstrapper and the health checks reading it.
//
// Failures never propagate: every failed attempt is logged and flips the State
// to disconnected, and once the budget is spent Connect logs
// ErrRetriesExhausted and returns nil. The process keeps running so that an
// orchestrator (Docker Compose, Kubernetes) can observe the failing health
// check and restart it.
//
// # Usage
//
//	rc := config.MustResolve()
//
//	cfg := mongo.NewConfig(rc.Mongo.URI, rc.Mongo.DBName)
//	state := mongo.NewConnectionState()
//	boot := mongo.NewBootstrapper(cfg, state, mongo.WithLogger(log))
//
//	go boot.Connect(ctx)
//
//	readiness := boot.Healthcheck() // flag + ping
//	liveFlag := mongo.StateCheck(state)
//
// The tunables in Config can also be read from the environment
// (MONGO_SERVER_SELECTION_TIMEOUT, MONGO_SOCKET_TIMEOUT, MONGO_MAX_RETRIES,
// MONGO_RETRY_DELAY) with config.Load; their defaults equal the constants above.
//
// Connection strings are passed through RedactURI before they are logged.
package mongo
