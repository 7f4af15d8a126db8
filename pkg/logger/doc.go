// Package logger builds *slog.Logger instances for the backend process and
// provides attribute helpers that keep key names consistent between the
// configuration resolver, the database bootstrapper and the HTTP layer.
//
// New applies functional options (format, level, static attributes, context
// extractors) and wraps the handler with LogHandlerDecorator, which pulls
// request-scoped values such as the request id or run mode out of the context
// on every Handle call.
//
// # Usage
//
//	env := environment.Parse(os.Getenv("NODE_ENV"))
//	log := logger.New(
//	    logger.WithEnvironment(env, "backend"),
//	    logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	logger.SetAsDefault(log)
//
//	log.Error("mongo connection attempt failed",
//	    logger.Attempt(2, 6),
//	    logger.Error(err),
//	)
//
// Error and Errors return an empty attribute for nil errors, so they can be
// passed unconditionally. Noop returns a logger that drops every record and is
// used as the fallback when a component is built without a logger.
package logger
