// Package environment resolves the application run mode (development,
// staging, production) and propagates it through context.Context, HTTP
// requests and structured logs.
//
// The run mode is read from NODE_ENV by the config package and normalised
// with Parse. Only Production changes behaviour inside this module: it
// enables the credential-based MongoDB URI when root credentials are present.
//
// # Usage
//
//	env := environment.Parse(os.Getenv("NODE_ENV"))
//	if env.IsProduction() {
//	    // production-specific behaviour
//	}
//
//	ctx := environment.WithContext(context.Background(), env)
//	log := logger.New(logger.WithContextExtractors(environment.LoggerExtractor()))
//	log.InfoContext(ctx, "started") // carries env=<mode>
//
// Middleware sets the environment on every request's context so handlers and
// loggers downstream can read it without explicit parameter passing.
package environment
