// Package config resolves the backend's RuntimeConfig from environment
// variables.
//
// Resolution rules:
//
//   - Port: BACKEND_PORT parsed as a base-10 integer, DefaultPort (3847) when
//     absent or malformed. Malformed input is not an error.
//   - Database: MONGO_DATABASE. RuntimeConfig.Mongo.DBName stays empty when it
//     is unset; constructed URIs fall back to DefaultDatabase ("test").
//   - URI: a non-blank MONGO_URI is used verbatim. Otherwise, when NODE_ENV is
//     production (case-insensitive) and both MONGO_INITDB_ROOT_USERNAME and
//     MONGO_INITDB_ROOT_PASSWORD are set, the URI embeds the percent-encoded
//     credentials and authSource=admin; in every other case it is
//     mongodb://mongo:27017/<db>.
//
// Variables are read with github.com/caarlos0/env/v11. Resolve also loads the
// default .env file with github.com/joho/godotenv before its first read and
// caches the result for the lifetime of the process. ResolveFrom is the pure
// variant used by tests and tools.
//
// # Usage
//
//	cfg, err := config.Resolve()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	srv := httpserver.New(httpserver.WithAddr(cfg.Addr()))
//
// Custom env files can be loaded first with LoadEnv("./deploy/.env").
package config
