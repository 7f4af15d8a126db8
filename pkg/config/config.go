package config

import (
	"fmt"
	"sync"

	"github.com/joho/godotenv"
)

// DefaultPort is used when BACKEND_PORT is absent or not an integer.
const DefaultPort = 3847

// RuntimeConfig is the resolved startup configuration. It is returned by
// value and never mutated; re-resolve from the environment to pick up changes.
type RuntimeConfig struct {
	Port  int
	Mongo MongoConfig
}

// MongoConfig holds the database part of RuntimeConfig.
type MongoConfig struct {
	URI string
	// DBName is empty when MONGO_DATABASE is unset. In that case no database
	// is selected explicitly and the one in URI applies.
	DBName string
}

// Addr returns the listen address for Port, e.g. ":3847".
func (c RuntimeConfig) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// FromEnv resolves a RuntimeConfig from already-parsed variables.
func FromEnv(e Env) RuntimeConfig {
	port, ok := parsePort(e.Port)
	if !ok {
		port = DefaultPort
	}
	return RuntimeConfig{
		Port: port,
		Mongo: MongoConfig{
			URI:    BuildMongoURI(e),
			DBName: e.MongoDatabase,
		},
	}
}

// ResolveFrom resolves a RuntimeConfig from environ without touching the
// process environment. A nil map reads the process environment.
func ResolveFrom(environ map[string]string) (RuntimeConfig, error) {
	e, err := ParseEnv(environ)
	if err != nil {
		return RuntimeConfig{}, err
	}
	return FromEnv(e), nil
}

var (
	cacheMu       sync.Mutex
	cached        *RuntimeConfig
	envFileLoaded bool
)

// Resolve returns the process-wide RuntimeConfig. The first call loads the
// default .env file (a missing file is fine, existing variables win) and
// resolves the process environment; later calls return the same value.
func Resolve() (RuntimeConfig, error) {
	cacheMu.Lock()
	defer cacheMu.Unlock()

	if cached != nil {
		return *cached, nil
	}

	if !envFileLoaded {
		_ = godotenv.Load()
		envFileLoaded = true
	}

	cfg, err := ResolveFrom(nil)
	if err != nil {
		return RuntimeConfig{}, err
	}
	cached = &cfg
	return cfg, nil
}

// MustResolve works like Resolve but panics on failure.
func MustResolve() RuntimeConfig {
	cfg, err := Resolve()
	if err != nil {
		panic(fmt.Sprintf("Failed to resolve runtime configuration: %v", err))
	}
	return cfg
}

// ResetCache drops the cached RuntimeConfig so the next Resolve re-reads the
// environment. Intended for tests.
func ResetCache() {
	cacheMu.Lock()
	defer cacheMu.Unlock()
	cached = nil
	envFileLoaded = false
}
