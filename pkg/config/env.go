package config

import (
	"errors"
	"strconv"
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/dmitrymomot/backend/pkg/environment"
)

// Env is the raw view of the environment variables the resolver consumes.
// Every field is a plain string so that malformed values never fail parsing;
// interpretation and defaulting happen in Resolve.
type Env struct {
	Port          string `env:"BACKEND_PORT"`               // Port the HTTP layer listens on, base-10 integer.
	MongoURI      string `env:"MONGO_URI"`                  // MongoURI overrides URI construction when non-blank.
	MongoDatabase string `env:"MONGO_DATABASE"`             // MongoDatabase selects the database; empty means unset.
	NodeEnv       string `env:"NODE_ENV"`                   // NodeEnv is the run mode, "production" enables credentials.
	RootUsername  string `env:"MONGO_INITDB_ROOT_USERNAME"` // RootUsername is the MongoDB root user.
	RootPassword  string `env:"MONGO_INITDB_ROOT_PASSWORD"` // RootPassword is the MongoDB root password.
}

// ParseEnv reads Env from environ. A nil map reads the process environment.
func ParseEnv(environ map[string]string) (Env, error) {
	e, err := env.ParseAsWithOptions[Env](env.Options{Environment: environ})
	if err != nil {
		return Env{}, errors.Join(ErrParsingConfig, err)
	}
	return e, nil
}

// IsProduction reports whether NODE_ENV equals "production", ignoring case.
// Aliases and padded values do not count, so only an exact production
// deployment gets credential URIs.
func (e Env) IsProduction() bool {
	return strings.EqualFold(e.NodeEnv, string(environment.Production))
}

// Mode returns the run mode derived from NODE_ENV, used for logging presets.
func (e Env) Mode() environment.Environment {
	return environment.Parse(e.NodeEnv)
}

// HasRootCredentials reports whether both root username and password are set.
func (e Env) HasRootCredentials() bool {
	return e.RootUsername != "" && e.RootPassword != ""
}

// HasURIOverride reports whether MONGO_URI carries a usable value.
func (e Env) HasURIOverride() bool {
	return strings.TrimSpace(e.MongoURI) != ""
}

// PortDefaulted reports whether BACKEND_PORT was set but could not be parsed,
// meaning the resolved port silently fell back to DefaultPort.
func (e Env) PortDefaulted() bool {
	if strings.TrimSpace(e.Port) == "" {
		return false
	}
	_, ok := parsePort(e.Port)
	return !ok
}

func parsePort(raw string) (int, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	p, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return p, true
}
