package environment

import "strings"

// Environment represents application environment.
type Environment string

const (
	// Development is the default when the mode variable is unset.
	Development Environment = "development"
	// Production selects the production logging preset.
	Production Environment = "production"
	// Staging for staging environment.
	Staging Environment = "staging"
)

// Parse maps a raw mode value (typically NODE_ENV) to an Environment.
// Matching is case-insensitive and ignores surrounding whitespace; the short
// aliases "prod", "stage" and "dev" are accepted. Empty input yields Development.
// Unknown values are returned lower-cased so they still show up in logs.
// The lenient match only picks logging presets; credential URIs use the strict
// config.Env.IsProduction.
func Parse(s string) Environment {
	v := strings.ToLower(strings.TrimSpace(s))
	switch v {
	case "":
		return Development
	case string(Production), "prod":
		return Production
	case string(Staging), "stage":
		return Staging
	case string(Development), "dev":
		return Development
	}
	return Environment(v)
}

// IsProduction reports whether e is Production or its "prod" alias.
func (e Environment) IsProduction() bool {
	return e == Production || e == "prod"
}

// IsStaging reports whether e is Staging or its "stage" alias.
func (e Environment) IsStaging() bool {
	return e == Staging || e == "stage"
}

// IsDevelopment reports whether e is Development or its "dev" alias.
func (e Environment) IsDevelopment() bool {
	return e == Development || e == "dev"
}

// String returns the raw mode value.
func (e Environment) String() string {
	return string(e)
}
