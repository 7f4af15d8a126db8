package config

import (
	"net/url"
	"strings"
)

const (
	// DefaultDatabase is used inside constructed URIs when MONGO_DATABASE is unset.
	DefaultDatabase = "test"

	mongoHost       = "mongo:27017"
	mongoAuthSource = "admin"
)

// BuildMongoURI returns the MongoDB connection string for e.
//
// A non-blank MONGO_URI is returned verbatim. Otherwise the URI targets the
// "mongo" service on the compose network; in production with both root
// credentials set, the percent-encoded credentials are embedded and
// authentication happens against the admin database.
func BuildMongoURI(e Env) string {
	if e.HasURIOverride() {
		return e.MongoURI
	}

	db := e.MongoDatabase
	if db == "" {
		db = DefaultDatabase
	}

	if e.IsProduction() && e.HasRootCredentials() {
		return "mongodb://" + escapeCredential(e.RootUsername) + ":" + escapeCredential(e.RootPassword) +
			"@" + mongoHost + "/" + db + "?authSource=" + mongoAuthSource
	}

	return "mongodb://" + mongoHost + "/" + db
}

// Marks QueryEscape encodes but encodeURIComponent leaves alone.
var credentialUnescaper = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// escapeCredential percent-encodes like encodeURIComponent, so "@", ":", "/"
// and "%" can never break the authority section.
func escapeCredential(s string) string {
	return credentialUnescaper.Replace(url.QueryEscape(s))
}
