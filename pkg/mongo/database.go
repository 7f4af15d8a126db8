package mongo

import (
	"net/url"
	"strings"
)

// defaultDatabase is what the server uses when neither DBName nor the URI name one.
const defaultDatabase = "test"

// DatabaseName returns the database the bootstrap selects: DBName when set,
// otherwise the database in the URI path, otherwise "test".
func DatabaseName(cfg Config) string {
	if cfg.DBName != "" {
		return cfg.DBName
	}
	if db := databaseFromURI(cfg.URI); db != "" {
		return db
	}
	return defaultDatabase
}

// databaseFromURI reads the path segment of a mongodb:// or mongodb+srv://
// URI without resolving anything.
func databaseFromURI(uri string) string {
	i := strings.Index(uri, "://")
	if i < 0 {
		return ""
	}
	rest := uri[i+3:]
	if q := strings.IndexByte(rest, '?'); q >= 0 {
		rest = rest[:q]
	}
	slash := strings.IndexByte(rest, '/')
	if slash < 0 {
		return ""
	}
	db, err := url.PathUnescape(rest[slash+1:])
	if err != nil {
		return ""
	}
	return db
}
