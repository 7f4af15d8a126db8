package mongo

import "strings"

const redactedPassword = "xxxxx"

// RedactURI masks the password in a connection string so it can be logged.
// Strings without credentials are returned unchanged.
func RedactURI(uri string) string {
	i := strings.Index(uri, "://")
	if i < 0 {
		return uri
	}
	rest := uri[i+3:]
	authority := rest
	if end := strings.IndexAny(rest, "/?"); end >= 0 {
		authority = rest[:end]
	}
	at := strings.LastIndex(authority, "@")
	if at < 0 {
		return uri
	}
	user, _, hasPassword := strings.Cut(authority[:at], ":")
	if !hasPassword {
		return uri
	}
	return uri[:i+3] + user + ":" + redactedPassword + rest[at:]
}
