// Package requestid correlates health probe requests with their log records.
//
// Middleware stores the ID in the request context and echoes it in the
// X-Request-ID response header; LoggerExtractor lets the slog handler built
// by pkg/logger add it as "request_id" to every record logged with that
// context.
package requestid
