// Package health exposes liveness and readiness probes for the backend.
//
// The router only reads the MongoDB connectivity flag set by the connection
// bootstrapper; it never changes it. Liveness is unconditional so an
// orchestrator does not kill the process while the bootstrapper is still
// retrying, while readiness turns green only once the database is reachable.
package health
