package mongo

import "time"

const (
	DefaultServerSelectionTimeout = 5 * time.Second
	DefaultSocketTimeout          = 45 * time.Second
	DefaultMaxRetries             = 5
	DefaultRetryDelay             = 2 * time.Second
)

// Config drives the connection bootstrap. URI and DBName come from the
// resolved runtime configuration; the rest can be tuned through the
// environment and default to the fixed bootstrap budget.
type Config struct {
	URI    string // URI is the MongoDB connection string.
	DBName string // DBName selects the database; empty falls back to the URI path.

	ServerSelectionTimeout time.Duration `env:"MONGO_SERVER_SELECTION_TIMEOUT" envDefault:"5s"` // ServerSelectionTimeout bounds how long one attempt waits for a usable server.
	SocketTimeout          time.Duration `env:"MONGO_SOCKET_TIMEOUT" envDefault:"45s"`           // SocketTimeout bounds every operation issued through the client.
	MaxRetries             int           `env:"MONGO_MAX_RETRIES" envDefault:"5"`                // MaxRetries is the number of retries after the first attempt.
	RetryDelay             time.Duration `env:"MONGO_RETRY_DELAY" envDefault:"2s"`               // RetryDelay is the fixed pause between attempts.
}

// NewConfig returns a Config for uri and dbName with the default budget.
func NewConfig(uri, dbName string) Config {
	return Config{
		URI:                    uri,
		DBName:                 dbName,
		ServerSelectionTimeout: DefaultServerSelectionTimeout,
		SocketTimeout:          DefaultSocketTimeout,
		MaxRetries:             DefaultMaxRetries,
		RetryDelay:             DefaultRetryDelay,
	}
}

// normalize fills zero timeouts with defaults and clamps negative values.
// A zero MaxRetries is kept: it means a single attempt.
func (c Config) normalize() Config {
	if c.ServerSelectionTimeout <= 0 {
		c.ServerSelectionTimeout = DefaultServerSelectionTimeout
	}
	if c.SocketTimeout <= 0 {
		c.SocketTimeout = DefaultSocketTimeout
	}
	if c.MaxRetries < 0 {
		c.MaxRetries = 0
	}
	if c.RetryDelay < 0 {
		c.RetryDelay = 0
	}
	return c
}

// Attempts returns the total number of connection attempts, MaxRetries+1.
func (c Config) Attempts() int {
	return c.normalize().MaxRetries + 1
}
