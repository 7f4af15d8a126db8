package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

// Dialer opens and verifies one connection attempt.
type Dialer func(ctx context.Context, cfg Config) (*mongo.Client, error)

// ClientOptions returns the driver options used for an attempt. The socket
// timeout maps to the driver's client-wide operation timeout.
func ClientOptions(cfg Config) *options.ClientOptions {
	cfg = cfg.normalize()
	return options.Client().
		ApplyURI(cfg.URI).
		SetServerSelectionTimeout(cfg.ServerSelectionTimeout).
		SetTimeout(cfg.SocketTimeout)
}

// Dial is the default Dialer. mongo.Connect does no I/O, so the attempt is
// only considered successful once the primary answers a ping.
func Dial(ctx context.Context, cfg Config) (*mongo.Client, error) {
	client, err := mongo.Connect(ClientOptions(cfg))
	if err != nil {
		return nil, err
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.WithoutCancel(ctx))
		return nil, err
	}

	return client, nil
}
