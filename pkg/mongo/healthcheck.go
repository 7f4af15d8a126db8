package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/mongo"
)

// Healthcheck returns a check that pings the deployment through client.
func Healthcheck(client *mongo.Client) func(context.Context) error {
	return func(ctx context.Context) error {
		if err := client.Ping(ctx, nil); err != nil {
			return errors.Join(ErrHealthcheckFailed, err)
		}
		return nil
	}
}

// StateCheck returns a check that only reads the connectivity flag.
func StateCheck(state State) func(context.Context) error {
	return func(context.Context) error {
		if !state.Connected() {
			return ErrNotConnected
		}
		return nil
	}
}

// Healthcheck returns a readiness check for the bootstrapped connection:
// the flag must be set and, when a client exists, the deployment must answer
// a ping. The flag itself is never changed by the check.
func (b *Bootstrapper) Healthcheck() func(context.Context) error {
	stateCheck := StateCheck(b.state)
	return func(ctx context.Context) error {
		if err := stateCheck(ctx); err != nil {
			return err
		}
		if client := b.Client(); client != nil {
			return Healthcheck(client)(ctx)
		}
		return nil
	}
}
