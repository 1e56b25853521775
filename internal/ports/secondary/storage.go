package secondary

import "context"

// KeyValueStore is the durable client-side storage the cart persists into.
// Implementations: file-backed store for the CLI cart, Redis for shared
// sessions. Get returns ErrNotFound for absent keys.
type KeyValueStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}
