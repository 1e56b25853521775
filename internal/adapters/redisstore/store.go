// Package redisstore is a Redis-backed key-value store for cart snapshots,
// for deployments where the cart must be shared across storefront instances.
package redisstore

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/pkg/errors"

	"github.com/dhruvgupta3389/anvad/internal/ports/secondary"
)

// Store implements secondary.KeyValueStore on Redis.
type Store struct {
	client *redis.Client
}

// NewStore accepts a Redis connection string (either "redis://..." or a
// plain "hostname:port") and returns a store instance.
func NewStore(addr string) *Store {
	opts, err := redis.ParseURL(addr)
	if err != nil {
		// Not in "redis://..." format, use it as a simple Addr.
		opts = &redis.Options{
			Addr:         addr,
			MinIdleConns: 1,
			DialTimeout:  10 * time.Second,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 5 * time.Second,
		}
	}
	return &Store{client: redis.NewClient(opts)}
}

// Ping checks the Redis connection.
func (s *Store) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return errors.Wrap(err, "redis ping failed")
	}
	return nil
}

// Get returns the value for key, or secondary.ErrNotFound for absent keys.
func (s *Store) Get(ctx context.Context, key string) (string, error) {
	value, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", secondary.ErrNotFound
	}
	if err != nil {
		return "", errors.Wrapf(err, "failed to get %s", key)
	}
	return value, nil
}

// Set writes the value for key. Cart snapshots carry no TTL: the cart is
// durable until the shopper clears it.
func (s *Store) Set(ctx context.Context, key, value string) error {
	if err := s.client.Set(ctx, key, value, 0).Err(); err != nil {
		return errors.Wrapf(err, "failed to set %s", key)
	}
	return nil
}

// Close releases the client's connections.
func (s *Store) Close() error {
	return s.client.Close()
}
