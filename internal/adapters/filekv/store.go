// Package filekv is a file-backed key-value store. It is the durable
// client-side storage for the CLI cart: one JSON document holding all keys,
// written synchronously on every Set.
package filekv

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dhruvgupta3389/anvad/internal/ports/secondary"
)

// Store implements secondary.KeyValueStore on a single JSON file.
type Store struct {
	path string
}

// NewStore creates a store persisting to the given file path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// DefaultPath returns the cart store location under the home directory.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".anvad", "cart.json"), nil
}

// Get returns the value for key, or secondary.ErrNotFound when either the
// file or the key does not exist.
func (s *Store) Get(ctx context.Context, key string) (string, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return "", secondary.ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to read store: %w", err)
	}

	var kv map[string]string
	if err := json.Unmarshal(data, &kv); err != nil {
		return "", fmt.Errorf("failed to parse store: %w", err)
	}
	value, ok := kv[key]
	if !ok {
		return "", secondary.ErrNotFound
	}
	return value, nil
}

// Set writes the value for key, creating the file and its directory on
// first use.
func (s *Store) Set(ctx context.Context, key, value string) error {
	kv := map[string]string{}
	if data, err := os.ReadFile(s.path); err == nil {
		// A corrupt store is discarded wholesale rather than failing the write.
		_ = json.Unmarshal(data, &kv)
	}
	kv[key] = value

	data, err := json.MarshalIndent(kv, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal store: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create store dir: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write store: %w", err)
	}
	return nil
}
