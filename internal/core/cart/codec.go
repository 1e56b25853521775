package cart

import (
	"encoding/json"
	"errors"
	"fmt"
)

// StorageKey is the fixed key the cart snapshot is persisted under. The
// version suffix lets the load path detect and discard snapshots written in
// an incompatible format instead of crashing on them.
const StorageKey = "cart_v1"

// snapshotVersion is the wire version embedded in every encoded snapshot.
const snapshotVersion = 1

// ErrBadSnapshot is returned by Decode for missing, corrupt or
// incompatible snapshot data. Callers substitute the empty cart; a bad
// snapshot is never a fatal condition.
var ErrBadSnapshot = errors.New("cart snapshot unreadable or incompatible")

// snapshot is the persisted envelope around State.
type snapshot struct {
	Version int   `json:"version"`
	State   State `json:"state"`
}

// Encode serializes the state for durable storage.
func Encode(s State) (string, error) {
	data, err := json.Marshal(snapshot{Version: snapshotVersion, State: s})
	if err != nil {
		return "", fmt.Errorf("failed to encode cart snapshot: %w", err)
	}
	return string(data), nil
}

// Decode parses a persisted snapshot back into a State. Any parse failure
// or version mismatch yields ErrBadSnapshot so the caller can fall back to
// the empty cart explicitly.
func Decode(raw string) (State, error) {
	if raw == "" {
		return Empty(), ErrBadSnapshot
	}
	var snap snapshot
	if err := json.Unmarshal([]byte(raw), &snap); err != nil {
		return Empty(), fmt.Errorf("%w: %v", ErrBadSnapshot, err)
	}
	if snap.Version != snapshotVersion {
		return Empty(), fmt.Errorf("%w: version %d", ErrBadSnapshot, snap.Version)
	}
	// Totals are derived; recompute rather than trusting stored values.
	return recompute(snap.State.Lines), nil
}
