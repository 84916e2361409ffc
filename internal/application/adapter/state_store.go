// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "context"

// StateStore is the key/value storage the engine persists its slices into.
// Values are opaque JSON documents.
type StateStore interface {
	// Get returns the value under key. found is false when the key is absent.
	Get(ctx context.Context, key string) (value []byte, found bool, err error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes the given keys. Absent keys are ignored.
	Delete(ctx context.Context, keys ...string) error

	// Ping checks that the storage is reachable.
	Ping(ctx context.Context) error
}
