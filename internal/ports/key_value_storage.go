package ports

import "context"

// Contract for durable string storage addressed by key.
// Values are opaque to the storage; callers serialize and validate them.
type KeyValueStorage interface {
	// Return the value stored under key. ok is false when the key is absent.
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	// Store value under key, replacing any previous value.
	Set(ctx context.Context, key string, value string) error
}
