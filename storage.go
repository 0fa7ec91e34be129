package mdview

import "context"

// Storage is a persistent key-value store for client preferences.
type Storage interface {
	// GetItem returns the value stored under key.
	// Returns ENOTFOUND if nothing is stored.
	GetItem(ctx context.Context, key string) (string, error)

	// SetItem stores value under key, replacing any previous value.
	SetItem(ctx context.Context, key, value string) error
}
