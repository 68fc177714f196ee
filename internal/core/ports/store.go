package ports

import "context"

// KeyValueStore is the persistence contract every component writes through.
// Collections are serialised wholesale as JSON strings under fixed keys;
// there are no partial updates and no transactions spanning keys.
type KeyValueStore interface {
	// Get returns the stored value for key. ok is false when the key is absent.
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}
