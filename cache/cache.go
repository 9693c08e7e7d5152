// Package cache provides persistent store implementations for the
// translation cache.
package cache

// Store is the interface for the persistent cache tier. Values are
// raw bytes; the client serializes records itself.
type Store interface {
	// Get retrieves the raw bytes for a key. Returns false when the
	// key is absent or the store is unavailable.
	Get(key string) ([]byte, bool)

	// Set stores raw bytes under a key.
	Set(key string, value []byte) error

	// Delete removes a key.
	Delete(key string) error
}
