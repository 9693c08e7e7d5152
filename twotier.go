package locfetch

import (
	"encoding/json"
	"log"
	"sync"
	"time"
)

// Store is the persistent cache tier contract. Implementations are
// best-effort: a failing store must behave like a cache miss, never
// like a fatal error. See the cache package for implementations.
type Store interface {
	// Get retrieves the raw bytes for a key. Returns false when the
	// key is absent or the store is unavailable.
	Get(key string) ([]byte, bool)

	// Set stores raw bytes under a key.
	Set(key string, value []byte) error

	// Delete removes a key.
	Delete(key string) error
}

// TwoTier stores Records in a process-local memory map backed by an
// optional persistent Store. Expiration is applied lazily on read:
// outdated entries are evicted from the tier they were found in.
type TwoTier struct {
	records map[string]*Record
	mu      sync.RWMutex
	store   Store // may be nil
	ttl     time.Duration
	logger  *log.Logger
}

// NewTwoTier creates a two-tier cache over an optional persistent
// store. A ttl of 0 or less means records never expire.
func NewTwoTier(store Store, ttl time.Duration, logger *log.Logger) *TwoTier {
	if logger == nil {
		logger = defaultLogger
	}
	return &TwoTier{
		records: make(map[string]*Record),
		store:   store,
		ttl:     ttl,
		logger:  logger,
	}
}

// FromMemory returns the memory-tier record for key if present and
// fresh. An outdated entry is evicted and reported as a miss.
func (c *TwoTier) FromMemory(key string) (*Record, bool) {
	c.mu.RLock()
	rec, ok := c.records[key]
	c.mu.RUnlock()

	if !ok {
		return nil, false
	}

	if rec.IsOutdated(c.ttl) {
		c.mu.Lock()
		delete(c.records, key)
		c.mu.Unlock()
		return nil, false
	}

	return rec, true
}

// FromStore returns the persistent-tier record for key if present and
// fresh, populating the memory tier on a hit. Undecodable or outdated
// entries are deleted from the store and reported as a miss; any store
// failure is a miss.
func (c *TwoTier) FromStore(key string) (*Record, bool) {
	rec, ok := c.decode(key)
	if !ok {
		return nil, false
	}

	if rec.IsOutdated(c.ttl) {
		c.deleteFromStore(key)
		return nil, false
	}

	// Write through so the next lookup is served from memory.
	c.mu.Lock()
	c.records[key] = rec
	c.mu.Unlock()

	return rec, true
}

// StaleFromStore returns the persistent-tier record for key ignoring
// expiration. Used while the remote service is suppressed, where a
// stale answer beats no answer.
func (c *TwoTier) StaleFromStore(key string) (*Record, bool) {
	return c.decode(key)
}

// Put stores the record in both tiers under its derived key. A
// persistent-store failure is logged and swallowed: caching is an
// optimization, not a correctness requirement.
func (c *TwoTier) Put(rec *Record) {
	key := rec.Key()

	c.mu.Lock()
	c.records[key] = rec
	c.mu.Unlock()

	if c.store == nil {
		return
	}

	data, err := json.Marshal(rec.Snapshot())
	if err != nil {
		c.logger.Printf("encoding snapshot for %s: %v", key, err)
		return
	}
	if err := c.store.Set(key, data); err != nil {
		c.logger.Printf("writing %s to persistent cache: %v", key, err)
	}
}

// EvictMemory removes the memory-tier entry for key.
func (c *TwoTier) EvictMemory(key string) {
	c.mu.Lock()
	delete(c.records, key)
	c.mu.Unlock()
}

// MemoryLen returns the number of records in the memory tier,
// including any not yet evicted as outdated.
func (c *TwoTier) MemoryLen() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.records)
}

// decode reads and deserializes the persistent entry for key. A bad
// entry is deleted and treated as a miss.
func (c *TwoTier) decode(key string) (*Record, bool) {
	if c.store == nil {
		return nil, false
	}

	data, ok := c.store.Get(key)
	if !ok {
		return nil, false
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		c.logger.Printf("decoding persistent entry %s: %v", key, err)
		c.deleteFromStore(key)
		return nil, false
	}

	rec, err := snap.Record()
	if err != nil {
		c.logger.Printf("restoring persistent entry %s: %v", key, err)
		c.deleteFromStore(key)
		return nil, false
	}

	return rec, true
}

func (c *TwoTier) deleteFromStore(key string) {
	if c.store == nil {
		return
	}
	if err := c.store.Delete(key); err != nil {
		c.logger.Printf("deleting persistent entry %s: %v", key, err)
	}
}
