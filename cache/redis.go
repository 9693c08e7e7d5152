package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore is a Redis-backed persistent store. It can be shared by
// several process instances; a fetch by one populates the cache for
// all of them.
type RedisStore struct {
	client    *redis.Client
	keyPrefix string
}

// RedisOptions holds configuration for the Redis store.
type RedisOptions struct {
	URL       string // Redis connection URL (e.g., "redis://localhost:6379")
	KeyPrefix string // Prefix for all keys (default: "locfetch:")
}

// NewRedisStore creates a Redis store with the given configuration.
func NewRedisStore(opts RedisOptions) (*RedisStore, error) {
	redisOpts, err := redis.ParseURL(opts.URL)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(redisOpts)

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return NewRedisStoreFromClient(client, opts.KeyPrefix), nil
}

// NewRedisStoreFromClient creates a RedisStore from an existing Redis client.
func NewRedisStoreFromClient(client *redis.Client, keyPrefix string) *RedisStore {
	if keyPrefix == "" {
		keyPrefix = "locfetch:"
	}

	return &RedisStore{
		client:    client,
		keyPrefix: keyPrefix,
	}
}

// Get retrieves a value from Redis. Any Redis error is reported as a
// miss so an unavailable store degrades to a remote fetch.
func (s *RedisStore) Get(key string) ([]byte, bool) {
	ctx := context.Background()
	val, err := s.client.Get(ctx, s.keyPrefix+key).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		return nil, false
	}
	return val, true
}

// Set stores a value in Redis. Entries carry no Redis-side TTL; the
// client applies its own expiration on read and deletes stale entries,
// which keeps them servable as a fallback while the remote service is
// suppressed.
func (s *RedisStore) Set(key string, value []byte) error {
	ctx := context.Background()
	return s.client.Set(ctx, s.keyPrefix+key, value, 0).Err()
}

// Delete removes a key from Redis.
func (s *RedisStore) Delete(key string) error {
	ctx := context.Background()
	return s.client.Del(ctx, s.keyPrefix+key).Err()
}

// Close closes the Redis connection.
func (s *RedisStore) Close() error {
	return s.client.Close()
}

// Ping tests the Redis connection.
func (s *RedisStore) Ping() error {
	ctx := context.Background()
	return s.client.Ping(ctx).Err()
}

// Verify RedisStore implements Store
var _ Store = (*RedisStore)(nil)
