package store

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/gofiber/storage/redis/v3"
)

// RedisStore implements Store on top of the Fiber Redis storage driver.
type RedisStore struct {
	storage *redis.Storage
}

// NewRedis connects to Redis using an endpoint URL and access token and
// verifies the connection. The token is passed as the password of the
// "default" user, the convention hosted Redis providers use.
func NewRedis(ctx context.Context, endpoint, token string) (*RedisStore, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}
	if token != "" {
		u.User = url.UserPassword("default", token)
	}

	storage := redis.New(redis.Config{
		URL: u.String(),
	})

	if err := storage.Conn().Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	return &RedisStore{storage: storage}, nil
}

// Get returns the value for key, or (nil, nil) if the key is absent or expired.
func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, error) {
	return s.storage.GetWithContext(ctx, key)
}

// Set writes the value under key with the given expiry.
func (s *RedisStore) Set(ctx context.Context, key string, val []byte, ttl time.Duration) error {
	return s.storage.SetWithContext(ctx, key, val, ttl)
}

// SetIfNotExists writes the key atomically only when absent (Redis SETNX),
// reporting whether the write happened.
func (s *RedisStore) SetIfNotExists(ctx context.Context, key string, val []byte, ttl time.Duration) (bool, error) {
	return s.storage.Conn().SetNX(ctx, key, val, ttl).Result()
}

// Exists reports whether key currently holds a live value.
func (s *RedisStore) Exists(ctx context.Context, key string) (bool, error) {
	n, err := s.storage.Conn().Exists(ctx, key).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Delete removes key. Deleting an absent key is not an error.
func (s *RedisStore) Delete(ctx context.Context, key string) error {
	return s.storage.DeleteWithContext(ctx, key)
}

// Close releases the underlying Redis connection.
func (s *RedisStore) Close() error {
	return s.storage.Close()
}
