package storage

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// Redis is a Store backed by a Redis instance, for deployments that want
// state to survive process restarts without a local file.
type Redis struct {
	client *redis.Client
}

// NewRedis creates a store talking to the given address.
func NewRedis(addr string) *Redis {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
	})
	return &Redis{client: client}
}

// Load returns the blob for key and whether it exists.
func (r *Redis) Load(ctx context.Context, key string) ([]byte, bool, error) {
	blob, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return blob, true, nil
}

// Save replaces the blob for key. Blobs do not expire.
func (r *Redis) Save(ctx context.Context, key string, blob []byte) error {
	return r.client.Set(ctx, key, blob, 0).Err()
}

// Clear deletes the blob for key.
func (r *Redis) Clear(ctx context.Context, key string) error {
	return r.client.Del(ctx, key).Err()
}

// Close closes the client connection.
func (r *Redis) Close() error {
	return r.client.Close()
}
