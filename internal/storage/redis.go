package storage

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// RedisBackend stores each slot as a plain Redis string without TTL.
type RedisBackend struct {
	client *redis.Client
}

var _ Backend = (*RedisBackend)(nil)

// NewRedis creates a new Redis backend.
func NewRedis(addr, password string, db int) *RedisBackend {
	opts := &redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	}
	return &RedisBackend{client: redis.NewClient(opts)}
}

// Ping checks connectivity.
func (r *RedisBackend) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *RedisBackend) Get(ctx context.Context, key string) ([]byte, error) {
	res, err := r.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (r *RedisBackend) Set(ctx context.Context, key string, value []byte) error {
	return r.client.Set(ctx, key, value, 0).Err()
}

func (r *RedisBackend) Delete(ctx context.Context, key string) error {
	return r.client.Del(ctx, key).Err()
}

func (r *RedisBackend) Close() error {
	return r.client.Close()
}
