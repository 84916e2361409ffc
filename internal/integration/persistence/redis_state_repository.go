package persistence

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"

	"github.com/contacomigo/backend/internal/application/adapter"
	domainerror "github.com/contacomigo/backend/internal/domain/error"
)

// redisStateRepository implements adapter.StateStore on Redis string keys.
type redisStateRepository struct {
	client *redis.Client
}

// NewRedisStateRepository creates a new Redis-backed state store.
func NewRedisStateRepository(client *redis.Client) adapter.StateStore {
	return &redisStateRepository{
		client: client,
	}
}

// Get returns the stored value of key.
func (r *redisStateRepository) Get(ctx context.Context, key string) ([]byte, bool, error) {
	value, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, domainerror.NewStateError(domainerror.ErrCodeStateRead, key, err)
	}
	return value, true, nil
}

// Set replaces the value of key. Keys never expire.
func (r *redisStateRepository) Set(ctx context.Context, key string, value []byte) error {
	if err := r.client.Set(ctx, key, value, 0).Err(); err != nil {
		return domainerror.NewStateError(domainerror.ErrCodeStateWrite, key, err)
	}
	return nil
}

// Delete removes the given keys in one command.
func (r *redisStateRepository) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	if err := r.client.Del(ctx, keys...).Err(); err != nil {
		return domainerror.NewStateError(domainerror.ErrCodeStateDelete, keys[0], err)
	}
	return nil
}

// Ping checks the Redis connection.
func (r *redisStateRepository) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return errors.Join(domainerror.ErrStateUnavailable, err)
	}
	return nil
}
