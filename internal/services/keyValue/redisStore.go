package keyValue

import (
	"Listline/internal/config"
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "listline:"

func NewRedisClient(c config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Username: c.Username,
		Password: c.Password,
		DB:       c.Database,
	})
}

func NewRedisStore(client *redis.Client) Store {
	return &redisKvStore{
		client: client,
	}
}

type redisKvStore struct {
	client *redis.Client
}

func (r *redisKvStore) Set(ctx context.Context, key string, value string, opts ...Option) error {
	options := applyOptions(opts)
	err := r.client.Set(ctx, redisKeyPrefix+key, value, options.Expiration).Err()
	if err != nil {
		return fmt.Errorf("setting redis key: %w", err)
	}
	return nil
}

func (r *redisKvStore) Get(ctx context.Context, key string) (string, error) {
	result, err := r.client.Get(ctx, redisKeyPrefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("getting redis key: %w", err)
	}
	return result, nil
}

func (r *redisKvStore) Delete(ctx context.Context, key string) error {
	err := r.client.Del(ctx, redisKeyPrefix+key).Err()
	if err != nil && !errors.Is(err, redis.Nil) {
		return fmt.Errorf("deleting redis key: %w", err)
	}
	return nil
}
