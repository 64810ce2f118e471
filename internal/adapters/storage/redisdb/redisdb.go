package redisdb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/playmixer/scoring-api/internal/adapters/apperror"
)

type RedisDB struct {
	Client  *redis.Client
	retries int
	backoff time.Duration
}

func New(cfg Config) *RedisDB {
	retries := cfg.Retries
	if retries < 1 {
		retries = 1
	}
	r := &RedisDB{
		Client: redis.NewClient(&redis.Options{
			Addr:         cfg.Addr(),
			Password:     cfg.Password,
			DB:           cfg.DB,
			DialTimeout:  cfg.Timeout,
			ReadTimeout:  cfg.Timeout,
			WriteTimeout: cfg.Timeout,
			// повторы выполняются своим циклом с ожиданием между попытками
			MaxRetries: -1,
		}),
		retries: retries,
		backoff: cfg.RetryBackoff,
	}

	return r
}

// withRetry выполняет операцию с повторами при сетевых ошибках.
func (r *RedisDB) withRetry(ctx context.Context, op func(ctx context.Context) error) error {
	var err error
	for attempt := 0; attempt < r.retries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return fmt.Errorf("%w: %w", apperror.ErrStoreUnavailable, ctx.Err())
			case <-time.After(r.backoff):
			}
		}
		err = op(ctx)
		if err == nil || errors.Is(err, redis.Nil) {
			return err
		}
	}

	return fmt.Errorf("%w: %w", apperror.ErrStoreUnavailable, err)
}

func (r *RedisDB) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := r.withRetry(ctx, func(ctx context.Context) error {
		var err error
		value, err = r.Client.Get(ctx, key).Result()
		return err
	})
	if errors.Is(err, redis.Nil) {
		return "", apperror.ErrNotFoundData
	}
	if err != nil {
		return "", err
	}

	return value, nil
}

func (r *RedisDB) Set(ctx context.Context, key, value string) error {
	return r.withRetry(ctx, func(ctx context.Context) error {
		return r.Client.Set(ctx, key, value, 0).Err()
	})
}

// CacheGet читает значение из кеша. Отсутствие ключа - apperror.ErrNotFoundData.
func (r *RedisDB) CacheGet(ctx context.Context, key string) (string, error) {
	return r.Get(ctx, key)
}

// CacheSet записывает значение с временем жизни.
func (r *RedisDB) CacheSet(ctx context.Context, key, value string, ttl time.Duration) error {
	return r.withRetry(ctx, func(ctx context.Context) error {
		return r.Client.Set(ctx, key, value, ttl).Err()
	})
}

func (r *RedisDB) Ping(ctx context.Context) error {
	if err := r.Client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("failed ping redis: %w", err)
	}
	return nil
}

func (r *RedisDB) Close() error {
	if err := r.Client.Close(); err != nil {
		return fmt.Errorf("failed close redis client: %w", err)
	}
	return nil
}
