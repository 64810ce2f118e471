package storage

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/playmixer/scoring-api/internal/adapters/apperror"
	"github.com/playmixer/scoring-api/internal/adapters/storage/memstore"
	"github.com/playmixer/scoring-api/internal/adapters/storage/redisdb"
	"github.com/playmixer/scoring-api/pkg/logger"
)

type Config struct {
	TypeStorage string `env:"CACHE_STORAGE" envDefault:"redis"`
	Redis       redisdb.Config
	Probe       ProbeConfig
}

// ProbeConfig - параметры проверки готовности хранилища.
// Значения по умолчанию повторяют healthcheck сервиса redis
// в docker-compose: интервал 5с, таймаут 5с, 5 попыток.
type ProbeConfig struct {
	Interval time.Duration `env:"CACHE_PROBE_INTERVAL" envDefault:"5s"`
	Timeout  time.Duration `env:"CACHE_PROBE_TIMEOUT" envDefault:"5s"`
	Retries  int           `env:"CACHE_PROBE_RETRIES" envDefault:"5"`
}

type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	CacheGet(ctx context.Context, key string) (string, error)
	CacheSet(ctx context.Context, key, value string, ttl time.Duration) error

	Ping(ctx context.Context) error
	Close() error
}

func New(cfg Config) (Store, error) {
	if cfg.TypeStorage == "memory" {
		return memstore.New(), nil
	}

	if cfg.TypeStorage == "redis" {
		return redisdb.New(cfg.Redis), nil
	}

	return nil, fmt.Errorf("%w: %s", apperror.ErrUnknownStorage, cfg.TypeStorage)
}

type Pinger interface {
	Ping(ctx context.Context) error
}

// WaitReady блокирует до первого успешного пинга хранилища.
// Пинг выполняется не более cfg.Retries раз с интервалом cfg.Interval,
// после исчерпания попыток хранилище считается недоступным.
func WaitReady(ctx context.Context, log *logger.Logger, p Pinger, cfg ProbeConfig) error {
	var err error
	for attempt := 1; attempt <= cfg.Retries; attempt++ {
		pingCtx, cancel := context.WithTimeout(ctx, cfg.Timeout)
		err = p.Ping(pingCtx)
		cancel()
		if err == nil {
			log.Info("storage is ready", zap.Int("attempt", attempt))
			return nil
		}
		log.Warn("storage is not ready",
			zap.Int("attempt", attempt),
			zap.Int("retries", cfg.Retries),
			zap.Error(err),
		)

		if attempt == cfg.Retries {
			break
		}
		select {
		case <-ctx.Done():
			return fmt.Errorf("%w: %w", apperror.ErrStoreUnavailable, ctx.Err())
		case <-time.After(cfg.Interval):
		}
	}

	return fmt.Errorf("%w: %w", apperror.ErrStoreUnavailable, err)
}
