// Package memstore - хранилище в памяти, используется в тестах
// и как запасной вариант без внешнего redis.
package memstore

import (
	"context"
	"sync"
	"time"

	"github.com/playmixer/scoring-api/internal/adapters/apperror"
)

type entry struct {
	value   string
	expires time.Time // нулевое значение - без срока жизни
}

type Memstore struct {
	mu   sync.RWMutex
	data map[string]entry
}

func New() *Memstore {
	return &Memstore{
		data: make(map[string]entry),
	}
}

func (s *Memstore) Get(ctx context.Context, key string) (string, error) {
	s.mu.RLock()
	e, ok := s.data[key]
	s.mu.RUnlock()
	if !ok || (!e.expires.IsZero() && time.Now().After(e.expires)) {
		return "", apperror.ErrNotFoundData
	}

	return e.value, nil
}

func (s *Memstore) Set(ctx context.Context, key, value string) error {
	s.mu.Lock()
	s.data[key] = entry{value: value}
	s.mu.Unlock()
	return nil
}

func (s *Memstore) CacheGet(ctx context.Context, key string) (string, error) {
	return s.Get(ctx, key)
}

func (s *Memstore) CacheSet(ctx context.Context, key, value string, ttl time.Duration) error {
	e := entry{value: value}
	if ttl > 0 {
		e.expires = time.Now().Add(ttl)
	}
	s.mu.Lock()
	s.data[key] = e
	s.mu.Unlock()
	return nil
}

func (s *Memstore) Ping(ctx context.Context) error {
	return nil
}

func (s *Memstore) Close() error {
	return nil
}
