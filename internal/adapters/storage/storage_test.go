package storage

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/playmixer/scoring-api/internal/adapters/apperror"
	"github.com/playmixer/scoring-api/pkg/logger"
)

type stubPinger struct {
	failFirst int
	attempts  int
}

func (p *stubPinger) Ping(ctx context.Context) error {
	p.attempts++
	if p.attempts <= p.failFirst {
		return errors.New("connection refused")
	}
	return nil
}

func newTestLogger(t *testing.T) *logger.Logger {
	t.Helper()
	lgr, err := logger.New(logger.SetEnableTerminalOutput(false))
	if err != nil {
		t.Fatal(err)
	}
	return lgr
}

func TestWaitReady(t *testing.T) {
	type Case struct {
		Name         string
		FailFirst    int
		WantErr      bool
		WantAttempts int
	}

	cases := []Case{
		{
			Name:         "ready at once",
			FailFirst:    0,
			WantErr:      false,
			WantAttempts: 1,
		},
		{
			Name:         "ready after third attempt",
			FailFirst:    2,
			WantErr:      false,
			WantAttempts: 3,
		},
		{
			Name:         "never ready",
			FailFirst:    100,
			WantErr:      true,
			WantAttempts: 5,
		},
	}

	lgr := newTestLogger(t)
	for _, c := range cases {
		t.Run(c.Name, func(t *testing.T) {
			p := &stubPinger{failFirst: c.FailFirst}
			cfg := ProbeConfig{
				Interval: time.Millisecond,
				Timeout:  10 * time.Millisecond,
				Retries:  5,
			}

			err := WaitReady(context.Background(), lgr, p, cfg)
			if c.WantErr && err == nil {
				t.Error("expected error, got nil")
			}
			if !c.WantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if c.WantErr && !errors.Is(err, apperror.ErrStoreUnavailable) {
				t.Errorf("error = %v, want ErrStoreUnavailable", err)
			}
			if p.attempts != c.WantAttempts {
				t.Errorf("attempts = %d, want %d", p.attempts, c.WantAttempts)
			}
		})
	}
}

func TestWaitReadyCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := &stubPinger{failFirst: 100}
	cfg := ProbeConfig{
		Interval: time.Minute,
		Timeout:  time.Millisecond,
		Retries:  5,
	}

	err := WaitReady(ctx, newTestLogger(t), p, cfg)
	if !errors.Is(err, apperror.ErrStoreUnavailable) {
		t.Errorf("error = %v, want ErrStoreUnavailable", err)
	}
	if p.attempts != 1 {
		t.Errorf("attempts = %d, want 1 before cancel is noticed", p.attempts)
	}
}

func TestNewUnknownStorage(t *testing.T) {
	_, err := New(Config{TypeStorage: "tarantool"})
	if !errors.Is(err, apperror.ErrUnknownStorage) {
		t.Errorf("error = %v, want ErrUnknownStorage", err)
	}
}

func TestNewMemory(t *testing.T) {
	store, err := New(Config{TypeStorage: "memory"})
	if err != nil {
		t.Fatal(err)
	}
	if err := store.Ping(context.Background()); err != nil {
		t.Errorf("memory store ping: %v", err)
	}
}
