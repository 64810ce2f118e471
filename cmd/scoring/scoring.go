package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/playmixer/scoring-api/internal/adapters/api/rest"
	"github.com/playmixer/scoring-api/internal/adapters/config"
	"github.com/playmixer/scoring-api/internal/adapters/storage"
	"github.com/playmixer/scoring-api/internal/core/scoring"
	"github.com/playmixer/scoring-api/pkg/logger"
)

var (
	shutdownDelay = time.Second * 2
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	cfg, err := config.Init()
	if err != nil {
		return fmt.Errorf("failed initialize config: %w", err)
	}

	lgr, err := logger.New(logger.SetLevel(cfg.LogLevel), logger.SetLogPath(cfg.LogPath))
	if err != nil {
		return fmt.Errorf("failed initialize logger: %w", err)
	}

	store, err := storage.New(cfg.Cache)
	if err != nil {
		lgr.Error("failed initialize storage", zap.Error(err))
		return fmt.Errorf("failed initialize storage: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			lgr.Error("failed close storage", zap.Error(err))
		}
	}()

	// сервис не стартует, пока хранилище не ответит на пинг
	if err := storage.WaitReady(ctx, lgr, store, cfg.Cache.Probe); err != nil {
		lgr.Error("storage is unavailable", zap.Error(err))
		return fmt.Errorf("storage is unavailable: %w", err)
	}

	scorer := scoring.New(lgr, store)

	server := rest.New(
		scorer,
		lgr,
		rest.Addr(cfg.API.Addr),
		rest.HealthPinger(store),
	)

	go func() {
		if err := server.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			lgr.Error("rest server stopped", zap.Error(err))
			stop()
		}
	}()
	lgr.Info("service started", zap.String("address", cfg.API.Addr))

	<-ctx.Done()

	server.Stop()
	lgr.Info("Stopping service")
	time.Sleep(shutdownDelay)
	lgr.Info("Service stopped")

	return nil
}
