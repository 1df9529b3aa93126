package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ilcoutreach/outreach-api/internal/config"
	"github.com/ilcoutreach/outreach-api/internal/logger"
	"github.com/ilcoutreach/outreach-api/internal/server"
	"github.com/ilcoutreach/outreach-api/internal/storage"
	"github.com/ilcoutreach/outreach-api/internal/tracker"
)

func main() {
	cfg := config.Load()
	logger.Initialize(cfg.Server.LogLevel)
	log := logger.Get()

	store, err := storage.Open(cfg)
	if err != nil {
		log.Error("Failed to open storage", "type", cfg.Storage.Type, "error", err)
		os.Exit(1)
	}
	defer store.Close()

	trk, err := tracker.New(store)
	if err != nil {
		log.Error("Failed to rehydrate tracker state", "error", err)
		os.Exit(1)
	}

	srv := server.New(cfg, trk)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			log.Error("Server error", "error", err)
			os.Exit(1)
		}
	case sig := <-quit:
		log.Info("Received shutdown signal", "signal", sig)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Stop(ctx); err != nil {
		log.Error("Forced shutdown", "error", err)
		os.Exit(1)
	}

	log.Info("Server stopped cleanly")
}
