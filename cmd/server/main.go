package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"rolodex/internal/app/server/api"
	"rolodex/internal/app/server/config"
	"rolodex/internal/infrastructure/storage/postgres"
	"rolodex/internal/infrastructure/storage/rediscache"
	"rolodex/internal/utils/logger"
)

func main() {
	cfg := config.MustLoad()
	log := logger.New(cfg.Env)

	storage, err := postgres.New(cfg)
	if err != nil {
		log.Error("failed to init storage", "error", err)
		os.Exit(1)
	}
	defer storage.Close()

	var cache rediscache.KV
	if cfg.Cache.Addr != "" {
		kv, err := rediscache.NewRedisKV(cfg.Cache.Addr, cfg.Cache.DB)
		if err != nil {
			log.Warn("redis unavailable, running without cache", "addr", cfg.Cache.Addr, "error", err)
		} else {
			defer kv.Close()
			cache = kv
			log.Info("read cache enabled", "addr", cfg.Cache.Addr)
		}
	}

	mux := api.New(storage, cache, time.Duration(cfg.Cache.TTLSeconds)*time.Second, log)

	server := &http.Server{
		Addr:    cfg.Server.RunAddress,
		Handler: mux,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info("server starting", "address", cfg.Server.RunAddress, "env", cfg.Env)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown failed", "error", err)
		os.Exit(1)
	}

	log.Info("server stopped")
}
