package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/siriart/billing-admin/internal/api"
	"github.com/siriart/billing-admin/internal/infrastructure/changelog"
	"github.com/siriart/billing-admin/internal/infrastructure/config"
	redisinfra "github.com/siriart/billing-admin/internal/infrastructure/db/redis"
	"github.com/siriart/billing-admin/internal/infrastructure/jsonstore"
	"github.com/siriart/billing-admin/internal/pkg/cipher"
	"github.com/siriart/billing-admin/pkg/logger"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		lg := logger.Get()
		lg.Fatal().Err(err).Msg("load config")
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: !cfg.IsProduction(),
	})

	ciph, err := cipher.New(cfg.CipherSecret)
	if err != nil {
		log.Fatal().Err(err).Msg("init cipher")
	}

	store, err := jsonstore.New(cfg.DataDir)
	if err != nil {
		log.Fatal().Err(err).Msg("init data store")
	}
	changes := changelog.New(cfg.LogsDir, log)

	var sessions *redisinfra.SessionRevoker
	if cfg.Redis.Addr != "" {
		sessions, err = redisinfra.Connect(context.Background(), redisinfra.Config{
			Addr: cfg.Redis.Addr,
			DB:   cfg.Redis.DB,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("connect redis")
		}
	}

	e := api.NewRouter(cfg, store, changes, ciph, sessions, log)

	go func() {
		addr := ":" + cfg.Port
		log.Info().Str("addr", addr).Str("env", cfg.Env).Msg("server listening")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}
	if sessions != nil {
		if err := sessions.Close(); err != nil {
			log.Error().Err(err).Msg("redis close")
		}
	}

	log.Info().Msg("shutdown complete")
}
