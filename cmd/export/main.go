// Command export snapshots the legacy MySQL database into the JSON data
// directory consumed by the admin server. It is a one-shot tool: run it,
// check the log output, done.
package main

import (
	"context"
	"time"

	"github.com/joho/godotenv"

	"github.com/siriart/billing-admin/internal/infrastructure/config"
	"github.com/siriart/billing-admin/internal/infrastructure/jsonstore"
	"github.com/siriart/billing-admin/internal/infrastructure/mysql"
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

	if cfg.MySQL.DSN == "" {
		log.Fatal().Msg("MYSQL_DSN is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	db, err := mysql.Connect(ctx, cfg.MySQL.DSN)
	if err != nil {
		log.Fatal().Err(err).Msg("connect mysql")
	}
	defer db.Close()

	store, err := jsonstore.New(cfg.DataDir)
	if err != nil {
		log.Fatal().Err(err).Msg("init data store")
	}

	if err := mysql.NewExporter(db, store, log).Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("export failed")
	}

	log.Info().Str("dir", store.Dir()).Msg("export complete")
}
