package main

import (
	"context"
	"time"

	"github.com/bhzconnection/escola/internal/config"
	"github.com/bhzconnection/escola/internal/database"
	"github.com/bhzconnection/escola/internal/logger"
	"github.com/bhzconnection/escola/internal/repository"
	"github.com/bhzconnection/escola/internal/seed"
)

const seedTimeout = 2 * time.Minute

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	log := logger.NewLogger(cfg.Observability)

	if !cfg.IsLocal() {
		log.Fatal().Str("env", cfg.Primary.Env).Msg("seed data is only loaded in the local environment")
	}

	ctx, cancel := context.WithTimeout(context.Background(), seedTimeout)
	defer cancel()

	db, err := database.New(ctx, cfg, &log, nil)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize database")
	}
	defer db.Close()

	if err := database.EnsureSchema(ctx, db.Pool); err != nil {
		log.Fatal().Err(err).Msg("failed to create schema")
	}

	repos := repository.NewRepositories(db.Pool, cfg.Database.QueryTimeout)

	if _, err := seed.New(repos, cfg.Auth.BcryptCost, &log).Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("seed failed")
	}
}
