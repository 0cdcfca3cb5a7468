// Command initdb applies the tasks schema to the configured store.
// It is a one-shot bootstrap, not a migration framework.
package main

import (
	"context"
	_ "embed"
	"os"

	"github.com/jackc/pgx/v5"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/avelinov/go-task-api/internal/config"
)

//go:embed schema.sql
var schemaSQL string

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	if err := godotenv.Load(); err != nil {
		logger.Info().Msg("no .env file found")
	}

	cfg, err := config.NewEnvReader().Read()
	if err != nil {
		logger.Fatal().
			Err(err).
			Msg("failed to read env")
	}
	if !cfg.Store.Configured() {
		logger.Fatal().
			Msg("STORE_URL and STORE_KEY must be set to initialize the store")
	}

	connCfg, err := pgx.ParseConfig(cfg.Store.URL)
	if err != nil {
		logger.Fatal().
			Err(err).
			Msg("failed to parse store url")
	}
	connCfg.Password = cfg.Store.Key

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Store.ConnectTimeout)
	defer cancel()

	conn, err := pgx.ConnectConfig(ctx, connCfg)
	if err != nil {
		logger.Fatal().
			Err(err).
			Msg("failed to connect to the store")
	}
	defer conn.Close(context.Background())

	_, err = conn.Exec(context.Background(), schemaSQL)
	if err != nil {
		logger.Fatal().
			Err(err).
			Msg("failed to apply schema")
	}

	logger.Info().Msg("store schema applied")
}
