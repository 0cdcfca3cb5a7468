package app

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/avelinov/go-task-api/internal/config"
)

// ConnectPostgres builds the shared store pool from the configured
// endpoint URL and access key. A missing URL or key is not fatal: the
// service runs in health-only mode and every store-backed route answers
// service-unavailable. A configured but unreachable store is fatal,
// matching the promise the configuration made.
func ConnectPostgres() *pgxpool.Pool {
	cfg := config.Global().Store
	if !cfg.Configured() {
		globalLogger.Warn().
			Msg("store url or access key missing, running in health-only mode")
		return nil
	}

	poolCfg, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		globalLogger.Error().
			Err(err).
			Msg("failed to parse store url")
		panic(err)
	}
	poolCfg.ConnConfig.Password = cfg.Key
	poolCfg.ConnConfig.ConnectTimeout = cfg.ConnectTimeout

	pool, err := pgxpool.NewWithConfig(context.Background(), poolCfg)
	if err != nil {
		globalLogger.Error().
			Err(err).
			Msg("failed to connect to the store")
		panic(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.PingTimeout)
	defer cancel()

	err = pool.Ping(ctx)
	if err != nil {
		globalLogger.Error().
			Err(err).
			Msg("failed to ping the store")
		panic(err)
	}
	globalLogger.Info().
		Str("host", poolCfg.ConnConfig.Host).
		Msg("connected to the store")

	return pool
}

func DisconnectPostgres(pool *pgxpool.Pool) {
	if pool == nil {
		return
	}
	pool.Close()
	globalLogger.Info().Msg("disconnected from the store")
}
