package app

import (
	_ "github.com/joho/godotenv/autoload"

	"github.com/avelinov/go-task-api/internal/config"
)

func MustReadEnv() {
	cfg, err := config.NewEnvReader().Read()
	if err != nil {
		globalLogger.Error().
			Err(err).
			Msg("failed to read env")
		panic(err)
	}
	globalLogger.Info().
		Str("env", cfg.Env).
		Bool("store_configured", cfg.Store.Configured()).
		Msg("read env")

	config.SetGlobal(cfg)
}
