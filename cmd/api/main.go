package main

import (
	"os"

	"github.com/rs/zerolog"

	"github.com/PratikDhanave/data-catalog-service/internal/config"
	"github.com/PratikDhanave/data-catalog-service/internal/httpserver"
	"github.com/PratikDhanave/data-catalog-service/internal/store/postgres"
)

// main boots the service: config → logger → DB → schema → HTTP server.
func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	// Load runtime config from environment (CATALOG_DB_URL, CATALOG_ADDR).
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("config")
	}

	if level, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		logger = logger.Level(level)
	}

	// Connect to durable storage (Postgres) using a connection pool.
	db, err := postgres.New(cfg.DBURL)
	if err != nil {
		logger.Fatal().Err(err).Msg("db connect")
	}
	defer db.Close()

	// Ensure required tables/indexes exist so `docker compose up --build` is enough.
	if err := db.EnsureSchema(); err != nil {
		logger.Fatal().Err(err).Msg("db schema")
	}

	router := httpserver.NewRouter(db, logger)

	logger.Info().Str("addr", cfg.Addr).Msg("server started")
	if err := router.Run(cfg.Addr); err != nil {
		logger.Fatal().Err(err).Msg("server")
	}
}
