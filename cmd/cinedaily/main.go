package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/cinedaily/cinedaily/internal/api"
	"github.com/cinedaily/cinedaily/internal/config"
	"github.com/cinedaily/cinedaily/internal/database"
	"github.com/cinedaily/cinedaily/internal/logger"
	"github.com/cinedaily/cinedaily/internal/scheduler"
	"github.com/cinedaily/cinedaily/internal/scheduler/tasks"
)

func main() {
	// Provider API keys and OAuth secrets live in .env during development.
	// Missing file is fine, real deployments set the environment directly.
	_ = godotenv.Load()

	configPath := flag.String("config", "", "Path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	log := logger.New(logger.Config{
		Level:      cfg.Logging.Level,
		Format:     cfg.Logging.Format,
		Path:       cfg.Logging.Path,
		MaxSizeMB:  cfg.Logging.MaxSizeMB,
		MaxBackups: cfg.Logging.MaxBackups,
		MaxAgeDays: cfg.Logging.MaxAgeDays,
		Compress:   cfg.Logging.Compress,
	})
	defer log.Close()

	log.Info().
		Str("version", config.Version).
		Str("logLevel", cfg.Logging.Level).
		Msg("Starting CineDaily")

	db, err := database.New(cfg.Database.Path)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open database")
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("Failed to run migrations")
	}

	server, err := api.NewServer(db.Conn(), cfg, log.Logger)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize API server")
	}

	sched, err := scheduler.New(log.Logger)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create scheduler")
	}

	dailyRefresh := tasks.NewDailyRefreshTask(server.DiscoveryService(), log.Logger)
	if err := sched.RegisterTask(dailyRefresh.Config()); err != nil {
		log.Fatal().Err(err).Msg("Failed to register daily refresh task")
	}

	if err := sched.Start(); err != nil {
		log.Fatal().Err(err).Msg("Failed to start scheduler")
	}

	go func() {
		if err := server.Start(cfg.Server.Address()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down")

	if err := sched.Stop(); err != nil {
		log.Warn().Err(err).Msg("Failed to stop scheduler")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Failed to shut down HTTP server")
	}
}
