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
	"github.com/rs/zerolog"

	"github.com/scentlab/fragrance-match/internal/catalog"
	"github.com/scentlab/fragrance-match/internal/config"
	httpapi "github.com/scentlab/fragrance-match/internal/http"
	"github.com/scentlab/fragrance-match/internal/scoring"
	"github.com/scentlab/fragrance-match/internal/storage"
)

func main() {
	// .env is optional; real environments set variables directly.
	_ = godotenv.Load()

	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		bootLogger := zerolog.New(os.Stderr)
		bootLogger.Fatal().Err(err).Msg("load config")
	}

	logger := newLogger(cfg.Log)

	items := catalog.Default()
	if cfg.Catalog.Path != "" {
		items, err = catalog.LoadFromFile(cfg.Catalog.Path)
		if err != nil {
			logger.Fatal().Err(err).Msg("load catalog")
		}
	}
	if err := catalog.Validate(items); err != nil {
		logger.Fatal().Err(err).Msg("invalid catalog")
	}

	weights := scoring.DefaultWeights()
	if cfg.Weights.Path != "" {
		weights, err = scoring.LoadWeightsFromFile(cfg.Weights.Path)
		if err != nil {
			logger.Warn().Err(err).Msg("using default weights")
			weights = scoring.DefaultWeights()
		}
	}
	if err := weights.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("invalid weights")
	}

	var leads httpapi.LeadSaver
	if cfg.Leads.DBPath != "" {
		store, err := storage.OpenSQLite(cfg.Leads.DBPath)
		if err != nil {
			logger.Fatal().Err(err).Msg("open leads store")
		}
		defer store.Close()
		if err := store.EnsureSchema(); err != nil {
			logger.Fatal().Err(err).Msg("leads schema")
		}
		leads = store
		logger.Info().Str("db", cfg.Leads.DBPath).Msg("lead capture enabled")
	}

	engine := scoring.NewEngine(weights, items)
	srv := httpapi.NewServer(engine, leads, logger)

	httpServer := &http.Server{
		Addr:              cfg.Server.Address,
		Handler:           srv.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info().Str("address", cfg.Server.Address).Int("catalog_size", len(items)).Msg("API listening")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	<-ctx.Done()
	logger.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("shutdown")
	}
}

func newLogger(cfg config.LogConfig) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}

	var out = os.Stderr
	logger := zerolog.New(out)
	if cfg.Pretty {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339})
	}
	return logger.Level(level).With().Timestamp().Logger()
}
