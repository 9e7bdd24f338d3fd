// Package main runs the token risk assessment service: an HTTP API over
// the analysis engine with optional PostgreSQL history persistence.
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
	"go.uber.org/zap"

	"solana-token-guard/internal/config"
	"solana-token-guard/internal/dexscreener"
	"solana-token-guard/internal/engine"
	"solana-token-guard/internal/server"
	"solana-token-guard/internal/solana"
	"solana-token-guard/internal/storage"
	"solana-token-guard/internal/storage/memory"
	"solana-token-guard/internal/storage/migrations"
	pgstore "solana-token-guard/internal/storage/postgres"
)

func main() {
	_ = godotenv.Load()

	configPath := flag.String("config", "", "path to YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		panic("load config: " + err.Error())
	}
	applyEnvOverrides(&cfg)
	if err := cfg.Validate(); err != nil {
		panic("validate config: " + err.Error())
	}

	logger, err := cfg.Log.Build()
	if err != nil {
		panic("build logger: " + err.Error())
	}
	defer logger.Sync()

	ctx := context.Background()

	store, cleanup, err := buildStore(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("init storage", zap.Error(err))
	}
	defer cleanup()

	eng := engine.New(engine.Options{
		RPC:    solana.NewHTTPClient(cfg.RPCEndpoint),
		Market: dexscreener.NewClient(cfg.DexBaseURL),
		Config: cfg.EngineConfig(),
		Logger: logger,
	})

	s := server.New(eng, store, logger)

	go func() {
		logger.Info("starting server", zap.String("addr", cfg.BindAddr))
		if err := s.Start(cfg.BindAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("gracefully shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := s.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("failed to shutdown server", zap.Error(err))
	}
}

// applyEnvOverrides lets deployment environment variables win over the
// config file, which is how secrets like the DSN are injected.
func applyEnvOverrides(cfg *config.Config) {
	if v := os.Getenv("RPC_ENDPOINT"); v != "" {
		cfg.RPCEndpoint = v
	}
	if v := os.Getenv("POSTGRES_DSN"); v != "" {
		cfg.PostgresDSN = v
	}
	if v := os.Getenv("BIND_ADDR"); v != "" {
		cfg.BindAddr = v
	}
}

// buildStore selects PostgreSQL when a DSN is configured, memory otherwise.
func buildStore(ctx context.Context, cfg config.Config, logger *zap.Logger) (storage.AssessmentStore, func(), error) {
	if cfg.PostgresDSN == "" {
		logger.Info("no postgres dsn configured, keeping history in memory")
		return memory.NewAssessmentStore(), func() {}, nil
	}

	pool, err := pgstore.NewPool(ctx, cfg.PostgresDSN)
	if err != nil {
		return nil, nil, err
	}
	if err := migrations.RunPostgresMigrations(ctx, pool); err != nil {
		pool.Close()
		return nil, nil, err
	}
	logger.Info("assessment history persisted to postgres")
	return pgstore.NewAssessmentStore(pool), pool.Close, nil
}
