// Package main runs a one-shot risk assessment for a single mint and
// prints the result as JSON.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"solana-token-guard/internal/config"
	"solana-token-guard/internal/dexscreener"
	"solana-token-guard/internal/engine"
	"solana-token-guard/internal/solana"
)

func main() {
	_ = godotenv.Load()

	configPath := flag.String("config", "", "path to YAML config file")
	timeout := flag.Duration("timeout", 60*time.Second, "assessment timeout")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: assess [flags] <mint-address>")
		os.Exit(2)
	}
	mint := flag.Arg(0)

	if _, err := solana.DecodePubkey(mint); err != nil {
		fmt.Fprintf(os.Stderr, "invalid mint address: %v\n", err)
		os.Exit(2)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	if v := os.Getenv("RPC_ENDPOINT"); v != "" {
		cfg.RPCEndpoint = v
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintf(os.Stderr, "build logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	eng := engine.New(engine.Options{
		RPC:    solana.NewHTTPClient(cfg.RPCEndpoint),
		Market: dexscreener.NewClient(cfg.DexBaseURL),
		Config: cfg.EngineConfig(),
		Logger: logger,
	})

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	assessment, err := eng.Assess(ctx, mint)
	if err != nil {
		logger.Fatal("assessment failed", zap.String("mint", mint), zap.Error(err))
	}

	out, err := json.MarshalIndent(assessment, "", "  ")
	if err != nil {
		logger.Fatal("encode assessment", zap.Error(err))
	}
	fmt.Println(string(out))
}
