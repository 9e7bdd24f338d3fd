// Package config loads the service configuration from YAML with
// sensible defaults for every field.
package config

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v2"

	"solana-token-guard/internal/engine"
	"solana-token-guard/internal/scoring"
)

// DefaultConfig is the configuration used when no file overrides it.
var DefaultConfig = Config{
	BindAddr:    "0.0.0.0:8080",
	RPCEndpoint: "https://api.mainnet-beta.solana.com",
	DexBaseURL:  "", // empty selects the public dexscreener endpoint
	Heuristics:  HeuristicsConfig{},
	Log:         zap.NewProductionConfig(),
}

// Config is the top-level service configuration.
type Config struct {
	BindAddr    string `yaml:"bindAddr"`
	RPCEndpoint string `yaml:"rpcEndpoint"`
	DexBaseURL  string `yaml:"dexBaseUrl"`

	// PostgresDSN enables assessment history persistence when set.
	// Empty keeps history in memory.
	PostgresDSN string `yaml:"postgresDsn"`

	Heuristics HeuristicsConfig `yaml:"heuristics"`
	Log        zap.Config       `yaml:"log"`
}

// HeuristicsConfig overrides individual analysis thresholds. Zero values
// keep the stock defaults.
type HeuristicsConfig struct {
	ReserveTolerance    float64 `yaml:"reserveTolerance"`
	DominanceMinPercent float64 `yaml:"dominanceMinPercent"`

	LargestHighPercent  float64 `yaml:"largestHighPercent"`
	CombinedHighPercent float64 `yaml:"combinedHighPercent"`
	FunderSampleSize    int     `yaml:"funderSampleSize"`
	SignatureLimit      int     `yaml:"signatureLimit"`

	FakeRatio       float64 `yaml:"fakeRatio"`
	SuspiciousRatio float64 `yaml:"suspiciousRatio"`

	// Stablecoins replaces the stock allow-list when non-empty.
	Stablecoins []string `yaml:"stablecoins"`
}

// Load reads a YAML config file over the defaults. An empty path returns
// the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := DefaultConfig
	if path == "" {
		return cfg, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer f.Close()
	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// Validate rejects configurations the service cannot start with.
func (c Config) Validate() error {
	if c.BindAddr == "" {
		return fmt.Errorf("bindAddr must not be empty")
	}
	if c.RPCEndpoint == "" {
		return fmt.Errorf("rpcEndpoint must not be empty")
	}
	if h := c.Heuristics; h.ReserveTolerance < 0 || h.ReserveTolerance >= 1 {
		return fmt.Errorf("reserveTolerance must be in [0, 1), got %v", h.ReserveTolerance)
	}
	return nil
}

// EngineConfig folds the heuristic overrides into a full engine config.
func (c Config) EngineConfig() engine.Config {
	cfg := engine.DefaultConfig()
	h := c.Heuristics

	if h.ReserveTolerance > 0 {
		cfg.Identifier.ReserveTolerance = h.ReserveTolerance
	}
	if h.DominanceMinPercent > 0 {
		cfg.Identifier.DominanceMinPercent = h.DominanceMinPercent
	}
	if h.LargestHighPercent > 0 {
		cfg.Cluster.LargestHighPercent = h.LargestHighPercent
	}
	if h.CombinedHighPercent > 0 {
		cfg.Cluster.CombinedHighPercent = h.CombinedHighPercent
	}
	if h.FunderSampleSize > 0 {
		cfg.FunderSampleSize = h.FunderSampleSize
	}
	if h.SignatureLimit > 0 {
		cfg.SignatureLimit = h.SignatureLimit
	}
	if h.FakeRatio > 0 {
		cfg.Classifier.FakeRatio = h.FakeRatio
	}
	if h.SuspiciousRatio > 0 {
		cfg.Classifier.SuspiciousRatio = h.SuspiciousRatio
	}
	if len(h.Stablecoins) > 0 {
		cfg.Scoring.Stablecoins = scoring.StablecoinSet(h.Stablecoins...)
	}
	return cfg
}
