// Package market classifies whether reported DEX liquidity looks real.
package market

import (
	"fmt"

	"solana-token-guard/internal/domain"
)

// ClassifierConfig holds the wash-trading detection thresholds.
// Directional heuristics with no documented derivation; kept overridable.
type ClassifierConfig struct {
	// FakeRatio/FakeMaxTx: volume churning past FakeRatio times the pool
	// depth with fewer than FakeMaxTx trades is the classic synthetic
	// volume signature.
	FakeRatio float64 `yaml:"fake_ratio"`
	FakeMaxTx int64   `yaml:"fake_max_tx"`
	// SuspiciousRatio/SuspiciousMaxTx: elevated churn on a modest trade
	// count earns a medium tier.
	SuspiciousRatio float64 `yaml:"suspicious_ratio"`
	SuspiciousMaxTx int64   `yaml:"suspicious_max_tx"`
}

// DefaultClassifierConfig returns the stock authenticity thresholds.
func DefaultClassifierConfig() ClassifierConfig {
	return ClassifierConfig{
		FakeRatio:       100,
		FakeMaxTx:       50,
		SuspiciousRatio: 30,
		SuspiciousMaxTx: 150,
	}
}

// Classify grades the 24h market snapshot as real, suspicious, likely
// fake, or unknown. Missing or non-positive inputs yield TierUnknown;
// the classifier never guesses a default tier, because downstream scoring
// treats unknown differently from low.
func Classify(m domain.LiquidityMetrics, cfg ClassifierConfig) *domain.LiquidityAuthenticity {
	if m.LiquidityUSD == nil || m.Volume24hUSD == nil || m.TxCount24h == nil ||
		*m.LiquidityUSD <= 0 || *m.Volume24hUSD <= 0 || *m.TxCount24h <= 0 {
		return &domain.LiquidityAuthenticity{
			Tier: domain.TierUnknown,
			Note: "insufficient data",
		}
	}

	ratio := *m.Volume24hUSD / *m.LiquidityUSD
	avgTrade := *m.Volume24hUSD / float64(*m.TxCount24h)
	out := &domain.LiquidityAuthenticity{Ratio: &ratio, AvgTradeUSD: &avgTrade}

	switch {
	case ratio > cfg.FakeRatio && *m.TxCount24h < cfg.FakeMaxTx:
		out.Tier = domain.TierHigh
		out.Note = fmt.Sprintf("likely fake or wash-traded: 24h volume is %.0fx liquidity across only %d trades", ratio, *m.TxCount24h)
	case ratio > cfg.SuspiciousRatio && *m.TxCount24h < cfg.SuspiciousMaxTx:
		out.Tier = domain.TierMedium
		out.Note = fmt.Sprintf("suspicious: 24h volume is %.0fx liquidity across %d trades", ratio, *m.TxCount24h)
	default:
		out.Tier = domain.TierLow
		out.Note = "mostly real"
	}

	return out
}
