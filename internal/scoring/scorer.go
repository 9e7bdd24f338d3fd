// Package scoring folds the per-axis risk signals into a composite verdict.
package scoring

import (
	"math"

	"solana-token-guard/internal/domain"
)

// Input carries everything the composite score depends on. Nil pointers
// mean the signal is unknown, never zero.
type Input struct {
	Mint                string
	HasMintAuthority    bool
	HasFreezeAuthority  bool
	Top10PercentExclLP  *float64
	TotalInsiderPercent float64
	AuthenticityTier    domain.RiskTier
	TokenAgeDays        *float64
}

var blurbs = map[domain.RiskLevel]string{
	domain.RiskLow:    "structure looks healthy: authorities, holder spread, and market activity raise no major flags",
	domain.RiskMedium: "mixed signals: some structural risk factors warrant a closer look before relying on this market",
	domain.RiskHigh:   "structure looks hostile: authority control, concentration, or synthetic volume dominate this token",
}

const stablecoinBlurb = "allow-listed centralized stablecoin: concentrated holders and an active freeze authority are expected operating posture for this asset class, not risk signals"

// Score computes the four axis scores and the weighted composite.
// The stablecoin override runs last and is the only path that bypasses
// the weighted formula.
func Score(in Input, cfg Config) *domain.RiskScore {
	s := &domain.RiskScore{
		MintScore:      mintScore(in),
		HolderScore:    holderScore(in, cfg),
		LiquidityScore: liquidityScore(in.AuthenticityTier),
		AgeScore:       ageScore(in.TokenAgeDays),
	}

	composite := float64(s.MintScore)*cfg.MintWeight +
		float64(s.HolderScore)*cfg.HolderWeight +
		float64(s.LiquidityScore)*cfg.LiquidityWeight +
		float64(s.AgeScore)*cfg.AgeWeight
	s.CompositeScore = clamp(int(math.Round(composite)), 0, 100)

	switch {
	case s.CompositeScore >= cfg.LowRiskFloor:
		s.Level = domain.RiskLow
	case s.CompositeScore <= cfg.HighRiskCeil:
		s.Level = domain.RiskHigh
	default:
		s.Level = domain.RiskMedium
	}
	s.Blurb = blurbs[s.Level]

	if _, ok := cfg.Stablecoins[in.Mint]; ok {
		s.Level = domain.RiskLow
		s.CompositeScore = 95
		s.Blurb = stablecoinBlurb
	}

	return s
}

// mintScore grades authority control. A revocable supply (live mint
// authority) is the dominant signal; a freeze authority alone is a lesser
// centralization mark.
func mintScore(in Input) int {
	switch {
	case !in.HasMintAuthority && !in.HasFreezeAuthority:
		return 95
	case !in.HasMintAuthority && in.HasFreezeAuthority:
		return 75
	default:
		return 35
	}
}

func holderScore(in Input, cfg Config) int {
	if in.Top10PercentExclLP == nil {
		return 50 // unknown concentration, not bad concentration
	}
	top10 := *in.Top10PercentExclLP
	insiders := in.TotalInsiderPercent

	switch {
	case top10 <= cfg.HolderTop10Good && insiders <= cfg.InsiderGood:
		return 90
	case top10 <= cfg.HolderTop10Fair && insiders <= cfg.InsiderFair:
		return 65
	default:
		return 35
	}
}

func liquidityScore(tier domain.RiskTier) int {
	switch tier {
	case domain.TierLow:
		return 90
	case domain.TierMedium:
		return 60
	case domain.TierHigh:
		return 35
	default:
		return 50
	}
}

func ageScore(days *float64) int {
	if days == nil {
		return 50
	}
	switch {
	case *days < 0.25:
		return 30
	case *days < 2:
		return 50
	case *days < 14:
		return 70
	default:
		return 85
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
