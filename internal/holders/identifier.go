package holders

import (
	"math"

	"solana-token-guard/internal/domain"
)

// IdentifierConfig holds the LP-matching heuristics. The values are
// empirically chosen; they are configuration, not derived constants.
type IdentifierConfig struct {
	// ReserveTolerance is the relative-difference band for matching a
	// holder balance against the externally reported pool reserve. Pools
	// drift between the two sources' sampling times due to fees and
	// compounding, hence the generous band.
	ReserveTolerance float64 `yaml:"reserve_tolerance"`

	// DominanceMinPercent is the dominance-fallback floor: a top holder at
	// or above this share is treated as pooled liquidity when no reserve
	// match exists. AMM vaults dwarf individual traders on fresh tokens.
	DominanceMinPercent float64 `yaml:"dominance_min_percent"`
}

// DefaultIdentifierConfig returns the stock LP-matching heuristics.
func DefaultIdentifierConfig() IdentifierConfig {
	return IdentifierConfig{
		ReserveTolerance:    0.20,
		DominanceMinPercent: 40,
	}
}

// IdentifyPool partitions the holder list into the AMM vault (at most one)
// and everyone else.
//
// With a positive external reserve, the holder whose uiAmount sits closest
// to it within the tolerance band wins; ties keep the first holder in the
// (share-descending) input order. Without a usable reserve, the single
// largest holder is flagged only if it clears the dominance floor.
// Otherwise the partition is tagged LPMatchNone, which downstream code must
// treat differently from an identified vault holding 0%.
func IdentifyPool(all []*domain.HolderRecord, externalReserve *float64, cfg IdentifierConfig) domain.LPPartition {
	if idx, diff, ok := matchByReserve(all, externalReserve, cfg.ReserveTolerance); ok {
		return partitionAt(all, idx, domain.LPMatchReserve, diff)
	}

	if len(all) > 0 && all[0].PercentOfSupply >= cfg.DominanceMinPercent {
		return partitionAt(all, 0, domain.LPMatchDominance, 0)
	}

	return domain.LPPartition{
		LPHolder:     nil,
		NonLPHolders: all,
		Match:        domain.LPMatchNone,
	}
}

func matchByReserve(all []*domain.HolderRecord, reserve *float64, tolerance float64) (int, float64, bool) {
	if reserve == nil || *reserve <= 0 {
		return 0, 0, false
	}

	bestIdx := -1
	bestDiff := 0.0
	for i, h := range all {
		if h.UIAmount <= 0 {
			continue
		}
		diff := math.Abs(h.UIAmount-*reserve) / *reserve
		if diff >= tolerance {
			continue
		}
		if bestIdx < 0 || diff < bestDiff {
			bestIdx = i
			bestDiff = diff
		}
	}

	if bestIdx < 0 {
		return 0, 0, false
	}
	return bestIdx, bestDiff, true
}

func partitionAt(all []*domain.HolderRecord, idx int, match domain.LPMatchKind, diff float64) domain.LPPartition {
	rest := make([]*domain.HolderRecord, 0, len(all)-1)
	rest = append(rest, all[:idx]...)
	rest = append(rest, all[idx+1:]...)
	return domain.LPPartition{
		LPHolder:            all[idx],
		NonLPHolders:        rest,
		Match:               match,
		RelativeReserveDiff: diff,
	}
}
