// Package holders computes exact holder-concentration figures and
// identifies the liquidity-pool vault among the largest accounts.
package holders

import (
	"math/big"
	"sort"

	"solana-token-guard/internal/domain"
)

// BalanceEntry is one reported largest-account entry before analysis.
type BalanceEntry struct {
	Address   string
	RawAmount *domain.Amount
}

var bpScale = big.NewInt(10_000)

// BuildDistribution turns raw balances into HolderRecords with exact
// percent-of-supply figures.
//
// The share is computed as rawAmount*10_000/supply in big.Int arithmetic;
// only the final basis-point value (at most 10_000 for sane inputs) is
// converted to a 2-fractional-digit percent. A zero supply is a valid
// degenerate state and yields 0.00 for every holder.
//
// The result is sorted descending by share with a stable sort, so ties
// keep their input order and repeated runs over identical input are
// byte-identical.
func BuildDistribution(entries []BalanceEntry, supply *domain.Amount, decimals uint8) []*domain.HolderRecord {
	records := make([]*domain.HolderRecord, 0, len(entries))
	zeroSupply := supply == nil || supply.Sign() == 0

	for _, e := range entries {
		raw := e.RawAmount
		if raw == nil {
			raw = domain.NewAmount(0)
		}

		var bp int64
		if !zeroSupply {
			n := new(big.Int).Mul(&raw.Int, bpScale)
			bp = n.Quo(n, &supply.Int).Int64()
		}

		records = append(records, &domain.HolderRecord{
			Address:         e.Address,
			RawAmount:       raw,
			UIAmount:        raw.Float(decimals),
			BasisPoints:     bp,
			PercentOfSupply: float64(bp) / 100,
		})
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].BasisPoints > records[j].BasisPoints
	})

	return records
}

// Summarize builds the concentration rollup the scorer consumes.
// Top10PercentExcludingLP stays nil when no holder data exists at all, so
// downstream scoring can tell "unknown" from "empty".
func Summarize(all []*domain.HolderRecord, part domain.LPPartition) *domain.HolderSummary {
	s := &domain.HolderSummary{
		Holders:  all,
		LPHolder: part.LPHolder,
		LPMatch:  part.Match,
	}
	if len(all) == 0 {
		return s
	}

	s.TopHolderPercent = all[0].PercentOfSupply

	top10 := 0.0
	for i, h := range part.NonLPHolders {
		if i >= 10 {
			break
		}
		top10 += h.PercentOfSupply
	}
	s.Top10PercentExcludingLP = &top10
	return s
}
