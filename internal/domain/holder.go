package domain

// HolderRecord is one entry of the largest-accounts list with its exact
// share of supply. PercentOfSupply carries 2 fractional digits and is
// derived from BasisPoints, which is computed in integer arithmetic.
type HolderRecord struct {
	Address         string  `json:"address"`
	RawAmount       *Amount `json:"rawAmount"`
	UIAmount        float64 `json:"uiAmount"`
	BasisPoints     int64   `json:"-"`
	PercentOfSupply float64 `json:"percentOfSupply"`
}

// LPMatchKind tags how (or whether) the liquidity-pool holder was identified.
// A tagged outcome keeps "no LP found" distinguishable from "LP holds 0%".
type LPMatchKind string

const (
	LPMatchReserve   LPMatchKind = "reserve"
	LPMatchDominance LPMatchKind = "dominance"
	LPMatchNone      LPMatchKind = "none"
)

// LPPartition splits the holder list into the single identified pool vault
// (if any) and everyone else. NonLPHolders is always the exact complement
// of the full list minus LPHolder.
type LPPartition struct {
	LPHolder     *HolderRecord   `json:"lpHolder"`
	NonLPHolders []*HolderRecord `json:"-"`
	Match        LPMatchKind     `json:"lpMatch"`
	// RelativeReserveDiff is only meaningful for reserve matches.
	RelativeReserveDiff float64 `json:"relativeReserveDiff,omitempty"`
}

// HolderSummary is the concentration rollup consumed by the risk scorer
// and returned to callers.
type HolderSummary struct {
	Holders                 []*HolderRecord `json:"holders"`
	LPHolder                *HolderRecord   `json:"lpHolder"`
	LPMatch                 LPMatchKind     `json:"lpMatch"`
	TopHolderPercent        float64         `json:"topHolderPercent"`
	Top10PercentExcludingLP *float64        `json:"top10PercentExcludingLp"`
}
