package domain

// RiskTier is the coarse three-way tier used by the heuristic classifiers.
// TierUnknown is distinct from TierLow: it means the signal was absent,
// not that the signal was reassuring.
type RiskTier string

const (
	TierLow     RiskTier = "low"
	TierMedium  RiskTier = "medium"
	TierHigh    RiskTier = "high"
	TierUnknown RiskTier = "unknown"
)

// FunderCluster groups holders that share a recent funding source.
// Singletons are never clusters: MemberAddresses has at least two entries.
type FunderCluster struct {
	FunderAddress    string   `json:"funderAddress"`
	MemberAddresses  []string `json:"memberAddresses"`
	AggregatePercent float64  `json:"aggregatePercent"`
}

// InsiderSummary is the funding-provenance clustering verdict.
//
// CombinedPercent sums every cluster's aggregate and may double-count a
// holder that appears in several clusters; it measures the combined insider
// funding surface, not disjoint supply.
type InsiderSummary struct {
	Clusters            []*FunderCluster `json:"clusters"`
	LargestPercent      float64          `json:"largestClusterPercent"`
	CombinedPercent     float64          `json:"combinedClusterPercent"`
	TotalInsiderPercent float64          `json:"totalInsiderPercent"`
	Tier                RiskTier         `json:"tier"`
	Note                string           `json:"note"`
}
