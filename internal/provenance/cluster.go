package provenance

import (
	"fmt"
	"sort"

	"solana-token-guard/internal/domain"
)

// ClusterConfig holds the insider-clustering thresholds. Empirically
// chosen; directional heuristics, not exact boundaries.
type ClusterConfig struct {
	// LargestHighPercent: a single cluster at or above this share of
	// supply is a high-risk signal on its own.
	LargestHighPercent float64 `yaml:"largest_high_percent"`
	// CombinedHighPercent: all clusters together at or above this share
	// (holders may be double-counted across clusters) is also high risk.
	CombinedHighPercent float64 `yaml:"combined_high_percent"`
	// LargestMediumPercent: floor for a medium verdict.
	LargestMediumPercent float64 `yaml:"largest_medium_percent"`
	// InsiderMinPercent: minimum per-holder share for the
	// totalInsiderPercent rollup.
	InsiderMinPercent float64 `yaml:"insider_min_percent"`
}

// DefaultClusterConfig returns the stock clustering thresholds.
func DefaultClusterConfig() ClusterConfig {
	return ClusterConfig{
		LargestHighPercent:   25,
		CombinedHighPercent:  35,
		LargestMediumPercent: 10,
		InsiderMinPercent:    1,
	}
}

// BuildClusters inverts the per-holder funder lists into a funder-to-holders
// adjacency map and keeps only funders linked to two or more distinct
// holders. Clusters are sorted descending by aggregate share, with the
// funder address as a deterministic tie-break.
func BuildClusters(funders map[string][]string, holders []*domain.HolderRecord) []*domain.FunderCluster {
	percentByHolder := make(map[string]float64, len(holders))
	for _, h := range holders {
		percentByHolder[h.Address] = h.PercentOfSupply
	}

	adjacency := make(map[string]map[string]bool)
	for holder, fs := range funders {
		if _, known := percentByHolder[holder]; !known {
			continue
		}
		for _, f := range fs {
			if f == "" || f == holder {
				continue
			}
			if adjacency[f] == nil {
				adjacency[f] = make(map[string]bool)
			}
			adjacency[f][holder] = true
		}
	}

	var clusters []*domain.FunderCluster
	for funder, members := range adjacency {
		if len(members) < 2 {
			continue // a funder touching one holder is not a cluster
		}
		c := &domain.FunderCluster{FunderAddress: funder}
		for m := range members {
			c.MemberAddresses = append(c.MemberAddresses, m)
			c.AggregatePercent += percentByHolder[m]
		}
		sort.Strings(c.MemberAddresses)
		clusters = append(clusters, c)
	}

	sort.Slice(clusters, func(i, j int) bool {
		if clusters[i].AggregatePercent != clusters[j].AggregatePercent {
			return clusters[i].AggregatePercent > clusters[j].AggregatePercent
		}
		return clusters[i].FunderAddress < clusters[j].FunderAddress
	})

	return clusters
}

// Summarize tiers the clustering result and computes the insider rollup
// over the non-LP holder set. Notes carry the concrete numbers so the
// evidence behind the tier stays inspectable.
func Summarize(clusters []*domain.FunderCluster, nonLP []*domain.HolderRecord, cfg ClusterConfig) *domain.InsiderSummary {
	s := &domain.InsiderSummary{Clusters: clusters}

	for _, h := range nonLP {
		if h.PercentOfSupply >= cfg.InsiderMinPercent {
			s.TotalInsiderPercent += h.PercentOfSupply
		}
	}

	if len(clusters) == 0 {
		s.Tier = domain.TierLow
		s.Note = "no funding-based clustering detected"
		return s
	}

	s.LargestPercent = clusters[0].AggregatePercent
	for _, c := range clusters {
		s.CombinedPercent += c.AggregatePercent
	}

	switch {
	case s.LargestPercent >= cfg.LargestHighPercent || s.CombinedPercent >= cfg.CombinedHighPercent:
		s.Tier = domain.TierHigh
		s.Note = fmt.Sprintf("largest funder cluster controls %.2f%% of supply, %.2f%% combined across %d clusters",
			s.LargestPercent, s.CombinedPercent, len(clusters))
	case s.LargestPercent >= cfg.LargestMediumPercent:
		s.Tier = domain.TierMedium
		s.Note = fmt.Sprintf("largest funder cluster controls %.2f%% of supply across %d members",
			s.LargestPercent, len(clusters[0].MemberAddresses))
	default:
		s.Tier = domain.TierLow
		s.Note = fmt.Sprintf("mild linkage, small relative size: largest cluster holds %.2f%%", s.LargestPercent)
	}

	return s
}
