package provenance

import (
	"strings"
	"testing"

	"solana-token-guard/internal/domain"
)

func pct(addr string, percent float64) *domain.HolderRecord {
	return &domain.HolderRecord{Address: addr, PercentOfSupply: percent}
}

func TestBuildClusters_SharedFunder(t *testing.T) {
	holders := []*domain.HolderRecord{pct("A", 3), pct("B", 4), pct("C", 2)}
	funders := map[string][]string{
		"A": {"F"},
		"B": {"F"},
		"C": {"G"}, // G funds only C: not a cluster
	}

	clusters := BuildClusters(funders, holders)

	if len(clusters) != 1 {
		t.Fatalf("expected 1 cluster, got %d", len(clusters))
	}
	c := clusters[0]
	if c.FunderAddress != "F" {
		t.Errorf("funder = %s, want F", c.FunderAddress)
	}
	if c.AggregatePercent != 7 {
		t.Errorf("aggregate = %.2f, want 7", c.AggregatePercent)
	}
	if len(c.MemberAddresses) != 2 {
		t.Errorf("members = %v, want [A B]", c.MemberAddresses)
	}
}

func TestBuildClusters_SortedByAggregateDesc(t *testing.T) {
	holders := []*domain.HolderRecord{pct("A", 3), pct("B", 4), pct("C", 10), pct("D", 12)}
	funders := map[string][]string{
		"A": {"F1"},
		"B": {"F1"},
		"C": {"F2"},
		"D": {"F2"},
	}

	clusters := BuildClusters(funders, holders)
	if len(clusters) != 2 {
		t.Fatalf("expected 2 clusters, got %d", len(clusters))
	}
	if clusters[0].FunderAddress != "F2" || clusters[1].FunderAddress != "F1" {
		t.Errorf("order = %s, %s; want F2, F1", clusters[0].FunderAddress, clusters[1].FunderAddress)
	}
}

func TestBuildClusters_SelfFundingIgnored(t *testing.T) {
	holders := []*domain.HolderRecord{pct("A", 3), pct("B", 4)}
	funders := map[string][]string{
		"A": {"A", "F"},
		"B": {"F"},
	}

	clusters := BuildClusters(funders, holders)
	if len(clusters) != 1 || clusters[0].FunderAddress != "F" {
		t.Fatalf("self-funding must not create clusters: %+v", clusters)
	}
}

func TestBuildClusters_HolderInMultipleClusters(t *testing.T) {
	holders := []*domain.HolderRecord{pct("A", 5), pct("B", 6), pct("C", 7)}
	funders := map[string][]string{
		"A": {"F1", "F2"},
		"B": {"F1"},
		"C": {"F2"},
	}

	clusters := BuildClusters(funders, holders)
	if len(clusters) != 2 {
		t.Fatalf("expected 2 clusters, got %d", len(clusters))
	}

	// A is in both clusters; the combined sum intentionally double-counts it.
	s := Summarize(clusters, holders, DefaultClusterConfig())
	if s.CombinedPercent != (5+6)+(5+7) {
		t.Errorf("combined = %.2f, want 23 (double-counting A)", s.CombinedPercent)
	}
}

func TestSummarize_NoClusters(t *testing.T) {
	s := Summarize(nil, []*domain.HolderRecord{pct("A", 2)}, DefaultClusterConfig())
	if s.Tier != domain.TierLow {
		t.Errorf("tier = %s, want low", s.Tier)
	}
	if !strings.Contains(s.Note, "no funding-based clustering") {
		t.Errorf("unexpected note: %s", s.Note)
	}
}

func TestSummarize_Tiers(t *testing.T) {
	cfg := DefaultClusterConfig()
	tests := []struct {
		name     string
		clusters []*domain.FunderCluster
		want     domain.RiskTier
	}{
		{
			"largest over 25 is high",
			[]*domain.FunderCluster{{FunderAddress: "F", MemberAddresses: []string{"A", "B"}, AggregatePercent: 26}},
			domain.TierHigh,
		},
		{
			"combined over 35 is high",
			[]*domain.FunderCluster{
				{FunderAddress: "F1", MemberAddresses: []string{"A", "B"}, AggregatePercent: 20},
				{FunderAddress: "F2", MemberAddresses: []string{"C", "D"}, AggregatePercent: 16},
			},
			domain.TierHigh,
		},
		{
			"largest over 10 is medium",
			[]*domain.FunderCluster{{FunderAddress: "F", MemberAddresses: []string{"A", "B"}, AggregatePercent: 12}},
			domain.TierMedium,
		},
		{
			"small clusters are low",
			[]*domain.FunderCluster{{FunderAddress: "F", MemberAddresses: []string{"A", "B"}, AggregatePercent: 7}},
			domain.TierLow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Summarize(tt.clusters, nil, cfg)
			if s.Tier != tt.want {
				t.Errorf("tier = %s, want %s", s.Tier, tt.want)
			}
			if s.Note == "" {
				t.Error("note must carry the concrete numbers")
			}
		})
	}
}

func TestSummarize_TotalInsiderPercent(t *testing.T) {
	nonLP := []*domain.HolderRecord{
		pct("A", 8.5),
		pct("B", 1.0),  // exactly at the floor: counted
		pct("C", 0.99), // below the floor: dust, not an insider
	}

	s := Summarize(nil, nonLP, DefaultClusterConfig())
	if s.TotalInsiderPercent != 9.5 {
		t.Errorf("totalInsiderPercent = %.2f, want 9.50", s.TotalInsiderPercent)
	}
}
