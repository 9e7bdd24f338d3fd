package holders

import (
	"testing"

	"solana-token-guard/internal/domain"
)

func holder(addr string, ui, percent float64) *domain.HolderRecord {
	return &domain.HolderRecord{
		Address:         addr,
		RawAmount:       domain.NewAmount(uint64(ui)),
		UIAmount:        ui,
		BasisPoints:     int64(percent * 100),
		PercentOfSupply: percent,
	}
}

func reserve(v float64) *float64 { return &v }

func TestIdentifyPool_ReserveMatch(t *testing.T) {
	all := []*domain.HolderRecord{
		holder("other", 1_000_000, 30),
		holder("vault", 495_000, 15), // 1% off the reported reserve
		holder("small", 10_000, 1),
	}

	part := IdentifyPool(all, reserve(500_000), DefaultIdentifierConfig())

	if part.Match != domain.LPMatchReserve {
		t.Fatalf("match = %s, want reserve", part.Match)
	}
	if part.LPHolder == nil || part.LPHolder.Address != "vault" {
		t.Fatalf("LP = %+v, want vault", part.LPHolder)
	}
	if part.RelativeReserveDiff >= 0.20 {
		t.Errorf("relative diff = %.4f, want < 0.20", part.RelativeReserveDiff)
	}
	if len(part.NonLPHolders) != 2 {
		t.Fatalf("nonLP count = %d, want 2", len(part.NonLPHolders))
	}
	for _, h := range part.NonLPHolders {
		if h.Address == "vault" {
			t.Error("vault must not appear in nonLpHolders")
		}
	}
}

func TestIdentifyPool_ClosestWithinBandWins(t *testing.T) {
	all := []*domain.HolderRecord{
		holder("near", 510_000, 20),  // 2% off
		holder("nearer", 501_000, 5), // 0.2% off
	}

	part := IdentifyPool(all, reserve(500_000), DefaultIdentifierConfig())
	if part.LPHolder.Address != "nearer" {
		t.Errorf("LP = %s, want nearer", part.LPHolder.Address)
	}
}

func TestIdentifyPool_TieKeepsHolderOrder(t *testing.T) {
	// Equidistant above and below the reserve; the earlier holder wins.
	all := []*domain.HolderRecord{
		holder("first", 505_000, 20),
		holder("second", 495_000, 20),
	}

	part := IdentifyPool(all, reserve(500_000), DefaultIdentifierConfig())
	if part.LPHolder.Address != "first" {
		t.Errorf("LP = %s, want first (tie-break on holder order)", part.LPHolder.Address)
	}
}

func TestIdentifyPool_DominanceFallback(t *testing.T) {
	all := []*domain.HolderRecord{
		holder("big", 1_000_000, 62),
		holder("rest", 50_000, 3),
	}

	// No reserve reported; dominance kicks in.
	part := IdentifyPool(all, nil, DefaultIdentifierConfig())
	if part.Match != domain.LPMatchDominance {
		t.Fatalf("match = %s, want dominance", part.Match)
	}
	if part.LPHolder.Address != "big" {
		t.Errorf("LP = %s, want big", part.LPHolder.Address)
	}
}

func TestIdentifyPool_LargeHolderBelowDominanceFloor(t *testing.T) {
	// 1,000,000 UI tokens but only 38% of supply: never flagged without
	// reserve evidence.
	all := []*domain.HolderRecord{
		holder("big", 1_000_000, 38),
	}

	part := IdentifyPool(all, nil, DefaultIdentifierConfig())
	if part.Match != domain.LPMatchNone {
		t.Fatalf("match = %s, want none", part.Match)
	}
	if part.LPHolder != nil {
		t.Errorf("LP = %+v, want nil", part.LPHolder)
	}
	if len(part.NonLPHolders) != 1 {
		t.Errorf("nonLP count = %d, want full list", len(part.NonLPHolders))
	}
}

func TestIdentifyPool_ReserveOutsideBandFallsThrough(t *testing.T) {
	all := []*domain.HolderRecord{
		holder("big", 900_000, 45), // 80% off the reserve, above dominance floor
	}

	part := IdentifyPool(all, reserve(500_000), DefaultIdentifierConfig())
	if part.Match != domain.LPMatchDominance {
		t.Errorf("match = %s, want dominance fallback", part.Match)
	}
}

func TestIdentifyPool_EmptyHolders(t *testing.T) {
	part := IdentifyPool(nil, reserve(500_000), DefaultIdentifierConfig())
	if part.Match != domain.LPMatchNone || part.LPHolder != nil {
		t.Errorf("empty input must yield LPMatchNone, got %+v", part)
	}
}
