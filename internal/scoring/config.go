package scoring

// Config holds the axis breakpoints, composite weights, and the injected
// stablecoin allow-list. Thresholds are empirically chosen and kept as
// named configuration rather than re-derived values.
type Config struct {
	// Composite weights, summing to 1.
	MintWeight      float64 `yaml:"mint_weight"`
	HolderWeight    float64 `yaml:"holder_weight"`
	LiquidityWeight float64 `yaml:"liquidity_weight"`
	AgeWeight       float64 `yaml:"age_weight"`

	// Holder axis breakpoints (percent of supply).
	HolderTop10Good float64 `yaml:"holder_top10_good"`
	HolderTop10Fair float64 `yaml:"holder_top10_fair"`
	InsiderGood     float64 `yaml:"insider_good"`
	InsiderFair     float64 `yaml:"insider_fair"`

	// Composite level boundaries.
	LowRiskFloor   int `yaml:"low_risk_floor"`
	HighRiskCeil   int `yaml:"high_risk_ceil"`

	// Stablecoins maps allow-listed mint addresses. Membership overrides
	// the weighted formula unconditionally: heavy concentration and an
	// active freeze authority are expected operating posture for a
	// centralized stablecoin, not risk.
	Stablecoins map[string]struct{} `yaml:"-"`
}

// DefaultConfig returns the stock scoring parameters with the well-known
// centralized stablecoin mints allow-listed.
func DefaultConfig() Config {
	return Config{
		MintWeight:      0.30,
		HolderWeight:    0.30,
		LiquidityWeight: 0.25,
		AgeWeight:       0.15,

		HolderTop10Good: 25,
		HolderTop10Fair: 40,
		InsiderGood:     30,
		InsiderFair:     45,

		LowRiskFloor: 80,
		HighRiskCeil: 45,

		Stablecoins: StablecoinSet(
			"EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v", // USDC
			"Es9vMFrzaCERmJfrF4H2FYD4KCoNkY11McCe8BenwNYB", // USDT
			"USDH1SM1ojwWUga67PGrgFWUHibbjqMvuMaDkRJTgkX",  // USDH
		),
	}
}

// StablecoinSet builds an allow-list set from mint addresses.
func StablecoinSet(mints ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(mints))
	for _, m := range mints {
		set[m] = struct{}{}
	}
	return set
}
