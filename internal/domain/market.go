package domain

// LiquidityMetrics is the aggregated DEX snapshot for the assessed mint.
// Absent inputs stay nil: coercing them to 0 would let a token with no
// market data classify as "real".
type LiquidityMetrics struct {
	PriceUSD     *float64 `json:"priceUsd"`
	LiquidityUSD *float64 `json:"liquidityUsd"`
	Volume24hUSD *float64 `json:"volume24hUsd"`
	TxCount24h   *int64   `json:"txCount24h"`
}

// LiquidityAuthenticity is the wash-trading classifier output.
// Ratio and AvgTradeUSD are derived only when every input was present
// and positive.
type LiquidityAuthenticity struct {
	Tier        RiskTier `json:"tier"`
	Note        string   `json:"note"`
	Ratio       *float64 `json:"tradeToLiquidityRatio,omitempty"`
	AvgTradeUSD *float64 `json:"avgTradeUsd,omitempty"`
}
