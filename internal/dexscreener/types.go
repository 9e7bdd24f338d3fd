// Package dexscreener reads aggregated DEX market data for a mint.
package dexscreener

// tokenPairsResponse is the aggregator's response for a token lookup.
type tokenPairsResponse struct {
	SchemaVersion string `json:"schemaVersion"`
	Pairs         []Pair `json:"pairs"`
}

// Pair is one trading pair as reported by the aggregator.
type Pair struct {
	ChainID       string     `json:"chainId"`
	DexID         string     `json:"dexId"`
	PairAddress   string     `json:"pairAddress"`
	BaseToken     Token      `json:"baseToken"`
	QuoteToken    Token      `json:"quoteToken"`
	PriceUSD      string     `json:"priceUsd"`
	Txns          PairTxns   `json:"txns"`
	Volume        PairVolume `json:"volume"`
	Liquidity     *Liquidity `json:"liquidity"`
	PairCreatedAt int64      `json:"pairCreatedAt"` // Unix ms, 0 when unreported
}

// Token identifies one side of a pair.
type Token struct {
	Address string `json:"address"`
	Name    string `json:"name"`
	Symbol  string `json:"symbol"`
}

// Liquidity is the pooled depth of a pair. Base and Quote are token
// units; USD is the combined depth.
type Liquidity struct {
	USD   *float64 `json:"usd"`
	Base  float64  `json:"base"`
	Quote float64  `json:"quote"`
}

// PairTxns carries trade counts per window.
type PairTxns struct {
	H24 TxnWindow `json:"h24"`
}

// TxnWindow is a buys/sells count pair.
type TxnWindow struct {
	Buys  int64 `json:"buys"`
	Sells int64 `json:"sells"`
}

// PairVolume carries traded USD volume per window.
type PairVolume struct {
	H24 *float64 `json:"h24"`
}
