package dexscreener

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"solana-token-guard/internal/domain"
)

// DefaultBaseURL is the public aggregator endpoint.
const DefaultBaseURL = "https://api.dexscreener.com/latest/dex"

const defaultTimeout = 10 * time.Second

// Snapshot is the distilled market view for one mint: the deepest Solana
// pair mapped to the metrics the risk engine consumes. Absent values stay
// nil; they must not be coerced to 0 downstream.
type Snapshot struct {
	Metrics         domain.LiquidityMetrics
	PoolMintReserve *float64   // pool-held reserve of the assessed mint, token units
	PairCreatedAt   *time.Time // pool creation time when reported
	PairAddress     string
	DexID           string
}

// Client fetches pair data from a dexscreener-compatible API.
type Client struct {
	baseURL string
	client  *http.Client
}

// Option configures Client.
type Option func(*Client)

// WithHTTPClient sets a custom http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.client = hc }
}

// NewClient creates an aggregator client. An empty baseURL selects the
// public endpoint.
func NewClient(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL: baseURL,
		client:  &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// TokenSnapshot fetches all pairs for a mint and distills the deepest
// Solana pair into a Snapshot. A mint with no pairs yields a Snapshot
// with every field nil, which classifies as "unknown" downstream.
func (c *Client) TokenSnapshot(ctx context.Context, mint string) (*Snapshot, error) {
	url := fmt.Sprintf("%s/tokens/%s", c.baseURL, mint)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(body))
	}

	var parsed tokenPairsResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}

	return distill(parsed.Pairs, mint), nil
}

// distill picks the deepest Solana pair and maps it to engine inputs.
func distill(pairs []Pair, mint string) *Snapshot {
	best := pickDeepest(pairs)
	if best == nil {
		return &Snapshot{}
	}

	snap := &Snapshot{
		PairAddress: best.PairAddress,
		DexID:       best.DexID,
	}

	if price, err := strconv.ParseFloat(best.PriceUSD, 64); err == nil && price > 0 {
		snap.Metrics.PriceUSD = &price
	}
	if best.Liquidity != nil {
		snap.Metrics.LiquidityUSD = best.Liquidity.USD

		// The pool's reserve of the assessed mint sits on whichever side
		// of the pair the mint occupies.
		var reserve float64
		switch mint {
		case best.BaseToken.Address:
			reserve = best.Liquidity.Base
		case best.QuoteToken.Address:
			reserve = best.Liquidity.Quote
		}
		if reserve > 0 {
			snap.PoolMintReserve = &reserve
		}
	}
	snap.Metrics.Volume24hUSD = best.Volume.H24

	tx := best.Txns.H24.Buys + best.Txns.H24.Sells
	if tx > 0 {
		snap.Metrics.TxCount24h = &tx
	}

	if best.PairCreatedAt > 0 {
		created := time.UnixMilli(best.PairCreatedAt).UTC()
		snap.PairCreatedAt = &created
	}

	return snap
}

func pickDeepest(pairs []Pair) *Pair {
	var best *Pair
	bestDepth := -1.0
	for i := range pairs {
		p := &pairs[i]
		if p.ChainID != "solana" {
			continue
		}
		depth := 0.0
		if p.Liquidity != nil && p.Liquidity.USD != nil {
			depth = *p.Liquidity.USD
		}
		if depth > bestDepth {
			best = p
			bestDepth = depth
		}
	}
	return best
}
