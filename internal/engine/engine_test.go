package engine

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"testing"
	"time"

	"github.com/mr-tron/base58"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"solana-token-guard/internal/dexscreener"
	"solana-token-guard/internal/domain"
	"solana-token-guard/internal/solana"
	"solana-token-guard/internal/solana/stub"
	"solana-token-guard/internal/spl"
)

// walletAddr generates a base58 address that is guaranteed on-curve.
func walletAddr(t *testing.T) string {
	t.Helper()
	pub, _, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)
	return base58.Encode(pub)
}

// mintData builds a valid 82-byte mint account payload.
func mintData(supply uint64, mintAuth, freezeAuth bool) []byte {
	data := make([]byte, spl.MintAccountSize)
	if mintAuth {
		binary.LittleEndian.PutUint32(data[0:4], 1)
	}
	binary.LittleEndian.PutUint64(data[36:44], supply)
	data[44] = 6 // decimals
	data[45] = 1 // initialized
	if freezeAuth {
		binary.LittleEndian.PutUint32(data[46:50], 1)
	}
	return data
}

type stubMarket struct {
	snap *dexscreener.Snapshot
	err  error
}

func (m *stubMarket) TokenSnapshot(context.Context, string) (*dexscreener.Snapshot, error) {
	return m.snap, m.err
}

func fptr(v float64) *float64 { return &v }
func iptr(v int64) *int64     { return &v }

// fullScenario wires a mint with a clean authority profile, an LP vault
// identified by reserve match, two holders funded by the same wallet, and
// an organic-looking market.
func fullScenario(t *testing.T) (*stub.RPCClient, *stubMarket, string) {
	t.Helper()
	mint := walletAddr(t)
	pool, a, b, c := "PoolVault", "HolderA", "HolderB", "HolderC"
	funder := walletAddr(t)

	rpc := stub.NewRPCClient()
	rpc.Accounts[mint] = &solana.AccountInfo{Data: mintData(1_000_000_000, false, false)}
	rpc.Largest[mint] = []solana.TokenAccountBalance{
		{Address: pool, Amount: "400000000", Decimals: 6},
		{Address: a, Amount: "250000000", Decimals: 6},
		{Address: b, Amount: "100000000", Decimals: 6},
		{Address: c, Amount: "50000000", Decimals: 6},
	}
	rpc.Signatures[a] = []solana.SignatureInfo{{Signature: "sigA"}}
	rpc.Signatures[b] = []solana.SignatureInfo{{Signature: "sigB"}}
	rpc.Transactions["sigA"] = &solana.Transaction{Signature: "sigA", AccountKeys: []string{funder, a}}
	rpc.Transactions["sigB"] = &solana.Transaction{Signature: "sigB", AccountKeys: []string{funder, b}}

	created := time.Now().Add(-30 * 24 * time.Hour)
	market := &stubMarket{snap: &dexscreener.Snapshot{
		Metrics: domain.LiquidityMetrics{
			PriceUSD:     fptr(0.002),
			LiquidityUSD: fptr(10_000),
			Volume24hUSD: fptr(10_000),
			TxCount24h:   iptr(80),
		},
		// Pool vault holds 400 UI tokens; 395 lands inside the reserve band.
		PoolMintReserve: fptr(395),
		PairCreatedAt:   &created,
		PairAddress:     "Pair1",
		DexID:           "raydium",
	}}
	return rpc, market, mint
}

func TestAssess_FullPipeline(t *testing.T) {
	rpc, market, mint := fullScenario(t)
	eng := New(Options{RPC: rpc, Market: market, Config: DefaultConfig()})

	a, err := eng.Assess(context.Background(), mint)
	require.NoError(t, err)

	assert.Equal(t, "1000000000", a.MintRecord.Supply.String())
	assert.False(t, a.MintRecord.HasMintAuthority)
	assert.False(t, a.MintRecord.HasFreezeAuthority)

	require.NotNil(t, a.HolderSummary.LPHolder)
	assert.Equal(t, "PoolVault", a.HolderSummary.LPHolder.Address)
	assert.Equal(t, domain.LPMatchReserve, a.HolderSummary.LPMatch)
	assert.Equal(t, 40.0, a.HolderSummary.TopHolderPercent)
	require.NotNil(t, a.HolderSummary.Top10PercentExcludingLP)
	assert.InDelta(t, 40.0, *a.HolderSummary.Top10PercentExcludingLP, 1e-9)

	// HolderA (25%) and HolderB (10%) share a funder.
	require.Len(t, a.InsiderSummary.Clusters, 1)
	assert.Len(t, a.InsiderSummary.Clusters[0].MemberAddresses, 2)
	assert.InDelta(t, 35.0, a.InsiderSummary.Clusters[0].AggregatePercent, 1e-9)
	assert.Equal(t, domain.TierHigh, a.InsiderSummary.Tier)
	assert.InDelta(t, 40.0, a.InsiderSummary.TotalInsiderPercent, 1e-9)

	assert.Equal(t, domain.TierLow, a.LiquidityAuthenticity.Tier)

	require.NotNil(t, a.TokenAgeDays)
	assert.InDelta(t, 30.0, *a.TokenAgeDays, 0.01)

	// 95*0.30 + 65*0.30 + 90*0.25 + 85*0.15 = 83.25
	assert.Equal(t, 95, a.RiskScore.MintScore)
	assert.Equal(t, 65, a.RiskScore.HolderScore)
	assert.Equal(t, 90, a.RiskScore.LiquidityScore)
	assert.Equal(t, 85, a.RiskScore.AgeScore)
	assert.Equal(t, 83, a.RiskScore.CompositeScore)
	assert.Equal(t, domain.RiskLow, a.RiskScore.Level)
}

func TestAssess_MintAccountMissing(t *testing.T) {
	rpc := stub.NewRPCClient()
	eng := New(Options{RPC: rpc, Config: DefaultConfig()})

	_, err := eng.Assess(context.Background(), "UnknownMint")
	require.Error(t, err)
}

func TestAssess_MintAccountReadError(t *testing.T) {
	rpc := stub.NewRPCClient()
	rpc.FailAccounts["M"] = true
	eng := New(Options{RPC: rpc, Config: DefaultConfig()})

	_, err := eng.Assess(context.Background(), "M")
	require.ErrorIs(t, err, stub.ErrUnavailable)
}

func TestAssess_MalformedMintDataIsFatal(t *testing.T) {
	rpc := stub.NewRPCClient()
	rpc.Accounts["M"] = &solana.AccountInfo{Data: []byte{1, 2, 3}}
	eng := New(Options{RPC: rpc, Config: DefaultConfig()})

	_, err := eng.Assess(context.Background(), "M")
	require.ErrorIs(t, err, spl.ErrMalformedAccountData)
}

func TestAssess_DegradesWithoutHolderList(t *testing.T) {
	rpc, market, mint := fullScenario(t)
	rpc.FailLargest[mint] = true
	eng := New(Options{RPC: rpc, Market: market, Config: DefaultConfig()})

	a, err := eng.Assess(context.Background(), mint)
	require.NoError(t, err)

	assert.Empty(t, a.HolderSummary.Holders)
	assert.Nil(t, a.HolderSummary.Top10PercentExcludingLP)
	// Unknown concentration scores the neutral midpoint, not a penalty.
	assert.Equal(t, 50, a.RiskScore.HolderScore)
	assert.Zero(t, a.InsiderSummary.TotalInsiderPercent)
}

func TestAssess_DegradesWithoutMarketData(t *testing.T) {
	rpc, _, mint := fullScenario(t)
	market := &stubMarket{err: errors.New("aggregator down")}
	eng := New(Options{RPC: rpc, Market: market, Config: DefaultConfig()})

	a, err := eng.Assess(context.Background(), mint)
	require.NoError(t, err)

	assert.Equal(t, domain.TierUnknown, a.LiquidityAuthenticity.Tier)
	assert.Equal(t, 50, a.RiskScore.LiquidityScore)
	assert.Nil(t, a.TokenAgeDays)
	assert.Equal(t, 50, a.RiskScore.AgeScore)

	// With no reserve hint the 40% vault is still found by dominance.
	require.NotNil(t, a.HolderSummary.LPHolder)
	assert.Equal(t, domain.LPMatchDominance, a.HolderSummary.LPMatch)
}

func TestAssess_NoMarketSourceConfigured(t *testing.T) {
	rpc, _, mint := fullScenario(t)
	eng := New(Options{RPC: rpc, Config: DefaultConfig()})

	a, err := eng.Assess(context.Background(), mint)
	require.NoError(t, err)
	assert.Equal(t, domain.TierUnknown, a.LiquidityAuthenticity.Tier)
}

func TestAssess_StablecoinOverride(t *testing.T) {
	rpc, market, mint := fullScenario(t)
	// Give the mint the authority profile a centralized issuer carries.
	rpc.Accounts[mint] = &solana.AccountInfo{Data: mintData(1_000_000_000, true, true)}

	cfg := DefaultConfig()
	cfg.Scoring.Stablecoins[mint] = struct{}{}
	eng := New(Options{RPC: rpc, Market: market, Config: cfg})

	a, err := eng.Assess(context.Background(), mint)
	require.NoError(t, err)

	assert.Equal(t, domain.RiskLow, a.RiskScore.Level)
	assert.Equal(t, 95, a.RiskScore.CompositeScore)
	// The override pins the verdict only; the axes keep their real values.
	assert.Equal(t, 35, a.RiskScore.MintScore)
}

func TestTokenAgeDays(t *testing.T) {
	now := time.Now()

	assert.Nil(t, tokenAgeDays(nil, now))

	future := now.Add(time.Hour)
	assert.Nil(t, tokenAgeDays(&future, now))

	created := now.Add(-36 * time.Hour)
	got := tokenAgeDays(&created, now)
	require.NotNil(t, got)
	assert.InDelta(t, 1.5, *got, 1e-9)
}
