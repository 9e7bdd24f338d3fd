package engine

import (
	"context"
	"fmt"
	"sync"

	"solana-token-guard/internal/dexscreener"
	"solana-token-guard/internal/solana"
)

// MarketSource is the DEX aggregator capability the collector depends on.
type MarketSource interface {
	TokenSnapshot(ctx context.Context, mint string) (*dexscreener.Snapshot, error)
}

// Bundle holds everything the external reads produced for one mint.
// Partial results are normal: a failed read leaves its slot nil and its
// error recorded, and the assessment degrades instead of aborting.
type Bundle struct {
	Account *solana.AccountInfo
	Largest []solana.TokenAccountBalance
	Market  *dexscreener.Snapshot

	AccountErr error
	LargestErr error
	MarketErr  error
}

// Collector runs the independent external reads for one mint
// concurrently and joins them all before returning. Each read is
// attempted once; there is no per-read retry here.
type Collector struct {
	rpc solana.RPCClient
	dex MarketSource
}

// NewCollector creates a collector over the given chain and market sources.
func NewCollector(rpc solana.RPCClient, dex MarketSource) *Collector {
	return &Collector{rpc: rpc, dex: dex}
}

// Collect fans out the three independent reads and waits for all of them.
func (c *Collector) Collect(ctx context.Context, mint string) *Bundle {
	b := &Bundle{}

	var wg sync.WaitGroup
	wg.Add(3)

	go func() {
		defer wg.Done()
		info, err := c.rpc.GetAccountInfo(ctx, mint)
		if err != nil {
			b.AccountErr = fmt.Errorf("get mint account: %w", err)
			return
		}
		b.Account = info
	}()

	go func() {
		defer wg.Done()
		largest, err := c.rpc.GetTokenLargestAccounts(ctx, mint)
		if err != nil {
			b.LargestErr = fmt.Errorf("get largest accounts: %w", err)
			return
		}
		b.Largest = largest
	}()

	go func() {
		defer wg.Done()
		if c.dex == nil {
			return
		}
		snap, err := c.dex.TokenSnapshot(ctx, mint)
		if err != nil {
			b.MarketErr = fmt.Errorf("market snapshot: %w", err)
			return
		}
		b.Market = snap
	}()

	wg.Wait()
	return b
}

// rpcFundingSource resolves a holder's recent funders over JSON-RPC: the
// fee payers of the holder's most recent transactions. A fee payer must
// be a signing keypair, which is what makes it a plausible wallet.
type rpcFundingSource struct {
	rpc      solana.RPCClient
	sigLimit int
}

func (s *rpcFundingSource) RecentFunders(ctx context.Context, holder string) ([]string, error) {
	sigs, err := s.rpc.GetSignaturesForAddress(ctx, holder, s.sigLimit)
	if err != nil {
		return nil, err
	}

	var funders []string
	for _, sig := range sigs {
		if sig.Err != nil {
			continue
		}
		tx, err := s.rpc.GetTransaction(ctx, sig.Signature)
		if err != nil || tx == nil {
			continue
		}
		if payer := tx.FeePayer(); payer != "" {
			funders = append(funders, payer)
		}
	}
	return funders, nil
}
