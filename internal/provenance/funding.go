// Package provenance clusters holders by shared funding sources.
package provenance

import (
	"context"
	"sync"

	"solana-token-guard/internal/domain"
	"solana-token-guard/internal/solana"
)

// FundingSource reports the addresses observed funding recent activity on
// a holder account. Implementations are expected to be bounded: a small
// window of recent transactions per holder, nothing more.
type FundingSource interface {
	RecentFunders(ctx context.Context, holder string) ([]string, error)
}

// DefaultSampleSize bounds how many holders get a provenance lookup per
// request. Lookups are the most expensive external read in the system.
const DefaultSampleSize = 5

// CollectFunders runs the bounded per-holder funding fan-out. At most
// sampleSize holders (taken in share-descending order) are queried
// concurrently; a failed or empty lookup contributes an empty funder set
// rather than an error. A nil source means no funders are known anywhere.
func CollectFunders(ctx context.Context, src FundingSource, holders []*domain.HolderRecord, sampleSize int) map[string][]string {
	funders := make(map[string][]string, len(holders))
	if src == nil {
		return funders
	}
	if sampleSize <= 0 {
		sampleSize = DefaultSampleSize
	}

	sample := holders
	if len(sample) > sampleSize {
		sample = sample[:sampleSize]
	}

	var mu sync.Mutex
	var wg sync.WaitGroup
	for _, h := range sample {
		wg.Add(1)
		go func(addr string) {
			defer wg.Done()
			found, err := src.RecentFunders(ctx, addr)
			if err != nil {
				return // soft failure: no funders known for this holder
			}
			valid := found[:0]
			for _, f := range found {
				if isPlausibleFunder(f) {
					valid = append(valid, f)
				}
			}
			mu.Lock()
			funders[addr] = valid
			mu.Unlock()
		}(h.Address)
	}
	wg.Wait()

	return funders
}

// isPlausibleFunder rejects addresses that cannot have signed anything.
// A funder pays for a transaction, so it must be a real ed25519 keypair;
// program-derived addresses are off-curve by construction and indicate the
// transaction was attributed to a program account instead of a wallet.
func isPlausibleFunder(addr string) bool {
	return solana.IsWalletAddress(addr)
}
