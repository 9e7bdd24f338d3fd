// Package solana provides the JSON-RPC reads the risk engine consumes.
package solana

import "context"

// RPCClient is the chain-read capability the collector depends on.
type RPCClient interface {
	// GetAccountInfo returns raw account state, or nil if the account
	// does not exist.
	GetAccountInfo(ctx context.Context, pubkey string) (*AccountInfo, error)
	// GetTokenLargestAccounts returns the largest token accounts for a
	// mint, ordered by balance descending (cardinality ≤20).
	GetTokenLargestAccounts(ctx context.Context, mint string) ([]TokenAccountBalance, error)
	// GetSignaturesForAddress returns recent transaction signatures
	// touching an address, newest first.
	GetSignaturesForAddress(ctx context.Context, address string, limit int) ([]SignatureInfo, error)
	// GetTransaction returns a confirmed transaction, or nil if unknown.
	GetTransaction(ctx context.Context, signature string) (*Transaction, error)
}

// AccountInfo is decoded Solana account state.
type AccountInfo struct {
	Lamports   uint64
	Owner      string
	Data       []byte // decoded from base64
	Executable bool
}

// TokenAccountBalance is one entry of the tokenLargestAccounts response.
// Amount stays a decimal string: raw balances exceed 2^53.
type TokenAccountBalance struct {
	Address  string
	Amount   string
	Decimals uint8
	UIAmount *float64
}

// SignatureInfo is one entry of the getSignaturesForAddress response.
type SignatureInfo struct {
	Signature string
	Slot      int64
	BlockTime *int64
	Err       interface{}
}

// Transaction is the slice of a confirmed transaction the funding
// heuristic needs: the ordered account keys, of which the first is the
// fee payer.
type Transaction struct {
	Signature   string
	Slot        int64
	BlockTime   int64
	AccountKeys []string
	Err         interface{}
}

// FeePayer returns the transaction's fee payer, or "" when the account
// keys were not reported.
func (t *Transaction) FeePayer() string {
	if t == nil || len(t.AccountKeys) == 0 {
		return ""
	}
	return t.AccountKeys[0]
}
