// Package stub provides an in-memory solana.RPCClient for tests.
package stub

import (
	"context"
	"errors"

	"solana-token-guard/internal/solana"
)

// ErrUnavailable simulates a failed external read.
var ErrUnavailable = errors.New("rpc unavailable")

// RPCClient implements solana.RPCClient from canned data.
type RPCClient struct {
	Accounts     map[string]*solana.AccountInfo
	Largest      map[string][]solana.TokenAccountBalance
	Signatures   map[string][]solana.SignatureInfo
	Transactions map[string]*solana.Transaction

	// FailAccounts etc. force the matching read to error.
	FailAccounts   map[string]bool
	FailLargest    map[string]bool
	FailSignatures map[string]bool
}

// NewRPCClient creates an empty stub RPC client.
func NewRPCClient() *RPCClient {
	return &RPCClient{
		Accounts:       make(map[string]*solana.AccountInfo),
		Largest:        make(map[string][]solana.TokenAccountBalance),
		Signatures:     make(map[string][]solana.SignatureInfo),
		Transactions:   make(map[string]*solana.Transaction),
		FailAccounts:   make(map[string]bool),
		FailLargest:    make(map[string]bool),
		FailSignatures: make(map[string]bool),
	}
}

var _ solana.RPCClient = (*RPCClient)(nil)

// GetAccountInfo returns the canned account, nil when absent.
func (c *RPCClient) GetAccountInfo(_ context.Context, pubkey string) (*solana.AccountInfo, error) {
	if c.FailAccounts[pubkey] {
		return nil, ErrUnavailable
	}
	return c.Accounts[pubkey], nil
}

// GetTokenLargestAccounts returns the canned largest-accounts list.
func (c *RPCClient) GetTokenLargestAccounts(_ context.Context, mint string) ([]solana.TokenAccountBalance, error) {
	if c.FailLargest[mint] {
		return nil, ErrUnavailable
	}
	return c.Largest[mint], nil
}

// GetSignaturesForAddress returns the canned signature list, capped at limit.
func (c *RPCClient) GetSignaturesForAddress(_ context.Context, address string, limit int) ([]solana.SignatureInfo, error) {
	if c.FailSignatures[address] {
		return nil, ErrUnavailable
	}
	sigs := c.Signatures[address]
	if limit > 0 && limit < len(sigs) {
		sigs = sigs[:limit]
	}
	return sigs, nil
}

// GetTransaction returns the canned transaction, nil when unknown.
func (c *RPCClient) GetTransaction(_ context.Context, signature string) (*solana.Transaction, error) {
	return c.Transactions[signature], nil
}
