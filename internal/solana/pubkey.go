package solana

import (
	"fmt"

	"filippo.io/edwards25519"
	"github.com/mr-tron/base58"
)

// DecodePubkey decodes a base58 address and verifies it is a 32-byte key.
func DecodePubkey(s string) ([]byte, error) {
	raw, err := base58.Decode(s)
	if err != nil {
		return nil, fmt.Errorf("decode pubkey %q: %w", s, err)
	}
	if len(raw) != 32 {
		return nil, fmt.Errorf("pubkey %q: got %d bytes, want 32", s, len(raw))
	}
	return raw, nil
}

// IsOnCurve reports whether a 32-byte key is a valid ed25519 point.
// Program-derived addresses are off-curve by construction, so this
// distinguishes wallet keypairs from program-owned accounts.
func IsOnCurve(key []byte) bool {
	if len(key) != 32 {
		return false
	}
	_, err := new(edwards25519.Point).SetBytes(key)
	return err == nil
}

// IsWalletAddress reports whether an address can belong to a signing
// keypair: valid base58, 32 bytes, on-curve.
func IsWalletAddress(addr string) bool {
	raw, err := DecodePubkey(addr)
	if err != nil {
		return false
	}
	return IsOnCurve(raw)
}
