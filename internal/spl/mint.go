// Package spl decodes the fixed-layout SPL mint account payload.
package spl

import (
	"errors"
	"fmt"
	"math/big"

	"solana-token-guard/internal/domain"
)

// ErrMalformedAccountData is returned when the payload cannot be a mint
// account. It is the only fatal condition in the analysis taxonomy.
var ErrMalformedAccountData = errors.New("malformed mint account data")

// MintAccountSize is the canonical SPL mint account length in bytes.
const MintAccountSize = 82

var two32 = new(big.Int).Lsh(big.NewInt(1), 32)

// DecodeMint decodes a raw SPL mint account payload into a MintRecord.
//
// Supply is a u64 that routinely exceeds 2^53, so it is reconstructed from
// its two little-endian u32 halves as high*2^32 + low entirely in big.Int
// arithmetic. Routing it through float64 would silently corrupt every
// percentage computed downstream.
func DecodeMint(data []byte) (*domain.MintRecord, error) {
	if len(data) < MintAccountSize {
		return nil, fmt.Errorf("%w: got %d bytes, need %d", ErrMalformedAccountData, len(data), MintAccountSize)
	}

	r := byteReader{data: data}

	mintOpt, err := r.u32le(mintLayout.mintAuthorityOption)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedAccountData, err)
	}

	supplyLow, err := r.u32leAt(mintLayout.supply, 0)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedAccountData, err)
	}
	supplyHigh, err := r.u32leAt(mintLayout.supply, 4)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedAccountData, err)
	}

	decimals, err := r.u8(mintLayout.decimals)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedAccountData, err)
	}

	freezeOpt, err := r.u32le(mintLayout.freezeAuthorityOption)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedAccountData, err)
	}

	supply := new(domain.Amount)
	supply.SetUint64(uint64(supplyHigh))
	supply.Mul(&supply.Int, two32)
	supply.Add(&supply.Int, new(big.Int).SetUint64(uint64(supplyLow)))

	return &domain.MintRecord{
		Supply:             supply,
		Decimals:           decimals,
		HasMintAuthority:   mintOpt != 0,
		HasFreezeAuthority: freezeOpt != 0,
	}, nil
}
