package domain

import (
	"fmt"
	"math/big"
	"strings"
)

// Amount is an arbitrary-precision unsigned token amount.
// Raw on-chain amounts routinely exceed 2^53, so they must never pass
// through float64. JSON encoding is a decimal string.
type Amount struct {
	big.Int
}

// NewAmount creates an Amount from a uint64.
func NewAmount(v uint64) *Amount {
	a := new(Amount)
	a.SetUint64(v)
	return a
}

// ParseAmount parses a base-10 decimal string into an Amount.
func ParseAmount(s string) (*Amount, error) {
	a := new(Amount)
	if _, ok := a.SetString(s, 10); !ok {
		return nil, fmt.Errorf("invalid amount %q", s)
	}
	if a.Sign() < 0 {
		return nil, fmt.Errorf("negative amount %q", s)
	}
	return a, nil
}

// Float converts the amount to a UI value by dividing by 10^decimals.
// The result is for display and approximate matching only.
func (a *Amount) Float(decimals uint8) float64 {
	f := new(big.Float).SetInt(&a.Int)
	scale := new(big.Float).SetInt(new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(decimals)), nil))
	v, _ := new(big.Float).Quo(f, scale).Float64()
	return v
}

// MarshalJSON encodes the amount as a quoted decimal string.
func (a *Amount) MarshalJSON() ([]byte, error) {
	return []byte(`"` + a.String() + `"`), nil
}

// UnmarshalJSON accepts both quoted decimal strings and bare JSON numbers.
func (a *Amount) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if _, ok := a.SetString(s, 10); !ok {
		return fmt.Errorf("invalid amount %q", s)
	}
	return nil
}
