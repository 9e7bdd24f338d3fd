package domain

// MintRecord is the decoded SPL mint account state relevant to risk analysis.
// Produced once per request from the raw 82-byte account payload, never mutated.
type MintRecord struct {
	Supply             *Amount `json:"supply"`
	Decimals           uint8   `json:"decimals"`
	HasMintAuthority   bool    `json:"hasMintAuthority"`
	HasFreezeAuthority bool    `json:"hasFreezeAuthority"`
}
