package domain

// RiskLevel is the final coarse verdict attached to a composite score.
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// RiskScore is the multi-axis composite verdict. Axis scores are each
// 0-100; CompositeScore is the rounded weighted sum, except for
// allow-listed stablecoins where the override pins it.
type RiskScore struct {
	MintScore      int       `json:"mintScore"`
	HolderScore    int       `json:"holderScore"`
	LiquidityScore int       `json:"liquidityScore"`
	AgeScore       int       `json:"ageScore"`
	CompositeScore int       `json:"compositeScore"`
	Level          RiskLevel `json:"level"`
	Blurb          string    `json:"blurb"`
}
