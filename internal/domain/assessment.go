package domain

// Assessment is the full risk-analysis payload for one mint. It is a plain
// value with no cycles and marshals directly to the API response.
type Assessment struct {
	Mint                  string                 `json:"mint"`
	MintRecord            *MintRecord            `json:"mintRecord"`
	HolderSummary         *HolderSummary         `json:"holderSummary"`
	InsiderSummary        *InsiderSummary        `json:"insiderSummary"`
	LiquidityAuthenticity *LiquidityAuthenticity `json:"liquidityAuthenticity"`
	RiskScore             *RiskScore             `json:"riskScore"`
	TokenAgeDays          *float64               `json:"tokenAgeDays"`
	AssessedAt            int64                  `json:"assessedAt"` // Unix ms
}

// AssessmentRecord is the persisted form of an Assessment.
// Corresponds to the assessments table in PostgreSQL.
type AssessmentRecord struct {
	AssessmentID   string // PRIMARY KEY, deterministic hash
	Mint           string
	Level          RiskLevel
	CompositeScore int
	Payload        []byte // full Assessment JSON
	AssessedAt     int64  // Unix timestamp in milliseconds
	CreatedAt      int64  // record creation timestamp (ms)
}
