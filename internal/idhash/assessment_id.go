// Package idhash computes deterministic record identifiers.
package idhash

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// ComputeAssessmentID computes a deterministic assessment_id using SHA256.
// Formula: SHA256(mint|assessed_at_ms)
// Returns hex-encoded hash (64 characters).
func ComputeAssessmentID(mint string, assessedAt int64) string {
	data := fmt.Sprintf("%s|%d", mint, assessedAt)
	hash := sha256.Sum256([]byte(data))
	return hex.EncodeToString(hash[:])
}
