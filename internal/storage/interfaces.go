// Package storage defines the persistence interfaces for assessment history.
package storage

import (
	"context"

	"solana-token-guard/internal/domain"
)

// AssessmentStore provides access to assessment history storage.
// Records are append-only: a re-assessment of the same mint inserts a
// new row instead of updating the old one.
type AssessmentStore interface {
	// Insert adds a new assessment record. Returns ErrDuplicateKey if
	// assessment_id exists.
	Insert(ctx context.Context, r *domain.AssessmentRecord) error

	// GetByID retrieves a record by its ID. Returns ErrNotFound if not exists.
	GetByID(ctx context.Context, assessmentID string) (*domain.AssessmentRecord, error)

	// GetByMint retrieves the assessment history for a mint, newest first,
	// capped at limit (<=0 means no cap).
	GetByMint(ctx context.Context, mint string, limit int) ([]*domain.AssessmentRecord, error)

	// GetRecent retrieves the most recent records across all mints,
	// newest first, capped at limit.
	GetRecent(ctx context.Context, limit int) ([]*domain.AssessmentRecord, error)
}
