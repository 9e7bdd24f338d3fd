// Package memory provides in-memory store implementations, used when no
// database is configured and in tests.
package memory

import (
	"context"
	"sort"
	"sync"

	"solana-token-guard/internal/domain"
	"solana-token-guard/internal/storage"
)

// AssessmentStore is an in-memory implementation of storage.AssessmentStore.
type AssessmentStore struct {
	mu   sync.RWMutex
	data map[string]*domain.AssessmentRecord // keyed by assessment_id
}

// NewAssessmentStore creates a new in-memory assessment store.
func NewAssessmentStore() *AssessmentStore {
	return &AssessmentStore{
		data: make(map[string]*domain.AssessmentRecord),
	}
}

var _ storage.AssessmentStore = (*AssessmentStore)(nil)

// Insert adds a new record. Returns ErrDuplicateKey if assessment_id exists.
func (s *AssessmentStore) Insert(_ context.Context, r *domain.AssessmentRecord) error {
	if r == nil || r.AssessmentID == "" || r.Mint == "" {
		return storage.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.data[r.AssessmentID]; exists {
		return storage.ErrDuplicateKey
	}

	// Store a copy to prevent external mutation
	recordCopy := *r
	s.data[r.AssessmentID] = &recordCopy
	return nil
}

// GetByID retrieves a record by its ID. Returns ErrNotFound if not exists.
func (s *AssessmentStore) GetByID(_ context.Context, assessmentID string) (*domain.AssessmentRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, exists := s.data[assessmentID]
	if !exists {
		return nil, storage.ErrNotFound
	}

	recordCopy := *r
	return &recordCopy, nil
}

// GetByMint retrieves the assessment history for a mint, newest first.
func (s *AssessmentStore) GetByMint(_ context.Context, mint string, limit int) ([]*domain.AssessmentRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []*domain.AssessmentRecord
	for _, r := range s.data {
		if r.Mint == mint {
			recordCopy := *r
			result = append(result, &recordCopy)
		}
	}
	return sortAndCap(result, limit), nil
}

// GetRecent retrieves the most recent records across all mints, newest first.
func (s *AssessmentStore) GetRecent(_ context.Context, limit int) ([]*domain.AssessmentRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*domain.AssessmentRecord, 0, len(s.data))
	for _, r := range s.data {
		recordCopy := *r
		result = append(result, &recordCopy)
	}
	return sortAndCap(result, limit), nil
}

// sortAndCap orders records newest first with assessment_id as tie-break
// and applies the limit.
func sortAndCap(records []*domain.AssessmentRecord, limit int) []*domain.AssessmentRecord {
	sort.Slice(records, func(i, j int) bool {
		if records[i].AssessedAt != records[j].AssessedAt {
			return records[i].AssessedAt > records[j].AssessedAt
		}
		return records[i].AssessmentID < records[j].AssessmentID
	})
	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}
	return records
}
