package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"solana-token-guard/internal/domain"
	"solana-token-guard/internal/storage"
)

// AssessmentStore implements storage.AssessmentStore using PostgreSQL.
type AssessmentStore struct {
	pool *Pool
}

// NewAssessmentStore creates a new AssessmentStore.
func NewAssessmentStore(pool *Pool) *AssessmentStore {
	return &AssessmentStore{pool: pool}
}

// Compile-time interface check.
var _ storage.AssessmentStore = (*AssessmentStore)(nil)

const assessmentColumns = `assessment_id, mint, level, composite_score, payload, assessed_at, created_at`

// Insert adds a new record. Returns ErrDuplicateKey if assessment_id exists.
func (s *AssessmentStore) Insert(ctx context.Context, r *domain.AssessmentRecord) error {
	if r == nil || r.AssessmentID == "" || r.Mint == "" {
		return storage.ErrInvalidInput
	}

	query := `
		INSERT INTO assessments (
			assessment_id, mint, level, composite_score, payload, assessed_at
		) VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := s.pool.Exec(ctx, query,
		r.AssessmentID,
		r.Mint,
		string(r.Level),
		r.CompositeScore,
		r.Payload,
		r.AssessedAt,
	)
	if err != nil {
		if isDuplicateKeyError(err) {
			return storage.ErrDuplicateKey
		}
		return fmt.Errorf("insert assessment: %w", err)
	}
	return nil
}

// GetByID retrieves a record by its ID. Returns ErrNotFound if not exists.
func (s *AssessmentStore) GetByID(ctx context.Context, assessmentID string) (*domain.AssessmentRecord, error) {
	query := `
		SELECT ` + assessmentColumns + `
		FROM assessments
		WHERE assessment_id = $1
	`

	row := s.pool.QueryRow(ctx, query, assessmentID)
	r, err := scanAssessment(row)
	if err != nil {
		if isNotFoundError(err) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("get assessment by id: %w", err)
	}
	return r, nil
}

// GetByMint retrieves the assessment history for a mint, newest first.
func (s *AssessmentStore) GetByMint(ctx context.Context, mint string, limit int) ([]*domain.AssessmentRecord, error) {
	query := `
		SELECT ` + assessmentColumns + `
		FROM assessments
		WHERE mint = $1
		ORDER BY assessed_at DESC, assessment_id ASC
	`
	args := []any{mint}
	if limit > 0 {
		query += ` LIMIT $2`
		args = append(args, limit)
	}

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("get assessments by mint: %w", err)
	}
	defer rows.Close()

	return scanAssessments(rows)
}

// GetRecent retrieves the most recent records across all mints, newest first.
func (s *AssessmentStore) GetRecent(ctx context.Context, limit int) ([]*domain.AssessmentRecord, error) {
	if limit <= 0 {
		limit = 50
	}
	query := `
		SELECT ` + assessmentColumns + `
		FROM assessments
		ORDER BY assessed_at DESC, assessment_id ASC
		LIMIT $1
	`

	rows, err := s.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("get recent assessments: %w", err)
	}
	defer rows.Close()

	return scanAssessments(rows)
}

// scanAssessment scans a single row into an AssessmentRecord.
func scanAssessment(row pgx.Row) (*domain.AssessmentRecord, error) {
	var r domain.AssessmentRecord
	var levelStr string

	err := row.Scan(
		&r.AssessmentID,
		&r.Mint,
		&levelStr,
		&r.CompositeScore,
		&r.Payload,
		&r.AssessedAt,
		&r.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	r.Level = domain.RiskLevel(levelStr)
	return &r, nil
}

// scanAssessments scans multiple rows into a slice of AssessmentRecord.
func scanAssessments(rows pgx.Rows) ([]*domain.AssessmentRecord, error) {
	var records []*domain.AssessmentRecord

	for rows.Next() {
		r, err := scanAssessment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan assessment row: %w", err)
		}
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate assessment rows: %w", err)
	}

	return records, nil
}
