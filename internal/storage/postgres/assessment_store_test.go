package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"solana-token-guard/internal/domain"
	"solana-token-guard/internal/storage"
)

func testRecord(id, mint string, assessedAt int64) *domain.AssessmentRecord {
	return &domain.AssessmentRecord{
		AssessmentID:   id,
		Mint:           mint,
		Level:          domain.RiskHigh,
		CompositeScore: 22,
		Payload:        []byte(`{"mint":"` + mint + `","riskScore":{"compositeScore":22}}`),
		AssessedAt:     assessedAt,
	}
}

func TestAssessmentStore_InsertAndGet(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	s := NewAssessmentStore(pool)
	ctx := context.Background()

	require.NoError(t, s.Insert(ctx, testRecord("a1", "MintA", 1000)))

	got, err := s.GetByID(ctx, "a1")
	require.NoError(t, err)
	assert.Equal(t, "MintA", got.Mint)
	assert.Equal(t, domain.RiskHigh, got.Level)
	assert.Equal(t, 22, got.CompositeScore)
	assert.JSONEq(t, string(testRecord("a1", "MintA", 1000).Payload), string(got.Payload))
	assert.NotZero(t, got.CreatedAt)

	_, err = s.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestAssessmentStore_DuplicateKey(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	s := NewAssessmentStore(pool)
	ctx := context.Background()

	require.NoError(t, s.Insert(ctx, testRecord("a1", "MintA", 1000)))
	assert.ErrorIs(t, s.Insert(ctx, testRecord("a1", "MintA", 2000)), storage.ErrDuplicateKey)
}

func TestAssessmentStore_HistoryOrdering(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	s := NewAssessmentStore(pool)
	ctx := context.Background()

	require.NoError(t, s.Insert(ctx, testRecord("a1", "MintA", 1000)))
	require.NoError(t, s.Insert(ctx, testRecord("a2", "MintA", 3000)))
	require.NoError(t, s.Insert(ctx, testRecord("a3", "MintA", 2000)))
	require.NoError(t, s.Insert(ctx, testRecord("b1", "MintB", 4000)))

	history, err := s.GetByMint(ctx, "MintA", 0)
	require.NoError(t, err)
	require.Len(t, history, 3)
	assert.Equal(t, "a2", history[0].AssessmentID)
	assert.Equal(t, "a3", history[1].AssessmentID)
	assert.Equal(t, "a1", history[2].AssessmentID)

	capped, err := s.GetByMint(ctx, "MintA", 2)
	require.NoError(t, err)
	require.Len(t, capped, 2)
	assert.Equal(t, "a2", capped[0].AssessmentID)

	recent, err := s.GetRecent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "b1", recent[0].AssessmentID)
	assert.Equal(t, "a2", recent[1].AssessmentID)
}
