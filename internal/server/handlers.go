package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"solana-token-guard/internal/domain"
	"solana-token-guard/internal/idhash"
	"solana-token-guard/internal/observability"
	"solana-token-guard/internal/solana"
)

// StatusResponse is the /status payload.
type StatusResponse struct {
	Status string `json:"status"`
}

// HistoryEntry is one row of an assessment history response.
type HistoryEntry struct {
	AssessmentID   string           `json:"assessmentId"`
	Mint           string           `json:"mint"`
	Level          domain.RiskLevel `json:"level"`
	CompositeScore int              `json:"compositeScore"`
	AssessedAt     int64            `json:"assessedAt"`
	Assessment     json.RawMessage  `json:"assessment,omitempty"`
}

// HistoryResponse is the /v1/history/:mint payload.
type HistoryResponse struct {
	Mint    string         `json:"mint"`
	Entries []HistoryEntry `json:"entries"`
}

func (s *Server) GetStatus(c echo.Context) error {
	return c.JSON(http.StatusOK, StatusResponse{Status: "ok"})
}

// GetAssessment runs a fresh assessment for the mint and persists it
// best-effort: a storage failure is logged but never fails the request.
func (s *Server) GetAssessment(c echo.Context) error {
	mint := c.Param("mint")
	if _, err := solana.DecodePubkey(mint); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("invalid mint address: %v", err))
	}

	start := time.Now()
	assessment, err := s.engine.Assess(c.Request().Context(), mint)
	if err != nil {
		observability.RecordAssessmentError("engine")
		return echo.NewHTTPError(http.StatusBadGateway, fmt.Sprintf("assess %s: %v", mint, err))
	}

	observability.RecordAssessment(
		string(assessment.RiskScore.Level),
		assessment.RiskScore.CompositeScore,
		time.Since(start).Seconds(),
	)
	observability.MarkAssessmentSuccess(time.Now().Unix())

	s.persist(c, assessment)

	return c.JSON(http.StatusOK, assessment)
}

func (s *Server) persist(c echo.Context, a *domain.Assessment) {
	if s.store == nil {
		return
	}
	payload, err := json.Marshal(a)
	if err != nil {
		s.logger.Error("marshal assessment payload", zap.String("mint", a.Mint), zap.Error(err))
		return
	}
	record := &domain.AssessmentRecord{
		AssessmentID:   idhash.ComputeAssessmentID(a.Mint, a.AssessedAt),
		Mint:           a.Mint,
		Level:          a.RiskScore.Level,
		CompositeScore: a.RiskScore.CompositeScore,
		Payload:        payload,
		AssessedAt:     a.AssessedAt,
	}
	if err := s.store.Insert(c.Request().Context(), record); err != nil {
		s.logger.Warn("persist assessment", zap.String("mint", a.Mint), zap.Error(err))
	}
}

// GetHistory returns past assessments for a mint, newest first.
func (s *Server) GetHistory(c echo.Context) error {
	mint := c.Param("mint")
	if _, err := solana.DecodePubkey(mint); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("invalid mint address: %v", err))
	}

	resp := HistoryResponse{Mint: mint, Entries: []HistoryEntry{}}
	if s.store == nil {
		return c.JSON(http.StatusOK, resp)
	}

	records, err := s.store.GetByMint(c.Request().Context(), mint, queryLimit(c, 20))
	if err != nil {
		return fmt.Errorf("load history: %w", err)
	}
	for _, r := range records {
		resp.Entries = append(resp.Entries, historyEntry(r, true))
	}
	return c.JSON(http.StatusOK, resp)
}

// GetRecent returns the latest assessments across all mints.
func (s *Server) GetRecent(c echo.Context) error {
	entries := []HistoryEntry{}
	if s.store != nil {
		records, err := s.store.GetRecent(c.Request().Context(), queryLimit(c, 50))
		if err != nil {
			return fmt.Errorf("load recent assessments: %w", err)
		}
		for _, r := range records {
			entries = append(entries, historyEntry(r, false))
		}
	}
	return c.JSON(http.StatusOK, map[string]any{"entries": entries})
}

func historyEntry(r *domain.AssessmentRecord, includePayload bool) HistoryEntry {
	e := HistoryEntry{
		AssessmentID:   r.AssessmentID,
		Mint:           r.Mint,
		Level:          r.Level,
		CompositeScore: r.CompositeScore,
		AssessedAt:     r.AssessedAt,
	}
	if includePayload {
		e.Assessment = json.RawMessage(r.Payload)
	}
	return e
}

func queryLimit(c echo.Context, fallback int) int {
	raw := c.QueryParam("limit")
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
