// Package server exposes the risk engine over HTTP.
package server

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"solana-token-guard/internal/domain"
	"solana-token-guard/internal/observability"
	"solana-token-guard/internal/storage"
)

// Assessor is the engine capability the server depends on.
type Assessor interface {
	Assess(ctx context.Context, mint string) (*domain.Assessment, error)
}

// Server wires the HTTP surface: assessment, history, status, metrics.
type Server struct {
	*echo.Echo
	engine Assessor
	store  storage.AssessmentStore
	logger *zap.Logger
}

// New creates a Server. The store is optional; without it the history
// endpoints report empty results and assessments are not persisted.
func New(eng Assessor, store storage.AssessmentStore, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	s := &Server{e, eng, store, logger}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.GET("/status", s.GetStatus)
	s.GET("/v1/assess/:mint", s.GetAssessment)
	s.GET("/v1/history/:mint", s.GetHistory)
	s.GET("/v1/assessments/recent", s.GetRecent)
	s.GET("/metrics", echo.WrapHandler(observability.Handler()))
}
