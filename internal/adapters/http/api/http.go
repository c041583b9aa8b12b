// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/okian/sawboard/internal/adapters/export"
	service "github.com/okian/sawboard/internal/app"
	"github.com/okian/sawboard/internal/domain/scoring"
	"github.com/okian/sawboard/pkg/logger"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to the service implementation.
type Dependencies interface {
	// Departments lists the filter values, "All" first.
	Departments(ctx context.Context) ([]string, error)

	// Evaluate scores the filtered dataset, or returns it unscored when the
	// weights do not sum to 1.
	Evaluate(ctx context.Context, q service.Query) (service.Result, error)

	// Export writes the ranked set of q as CSV.
	Export(ctx context.Context, q service.Query, w io.Writer) error

	// DefaultWeights fills weights missing from a request.
	DefaultWeights() scoring.Weights
}

// Server wires HTTP routes for the business API.
type Server struct {
	logger         logger.Logger
	exportFilename string

	healthHandler    *HealthHandler
	statsHandler     *StatsHandler
	rankingHandler   *RankingHandler
	exportHandler    *ExportHandler
	chartHandler     *ChartHandler
	dashboardHandler *dashboardHandler
}

// ServerOption applies a configuration option to the Server.
type ServerOption func(*Server)

// WithLogger sets the request logger.
func WithLogger(log logger.Logger) ServerOption {
	return func(s *Server) {
		if log != nil {
			s.logger = log
		}
	}
}

// WithExportFilename sets the suggested name of the CSV download.
func WithExportFilename(name string) ServerOption {
	return func(s *Server) {
		if name != "" {
			s.exportFilename = name
		}
	}
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider, opts ...ServerOption) *Server {
	s := &Server{
		logger:         logger.Nop(),
		exportFilename: export.DefaultFilename,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.healthHandler = NewHealthHandler()
	s.statsHandler = NewStatsHandler(statsProvider)
	s.rankingHandler = NewRankingHandler(deps)
	s.exportHandler = NewExportHandler(deps, s.exportFilename)
	s.chartHandler = NewChartHandler(deps)
	s.dashboardHandler = newDashboardHandler(deps)
	return s
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	if mux == nil {
		panic("mux is nil")
	}
	mux.HandleFunc("/healthz", s.wrap(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", s.wrap(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/dashboard", s.wrap(s.dashboardHandler.HandleDashboard, "dashboard"))
	mux.HandleFunc("/api/departments", s.wrap(s.rankingHandler.HandleDepartments, "departments"))
	mux.HandleFunc("/api/ranking", s.wrap(s.rankingHandler.HandleRanking, "ranking"))
	mux.HandleFunc("/export.csv", s.wrap(s.exportHandler.HandleExport, "export"))
	mux.HandleFunc("/charts/top.svg", s.wrap(s.chartHandler.HandleTop, "chart_top"))
	mux.HandleFunc("/charts/histogram.svg", s.wrap(s.chartHandler.HandleHistogram, "chart_histogram"))
}

func (s *Server) wrap(next http.HandlerFunc, endpoint string) http.HandlerFunc {
	return RequestIDMiddleware(LoggingMiddleware(MetricsMiddleware(next, endpoint), s.logger))
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// writeFailure picks the status from err and writes the error envelope.
func writeFailure(w http.ResponseWriter, err error) {
	status, code := statusFor(err)
	writeError(w, status, code, err)
}
