// Package service provides the evaluation service behind the HTTP API:
// it owns the loaded dataset and turns weight/department queries into
// ranked, charted results.
package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/okian/sawboard/internal/adapters/export"
	"github.com/okian/sawboard/internal/adapters/repository"
	"github.com/okian/sawboard/internal/domain/model"
	"github.com/okian/sawboard/internal/domain/scoring"
	"github.com/okian/sawboard/internal/domain/types"
	"github.com/okian/sawboard/pkg/logger"
	"github.com/okian/sawboard/pkg/metrics"
)

// Query selects the weights and the department of one evaluation.
type Query struct {
	Weights    scoring.Weights
	Department string
}

// Result is the outcome of one evaluation. When Scored is false the
// weights did not sum to 1: Warning explains why, Unscored holds the
// filtered records in source order and no chart data is produced.
type Result struct {
	Scored     bool
	Warning    string
	Department string
	Weights    scoring.Weights

	Rows      []model.ScoredEmployee
	Unscored  []model.Employee
	Top       []model.ScoredEmployee
	Histogram []types.HistogramBin

	// Degenerate lists criteria that were constant over the filtered set.
	Degenerate []scoring.Criterion
}

// Len returns the number of rows in the result, scored or not.
func (r Result) Len() int {
	if r.Scored {
		return len(r.Rows)
	}
	return len(r.Unscored)
}

// Ranking converts the result into its API shape.
func (r Result) Ranking() types.Ranking {
	out := types.Ranking{
		Scored:     r.Scored,
		Warning:    r.Warning,
		Department: r.Department,
		Weights: types.Weights{
			Survey:       r.Weights.Survey,
			Satisfaction: r.Weights.Satisfaction,
			Projects:     r.Weights.Projects,
			Absences:     r.Weights.Absences,
			Sum:          r.Weights.Sum(),
		},
		Histogram: r.Histogram,
	}
	if r.Scored {
		out.Entries = make([]types.Entry, len(r.Rows))
		for i, row := range r.Rows {
			out.Entries[i] = types.FromScored(row)
		}
		out.Top = make([]types.Entry, len(r.Top))
		for i, row := range r.Top {
			out.Top[i] = types.FromScored(row)
		}
		return out
	}
	out.Entries = make([]types.Entry, len(r.Unscored))
	for i, e := range r.Unscored {
		out.Entries[i] = types.FromEmployee(e)
	}
	return out
}

// Service implements the API dependencies for the ranking dashboard.
type Service struct {
	mu sync.RWMutex

	// Core components
	store  repository.Store
	scorer *scoring.Scorer

	// Configuration
	dataPath       string
	columns        repository.Columns
	tolerance      float64
	topN           int
	histogramBins  int
	rankMethod     scoring.RankMethod
	policy         scoring.DegeneratePolicy
	defaultWeights scoring.Weights

	// State
	started     bool
	evaluations atomic.Int64
	exports     atomic.Int64

	// Logging
	logger logger.Logger
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		columns:        repository.DefaultColumns(),
		tolerance:      scoring.DefaultTolerance,
		topN:           5,
		histogramBins:  20,
		rankMethod:     scoring.RankMin,
		policy:         scoring.DegenerateZero,
		defaultWeights: scoring.DefaultWeights(),
		logger:         nil, // replaced when the service starts
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start loads the dataset, unless one was injected with WithStore, and
// makes the service ready to evaluate queries.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}
	if s.logger == nil {
		s.logger = logger.Get()
	}
	s.logger.Info(ctx, "starting ranking service...")

	if s.store == nil {
		if s.dataPath == "" {
			return ErrNoDataset
		}
		ds, err := repository.Load(ctx, s.dataPath,
			repository.WithColumns(s.columns),
			repository.WithLogger(s.logger.Named("repository")),
		)
		if err != nil {
			return fmt.Errorf("load dataset: %w", err)
		}
		s.store = ds
	}
	s.scorer = scoring.NewScorer(
		scoring.WithRankMethod(s.rankMethod),
		scoring.WithDegeneratePolicy(s.policy),
	)

	s.started = true
	s.logger.Info(ctx, "ranking service started",
		logger.Int("records", s.store.Count(ctx)),
		logger.Int("departments", len(s.store.Departments(ctx))),
		logger.String("rankMethod", string(s.rankMethod)),
		logger.Float64("tolerance", s.tolerance),
	)
	return nil
}

// Stop marks the service as stopped. The dataset is kept so a restart
// does not reload it.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}
	s.started = false
	s.logger.Info(context.Background(), "ranking service stopped")
}

// DefaultWeights returns the weights used when a query leaves them unset.
func (s *Service) DefaultWeights() scoring.Weights {
	return s.defaultWeights
}

// Departments returns "All" followed by each distinct department.
func (s *Service) Departments(ctx context.Context) ([]string, error) {
	store, _, err := s.ready()
	if err != nil {
		return nil, err
	}
	return append([]string{repository.AllDepartments}, store.Departments(ctx)...), nil
}

// Evaluate filters the dataset and scores it. A weight sum outside the
// tolerance is not an error: the result comes back unscored with a warning.
func (s *Service) Evaluate(ctx context.Context, q Query) (Result, error) {
	start := time.Now()
	res, err := s.evaluate(ctx, q)
	latency := float64(time.Since(start).Microseconds()) / 1000

	switch {
	case err != nil:
		metrics.RecordEvaluation(metrics.OutcomeError, 0, latency)
	case res.Scored:
		metrics.RecordEvaluation(metrics.OutcomeScored, len(res.Rows), latency)
		for _, c := range res.Degenerate {
			metrics.RecordDegenerateColumn(c.String())
		}
	default:
		metrics.RecordEvaluation(metrics.OutcomeUnscored, len(res.Unscored), latency)
	}
	if err == nil {
		s.evaluations.Add(1)
	}
	return res, err
}

func (s *Service) evaluate(ctx context.Context, q Query) (Result, error) {
	store, scorer, err := s.ready()
	if err != nil {
		return Result{}, err
	}
	if q.Department == "" {
		q.Department = repository.AllDepartments
	}
	res := Result{Department: q.Department, Weights: q.Weights}

	records, err := store.Filter(ctx, q.Department)
	if err != nil {
		return Result{}, err
	}

	if err := q.Weights.Validate(s.tolerance); err != nil {
		if !errors.Is(err, scoring.ErrWeightSum) {
			return Result{}, fmt.Errorf("%w: %w", ErrInvalidWeights, err)
		}
		res.Warning = err.Error()
		res.Unscored = records
		s.logger.Debug(ctx, "evaluation left unscored",
			logger.String("department", q.Department),
			logger.Float64("weightSum", q.Weights.Sum()),
		)
		return res, nil
	}

	rows, err := scorer.Score(records, q.Weights)
	if err != nil {
		return Result{}, fmt.Errorf("score %q: %w", q.Department, err)
	}
	res.Scored = true
	res.Rows = rows
	res.Top = rows[:min(s.topN, len(rows))]
	res.Degenerate = degenerateCriteria(rows)

	scores := make([]float64, len(rows))
	for i, r := range rows {
		scores[i] = r.Score
	}
	res.Histogram = histogram(scores, s.histogramBins)

	s.logger.Debug(ctx, "evaluation scored",
		logger.String("department", q.Department),
		logger.Int("records", len(rows)),
		logger.Float64("bestScore", rows[0].Score),
		logger.Int("degenerate", len(res.Degenerate)),
	)
	return res, nil
}

// Export writes the full ranked set of q as CSV. It refuses to export an
// unscored result.
func (s *Service) Export(ctx context.Context, q Query, w io.Writer) error {
	res, err := s.Evaluate(ctx, q)
	if err != nil {
		return err
	}
	if !res.Scored {
		return fmt.Errorf("%w: %s", ErrNotScored, res.Warning)
	}
	if err := export.WriteCSV(w, res.Rows); err != nil {
		return fmt.Errorf("export %q: %w", res.Department, err)
	}
	s.exports.Add(1)
	metrics.RecordExport()
	s.logger.Info(ctx, "ranking exported",
		logger.String("department", res.Department),
		logger.Int("rows", len(res.Rows)),
	)
	return nil
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ctx := context.Background()
	stats := map[string]interface{}{
		"started":       s.started,
		"evaluations":   s.evaluations.Load(),
		"exports":       s.exports.Load(),
		"topN":          s.topN,
		"histogramBins": s.histogramBins,
		"rankMethod":    string(s.rankMethod),
		"tolerance":     s.tolerance,
	}
	if s.store != nil {
		stats["records"] = s.store.Count(ctx)
		stats["departments"] = len(s.store.Departments(ctx))
		if ds, ok := s.store.(*repository.Dataset); ok {
			stats["dropped"] = ds.Dropped()
			stats["source"] = ds.Source()
		}
	}
	return stats
}

func (s *Service) ready() (repository.Store, *scoring.Scorer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.started {
		return nil, nil, ErrNotStarted
	}
	return s.store, s.scorer, nil
}

// degenerateCriteria reports the criteria whose normalized values are all
// equal, which only happens when the raw column was constant.
func degenerateCriteria(rows []model.ScoredEmployee) []scoring.Criterion {
	var out []scoring.Criterion
	for j, c := range scoring.AllCriteria {
		constant := true
		for _, r := range rows[1:] {
			if r.Normalized[j] != rows[0].Normalized[j] {
				constant = false
				break
			}
		}
		if constant {
			out = append(out, c)
		}
	}
	return out
}
