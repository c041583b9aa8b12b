package service

import (
	"github.com/okian/sawboard/internal/adapters/repository"
	"github.com/okian/sawboard/internal/domain/scoring"
	"github.com/okian/sawboard/pkg/logger"
)

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(log logger.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.logger = log
		}
	}
}

// WithStore injects an already loaded dataset; Start then skips loading.
func WithStore(store repository.Store) Option {
	return func(s *Service) {
		s.store = store
	}
}

// WithDataPath sets the spreadsheet loaded by Start.
func WithDataPath(path string) Option {
	return func(s *Service) {
		s.dataPath = path
	}
}

// WithColumns overrides the dataset header names.
func WithColumns(c repository.Columns) Option {
	return func(s *Service) {
		s.columns = c
	}
}

// WithWeightTolerance sets the allowed distance of the weight sum from 1.
func WithWeightTolerance(tol float64) Option {
	return func(s *Service) {
		if tol >= 0 {
			s.tolerance = tol
		}
	}
}

// WithTopN sets the number of employees in the top chart.
func WithTopN(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.topN = n
		}
	}
}

// WithHistogramBins sets the number of bins of the score distribution.
func WithHistogramBins(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.histogramBins = n
		}
	}
}

// WithRankMethod sets how tied scores are ranked.
func WithRankMethod(m scoring.RankMethod) Option {
	return func(s *Service) {
		s.rankMethod = m
	}
}

// WithDegeneratePolicy sets the normalized value of constant criteria.
func WithDegeneratePolicy(p scoring.DegeneratePolicy) Option {
	return func(s *Service) {
		s.policy = p
	}
}

// WithDefaultWeights sets the weights offered before the user moves a slider.
func WithDefaultWeights(w scoring.Weights) Option {
	return func(s *Service) {
		s.defaultWeights = w
	}
}
