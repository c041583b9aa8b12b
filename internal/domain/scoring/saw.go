package scoring

import (
	"cmp"
	"slices"

	"gonum.org/v1/gonum/mat"

	"github.com/okian/sawboard/internal/domain/model"
)

// Option applies a configuration option to the Scorer.
type Option func(*Scorer)

// WithRankMethod sets how tied scores are ranked.
func WithRankMethod(m RankMethod) Option {
	return func(s *Scorer) {
		if m == RankMin || m == RankAverage {
			s.rankMethod = m
		}
	}
}

// WithDegeneratePolicy sets the value used for constant columns.
func WithDegeneratePolicy(p DegeneratePolicy) Option {
	return func(s *Scorer) {
		if p == DegenerateZero || p == DegenerateOne {
			s.policy = p
		}
	}
}

// Scorer ranks employees with Simple Additive Weighting. It holds no state
// between calls and is safe for concurrent use.
type Scorer struct {
	rankMethod RankMethod
	policy     DegeneratePolicy
}

// NewScorer creates a Scorer. Defaults: competition ranking, constant
// columns normalized to 0.
func NewScorer(opts ...Option) *Scorer {
	s := &Scorer{
		rankMethod: RankMin,
		policy:     DegenerateZero,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Normalize returns the decision matrix after cost inversion and min-max
// scaling over records, plus the criteria that were constant.
func (s *Scorer) Normalize(records []model.Employee) (*mat.Dense, []Criterion, error) {
	if len(records) == 0 {
		return nil, nil, ErrEmptyInput
	}
	x := decisionMatrix(records)
	invertCostColumns(x)
	degenerate := minMaxColumns(x, s.policy)
	return x, degenerate, nil
}

// Score computes the SAW score of every record and returns them ranked,
// highest score first. Ties keep their input order and share a rank.
//
// Weights are used as given; checking that they sum to 1 is the caller's job.
// The normalization basis is exactly the records passed in.
func (s *Scorer) Score(records []model.Employee, w Weights) ([]model.ScoredEmployee, error) {
	x, _, err := s.Normalize(records)
	if err != nil {
		return nil, err
	}

	var scores mat.VecDense
	scores.MulVec(x, w.Vector())
	raw := make([]float64, len(records))
	for i := range raw {
		raw[i] = scores.AtVec(i)
	}
	ranks := rankDescending(raw, s.rankMethod)

	out := make([]model.ScoredEmployee, len(records))
	for i, r := range records {
		out[i] = model.ScoredEmployee{Employee: r, Score: raw[i], Rank: ranks[i]}
		mat.Row(out[i].Normalized[:], i, x)
	}
	slices.SortStableFunc(out, func(a, b model.ScoredEmployee) int {
		return cmp.Compare(b.Score, a.Score)
	})
	return out, nil
}
