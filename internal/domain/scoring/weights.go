package scoring

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// DefaultTolerance is the allowed distance of the weight sum from 1.
const DefaultTolerance = 0.01

// Weights holds one weight per criterion. They are expected to sum to 1;
// nothing rescales them when they don't.
type Weights struct {
	Survey       float64 `json:"survey"`
	Satisfaction float64 `json:"satisfaction"`
	Projects     float64 `json:"projects"`
	Absences     float64 `json:"absences"`
}

// DefaultWeights returns the slider defaults: 0.3 / 0.2 / 0.2 / 0.3.
func DefaultWeights() Weights {
	return Weights{Survey: 0.3, Satisfaction: 0.2, Projects: 0.2, Absences: 0.3}
}

// Sum returns the total of all weights.
func (w Weights) Sum() float64 {
	return w.Survey + w.Satisfaction + w.Projects + w.Absences
}

// At returns the weight of criterion c.
func (w Weights) At(c Criterion) float64 {
	switch c {
	case EngagementSurvey:
		return w.Survey
	case EmpSatisfaction:
		return w.Satisfaction
	case SpecialProjectsCount:
		return w.Projects
	case Absences:
		return w.Absences
	}
	return 0
}

// Vector returns the weights in decision-matrix column order.
func (w Weights) Vector() *mat.VecDense {
	return mat.NewVecDense(len(AllCriteria), []float64{w.Survey, w.Satisfaction, w.Projects, w.Absences})
}

// Validate checks every weight is in [0,1] and the sum is within tolerance of 1.
// A sum violation wraps ErrWeightSum; callers treat it as an unscored state.
func (w Weights) Validate(tolerance float64) error {
	for _, c := range AllCriteria {
		v := w.At(c)
		switch {
		case v < 0 || math.IsNaN(v):
			return fmt.Errorf("%w: %s=%g", ErrNegativeWeight, c, v)
		case v > 1:
			return fmt.Errorf("%w: %s=%g", ErrWeightRange, c, v)
		}
	}
	if sum := w.Sum(); math.Abs(sum-1.0) > tolerance {
		return fmt.Errorf("%w, currently %.2f", ErrWeightSum, sum)
	}
	return nil
}
