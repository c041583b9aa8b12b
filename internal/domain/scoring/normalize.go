package scoring

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/okian/sawboard/internal/domain/model"
)

// DegeneratePolicy decides the normalized value of a criterion that is
// constant across the scored set (max == min).
type DegeneratePolicy string

// Supported policies.
const (
	// DegenerateZero maps a constant column to 0, so it adds nothing to any score.
	DegenerateZero DegeneratePolicy = "zero"
	// DegenerateOne maps a constant column to 1, so every record gets the full weight.
	DegenerateOne DegeneratePolicy = "one"
)

// ParseDegeneratePolicy parses a configured policy name.
func ParseDegeneratePolicy(s string) (DegeneratePolicy, error) {
	switch p := DegeneratePolicy(strings.ToLower(strings.TrimSpace(s))); p {
	case "", DegenerateZero:
		return DegenerateZero, nil
	case DegenerateOne:
		return DegenerateOne, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
	}
}

func (p DegeneratePolicy) value() float64 {
	if p == DegenerateOne {
		return 1
	}
	return 0
}

// decisionMatrix builds the n×4 matrix of raw criteria, one row per record.
func decisionMatrix(records []model.Employee) *mat.Dense {
	data := make([]float64, 0, len(records)*model.CriteriaCount)
	for _, r := range records {
		c := r.Criteria()
		data = append(data, c[:]...)
	}
	return mat.NewDense(len(records), model.CriteriaCount, data)
}

// invertCostColumns turns every cost criterion into a benefit one by
// replacing each value with max(column) - value.
func invertCostColumns(x *mat.Dense) {
	rows, _ := x.Dims()
	col := make([]float64, rows)
	for _, c := range AllCriteria {
		if c.Kind() != Cost {
			continue
		}
		mat.Col(col, int(c), x)
		hi := floats.Max(col)
		for i := range rows {
			x.Set(i, int(c), hi-col[i])
		}
	}
}

// minMaxColumns rescales each column to [0,1] in place and returns the
// criteria whose column was constant.
func minMaxColumns(x *mat.Dense, policy DegeneratePolicy) []Criterion {
	rows, _ := x.Dims()
	col := make([]float64, rows)
	var degenerate []Criterion
	for _, c := range AllCriteria {
		j := int(c)
		mat.Col(col, j, x)
		lo, hi := floats.Min(col), floats.Max(col)
		span := hi - lo
		if span == 0 {
			degenerate = append(degenerate, c)
			for i := range rows {
				x.Set(i, j, policy.value())
			}
			continue
		}
		for i := range rows {
			x.Set(i, j, (col[i]-lo)/span)
		}
	}
	return degenerate
}
