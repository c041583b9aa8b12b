package service

import (
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/okian/sawboard/internal/domain/types"
)

// histogram counts scores into n equal-width bins over [min, max]. The
// maximum falls in the last bin. A constant set yields a single bin.
func histogram(scores []float64, n int) []types.HistogramBin {
	if len(scores) == 0 || n < 1 {
		return nil
	}
	x := slices.Clone(scores)
	slices.Sort(x)
	lo, hi := x[0], x[len(x)-1]

	if lo == hi {
		return []types.HistogramBin{{Lower: lo, Upper: hi, Count: len(x)}}
	}

	dividers := make([]float64, n+1)
	floats.Span(dividers, lo, hi)
	// stat.Histogram bins are half-open; nudge the last edge so hi is counted.
	dividers[n] = math.Nextafter(hi, math.Inf(1))
	counts := stat.Histogram(nil, dividers, x, nil)

	bins := make([]types.HistogramBin, n)
	for i := range bins {
		bins[i] = types.HistogramBin{
			Lower: dividers[i],
			Upper: dividers[i+1],
			Count: int(counts[i]),
		}
	}
	bins[n-1].Upper = hi
	return bins
}
