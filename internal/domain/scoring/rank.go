package scoring

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// RankMethod selects how tied scores are ranked.
type RankMethod string

// Supported rank methods.
const (
	// RankMin is competition ranking: 1, 2, 2, 4.
	RankMin RankMethod = "min"
	// RankAverage gives ties the mean of their positions: 1, 2.5, 2.5, 4.
	RankAverage RankMethod = "average"
)

// ParseRankMethod parses a configured rank method name.
func ParseRankMethod(s string) (RankMethod, error) {
	switch m := RankMethod(strings.ToLower(strings.TrimSpace(s))); m {
	case "", RankMin:
		return RankMin, nil
	case RankAverage:
		return RankAverage, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownRankMethod, s)
	}
}

// rankDescending returns, for each score, its 1-based rank in descending
// order. Equal scores always receive equal ranks.
func rankDescending(scores []float64, method RankMethod) []float64 {
	order := make([]int, len(scores))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		return cmp.Compare(scores[b], scores[a])
	})

	ranks := make([]float64, len(scores))
	for start := 0; start < len(order); {
		end := start + 1
		for end < len(order) && scores[order[end]] == scores[order[start]] {
			end++
		}
		// positions start..end-1 are tied; 1-based ranks start+1..end.
		r := float64(start + 1)
		if method == RankAverage {
			r = float64(start+1+end) / 2
		}
		for _, idx := range order[start:end] {
			ranks[idx] = r
		}
		start = end
	}
	return ranks
}
