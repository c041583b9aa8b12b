package scoring_test

import (
	"testing"

	"github.com/okian/sawboard/internal/domain/model"
	"github.com/okian/sawboard/internal/domain/scoring"
	"pgregory.net/rapid"
)

const eps = 1e-9

func employeeGen() *rapid.Generator[model.Employee] {
	return rapid.Custom(func(t *rapid.T) model.Employee {
		return model.Employee{
			Name:                 rapid.StringMatching(`[A-Z][a-z]{2,8}`).Draw(t, "name"),
			Department:           rapid.SampledFrom([]string{"Production", "Sales", "IT/IS"}).Draw(t, "department"),
			EngagementSurvey:     float64(rapid.IntRange(100, 500).Draw(t, "survey")) / 100,
			EmpSatisfaction:      float64(rapid.IntRange(1, 5).Draw(t, "satisfaction")),
			SpecialProjectsCount: float64(rapid.IntRange(0, 8).Draw(t, "projects")),
			Absences:             float64(rapid.IntRange(0, 20).Draw(t, "absences")),
		}
	})
}

func recordsGen() *rapid.Generator[[]model.Employee] {
	return rapid.Custom(func(t *rapid.T) []model.Employee {
		rs := rapid.SliceOfN(employeeGen(), 1, 40).Draw(t, "records")
		for i := range rs {
			rs[i].ID = i + 1
		}
		return rs
	})
}

// weightsGen draws four slider positions (step 0.05) and rescales them to sum to 1.
func weightsGen() *rapid.Generator[scoring.Weights] {
	return rapid.Custom(func(t *rapid.T) scoring.Weights {
		raw := rapid.SliceOfN(rapid.IntRange(0, 20), 4, 4).Draw(t, "steps")
		total := raw[0] + raw[1] + raw[2] + raw[3]
		if total == 0 {
			return scoring.Weights{Survey: 1}
		}
		f := func(v int) float64 { return float64(v) / float64(total) }
		return scoring.Weights{Survey: f(raw[0]), Satisfaction: f(raw[1]), Projects: f(raw[2]), Absences: f(raw[3])}
	})
}

func TestProperty_ScoresInUnitInterval(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		records := recordsGen().Draw(t, "records")
		w := weightsGen().Draw(t, "weights")
		policy := rapid.SampledFrom([]scoring.DegeneratePolicy{scoring.DegenerateZero, scoring.DegenerateOne}).Draw(t, "policy")

		out, err := scoring.NewScorer(scoring.WithDegeneratePolicy(policy)).Score(records, w)
		if err != nil {
			t.Fatalf("score: %v", err)
		}
		if len(out) != len(records) {
			t.Fatalf("got %d rows, want %d", len(out), len(records))
		}
		for i, r := range out {
			if r.Score < -eps || r.Score > 1+eps {
				t.Fatalf("score %v out of [0,1]", r.Score)
			}
			if i > 0 && out[i-1].Score < r.Score {
				t.Fatalf("rows not sorted by descending score at %d", i)
			}
			if i > 0 && out[i-1].Rank > r.Rank {
				t.Fatalf("ranks not ascending at %d", i)
			}
		}
		if out[0].Rank != 1 {
			t.Fatalf("top rank = %v, want 1", out[0].Rank)
		}
	})
}

func TestProperty_Idempotent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		records := recordsGen().Draw(t, "records")
		w := weightsGen().Draw(t, "weights")
		s := scoring.NewScorer()

		a, _ := s.Score(records, w)
		b, _ := s.Score(records, w)
		for i := range a {
			if a[i].ID != b[i].ID || a[i].Score != b[i].Score || a[i].Rank != b[i].Rank {
				t.Fatalf("run differs at %d: %+v vs %+v", i, a[i], b[i])
			}
		}
	})
}

func TestProperty_DuplicatesTie(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		records := recordsGen().Draw(t, "records")
		w := weightsGen().Draw(t, "weights")
		method := rapid.SampledFrom([]scoring.RankMethod{scoring.RankMin, scoring.RankAverage}).Draw(t, "method")

		dup := records[rapid.IntRange(0, len(records)-1).Draw(t, "dup")]
		twin := dup
		twin.ID = len(records) + 1
		twin.Name = dup.Name + " Jr"
		records = append(records, twin)

		out, err := scoring.NewScorer(scoring.WithRankMethod(method)).Score(records, w)
		if err != nil {
			t.Fatalf("score: %v", err)
		}
		var first, second *model.ScoredEmployee
		for i := range out {
			switch out[i].ID {
			case dup.ID:
				first = &out[i]
			case twin.ID:
				second = &out[i]
			}
		}
		if first.Score != second.Score || first.Rank != second.Rank {
			t.Fatalf("twins differ: %+v vs %+v", *first, *second)
		}
	})
}

func TestProperty_MaxAbsenceNormalizesToZero(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		records := recordsGen().Draw(t, "records")
		hi, lo := records[0].Absences, records[0].Absences
		for _, r := range records {
			hi = max(hi, r.Absences)
			lo = min(lo, r.Absences)
		}
		if hi == lo {
			t.Skip("constant absences")
		}
		out, _ := scoring.NewScorer().Score(records, scoring.DefaultWeights())
		for _, r := range out {
			switch r.Absences {
			case hi:
				if r.Normalized[scoring.Absences] != 0 {
					t.Fatalf("max absence normalized to %v", r.Normalized[scoring.Absences])
				}
			case lo:
				if r.Normalized[scoring.Absences] != 1 {
					t.Fatalf("min absence normalized to %v", r.Normalized[scoring.Absences])
				}
			}
		}
	})
}

// A record that beats another in a single criterion, all else equal, never
// loses ground when that criterion's weight goes up and the vector is
// renormalized.
func TestProperty_Monotonic(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		records := recordsGen().Draw(t, "records")
		w := weightsGen().Draw(t, "weights")
		c := rapid.SampledFrom(scoring.AllCriteria).Draw(t, "criterion")
		bump := float64(rapid.IntRange(1, 20).Draw(t, "bump")) / 20

		base := records[0]
		better := base
		better.ID, better.Name = len(records)+1, "Better"
		worse := base
		worse.ID, worse.Name = len(records)+2, "Worse"
		switch c {
		case scoring.EngagementSurvey:
			better.EngagementSurvey += 0.5
		case scoring.EmpSatisfaction:
			better.EmpSatisfaction++
		case scoring.SpecialProjectsCount:
			better.SpecialProjectsCount++
		case scoring.Absences:
			worse.Absences++
		}
		records = append(records, better, worse)

		gap := func(w scoring.Weights) float64 {
			out, err := scoring.NewScorer().Score(records, w)
			if err != nil {
				t.Fatalf("score: %v", err)
			}
			var b, x float64
			for _, r := range out {
				switch r.ID {
				case better.ID:
					b = r.Score
				case worse.ID:
					x = r.Score
				}
			}
			return b - x
		}

		raised := w
		switch c {
		case scoring.EngagementSurvey:
			raised.Survey += bump
		case scoring.EmpSatisfaction:
			raised.Satisfaction += bump
		case scoring.SpecialProjectsCount:
			raised.Projects += bump
		case scoring.Absences:
			raised.Absences += bump
		}
		sum := raised.Sum()
		raised = scoring.Weights{
			Survey:       raised.Survey / sum,
			Satisfaction: raised.Satisfaction / sum,
			Projects:     raised.Projects / sum,
			Absences:     raised.Absences / sum,
		}

		before, after := gap(w), gap(raised)
		if before < -eps {
			t.Fatalf("dominating record behind before the change: %v", before)
		}
		if after < before-eps {
			t.Fatalf("advantage shrank from %v to %v", before, after)
		}
	})
}
