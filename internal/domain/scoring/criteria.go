// Package scoring implements Simple Additive Weighting (SAW) over employee records.
package scoring

// Criterion identifies one numeric column of the decision matrix.
type Criterion int

// Criteria in decision-matrix column order.
const (
	EngagementSurvey Criterion = iota
	EmpSatisfaction
	SpecialProjectsCount
	Absences
)

// Kind tells whether a higher raw value is better (Benefit) or worse (Cost).
type Kind int

// Criterion kinds.
const (
	Benefit Kind = iota
	Cost
)

// AllCriteria lists every criterion in column order.
var AllCriteria = []Criterion{EngagementSurvey, EmpSatisfaction, SpecialProjectsCount, Absences}

var criterionNames = [...]string{
	EngagementSurvey:     "EngagementSurvey",
	EmpSatisfaction:      "EmpSatisfaction",
	SpecialProjectsCount: "SpecialProjectsCount",
	Absences:             "Absences",
}

// String returns the dataset column name of the criterion.
func (c Criterion) String() string {
	if c < 0 || int(c) >= len(criterionNames) {
		return "unknown"
	}
	return criterionNames[c]
}

// Kind reports whether the criterion is a benefit or a cost.
func (c Criterion) Kind() Kind {
	if c == Absences {
		return Cost
	}
	return Benefit
}
