// Package model contains domain models passed between layers.
package model

// CriteriaCount is the number of numeric criteria carried by an Employee.
const CriteriaCount = 4

// Employee is one cleaned row of the HR dataset.
type Employee struct {
	ID                   int     // 1-based source row number; names are not unique
	Name                 string  // employee name as written in the source
	Department           string  // department category
	EngagementSurvey     float64 // engagement survey score
	EmpSatisfaction      float64 // satisfaction score
	SpecialProjectsCount float64 // number of special projects
	Absences             float64 // absence count (lower is better)
}

// Criteria returns the numeric criteria in scoring order:
// engagement, satisfaction, projects, absences.
func (e Employee) Criteria() [CriteriaCount]float64 {
	return [CriteriaCount]float64{e.EngagementSurvey, e.EmpSatisfaction, e.SpecialProjectsCount, e.Absences}
}

// ScoredEmployee is an Employee annotated with its SAW score and rank.
type ScoredEmployee struct {
	Employee

	Score      float64                // weighted sum of normalized criteria
	Rank       float64                // 1 = best; ties share a value
	Normalized [CriteriaCount]float64 // criteria after inversion and min-max scaling
}
