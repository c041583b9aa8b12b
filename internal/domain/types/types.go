// Package types contains the read shapes served by the HTTP API.
package types

import "github.com/okian/sawboard/internal/domain/model"

// Entry represents one row of the ranked table. Score and Rank are nil when
// the weights were invalid and the set was returned unscored.
type Entry struct {
	ID                   int      `json:"id"`
	Name                 string   `json:"name"`
	Department           string   `json:"department"`
	EngagementSurvey     float64  `json:"engagement_survey"`
	EmpSatisfaction      float64  `json:"emp_satisfaction"`
	SpecialProjectsCount float64  `json:"special_projects_count"`
	Absences             float64  `json:"absences"`
	Score                *float64 `json:"score,omitempty"`
	Rank                 *float64 `json:"rank,omitempty"`
}

// HistogramBin is one bar of the score distribution: [Lower, Upper).
type HistogramBin struct {
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
	Count int     `json:"count"`
}

// Weights mirrors the weight vector in API payloads.
type Weights struct {
	Survey       float64 `json:"survey"`
	Satisfaction float64 `json:"satisfaction"`
	Projects     float64 `json:"projects"`
	Absences     float64 `json:"absences"`
	Sum          float64 `json:"sum"`
}

// Ranking is the full response of GET /api/ranking.
type Ranking struct {
	Scored     bool           `json:"scored"`
	Warning    string         `json:"warning,omitempty"`
	Department string         `json:"department"`
	Weights    Weights        `json:"weights"`
	Entries    []Entry        `json:"entries"`
	Top        []Entry        `json:"top,omitempty"`
	Histogram  []HistogramBin `json:"histogram,omitempty"`
}

// FromEmployee builds an unscored entry.
func FromEmployee(e model.Employee) Entry {
	return Entry{
		ID:                   e.ID,
		Name:                 e.Name,
		Department:           e.Department,
		EngagementSurvey:     e.EngagementSurvey,
		EmpSatisfaction:      e.EmpSatisfaction,
		SpecialProjectsCount: e.SpecialProjectsCount,
		Absences:             e.Absences,
	}
}

// FromScored builds a scored entry.
func FromScored(s model.ScoredEmployee) Entry {
	e := FromEmployee(s.Employee)
	score, rank := s.Score, s.Rank
	e.Score = &score
	e.Rank = &rank
	return e
}
