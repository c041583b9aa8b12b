// Package sampledata generates synthetic HR spreadsheets shaped like the
// dataset the dashboard ranks.
package sampledata

import (
	"math"
	"math/rand/v2"

	"github.com/bxcodec/faker/v4"

	"github.com/okian/sawboard/internal/domain/model"
)

// Value ranges of the HR export.
const (
	surveyMin      = 1.12
	surveyMax      = 5.0
	satisfactionLo = 1
	satisfactionHi = 5
	absencesLo     = 1
	absencesHi     = 20
	maxProjects    = 8
	firstEmpID     = 10001
	seedMix        = 0x9e3779b97f4a7c15
)

// department is one entry of the weighted department draw. Projects is
// the chance an employee of the department worked on special projects.
type department struct {
	Name     string
	Share    float64
	Projects float64
}

var departments = []department{
	{Name: "Production", Share: 0.67, Projects: 0.02},
	{Name: "IT/IS", Share: 0.16, Projects: 0.9},
	{Name: "Sales", Share: 0.1, Projects: 0.05},
	{Name: "Software Engineering", Share: 0.035, Projects: 0.9},
	{Name: "Admin Offices", Share: 0.03, Projects: 0.6},
	{Name: "Executive Office", Share: 0.005, Projects: 0.0},
}

// Departments returns the department names the generator draws from.
func Departments() []string {
	out := make([]string, len(departments))
	for i, d := range departments {
		out[i] = d.Name
	}
	return out
}

// Record is one generated row. Missing is the criterion column left blank,
// or -1 when the row is complete.
type Record struct {
	EmpID    int
	Employee model.Employee
	Missing  int
}

// Options controls generation.
type Options struct {
	// Rows is the number of employees to generate.
	Rows int
	// Seed makes every numeric value and department reproducible. Names
	// come from faker and are not seeded.
	Seed uint64
	// MissingRate is the chance a row has one blank criterion cell.
	MissingRate float64
}

// Generate builds opts.Rows records.
func Generate(opts Options) []Record {
	rng := rand.New(rand.NewPCG(opts.Seed, opts.Seed^seedMix))
	out := make([]Record, 0, max(opts.Rows, 0))
	for i := range max(opts.Rows, 0) {
		dept := pickDepartment(rng)
		emp := model.Employee{
			ID:                   i + 2, // header is row 1
			Name:                 faker.LastName() + ", " + faker.FirstName(),
			Department:           dept.Name,
			EngagementSurvey:     round2(surveyMin + rng.Float64()*(surveyMax-surveyMin)),
			EmpSatisfaction:      float64(satisfactionLo + rng.IntN(satisfactionHi-satisfactionLo+1)),
			SpecialProjectsCount: 0,
			Absences:             float64(absencesLo + rng.IntN(absencesHi-absencesLo+1)),
		}
		if rng.Float64() < dept.Projects {
			emp.SpecialProjectsCount = float64(1 + rng.IntN(maxProjects))
		}
		rec := Record{EmpID: firstEmpID + i, Employee: emp, Missing: -1}
		if rng.Float64() < opts.MissingRate {
			rec.Missing = rng.IntN(model.CriteriaCount)
		}
		out = append(out, rec)
	}
	return out
}

func pickDepartment(rng *rand.Rand) department {
	x := rng.Float64()
	for _, d := range departments {
		if x < d.Share {
			return d
		}
		x -= d.Share
	}
	return departments[0]
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
