package repository

import "github.com/okian/sawboard/pkg/logger"

// Columns names the header of each required column.
type Columns struct {
	Name         string
	Department   string
	Survey       string
	Satisfaction string
	Projects     string
	Absences     string
}

// DefaultColumns returns the headers of the HR dataset export.
func DefaultColumns() Columns {
	return Columns{
		Name:         "Employee_Name",
		Department:   "Department",
		Survey:       "EngagementSurvey",
		Satisfaction: "EmpSatisfaction",
		Projects:     "SpecialProjectsCount",
		Absences:     "Absences",
	}
}

// Option applies a configuration option to the loader.
type Option func(*loader)

// WithColumns overrides the required column headers. Empty names keep the default.
func WithColumns(c Columns) Option {
	return func(l *loader) {
		set := func(dst *string, v string) {
			if v != "" {
				*dst = v
			}
		}
		set(&l.columns.Name, c.Name)
		set(&l.columns.Department, c.Department)
		set(&l.columns.Survey, c.Survey)
		set(&l.columns.Satisfaction, c.Satisfaction)
		set(&l.columns.Projects, c.Projects)
		set(&l.columns.Absences, c.Absences)
	}
}

// WithLogger sets the logger used to report dropped rows.
func WithLogger(log logger.Logger) Option {
	return func(l *loader) {
		if log != nil {
			l.log = log
		}
	}
}

// WithMaxRows bounds the number of rows read from legacy .xls workbooks.
func WithMaxRows(n int) Option {
	return func(l *loader) {
		if n > 0 {
			l.maxRows = n
		}
	}
}
