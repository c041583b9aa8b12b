// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Flat koanf keys so every field maps to one SAW_ environment variable.
// - New(ctx) returns the defaults; Load(ctx) layers file and env on top.
// - Validation errors wrap ErrInvalidConfig, read errors wrap ErrLoadConfig.
package config

import (
	"context"
	"fmt"

	"github.com/okian/sawboard/internal/domain/scoring"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogFormat selects the log handler: text or json.
	LogFormat string `koanf:"log_format"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// DataPath points at the employee spreadsheet (.xlsx, .xls or .csv).
	DataPath string `koanf:"data_path"`

	// WeightTolerance is the allowed distance of the weight sum from 1.
	WeightTolerance float64 `koanf:"weight_tolerance"`

	// Default slider positions.
	WeightSurvey       float64 `koanf:"weight_survey"`
	WeightSatisfaction float64 `koanf:"weight_satisfaction"`
	WeightProjects     float64 `koanf:"weight_projects"`
	WeightAbsences     float64 `koanf:"weight_absences"`

	// TopN is the number of employees in the bar chart.
	TopN int `koanf:"top_n"`

	// HistogramBins is the number of bins of the score distribution chart.
	HistogramBins int `koanf:"histogram_bins"`

	// RankMethod is "min" (competition ranking) or "average".
	RankMethod string `koanf:"rank_method"`

	// DegeneratePolicy is the normalized value of a constant criterion: "zero" or "one".
	DegeneratePolicy string `koanf:"degenerate_policy"`

	// ExportFilename is the suggested name of the CSV download.
	ExportFilename string `koanf:"export_filename"`

	// Header names of the required dataset columns.
	ColumnName         string `koanf:"column_name"`
	ColumnDepartment   string `koanf:"column_department"`
	ColumnSurvey       string `koanf:"column_survey"`
	ColumnSatisfaction string `koanf:"column_satisfaction"`
	ColumnProjects     string `koanf:"column_projects"`
	ColumnAbsences     string `koanf:"column_absences"`
}

// New creates a Config holding the defaults. Context is accepted first to
// follow the project-wide convention and is currently unused.
func New(_ context.Context) *Config {
	w := scoring.DefaultWeights()
	return &Config{
		LogLevel:           "info",
		LogFormat:          "text",
		Addr:               ":9080",
		DataPath:           "employee_data.xlsx",
		WeightTolerance:    scoring.DefaultTolerance,
		WeightSurvey:       w.Survey,
		WeightSatisfaction: w.Satisfaction,
		WeightProjects:     w.Projects,
		WeightAbsences:     w.Absences,
		TopN:               5,
		HistogramBins:      20,
		RankMethod:         string(scoring.RankMin),
		DegeneratePolicy:   string(scoring.DegenerateZero),
		ExportFilename:     "ranking_karyawan_saw.csv",
		ColumnName:         "Employee_Name",
		ColumnDepartment:   "Department",
		ColumnSurvey:       "EngagementSurvey",
		ColumnSatisfaction: "EmpSatisfaction",
		ColumnProjects:     "SpecialProjectsCount",
		ColumnAbsences:     "Absences",
	}
}

// DefaultWeights returns the configured slider defaults.
func (c *Config) DefaultWeights() scoring.Weights {
	return scoring.Weights{
		Survey:       c.WeightSurvey,
		Satisfaction: c.WeightSatisfaction,
		Projects:     c.WeightProjects,
		Absences:     c.WeightAbsences,
	}
}

// Validate checks the configuration for values the service cannot run with.
func (c *Config) Validate() error {
	switch {
	case c.Addr == "":
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	case c.DataPath == "":
		return fmt.Errorf("%w: data_path must not be empty", ErrInvalidConfig)
	case c.WeightTolerance < 0:
		return fmt.Errorf("%w: weight_tolerance must not be negative", ErrInvalidConfig)
	case c.TopN < 1:
		return fmt.Errorf("%w: top_n must be positive", ErrInvalidConfig)
	case c.HistogramBins < 1:
		return fmt.Errorf("%w: histogram_bins must be positive", ErrInvalidConfig)
	}
	if err := c.DefaultWeights().Validate(c.WeightTolerance); err != nil {
		return fmt.Errorf("%w: default weights: %w", ErrInvalidConfig, err)
	}
	if _, err := scoring.ParseRankMethod(c.RankMethod); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if _, err := scoring.ParseDegeneratePolicy(c.DegeneratePolicy); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}
