// Package export writes ranked employees as downloadable files.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/okian/sawboard/internal/domain/model"
)

// DefaultFilename is the suggested name of the CSV download.
const DefaultFilename = "ranking_karyawan_saw.csv"

// Header is the first line of every export.
var Header = []string{
	"Employee_Name",
	"Department",
	"EngagementSurvey",
	"EmpSatisfaction",
	"SpecialProjectsCount",
	"Absences",
	"Skor_SAW",
	"Ranking",
}

// WriteCSV writes the header followed by one line per row, in the order given.
func WriteCSV(w io.Writer, rows []model.ScoredEmployee) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	rec := make([]string, len(Header))
	for _, r := range rows {
		rec[0] = r.Name
		rec[1] = r.Department
		rec[2] = formatFloat(r.EngagementSurvey)
		rec[3] = formatFloat(r.EmpSatisfaction)
		rec[4] = formatFloat(r.SpecialProjectsCount)
		rec[5] = formatFloat(r.Absences)
		rec[6] = formatFloat(r.Score)
		rec[7] = formatFloat(r.Rank)
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("write row %d: %w", r.ID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ContentDisposition returns the attachment header value for filename.
func ContentDisposition(filename string) string {
	if filename == "" {
		filename = DefaultFilename
	}
	return fmt.Sprintf("attachment; filename=%q", filename)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
