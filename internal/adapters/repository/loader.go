package repository

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/extrame/xls"
	"github.com/xuri/excelize/v2"

	"github.com/okian/sawboard/internal/domain/model"
	"github.com/okian/sawboard/pkg/logger"
	"github.com/okian/sawboard/pkg/metrics"
)

const (
	defaultMaxRows = 100_000
	utf8BOM        = "\ufeff"
)

type loader struct {
	columns Columns
	log     logger.Logger
	maxRows int
}

// Load reads the dataset at path and drops every row with a missing or
// non-numeric value in a required column. The format follows the file
// extension: .xlsx/.xlsm (first sheet), .xls (first sheet) or .csv.
func Load(ctx context.Context, path string, opts ...Option) (*Dataset, error) {
	l := &loader{columns: DefaultColumns(), log: logger.Nop(), maxRows: defaultMaxRows}
	for _, opt := range opts {
		opt(l)
	}

	start := time.Now()
	rows, err := l.readRows(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	records, dropped, err := l.parse(ctx, rows)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	ds := NewDataset(records, dropped, path)

	metrics.RecordDatasetLoad(float64(time.Since(start).Microseconds()) / 1000)
	metrics.UpdateDataset(ds.Count(ctx), len(ds.departments), dropped)
	l.log.Info(ctx, "dataset loaded",
		logger.String("path", path),
		logger.Int("records", ds.Count(ctx)),
		logger.Int("departments", len(ds.departments)),
		logger.Int("dropped", dropped),
	)
	return ds, nil
}

func (l *loader) readRows(path string) ([][]string, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".xlsx", ".xlsm":
		return readXLSX(path)
	case ".xls":
		return readXLS(path, l.maxRows)
	case ".csv":
		return readCSV(path)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

func readXLSX(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, ErrNoSheet
	}
	return f.GetRows(sheet)
}

func readXLS(path string, maxRows int) ([][]string, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = fh.Close() }()

	wb, err := xls.OpenReader(fh, "utf-8")
	if err != nil {
		return nil, err
	}
	if wb.NumSheets() == 0 {
		return nil, ErrNoSheet
	}
	return wb.ReadAllCells(maxRows), nil
}

func readCSV(path string) ([][]string, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = fh.Close() }()

	r := csv.NewReader(fh)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true
	var rows [][]string
	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			return rows, nil
		}
		if err != nil {
			return nil, err
		}
		rows = append(rows, rec)
	}
}

// columnIndex holds the position of every required column in the header.
type columnIndex struct {
	name, department, survey, satisfaction, projects, absences int
}

func (l *loader) locate(header []string) (columnIndex, error) {
	pos := make(map[string]int, len(header))
	for i, h := range header {
		key := normalizeHeader(h)
		if _, dup := pos[key]; !dup {
			pos[key] = i
		}
	}
	find := func(name string) (int, error) {
		i, ok := pos[normalizeHeader(name)]
		if !ok {
			return -1, fmt.Errorf("%w: %q", ErrMissingColumn, name)
		}
		return i, nil
	}

	var idx columnIndex
	var err error
	for _, c := range []struct {
		dst  *int
		name string
	}{
		{&idx.name, l.columns.Name},
		{&idx.department, l.columns.Department},
		{&idx.survey, l.columns.Survey},
		{&idx.satisfaction, l.columns.Satisfaction},
		{&idx.projects, l.columns.Projects},
		{&idx.absences, l.columns.Absences},
	} {
		if *c.dst, err = find(c.name); err != nil {
			return columnIndex{}, err
		}
	}
	return idx, nil
}

func (l *loader) parse(ctx context.Context, rows [][]string) ([]model.Employee, int, error) {
	if len(rows) == 0 {
		return nil, 0, ErrEmptyDataset
	}
	idx, err := l.locate(rows[0])
	if err != nil {
		return nil, 0, err
	}

	records := make([]model.Employee, 0, len(rows)-1)
	dropped := 0
	for i, row := range rows[1:] {
		if isBlank(row) {
			continue
		}
		line := i + 2 // 1-based, header is line 1
		emp, ok := parseRow(row, idx)
		if !ok {
			dropped++
			l.log.Debug(ctx, "dropping incomplete row", logger.Int("line", line))
			continue
		}
		emp.ID = line
		records = append(records, emp)
	}
	if len(records) == 0 {
		return nil, dropped, ErrEmptyDataset
	}
	return records, dropped, nil
}

func parseRow(row []string, idx columnIndex) (model.Employee, bool) {
	emp := model.Employee{
		Name:       cellValue(row, idx.name),
		Department: cellValue(row, idx.department),
	}
	if emp.Name == "" || emp.Department == "" {
		return model.Employee{}, false
	}
	for _, f := range []struct {
		dst *float64
		col int
	}{
		{&emp.EngagementSurvey, idx.survey},
		{&emp.EmpSatisfaction, idx.satisfaction},
		{&emp.SpecialProjectsCount, idx.projects},
		{&emp.Absences, idx.absences},
	} {
		v, ok := parseNumber(cellValue(row, f.col))
		if !ok {
			return model.Employee{}, false
		}
		*f.dst = v
	}
	return emp, true
}

func parseNumber(s string) (float64, bool) {
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

func normalizeHeader(header string) string {
	return strings.ToLower(strings.TrimSpace(strings.TrimPrefix(header, utf8BOM)))
}

func cellValue(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func isBlank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
