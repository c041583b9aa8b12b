package sampledata

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// SheetName is the worksheet written to .xlsx files.
const SheetName = "HRDataset"

// ErrUnsupportedFormat is returned for output paths that are neither .xlsx nor .csv.
var ErrUnsupportedFormat = errors.New("unsupported output format")

// Header is the first row of every generated file.
var Header = []string{
	"Employee_Name", "EmpID", "Department",
	"EngagementSurvey", "EmpSatisfaction", "SpecialProjectsCount", "Absences",
}

// Write stores records at path; the extension picks the format.
func Write(path string, records []Record) error {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".xlsx":
		return WriteXLSX(path, records)
	case ".csv":
		return WriteCSVFile(path, records)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// WriteXLSX writes records to a new workbook with a bold header row.
func WriteXLSX(path string, records []Record) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	header := make([]any, len(Header))
	for i, h := range Header {
		header[i] = h
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("header style: %w", err)
	}
	last, _ := excelize.CoordinatesToCellName(len(Header), 1)
	if err := f.SetCellStyle(SheetName, "A1", last, bold); err != nil {
		return fmt.Errorf("header style: %w", err)
	}

	for i, rec := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := xlsxRow(rec)
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return fmt.Errorf("write row %d: %w", i+2, err)
		}
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

// WriteCSVFile writes records as comma separated values.
func WriteCSVFile(path string, records []Record) (err error) {
	fh, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := fh.Close(); err == nil {
			err = cerr
		}
	}()

	w := csv.NewWriter(fh)
	if err := w.Write(Header); err != nil {
		return err
	}
	for _, rec := range records {
		if err := w.Write(csvRow(rec)); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func xlsxRow(rec Record) []any {
	e := rec.Employee
	row := []any{e.Name, rec.EmpID, e.Department}
	for j, v := range e.Criteria() {
		if j == rec.Missing {
			row = append(row, nil)
			continue
		}
		row = append(row, v)
	}
	return row
}

func csvRow(rec Record) []string {
	e := rec.Employee
	row := []string{e.Name, strconv.Itoa(rec.EmpID), e.Department}
	for j, v := range e.Criteria() {
		if j == rec.Missing {
			row = append(row, "")
			continue
		}
		row = append(row, strconv.FormatFloat(v, 'f', -1, 64))
	}
	return row
}
