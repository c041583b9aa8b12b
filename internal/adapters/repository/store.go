// Package repository loads the employee dataset and serves read-only views of it.
package repository

import (
	"context"
	"fmt"
	"slices"

	"github.com/okian/sawboard/internal/domain/model"
)

// AllDepartments is the filter value that selects every record.
const AllDepartments = "All"

// Store provides read access to the loaded dataset.
type Store interface {
	// Filter returns the records of a department, or every record for AllDepartments.
	// Returns ErrUnknownDepartment for a department not present in the data.
	Filter(ctx context.Context, department string) ([]model.Employee, error)

	// Departments returns the distinct departments in first-seen order.
	Departments(ctx context.Context) []string

	// Count returns the number of records kept after cleaning.
	Count(ctx context.Context) int
}

// Dataset is the cleaned, immutable employee table. It is built once at
// start-up and shared by pointer; every accessor returns copies.
type Dataset struct {
	records     []model.Employee
	departments []string
	byDept      map[string][]int
	dropped     int
	source      string
}

// NewDataset builds a Dataset over records. dropped is the number of rows
// removed during cleaning and source names where the rows came from.
func NewDataset(records []model.Employee, dropped int, source string) *Dataset {
	d := &Dataset{
		records: slices.Clone(records),
		byDept:  make(map[string][]int),
		dropped: dropped,
		source:  source,
	}
	for i, r := range d.records {
		if _, ok := d.byDept[r.Department]; !ok {
			d.departments = append(d.departments, r.Department)
		}
		d.byDept[r.Department] = append(d.byDept[r.Department], i)
	}
	return d
}

// Filter implements Store.
func (d *Dataset) Filter(_ context.Context, department string) ([]model.Employee, error) {
	if department == "" || department == AllDepartments {
		return slices.Clone(d.records), nil
	}
	idx, ok := d.byDept[department]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDepartment, department)
	}
	out := make([]model.Employee, len(idx))
	for i, j := range idx {
		out[i] = d.records[j]
	}
	return out, nil
}

// Departments implements Store.
func (d *Dataset) Departments(_ context.Context) []string {
	return slices.Clone(d.departments)
}

// Count implements Store.
func (d *Dataset) Count(_ context.Context) int {
	return len(d.records)
}

// Dropped returns the number of rows removed at load time.
func (d *Dataset) Dropped() int { return d.dropped }

// Source returns the path the dataset was read from.
func (d *Dataset) Source() string { return d.source }
