package sampledata_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/okian/sawboard/internal/adapters/repository"
	"github.com/okian/sawboard/internal/sampledata"
	. "github.com/smartystreets/goconvey/convey"
)

func complete(records []sampledata.Record) int {
	n := 0
	for _, r := range records {
		if r.Missing < 0 {
			n++
		}
	}
	return n
}

func TestGenerate(t *testing.T) {
	Convey("Given generation options", t, func() {
		opts := sampledata.Options{Rows: 200, Seed: 42, MissingRate: 0.1}

		Convey("When generating records", func() {
			records := sampledata.Generate(opts)

			Convey("Then every value should be in the HR ranges", func() {
				So(records, ShouldHaveLength, 200)
				for _, r := range records {
					e := r.Employee
					So(e.Name, ShouldNotBeEmpty)
					So(sampledata.Departments(), ShouldContain, e.Department)
					So(e.EngagementSurvey, ShouldBeBetweenOrEqual, 1.12, 5.0)
					So(e.EmpSatisfaction, ShouldBeBetweenOrEqual, 1.0, 5.0)
					So(e.SpecialProjectsCount, ShouldBeBetweenOrEqual, 0.0, 8.0)
					So(e.Absences, ShouldBeBetweenOrEqual, 1.0, 20.0)
					So(r.Missing, ShouldBeBetweenOrEqual, -1, 3)
				}
			})

			Convey("And the same seed should reproduce the numbers", func() {
				again := sampledata.Generate(opts)
				for i := range records {
					So(again[i].Employee.Criteria(), ShouldResemble, records[i].Employee.Criteria())
					So(again[i].Employee.Department, ShouldEqual, records[i].Employee.Department)
					So(again[i].Missing, ShouldEqual, records[i].Missing)
				}
			})
		})

		Convey("When no rows are requested", func() {
			So(sampledata.Generate(sampledata.Options{Rows: 0}), ShouldBeEmpty)
		})
	})
}

func TestWrite(t *testing.T) {
	Convey("Given generated records with blanks", t, func() {
		ctx := context.Background()
		records := sampledata.Generate(sampledata.Options{Rows: 60, Seed: 7, MissingRate: 0.25})
		want := complete(records)

		for _, name := range []string{"employee_data.xlsx", "employee_data.csv"} {
			path := filepath.Join(t.TempDir(), name)

			Convey("When writing and loading "+name, func() {
				So(sampledata.Write(path, records), ShouldBeNil)
				ds, err := repository.Load(ctx, path)
				So(err, ShouldBeNil)

				Convey("Then only complete rows should survive the load", func() {
					So(ds.Count(ctx), ShouldEqual, want)
					So(ds.Dropped(), ShouldEqual, len(records)-want)
				})

				Convey("And loaded rows should match what was generated", func() {
					all, _ := ds.Filter(ctx, repository.AllDepartments)
					byID := make(map[int]sampledata.Record, len(records))
					for _, r := range records {
						byID[r.Employee.ID] = r
					}
					for _, e := range all {
						src := byID[e.ID]
						So(e.Name, ShouldEqual, src.Employee.Name)
						So(e.Criteria(), ShouldResemble, src.Employee.Criteria())
					}
				})
			})
		}

		Convey("When writing an unsupported format", func() {
			err := sampledata.Write(filepath.Join(t.TempDir(), "data.ods"), records)
			So(errors.Is(err, sampledata.ErrUnsupportedFormat), ShouldBeTrue)
		})
	})
}
