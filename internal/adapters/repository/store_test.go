package repository_test

import (
	"context"
	"errors"
	"testing"

	"github.com/okian/sawboard/internal/adapters/repository"
	"github.com/okian/sawboard/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestDataset(t *testing.T) {
	Convey("Given a dataset over three departments", t, func() {
		ctx := context.Background()
		records := []model.Employee{
			{ID: 2, Name: "A", Department: "Production"},
			{ID: 3, Name: "B", Department: "Sales"},
			{ID: 4, Name: "C", Department: "Production"},
			{ID: 5, Name: "D", Department: "IT/IS"},
		}
		ds := repository.NewDataset(records, 0, "memory")

		Convey("When filtering by All", func() {
			all, err := ds.Filter(ctx, repository.AllDepartments)

			Convey("Then every record should be returned in source order", func() {
				So(err, ShouldBeNil)
				So(all, ShouldResemble, records)
			})
		})

		Convey("When filtering with an empty department", func() {
			all, err := ds.Filter(ctx, "")

			Convey("Then it should behave like All", func() {
				So(err, ShouldBeNil)
				So(all, ShouldHaveLength, 4)
			})
		})

		Convey("When filtering by a department", func() {
			prod, err := ds.Filter(ctx, "Production")

			Convey("Then only its records should be returned", func() {
				So(err, ShouldBeNil)
				So(prod, ShouldHaveLength, 2)
				So(prod[0].Name, ShouldEqual, "A")
				So(prod[1].Name, ShouldEqual, "C")
			})
		})

		Convey("When filtering by an unknown department", func() {
			_, err := ds.Filter(ctx, "Marketing")

			Convey("Then ErrUnknownDepartment should be returned", func() {
				So(errors.Is(err, repository.ErrUnknownDepartment), ShouldBeTrue)
			})
		})

		Convey("When callers modify returned slices", func() {
			all, _ := ds.Filter(ctx, repository.AllDepartments)
			all[0].Name = "changed"
			depts := ds.Departments(ctx)
			depts[0] = "changed"

			Convey("Then the dataset should be unaffected", func() {
				again, _ := ds.Filter(ctx, repository.AllDepartments)
				So(again[0].Name, ShouldEqual, "A")
				So(ds.Departments(ctx), ShouldResemble, []string{"Production", "Sales", "IT/IS"})
			})
		})

		Convey("When the source slice is modified after construction", func() {
			records[0].Name = "mutated"

			Convey("Then the dataset should keep its own copy", func() {
				all, _ := ds.Filter(ctx, repository.AllDepartments)
				So(all[0].Name, ShouldEqual, "A")
				So(ds.Count(ctx), ShouldEqual, 4)
			})
		})
	})
}
