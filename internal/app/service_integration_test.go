package service_test

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	service "github.com/okian/sawboard/internal/app"
	"github.com/okian/sawboard/internal/domain/scoring"
	"github.com/okian/sawboard/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

const integrationCSV = `Employee_Name,EmpID,Department,EngagementSurvey,EmpSatisfaction,SpecialProjectsCount,Absences
"Adinolfi, Wilson",10026,Production,4.6,5,0,1
"Ait Sidi, Karthikeyan",10084,IT/IS,4.96,3,6,17
"Akinkuolie, Sarah",10196,Production,3.02,3,0,3
"Alagbe,Trina",10088,Production,4.84,5,0,15
"Anderson, Carol",10069,Production,5,4,0,2
"Anderson, Linda",10002,Production,5,5,0,15
"Andreola, Colby",10194,Software Engineering,3.04,3,4,19
"Athwal, Sam",10062,Production,5,4,0,19
"Bachiochi, Linda",10114,Production,4.46,3,0,4
"Bacong, Alexander",10250,IT/IS,5,5,6,16
"Baczenski, Rachael",10252,Production,,4,0,12
`

func TestServiceIntegration(t *testing.T) {
	Convey("Given a service reading a dataset from disk", t, func() {
		path := filepath.Join(t.TempDir(), "employee_data.csv")
		So(os.WriteFile(path, []byte(integrationCSV), 0o600), ShouldBeNil)

		svc := service.New(
			service.WithDataPath(path),
			service.WithLogger(logger.Nop()),
		)
		defer svc.Stop()

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		Convey("When starting the service", func() {
			err := svc.Start(ctx)

			Convey("Then the dataset should be loaded and cleaned", func() {
				So(err, ShouldBeNil)
				stats := svc.GetStats()
				So(stats["records"], ShouldEqual, 10)
				So(stats["dropped"], ShouldEqual, 1)
				So(stats["departments"], ShouldEqual, 3)
			})
		})

		Convey("When evaluating concurrently", func() {
			So(svc.Start(ctx), ShouldBeNil)

			depts, err := svc.Departments(ctx)
			So(err, ShouldBeNil)

			var wg sync.WaitGroup
			results := make([]service.Result, 40)
			errs := make([]error, len(results))
			for i := range results {
				wg.Add(1)
				go func(i int) {
					defer wg.Done()
					results[i], errs[i] = svc.Evaluate(ctx, service.Query{
						Weights:    scoring.DefaultWeights(),
						Department: depts[i%len(depts)],
					})
				}(i)
			}
			wg.Wait()

			Convey("Then every evaluation should succeed with bounded scores", func() {
				for i, res := range results {
					So(errs[i], ShouldBeNil)
					So(res.Scored, ShouldBeTrue)
					for _, row := range res.Rows {
						So(row.Score, ShouldBeBetweenOrEqual, 0.0, 1.0)
					}
				}
			})

			Convey("And identical queries should produce identical results", func() {
				So(results[0].Rows, ShouldResemble, results[len(depts)].Rows)
			})
		})

		Convey("When the dataset path does not exist", func() {
			missing := service.New(
				service.WithDataPath(filepath.Join(t.TempDir(), "missing.xlsx")),
				service.WithLogger(logger.Nop()),
			)

			Convey("Then Start should fail", func() {
				So(missing.Start(ctx), ShouldNotBeNil)
			})
		})
	})
}
