package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/okian/sawboard/internal/config"
	"github.com/okian/sawboard/pkg/logger"
	"github.com/smartystreets/goconvey/convey"
)

const testDataset = `Employee_Name,Department,EngagementSurvey,EmpSatisfaction,SpecialProjectsCount,Absences
"Adinolfi, Wilson",Production,4.6,5,0,1
"Ait Sidi, Karthikeyan",IT/IS,4.96,3,6,17
"Akinkuolie, Sarah",Production,3.02,3,0,3
"Bacong, Alexander",IT/IS,5,5,6,16
`

func writeDataset(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "employee_data.csv")
	if err := os.WriteFile(path, []byte(testDataset), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestMainWiring(t *testing.T) {
	convey.Convey("Given configuration pointing at a dataset", t, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		t.Setenv("SAW_DATA_PATH", writeDataset(t))
		t.Setenv("SAW_ADDR", ":0")
		t.Setenv("SAW_EXPORT_FILENAME", "ranking.csv")

		cfg, err := config.Load(ctx)
		convey.So(err, convey.ShouldBeNil)
		convey.So(cfg.Addr, convey.ShouldEqual, ":0")

		convey.Convey("When building the service and routes", func() {
			svc, err := newService(ctx, cfg, logger.Nop())
			convey.So(err, convey.ShouldBeNil)
			defer svc.Stop()
			mux := newMux(ctx, cfg, svc, logger.Nop())

			serve := func(target string) *httptest.ResponseRecorder {
				w := httptest.NewRecorder()
				mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, http.NoBody))
				return w
			}

			convey.Convey("Then the dataset should be loaded", func() {
				stats := svc.GetStats()
				convey.So(stats["records"], convey.ShouldEqual, 4)
				convey.So(stats["started"], convey.ShouldEqual, true)
			})

			convey.Convey("And the root should redirect to the dashboard", func() {
				w := serve("/")
				convey.So(w.Code, convey.ShouldEqual, http.StatusFound)
				convey.So(w.Header().Get("Location"), convey.ShouldEqual, "/dashboard")
			})

			convey.Convey("And every surface should be mounted", func() {
				for _, target := range []string{
					"/dashboard", "/api/ranking", "/api/departments", "/export.csv",
					"/charts/top.svg", "/charts/histogram.svg", "/stats", "/healthz",
					"/openapi.yaml", "/api-docs", "/static/style.css",
				} {
					convey.So(serve(target).Code, convey.ShouldEqual, http.StatusOK)
				}
			})

			convey.Convey("And the export should use the configured filename", func() {
				w := serve("/export.csv?department=IT/IS")
				convey.So(w.Header().Get("Content-Disposition"), convey.ShouldEqual, `attachment; filename="ranking.csv"`)
			})
		})
	})

	convey.Convey("Given a missing dataset", t, func() {
		ctx := context.Background()
		t.Setenv("SAW_DATA_PATH", filepath.Join(t.TempDir(), "missing.xlsx"))
		cfg, err := config.Load(ctx)
		convey.So(err, convey.ShouldBeNil)

		convey.Convey("Then the service should fail to start", func() {
			_, err := newService(ctx, cfg, logger.Nop())
			convey.So(err, convey.ShouldNotBeNil)
		})
	})

	convey.Convey("Given an invalid rank method", t, func() {
		cfg := config.New(context.Background())
		cfg.RankMethod = "dense"

		convey.Convey("Then the service should not be built", func() {
			_, err := newService(context.Background(), cfg, logger.Nop())
			convey.So(err, convey.ShouldNotBeNil)
		})
	})
}

func TestSystemMetricsUpdater(t *testing.T) {
	convey.Convey("Given a short-lived context", t, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		convey.Convey("Then the updater should return once the context ends", func() {
			done := make(chan struct{})
			go func() {
				startSystemMetricsUpdater(ctx, 10*time.Millisecond)
				close(done)
			}()
			select {
			case <-done:
			case <-time.After(2 * time.Second):
				t.Fatal("updater did not stop")
			}
		})

		convey.Convey("And a single update should not panic", func() {
			convey.So(updateSystemMetrics, convey.ShouldNotPanic)
		})
	})
}
