package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/okian/sawboard/internal/adapters/http/api"
	"github.com/okian/sawboard/internal/adapters/http/site"
	"github.com/okian/sawboard/internal/adapters/http/swagger"
	"github.com/okian/sawboard/internal/adapters/repository"
	app "github.com/okian/sawboard/internal/app"
	"github.com/okian/sawboard/internal/config"
	"github.com/okian/sawboard/internal/domain/scoring"
	"github.com/okian/sawboard/pkg/logger"
	"github.com/okian/sawboard/pkg/metrics"
)

// HTTP server timeout constants.
const (
	readTimeout       = 10 * time.Second
	writeTimeout      = 30 * time.Second
	idleTimeout       = 60 * time.Second
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 30 * time.Second
)

func main() {
	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration (defaults -> optional file -> env)
	cfg, err := config.Load(ctx)
	if err != nil {
		// Use stderr for initialization errors since logger isn't available yet
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		os.Exit(1)
	}

	if err := logger.InitWith(os.Stdout, cfg.LogFormat); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()
	loggerInstance := logger.Get()

	// Apply configured log level (fallback to info on invalid input)
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		loggerInstance.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	svc, err := newService(ctx, cfg, loggerInstance)
	if err != nil {
		loggerInstance.Error(ctx, "failed to start service", logger.Error(err), logger.String("data_path", cfg.DataPath))
		os.Exit(1)
	}
	defer svc.Stop()

	// Start system metrics updater
	go startSystemMetricsUpdater(ctx, metrics.RefreshInterval())

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           newMux(ctx, cfg, svc, loggerInstance),
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	go func() {
		loggerInstance.Info(ctx, "starting HTTP server", logger.String("addr", cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			loggerInstance.Error(ctx, "HTTP server failed", logger.Error(err))
			stop()
		}
	}()

	// Wait for shutdown signal
	<-ctx.Done()
	loggerInstance.Info(ctx, "shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		loggerInstance.Error(ctx, "server shutdown failed", logger.Error(err))
	}
	loggerInstance.Info(ctx, "server stopped")
}

// newService builds the evaluation service from cfg and loads the dataset.
func newService(ctx context.Context, cfg *config.Config, log logger.Logger) (*app.Service, error) {
	rankMethod, err := scoring.ParseRankMethod(cfg.RankMethod)
	if err != nil {
		return nil, err
	}
	policy, err := scoring.ParseDegeneratePolicy(cfg.DegeneratePolicy)
	if err != nil {
		return nil, err
	}
	svc := app.New(
		app.WithLogger(log.Named("service")),
		app.WithDataPath(cfg.DataPath),
		app.WithColumns(repository.Columns{
			Name:         cfg.ColumnName,
			Department:   cfg.ColumnDepartment,
			Survey:       cfg.ColumnSurvey,
			Satisfaction: cfg.ColumnSatisfaction,
			Projects:     cfg.ColumnProjects,
			Absences:     cfg.ColumnAbsences,
		}),
		app.WithWeightTolerance(cfg.WeightTolerance),
		app.WithDefaultWeights(cfg.DefaultWeights()),
		app.WithTopN(cfg.TopN),
		app.WithHistogramBins(cfg.HistogramBins),
		app.WithRankMethod(rankMethod),
		app.WithDegeneratePolicy(policy),
	)
	if err := svc.Start(ctx); err != nil {
		return nil, err
	}
	return svc, nil
}

// newMux registers every route of the process.
func newMux(ctx context.Context, cfg *config.Config, svc *app.Service, log logger.Logger) *http.ServeMux {
	mux := http.NewServeMux()
	swagger.Register(ctx, mux)
	site.Register(ctx, mux)
	api.NewServer(svc, svc,
		api.WithLogger(log.Named("http")),
		api.WithExportFilename(cfg.ExportFilename),
	).Register(ctx, mux)
	return mux
}

// startSystemMetricsUpdater refreshes process metrics until ctx is done.
func startSystemMetricsUpdater(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	updateSystemMetrics()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			updateSystemMetrics()
		}
	}
}

// updateSystemMetrics updates system-level metrics.
func updateSystemMetrics() {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	metrics.UpdateSystemMemoryUsage(m.Alloc)
	metrics.UpdateSystemGoroutineCount(runtime.NumGoroutine())
}
