// Command gen-dataset writes a synthetic HR spreadsheet the dashboard can load.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/okian/sawboard/internal/sampledata"
	"github.com/okian/sawboard/pkg/logger"
)

const (
	defaultRows = 311
	defaultSeed = 1
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		out     string
		rows    int
		seed    uint64
		missing float64
		verbose bool
	)
	cmd := &cobra.Command{
		Use:   "gen-dataset",
		Short: "Generate a synthetic employee dataset",
		Long: "gen-dataset writes an HR spreadsheet with the columns the ranking dashboard reads.\n" +
			"The output format follows the extension of --out (.xlsx or .csv).",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if rows < 1 {
				return fmt.Errorf("--rows must be positive, got %d", rows)
			}
			if missing < 0 || missing > 1 {
				return fmt.Errorf("--missing must be in [0,1], got %g", missing)
			}
			if err := logger.Init(); err != nil {
				return err
			}
			if verbose {
				_ = logger.SetLevelString("debug")
			}
			return run(cmd.Context(), out, sampledata.Options{Rows: rows, Seed: seed, MissingRate: missing})
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "employee_data.xlsx", "output file (.xlsx or .csv)")
	cmd.Flags().IntVarP(&rows, "rows", "n", defaultRows, "number of employees")
	cmd.Flags().Uint64Var(&seed, "seed", defaultSeed, "random seed for the numeric columns")
	cmd.Flags().Float64Var(&missing, "missing", 0, "share of rows with one blank criterion cell")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	return cmd
}

func run(ctx context.Context, out string, opts sampledata.Options) error {
	log := logger.Named("gen-dataset")
	records := sampledata.Generate(opts)
	if err := sampledata.Write(out, records); err != nil {
		return err
	}
	blanks := 0
	for _, r := range records {
		if r.Missing >= 0 {
			blanks++
		}
	}
	log.Info(ctx, "dataset written",
		logger.String("path", out),
		logger.Int("rows", len(records)),
		logger.Int("incomplete", blanks),
	)
	return nil
}
