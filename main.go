package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"path/filepath"

	"attrition/adapters/charts"
	"attrition/adapters/excel"
	"attrition/app"
	"attrition/domain/core"
	"attrition/internal"
	"attrition/internal/config"
	"attrition/ports"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	loadDotEnv(internal.DefaultLogger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadDotEnv loads environment overrides from files (default ".env").
// A missing file is expected; any other failure is logged and ignored.
func loadDotEnv(logger *internal.Logger, files ...string) {
	err := godotenv.Load(files...)
	switch {
	case err == nil:
	case errors.Is(err, fs.ErrNotExist):
		logger.Debug("No .env file found, using system environment variables")
	default:
		logger.Debug("failed to load .env: %v", err)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "attrition",
		Short: "Descriptive statistics, t-tests and charts characterizing employee attrition",
		Long: `Load an employee dataset and report the attrition rate, Welch t-tests for
Age, YearsAtCompany and MonthlyIncome, a correlation matrix, and attrition
broken down by department, job satisfaction and years since last promotion.

Every flag can also be set through the environment (DATA_FILE, CHARTS_DIR,
NO_CHARTS, ALPHA, LOG_LEVEL) or a .env file.

Example: attrition --file greendestination.csv --charts-dir charts`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cmd.Flags())
			if err != nil {
				return err
			}
			return run(cmd.Context(), cfg)
		},
	}

	config.RegisterFlags(cmd.Flags())
	return cmd
}

func run(ctx context.Context, cfg *config.Config) error {
	runID := core.NewRunID()
	logger := internal.NewLogger(internal.ParseLogLevel(cfg.LogLevel)).WithField("run_id", runID.String())

	var renderer ports.ChartRendererPort = charts.NopRenderer{}
	var plots *charts.PlotRenderer
	if cfg.Charts.Enabled {
		plots = charts.NewPlotRenderer(filepath.Join(cfg.Charts.Dir, runID.String()), logger)
		renderer = plots
	}

	svc := app.NewAnalysisService(cfg, excel.NewDataReader(logger), renderer, os.Stdout, logger, ".")
	result, err := svc.Run(ctx, runID)
	if plots != nil && len(plots.Files()) > 0 {
		logger.Info("%d charts written to %s", len(plots.Files()), filepath.Join(cfg.Charts.Dir, runID.String()))
	}
	if err != nil {
		logger.Error("analysis failed: %v", err)
		return err
	}
	if result.Results == nil {
		logger.Debug("no analysis performed")
	}
	return nil
}
