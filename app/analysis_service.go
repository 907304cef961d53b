package app

import (
	"context"
	"io"
	"time"

	"attrition/domain/core"
	"attrition/internal"
	"attrition/internal/analysis"
	"attrition/internal/config"
	"attrition/internal/report"
	"attrition/ports"
)

// AnalysisService wires the loader and the analysis pipeline for one run
type AnalysisService struct {
	cfg      *config.Config
	reader   ports.TableReaderPort
	renderer ports.ChartRendererPort
	out      io.Writer
	logger   *internal.Logger
	workDir  string
}

// RunResult contains the output of a run. Results is nil when the input
// could not be found or loaded.
type RunResult struct {
	RunID     core.RunID
	Results   *analysis.Results
	RuntimeMs int64
}

// NewAnalysisService creates an analysis service. workDir is listed when the
// input file is missing.
func NewAnalysisService(cfg *config.Config, reader ports.TableReaderPort, renderer ports.ChartRendererPort, out io.Writer, logger *internal.Logger, workDir string) *AnalysisService {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &AnalysisService{
		cfg:      cfg,
		reader:   reader,
		renderer: renderer,
		out:      out,
		logger:   logger,
		workDir:  workDir,
	}
}

// Run checks the input, loads it and runs the analysis. A missing or
// unreadable input is reported on the output and is not an error. An empty
// runID is replaced by a fresh one.
func (s *AnalysisService) Run(ctx context.Context, runID core.RunID) (*RunResult, error) {
	start := time.Now()
	if runID.IsEmpty() {
		runID = core.NewRunID()
	}
	result := &RunResult{RunID: runID}
	printer := report.NewPrinter(s.out)

	if !analysis.CheckInput(printer, s.cfg.Data.File, s.workDir) {
		s.logger.Warn("input %s not found, nothing to analyze", s.cfg.Data.File)
		return result, nil
	}

	table := analysis.LoadData(ctx, printer, s.reader, s.cfg.Data.File)
	if table == nil {
		return result, nil
	}

	pipeline := analysis.NewPipeline(s.out, s.renderer, s.cfg.Analysis.Alpha, s.logger)
	results, err := pipeline.Run(ctx, table)
	result.Results = results
	result.RuntimeMs = time.Since(start).Milliseconds()
	if err != nil {
		return result, err
	}

	s.logger.Info("analysis finished in %dms", result.RuntimeMs)
	return result, nil
}
