// Package analysis runs the attrition analysis over a loaded employee table.
package analysis

import (
	"context"
	"io"

	"attrition/adapters/stats/senses"
	"attrition/domain/core"
	"attrition/domain/employee"
	"attrition/domain/stats"
	"attrition/internal"
	"attrition/internal/errors"
	"attrition/internal/profiling"
	"attrition/internal/report"
	"attrition/ports"
)

// Factors are the numeric columns compared between attrition groups
var Factors = []core.VariableKey{
	core.VarAge,
	core.VarYearsAtCompany,
	core.VarMonthlyIncome,
}

// Results collects everything a run computed
type Results struct {
	AttritionRates []stats.LabelShare
	UnknownLabels  int
	FactorTests    []stats.TTestResult
	FactorProfiles []profiling.FactorProfile
	Correlation    stats.CorrelationMatrix
	Breakdowns     []stats.Breakdown
}

// Pipeline runs the reporters in a fixed order against one table
type Pipeline struct {
	printer  *report.Printer
	renderer ports.ChartRendererPort
	ttest    *senses.WelchTTest
	logger   *internal.Logger
}

// NewPipeline creates a pipeline printing to out and drawing with renderer
func NewPipeline(out io.Writer, renderer ports.ChartRendererPort, alpha float64, logger *internal.Logger) *Pipeline {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &Pipeline{
		printer:  report.NewPrinter(out),
		renderer: renderer,
		ttest:    senses.NewWelchTTest(alpha),
		logger:   logger,
	}
}

// Run executes every step in order. The only change made to table is the
// Attrition_num column. The first failing step aborts the run.
func (p *Pipeline) Run(ctx context.Context, table *employee.Table) (*Results, error) {
	if table == nil {
		return nil, errors.InvalidInput("no table to analyze")
	}
	results := &Results{}

	p.printer.Banner("ATTRITION ANALYSIS")
	rates, err := p.ReportAttritionRate(ctx, table)
	if err != nil {
		return results, err
	}
	results.AttritionRates = rates

	unknown, err := table.AddAttritionIndicator()
	if err != nil {
		return results, err
	}
	if unknown > 0 {
		p.logger.Warn("%d rows have an Attrition label other than %q or %q; their Attrition_num is NaN",
			unknown, core.AttritionYes, core.AttritionNo)
	}
	results.UnknownLabels = unknown

	p.printer.Banner("KEY FACTOR ANALYSIS")
	for _, factor := range Factors {
		res, err := p.AnalyzeFactor(ctx, table, factor)
		if err != nil {
			return results, err
		}
		p.logger.Debug("t-test %s: t=%.4f p=%.4g df=%.2f", factor, res.TStatistic, res.PValue, res.DF)
		results.FactorTests = append(results.FactorTests, res)

		profile, err := p.ProfileFactor(table, factor)
		if err != nil {
			return results, err
		}
		results.FactorProfiles = append(results.FactorProfiles, profile)
	}

	p.printer.Banner("CORRELATION ANALYSIS")
	matrix, err := p.ReportCorrelation(ctx, table)
	if err != nil {
		return results, err
	}
	results.Correlation = matrix

	p.printer.Banner("ADDITIONAL ANALYSES")
	for _, spec := range Breakdowns {
		b, err := p.ReportBreakdown(ctx, table, spec)
		if err != nil {
			return results, err
		}
		results.Breakdowns = append(results.Breakdowns, b)
	}

	return results, nil
}
