package analysis

import (
	"context"
	"fmt"

	"attrition/adapters/stats/senses"
	"attrition/domain/chart"
	"attrition/domain/core"
	"attrition/domain/employee"
	"attrition/domain/stats"
	"attrition/internal/errors"
	"attrition/internal/profiling"
	"attrition/internal/report"
)

// ReportAttritionRate prints the attrition split and draws it as a bar chart
func (p *Pipeline) ReportAttritionRate(ctx context.Context, table *employee.Table) ([]stats.LabelShare, error) {
	shares, err := AttritionRates(table)
	if err != nil {
		return nil, errors.Wrap(err, "attrition rate")
	}

	rows := make([][]string, len(shares))
	bars := make([]chart.BarValue, len(shares))
	for i, s := range shares {
		rows[i] = []string{s.Label, report.Float(s.Percent, 6)}
		bars[i] = chart.BarValue{Label: s.Label, Value: s.Percent, Color: chart.LabelColor(s.Label)}
	}

	p.printer.Println("\nAttrition Rate:")
	p.printer.Table([]string{core.VarAttrition.String(), "Percentage (%)"}, rows)
	p.printer.Println()

	err = p.renderer.Render(ctx, chart.Bar{
		Heading: "Employee Attrition Rate",
		XLabel:  "Attrition Status",
		YLabel:  "Percentage (%)",
		Bars:    bars,
	})
	return shares, err
}

// AnalyzeFactor draws the factor per attrition group and runs a Welch t-test
// between the "No" and "Yes" groups.
func (p *Pipeline) AnalyzeFactor(ctx context.Context, table *employee.Table, factor core.VariableKey) (stats.TTestResult, error) {
	p.printer.Printf("\nAnalyzing %s...\n", factor)

	no, yes, err := table.SplitByAttrition(factor)
	if err != nil {
		return stats.TTestResult{}, errors.Wrapf(err, "factor %s", factor)
	}

	err = p.renderer.Render(ctx, chart.Box{
		Heading: fmt.Sprintf("%s Distribution by Attrition Status", factor),
		XLabel:  "Attrition Status",
		YLabel:  factor.String(),
		Groups: []chart.BoxGroup{
			{Label: core.AttritionNo, Values: no, Color: chart.ColorNo},
			{Label: core.AttritionYes, Values: yes, Color: chart.ColorYes},
		},
	})
	if err != nil {
		return stats.TTestResult{}, err
	}

	result := p.ttest.Analyze(ctx, factor, no, yes)
	if result.Degenerate() {
		p.logger.Warn("t-test for %s is undefined (n_no=%d, n_yes=%d)", factor, result.Group1Size, result.Group2Size)
	}

	p.printer.Printf("T-test results for %s:\n", factor)
	p.printer.Printf("  - t-statistic: %s\n", report.Float(result.TStatistic, 2))
	p.printer.Printf("  - p-value: %s\n", report.Float(result.PValue, 4))
	if result.Significant {
		p.printer.Printf("  - The difference is statistically significant (p < %g)\n", result.Alpha)
		p.printer.Printf("  - Mean difference: %s\n", report.Float(result.MeanDifference(), 2))
		p.printer.Printf("  - Effect size (Cohen's d): %s\n", report.Float(result.EffectSize, 2))
	} else {
		p.printer.Println("  - The difference is not statistically significant")
	}
	p.printer.Println()

	return result, nil
}

// CorrelationVariables are the columns of the correlation matrix
var CorrelationVariables = []core.VariableKey{
	core.VarAge,
	core.VarYearsAtCompany,
	core.VarMonthlyIncome,
	core.VarAttritionNum,
}

// ReportCorrelation draws the Pearson matrix as a heatmap and prints the
// correlations with Attrition_num, strongest positive first. The table must
// already carry Attrition_num.
func (p *Pipeline) ReportCorrelation(ctx context.Context, table *employee.Table) (stats.CorrelationMatrix, error) {
	p.printer.Println("\nPlotting correlation matrix...")

	columns, err := table.Columns(CorrelationVariables...)
	if err != nil {
		return stats.CorrelationMatrix{}, errors.Wrap(err, "correlation")
	}
	matrix, err := senses.PearsonMatrix(CorrelationVariables, columns)
	if err != nil {
		return stats.CorrelationMatrix{}, errors.Wrap(err, "correlation")
	}

	labels := make([]string, len(matrix.Variables))
	for i, v := range matrix.Variables {
		labels[i] = v.String()
	}
	err = p.renderer.Render(ctx, chart.Heatmap{
		Heading: "Correlation Matrix of Key Variables",
		Labels:  labels,
		Values:  matrix.Values,
		Min:     -1,
		Max:     1,
	})
	if err != nil {
		return matrix, err
	}

	column, err := senses.CorrelationsWith(matrix, core.VarAttritionNum)
	if err != nil {
		return matrix, err
	}
	rows := make([][]string, len(column))
	for i, c := range column {
		rows[i] = []string{c.Variable.String(), report.Float(c.Correlation, 6)}
	}
	p.printer.Println("\nCorrelation with Attrition:")
	p.printer.Table([]string{"Variable", core.VarAttritionNum.String()}, rows)

	return matrix, nil
}

// BreakdownSpec parameterizes one categorical breakdown
type BreakdownSpec struct {
	Variable    core.VariableKey
	Subject     string // used in "Analyzing attrition by <subject>..."
	Heading     string
	XLabel      string
	RateHeading string // empty: no rate table is printed
}

// Breakdowns are the categorical columns reported after the correlation step
var Breakdowns = []BreakdownSpec{
	{
		Variable:    core.VarDepartment,
		Subject:     "department",
		Heading:     "Attrition by Department",
		XLabel:      "Department",
		RateHeading: "Department-wise Attrition Rates (%):",
	},
	{
		Variable:    core.VarJobSatisfaction,
		Subject:     "job satisfaction",
		Heading:     "Attrition by Job Satisfaction Level",
		XLabel:      "Job Satisfaction Level (1-4)",
		RateHeading: "Job Satisfaction Attrition Rates (%):",
	},
	{
		Variable: core.VarYearsSinceLastPromotion,
		Subject:  "years since last promotion",
		Heading:  "Attrition by Years Since Last Promotion",
		XLabel:   "Years Since Last Promotion",
	},
}

// ReportBreakdown draws a count plot of spec.Variable split by attrition and,
// when spec.RateHeading is set, prints the per-category attrition rates.
func (p *Pipeline) ReportBreakdown(ctx context.Context, table *employee.Table, spec BreakdownSpec) (stats.Breakdown, error) {
	p.printer.Printf("\nAnalyzing attrition by %s...\n", spec.Subject)

	breakdown, err := ComputeBreakdown(table, spec.Variable)
	if err != nil {
		return stats.Breakdown{}, errors.Wrapf(err, "breakdown by %s", spec.Variable)
	}

	categories := make([]string, len(breakdown.Rows))
	for i, row := range breakdown.Rows {
		categories[i] = row.Category
		p.logger.Trace("%s=%s: total=%d counts=%v", spec.Variable, row.Category, row.Total, row.Counts)
	}
	var series []chart.CountSeries
	for _, label := range []string{core.AttritionNo, core.AttritionYes} {
		counts := make([]float64, len(breakdown.Rows))
		for i, row := range breakdown.Rows {
			counts[i] = float64(row.Counts[label])
		}
		series = append(series, chart.CountSeries{Label: label, Counts: counts, Color: chart.LabelColor(label)})
	}

	err = p.renderer.Render(ctx, chart.Count{
		Heading:     spec.Heading,
		XLabel:      spec.XLabel,
		YLabel:      "Number of Employees",
		LegendTitle: "Attrition Status",
		Categories:  categories,
		Series:      series,
	})
	if err != nil {
		return breakdown, err
	}

	if spec.RateHeading == "" {
		return breakdown, nil
	}

	header := append([]string{spec.Variable.String()}, breakdown.Labels...)
	rows := make([][]string, len(breakdown.Rows))
	for i, row := range breakdown.Rows {
		cells := []string{row.Category}
		for _, l := range breakdown.Labels {
			cells = append(cells, report.Float(row.Percent[l], 6))
		}
		rows[i] = cells
	}
	p.printer.Printf("\n%s\n", spec.RateHeading)
	p.printer.Table(header, rows)

	return breakdown, nil
}

// ProfileFactor summarizes factor within each attrition group. The summaries
// go to the debug log; stdout is left to the t-test report.
func (p *Pipeline) ProfileFactor(table *employee.Table, factor core.VariableKey) (profiling.FactorProfile, error) {
	no, yes, err := table.SplitByAttrition(factor)
	if err != nil {
		return profiling.FactorProfile{}, errors.Wrapf(err, "factor %s", factor)
	}

	profile := profiling.FactorProfile{Variable: factor}
	for _, g := range []struct {
		label  string
		values []float64
	}{{core.AttritionNo, no}, {core.AttritionYes, yes}} {
		s, err := profiling.Summarize(g.label, g.values)
		if err != nil {
			return profile, errors.Wrapf(err, "summarize %s for %s", factor, g.label)
		}
		p.logger.WithField("factor", factor.String()).Debug("%s: n=%d mean=%.2f sd=%.2f median=%.2f skew=%.2f",
			s.Label, s.Count, s.Mean, s.StdDev, s.Median, s.Skewness)
		profile.Groups = append(profile.Groups, s)
	}
	return profile, nil
}
