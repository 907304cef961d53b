package stats

import (
	"math"

	"attrition/domain/core"
)

// LabelShare is one label of a categorical column with its count and percentage
type LabelShare struct {
	Label   string  `json:"label"`
	Count   int     `json:"count"`
	Percent float64 `json:"percent"`
}

// TTestResult is the outcome of a Welch two-sample t-test between the
// "No" (group 1) and "Yes" (group 2) attrition groups.
type TTestResult struct {
	Variable    core.VariableKey `json:"variable"`
	TStatistic  float64          `json:"t_statistic"`
	PValue      float64          `json:"p_value"`
	DF          float64          `json:"df"`
	EffectSize  float64          `json:"effect_size"` // Cohen's d, pooled SD
	Group1Size  int              `json:"group1_size"`
	Group2Size  int              `json:"group2_size"`
	Group1Mean  float64          `json:"group1_mean"`
	Group2Mean  float64          `json:"group2_mean"`
	Alpha       float64          `json:"alpha"`
	Significant bool             `json:"significant"`
}

// MeanDifference is mean(group 1) - mean(group 2)
func (r TTestResult) MeanDifference() float64 {
	return r.Group1Mean - r.Group2Mean
}

// Degenerate reports whether the test could not be computed
func (r TTestResult) Degenerate() bool {
	return math.IsNaN(r.TStatistic) || math.IsNaN(r.PValue)
}

// CorrelationMatrix is a symmetric Pearson correlation matrix. Each cell is
// computed over the rows where both variables are present; Counts holds how
// many rows that was.
type CorrelationMatrix struct {
	Variables []core.VariableKey `json:"variables"`
	Values    [][]float64        `json:"values"`
	Counts    [][]int            `json:"counts"`
}

// Index returns the position of v or -1
func (m CorrelationMatrix) Index(v core.VariableKey) int {
	for i, name := range m.Variables {
		if name == v {
			return i
		}
	}
	return -1
}

// VariableCorrelation is one entry of a correlation matrix column
type VariableCorrelation struct {
	Variable    core.VariableKey `json:"variable"`
	Correlation float64          `json:"correlation"`
}

// BreakdownRow holds the attrition split for one category
type BreakdownRow struct {
	Category string             `json:"category"`
	Total    int                `json:"total"`
	Counts   map[string]int     `json:"counts"`
	Percent  map[string]float64 `json:"percent"`
}

// Breakdown is the per-category attrition split of a categorical column
type Breakdown struct {
	Variable core.VariableKey `json:"variable"`
	Labels   []string         `json:"labels"` // attrition labels, sorted
	Rows     []BreakdownRow   `json:"rows"`   // categories, in display order
}
