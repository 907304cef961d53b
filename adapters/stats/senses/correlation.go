package senses

import (
	"math"
	"sort"

	"attrition/domain/core"
	domainStats "attrition/domain/stats"
	"attrition/internal/errors"

	"gonum.org/v1/gonum/stat"
)

// PearsonMatrix computes the pairwise Pearson correlation matrix of columns.
// Each cell uses the rows where both columns are finite. Pairs with fewer
// than two such rows, or where either side is constant over them, are NaN.
// The diagonal is exactly 1 for every column that is not constant.
func PearsonMatrix(variables []core.VariableKey, columns [][]float64) (domainStats.CorrelationMatrix, error) {
	if len(columns) != len(variables) {
		return domainStats.CorrelationMatrix{}, errors.InvalidInput("variable names do not match columns")
	}
	if len(columns) == 0 {
		return domainStats.CorrelationMatrix{}, errors.InvalidInput("no columns to correlate")
	}
	rows := len(columns[0])
	for _, col := range columns[1:] {
		if len(col) != rows {
			return domainStats.CorrelationMatrix{}, errors.InvalidInput("columns differ in length")
		}
	}
	if rows < 2 {
		return domainStats.CorrelationMatrix{}, errors.Wrap(core.ErrInsufficientData, "correlation needs at least two rows")
	}

	n := len(columns)
	values := make([][]float64, n)
	counts := make([][]int, n)
	for i := range values {
		values[i] = make([]float64, n)
		counts[i] = make([]int, n)
	}

	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			x, y := pairwiseComplete(columns[i], columns[j])
			r := pearson(x, y)
			if i == j && !math.IsNaN(r) {
				r = 1
			}
			values[i][j], values[j][i] = r, r
			counts[i][j], counts[j][i] = len(x), len(x)
		}
	}

	return domainStats.CorrelationMatrix{
		Variables: append([]core.VariableKey(nil), variables...),
		Values:    values,
		Counts:    counts,
	}, nil
}

// pairwiseComplete keeps the rows where both a and b are finite
func pairwiseComplete(a, b []float64) (x, y []float64) {
	for k := range a {
		if finiteValue(a[k]) && finiteValue(b[k]) {
			x = append(x, a[k])
			y = append(y, b[k])
		}
	}
	return x, y
}

func pearson(x, y []float64) float64 {
	if len(x) < 2 || stat.Variance(x, nil) == 0 || stat.Variance(y, nil) == 0 {
		return math.NaN()
	}
	return stat.Correlation(x, y, nil)
}

// CorrelationsWith returns the column of m for target, sorted by correlation
// descending. NaN entries sort last.
func CorrelationsWith(m domainStats.CorrelationMatrix, target core.VariableKey) ([]domainStats.VariableCorrelation, error) {
	idx := m.Index(target)
	if idx < 0 {
		return nil, errors.MissingColumn(string(target))
	}

	out := make([]domainStats.VariableCorrelation, len(m.Variables))
	for i, v := range m.Variables {
		out[i] = domainStats.VariableCorrelation{Variable: v, Correlation: m.Values[i][idx]}
	}

	sort.SliceStable(out, func(a, b int) bool {
		ca, cb := out[a].Correlation, out[b].Correlation
		if math.IsNaN(cb) {
			return !math.IsNaN(ca)
		}
		if math.IsNaN(ca) {
			return false
		}
		return ca > cb
	})
	return out, nil
}
