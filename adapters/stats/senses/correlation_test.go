package senses

import (
	"math"
	"testing"

	"attrition/domain/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"
)

var corrVars = []core.VariableKey{core.VarAge, core.VarYearsAtCompany, core.VarMonthlyIncome, core.VarAttritionNum}

func corrFixture() [][]float64 {
	return [][]float64{
		{25, 31, 38, 44, 50, 29},
		{1, 4, 8, 10, 15, 2},
		{2500, 3900, 5200, 6100, 9000, 3100},
		{1, 1, 0, 0, 0, 1},
	}
}

func TestPearsonMatrix_SymmetricUnitDiagonal(t *testing.T) {
	m, err := PearsonMatrix(corrVars, corrFixture())
	require.NoError(t, err)

	require.Len(t, m.Values, 4)
	for i := range m.Counts {
		for j := range m.Counts {
			assert.Equal(t, 6, m.Counts[i][j])
		}
	}
	for i := range m.Values {
		assert.Equal(t, 1.0, m.Values[i][i])
		for j := range m.Values {
			assert.InDelta(t, m.Values[i][j], m.Values[j][i], 1e-12)
			assert.LessOrEqual(t, math.Abs(m.Values[i][j]), 1.0+1e-12)
		}
	}

	// age and tenure move together, leavers are the young ones
	assert.Greater(t, m.Values[0][1], 0.9)
	assert.Less(t, m.Values[0][3], -0.5)
}

func TestPearsonMatrix_PerfectLinear(t *testing.T) {
	x := [][]float64{{1, 2, 3, 4}, {3, 5, 7, 9}}

	m, err := PearsonMatrix([]core.VariableKey{"a", "b"}, x)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, m.Values[0][1], 1e-12)
}

func TestPearsonMatrix_ConstantColumnIsNaN(t *testing.T) {
	x := [][]float64{{1, 2, 3}, {5, 5, 5}}

	m, err := PearsonMatrix([]core.VariableKey{"a", "b"}, x)
	require.NoError(t, err)
	assert.Equal(t, 1.0, m.Values[0][0])
	assert.True(t, math.IsNaN(m.Values[1][1]))
	assert.True(t, math.IsNaN(m.Values[0][1]))
}

func TestPearsonMatrix_Errors(t *testing.T) {
	_, err := PearsonMatrix([]core.VariableKey{"a"}, [][]float64{{1, 2}, {3, 4}})
	assert.Error(t, err)

	_, err = PearsonMatrix([]core.VariableKey{"a"}, [][]float64{{1}})
	assert.Error(t, err)

	_, err = PearsonMatrix([]core.VariableKey{"a", "b"}, [][]float64{{1, 2, 3}, {1, 2}})
	assert.Error(t, err)
}

func TestPearsonMatrix_PairwiseComplete(t *testing.T) {
	nan := math.NaN()
	age := []float64{30, 40, 50, 60, 35}
	tenure := []float64{2, 4, 6, 8, 20}
	left := []float64{0, 1, 0, 1, nan}

	m, err := PearsonMatrix([]core.VariableKey{"age", "tenure", "left"}, [][]float64{age, tenure, left})
	require.NoError(t, err)

	// the missing label only shrinks the pairs that involve it
	assert.InDelta(t, stat.Correlation(age, tenure, nil), m.Values[0][1], 1e-12)
	assert.Less(t, m.Values[0][1], 0.99)
	assert.Equal(t, 5, m.Counts[0][1])

	assert.InDelta(t, stat.Correlation(age[:4], left[:4], nil), m.Values[0][2], 1e-12)
	assert.Equal(t, 4, m.Counts[0][2])
	assert.Equal(t, 4, m.Counts[2][2])
	assert.Equal(t, 1.0, m.Values[2][2])
}

func TestPearsonMatrix_TooFewPairedRows(t *testing.T) {
	nan := math.NaN()
	m, err := PearsonMatrix([]core.VariableKey{"a", "b"}, [][]float64{{1, 2, nan}, {nan, 5, 6}})
	require.NoError(t, err)

	assert.Equal(t, 1, m.Counts[0][1])
	assert.True(t, math.IsNaN(m.Values[0][1]))
	assert.Equal(t, 1.0, m.Values[0][0])
}

func TestCorrelationsWith_SortedDescending(t *testing.T) {
	m, err := PearsonMatrix(corrVars, corrFixture())
	require.NoError(t, err)

	column, err := CorrelationsWith(m, core.VarAttritionNum)
	require.NoError(t, err)
	require.Len(t, column, 4)

	assert.Equal(t, core.VarAttritionNum, column[0].Variable)
	assert.Equal(t, 1.0, column[0].Correlation)
	for i := 1; i < len(column); i++ {
		assert.GreaterOrEqual(t, column[i-1].Correlation, column[i].Correlation)
	}

	_, err = CorrelationsWith(m, core.VarDepartment)
	assert.Error(t, err)
}
