package analysis

import (
	"testing"

	"attrition/domain/core"
	"attrition/domain/employee"
	"attrition/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLabelShares_SumTo100(t *testing.T) {
	shares := LabelShares([]string{"No", "No", "Yes", "No", "Yes", "No", "No"})

	require.Len(t, shares, 2)
	assert.Equal(t, "No", shares[0].Label)
	assert.Equal(t, 5, shares[0].Count)
	assert.InDelta(t, 71.428571, shares[0].Percent, 1e-6)

	total := 0.0
	for _, s := range shares {
		total += s.Percent
	}
	assert.InDelta(t, 100.0, total, 1e-9)
}

func TestLabelShares_SkipsMissingAndBreaksTies(t *testing.T) {
	shares := LabelShares([]string{"Yes", "NaN", "No", ""})

	require.Len(t, shares, 2)
	assert.Equal(t, "No", shares[0].Label)
	assert.Equal(t, "Yes", shares[1].Label)
	assert.Equal(t, 50.0, shares[0].Percent)
}

func TestAttritionRates_Synthetic(t *testing.T) {
	shares, err := AttritionRates(syntheticTable(t))
	require.NoError(t, err)

	require.Len(t, shares, 2)
	assert.Equal(t, "No", shares[0].Label)
	assert.InDelta(t, 75.0, shares[0].Percent, 1e-9)
	assert.InDelta(t, 25.0, shares[1].Percent, 1e-9)
}

func TestSortCategories(t *testing.T) {
	numeric := []string{"10", "2", "1", "0"}
	SortCategories(numeric)
	assert.Equal(t, []string{"0", "1", "2", "10"}, numeric)

	text := []string{"Sales", "Human Resources", "Research & Development"}
	SortCategories(text)
	assert.Equal(t, []string{"Human Resources", "Research & Development", "Sales"}, text)
}

func TestComputeBreakdown_RowsSumTo100(t *testing.T) {
	table := syntheticTable(t)

	for _, column := range []core.VariableKey{core.VarDepartment, core.VarJobSatisfaction, core.VarYearsSinceLastPromotion} {
		b, err := ComputeBreakdown(table, column)
		require.NoError(t, err)
		require.NotEmpty(t, b.Rows)
		assert.Equal(t, []string{"No", "Yes"}, b.Labels)

		total := 0
		for _, row := range b.Rows {
			assert.InDelta(t, 100.0, row.Percent["No"]+row.Percent["Yes"], 1e-9, "%s=%s", column, row.Category)
			total += row.Total
		}
		assert.Equal(t, 160, total)
	}
}

func TestComputeBreakdown_OrderAndMissingCombination(t *testing.T) {
	table, err := employee.FromRecords([][]string{
		{"Attrition", "JobSatisfaction"},
		{"No", "3"},
		{"No", "1"},
		{"Yes", "1"},
		{"No", "1"},
		{"Yes", "4"},
	})
	require.NoError(t, err)

	b, err := ComputeBreakdown(table, core.VarJobSatisfaction)
	require.NoError(t, err)

	require.Len(t, b.Rows, 3)
	assert.Equal(t, "1", b.Rows[0].Category)
	assert.Equal(t, "3", b.Rows[1].Category)
	assert.Equal(t, "4", b.Rows[2].Category)

	assert.InDelta(t, 66.666667, b.Rows[0].Percent["No"], 1e-6)
	assert.Equal(t, 100.0, b.Rows[1].Percent["No"])
	assert.Equal(t, 0.0, b.Rows[1].Percent["Yes"])
	assert.Equal(t, 0, b.Rows[2].Counts["No"])
}

func TestComputeBreakdown_MissingColumn(t *testing.T) {
	table, err := employee.FromRecords([][]string{{"Attrition"}, {"No"}})
	require.NoError(t, err)

	_, err = ComputeBreakdown(table, core.VarDepartment)
	require.Error(t, err)
	assert.Equal(t, errors.CodeMissingColumn, errors.GetCode(err))
}
