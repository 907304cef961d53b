// Package employee holds the in-memory employee record table.
package employee

import (
	"math"

	"attrition/domain/core"
	"attrition/internal/errors"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// Table is the employee record table: one row per employee.
// It is only ever mutated by AddAttritionIndicator.
type Table struct {
	df dataframe.DataFrame
}

// stringColumns are never type-detected so labels such as "No" or "1" stay verbatim
var stringColumns = map[string]series.Type{
	core.VarAttrition.String():  series.String,
	core.VarDepartment.String(): series.String,
}

// LoadOptions are the gota options every table is built with
func LoadOptions() []dataframe.LoadOption {
	return []dataframe.LoadOption{
		dataframe.HasHeader(true),
		dataframe.DetectTypes(true),
		dataframe.WithTypes(stringColumns),
	}
}

// FromDataFrame wraps a loaded dataframe
func FromDataFrame(df dataframe.DataFrame) (*Table, error) {
	if df.Err != nil {
		return nil, errors.WithCode(errors.CodeInvalidInput, df.Err)
	}
	return &Table{df: df}, nil
}

// FromRecords builds a table from a header row followed by data rows
func FromRecords(records [][]string) (*Table, error) {
	if len(records) == 0 {
		return nil, errors.InvalidInput("no header row")
	}
	return FromDataFrame(dataframe.LoadRecords(records, LoadOptions()...))
}

// Shape returns the row and column counts
func (t *Table) Shape() (rows, cols int) {
	return t.df.Dims()
}

// HasColumn reports whether the column exists
func (t *Table) HasColumn(col core.VariableKey) bool {
	for _, name := range t.df.Names() {
		if name == string(col) {
			return true
		}
	}
	return false
}

func (t *Table) column(col core.VariableKey) (series.Series, error) {
	if !t.HasColumn(col) {
		return series.Series{}, errors.MissingColumn(string(col))
	}
	s := t.df.Col(string(col))
	if s.Err != nil {
		return series.Series{}, errors.WithCode(errors.CodeMissingColumn, s.Err)
	}
	return s, nil
}

// Strings returns the column values as text
func (t *Table) Strings(col core.VariableKey) ([]string, error) {
	s, err := t.column(col)
	if err != nil {
		return nil, err
	}
	return s.Records(), nil
}

// Floats returns the column values as numbers; unparseable cells are NaN
func (t *Table) Floats(col core.VariableKey) ([]float64, error) {
	s, err := t.column(col)
	if err != nil {
		return nil, err
	}
	return s.Float(), nil
}

// AttritionIndicator maps Yes to 1, No to 0 and anything else to NaN
func AttritionIndicator(label string) float64 {
	switch label {
	case core.AttritionYes:
		return 1
	case core.AttritionNo:
		return 0
	default:
		return math.NaN()
	}
}

// AddAttritionIndicator adds (or replaces) the Attrition_num column and returns
// the number of rows whose label was neither Yes nor No.
func (t *Table) AddAttritionIndicator() (int, error) {
	labels, err := t.Strings(core.VarAttrition)
	if err != nil {
		return 0, err
	}

	values := make([]float64, len(labels))
	unknown := 0
	for i, label := range labels {
		values[i] = AttritionIndicator(label)
		if math.IsNaN(values[i]) {
			unknown++
		}
	}

	df := t.df.Mutate(series.New(values, series.Float, string(core.VarAttritionNum)))
	if df.Err != nil {
		return 0, errors.Wrap(df.Err, "failed to add attrition indicator")
	}
	t.df = df
	return unknown, nil
}

// SplitByAttrition partitions a numeric column into the "No" and "Yes" groups.
// NaN cells and rows with other labels are skipped.
func (t *Table) SplitByAttrition(feature core.VariableKey) (no, yes []float64, err error) {
	labels, err := t.Strings(core.VarAttrition)
	if err != nil {
		return nil, nil, err
	}
	values, err := t.Floats(feature)
	if err != nil {
		return nil, nil, err
	}

	for i, label := range labels {
		if math.IsNaN(values[i]) {
			continue
		}
		switch label {
		case core.AttritionNo:
			no = append(no, values[i])
		case core.AttritionYes:
			yes = append(yes, values[i])
		}
	}
	return no, yes, nil
}

// Columns returns the selected numeric columns in order. Missing cells stay
// NaN so callers can decide per pair which rows to keep.
func (t *Table) Columns(cols ...core.VariableKey) ([][]float64, error) {
	if len(cols) == 0 {
		return nil, errors.InvalidInput("no columns selected")
	}

	columns := make([][]float64, len(cols))
	for j, col := range cols {
		values, err := t.Floats(col)
		if err != nil {
			return nil, err
		}
		columns[j] = values
	}
	return columns, nil
}
