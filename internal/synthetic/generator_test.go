package synthetic

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestGenerateDeterministic(t *testing.T) {
	a, err := Generate(DefaultConfig())
	require.NoError(t, err)
	b, err := Generate(DefaultConfig())
	require.NoError(t, err)

	assert.Equal(t, a.Rows, b.Rows)
	assert.Len(t, a.Rows, 160)
	assert.Equal(t, Headers, a.Headers)
}

func TestGenerateSeparatesGroups(t *testing.T) {
	ds, err := Generate(DefaultConfig())
	require.NoError(t, err)

	var noIncome, yesIncome float64
	var nNo, nYes int
	for _, row := range ds.Rows {
		require.Len(t, row, len(Headers))
		income, err := strconv.ParseFloat(row[4], 64)
		require.NoError(t, err)
		switch row[1] {
		case "No":
			noIncome += income
			nNo++
		case "Yes":
			yesIncome += income
			nYes++
		default:
			t.Fatalf("unexpected label %q", row[1])
		}
	}
	assert.Equal(t, 120, nNo)
	assert.Equal(t, 40, nYes)
	assert.Greater(t, noIncome/float64(nNo), yesIncome/float64(nYes)+2000)
}

func TestGenerateRejectsEmpty(t *testing.T) {
	_, err := Generate(Config{})
	assert.Error(t, err)

	_, err = Generate(Config{Stayers: -1, Leavers: 3})
	assert.Error(t, err)
}

func TestWriteCSV(t *testing.T) {
	ds, err := Generate(Config{Stayers: 5, Leavers: 2, Seed: 7})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "employees.csv")
	require.NoError(t, WriteCSV(path, ds))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, ds.Records(), records)
}

func TestWriteXLSX(t *testing.T) {
	ds, err := Generate(Config{Stayers: 5, Leavers: 2, Seed: 7})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "employees.xlsx")
	require.NoError(t, WriteXLSX(path, ds))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	require.NoError(t, err)
	assert.Equal(t, ds.Records(), rows)
}
