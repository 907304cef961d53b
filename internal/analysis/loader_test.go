package analysis

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"attrition/adapters/excel"
	"attrition/internal/report"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadData_MissingPath(t *testing.T) {
	var buf bytes.Buffer
	path := filepath.Join(t.TempDir(), "greendestination.csv")

	var table interface{}
	assert.NotPanics(t, func() {
		table = LoadData(context.Background(), report.NewPrinter(&buf), excel.NewDataReader(quietLogger()), path)
	})

	assert.Nil(t, table)
	assert.Contains(t, buf.String(), path)
	assert.Contains(t, buf.String(), "not found")
}

func TestLoadData_ParseFailure(t *testing.T) {
	var buf bytes.Buffer
	path := filepath.Join(t.TempDir(), "broken.csv")
	require.NoError(t, os.WriteFile(path, []byte("a,b\n1,2,3\n"), 0o644))

	table := LoadData(context.Background(), report.NewPrinter(&buf), excel.NewDataReader(quietLogger()), path)

	assert.Nil(t, table)
	assert.Contains(t, buf.String(), "An error occurred while loading the data:")
}

func TestLoadData_Success(t *testing.T) {
	var buf bytes.Buffer
	path := filepath.Join(t.TempDir(), "ok.csv")
	require.NoError(t, os.WriteFile(path, []byte("Age,Attrition\n30,No\n25,Yes\n"), 0o644))

	table := LoadData(context.Background(), report.NewPrinter(&buf), excel.NewDataReader(quietLogger()), path)

	require.NotNil(t, table)
	assert.Contains(t, buf.String(), "Data loaded successfully!")
	assert.Contains(t, buf.String(), "Dataset shape: (2, 2)")
}

func TestCheckInput(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.csv"), nil, 0o644))

	var buf bytes.Buffer
	printer := report.NewPrinter(&buf)

	missing := filepath.Join(dir, "greendestination.csv")
	assert.False(t, CheckInput(printer, missing, dir))
	assert.Contains(t, buf.String(), "Error: File '"+missing+"' not found in the current directory.")
	assert.Contains(t, buf.String(), "Current directory contents:")
	assert.Contains(t, buf.String(), "other.csv")

	buf.Reset()
	assert.True(t, CheckInput(printer, filepath.Join(dir, "other.csv"), dir))
	assert.Empty(t, buf.String())
}
