package excel

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"attrition/domain/employee"
	"attrition/internal"
	"attrition/internal/errors"

	"github.com/go-gota/gota/dataframe"
	"github.com/xuri/excelize/v2"
)

// DataReader handles reading Excel and CSV files into the employee table
type DataReader struct {
	logger *internal.Logger
}

// NewDataReader creates a new data reader that handles both Excel and CSV files
func NewDataReader(logger *internal.Logger) *DataReader {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &DataReader{logger: logger}
}

// fileType is "xlsx" for Excel workbooks and "csv" for everything else
func fileType(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return "xlsx"
	default:
		return "csv"
	}
}

// Read loads the file at path. A missing file yields a NOT_FOUND error whose
// message names the path; any other failure yields READ_FAILED.
func (r *DataReader) Read(ctx context.Context, path string) (*employee.Table, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	kind := fileType(path)
	r.logger.Debug("[DataReader] Starting to read %s file: %s", kind, path)

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFound(fmt.Sprintf("file '%s'", path))
		}
		return nil, errors.ReadFailed(path, err)
	}

	start := time.Now()
	var (
		table *employee.Table
		err   error
	)
	switch kind {
	case "xlsx":
		table, err = r.readExcelData(path)
	default:
		table, err = r.readCSVData(path)
	}
	if err != nil {
		return nil, err
	}

	rows, cols := table.Shape()
	r.logger.Debug("[DataReader] %s file read in %.2fms (%d rows, %d columns)",
		strings.ToUpper(kind), float64(time.Since(start).Nanoseconds())/1e6, rows, cols)
	return table, nil
}

// readCSVData parses a comma separated file with a header row
func (r *DataReader) readCSVData(path string) (*employee.Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.ReadFailed(path, err)
	}
	defer file.Close()

	table, err := employee.FromDataFrame(dataframe.ReadCSV(file, employee.LoadOptions()...))
	if err != nil {
		return nil, errors.ReadFailed(path, err)
	}
	return table, nil
}

// readExcelData reads the first sheet of a workbook
func (r *DataReader) readExcelData(path string) (*employee.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.ReadFailed(path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.ReadFailed(path, fmt.Errorf("workbook has no sheets"))
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, errors.ReadFailed(path, fmt.Errorf("failed to read %s: %w", sheets[0], err))
	}
	if len(rows) < 2 {
		return nil, errors.ReadFailed(path, fmt.Errorf("sheet %s must have a header row and at least one data row", sheets[0]))
	}

	table, err := employee.FromRecords(normalizeRows(rows))
	if err != nil {
		return nil, errors.ReadFailed(path, err)
	}
	return table, nil
}

// normalizeRows trims headers and pads rows excelize shortened at trailing
// empty cells, so every record has the header's width.
func normalizeRows(rows [][]string) [][]string {
	width := len(rows[0])
	out := make([][]string, len(rows))
	for i, row := range rows {
		record := make([]string, width)
		for j := 0; j < width && j < len(row); j++ {
			record[j] = strings.TrimSpace(row[j])
		}
		out[i] = record
	}
	return out
}
