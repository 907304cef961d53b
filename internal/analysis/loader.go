package analysis

import (
	"context"
	"os"
	"sort"

	"attrition/domain/employee"
	"attrition/internal/errors"
	"attrition/internal/report"
	"attrition/ports"
)

// CheckInput reports whether path exists. When it does not, it prints an
// error and the contents of dir so the user can spot a misnamed file.
func CheckInput(printer *report.Printer, path, dir string) bool {
	if _, err := os.Stat(path); err == nil {
		return true
	}

	printer.Printf("Error: File '%s' not found in the current directory.\n", path)
	printer.Println("Current directory contents:")

	entries, err := os.ReadDir(dir)
	if err != nil {
		printer.Printf("  (cannot list %s: %v)\n", dir, err)
		return false
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)
	for _, name := range names {
		printer.Printf("  %s\n", name)
	}
	return false
}

// LoadData reads the table and prints its shape. Load failures are printed
// and turned into a nil table; they never propagate.
func LoadData(ctx context.Context, printer *report.Printer, reader ports.TableReaderPort, path string) *employee.Table {
	table, err := reader.Read(ctx, path)
	if err != nil {
		if errors.Is(err, errors.CodeNotFound) {
			printer.Printf("Error: File '%s' not found. Please check the file path.\n", path)
		} else {
			printer.Printf("An error occurred while loading the data: %v\n", err)
		}
		return nil
	}

	rows, cols := table.Shape()
	printer.Println("Data loaded successfully!")
	printer.Printf("Dataset shape: (%d, %d)\n\n", rows, cols)
	return table
}
