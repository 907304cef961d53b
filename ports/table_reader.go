package ports

import (
	"context"

	"attrition/domain/employee"
)

// TableReaderPort loads the employee table from a file.
// A missing file is reported with code NOT_FOUND, any other failure with READ_FAILED.
type TableReaderPort interface {
	Read(ctx context.Context, path string) (*employee.Table, error)
}
