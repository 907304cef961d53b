package analysis

import (
	"context"
	"fmt"
	"testing"

	"attrition/domain/chart"
	"attrition/domain/employee"
	"attrition/internal"
	"attrition/internal/synthetic"

	"github.com/stretchr/testify/require"
)

// recordingRenderer keeps every chart it is asked to draw
type recordingRenderer struct {
	charts []chart.Chart
	failOn chart.Kind
}

func (r *recordingRenderer) Render(ctx context.Context, c chart.Chart) error {
	if c.Kind() == r.failOn {
		return fmt.Errorf("cannot draw %s", c.Kind())
	}
	r.charts = append(r.charts, c)
	return nil
}

// syntheticRecords builds n stayers and m leavers. Leavers are younger, newer
// and paid less.
func syntheticRecords(t *testing.T, n, m int, seed int64) [][]string {
	t.Helper()
	cfg := synthetic.DefaultConfig()
	cfg.Stayers, cfg.Leavers, cfg.Seed = n, m, seed
	ds, err := synthetic.Generate(cfg)
	require.NoError(t, err)
	return ds.Records()
}

func syntheticTable(t *testing.T) *employee.Table {
	t.Helper()
	table, err := employee.FromRecords(syntheticRecords(t, 120, 40, 1))
	require.NoError(t, err)
	return table
}

func quietLogger() *internal.Logger {
	return internal.NewLogger(internal.LogLevelError)
}
