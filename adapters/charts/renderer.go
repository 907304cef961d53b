// Package charts draws chart specs to PNG files with gonum/plot.
package charts

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"attrition/domain/chart"
	"attrition/internal"
	"attrition/internal/errors"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
)

// PlotRenderer writes each chart as <dir>/<NN>-<slug>.png
type PlotRenderer struct {
	dir    string
	seq    int
	logger *internal.Logger
	files  []string
}

// NewPlotRenderer creates a renderer writing into dir, created on first use
func NewPlotRenderer(dir string, logger *internal.Logger) *PlotRenderer {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &PlotRenderer{dir: dir, logger: logger}
}

// Files returns the paths written so far
func (r *PlotRenderer) Files() []string {
	return append([]string(nil), r.files...)
}

// Render draws c and saves it
func (r *PlotRenderer) Render(ctx context.Context, c chart.Chart) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var (
		p      *plot.Plot
		width  = 10 * vg.Inch
		height = 6 * vg.Inch
		err    error
	)

	switch v := c.(type) {
	case chart.Bar:
		width, height = 8*vg.Inch, 5*vg.Inch
		p, err = barPlot(v)
	case chart.Box:
		p, err = boxPlot(v)
	case chart.Heatmap:
		height = 8 * vg.Inch
		p, err = heatmapPlot(v)
	case chart.Count:
		width = 12 * vg.Inch
		p, err = countPlot(v)
	default:
		return errors.RenderFailed(c.Title(), fmt.Errorf("unsupported chart kind %q", c.Kind()))
	}
	if err != nil {
		return errors.RenderFailed(c.Title(), err)
	}

	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return errors.RenderFailed(c.Title(), err)
	}

	r.seq++
	path := filepath.Join(r.dir, fmt.Sprintf("%02d-%s.png", r.seq, chart.Slug(c.Title())))
	if err := p.Save(width, height, path); err != nil {
		return errors.RenderFailed(c.Title(), err)
	}

	r.files = append(r.files, path)
	r.logger.Debug("rendered %s chart %q to %s", c.Kind(), c.Title(), path)
	return nil
}

// NopRenderer discards charts
type NopRenderer struct{}

// Render does nothing
func (NopRenderer) Render(ctx context.Context, c chart.Chart) error {
	return ctx.Err()
}
