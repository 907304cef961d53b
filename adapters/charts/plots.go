package charts

import (
	"fmt"
	"math"

	"attrition/domain/chart"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
)

const paletteSize = 255

func newPlot(title, xLabel, yLabel string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.Title.Padding = vg.Points(20)
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel
	p.Add(plotter.NewGrid())
	return p
}

func barPlot(c chart.Bar) (*plot.Plot, error) {
	p := newPlot(c.Heading, c.XLabel, c.YLabel)

	names := make([]string, len(c.Bars))
	for i, b := range c.Bars {
		bars, err := plotter.NewBarChart(plotter.Values{b.Value}, vg.Points(60))
		if err != nil {
			return nil, err
		}
		bars.XMin = float64(i)
		bars.Color = b.Color
		bars.LineStyle.Width = 0
		p.Add(bars)
		names[i] = b.Label
	}
	p.NominalX(names...)
	p.Y.Min = 0

	return p, nil
}

func boxPlot(c chart.Box) (*plot.Plot, error) {
	p := newPlot(c.Heading, c.XLabel, c.YLabel)

	names := make([]string, len(c.Groups))
	for i, g := range c.Groups {
		names[i] = g.Label
		if len(g.Values) == 0 {
			continue
		}
		box, err := plotter.NewBoxPlot(vg.Points(80), float64(i), plotter.Values(g.Values))
		if err != nil {
			return nil, err
		}
		box.FillColor = g.Color
		p.Add(box)
	}
	p.NominalX(names...)

	return p, nil
}

// matrixGrid exposes a square matrix to plotter.HeatMap with row 0 drawn on top
type matrixGrid struct {
	values [][]float64
}

func (g matrixGrid) Dims() (c, r int) {
	n := len(g.values)
	return n, n
}

func (g matrixGrid) Z(c, r int) float64 {
	return g.values[len(g.values)-1-r][c]
}

func (g matrixGrid) X(c int) float64 {
	return float64(c)
}

func (g matrixGrid) Y(r int) float64 {
	return float64(r)
}

func heatmapPlot(c chart.Heatmap) (*plot.Plot, error) {
	n := len(c.Values)
	if n == 0 || len(c.Labels) != n {
		return nil, fmt.Errorf("heatmap needs a square matrix with one label per row")
	}

	p := newPlot(c.Heading, "", "")

	cm := moreland.SmoothBlueRed()
	cm.SetMin(c.Min)
	cm.SetMax(c.Max)

	grid := matrixGrid{values: c.Values}
	h := plotter.NewHeatMap(grid, cm.Palette(paletteSize))
	h.Min, h.Max = c.Min, c.Max
	p.Add(h)

	var xys plotter.XYs
	var annotations []string
	for r := 0; r < n; r++ {
		for col := 0; col < n; col++ {
			xys = append(xys, plotter.XY{X: grid.X(col), Y: grid.Y(r)})
			annotations = append(annotations, annotate(grid.Z(col, r)))
		}
	}
	labels, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: annotations})
	if err != nil {
		return nil, err
	}
	for i := range labels.TextStyle {
		labels.TextStyle[i].XAlign = text.XCenter
		labels.TextStyle[i].YAlign = text.YCenter
	}
	p.Add(labels)

	reversed := make([]string, n)
	for i, l := range c.Labels {
		reversed[n-1-i] = l
	}
	p.NominalX(c.Labels...)
	p.NominalY(reversed...)

	return p, nil
}

func annotate(v float64) string {
	if math.IsNaN(v) {
		return ""
	}
	return fmt.Sprintf("%.2f", v)
}

func countPlot(c chart.Count) (*plot.Plot, error) {
	p := newPlot(c.Heading, c.XLabel, c.YLabel)

	width := vg.Points(24)
	n := len(c.Series)
	if c.LegendTitle != "" {
		p.Legend.Add(c.LegendTitle)
	}
	for k, s := range c.Series {
		bars, err := plotter.NewBarChart(plotter.Values(s.Counts), width)
		if err != nil {
			return nil, err
		}
		bars.Color = s.Color
		bars.LineStyle.Width = 0
		bars.Offset = width * vg.Length(float64(k)-float64(n-1)/2)
		p.Add(bars)
		p.Legend.Add(s.Label, bars)
	}
	p.Legend.Top = true
	p.NominalX(c.Categories...)
	p.Y.Min = 0

	return p, nil
}
