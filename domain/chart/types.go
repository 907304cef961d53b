// Package chart describes the charts the analysis produces, independent of
// how they are drawn.
package chart

import (
	"image/color"
	"strings"
	"unicode"
)

// Kind identifies the chart type
type Kind string

const (
	KindBar     Kind = "bar"
	KindBox     Kind = "box"
	KindHeatmap Kind = "heatmap"
	KindCount   Kind = "count"
)

// Fixed attrition palette
var (
	ColorNo    = color.RGBA{R: 0x4C, G: 0xAF, B: 0x50, A: 0xFF} // #4CAF50
	ColorYes   = color.RGBA{R: 0xF4, G: 0x43, B: 0x36, A: 0xFF} // #F44336
	ColorOther = color.RGBA{R: 0x9E, G: 0x9E, B: 0x9E, A: 0xFF}
)

// LabelColor returns the palette entry for an attrition label
func LabelColor(label string) color.RGBA {
	switch label {
	case "No":
		return ColorNo
	case "Yes":
		return ColorYes
	default:
		return ColorOther
	}
}

// Chart is anything a renderer can draw
type Chart interface {
	Kind() Kind
	Title() string
}

// Bar is a simple bar chart, one coloured bar per label
type Bar struct {
	Heading string
	XLabel  string
	YLabel  string
	Bars    []BarValue
}

// BarValue is one bar
type BarValue struct {
	Label string
	Value float64
	Color color.RGBA
}

func (b Bar) Kind() Kind    { return KindBar }
func (b Bar) Title() string { return b.Heading }

// Box is a box plot with one box per group
type Box struct {
	Heading string
	XLabel  string
	YLabel  string
	Groups  []BoxGroup
}

// BoxGroup is the sample drawn as one box
type BoxGroup struct {
	Label  string
	Values []float64
	Color  color.RGBA
}

func (b Box) Kind() Kind    { return KindBox }
func (b Box) Title() string { return b.Heading }

// Heatmap is an annotated square matrix on a diverging scale centred at zero
type Heatmap struct {
	Heading string
	Labels  []string
	Values  [][]float64 // Values[row][col]
	Min     float64
	Max     float64
}

func (h Heatmap) Kind() Kind    { return KindHeatmap }
func (h Heatmap) Title() string { return h.Heading }

// Count is a grouped bar chart of counts per category split by a hue
type Count struct {
	Heading     string
	XLabel      string
	YLabel      string
	LegendTitle string
	Categories  []string
	Series      []CountSeries
}

// CountSeries is one hue of a count plot, aligned with Count.Categories
type CountSeries struct {
	Label  string
	Counts []float64
	Color  color.RGBA
}

func (c Count) Kind() Kind    { return KindCount }
func (c Count) Title() string { return c.Heading }

// Slug turns a title into a file-name friendly token
func Slug(title string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(title) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
