// Package report writes the textual analysis output.
package report

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/olekukonko/tablewriter"
)

// BannerWidth is the width of section rules and centred titles
const BannerWidth = 50

// Printer writes report lines and tables to an io.Writer
type Printer struct {
	w io.Writer
}

// NewPrinter creates a printer writing to w
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

// Println writes a line
func (p *Printer) Println(args ...interface{}) {
	fmt.Fprintln(p.w, args...)
}

// Printf writes formatted text
func (p *Printer) Printf(format string, args ...interface{}) {
	fmt.Fprintf(p.w, format, args...)
}

// Banner prints a blank line, a rule, the centred title and another rule
func (p *Printer) Banner(title string) {
	rule := strings.Repeat("=", BannerWidth)
	fmt.Fprintf(p.w, "\n%s\n%s\n%s\n", rule, Center(title, BannerWidth), rule)
}

// Table renders rows under header as an aligned console table
func (p *Printer) Table(header []string, rows [][]string) {
	table := tablewriter.NewWriter(p.w)
	table.SetHeader(header)
	table.SetAutoFormatHeaders(false)
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	table.AppendBulk(rows)
	table.Render()
}

// Center pads s on both sides to width, extra padding going to the right
func Center(s string, width int) string {
	if len(s) >= width {
		return s
	}
	total := width - len(s)
	left := total / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", total-left)
}

// Float formats v with the given number of decimals, NaN as "NaN"
func Float(v float64, decimals int) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	return fmt.Sprintf("%.*f", decimals, v)
}
