// Package synthetic generates employee datasets with a known attrition signal.
package synthetic

import (
	"encoding/csv"
	"fmt"
	"math"
	"math/rand"
	"os"
	"strconv"

	"attrition/domain/core"

	"github.com/xuri/excelize/v2"
)

// Headers is the column order of a generated dataset
var Headers = []string{
	core.VarAge.String(),
	core.VarAttrition.String(),
	core.VarDepartment.String(),
	core.VarJobSatisfaction.String(),
	core.VarMonthlyIncome.String(),
	core.VarYearsAtCompany.String(),
	core.VarYearsSinceLastPromotion.String(),
}

// Departments cycle over the generated rows
var Departments = []string{"Sales", "Research & Development", "Human Resources"}

// Dataset is a generated table. Rows are already formatted.
type Dataset struct {
	Headers []string
	Rows    [][]string
}

// Records returns the header followed by every row
func (d *Dataset) Records() [][]string {
	out := make([][]string, 0, len(d.Rows)+1)
	out = append(out, d.Headers)
	return append(out, d.Rows...)
}

type Config struct {
	Stayers int
	Leavers int
	Seed    int64

	// Leavers are younger, newer and paid less by these amounts
	AgeGap    float64
	IncomeGap float64
	TenureGap float64
}

func DefaultConfig() Config {
	return Config{
		Stayers:   120,
		Leavers:   40,
		Seed:      42,
		AgeGap:    12,
		IncomeGap: 3500,
		TenureGap: 7,
	}
}

// Generate builds cfg.Stayers "No" rows followed by cfg.Leavers "Yes" rows.
// The same seed always yields the same dataset.
func Generate(cfg Config) (*Dataset, error) {
	if cfg.Stayers < 0 || cfg.Leavers < 0 {
		return nil, fmt.Errorf("row counts must be >= 0")
	}
	if cfg.Stayers+cfg.Leavers == 0 {
		return nil, fmt.Errorf("at least one row is required")
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	rows := make([][]string, 0, cfg.Stayers+cfg.Leavers)

	row := func(i int, label string, age, income, tenure float64) []string {
		return []string{
			itoa(clamp(age, 18, 65)),
			label,
			Departments[i%len(Departments)],
			strconv.Itoa(1 + i%4),
			itoa(clamp(income, 1000, 20000)),
			itoa(clamp(tenure, 0, 40)),
			strconv.Itoa(i % 5),
		}
	}

	for i := 0; i < cfg.Stayers; i++ {
		rows = append(rows, row(i, core.AttritionNo,
			40+6*rng.NormFloat64(),
			6500+800*rng.NormFloat64(),
			9+2*rng.Float64()))
	}
	for i := 0; i < cfg.Leavers; i++ {
		rows = append(rows, row(i+1, core.AttritionYes,
			40-cfg.AgeGap+4*rng.NormFloat64(),
			6500-cfg.IncomeGap+600*rng.NormFloat64(),
			9-cfg.TenureGap+2*rng.Float64()))
	}

	return &Dataset{Headers: Headers, Rows: rows}, nil
}

func WriteCSV(path string, ds *Dataset) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.WriteAll(ds.Records()); err != nil {
		return err
	}
	return w.Error()
}

func WriteXLSX(path string, ds *Dataset) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())
	for r, rec := range ds.Records() {
		for c, v := range rec {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return err
			}
			var value interface{} = v
			if n, err := strconv.Atoi(v); err == nil && r > 0 {
				value = n
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return err
			}
		}
	}
	return f.SaveAs(path)
}

func clamp(x, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, x))
}

func itoa(x float64) string {
	return strconv.Itoa(int(math.Round(x)))
}
