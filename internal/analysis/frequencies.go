package analysis

import (
	"sort"
	"strconv"

	"attrition/domain/core"
	"attrition/domain/employee"
	"attrition/domain/stats"
)

// missing reports whether a cell is empty or a dataframe NaN
func missing(v string) bool {
	return v == "" || v == "NaN"
}

// LabelShares counts the distinct non-missing labels and returns their share
// in percent, most frequent first (ties by label).
func LabelShares(labels []string) []stats.LabelShare {
	counts := make(map[string]int)
	total := 0
	for _, l := range labels {
		if missing(l) {
			continue
		}
		counts[l]++
		total++
	}

	shares := make([]stats.LabelShare, 0, len(counts))
	for label, n := range counts {
		shares = append(shares, stats.LabelShare{
			Label:   label,
			Count:   n,
			Percent: float64(n) / float64(total) * 100,
		})
	}
	sort.Slice(shares, func(i, j int) bool {
		if shares[i].Count != shares[j].Count {
			return shares[i].Count > shares[j].Count
		}
		return shares[i].Label < shares[j].Label
	})
	return shares
}

// AttritionRates is the percentage split of the Attrition column
func AttritionRates(table *employee.Table) ([]stats.LabelShare, error) {
	labels, err := table.Strings(core.VarAttrition)
	if err != nil {
		return nil, err
	}
	return LabelShares(labels), nil
}

// SortCategories orders numerically when every value parses as a number,
// lexicographically otherwise.
func SortCategories(categories []string) {
	numeric := true
	for _, c := range categories {
		if _, err := strconv.ParseFloat(c, 64); err != nil {
			numeric = false
			break
		}
	}
	sort.SliceStable(categories, func(i, j int) bool {
		if numeric {
			a, _ := strconv.ParseFloat(categories[i], 64)
			b, _ := strconv.ParseFloat(categories[j], 64)
			return a < b
		}
		return categories[i] < categories[j]
	})
}

// ComputeBreakdown groups rows by column and computes, per category, the
// count and percentage of each attrition label. Labels absent from a
// category count as 0%.
func ComputeBreakdown(table *employee.Table, column core.VariableKey) (stats.Breakdown, error) {
	categories, err := table.Strings(column)
	if err != nil {
		return stats.Breakdown{}, err
	}
	labels, err := table.Strings(core.VarAttrition)
	if err != nil {
		return stats.Breakdown{}, err
	}

	counts := make(map[string]map[string]int)
	labelSet := make(map[string]bool)
	for i, category := range categories {
		if missing(category) || missing(labels[i]) {
			continue
		}
		if counts[category] == nil {
			counts[category] = make(map[string]int)
		}
		counts[category][labels[i]]++
		labelSet[labels[i]] = true
	}

	order := make([]string, 0, len(counts))
	for category := range counts {
		order = append(order, category)
	}
	SortCategories(order)

	labelOrder := make([]string, 0, len(labelSet))
	for l := range labelSet {
		labelOrder = append(labelOrder, l)
	}
	sort.Strings(labelOrder)

	breakdown := stats.Breakdown{Variable: column, Labels: labelOrder}
	for _, category := range order {
		row := stats.BreakdownRow{
			Category: category,
			Counts:   make(map[string]int, len(labelOrder)),
			Percent:  make(map[string]float64, len(labelOrder)),
		}
		for _, l := range labelOrder {
			row.Counts[l] = counts[category][l]
			row.Total += counts[category][l]
		}
		for _, l := range labelOrder {
			row.Percent[l] = float64(row.Counts[l]) / float64(row.Total) * 100
		}
		breakdown.Rows = append(breakdown.Rows, row)
	}

	return breakdown, nil
}
