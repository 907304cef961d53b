// Package profiling summarizes the distribution of a numeric column.
package profiling

import (
	"math"

	"attrition/domain/core"

	"github.com/montanaflynn/stats"
)

// Summary describes one group of observations
type Summary struct {
	Label    string
	Count    int
	Mean     float64
	StdDev   float64
	Min      float64
	Q25      float64
	Median   float64
	Q75      float64
	Max      float64
	Skewness float64
}

// FactorProfile holds the per-group summaries of one factor
type FactorProfile struct {
	Variable core.VariableKey
	Groups   []Summary
}

// Summarize computes summary statistics over data. Non-finite values are
// ignored. An empty input returns a Summary with Count 0 and NaN fields.
func Summarize(label string, data []float64) (Summary, error) {
	clean := make([]float64, 0, len(data))
	for _, v := range data {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			clean = append(clean, v)
		}
	}

	nan := math.NaN()
	s := Summary{
		Label: label, Count: len(clean),
		Mean: nan, StdDev: nan, Min: nan, Q25: nan, Median: nan, Q75: nan, Max: nan, Skewness: nan,
	}
	if len(clean) == 0 {
		return s, nil
	}

	var err error
	if s.Mean, err = stats.Mean(clean); err != nil {
		return s, err
	}
	if s.Min, err = stats.Min(clean); err != nil {
		return s, err
	}
	if s.Max, err = stats.Max(clean); err != nil {
		return s, err
	}
	if s.Median, err = stats.Median(clean); err != nil {
		return s, err
	}
	if len(clean) >= 2 {
		if s.StdDev, err = stats.StandardDeviationSample(clean); err != nil {
			return s, err
		}
	}
	if len(clean) >= 4 {
		q, err := stats.Quartile(clean)
		if err != nil {
			return s, err
		}
		s.Q25, s.Q75 = q.Q1, q.Q3
	}
	s.Skewness = skewness(clean, s.Mean)
	return s, nil
}

// skewness is the adjusted Fisher-Pearson sample skewness
func skewness(data []float64, mean float64) float64 {
	n := float64(len(data))
	if n < 3 {
		return math.NaN()
	}

	var m2, m3 float64
	for _, x := range data {
		d := x - mean
		m2 += d * d
		m3 += d * d * d
	}
	m2 /= n
	m3 /= n
	if m2 == 0 {
		return math.NaN()
	}

	g1 := m3 / math.Pow(m2, 1.5)
	return g1 * math.Sqrt(n*(n-1)) / (n - 2)
}
