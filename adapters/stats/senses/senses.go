// Package senses holds the statistical tests run over the employee table.
package senses

import (
	"math"

	"github.com/montanaflynn/stats"
)

func finiteValue(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// finite drops NaN and infinite values
func finite(data []float64) []float64 {
	out := make([]float64, 0, len(data))
	for _, v := range data {
		if finiteValue(v) {
			out = append(out, v)
		}
	}
	return out
}

// meanVar returns the mean and the sample variance (n-1 denominator)
func meanVar(data []float64) (float64, float64, error) {
	mean, err := stats.Mean(data)
	if err != nil {
		return 0, 0, err
	}
	if len(data) < 2 {
		return mean, math.NaN(), nil
	}
	variance, err := stats.SampleVariance(data)
	if err != nil {
		return 0, 0, err
	}
	return mean, variance, nil
}
