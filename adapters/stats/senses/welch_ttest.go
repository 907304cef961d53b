package senses

import (
	"context"
	"math"

	"attrition/domain/core"
	domainStats "attrition/domain/stats"

	"gonum.org/v1/gonum/stat/distuv"
)

// WelchTTest compares group means without assuming equal variances
type WelchTTest struct {
	alpha float64
}

// NewWelchTTest creates a Welch's t-test with the given significance level
func NewWelchTTest(alpha float64) *WelchTTest {
	return &WelchTTest{alpha: alpha}
}

// Analyze runs the test between group1 and group2. NaN values are ignored.
// Groups with fewer than two observations, or with zero standard error,
// produce a NaN statistic and p-value and are never significant.
func (s *WelchTTest) Analyze(_ context.Context, variable core.VariableKey, group1, group2 []float64) domainStats.TTestResult {
	g1, g2 := finite(group1), finite(group2)

	result := domainStats.TTestResult{
		Variable:   variable,
		Group1Size: len(g1),
		Group2Size: len(g2),
		TStatistic: math.NaN(),
		PValue:     math.NaN(),
		DF:         math.NaN(),
		EffectSize: math.NaN(),
		Group1Mean: math.NaN(),
		Group2Mean: math.NaN(),
		Alpha:      s.alpha,
	}

	mean1, var1, err1 := meanVar(g1)
	if err1 == nil {
		result.Group1Mean = mean1
	}
	mean2, var2, err2 := meanVar(g2)
	if err2 == nil {
		result.Group2Mean = mean2
	}
	if err1 != nil || err2 != nil || len(g1) < 2 || len(g2) < 2 {
		return result
	}

	tStat, df, pValue := welch(mean1, var1, float64(len(g1)), mean2, var2, float64(len(g2)))
	result.TStatistic = tStat
	result.DF = df
	result.PValue = pValue
	result.EffectSize = cohensD(mean1, var1, float64(len(g1)), mean2, var2, float64(len(g2)))
	result.Significant = !math.IsNaN(pValue) && pValue < s.alpha

	return result
}

// welch returns the t statistic, Welch-Satterthwaite degrees of freedom and
// two-sided p-value
func welch(mean1, var1, n1, mean2, var2, n2 float64) (float64, float64, float64) {
	se1 := var1 / n1
	se2 := var2 / n2
	se := math.Sqrt(se1 + se2)
	if se == 0 {
		return math.NaN(), math.NaN(), math.NaN()
	}

	tStat := (mean1 - mean2) / se
	df := (se1 + se2) * (se1 + se2) / (se1*se1/(n1-1) + se2*se2/(n2-1))

	tDist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}
	pValue := 2 * tDist.Survival(math.Abs(tStat))
	if pValue > 1 {
		pValue = 1
	}

	return tStat, df, pValue
}

// cohensD is the mean difference over the pooled standard deviation
func cohensD(mean1, var1, n1, mean2, var2, n2 float64) float64 {
	pooled := math.Sqrt(((n1-1)*var1 + (n2-1)*var2) / (n1 + n2 - 2))
	if pooled == 0 {
		return math.NaN()
	}
	return (mean1 - mean2) / pooled
}
