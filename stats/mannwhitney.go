package stats

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// UTestResult is the outcome of a two-sample Mann-Whitney U test.
type UTestResult struct {
	U      float64
	Z      float64
	PValue float64
	MeanX  float64
	MeanY  float64
}

// Describe returns the mean and standard deviation of x, using
// gonum.org/v1/gonum/stat for the arithmetic (spec §4.6's descriptive
// statistics).
func Describe(x []float64) (mean, stddev float64) {
	mean = stat.Mean(x, nil)
	stddev = math.Sqrt(stat.Variance(x, nil))
	return mean, stddev
}

// MannWhitneyU runs a two-sided Mann-Whitney U test comparing samples x and
// y (spec §4.6: compare contemporary against each ancestral vocabulary-size
// distribution). It ranks the pooled sample, applies the standard tie
// correction to the normal-approximation variance, and reports the
// two-sided p-value. No package in the retrieved corpus implements
// Mann-Whitney and gonum/stat does not expose it either, so the ranking and
// significance arithmetic here is hand-written against the textbook
// normal-approximation formula (DESIGN.md records this as the one
// standard-library-only piece of this package).
func MannWhitneyU(x, y []float64) UTestResult {
	n1, n2 := len(x), len(y)
	pooled := make([]taggedValue, 0, n1+n2)
	for _, v := range x {
		pooled = append(pooled, taggedValue{value: v, group: 0})
	}
	for _, v := range y {
		pooled = append(pooled, taggedValue{value: v, group: 1})
	}
	sort.SliceStable(pooled, func(i, j int) bool { return pooled[i].value < pooled[j].value })

	ranks := make([]float64, len(pooled))
	var tieCorrection float64
	i := 0
	for i < len(pooled) {
		j := i
		for j < len(pooled) && pooled[j].value == pooled[i].value {
			j++
		}
		avgRank := float64(i+j+1) / 2 // ranks are 1-based; average over the tied block
		for k := i; k < j; k++ {
			ranks[k] = avgRank
		}
		tieSize := float64(j - i)
		if tieSize > 1 {
			tieCorrection += tieSize*tieSize*tieSize - tieSize
		}
		i = j
	}

	var rankSumX float64
	for idx, tv := range pooled {
		if tv.group == 0 {
			rankSumX += ranks[idx]
		}
	}

	nx, ny := float64(n1), float64(n2)
	u1 := rankSumX - nx*(nx+1)/2
	u2 := nx*ny - u1
	u := math.Min(u1, u2)

	n := nx + ny
	meanU := nx * ny / 2
	varU := nx * ny / 12 * ((n + 1) - tieCorrection/(n*(n-1)))
	if varU <= 0 {
		return UTestResult{U: u, Z: 0, PValue: 1, MeanX: stat.Mean(x, nil), MeanY: stat.Mean(y, nil)}
	}

	z := (u - meanU) / math.Sqrt(varU)
	p := 2 * (1 - normalCDF(math.Abs(z)))
	if p > 1 {
		p = 1
	}

	return UTestResult{
		U:      u,
		Z:      z,
		PValue: p,
		MeanX:  stat.Mean(x, nil),
		MeanY:  stat.Mean(y, nil),
	}
}

type taggedValue struct {
	value float64
	group int
}

// normalCDF is the standard normal cumulative distribution function,
// evaluated via the complementary error function for numerical stability.
func normalCDF(z float64) float64 {
	return 0.5 * math.Erfc(-z/math.Sqrt2)
}
