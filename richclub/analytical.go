package richclub

import (
	"math"

	"github.com/connalab/connstat/curve"
	"github.com/connalab/connstat/sparse"
)

// AnalyticalExpectedCurve returns the mean and standard deviation of the
// rich-club curve under a configuration-style null model, per integer
// degree threshold 1..max. Only defined for binary matrices.
//
// For each member node of the club at threshold k, the number of its
// out-edges that land inside the club is hypergeometric: out-degree draws
// from the remaining in-degree stubs, of which the club's own in-stubs are
// the successes. Per-node means are summed and divided by the potential
// pair count; per-node variances are summed before a single square root.
// The variance aggregation treats member nodes as independent, an
// approximation that understates covariance between overlapping
// neighborhoods.
func AnalyticalExpectedCurve(m *sparse.Matrix, dir sparse.Direction) (curve.Band, error) {
	if !m.Binary() {
		return curve.Band{}, ErrNotBinary
	}
	switch dir {
	case sparse.Efferent, sparse.Afferent:
	default:
		return curve.Band{}, ErrUnknownDirection
	}

	indeg, err := m.Degrees(sparse.Afferent)
	if err != nil {
		return curve.Band{}, err
	}
	outdeg, err := m.Degrees(sparse.Efferent)
	if err != nil {
		return curve.Band{}, err
	}
	deg := outdeg
	if dir == sparse.Afferent {
		deg = indeg
	}

	maxDeg := 0
	for _, d := range deg {
		if int(d) > maxDeg {
			maxDeg = int(d)
		}
	}
	totalIn := 0.0
	for _, d := range indeg {
		totalIn += d
	}

	b := curve.Band{
		X:    make([]float64, 0, maxDeg),
		Mean: make([]float64, 0, maxDeg),
		Std:  make([]float64, 0, maxDeg),
	}
	for k := 1; k <= maxDeg; k++ {
		var members, inClub float64
		for i, d := range deg {
			if d >= float64(k) {
				members++
				inClub += indeg[i]
			}
		}
		pairs := members * (members - 1)

		var sumMean, sumVar float64
		for i, d := range deg {
			if d < float64(k) {
				continue
			}
			mn, vr := hypergeomStats(totalIn-indeg[i], inClub-indeg[i], outdeg[i])
			sumMean += mn
			sumVar += vr
		}
		b.X = append(b.X, float64(k))
		b.Mean = append(b.Mean, sumMean/pairs)
		b.Std = append(b.Std, math.Sqrt(sumVar)/pairs)
	}
	return b, nil
}

// hypergeomStats returns the mean and variance of a hypergeometric draw:
// population of size popn with succ success states, draws samples taken
// without replacement. Closed form; gonum's distuv carries no
// hypergeometric distribution.
func hypergeomStats(popn, succ, draws float64) (mean, variance float64) {
	if popn <= 0 {
		return 0, 0
	}
	p := succ / popn
	mean = draws * p
	if popn <= 1 {
		return mean, 0
	}
	variance = draws * p * (1 - p) * (popn - draws) / (popn - 1)
	return mean, variance
}
