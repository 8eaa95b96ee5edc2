package gini

import (
	"errors"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/connalab/connstat/curve"
	"github.com/connalab/connstat/sparse"
)

// ErrUnknownDirection indicates a direction other than Efferent or Afferent.
var ErrUnknownDirection = errors.New("gini: direction must be Efferent or Afferent")

// Curve returns the reversed Lorenz curve of the degree distribution along
// dir: y[i] is the degree share held by the i+1 highest-degree nodes, at
// rank x[i] = (i+1)/N.
func Curve(m *sparse.Matrix, dir sparse.Direction) (curve.Curve, error) {
	deg, err := degrees(m, dir)
	if err != nil {
		return curve.Curve{}, err
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(deg)))

	total := floats.Sum(deg)
	cs := make([]float64, len(deg))
	floats.CumSum(cs, deg)
	floats.Scale(1/total, cs)

	x := make([]float64, len(deg))
	for i := range x {
		x[i] = float64(i+1) / float64(len(deg))
	}
	return curve.Curve{X: x, Y: cs}, nil
}

// Coefficient folds the Gini curve into a scalar in [0, 1]: twice the
// trapezoid-rule area between the curve (anchored at the origin) and 0.5,
// the area under the equality diagonal. A perfectly regular graph scores 0.
func Coefficient(m *sparse.Matrix, dir sparse.Direction) (float64, error) {
	c, err := Curve(m, dir)
	if err != nil {
		return 0, err
	}
	return foldCurve(c), nil
}

// AnalyticalExpectedCurve returns the closed-form expected Gini curve under
// an Erdős–Rényi random graph with the observed density: the binomial PMF
// over degree values k = N−1 … 0 gives, cumulatively, both the rank axis and
// the degree-share axis. No sampling is involved.
func AnalyticalExpectedCurve(m *sparse.Matrix, dir sparse.Direction) (curve.Curve, error) {
	switch dir {
	case sparse.Efferent, sparse.Afferent:
	default:
		return curve.Curve{}, ErrUnknownDirection
	}
	trials := m.N() - 1
	if trials < 1 {
		return curve.Curve{}, nil
	}
	p := float64(m.NNZ()) / float64(m.N()*trials)

	bin := distuv.Binomial{N: float64(trials), P: p}
	pmf := make([]float64, trials+1)
	mass := make([]float64, trials+1)
	for i := 0; i <= trials; i++ {
		k := float64(trials - i) // highest degree first
		pmf[i] = bin.Prob(k)
		mass[i] = pmf[i] * k
	}

	x := make([]float64, len(pmf))
	floats.CumSum(x, pmf)
	floats.Scale(1/x[len(x)-1], x)

	y := make([]float64, len(mass))
	floats.CumSum(y, mass)
	floats.Scale(1/y[len(y)-1], y)

	return curve.Curve{X: x, Y: y}, nil
}

// NormalizedCoefficient returns the observed Gini coefficient minus the
// coefficient of the analytical random-graph expectation: a signed measure
// of excess degree inequality over chance.
func NormalizedCoefficient(m *sparse.Matrix, dir sparse.Direction) (float64, error) {
	gc, err := Coefficient(m, dir)
	if err != nil {
		return 0, err
	}
	ctrl, err := AnalyticalExpectedCurve(m, dir)
	if err != nil {
		return 0, err
	}
	return gc - foldCurve(ctrl), nil
}

// foldCurve maps a cumulative-share curve to a Gini scalar: 2·area − 1,
// with the implicit (0, 0) anchor prepended so a diagonal curve scores
// exactly 0.
func foldCurve(c curve.Curve) float64 {
	if c.Len() == 0 {
		return 0
	}
	anchored := curve.Curve{
		X: append([]float64{0}, c.X...),
		Y: append([]float64{0}, c.Y...),
	}
	return 2*anchored.Trapezoid() - 1
}

func degrees(m *sparse.Matrix, dir sparse.Direction) ([]float64, error) {
	switch dir {
	case sparse.Efferent, sparse.Afferent:
	default:
		return nil, ErrUnknownDirection
	}
	return m.Degrees(dir)
}
