package richclub

import (
	"gonum.org/v1/gonum/floats"

	"github.com/connalab/connstat/curve"
	"github.com/connalab/connstat/sparse"
)

// Curve computes the rich-club curve by direct induced-subgraph counting:
// for each threshold, potential edges are |S|·(|S|−1) over the member set S
// and actual edges are the weighted sum of the induced submatrix. Thresholds
// with fewer than two members report NaN (no valid denominator).
//
// Binary matrices are evaluated at every integer threshold 1..max(degree).
// Weighted matrices first bin degrees into at most max(30, N/10) equal-width
// bins and report bin centers on the x axis.
//
// Time Complexity: O(thresholds · (N + nnz)).
func Curve(m *sparse.Matrix, dir sparse.Direction) (curve.Curve, error) {
	switch dir {
	case sparse.Efferent, sparse.Afferent:
	default:
		return curve.Curve{}, ErrUnknownDirection
	}
	deg, err := m.Degrees(dir)
	if err != nil {
		return curve.Curve{}, err
	}
	if len(deg) == 0 {
		return curve.Curve{}, nil
	}

	// level[i] is node i's threshold rank; the curve is evaluated at every
	// rank in [first, len(x)) against x-axis values x.
	var (
		level []int
		x     []float64
		first int
	)
	if m.Binary() {
		maxDeg := int(floats.Max(deg))
		level = make([]int, len(deg))
		for i, d := range deg {
			level[i] = int(d)
		}
		x = make([]float64, maxDeg+1)
		for t := 0; t <= maxDeg; t++ {
			x[t] = float64(t)
		}
		first = 1
	} else {
		x, level = binDegrees(deg)
		first = 0
	}

	y := make([]float64, 0, len(x)-first)
	for t := first; t < len(x); t++ {
		var members int
		for _, l := range level {
			if l >= t {
				members++
			}
		}
		potential := float64(members * (members - 1))
		var actual float64
		m.ForEach(func(i, j int, w float64) {
			if level[i] >= t && level[j] >= t {
				actual += w
			}
		})
		y = append(y, actual/potential)
	}
	return curve.Curve{X: x[first:], Y: y}, nil
}

// binDegrees partitions weighted degrees into equal-width bins: at most
// max(30, N/10) of them, spanning [min, max + 1e-6·range] so the maximum
// lands inside the top bin. Returns bin centers and each node's bin index.
func binDegrees(deg []float64) (centers []float64, level []int) {
	n := len(deg)
	nbins := n / 10
	if m := min(n, 30); m > nbins {
		nbins = m
	}
	mn, mx := floats.Min(deg), floats.Max(deg)
	hi := mx + 1e-6*(mx-mn)
	width := (hi - mn) / float64(nbins)

	centers = make([]float64, nbins)
	for b := range centers {
		centers[b] = mn + (float64(b)+0.5)*width
	}
	level = make([]int, n)
	for i, d := range deg {
		b := 0
		if width > 0 {
			b = int((d - mn) / width)
		}
		if b > nbins-1 {
			b = nbins - 1
		}
		level[i] = b
	}
	return centers, level
}
