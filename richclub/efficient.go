package richclub

import (
	"sort"

	"github.com/connalab/connstat/curve"
	"github.com/connalab/connstat/sparse"
)

// EfficientCurve computes the rich-club curve without materializing induced
// submatrices. Each edge's effective rank is the minimum of its endpoints'
// structural (nonzero-count) degrees; the number of edges induced at
// threshold k is then the number of edges with rank ≥ k, read off a single
// edge histogram, while potential pairs come from the cumulative degree
// histogram. Agrees with Curve at every shared threshold on binary inputs.
//
// Nodes with zero degree stay in the histogram at value zero; they are never
// silently dropped, which matters for Direction=Both.
//
// Time Complexity: O(N + nnz) with dense bins, plus O(N log N) when
// SparseBins selects observed degree values as boundaries.
func EfficientCurve(m *sparse.Matrix, opts EfficientOptions) (curve.Curve, error) {
	deg, err := structuralDegrees(m, opts)
	if err != nil {
		return curve.Curve{}, err
	}
	if len(deg) == 0 {
		return curve.Curve{}, nil
	}

	maxDeg := 0.0
	for _, d := range deg {
		if d > maxDeg {
			maxDeg = d
		}
	}

	var edges []float64
	if opts.SparseBins {
		edges = sparseBinEdges(deg, maxDeg)
	} else {
		edges = make([]float64, int(maxDeg)+2)
		for i := range edges {
			edges[i] = float64(i)
		}
	}
	nbins := len(edges) - 1

	// Cumulative-from-top node counts turn into potential pair counts.
	nodeHist := make([]float64, nbins)
	for _, d := range deg {
		nodeHist[bucket(edges, d)]++
	}
	cumNodes := make([]float64, nbins)
	var run float64
	for b := nbins - 1; b >= 0; b-- {
		run += nodeHist[b]
		cumNodes[b] = run
	}

	edgeHist := make([]float64, nbins)
	m.ForEach(func(i, j int, _ float64) {
		rank := deg[i]
		if deg[j] < rank {
			rank = deg[j]
		}
		edgeHist[bucket(edges, rank)]++
	})

	x := make([]float64, nbins)
	y := make([]float64, nbins)
	run = 0
	for b := nbins - 1; b >= 0; b-- {
		run += edgeHist[b]
		x[b] = edges[b]
		y[b] = run / (cumNodes[b] * (cumNodes[b] - 1))
	}
	return curve.Curve{X: x, Y: y}, nil
}

// structuralDegrees returns the nonzero-count degree vector for opts, taking
// PreDegrees verbatim when supplied.
func structuralDegrees(m *sparse.Matrix, opts EfficientOptions) ([]float64, error) {
	if opts.PreDegrees != nil {
		if len(opts.PreDegrees) != m.N() {
			return nil, ErrDegreeLength
		}
		return opts.PreDegrees, nil
	}
	switch opts.Direction {
	case sparse.Efferent, sparse.Afferent, sparse.Both:
	default:
		return nil, ErrUnknownDirection
	}
	deg := make([]float64, m.N())
	m.ForEach(func(i, j int, _ float64) {
		if opts.Direction == sparse.Efferent || opts.Direction == sparse.Both {
			deg[i]++
		}
		if opts.Direction == sparse.Afferent || opts.Direction == sparse.Both {
			deg[j]++
		}
	})
	return deg, nil
}

// sparseBinEdges returns the sorted unique degree values augmented with 0
// and max+1, so the top observed degree still falls inside a half-open bin.
func sparseBinEdges(deg []float64, maxDeg float64) []float64 {
	seen := make(map[float64]struct{}, len(deg))
	seen[0] = struct{}{}
	seen[maxDeg+1] = struct{}{}
	for _, d := range deg {
		seen[d] = struct{}{}
	}
	edges := make([]float64, 0, len(seen))
	for v := range seen {
		edges = append(edges, v)
	}
	sort.Float64s(edges)
	return edges
}

// bucket returns the bin index b with edges[b] ≤ v < edges[b+1], clamping v
// into the top bin when it reaches the final edge.
func bucket(edges []float64, v float64) int {
	b := sort.SearchFloat64s(edges, v)
	if b == len(edges) || edges[b] != v {
		b--
	}
	if b > len(edges)-2 {
		b = len(edges) - 2
	}
	if b < 0 {
		b = 0
	}
	return b
}
