package nullmodel

import (
	"math/rand/v2"
	"sort"

	"gonum.org/v1/gonum/stat/sampleuv"

	"github.com/connalab/connstat/sparse"
)

// DegreeBasedControl returns a shuffled copy of m that preserves degree
// distributions: with Direction=Efferent every column keeps its exact
// nonzero count (in-degree) while its source indices are redrawn without
// replacement, weighted by each row's out-degree marginal; Afferent swaps
// rows and columns. The unsampled marginal is preserved only in
// expectation. Self-loops are excluded by zeroing the diagonal weight.
//
// The input is never mutated. src drives all sampling; pass a seeded source
// for reproducibility.
//
// Time Complexity: O(N² + nnz·log N) from the per-column weight reset and
// weighted sampling.
func DegreeBasedControl(m *sparse.Matrix, dir sparse.Direction, src rand.Source) (*sparse.Matrix, error) {
	switch dir {
	case sparse.Efferent, sparse.Afferent:
	default:
		return nil, ErrUnknownDirection
	}

	// Marginal of the side being redrawn: row out-degrees when columns keep
	// their counts, column in-degrees when rows keep theirs.
	marginal, err := m.Degrees(dir)
	if err != nil {
		return nil, err
	}

	n := m.N()
	rows := make([]int, 0, m.NNZ())
	cols := make([]int, 0, m.NNZ())
	var vals []float64
	if !m.Binary() {
		vals = make([]float64, 0, m.NNZ())
	}

	weights := make([]float64, n)
	resample := func(fixed int, count int, kept []float64) error {
		copy(weights, marginal)
		weights[fixed] = 0
		w := sampleuv.NewWeighted(weights, src)
		drawn := make([]int, count)
		for k := 0; k < count; k++ {
			idx, ok := w.Take()
			if !ok {
				return ErrInsufficientSupport
			}
			drawn[k] = idx
		}
		sort.Ints(drawn)
		for k, idx := range drawn {
			if dir == sparse.Efferent {
				rows = append(rows, idx)
				cols = append(cols, fixed)
			} else {
				rows = append(rows, fixed)
				cols = append(cols, idx)
			}
			if vals != nil {
				vals = append(vals, kept[k])
			}
		}
		return nil
	}

	if dir == sparse.Efferent {
		view := m.ColView()
		for j := 0; j < n; j++ {
			sources, kept := view.Col(j)
			if err := resample(j, len(sources), kept); err != nil {
				return nil, err
			}
		}
	} else {
		for i := 0; i < n; i++ {
			tgt, kept := m.Row(i)
			if err := resample(i, len(tgt), kept); err != nil {
				return nil, err
			}
		}
	}
	return sparse.FromTriplets(n, rows, cols, vals)
}
