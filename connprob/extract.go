package connprob

import (
	"math"
	"sort"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"

	"github.com/connalab/connstat/sparse"
)

// ExtractDependent computes connection probability conditioned on D
// covariate matrices, binned by the matching D bin-edge sequences. Every
// argument is validated before any counting starts. With
// opts.ChunkSize > 0 the pair scan is split into row chunks and partial
// counts are summed, bit-identically to the unchunked scan.
//
// Time Complexity: O(N² · D); memory O(∏ bins) beyond the inputs.
func ExtractDependent(adj *sparse.Matrix, deps []mat.Matrix, binEdges [][]float64, opts ExtractOptions) (Grid, error) {
	if err := validate(adj, deps, binEdges); err != nil {
		return Grid{}, err
	}

	n := adj.N()
	chunk := opts.ChunkSize
	if chunk <= 0 {
		chunk = n
	} else if chunk > n {
		chunk = n
	}

	g := newGrid(binEdges)
	if !opts.Parallel || chunk == n {
		for lo := 0; lo < n; lo += chunk {
			hi := lo + chunk
			if hi > n {
				hi = n
			}
			accumulate(adj, lo, hi, 0, deps, binEdges, g.Connected, g.Total)
		}
	} else {
		var eg errgroup.Group
		partials := make([]Grid, 0, (n+chunk-1)/chunk)
		for lo := 0; lo < n; lo += chunk {
			hi := lo + chunk
			if hi > n {
				hi = n
			}
			p := newGrid(binEdges)
			partials = append(partials, p)
			eg.Go(func() error {
				accumulate(adj, lo, hi, 0, deps, binEdges, p.Connected, p.Total)
				return nil
			})
		}
		if err := eg.Wait(); err != nil {
			return Grid{}, err
		}
		for _, p := range partials {
			for k := range g.Total {
				g.Connected[k] += p.Connected[k]
				g.Total[k] += p.Total[k]
			}
		}
	}

	g.finalize()
	return g, nil
}

// accumulate counts pairs and connections for global rows [lo, hi) into
// conn and total. Covariate row 0 corresponds to global row rowOff, so a
// caller may pass matrices materialized for this chunk only.
func accumulate(adj *sparse.Matrix, lo, hi, rowOff int, deps []mat.Matrix, binEdges [][]float64, conn, total []float64) {
	n := adj.N()
	for i := lo; i < hi; i++ {
		cols, weights := adj.Row(i)
		next := 0 // next stored edge of row i; cols is sorted ascending
		for j := 0; j < n; j++ {
			w := 0.0
			if next < len(cols) && cols[next] == j {
				w = 1
				if weights != nil {
					w = weights[next]
				}
				next++
			}
			flat, inBin := 0, true
			for d := range deps {
				b := binIndex(binEdges[d], deps[d].At(i-rowOff, j))
				if b < 0 {
					inBin = false
					break
				}
				flat = flat*(len(binEdges[d])-1) + b
			}
			if !inBin {
				continue
			}
			total[flat]++
			conn[flat] += w
		}
	}
}

// binIndex returns the bin b with edges[b] ≤ v < edges[b+1]; the final bin
// is closed on both ends. Returns −1 for NaN and out-of-range values.
func binIndex(edges []float64, v float64) int {
	if math.IsNaN(v) || v < edges[0] || v > edges[len(edges)-1] {
		return -1
	}
	if v == edges[len(edges)-1] {
		return len(edges) - 2
	}
	b := sort.SearchFloat64s(edges, v)
	if b == len(edges) || edges[b] != v {
		b--
	}
	return b
}

func validate(adj *sparse.Matrix, deps []mat.Matrix, binEdges [][]float64) error {
	if len(deps) == 0 || len(deps) != len(binEdges) {
		return ErrDependencyMismatch
	}
	for _, dep := range deps {
		r, c := dep.Dims()
		if r != adj.N() || c != adj.N() {
			return ErrShapeMismatch
		}
	}
	for _, edges := range binEdges {
		if len(edges) < 2 {
			return ErrBinEdges
		}
		for i := 1; i < len(edges); i++ {
			if edges[i] <= edges[i-1] {
				return ErrBinEdges
			}
		}
	}
	return nil
}

func newGrid(binEdges [][]float64) Grid {
	shape := make([]int, len(binEdges))
	size := 1
	for d, edges := range binEdges {
		shape[d] = len(edges) - 1
		size *= shape[d]
	}
	return Grid{
		Shape:     shape,
		P:         make([]float64, size),
		Connected: make([]float64, size),
		Total:     make([]float64, size),
	}
}

// finalize fills P = Connected/Total, mapping empty cells to 0.
func (g Grid) finalize() {
	for k := range g.P {
		if g.Total[k] == 0 {
			g.P[k] = 0
			continue
		}
		g.P[k] = g.Connected[k] / g.Total[k]
	}
}
