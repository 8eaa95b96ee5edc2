package connprob

import (
	"math"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"

	"github.com/connalab/connstat/sparse"
)

// SecondOrder is the distance-dependent extraction result: connection
// probability per distance bin.
type SecondOrder struct {
	Grid
	DistBins []float64
}

// ThirdOrder crosses distance with the bipolar depth covariate: shape
// [distance bins × 3].
type ThirdOrder struct {
	Grid
	DistBins []float64
	BipBins  []float64
}

// ExtractSecondOrder extracts connection probability as a function of
// pairwise distance. positions holds one row per neuron. With
// opts.Splits > 1 the distance matrix is materialized one row-chunk at a
// time, bounding peak memory; opts.MaxRange must then be set, since the bin
// grid cannot be derived from data that is never fully materialized.
// Split and unsplit counts are identical.
func ExtractSecondOrder(adj *sparse.Matrix, positions *mat.Dense, opts OrderOptions) (SecondOrder, error) {
	if err := checkOrderOptions(adj, positions, opts); err != nil {
		return SecondOrder{}, err
	}

	if opts.Splits == 1 {
		dist, err := DistanceMatrix(positions, positions)
		if err != nil {
			return SecondOrder{}, err
		}
		edges := distEdges(distBinCount(dist, opts), opts.BinSize)
		g, err := ExtractDependent(adj, []mat.Matrix{dist}, [][]float64{edges}, ExtractOptions{})
		if err != nil {
			return SecondOrder{}, err
		}
		return SecondOrder{Grid: g, DistBins: edges}, nil
	}

	edges := distEdges(int(math.Ceil(opts.MaxRange/opts.BinSize)), opts.BinSize)
	g := newGrid([][]float64{edges})
	err := forEachSplit(adj.N(), opts, func(lo, hi int, conn, total []float64) error {
		dist, err := DistanceMatrix(sliceRows(positions, lo, hi), positions)
		if err != nil {
			return err
		}
		accumulate(adj, lo, hi, lo, []mat.Matrix{dist}, [][]float64{edges}, conn, total)
		return nil
	}, &g)
	if err != nil {
		return SecondOrder{}, err
	}
	g.finalize()
	return SecondOrder{Grid: g, DistBins: edges}, nil
}

// ExtractThirdOrder extracts connection probability against distance
// crossed with the bipolar covariate sign(target depth − source depth).
// depths holds one entry per neuron. Splitting behaves as in
// ExtractSecondOrder.
func ExtractThirdOrder(adj *sparse.Matrix, positions *mat.Dense, depths []float64, opts OrderOptions) (ThirdOrder, error) {
	if err := checkOrderOptions(adj, positions, opts); err != nil {
		return ThirdOrder{}, err
	}
	if len(depths) != adj.N() {
		return ThirdOrder{}, ErrPositions
	}
	bipEdges := BipolarBinEdges()

	if opts.Splits == 1 {
		dist, err := DistanceMatrix(positions, positions)
		if err != nil {
			return ThirdOrder{}, err
		}
		bip := BipolarMatrix(depths, depths)
		edges := distEdges(distBinCount(dist, opts), opts.BinSize)
		g, err := ExtractDependent(adj, []mat.Matrix{dist, bip}, [][]float64{edges, bipEdges}, ExtractOptions{})
		if err != nil {
			return ThirdOrder{}, err
		}
		return ThirdOrder{Grid: g, DistBins: edges, BipBins: bipEdges}, nil
	}

	edges := distEdges(int(math.Ceil(opts.MaxRange/opts.BinSize)), opts.BinSize)
	g := newGrid([][]float64{edges, bipEdges})
	err := forEachSplit(adj.N(), opts, func(lo, hi int, conn, total []float64) error {
		dist, err := DistanceMatrix(sliceRows(positions, lo, hi), positions)
		if err != nil {
			return err
		}
		bip := BipolarMatrix(depths[lo:hi], depths)
		accumulate(adj, lo, hi, lo, []mat.Matrix{dist, bip}, [][]float64{edges, bipEdges}, conn, total)
		return nil
	}, &g)
	if err != nil {
		return ThirdOrder{}, err
	}
	g.finalize()
	return ThirdOrder{Grid: g, DistBins: edges, BipBins: bipEdges}, nil
}

// forEachSplit runs fn over row chunks of ceil(n/splits) rows, each with
// its own partial count slices, then sums the partials into g.
func forEachSplit(n int, opts OrderOptions, fn func(lo, hi int, conn, total []float64) error, g *Grid) error {
	chunk := (n + opts.Splits - 1) / opts.Splits
	var eg errgroup.Group
	if !opts.Parallel {
		eg.SetLimit(1)
	}
	type partial struct{ conn, total []float64 }
	var partials []partial
	for lo := 0; lo < n; lo += chunk {
		hi := lo + chunk
		if hi > n {
			hi = n
		}
		p := partial{
			conn:  make([]float64, len(g.Connected)),
			total: make([]float64, len(g.Total)),
		}
		partials = append(partials, p)
		eg.Go(func() error { return fn(lo, hi, p.conn, p.total) })
	}
	if err := eg.Wait(); err != nil {
		return err
	}
	for _, p := range partials {
		for k := range g.Total {
			g.Connected[k] += p.conn[k]
			g.Total[k] += p.total[k]
		}
	}
	return nil
}

func checkOrderOptions(adj *sparse.Matrix, positions *mat.Dense, opts OrderOptions) error {
	r, _ := positions.Dims()
	if r != adj.N() {
		return ErrPositions
	}
	if opts.BinSize <= 0 {
		return ErrBinSize
	}
	if opts.Splits < 1 {
		return ErrSplits
	}
	if opts.Splits > 1 && opts.MaxRange <= 0 {
		return ErrMaxRange
	}
	return nil
}

// distBinCount derives the bin count from MaxRange, or from the largest
// finite distance when MaxRange is unset.
func distBinCount(dist *mat.Dense, opts OrderOptions) int {
	maxRange := opts.MaxRange
	if maxRange <= 0 {
		r, c := dist.Dims()
		for i := 0; i < r; i++ {
			for j := 0; j < c; j++ {
				if v := dist.At(i, j); !math.IsNaN(v) && v > maxRange {
					maxRange = v
				}
			}
		}
	}
	return int(math.Ceil(maxRange / opts.BinSize))
}

func distEdges(bins int, binSize float64) []float64 {
	if bins < 1 {
		bins = 1
	}
	edges := make([]float64, bins+1)
	for i := range edges {
		edges[i] = float64(i) * binSize
	}
	return edges
}

func sliceRows(m *mat.Dense, lo, hi int) *mat.Dense {
	_, c := m.Dims()
	return m.Slice(lo, hi, 0, c).(*mat.Dense)
}
