package connprob_test

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/connalab/connstat/connprob"
	"github.com/connalab/connstat/sparse"
)

func adjFromEdges(t *testing.T, n int, edges [][2]int) *sparse.Matrix {
	t.Helper()
	m, err := sparse.FromEdges(n, edges)
	require.NoError(t, err)
	return m
}

// TestExtractDependent_Binning pins the bin assignment rules on a
// hand-counted 3-node case: a value on an interior edge starts a new bin,
// a value on the final edge falls into the last bin, and NaN or
// out-of-range values count nowhere.
func TestExtractDependent_Binning(t *testing.T) {
	nan := math.NaN()
	adj := adjFromEdges(t, 3, [][2]int{{0, 1}, {1, 0}, {2, 1}})
	dep := mat.NewDense(3, 3, []float64{
		nan, 0.5, 1.0,
		2.0, nan, nan,
		-0.5, 1.5, nan,
	})

	g, err := connprob.ExtractDependent(adj,
		[]mat.Matrix{dep}, [][]float64{{0, 1, 2}}, connprob.ExtractOptions{})
	require.NoError(t, err)

	require.Equal(t, []int{2}, g.Shape)
	// bin [0,1): pair (0,1), connected.
	assert.Equal(t, 1.0, g.Total[0])
	assert.Equal(t, 1.0, g.Connected[0])
	assert.Equal(t, 1.0, g.P[0])
	// bin [1,2]: pairs (0,2), (1,0), (2,1); the latter two connected.
	assert.Equal(t, 3.0, g.Total[1])
	assert.Equal(t, 2.0, g.Connected[1])
	assert.InDelta(t, 2.0/3.0, g.P[1], 1e-15)
}

// TestExtractDependent_EmptyBin: a bin no pair lands in reports
// probability 0, not NaN.
func TestExtractDependent_EmptyBin(t *testing.T) {
	adj := adjFromEdges(t, 2, [][2]int{{0, 1}})
	nan := math.NaN()
	dep := mat.NewDense(2, 2, []float64{nan, 0.5, 0.5, nan})

	g, err := connprob.ExtractDependent(adj,
		[]mat.Matrix{dep}, [][]float64{{0, 1, 2, 3}}, connprob.ExtractOptions{})
	require.NoError(t, err)

	assert.Equal(t, 0.0, g.Total[1])
	assert.Equal(t, 0.0, g.P[1])
	assert.Equal(t, 0.0, g.P[2])
	assert.Equal(t, 0.5, g.P[0])
}

// TestExtractDependent_Validation covers every argument check.
func TestExtractDependent_Validation(t *testing.T) {
	adj := adjFromEdges(t, 3, [][2]int{{0, 1}})
	dep := mat.NewDense(3, 3, nil)

	_, err := connprob.ExtractDependent(adj, nil, nil, connprob.ExtractOptions{})
	assert.ErrorIs(t, err, connprob.ErrDependencyMismatch)

	_, err = connprob.ExtractDependent(adj,
		[]mat.Matrix{dep}, [][]float64{{0, 1}, {0, 1}}, connprob.ExtractOptions{})
	assert.ErrorIs(t, err, connprob.ErrDependencyMismatch)

	small := mat.NewDense(2, 2, nil)
	_, err = connprob.ExtractDependent(adj,
		[]mat.Matrix{small}, [][]float64{{0, 1}}, connprob.ExtractOptions{})
	assert.ErrorIs(t, err, connprob.ErrShapeMismatch)

	_, err = connprob.ExtractDependent(adj,
		[]mat.Matrix{dep}, [][]float64{{0}}, connprob.ExtractOptions{})
	assert.ErrorIs(t, err, connprob.ErrBinEdges)

	_, err = connprob.ExtractDependent(adj,
		[]mat.Matrix{dep}, [][]float64{{0, 1, 1}}, connprob.ExtractOptions{})
	assert.ErrorIs(t, err, connprob.ErrBinEdges)
}

// TestExtractDependent_ChunkedMatchesUnchunked: counting in row chunks,
// sequential or parallel, reproduces the single-pass result exactly.
func TestExtractDependent_ChunkedMatchesUnchunked(t *testing.T) {
	const n = 40
	r := rand.New(rand.NewPCG(31, 0))

	var edges [][2]int
	pos := mat.NewDense(n, 3, nil)
	for i := 0; i < n; i++ {
		for k := 0; k < 3; k++ {
			pos.Set(i, k, r.Float64()*300)
		}
		for j := 0; j < n; j++ {
			if i != j && r.Float64() < 0.1 {
				edges = append(edges, [2]int{i, j})
			}
		}
	}
	adj := adjFromEdges(t, n, edges)
	dist, err := connprob.DistanceMatrix(pos, pos)
	require.NoError(t, err)
	binEdges := [][]float64{{0, 100, 200, 300, 400, 520}}

	whole, err := connprob.ExtractDependent(adj,
		[]mat.Matrix{dist}, binEdges, connprob.ExtractOptions{})
	require.NoError(t, err)

	for _, opts := range []connprob.ExtractOptions{
		{ChunkSize: 7},
		{ChunkSize: 7, Parallel: true},
		{ChunkSize: 1, Parallel: true},
	} {
		chunked, err := connprob.ExtractDependent(adj,
			[]mat.Matrix{dist}, binEdges, opts)
		require.NoError(t, err)
		assert.Equal(t, whole.Total, chunked.Total, "%+v", opts)
		assert.Equal(t, whole.Connected, chunked.Connected, "%+v", opts)
		assert.Equal(t, whole.P, chunked.P, "%+v", opts)
	}
}

// TestDistanceMatrix: Euclidean distances between row tables, NaN on the
// diagonal of a self comparison, and a column-count check.
func TestDistanceMatrix(t *testing.T) {
	pos := mat.NewDense(2, 2, []float64{0, 0, 3, 4})
	d, err := connprob.DistanceMatrix(pos, pos)
	require.NoError(t, err)

	assert.Equal(t, 5.0, d.At(0, 1))
	assert.Equal(t, 5.0, d.At(1, 0))
	assert.True(t, math.IsNaN(d.At(0, 0)))
	assert.True(t, math.IsNaN(d.At(1, 1)))

	// Rectangular: chunk rows against the full table.
	chunk := mat.NewDense(1, 2, []float64{3, 4})
	d, err = connprob.DistanceMatrix(chunk, pos)
	require.NoError(t, err)
	assert.Equal(t, 5.0, d.At(0, 0))
	assert.True(t, math.IsNaN(d.At(0, 1)))

	_, err = connprob.DistanceMatrix(pos, mat.NewDense(2, 3, nil))
	assert.ErrorIs(t, err, connprob.ErrShapeMismatch)
}

// TestBipolarMatrix: sign of target depth minus source depth, with equal
// depth sitting in its own central bin.
func TestBipolarMatrix(t *testing.T) {
	b := connprob.BipolarMatrix([]float64{0, 5}, []float64{0, 5, 3})
	assert.Equal(t, 0.0, b.At(0, 0))
	assert.Equal(t, 1.0, b.At(0, 1))
	assert.Equal(t, 1.0, b.At(0, 2))
	assert.Equal(t, -1.0, b.At(1, 0))
	assert.Equal(t, 0.0, b.At(1, 1))
	assert.Equal(t, -1.0, b.At(1, 2))

	assert.Equal(t, []float64{-1.5, -0.5, 0.5, 1.5}, connprob.BipolarBinEdges())
}

// TestExtractSecondOrder_Line: three collinear neurons one unit apart,
// hand-counted per distance bin.
func TestExtractSecondOrder_Line(t *testing.T) {
	adj := adjFromEdges(t, 3, [][2]int{{0, 1}, {0, 2}})
	pos := mat.NewDense(3, 1, []float64{0, 1, 2})

	res, err := connprob.ExtractSecondOrder(adj, pos, connprob.OrderOptions{
		BinSize: 1.5, Splits: 1,
	})
	require.NoError(t, err)

	require.Equal(t, []float64{0, 1.5, 3}, res.DistBins)
	// [0,1.5): four ordered pairs at distance 1, one connected.
	assert.Equal(t, 4.0, res.Total[0])
	assert.Equal(t, 0.25, res.P[0])
	// [1.5,3]: the two pairs at distance 2, one connected.
	assert.Equal(t, 2.0, res.Total[1])
	assert.Equal(t, 0.5, res.P[1])
}

// TestExtractSecondOrder_SplitsMatch: chunked materialization of the
// distance matrix changes nothing about the counts.
func TestExtractSecondOrder_SplitsMatch(t *testing.T) {
	const n = 30
	r := rand.New(rand.NewPCG(32, 0))

	var edges [][2]int
	pos := mat.NewDense(n, 3, nil)
	for i := 0; i < n; i++ {
		for k := 0; k < 3; k++ {
			pos.Set(i, k, r.Float64())
		}
		for j := 0; j < n; j++ {
			if i != j && r.Float64() < 0.15 {
				edges = append(edges, [2]int{i, j})
			}
		}
	}
	adj := adjFromEdges(t, n, edges)
	base := connprob.OrderOptions{BinSize: 0.25, MaxRange: 2, Splits: 1}

	whole, err := connprob.ExtractSecondOrder(adj, pos, base)
	require.NoError(t, err)

	for _, opts := range []connprob.OrderOptions{
		{BinSize: 0.25, MaxRange: 2, Splits: 4},
		{BinSize: 0.25, MaxRange: 2, Splits: 4, Parallel: true},
		{BinSize: 0.25, MaxRange: 2, Splits: n},
	} {
		split, err := connprob.ExtractSecondOrder(adj, pos, opts)
		require.NoError(t, err)
		assert.Equal(t, whole.DistBins, split.DistBins, "%+v", opts)
		assert.Equal(t, whole.Total, split.Total, "%+v", opts)
		assert.Equal(t, whole.Connected, split.Connected, "%+v", opts)
		assert.Equal(t, whole.P, split.P, "%+v", opts)
	}
}

// TestExtractThirdOrder_Line: one distance bin crossed with the three
// bipolar bins; all connections here run toward deeper targets.
func TestExtractThirdOrder_Line(t *testing.T) {
	adj := adjFromEdges(t, 3, [][2]int{{0, 1}, {0, 2}})
	pos := mat.NewDense(3, 1, []float64{0, 1, 2})
	depths := []float64{0, 1, 1}

	res, err := connprob.ExtractThirdOrder(adj, pos, depths, connprob.OrderOptions{
		BinSize: 3, Splits: 1,
	})
	require.NoError(t, err)

	require.Equal(t, []int{1, 3}, res.Shape)
	// Toward shallower targets: pairs (1,0) and (2,0), none connected.
	assert.Equal(t, 2.0, res.Total[res.Index(0, 0)])
	assert.Equal(t, 0.0, res.At(0, 0))
	// Equal depth: pairs (1,2) and (2,1), none connected.
	assert.Equal(t, 2.0, res.Total[res.Index(0, 1)])
	assert.Equal(t, 0.0, res.At(0, 1))
	// Toward deeper targets: pairs (0,1) and (0,2), both connected.
	assert.Equal(t, 2.0, res.Total[res.Index(0, 2)])
	assert.Equal(t, 1.0, res.At(0, 2))
}

// TestExtractThirdOrder_SplitsMatch mirrors the second-order equality
// check with the bipolar covariate in play.
func TestExtractThirdOrder_SplitsMatch(t *testing.T) {
	const n = 24
	r := rand.New(rand.NewPCG(33, 0))

	var edges [][2]int
	pos := mat.NewDense(n, 3, nil)
	depths := make([]float64, n)
	for i := 0; i < n; i++ {
		for k := 0; k < 3; k++ {
			pos.Set(i, k, r.Float64())
		}
		depths[i] = r.Float64()
		for j := 0; j < n; j++ {
			if i != j && r.Float64() < 0.15 {
				edges = append(edges, [2]int{i, j})
			}
		}
	}
	adj := adjFromEdges(t, n, edges)

	whole, err := connprob.ExtractThirdOrder(adj, pos, depths,
		connprob.OrderOptions{BinSize: 0.5, MaxRange: 2, Splits: 1})
	require.NoError(t, err)

	split, err := connprob.ExtractThirdOrder(adj, pos, depths,
		connprob.OrderOptions{BinSize: 0.5, MaxRange: 2, Splits: 5, Parallel: true})
	require.NoError(t, err)

	assert.Equal(t, whole.Shape, split.Shape)
	assert.Equal(t, whole.Total, split.Total)
	assert.Equal(t, whole.Connected, split.Connected)
	assert.Equal(t, whole.P, split.P)
}

// TestOrderOptionsValidation covers the option checks shared by both
// extraction orders.
func TestOrderOptionsValidation(t *testing.T) {
	adj := adjFromEdges(t, 3, [][2]int{{0, 1}})
	pos := mat.NewDense(3, 1, []float64{0, 1, 2})

	_, err := connprob.ExtractSecondOrder(adj, mat.NewDense(2, 1, nil),
		connprob.OrderOptions{BinSize: 1, Splits: 1})
	assert.ErrorIs(t, err, connprob.ErrPositions)

	_, err = connprob.ExtractSecondOrder(adj, pos,
		connprob.OrderOptions{Splits: 1})
	assert.ErrorIs(t, err, connprob.ErrBinSize)

	_, err = connprob.ExtractSecondOrder(adj, pos,
		connprob.OrderOptions{BinSize: 1})
	assert.ErrorIs(t, err, connprob.ErrSplits)

	_, err = connprob.ExtractSecondOrder(adj, pos,
		connprob.OrderOptions{BinSize: 1, Splits: 2})
	assert.ErrorIs(t, err, connprob.ErrMaxRange)

	_, err = connprob.ExtractThirdOrder(adj, pos, []float64{0, 1},
		connprob.OrderOptions{BinSize: 1, Splits: 1})
	assert.ErrorIs(t, err, connprob.ErrPositions)
}
