package richclub_test

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/connalab/connstat/richclub"
	"github.com/connalab/connstat/sparse"
)

func fourNode(t *testing.T) *sparse.Matrix {
	t.Helper()
	m, err := sparse.FromEdges(4, [][2]int{{0, 1}, {0, 2}, {1, 2}, {2, 3}})
	require.NoError(t, err)
	return m
}

func erGraph(t *testing.T, n int, p float64, seed uint64) *sparse.Matrix {
	t.Helper()
	r := rand.New(rand.NewPCG(seed, 0))
	var edges [][2]int
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i != j && r.Float64() < p {
				edges = append(edges, [2]int{i, j})
			}
		}
	}
	m, err := sparse.FromEdges(n, edges)
	require.NoError(t, err)
	return m
}

// TestCurve_FourNode pins the reference circuit: efferent degrees
// [2,1,1,0]; at threshold 1 the club {0,1,2} holds 3 of its 6 possible
// edges; at threshold 2 the club is {0} alone, so there is no valid
// denominator and the point is NaN.
func TestCurve_FourNode(t *testing.T) {
	c, err := richclub.Curve(fourNode(t), sparse.Efferent)
	require.NoError(t, err)
	require.Equal(t, 2, c.Len())

	assert.Equal(t, 1.0, c.X[0])
	assert.InDelta(t, 3.0/6.0, c.Y[0], 1e-15)

	assert.Equal(t, 2.0, c.X[1])
	assert.True(t, math.IsNaN(c.Y[1]), "single-member club must report NaN, got %v", c.Y[1])
}

// TestCurve_UnknownDirection rejects Both and out-of-range values; the
// naive algorithm is defined for one degree side at a time.
func TestCurve_UnknownDirection(t *testing.T) {
	m := fourNode(t)
	_, err := richclub.Curve(m, sparse.Both)
	assert.ErrorIs(t, err, richclub.ErrUnknownDirection)
	_, err = richclub.Curve(m, sparse.Direction(77))
	assert.ErrorIs(t, err, richclub.ErrUnknownDirection)
}

// TestEfficientCurve_AgreesWithNaive: on binary matrices the edge-linear
// reformulation must match the induced-subgraph reference at every shared
// threshold, for either direction.
func TestEfficientCurve_AgreesWithNaive(t *testing.T) {
	for _, dir := range []sparse.Direction{sparse.Efferent, sparse.Afferent} {
		m := erGraph(t, 60, 0.15, 3)

		naive, err := richclub.Curve(m, dir)
		require.NoError(t, err)

		opts := richclub.DefaultEfficientOptions()
		opts.Direction = dir
		eff, err := richclub.EfficientCurve(m, opts)
		require.NoError(t, err)

		for i, x := range naive.X {
			k := int(x)
			require.Less(t, k, eff.Len(), "efficient curve missing threshold %d", k)
			assert.Equal(t, x, eff.X[k])
			if math.IsNaN(naive.Y[i]) {
				assert.True(t, math.IsNaN(eff.Y[k]), "threshold %d: naive NaN but efficient %v", k, eff.Y[k])
				continue
			}
			assert.InDelta(t, naive.Y[i], eff.Y[k], 1e-12, "threshold %d (%v)", k, dir)
		}
	}
}

// TestEfficientCurve_BothKeepsIsolatedNodes: under Direction=Both a node
// with no edges at all must still appear in the degree histogram at zero,
// which shows up in the threshold-0 denominator.
func TestEfficientCurve_BothKeepsIsolatedNodes(t *testing.T) {
	// Node 3 is fully isolated.
	m, err := sparse.FromEdges(4, [][2]int{{0, 1}, {1, 2}, {2, 0}})
	require.NoError(t, err)

	opts := richclub.DefaultEfficientOptions()
	opts.Direction = sparse.Both
	c, err := richclub.EfficientCurve(m, opts)
	require.NoError(t, err)

	assert.Equal(t, 0.0, c.X[0])
	assert.InDelta(t, 3.0/12.0, c.Y[0], 1e-15,
		"threshold 0 must count all 4 nodes, isolated one included")
}

// TestEfficientCurve_PreDegrees: a pre-supplied degree vector is used
// verbatim, and a wrong-length one is rejected.
func TestEfficientCurve_PreDegrees(t *testing.T) {
	m := fourNode(t)
	deg, err := m.Degrees(sparse.Efferent)
	require.NoError(t, err)

	base, err := richclub.EfficientCurve(m, richclub.DefaultEfficientOptions())
	require.NoError(t, err)

	opts := richclub.DefaultEfficientOptions()
	opts.PreDegrees = deg
	pre, err := richclub.EfficientCurve(m, opts)
	require.NoError(t, err)
	assert.Equal(t, base.X, pre.X)
	for i := range base.Y {
		if math.IsNaN(base.Y[i]) {
			assert.True(t, math.IsNaN(pre.Y[i]))
			continue
		}
		assert.Equal(t, base.Y[i], pre.Y[i])
	}

	opts.PreDegrees = []float64{1, 2}
	_, err = richclub.EfficientCurve(m, opts)
	assert.ErrorIs(t, err, richclub.ErrDegreeLength)
}

// TestEfficientCurve_SparseBins: with observed-value bin boundaries the
// curve still matches the dense-bin curve wherever both evaluate.
func TestEfficientCurve_SparseBins(t *testing.T) {
	m := erGraph(t, 50, 0.1, 5)

	dense, err := richclub.EfficientCurve(m, richclub.DefaultEfficientOptions())
	require.NoError(t, err)

	opts := richclub.DefaultEfficientOptions()
	opts.SparseBins = true
	sparseC, err := richclub.EfficientCurve(m, opts)
	require.NoError(t, err)
	assert.Less(t, sparseC.Len(), dense.Len()+1)

	for i, x := range sparseC.X {
		k := int(x)
		if k >= dense.Len() {
			continue
		}
		if math.IsNaN(sparseC.Y[i]) {
			assert.True(t, math.IsNaN(dense.Y[k]))
			continue
		}
		assert.InDelta(t, dense.Y[k], sparseC.Y[i], 1e-12, "threshold %v", x)
	}
}

// TestCurve_WeightedBinning: weighted matrices are evaluated over binned
// degree thresholds with bin-center x values.
func TestCurve_WeightedBinning(t *testing.T) {
	r := rand.New(rand.NewPCG(9, 0))
	var rows, cols []int
	var weights []float64
	for i := 0; i < 40; i++ {
		for j := 0; j < 40; j++ {
			if i != j && r.Float64() < 0.2 {
				rows = append(rows, i)
				cols = append(cols, j)
				weights = append(weights, 1+5*r.Float64())
			}
		}
	}
	m, err := sparse.FromTriplets(40, rows, cols, weights)
	require.NoError(t, err)

	c, err := richclub.Curve(m, sparse.Efferent)
	require.NoError(t, err)
	assert.LessOrEqual(t, c.Len(), 30, "weighted thresholds are capped by binning")
	for i := 1; i < c.Len(); i++ {
		assert.Greater(t, c.X[i], c.X[i-1], "bin centers must increase")
	}
	assert.False(t, math.IsNaN(c.Y[0]), "lowest threshold includes every node")
}
