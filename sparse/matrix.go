package sparse

import "sort"

// Matrix is a directed, square adjacency matrix in compressed sparse row
// form. Row i holds the targets of node i's outgoing edges, with column
// indices sorted ascending within each row. A nil weight slice marks a
// binary matrix (every stored entry has weight 1).
type Matrix struct {
	n      int
	rowPtr []int // length n+1; row i occupies colInd[rowPtr[i]:rowPtr[i+1]]
	colInd []int
	val    []float64 // nil for binary matrices
}

// FromTriplets builds an n×n matrix from parallel (row, col, weight) slices.
// Pass a nil weights slice to build a binary matrix. Duplicate coordinates
// are not merged; supply each edge once.
//
// Time Complexity: O(nnz·log nnz) for the per-row sort.
func FromTriplets(n int, rows, cols []int, weights []float64) (*Matrix, error) {
	if len(rows) != len(cols) {
		return nil, ErrDimensionMismatch
	}
	if weights != nil && len(weights) != len(rows) {
		return nil, ErrDimensionMismatch
	}
	for k := range rows {
		if rows[k] < 0 || rows[k] >= n || cols[k] < 0 || cols[k] >= n {
			return nil, ErrIndexOutOfRange
		}
		if weights != nil && weights[k] < 0 {
			return nil, ErrNegativeWeight
		}
	}

	order := make([]int, len(rows))
	for k := range order {
		order[k] = k
	}
	sort.Slice(order, func(a, b int) bool {
		ka, kb := order[a], order[b]
		if rows[ka] != rows[kb] {
			return rows[ka] < rows[kb]
		}
		return cols[ka] < cols[kb]
	})

	m := &Matrix{
		n:      n,
		rowPtr: make([]int, n+1),
		colInd: make([]int, len(rows)),
	}
	if weights != nil {
		m.val = make([]float64, len(rows))
	}
	for k, src := range order {
		m.colInd[k] = cols[src]
		if weights != nil {
			m.val[k] = weights[src]
		}
		m.rowPtr[rows[src]+1]++
	}
	for i := 0; i < n; i++ {
		m.rowPtr[i+1] += m.rowPtr[i]
	}
	return m, nil
}

// FromEdges builds a binary n×n matrix from (source, target) pairs.
func FromEdges(n int, edges [][2]int) (*Matrix, error) {
	rows := make([]int, len(edges))
	cols := make([]int, len(edges))
	for k, e := range edges {
		rows[k], cols[k] = e[0], e[1]
	}
	return FromTriplets(n, rows, cols, nil)
}

// FromDense builds a matrix from a dense square [][]float64, storing every
// nonzero entry. If binary is true the stored weights are dropped and only
// edge presence is kept.
func FromDense(data [][]float64, binary bool) (*Matrix, error) {
	n := len(data)
	var rows, cols []int
	var weights []float64
	for i, r := range data {
		if len(r) != n {
			return nil, ErrDimensionMismatch
		}
		for j, w := range r {
			if w != 0 {
				rows = append(rows, i)
				cols = append(cols, j)
				weights = append(weights, w)
			}
		}
	}
	if binary {
		weights = nil
	}
	return FromTriplets(n, rows, cols, weights)
}

// N returns the node count (the matrix is N×N).
func (m *Matrix) N() int { return m.n }

// NNZ returns the number of stored edges.
func (m *Matrix) NNZ() int { return len(m.colInd) }

// Binary reports whether the matrix stores edge presence only.
func (m *Matrix) Binary() bool { return m.val == nil }

// Density returns NNZ / (N·(N−1)), the edge probability of a directed graph
// without self-loops.
func (m *Matrix) Density() float64 {
	if m.n < 2 {
		return 0
	}
	return float64(m.NNZ()) / float64(m.n*(m.n-1))
}

// Row returns the sorted target indices and weights of row i. The weight
// slice is nil for binary matrices. The returned slices alias internal
// storage and must not be modified.
func (m *Matrix) Row(i int) (cols []int, weights []float64) {
	a, b := m.rowPtr[i], m.rowPtr[i+1]
	if m.val == nil {
		return m.colInd[a:b], nil
	}
	return m.colInd[a:b], m.val[a:b]
}

// Has reports whether edge i→j is present.
//
// Time Complexity: O(log deg(i)).
func (m *Matrix) Has(i, j int) bool {
	a, b := m.rowPtr[i], m.rowPtr[i+1]
	row := m.colInd[a:b]
	k := sort.SearchInts(row, j)
	return k < len(row) && row[k] == j
}

// Weight returns the weight of edge i→j, or 0 if absent. Binary matrices
// report 1 for present edges.
func (m *Matrix) Weight(i, j int) float64 {
	a, b := m.rowPtr[i], m.rowPtr[i+1]
	row := m.colInd[a:b]
	k := sort.SearchInts(row, j)
	if k == len(row) || row[k] != j {
		return 0
	}
	if m.val == nil {
		return 1
	}
	return m.val[a+k]
}

// ForEach calls fn once per stored edge, in row-major order. Binary matrices
// report weight 1.
func (m *Matrix) ForEach(fn func(i, j int, w float64)) {
	for i := 0; i < m.n; i++ {
		for k := m.rowPtr[i]; k < m.rowPtr[i+1]; k++ {
			w := 1.0
			if m.val != nil {
				w = m.val[k]
			}
			fn(i, m.colInd[k], w)
		}
	}
}

// Sum returns the total of all stored weights (the edge count for binary
// matrices).
func (m *Matrix) Sum() float64 {
	if m.val == nil {
		return float64(len(m.colInd))
	}
	var s float64
	for _, w := range m.val {
		s += w
	}
	return s
}

// Degrees returns the per-node degree vector along dir: Efferent sums rows,
// Afferent sums columns, Both sums both. Weighted matrices sum weights.
//
// Time Complexity: O(N + nnz).
func (m *Matrix) Degrees(dir Direction) ([]float64, error) {
	switch dir {
	case Efferent, Afferent, Both:
	default:
		return nil, ErrUnknownDirection
	}
	deg := make([]float64, m.n)
	m.ForEach(func(i, j int, w float64) {
		if dir == Efferent || dir == Both {
			deg[i] += w
		}
		if dir == Afferent || dir == Both {
			deg[j] += w
		}
	})
	return deg, nil
}
