package sparse

// ColView is the compressed sparse column companion of Matrix: column j
// holds the sources of node j's incoming edges, with row indices sorted
// ascending within each column. Use it when an operation slices columns
// rather than rows.
type ColView struct {
	n      int
	colPtr []int // length n+1; column j occupies rowInd[colPtr[j]:colPtr[j+1]]
	rowInd []int
	val    []float64 // nil for binary matrices
}

// ColView derives the CSC view of m.
//
// Time Complexity: O(N + nnz).
func (m *Matrix) ColView() *ColView {
	v := &ColView{
		n:      m.n,
		colPtr: make([]int, m.n+1),
		rowInd: make([]int, len(m.colInd)),
	}
	if m.val != nil {
		v.val = make([]float64, len(m.val))
	}
	for _, j := range m.colInd {
		v.colPtr[j+1]++
	}
	for j := 0; j < m.n; j++ {
		v.colPtr[j+1] += v.colPtr[j]
	}
	next := make([]int, m.n)
	copy(next, v.colPtr[:m.n])
	// Row-major traversal of m writes each column's rows in ascending order.
	m.ForEach(func(i, j int, w float64) {
		k := next[j]
		v.rowInd[k] = i
		if v.val != nil {
			v.val[k] = w
		}
		next[j]++
	})
	return v
}

// N returns the node count.
func (v *ColView) N() int { return v.n }

// Col returns the sorted source indices and weights of column j. The weight
// slice is nil for binary matrices. The returned slices alias internal
// storage and must not be modified.
func (v *ColView) Col(j int) (rows []int, weights []float64) {
	a, b := v.colPtr[j], v.colPtr[j+1]
	if v.val == nil {
		return v.rowInd[a:b], nil
	}
	return v.rowInd[a:b], v.val[a:b]
}

// Matrix converts the view back to CSR form.
//
// Time Complexity: O(N + nnz).
func (v *ColView) Matrix() (*Matrix, error) {
	rows := make([]int, 0, len(v.rowInd))
	cols := make([]int, 0, len(v.rowInd))
	var weights []float64
	if v.val != nil {
		weights = make([]float64, 0, len(v.val))
	}
	for j := 0; j < v.n; j++ {
		a, b := v.colPtr[j], v.colPtr[j+1]
		for k := a; k < b; k++ {
			rows = append(rows, v.rowInd[k])
			cols = append(cols, j)
			if weights != nil {
				weights = append(weights, v.val[k])
			}
		}
	}
	return FromTriplets(v.n, rows, cols, weights)
}
