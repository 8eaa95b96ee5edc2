package sparse

import "errors"

// Sentinel errors for matrix construction and degree queries.
var (
	// ErrUnknownDirection indicates a Direction value outside the supported set.
	ErrUnknownDirection = errors.New("sparse: unknown direction")
	// ErrDimensionMismatch indicates triplet slices of differing lengths or a
	// non-square shape where a square matrix is required.
	ErrDimensionMismatch = errors.New("sparse: dimension mismatch")
	// ErrIndexOutOfRange indicates a row or column index outside [0, n).
	ErrIndexOutOfRange = errors.New("sparse: index out of range")
	// ErrNegativeWeight indicates a negative edge weight.
	ErrNegativeWeight = errors.New("sparse: edge weights must be nonnegative")
)

// Direction selects which side of a directed edge a per-node statistic sums
// over.
//
//   - Efferent — outgoing connections: row sums of the adjacency matrix.
//   - Afferent — incoming connections: column sums.
//   - Both     — elementwise sum of the two; only meaningful for operations
//     that document support for it (e.g. richclub.EfficientCurve).
type Direction int

const (
	// Efferent selects out-degree (row sums).
	Efferent Direction = iota
	// Afferent selects in-degree (column sums).
	Afferent
	// Both selects in-degree plus out-degree per node.
	Both
)

// String returns the lowercase name used in error messages.
func (d Direction) String() string {
	switch d {
	case Efferent:
		return "efferent"
	case Afferent:
		return "afferent"
	case Both:
		return "both"
	}
	return "unknown"
}
