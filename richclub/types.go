package richclub

import (
	"errors"

	"github.com/connalab/connstat/sparse"
)

// Sentinel errors for rich-club analysis.
var (
	// ErrUnknownDirection indicates an unsupported Direction value.
	ErrUnknownDirection = errors.New("richclub: unknown direction")
	// ErrNotBinary indicates an analytical null model requested on a
	// weighted matrix; the closed form is only defined for binary matrices.
	ErrNotBinary = errors.New("richclub: analytical model requires a binary matrix")
	// ErrDegreeLength indicates a pre-supplied degree vector whose length
	// does not match the matrix dimension.
	ErrDegreeLength = errors.New("richclub: pre-supplied degrees must have one entry per node")
)

// EfficientOptions configures EfficientCurve.
//
//   - Direction   — which degree the effective rank is computed from;
//     Both sums in- and out-degree per node.
//   - PreDegrees  — optional pre-computed degree vector, one entry per node,
//     used instead of recomputing from the matrix.
//   - SparseBins  — use only observed degree values as bin boundaries
//     instead of every integer in [0, max]; useful for highly skewed
//     degree distributions.
type EfficientOptions struct {
	Direction  sparse.Direction
	PreDegrees []float64
	SparseBins bool
}

// DefaultEfficientOptions returns EfficientOptions with Direction=Efferent,
// no pre-supplied degrees, and dense integer bins.
func DefaultEfficientOptions() EfficientOptions {
	return EfficientOptions{Direction: sparse.Efferent}
}
