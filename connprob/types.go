package connprob

import "errors"

// Sentinel errors for probability extraction.
var (
	// ErrDependencyMismatch indicates covariate and bin-edge counts that
	// disagree, or no covariates at all.
	ErrDependencyMismatch = errors.New("connprob: need one bin-edge sequence per covariate matrix")
	// ErrShapeMismatch indicates a covariate matrix whose shape differs from
	// the adjacency matrix.
	ErrShapeMismatch = errors.New("connprob: covariate shape must match adjacency shape")
	// ErrBinEdges indicates bin edges that are not strictly increasing or
	// number fewer than two.
	ErrBinEdges = errors.New("connprob: bin edges must be strictly increasing, at least two")
	// ErrSplits indicates a non-positive split count.
	ErrSplits = errors.New("connprob: split count must be positive")
	// ErrMaxRange indicates split-mode extraction without a maximum range;
	// the bin grid cannot be fixed up front without one.
	ErrMaxRange = errors.New("connprob: max range is required when splitting")
	// ErrBinSize indicates a non-positive distance bin size.
	ErrBinSize = errors.New("connprob: bin size must be positive")
	// ErrPositions indicates a depth vector or position table whose length
	// does not match the adjacency dimension.
	ErrPositions = errors.New("connprob: positions and depths must have one row per node")
)

// Grid is the D-dimensional result of an extraction, stored flat in
// row-major order over Shape.
//
//   - Total — pairs falling in each cell.
//   - Connected — connected pairs in each cell.
//   - P — Connected/Total, with empty cells mapped to 0.
type Grid struct {
	Shape     []int
	P         []float64
	Connected []float64
	Total     []float64
}

// Index maps a multi-index to the flat offset.
func (g Grid) Index(idx ...int) int {
	flat := 0
	for d, i := range idx {
		flat = flat*g.Shape[d] + i
	}
	return flat
}

// At returns the probability at a multi-index.
func (g Grid) At(idx ...int) float64 { return g.P[g.Index(idx...)] }

// ExtractOptions configures the generic extractor.
//
//   - ChunkSize — rows per accumulation chunk; 0 processes all rows at once.
//   - Parallel  — run chunks concurrently; results are identical either way.
type ExtractOptions struct {
	ChunkSize int
	Parallel  bool
}

// OrderOptions configures ExtractSecondOrder and ExtractThirdOrder.
//
//   - BinSize  — distance bin width (same unit as the positions, e.g. µm).
//   - MaxRange — largest distance covered by the grid; 0 derives it from the
//     data, which requires Splits == 1.
//   - Splits   — number of row chunks the distance (and bipolar) matrices
//     are materialized in; 1 computes everything at once.
//   - Parallel — run splits concurrently.
type OrderOptions struct {
	BinSize  float64
	MaxRange float64
	Splits   int
	Parallel bool
}

// DefaultOrderOptions returns OrderOptions with BinSize=100, MaxRange
// derived from the data, and a single split.
func DefaultOrderOptions() OrderOptions {
	return OrderOptions{BinSize: 100, Splits: 1}
}
