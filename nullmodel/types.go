package nullmodel

import (
	"errors"

	"github.com/connalab/connstat/sparse"
)

// Sentinel errors for null-model construction and normalization.
var (
	// ErrUnknownDirection indicates a direction other than Efferent or Afferent.
	ErrUnknownDirection = errors.New("nullmodel: direction must be Efferent or Afferent")
	// ErrUnknownNormalize indicates an unsupported Normalize value.
	ErrUnknownNormalize = errors.New("nullmodel: unknown normalization")
	// ErrUnknownNormalizeWith indicates an unsupported NormalizeWith value.
	ErrUnknownNormalizeWith = errors.New("nullmodel: unknown control model")
	// ErrNotBinary indicates the analytical control was requested on a
	// weighted matrix.
	ErrNotBinary = errors.New("nullmodel: analytical control requires a binary matrix")
	// ErrTrials indicates a non-positive shuffle trial count.
	ErrTrials = errors.New("nullmodel: trial count must be positive")
	// ErrInsufficientSupport indicates a column (or row) needs more samples
	// than there are positive-weight candidates; the degree sequence cannot
	// be reproduced without self-loops or duplicates.
	ErrInsufficientSupport = errors.New("nullmodel: not enough positive-weight candidates to resample")
)

// Normalize selects the observed-vs-null output transform.
type Normalize int

const (
	// NormalizeStd z-scores the observed curve: (observed − mean) / std.
	NormalizeStd Normalize = iota
	// NormalizeMean divides the observed curve by the null mean.
	NormalizeMean
)

// NormalizeWith selects the null-model family.
type NormalizeWith int

const (
	// WithShuffled averages repeated degree-preserving randomizations.
	WithShuffled NormalizeWith = iota
	// WithAnalytical uses the closed-form hypergeometric expectation;
	// binary matrices only.
	WithAnalytical
)

// Options configures NormalizedRichClubCurve and Coefficient.
//
//   - Direction     — degree direction of the observed and control curves.
//   - Normalize     — NormalizeStd or NormalizeMean.
//   - NormalizeWith — WithShuffled or WithAnalytical.
//   - Trials        — number of shuffle trials for WithShuffled.
//   - Seed          — base seed; trial t uses the PCG stream (Seed, t).
//   - Parallel      — run shuffle trials concurrently. Results are
//     identical either way since every trial owns its stream.
type Options struct {
	Direction     sparse.Direction
	Normalize     Normalize
	NormalizeWith NormalizeWith
	Trials        int
	Seed          uint64
	Parallel      bool
}

// DefaultOptions returns Options with Direction=Efferent, NormalizeStd,
// WithShuffled, 10 trials, seed 1, sequential execution.
func DefaultOptions() Options {
	return Options{
		Direction:     sparse.Efferent,
		Normalize:     NormalizeStd,
		NormalizeWith: WithShuffled,
		Trials:        10,
		Seed:          1,
	}
}
