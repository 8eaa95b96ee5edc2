// Package connprob extracts empirical connection probability conditioned on
// pairwise covariates: given D covariate matrices aligned with the
// adjacency matrix and D bin-edge sequences, every source-target pair is
// assigned to a cell of a D-dimensional bin grid, and each cell reports the
// number of pairs it holds, the number of those that are connected, and
// their ratio. Cells with no pairs report probability 0, never NaN. The
// output feeds parametric model fitting (package model).
//
// Bin membership for dimension d and bin index i is
// edges[i] ≤ v < edges[i+1], except the final bin, which is closed on both
// ends so the maximum value is captured exactly. NaN covariate entries —
// the "not applicable" sentinel, e.g. self pairs in a distance matrix —
// fall in no bin and are excluded.
//
// For large N the computation can be split into row chunks whose partial
// counts are summed; chunked and unchunked results are identical since
// accumulation is pure addition. Chunks are independent and may run
// concurrently. ExtractSecondOrder and ExtractThirdOrder are the typical
// entry points: connection probability against pairwise Euclidean distance,
// optionally crossed with the bipolar covariate sign(target depth − source
// depth), where zero depth difference forms its own bin. In split mode they
// also materialize the covariate matrices one row-chunk at a time, which is
// what actually bounds peak memory.
//
// Out-of-memory on the dense intermediates is fatal (a runtime allocation
// panic), not a recoverable error.
package connprob
