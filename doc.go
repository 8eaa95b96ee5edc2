// Package connstat computes structural statistics of large directed
// connectivity graphs — brain-circuit connectomes stored as sparse
// adjacency matrices — and compares them against null-model expectations.
//
// Everything is organized under small, single-concern subpackages:
//
//	sparse/    — compressed sparse row/column adjacency storage & degree vectors
//	curve/     — shared Curve and Band (mean/std) value types
//	gini/      — degree-distribution inequality: Lorenz curves, Gini coefficients,
//	             analytically normalized against a binomial random-graph null
//	richclub/  — rich-club curves: a direct reference algorithm, an edge-linear
//	             reformulation, and a closed-form hypergeometric expectation
//	nullmodel/ — degree-preserving shuffles and observed-vs-null normalization
//	connprob/  — connection probability binned over pairwise covariates
//	             (distance, depth sign), with memory-bounded chunking
//	model/     — tagged parametric forms fitted to extracted probabilities
//
// All computation is synchronous and in-memory over sparse or dense arrays.
// Inputs are never mutated; randomized controls build fresh matrices from
// injected, seedable random streams, so every result is reproducible.
// Shuffle trials and row-chunk scans are embarrassingly parallel and can be
// run concurrently through package options.
package connstat
