// Package gini measures inequality of a connectome's degree distribution.
//
// The Gini curve is a discretized Lorenz curve built from the highest degree
// down: degrees are sorted descending and the cumulative normalized degree
// share is reported against the cumulative normalized rank (one point per
// node, rank (i+1)/N). The Gini coefficient folds the curve into a scalar in
// [0, 1]: 0 for a perfectly regular graph (every node the same degree),
// approaching 1 as all edges concentrate on a single node.
//
// Algorithm outline (Curve):
//  1. degrees = row (Efferent) or column (Afferent) sums of the matrix.
//  2. Sort descending, cumulative-sum, divide by the total.
//  3. x[i] = (i+1)/N.
//
// The analytical expectation under an Erdős–Rényi null with matching density
// is closed form: the binomial PMF over possible degree values (N−1 trials,
// observed edge probability) yields the expected cumulative-share curve
// directly, with no sampling. NormalizedCoefficient reports the signed
// excess of the observed coefficient over that expectation.
//
// Complexity: O(N log N + nnz) for Curve/Coefficient, O(N) for the
// analytical curve.
package gini
