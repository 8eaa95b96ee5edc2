// Package richclub measures rich-club organization: for every degree
// threshold k, the edge density of the subgraph induced by the nodes whose
// degree is at least k. A rising curve means high-degree nodes connect to
// each other more densely than the rest of the network.
//
// Two algorithms compute the same curve with different cost profiles:
//
//   - Curve — the direct formulation: per threshold, count member nodes and
//     sum the induced submatrix. O(thresholds · nnz). Intended for small
//     graphs and as the correctness reference.
//   - EfficientCurve — edge-linear reformulation: every edge's effective
//     rank is the minimum of its endpoint degrees, so the induced edge count
//     at threshold k is the number of edges with rank ≥ k. One histogram
//     pass over edges plus cumulative degree histograms yields the whole
//     curve in O(N + nnz). Supports pre-supplied degree vectors, the
//     combined Both direction (in-degree plus out-degree per node, with
//     zero-degree nodes kept in the histogram), and a sparse bin set using
//     only observed degree values as boundaries.
//
// Weighted matrices: Curve bins weighted degrees into at most
// max(30, N/10) equal-width bins to bound the threshold count;
// EfficientCurve always ranks by structural (nonzero-count) degree.
//
// AnalyticalExpectedCurve gives the closed-form mean and standard deviation
// of the curve under a configuration-style null model using hypergeometric
// indegree mixing. Per-node variances are summed before a single square
// root; this assumes independence between node pairs, which is only
// approximate for overlapping neighborhoods. The approximation matches the
// published reference method and is preserved deliberately.
package richclub
