// Package sparse provides the compressed adjacency-matrix storage that every
// analyzer in connstat operates on.
//
// A connectome is stored as a directed, square N×N matrix in compressed
// sparse row (CSR) form: rows are presynaptic (source) neurons, columns are
// postsynaptic (target) neurons. Matrices are either binary (an edge exists
// or it does not) or weighted (a nonnegative synapse count or strength per
// edge). A compressed sparse column (CSC) view can be derived when an
// operation needs cheap column slicing.
//
// Capabilities, stated explicitly so callers pick the right view per
// operation instead of converting ad hoc:
//
//   - Matrix (CSR): O(1) amortized row slicing, O(nnz/N) average edge lookup.
//   - ColView (CSC): O(1) amortized column slicing.
//
// Degree vectors are derived, never stored: Degrees(Efferent) is the per-row
// sum (out-degree), Degrees(Afferent) the per-column sum (in-degree), and
// Degrees(Both) their elementwise sum. For binary matrices these are edge
// counts; for weighted matrices they are weight sums.
//
// Matrices are immutable once built; randomized controls (package nullmodel)
// construct fresh matrices rather than mutating inputs.
package sparse
