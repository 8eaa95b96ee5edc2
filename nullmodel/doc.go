// Package nullmodel judges whether an observed rich-club curve is more
// extreme than chance, using two independent null-model families:
//
//   - analytical — the closed-form hypergeometric expectation from
//     richclub.AnalyticalExpectedCurve (binary matrices only);
//   - shuffled — the empirical mean and standard deviation over repeated
//     degree-preserving randomizations of the matrix (default 10 trials).
//
// The shuffle, DegreeBasedControl, is a configuration-model-style
// randomization. With Direction=Efferent it walks target columns and
// replaces each column's source indices with a weighted
// without-replacement sample, weights proportional to each source row's
// empirical out-degree with the column's own index zeroed to avoid
// self-loops. Every column's nonzero count — the in-degree — is preserved
// exactly; the out-degree marginal is preserved only in expectation,
// because each row is drawn proportionally to its global marginal but no
// exact per-row count is enforced. Afferent swaps the roles of rows and
// columns. This asymmetry is deliberate: downstream normalization assumes
// it, so the shuffle must not be "upgraded" to a doubly-exact model.
//
// Randomness is injected as a seed; every trial derives its own PCG stream
// from (seed, trial index), so results are reproducible and identical
// whether trials run sequentially or in parallel (trials are embarrassingly
// parallel and share only read-only state).
//
// NormalizedRichClubCurve divides the observed curve by the null mean or
// z-scores it against the null band, truncating to the common domain;
// points whose threshold the null never produced carry NaN.
// Coefficient summarizes the z-scored curve as its NaN-filtered mean.
package nullmodel
