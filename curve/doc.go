// Package curve holds the small value types shared by the connstat
// analyzers: a Curve of (x, y) samples and a Band of per-x mean/std pairs
// produced by null models.
//
// X values are monotonically non-decreasing by construction everywhere in
// this module (curves come from cumulative sums or sorted degree
// thresholds), which is what Trapezoid relies on. Curves from different
// sources are only comparable after Truncate aligns their lengths.
package curve
