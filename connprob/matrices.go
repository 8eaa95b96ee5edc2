package connprob

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// DistanceMatrix returns the pairwise Euclidean distances between rows of
// src and rows of tgt (position tables, one row per neuron, one column per
// coordinate axis). Zero distances — self pairs when src and tgt coincide —
// are replaced by NaN so they fall outside every bin.
func DistanceMatrix(src, tgt *mat.Dense) (*mat.Dense, error) {
	rs, cs := src.Dims()
	rt, ct := tgt.Dims()
	if cs != ct {
		return nil, ErrShapeMismatch
	}
	out := mat.NewDense(rs, rt, nil)
	for i := 0; i < rs; i++ {
		for j := 0; j < rt; j++ {
			var sq float64
			for k := 0; k < cs; k++ {
				d := src.At(i, k) - tgt.At(j, k)
				sq += d * d
			}
			dist := math.Sqrt(sq)
			if dist == 0 {
				dist = math.NaN()
			}
			out.Set(i, j, dist)
		}
	}
	return out, nil
}

// BipolarMatrix returns the sign of (target depth − source depth) for every
// source-target pair: −1 when the target sits above the source, +1 below,
// 0 at equal depth.
func BipolarMatrix(srcDepths, tgtDepths []float64) *mat.Dense {
	out := mat.NewDense(len(srcDepths), len(tgtDepths), nil)
	for i, sd := range srcDepths {
		for j, td := range tgtDepths {
			switch {
			case td > sd:
				out.Set(i, j, 1)
			case td < sd:
				out.Set(i, j, -1)
			default:
				out.Set(i, j, 0)
			}
		}
	}
	return out
}

// BipolarBinEdges are the three sign bins of the bipolar covariate:
// below, equal, above. Zero depth difference forms its own bin.
func BipolarBinEdges() []float64 { return []float64{-1.5, -0.5, 0.5, 1.5} }
