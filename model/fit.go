package model

import (
	"math"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/optimize"

	"github.com/connalab/connstat/connprob"
)

// FitExponential fits Scale·exp(−Decay·x) to the (x, y) samples by
// nonlinear least squares (Nelder–Mead) from the given initial guess.
// Samples with a non-finite y are dropped; fitting over none is an error.
func FitExponential(xs, ys []float64, guess Exponential) (Exponential, error) {
	if len(xs) != len(ys) {
		return Exponential{}, ErrSampleMismatch
	}
	fx, fy := finiteSamples(xs, ys)
	if len(fx) == 0 {
		return Exponential{}, ErrNoSamples
	}

	problem := optimize.Problem{
		Func: func(p []float64) float64 {
			var sse float64
			for i, x := range fx {
				r := fy[i] - p[0]*math.Exp(-p[1]*x)
				sse += r * r
			}
			return sse
		},
	}
	result, err := optimize.Minimize(problem, []float64{guess.Scale, guess.Decay}, nil, &optimize.NelderMead{})
	if err != nil {
		return Exponential{}, err
	}
	if result == nil || math.IsNaN(result.F) {
		return Exponential{}, ErrFitFailed
	}
	return Exponential{Scale: result.X[0], Decay: result.X[1]}, nil
}

// FitSecondOrder fits the distance-dependent form to a second-order
// extraction, evaluating at distance bin centers.
func FitSecondOrder(res connprob.SecondOrder) (Exponential, Quality, error) {
	xs := binCenters(res.DistBins)
	m, err := FitExponential(xs, res.P, heuristicGuess(xs, res.P))
	if err != nil {
		return Exponential{}, Quality{}, err
	}
	return m, fitQuality(m, xs, nil, res.P), nil
}

// FitThirdOrder fits the bipolar form to a third-order extraction: one
// Exponential per sign branch, each against its own column of the grid.
// The zero-difference column is represented by the branch average and is
// not fitted directly.
func FitThirdOrder(res connprob.ThirdOrder) (BipolarExponential, Quality, error) {
	xs := binCenters(res.DistBins)
	nBip := res.Shape[1]
	column := func(b int) []float64 {
		col := make([]float64, len(xs))
		for i := range xs {
			col[i] = res.P[i*nBip+b]
		}
		return col
	}
	colBelow, colAbove := column(0), column(nBip-1)
	below, err := FitExponential(xs, colBelow, heuristicGuess(xs, colBelow))
	if err != nil {
		return BipolarExponential{}, Quality{}, err
	}
	above, err := FitExponential(xs, colAbove, heuristicGuess(xs, colAbove))
	if err != nil {
		return BipolarExponential{}, Quality{}, err
	}
	m := BipolarExponential{Below: below, Above: above}

	// Quality pools both fitted branches.
	bip := make([]float64, 0, 2*len(xs))
	dist := make([]float64, 0, 2*len(xs))
	obs := make([]float64, 0, 2*len(xs))
	for i, x := range xs {
		dist = append(dist, x, x)
		bip = append(bip, -1, 1)
		obs = append(obs, res.P[i*nBip], res.P[i*nBip+nBip-1])
	}
	return m, fitQuality(m, dist, bip, obs), nil
}

// fitQuality reports RMSE and R² of m over the finite observations. A nil
// bipolar slice evaluates the model with a zero covariate.
func fitQuality(m Model, dist, bipolar, obs []float64) Quality {
	var residualsSq, observed []float64
	for i, o := range obs {
		if math.IsInf(o, 0) || math.IsNaN(o) {
			continue
		}
		dz := 0.0
		if bipolar != nil {
			dz = bipolar[i]
		}
		r := o - m.Eval(dist[i], dz)
		residualsSq = append(residualsSq, r*r)
		observed = append(observed, o)
	}
	if len(observed) == 0 {
		return Quality{RMSE: math.NaN(), R2: math.NaN()}
	}
	msr, _ := stats.Mean(residualsSq)
	obsMean, _ := stats.Mean(observed)
	var ssTot float64
	for _, o := range observed {
		d := o - obsMean
		ssTot += d * d
	}
	q := Quality{RMSE: math.Sqrt(msr)}
	if ssTot == 0 {
		q.R2 = math.NaN()
	} else {
		q.R2 = 1 - float64(len(residualsSq))*msr/ssTot
	}
	return q
}

// heuristicGuess seeds the optimizer with the largest finite observation
// as the scale and the reciprocal mean abscissa as the decay, which lands
// in the basin of the least-squares optimum for decaying profiles.
func heuristicGuess(xs, ys []float64) Exponential {
	fx, fy := finiteSamples(xs, ys)
	g := Exponential{Scale: 1, Decay: 1}
	if len(fx) == 0 {
		return g
	}
	var maxY, sumX float64
	for i := range fx {
		if fy[i] > maxY {
			maxY = fy[i]
		}
		sumX += fx[i]
	}
	if maxY > 0 {
		g.Scale = maxY
	}
	if mean := sumX / float64(len(fx)); mean > 0 {
		g.Decay = 1 / mean
	}
	return g
}

func finiteSamples(xs, ys []float64) (fx, fy []float64) {
	for i, y := range ys {
		if math.IsNaN(y) || math.IsInf(y, 0) {
			continue
		}
		fx = append(fx, xs[i])
		fy = append(fy, y)
	}
	return fx, fy
}

func binCenters(edges []float64) []float64 {
	centers := make([]float64, len(edges)-1)
	for i := range centers {
		centers[i] = 0.5 * (edges[i] + edges[i+1])
	}
	return centers
}
