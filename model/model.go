package model

import (
	"errors"
	"math"
)

// Sentinel errors for model fitting.
var (
	// ErrSampleMismatch indicates x and y sample slices of differing lengths.
	ErrSampleMismatch = errors.New("model: x and y samples must have the same length")
	// ErrNoSamples indicates that no finite samples remain to fit against.
	ErrNoSamples = errors.New("model: no finite samples to fit")
	// ErrFitFailed indicates the optimizer did not converge to a solution.
	ErrFitFailed = errors.New("model: fit did not converge")
)

// Model evaluates connection probability for a source-target pair from its
// distance and the sign of its depth difference. Forms that do not depend
// on the bipolar covariate ignore it.
type Model interface {
	Eval(dist, bipolar float64) float64
}

// Exponential is the distance-dependent form P(d) = Scale · exp(−Decay·d).
type Exponential struct {
	Scale float64
	Decay float64
}

// Eval implements Model; the bipolar covariate is ignored.
func (e Exponential) Eval(dist, _ float64) float64 {
	return e.Scale * math.Exp(-e.Decay*dist)
}

// BipolarExponential selects an Exponential branch by the sign of the depth
// difference: Below for bipolar < 0, Above for bipolar > 0, and the average
// of both branches at exactly zero.
type BipolarExponential struct {
	Below Exponential
	Above Exponential
}

// Eval implements Model.
func (b BipolarExponential) Eval(dist, bipolar float64) float64 {
	switch {
	case bipolar < 0:
		return b.Below.Eval(dist, bipolar)
	case bipolar > 0:
		return b.Above.Eval(dist, bipolar)
	default:
		return 0.5 * (b.Below.Eval(dist, bipolar) + b.Above.Eval(dist, bipolar))
	}
}

// Quality summarizes goodness of fit over the samples a model was fitted to.
type Quality struct {
	RMSE float64
	R2   float64
}
