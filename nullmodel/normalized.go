package nullmodel

import (
	"math"
	"math/rand/v2"

	"github.com/montanaflynn/stats"
	gstat "gonum.org/v1/gonum/stat"
	"golang.org/x/sync/errgroup"

	"github.com/connalab/connstat/curve"
	"github.com/connalab/connstat/richclub"
	"github.com/connalab/connstat/sparse"
)

// RandomizedControlCurve returns the per-threshold mean and standard
// deviation of the rich-club curve across opts.Trials independent
// degree-preserving shuffles of m. Trials run concurrently when
// opts.Parallel is set; each trial derives its own PCG stream from
// (opts.Seed, trial), so the result does not depend on scheduling.
func RandomizedControlCurve(m *sparse.Matrix, opts Options) (curve.Band, error) {
	switch opts.Direction {
	case sparse.Efferent, sparse.Afferent:
	default:
		return curve.Band{}, ErrUnknownDirection
	}
	if opts.Trials < 1 {
		return curve.Band{}, ErrTrials
	}

	curves := make([]curve.Curve, opts.Trials)
	trial := func(t int) error {
		src := rand.NewPCG(opts.Seed, uint64(t))
		ctrl, err := DegreeBasedControl(m, opts.Direction, src)
		if err != nil {
			return err
		}
		c, err := richclub.EfficientCurve(ctrl, richclub.EfficientOptions{Direction: opts.Direction})
		if err != nil {
			return err
		}
		curves[t] = c
		return nil
	}
	if opts.Parallel {
		var g errgroup.Group
		for t := 0; t < opts.Trials; t++ {
			g.Go(func() error { return trial(t) })
		}
		if err := g.Wait(); err != nil {
			return curve.Band{}, err
		}
	} else {
		for t := 0; t < opts.Trials; t++ {
			if err := trial(t); err != nil {
				return curve.Band{}, err
			}
		}
	}

	// Shuffles preserve the total edge count but not the maximum effective
	// rank, so trial curves may differ in length; aggregate over the common
	// prefix of the shared ascending-threshold axis.
	n := curves[0].Len()
	for _, c := range curves[1:] {
		if c.Len() < n {
			n = c.Len()
		}
	}
	b := curve.Band{
		X:    make([]float64, n),
		Mean: make([]float64, n),
		Std:  make([]float64, n),
	}
	copy(b.X, curves[0].X[:n])
	sample := make([]float64, 0, opts.Trials)
	for i := 0; i < n; i++ {
		sample = sample[:0]
		for _, c := range curves {
			if !math.IsNaN(c.Y[i]) {
				sample = append(sample, c.Y[i])
			}
		}
		if len(sample) == 0 {
			b.Mean[i] = math.NaN()
			b.Std[i] = math.NaN()
			continue
		}
		b.Mean[i] = gstat.Mean(sample, nil)
		b.Std[i] = math.Sqrt(gstat.PopVariance(sample, nil))
	}
	return b, nil
}

// NormalizedRichClubCurve computes the observed rich-club curve and
// normalizes it against a null model: NormalizeMean divides by the null
// mean, NormalizeStd z-scores against the null band. The output is
// truncated to the common domain length; observed thresholds the null never
// produced carry NaN. Requesting the analytical control on a weighted
// matrix fails with ErrNotBinary before any computation.
func NormalizedRichClubCurve(m *sparse.Matrix, opts Options) (curve.Curve, error) {
	switch opts.Direction {
	case sparse.Efferent, sparse.Afferent:
	default:
		return curve.Curve{}, ErrUnknownDirection
	}
	switch opts.Normalize {
	case NormalizeStd, NormalizeMean:
	default:
		return curve.Curve{}, ErrUnknownNormalize
	}
	switch opts.NormalizeWith {
	case WithShuffled, WithAnalytical:
	default:
		return curve.Curve{}, ErrUnknownNormalizeWith
	}
	if opts.NormalizeWith == WithAnalytical && !m.Binary() {
		return curve.Curve{}, ErrNotBinary
	}

	observed, err := richclub.Curve(m, opts.Direction)
	if err != nil {
		return curve.Curve{}, err
	}

	var ctrl curve.Band
	if opts.NormalizeWith == WithAnalytical {
		ctrl, err = richclub.AnalyticalExpectedCurve(m, opts.Direction)
	} else {
		ctrl, err = RandomizedControlCurve(m, opts)
	}
	if err != nil {
		return curve.Curve{}, err
	}

	at := make(map[float64]int, ctrl.Len())
	for i, x := range ctrl.X {
		at[x] = i
	}

	n := observed.Len()
	if ctrl.Len() < n {
		n = ctrl.Len()
	}
	out := curve.Curve{X: observed.X[:n], Y: make([]float64, n)}
	for i := 0; i < n; i++ {
		k, ok := at[observed.X[i]]
		if !ok {
			out.Y[i] = math.NaN()
			continue
		}
		if opts.Normalize == NormalizeMean {
			out.Y[i] = observed.Y[i] / ctrl.Mean[k]
		} else {
			out.Y[i] = (observed.Y[i] - ctrl.Mean[k]) / ctrl.Std[k]
		}
	}
	return out, nil
}

// Coefficient summarizes rich-club strength as the mean of the z-scored
// curve, ignoring NaN entries from domain mismatches. Returns NaN when no
// point of the curve could be normalized.
func Coefficient(m *sparse.Matrix, opts Options) (float64, error) {
	opts.Normalize = NormalizeStd
	c, err := NormalizedRichClubCurve(m, opts)
	if err != nil {
		return 0, err
	}
	finite := make([]float64, 0, c.Len())
	for _, y := range c.Y {
		if !math.IsNaN(y) {
			finite = append(finite, y)
		}
	}
	if len(finite) == 0 {
		return math.NaN(), nil
	}
	return stats.Mean(finite)
}
