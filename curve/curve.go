package curve

import (
	"errors"

	"gonum.org/v1/gonum/integrate"
)

// ErrLengthMismatch indicates X and Y slices of differing lengths.
var ErrLengthMismatch = errors.New("curve: x and y must have the same length")

// Curve is a finite ordered sequence of (x, y) samples. X is typically a
// normalized rank or a degree threshold and must be non-decreasing.
type Curve struct {
	X []float64
	Y []float64
}

// New returns a Curve over the given samples.
func New(x, y []float64) (Curve, error) {
	if len(x) != len(y) {
		return Curve{}, ErrLengthMismatch
	}
	return Curve{X: x, Y: y}, nil
}

// Len returns the number of samples.
func (c Curve) Len() int { return len(c.X) }

// Trapezoid integrates y over x with the trapezoid rule.
func (c Curve) Trapezoid() float64 {
	if c.Len() < 2 {
		return 0
	}
	return integrate.Trapezoidal(c.X, c.Y)
}

// Truncate returns a Curve restricted to the first n samples. It shares the
// receiver's backing arrays.
func (c Curve) Truncate(n int) Curve {
	if n >= c.Len() {
		return c
	}
	return Curve{X: c.X[:n], Y: c.Y[:n]}
}

// Band is a null-model curve: per-x mean and standard deviation of a
// statistic under the model.
type Band struct {
	X    []float64
	Mean []float64
	Std  []float64
}

// Len returns the number of samples.
func (b Band) Len() int { return len(b.X) }
