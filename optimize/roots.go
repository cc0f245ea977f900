// Package optimize provides scalar root-finding routines used to calibrate
// generated datasets to a target signal-to-noise ratio.
//
// The API mirrors the bracketing-plus-bisection workflow of scipy.optimize:
// FindBisectInterval grows an interval until it brackets a sign change of the
// objective, and Bisect locates the root inside the bracket to a fixed
// absolute tolerance.
package optimize

import (
	"math"

	"github.com/YuminosukeSato/simreg/pkg/errors"
)

// Func is a scalar objective function.
type Func func(x float64) float64

// Default tolerances, matching scipy.optimize.bisect.
const (
	// DefaultXTol is the absolute width at which a bracketing interval is
	// considered converged.
	DefaultXTol = 2e-12

	// DefaultMaxIter bounds the number of bisection steps.
	DefaultMaxIter = 100
)

// maxExpansions bounds the geometric interval growth in FindBisectInterval
// at a span growth of 2^64.
const maxExpansions = 64

// FindBisectInterval expands [low, high] until it brackets a sign change of f.
//
// The low end stays anchored; the span is doubled on every expansion. The
// returned pair satisfies f(low) == 0, f(high) == 0, or sign(f(low)) !=
// sign(f(high)), so it is a valid input bracket for Bisect.
//
// A *errors.BracketError is returned when no sign change appears within the
// expansion budget, and a *errors.NumericalInstabilityError when f evaluates
// to NaN or Inf at any probed point.
func FindBisectInterval(f Func, low, high float64) (float64, float64, error) {
	const op = "FindBisectInterval"

	fLow := f(low)
	if err := errors.CheckScalar(op, fLow, 0); err != nil {
		return 0, 0, err
	}

	fHigh := f(high)
	span := high - low
	expansions := 0
	for {
		if err := errors.CheckScalar(op, fHigh, expansions); err != nil {
			return 0, 0, err
		}
		if fLow == 0 || fHigh == 0 || (fLow < 0) != (fHigh < 0) {
			return low, high, nil
		}
		if expansions >= maxExpansions {
			return 0, 0, errors.NewBracketError(op, low, high, fLow, fHigh, expansions)
		}

		span *= 2
		high = low + span
		fHigh = f(high)
		expansions++
	}
}

// Bisect finds a root of f inside the bracketing interval [low, high] using
// the default tolerance and iteration budget.
func Bisect(f Func, low, high float64) (float64, error) {
	return BisectTol(f, low, high, DefaultXTol, DefaultMaxIter)
}

// BisectTol finds a root of f inside [low, high] by bisection, stopping when
// the half-interval width drops below xtol or f hits an exact zero.
//
// f(low) and f(high) must have different signs (or one of them must be an
// exact root); otherwise a *errors.ValueError is returned. If the interval
// fails to shrink below xtol within maxIter steps, a
// *errors.ConvergenceError is returned.
func BisectTol(f Func, low, high, xtol float64, maxIter int) (float64, error) {
	const op = "Bisect"

	fLow := f(low)
	if err := errors.CheckScalar(op, fLow, 0); err != nil {
		return 0, err
	}
	if fLow == 0 {
		return low, nil
	}

	fHigh := f(high)
	if err := errors.CheckScalar(op, fHigh, 0); err != nil {
		return 0, err
	}
	if fHigh == 0 {
		return high, nil
	}

	if (fLow < 0) == (fHigh < 0) {
		return 0, errors.NewValueError(op, "f(low) and f(high) must have different signs")
	}

	// Classic bisection: halve the step each iteration and advance the
	// anchor to the midpoint whenever the midpoint shares f(low)'s sign.
	dm := high - low
	x := low
	for i := 0; i < maxIter; i++ {
		dm /= 2
		mid := x + dm
		fMid := f(mid)
		if err := errors.CheckScalar(op, fMid, i); err != nil {
			return 0, err
		}

		if (fMid < 0) == (fLow < 0) {
			x = mid
		}
		if fMid == 0 || math.Abs(dm) < xtol {
			return mid, nil
		}
	}

	return 0, errors.NewConvergenceError(op, maxIter, math.Abs(dm))
}
