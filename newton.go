// Package newton finds roots of scalar functions by Newton–Raphson iteration
// over any numeric representation that implements Field.
package newton

import (
	"errors"
	"fmt"
)

const DefaultMaxIterations = 100

var (
	ErrDerivativeZero       = errors.New("derivative is zero")
	ErrNotFinite            = errors.New("function value is not finite")
	ErrInvalidTolerance     = errors.New("tolerance must be non-negative")
	ErrInvalidMaxIterations = errors.New("max iterations must be positive")
	ErrNoField              = errors.New("solver has no numeric field")
)

type Func[T any] func(T) T

// Field is the arithmetic Solve needs from a numeric representation.
// Implementations must not mutate their arguments.
type Field[T any] interface {
	Sub(a, b T) T
	Quo(a, b T) T
	Abs(a T) T
	Cmp(a, b T) int
	Sign(a T) int
	// Finite reports whether a is a usable value: not NaN or ±Inf for floats,
	// not nil for exact types.
	Finite(a T) bool
	String(a T) string
}

// Step computes one Newton update x - f(x)/df(x).
func Step[T any](fd Field[T], f, df Func[T], x T) (T, error) {
	var zero T
	fx := f(x)
	if !fd.Finite(fx) {
		return zero, fmt.Errorf("%w: f(%s) = %s", ErrNotFinite, fd.String(x), fd.String(fx))
	}
	dfx := df(x)
	if !fd.Finite(dfx) {
		return zero, fmt.Errorf("%w: df(%s) = %s", ErrNotFinite, fd.String(x), fd.String(dfx))
	}
	if fd.Sign(dfx) == 0 {
		return zero, fmt.Errorf("%w: df(%s) = 0", ErrDerivativeZero, fd.String(x))
	}

	delta := fd.Quo(fx, dfx)
	//df(x)がf(x)に比べて小さすぎるとInfになる
	if !fd.Finite(delta) {
		return zero, fmt.Errorf("%w: df(%s) = %s underflows against f = %s",
			ErrDerivativeZero, fd.String(x), fd.String(dfx), fd.String(fx))
	}
	return fd.Sub(x, delta), nil
}

// Solve runs Newton–Raphson iteration from x0 until two consecutive iterates
// differ by at most eps or maxIterations updates have been made.
//
// The returned count is the number of updates performed. It equals
// maxIterations when the tolerance test never succeeded, so callers detect
// non-convergence by comparing the two. When the derivative vanishes the error
// wraps ErrDerivativeZero and x is the zero value of T.
//
// With exact representations the cost of an update grows with the size of the
// iterate, which can double or worse on every step. field.Rat bounds that size
// and fails with ErrNotFinite once it is exceeded; a custom exact Field should
// do the same, or the run may not finish in practice before maxIterations.
func Solve[T any](fd Field[T], f, df Func[T], x0, eps T, maxIterations int) (int, T, error) {
	r, err := iterate(fd, f, df, x0, eps, maxIterations, nil)
	if err != nil {
		var zero T
		return r.Iterations, zero, err
	}
	return r.Iterations, r.X, nil
}

func iterate[T any](fd Field[T], f, df Func[T], x0, eps T, maxIterations int, obs Observer) (Result[T], error) {
	if maxIterations <= 0 {
		return Result[T]{}, fmt.Errorf("%w: %d", ErrInvalidMaxIterations, maxIterations)
	}
	if !fd.Finite(eps) || fd.Sign(eps) < 0 {
		return Result[T]{}, fmt.Errorf("%w: %s", ErrInvalidTolerance, fd.String(eps))
	}
	if !fd.Finite(x0) {
		return Result[T]{}, fmt.Errorf("%w: initial guess %s", ErrNotFinite, fd.String(x0))
	}

	r := Result[T]{X: x0}
	for {
		next, err := Step(fd, f, df, r.X)
		if err != nil {
			return Result[T]{Iterations: r.Iterations}, fmt.Errorf("iteration %d: %w", r.Iterations+1, err)
		}
		r.Step = fd.Abs(fd.Sub(next, r.X))
		r.Converged = fd.Cmp(r.Step, eps) <= 0
		r.X = next
		r.Iterations++
		if obs != nil {
			obs.Iteration(r.Iterations, fd.String(r.X), fd.String(r.Step))
		}
		if r.Converged || r.Iterations >= maxIterations {
			if obs != nil {
				obs.Done(r.Iterations, fd.String(r.X), r.Converged)
			}
			return r, nil
		}
	}
}
