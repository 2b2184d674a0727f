package solver

import (
	"slices"

	"github.com/sw965/omw/parallel"
	"golang.org/x/exp/constraints"

	"github.com/sw965/newton"
)

type Outcome[T any] struct {
	X0     T
	Result newton.Result[T]
	Err    error
}

type Outcomes[T any] []Outcome[T]

// Multistart runs one independent solve per initial guess on p workers.
// Outcomes are in the order of x0s. A failed start is recorded in its Outcome
// and does not stop the others. Observer is dropped because a single observer
// would see the runs interleaved.
func Multistart[T any](s newton.Solver[T], prob newton.Problem[T], x0s []T, eps T, p int) Outcomes[T] {
	n := len(x0s)
	outcomes := make(Outcomes[T], n)
	if n == 0 {
		return outcomes
	}
	if p < 1 {
		p = 1
	}
	if p > n {
		p = n
	}
	s.Observer = nil

	//各ワーカーは自分のidxにしか書き込まない
	_ = parallel.For(n, p, func(workerId, idx int) error {
		x0 := x0s[idx]
		r, err := s.Run(prob, x0, eps)
		outcomes[idx] = Outcome[T]{X0: x0, Result: r, Err: err}
		return nil
	})
	return outcomes
}

func (oc Outcomes[T]) Converged() Outcomes[T] {
	y := make(Outcomes[T], 0, len(oc))
	for _, o := range oc {
		if o.Err == nil && o.Result.Converged {
			y = append(y, o)
		}
	}
	return y
}

// Roots returns the distinct converged roots in ascending order. Two roots
// closer than tol are reported once.
func (oc Outcomes[T]) Roots(fd newton.Field[T], tol T) []T {
	xs := make([]T, 0, len(oc))
	for _, o := range oc.Converged() {
		xs = append(xs, o.Result.X)
	}
	slices.SortFunc(xs, fd.Cmp)

	roots := make([]T, 0, len(xs))
	for _, x := range xs {
		if len(roots) > 0 && fd.Cmp(fd.Abs(fd.Sub(x, roots[len(roots)-1])), tol) <= 0 {
			continue
		}
		roots = append(roots, x)
	}
	return roots
}

// Grid returns n evenly spaced guesses covering [lo, hi].
func Grid[X constraints.Float](lo, hi X, n int) []X {
	switch {
	case n <= 0:
		return nil
	case n == 1:
		return []X{(lo + hi) / 2}
	}
	xs := make([]X, n)
	step := (hi - lo) / X(n-1)
	for i := range xs {
		xs[i] = lo + X(i)*step
	}
	xs[n-1] = hi
	return xs
}
