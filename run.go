package newton

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/sw965/newton/field"
)

type Problem[T any] struct {
	Name string
	F    Func[T]
	DF   Func[T]
}

type Result[T any] struct {
	Iterations int
	X          T
	//最後の更新量 |x_n - x_{n-1}|
	Step      T
	Converged bool
}

// Observer receives each update of a run. Values are pre-formatted by the
// Field so that one Observer serves every representation.
type Observer interface {
	Iteration(n int, x, step string)
	Done(iterations int, x string, converged bool)
}

type Solver[T any] struct {
	// Field is required; Run fails with ErrNoField when it is nil.
	Field Field[T]
	// MaxIterations of zero means DefaultMaxIterations.
	MaxIterations int
	Observer      Observer
}

func (s *Solver[T]) maxIterations() int {
	if s.MaxIterations == 0 {
		return DefaultMaxIterations
	}
	return s.MaxIterations
}

func (s *Solver[T]) Run(p Problem[T], x0, eps T) (Result[T], error) {
	if s.Field == nil {
		return Result[T]{}, ErrNoField
	}
	r, err := iterate(s.Field, p.F, p.DF, x0, eps, s.maxIterations(), s.Observer)
	if err != nil && p.Name != "" {
		return r, fmt.Errorf("%s: %w", p.Name, err)
	}
	return r, err
}

func SolveFloat[X constraints.Float](f, df func(X) X, x0, eps X) (int, X, error) {
	return Solve[X](field.Float[X]{}, f, df, x0, eps, DefaultMaxIterations)
}
