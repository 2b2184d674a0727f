package solver_test

import (
	"errors"
	"math"
	"math/big"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/sw965/newton"
	"github.com/sw965/newton/demo"
	"github.com/sw965/newton/field"
	"github.com/sw965/newton/solver"
)

func TestGrid(t *testing.T) {
	xs := solver.Grid(-2.0, 2.0, 5)
	want := []float64{-2, -1, 0, 1, 2}
	if len(xs) != len(want) {
		t.Fatalf("len = %d", len(xs))
	}
	for i := range want {
		if xs[i] != want[i] {
			t.Errorf("xs[%d] = %v, want %v", i, xs[i], want[i])
		}
	}
	if got := solver.Grid(0.0, 1.0, 1); len(got) != 1 || got[0] != 0.5 {
		t.Errorf("single guess = %v", got)
	}
	if got := solver.Grid(0.0, 1.0, 0); got != nil {
		t.Errorf("zero guesses = %v", got)
	}
}

func TestMultistartCubic(t *testing.T) {
	// (x+2)(x-1)(x-3) = x³ - 2x² - 5x + 6
	p := demo.Polynomial{1, -2, -5, 6}
	prob := newton.Problem[float64]{Name: "cubic", F: p.Float64, DF: p.Derivative().Float64}
	s := newton.Solver[float64]{Field: field.Float64{}}

	x0s := solver.Grid(-4.0, 5.0, 37)
	outcomes := solver.Multistart(s, prob, x0s, 1e-10, 4)
	if len(outcomes) != len(x0s) {
		t.Fatalf("got %d outcomes for %d guesses", len(outcomes), len(x0s))
	}
	for i, o := range outcomes {
		if o.X0 != x0s[i] {
			t.Errorf("outcome %d has x0 %v, want %v", i, o.X0, x0s[i])
		}
	}

	roots := outcomes.Roots(field.Float64{}, 1e-8)
	want := []float64{-2, 1, 3}
	if len(roots) != len(want) {
		t.Fatalf("roots = %v, want %v", roots, want)
	}
	for i := range want {
		if !scalar.EqualWithinAbs(roots[i], want[i], 1e-8) {
			t.Errorf("roots[%d] = %v, want %v", i, roots[i], want[i])
		}
	}
}

func TestMultistartMatchesSequential(t *testing.T) {
	d, err := demo.Lookup(5)
	if err != nil {
		t.Fatal(err)
	}
	s := newton.Solver[float64]{Field: field.Float64{}}
	x0s := solver.Grid(0.5, 3.0, 11)

	par := solver.Multistart(s, d.Float64(), x0s, 1e-9, 3)
	seq := solver.Multistart(s, d.Float64(), x0s, 1e-9, 1)
	for i := range x0s {
		if (par[i].Err == nil) != (seq[i].Err == nil) {
			t.Fatalf("guess %v: errors differ: %v vs %v", x0s[i], par[i].Err, seq[i].Err)
		}
		if par[i].Result.X != seq[i].Result.X || par[i].Result.Iterations != seq[i].Result.Iterations {
			t.Errorf("guess %v: parallel %+v, sequential %+v", x0s[i], par[i].Result, seq[i].Result)
		}
	}
}

func TestMultistartRecordsFailures(t *testing.T) {
	p := demo.Polynomial{1, 0, 0}
	prob := newton.Problem[float64]{Name: "square", F: p.Float64, DF: p.Derivative().Float64}
	s := newton.Solver[float64]{Field: field.Float64{}}

	outcomes := solver.Multistart(s, prob, []float64{0, 1}, 1e-6, 8)
	if !errors.Is(outcomes[0].Err, newton.ErrDerivativeZero) {
		t.Errorf("x0 = 0: err = %v, want ErrDerivativeZero", outcomes[0].Err)
	}
	if outcomes[1].Err != nil || !outcomes[1].Result.Converged {
		t.Errorf("x0 = 1: %+v", outcomes[1])
	}
	if got := len(outcomes.Converged()); got != 1 {
		t.Errorf("converged = %d, want 1", got)
	}
}

func TestMultistartRational(t *testing.T) {
	d, err := demo.Lookup(1)
	if err != nil {
		t.Fatal(err)
	}
	s := newton.Solver[*big.Rat]{Field: field.Rat{}}
	x0s := []*big.Rat{big.NewRat(-3, 2), big.NewRat(1, 1), big.NewRat(3, 2)}

	outcomes := solver.Multistart(s, d.Rat(), x0s, big.NewRat(1, 1000000), 2)
	roots := outcomes.Roots(field.Rat{}, big.NewRat(1, 1000))
	if len(roots) != 2 {
		t.Fatalf("roots = %v, want ±√2", roots)
	}
	lo, _ := roots[0].Float64()
	hi, _ := roots[1].Float64()
	if !scalar.EqualWithinAbs(lo, -math.Sqrt2, 1e-6) || !scalar.EqualWithinAbs(hi, math.Sqrt2, 1e-6) {
		t.Errorf("roots = %v, %v", lo, hi)
	}
}
