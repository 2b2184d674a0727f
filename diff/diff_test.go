package diff_test

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/num/dual"

	"github.com/sw965/newton"
	"github.com/sw965/newton/diff"
	"github.com/sw965/newton/field"
)

func TestCentral(t *testing.T) {
	df := diff.Central(math.Sin, 1e-5)
	for _, x := range []float64{0, 0.5, 1, 2} {
		if got := df(x); !scalar.EqualWithinAbs(got, math.Cos(x), 1e-8) {
			t.Errorf("d/dx sin at %v = %v, want %v", x, got, math.Cos(x))
		}
	}

	cube := diff.Central(func(x float64) float64 { return x * x * x }, 0)
	if got := cube(2); !scalar.EqualWithinAbs(got, 12, 1e-6) {
		t.Errorf("default step: d/dx x³ at 2 = %v", got)
	}
}

func TestDual(t *testing.T) {
	// x·e^x - 1
	f, df := diff.Dual(func(x dual.Number) dual.Number {
		return dual.Sub(dual.Mul(x, dual.Exp(x)), dual.Number{Real: 1})
	})
	if got := f(0); got != -1 {
		t.Errorf("f(0) = %v, want -1", got)
	}
	if got := df(1); !scalar.EqualWithinAbs(got, 2*math.E, 1e-12) {
		t.Errorf("df(1) = %v, want %v", got, 2*math.E)
	}

	// the Omega constant
	n, x, err := newton.Solve[float64](field.Float64{}, f, df, 1, 1e-12, newton.DefaultMaxIterations)
	if err != nil {
		t.Fatal(err)
	}
	if !scalar.EqualWithinAbs(x, 0.5671432904097838, 1e-12) {
		t.Errorf("root = %v", x)
	}
	if n >= newton.DefaultMaxIterations {
		t.Errorf("did not converge: %d iterations", n)
	}
}

func TestCentralDrivesSolve(t *testing.T) {
	f := func(x float64) float64 { return math.Cos(x) - x }
	n, x, err := newton.Solve[float64](field.Float64{}, f, diff.Central(f, 1e-6), 1, 1e-10, newton.DefaultMaxIterations)
	if err != nil {
		t.Fatal(err)
	}
	if !scalar.EqualWithinAbs(x, 0.7390851332151607, 1e-9) {
		t.Errorf("root = %v", x)
	}
	if n >= newton.DefaultMaxIterations {
		t.Errorf("did not converge: %d iterations", n)
	}
}
