package demo

import (
	"fmt"
	"math/big"

	"github.com/sw965/newton"
)

type Demo struct {
	Index int
	Name  string
	Poly  Polynomial
	// X0 is exact so that the float and rational runs start from the same point.
	X0 *big.Rat
}

var Demos = []Demo{
	{Index: 1, Name: "sqrt2", Poly: Polynomial{1, 0, -2}, X0: big.NewRat(3, 2)},
	{Index: 2, Name: "unit", Poly: Polynomial{1, 0, -1}, X0: big.NewRat(2, 1)},
	{Index: 3, Name: "cycle", Poly: Polynomial{1, 0, -2, 2}, X0: big.NewRat(0, 1)},
	{Index: 4, Name: "double-root", Poly: Polynomial{1, 0, 0}, X0: big.NewRat(1, 1)},
	{Index: 5, Name: "plastic", Poly: Polynomial{1, 0, -1, -1}, X0: big.NewRat(3, 2)},
	{Index: 6, Name: "flat-start", Poly: Polynomial{1, 0, 0}, X0: big.NewRat(0, 1)},
}

func Lookup(index int) (Demo, error) {
	for _, d := range Demos {
		if d.Index == index {
			return d, nil
		}
	}
	return Demo{}, fmt.Errorf("unknown demo function %d (have 1-%d)", index, len(Demos))
}

func (d Demo) String() string {
	return fmt.Sprintf("%d: %s  f(x) = %s", d.Index, d.Name, d.Poly)
}

func (d Demo) Float64X0() float64 {
	x, _ := d.X0.Float64()
	return x
}

func (d Demo) Float64() newton.Problem[float64] {
	df := d.Poly.Derivative()
	return newton.Problem[float64]{Name: d.Name, F: d.Poly.Float64, DF: df.Float64}
}

func (d Demo) Float32() newton.Problem[float32] {
	df := d.Poly.Derivative()
	return newton.Problem[float32]{Name: d.Name, F: d.Poly.Float32, DF: df.Float32}
}

func (d Demo) Rat() newton.Problem[*big.Rat] {
	df := d.Poly.Derivative()
	return newton.Problem[*big.Rat]{Name: d.Name, F: d.Poly.Rat, DF: df.Rat}
}
