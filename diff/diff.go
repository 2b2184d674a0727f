package diff

import (
	"golang.org/x/exp/constraints"
	"gonum.org/v1/gonum/num/dual"
)

const DefaultStep = 0.0001

func CentralDifference[X constraints.Float](plusY, minusY, h X) X {
	return (plusY - minusY) / (2.0 * h)
}

// Central returns the central-difference approximation of f'. A step h <= 0
// falls back to DefaultStep. The truncation error is O(h²), so a tolerance
// tighter than that makes little sense with the resulting derivative.
func Central[X constraints.Float](f func(X) X, h X) func(X) X {
	if h <= 0 {
		h = X(DefaultStep)
	}
	return func(x X) X {
		return CentralDifference(f(x+h), f(x-h), h)
	}
}

// Dual splits a function written over dual numbers into the value and the
// derivative. Both are exact up to float64 rounding; no step size is involved.
func Dual(fn func(dual.Number) dual.Number) (f, df func(float64) float64) {
	f = func(x float64) float64 {
		return fn(dual.Number{Real: x}).Real
	}
	df = func(x float64) float64 {
		return fn(dual.Number{Real: x, Emag: 1}).Emag
	}
	return f, df
}
