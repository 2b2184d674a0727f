package field

import (
	"math"
	"strconv"

	"github.com/chewxy/math32"
	"golang.org/x/exp/constraints"
)

// Float is IEEE-754 arithmetic. float32 values go through math32 so that no
// intermediate is widened to float64.
type Float[X constraints.Float] struct{}

func (Float[X]) Sub(a, b X) X {
	return a - b
}

func (Float[X]) Quo(a, b X) X {
	return a / b
}

func (Float[X]) Abs(a X) X {
	switch v := any(a).(type) {
	case float32:
		return X(math32.Abs(v))
	case float64:
		return X(math.Abs(v))
	}
	if a < 0 {
		return -a
	}
	return a
}

func (Float[X]) Cmp(a, b X) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func (Float[X]) Sign(a X) int {
	switch {
	case a < 0:
		return -1
	case a > 0:
		return 1
	}
	return 0
}

func (Float[X]) Finite(a X) bool {
	if v, ok := any(a).(float32); ok {
		return !math32.IsNaN(v) && !math32.IsInf(v, 0)
	}
	v := float64(a)
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func (Float[X]) String(a X) string {
	if v, ok := any(a).(float32); ok {
		return strconv.FormatFloat(float64(v), 'g', -1, 32)
	}
	return strconv.FormatFloat(float64(a), 'g', -1, 64)
}

type Float64 = Float[float64]
type Float32 = Float[float32]
