package field

import (
	"fmt"
	"math/big"
)

// DefaultMaxBits bounds the numerator and denominator of a Rat value.
const DefaultMaxBits = 1 << 16

// Rat is exact rational arithmetic. Every operation allocates a fresh result,
// so values handed to the caller are never aliased.
//
// The size of an exact Newton iterate multiplies with every update, so without
// a bound a run that does not converge takes time exponential in the iteration
// count and the cap stops being a practical limit. Values whose numerator or
// denominator exceeds MaxBits bits are therefore reported as not finite, which
// ends the run with ErrNotFinite. MaxBits of zero means DefaultMaxBits.
type Rat struct {
	MaxBits int
}

func (r Rat) maxBits() int {
	if r.MaxBits <= 0 {
		return DefaultMaxBits
	}
	return r.MaxBits
}

func (Rat) Sub(a, b *big.Rat) *big.Rat {
	return new(big.Rat).Sub(a, b)
}

// Quo panics on a zero divisor like big.Rat.Quo. Solve checks the sign first.
func (Rat) Quo(a, b *big.Rat) *big.Rat {
	return new(big.Rat).Quo(a, b)
}

func (Rat) Abs(a *big.Rat) *big.Rat {
	return new(big.Rat).Abs(a)
}

func (Rat) Cmp(a, b *big.Rat) int {
	return a.Cmp(b)
}

func (Rat) Sign(a *big.Rat) int {
	return a.Sign()
}

func (r Rat) Finite(a *big.Rat) bool {
	if a == nil {
		return false
	}
	max := r.maxBits()
	return a.Num().BitLen() <= max && a.Denom().BitLen() <= max
}

// String writes small values exactly and large ones as a float64 approximation
// with their size, so errors and logs stay readable.
func (Rat) String(a *big.Rat) string {
	if a == nil {
		return "<nil>"
	}
	nb, db := a.Num().BitLen(), a.Denom().BitLen()
	if nb+db <= 256 {
		return a.RatString()
	}
	f, _ := a.Float64()
	return fmt.Sprintf("~%g (%d/%d bits)", f, nb, db)
}

// ParseRat accepts "a/b", decimal ("0.000001") and exponent ("1e-6") forms.
// Decimal input is converted exactly, so "0.1" is 1/10 and not the float64
// nearest to it.
func ParseRat(s string) (*big.Rat, error) {
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		return nil, fmt.Errorf("invalid rational %q", s)
	}
	return r, nil
}

func NewRat(a, b int64) *big.Rat {
	return big.NewRat(a, b)
}
