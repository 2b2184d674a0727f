package demo

import (
	"fmt"
	"math/big"
	"strings"
)

// Polynomial holds integer coefficients, highest degree first.
type Polynomial []int64

func (p Polynomial) Degree() int {
	return len(p) - 1
}

func (p Polynomial) Derivative() Polynomial {
	n := p.Degree()
	if n < 1 {
		return Polynomial{0}
	}
	d := make(Polynomial, n)
	for i := 0; i < n; i++ {
		d[i] = p[i] * int64(n-i)
	}
	return d
}

func (p Polynomial) Float64(x float64) float64 {
	y := 0.0
	for _, c := range p {
		y = y*x + float64(c)
	}
	return y
}

func (p Polynomial) Float32(x float32) float32 {
	var y float32
	for _, c := range p {
		y = y*x + float32(c)
	}
	return y
}

func (p Polynomial) Rat(x *big.Rat) *big.Rat {
	y := new(big.Rat)
	c := new(big.Rat)
	for _, e := range p {
		y.Mul(y, x)
		y.Add(y, c.SetInt64(e))
	}
	return y
}

func (p Polynomial) String() string {
	n := p.Degree()
	var sb strings.Builder
	for i, c := range p {
		if c == 0 {
			continue
		}
		deg := n - i
		abs := c
		if c < 0 {
			abs = -c
		}

		switch {
		case sb.Len() == 0 && c < 0:
			sb.WriteString("-")
		case sb.Len() > 0 && c < 0:
			sb.WriteString(" - ")
		case sb.Len() > 0:
			sb.WriteString(" + ")
		}

		if abs != 1 || deg == 0 {
			fmt.Fprintf(&sb, "%d", abs)
		}
		switch deg {
		case 0:
		case 1:
			sb.WriteString("x")
		default:
			fmt.Fprintf(&sb, "x^%d", deg)
		}
	}
	if sb.Len() == 0 {
		return "0"
	}
	return sb.String()
}
