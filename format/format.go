// Package format renders polynomials as human readable expressions.
package format

import (
	"strconv"
	"strings"

	"github.com/tuneinsight/unipoly/field"
)

// Coefficients is the read access a polynomial must offer to be rendered.
type Coefficients[T any] interface {
	Degree() int
	At(e int) T
}

// Format renders p in the variable x, from the highest exponent down.
//
// A coefficient of magnitude one is omitted, as are the exponent of x^1 and
// the factor x^0. The zero polynomial is rendered as the zero of the field.
// If f implements field.Signed, negative coefficients are written as a
// subtraction, for instance 3*x^2-x+1. Otherwise every nonzero coefficient
// is treated as positive.
func Format[T any](p Coefficients[T], f field.Field[T]) string {

	signed, isSigned := f.(field.Signed[T])

	sign := func(c T) int {
		if isSigned {
			return signed.Sign(c)
		}
		if f.IsZero(c) {
			return 0
		}
		return 1
	}

	abs := func(c T) T {
		if isSigned {
			return signed.Abs(c)
		}
		return c
	}

	var sb strings.Builder

	deg := p.Degree()

	for e := deg; e > 0; e-- {

		c := p.At(e)

		s := sign(c)

		if s == 0 {
			continue
		}

		if s > 0 && e != deg {
			sb.WriteByte('+')
		} else if s < 0 {
			sb.WriteByte('-')
		}

		if a := abs(c); !f.Equal(a, f.One()) {
			sb.WriteString(f.String(a))
			sb.WriteByte('*')
		}

		sb.WriteByte('x')

		if e != 1 {
			sb.WriteByte('^')
			sb.WriteString(strconv.Itoa(e))
		}
	}

	c := p.At(0)

	if sign(c) > 0 && deg > 0 {
		sb.WriteByte('+')
	}

	if !f.IsZero(c) || deg == -1 {
		sb.WriteString(f.String(c))
	}

	return sb.String()
}
