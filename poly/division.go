package poly

import (
	"fmt"
)

// DivMod returns the quotient and the remainder of the long division of p by d,
// such that p = quo * d + rem and rem.Degree() < d.Degree().
// It returns an error wrapping ErrZeroDivisor if d is the zero polynomial.
//
// Every step cancels the leading term of the running remainder by construction,
// so its degree strictly decreases even if T is an approximate type.
func (p *Polynomial[T]) DivMod(d *Polynomial[T]) (quo, rem *Polynomial[T], err error) {

	dd := d.Degree()

	if dd < 0 {
		return nil, nil, fmt.Errorf("cannot DivMod: %w", ErrZeroDivisor)
	}

	f := p.field

	lead := d.store.At(dd)

	rem = p.CopyNew()
	quo = NewZero(f, p.Representation())

	for dr := rem.Degree(); dr >= dd; dr = rem.Degree() {

		ratio := f.Quo(rem.store.At(dr), lead)
		shift := dr - dd

		// rem = rem - ratio * x^shift * d
		for e, c := range d.store.Terms() {
			if e != dd {
				rem.store.Set(e+shift, f.Sub(rem.store.At(e+shift), f.Mul(ratio, c)))
			}
		}

		rem.store.Set(dr, f.Zero())

		// quo = quo + ratio * x^shift
		quo.store.Set(shift, f.Add(quo.store.At(shift), ratio))
	}

	return
}

// Quo returns the quotient of the long division of p by d.
// It returns an error wrapping ErrZeroDivisor if d is the zero polynomial.
func (p *Polynomial[T]) Quo(d *Polynomial[T]) (quo *Polynomial[T], err error) {
	if quo, _, err = p.DivMod(d); err != nil {
		return nil, fmt.Errorf("cannot Quo: %w", err)
	}
	return
}

// Rem returns the remainder of the long division of p by d.
// It returns an error wrapping ErrZeroDivisor if d is the zero polynomial.
func (p *Polynomial[T]) Rem(d *Polynomial[T]) (rem *Polynomial[T], err error) {
	if _, rem, err = p.DivMod(d); err != nil {
		return nil, fmt.Errorf("cannot Rem: %w", err)
	}
	return
}

// QuoScalar returns p / x, which equals the quotient of p by the constant polynomial x.
// It returns an error wrapping ErrZeroDivisor if x is zero.
func (p *Polynomial[T]) QuoScalar(x T) (r *Polynomial[T], err error) {

	x = p.field.Copy(x)

	if p.field.IsZero(x) {
		return nil, fmt.Errorf("cannot QuoScalar: %w", ErrZeroDivisor)
	}

	r = p.CopyNew()

	for e, c := range r.store.Terms() {
		r.store.Set(e, p.field.Quo(c, x))
	}

	return
}

// Monic returns p divided by its leading coefficient.
// It returns an error wrapping ErrZeroDivisor if p is the zero polynomial.
func (p *Polynomial[T]) Monic() (r *Polynomial[T], err error) {

	if p.IsZero() {
		return nil, fmt.Errorf("cannot Monic: %w", ErrZeroDivisor)
	}

	if lead := p.Leading(); !p.field.Equal(lead, p.field.One()) {
		return p.QuoScalar(lead)
	}

	return p.CopyNew(), nil
}

// GCD returns the monic greatest common divisor of p and q, see GCD.
func (p *Polynomial[T]) GCD(q *Polynomial[T]) (*Polynomial[T], error) {
	return GCD(p, q)
}

// GCD returns the monic greatest common divisor of a and b, computed with
// Euclid's algorithm. The result has the representation of a.
// It returns an error wrapping ErrZeroGCD if both a and b are zero.
func GCD[T any](a, b *Polynomial[T]) (gcd *Polynomial[T], err error) {

	if a.IsZero() && b.IsZero() {
		return nil, fmt.Errorf("cannot GCD: %w", ErrZeroGCD)
	}

	A, B := a.CopyNew(), b.As(a.Representation())

	for !B.IsZero() {

		var R *Polynomial[T]
		if R, err = A.Rem(B); err != nil {
			return nil, fmt.Errorf("cannot GCD: %w", err)
		}

		A, B = B, R
	}

	if gcd, err = A.Monic(); err != nil {
		return nil, fmt.Errorf("cannot GCD: %w", err)
	}

	return
}
