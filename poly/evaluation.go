package poly

// Evaluate returns p(x) computed with Horner's method.
// The zero polynomial evaluates to zero.
func (p *Polynomial[T]) Evaluate(x T) (y T) {

	f := p.field

	y = f.Zero()

	for e := p.Degree(); e >= 0; e-- {
		y = f.Add(f.Mul(y, x), p.store.At(e))
	}

	return
}

// Compose returns p(q), the polynomial obtained by substituting q for the
// variable of p.
//
// Horner's method is applied with polynomial products, so the cost is
// dominated by deg p multiplications by q of growing size, which makes
// Compose the most expensive operation of the package.
func (p *Polynomial[T]) Compose(q *Polynomial[T]) (r *Polynomial[T]) {

	r = NewZero(p.field, p.Representation())

	for e := p.Degree(); e >= 0; e-- {
		r.Mul(q)
		r.AddScalar(p.store.At(e))
	}

	return
}
