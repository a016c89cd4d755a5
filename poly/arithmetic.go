package poly

// Add sets p to p + q.
func (p *Polynomial[T]) Add(q *Polynomial[T]) {
	p.combine(q, p.field.Add)
}

// AddNew returns p + q.
func (p *Polynomial[T]) AddNew(q *Polynomial[T]) (r *Polynomial[T]) {
	r = p.CopyNew()
	r.Add(q)
	return
}

// Sub sets p to p - q.
func (p *Polynomial[T]) Sub(q *Polynomial[T]) {
	p.combine(q, p.field.Sub)
}

// SubNew returns p - q.
func (p *Polynomial[T]) SubNew(q *Polynomial[T]) (r *Polynomial[T]) {
	r = p.CopyNew()
	r.Sub(q)
	return
}

// combine sets p[e] to op(p[e], q[e]) for every nonzero coefficient of q.
// op must satisfy op(a, 0) = a.
func (p *Polynomial[T]) combine(q *Polynomial[T], op func(a, b T) T) {

	if p == q {
		q = q.CopyNew()
	}

	for e, c := range q.store.Terms() {
		p.store.Set(e, op(p.store.At(e), c))
	}
}

// Neg sets p to -p.
func (p *Polynomial[T]) Neg() {
	for e, c := range p.store.Terms() {
		p.store.Set(e, p.field.Neg(c))
	}
}

// NegNew returns -p.
func (p *Polynomial[T]) NegNew() (r *Polynomial[T]) {
	r = p.CopyNew()
	r.Neg()
	return
}

// AddScalar sets p to p + x, that is p plus the constant polynomial x.
func (p *Polynomial[T]) AddScalar(x T) {
	x = p.field.Copy(x)
	p.store.Set(0, p.field.Add(p.store.At(0), x))
}

// AddScalarNew returns p + x.
func (p *Polynomial[T]) AddScalarNew(x T) (r *Polynomial[T]) {
	r = p.CopyNew()
	r.AddScalar(x)
	return
}

// SubScalar sets p to p - x.
func (p *Polynomial[T]) SubScalar(x T) {
	x = p.field.Copy(x)
	p.store.Set(0, p.field.Sub(p.store.At(0), x))
}

// SubScalarNew returns p - x.
func (p *Polynomial[T]) SubScalarNew(x T) (r *Polynomial[T]) {
	r = p.CopyNew()
	r.SubScalar(x)
	return
}

// MulScalar sets p to x * p. A zero x yields the zero polynomial.
func (p *Polynomial[T]) MulScalar(x T) {

	x = p.field.Copy(x)

	if p.field.IsZero(x) {
		p.store.Reset()
		return
	}

	for e, c := range p.store.Terms() {
		p.store.Set(e, p.field.Mul(c, x))
	}
}

// MulScalarNew returns x * p.
func (p *Polynomial[T]) MulScalarNew(x T) (r *Polynomial[T]) {
	r = p.CopyNew()
	r.MulScalar(x)
	return
}

// Mul sets p to p * q.
// The product is the schoolbook convolution and costs (deg p + 1) * (deg q + 1)
// coefficient multiplications.
func (p *Polynomial[T]) Mul(q *Polynomial[T]) {
	p.store = p.mul(q)
}

// MulNew returns p * q.
func (p *Polynomial[T]) MulNew(q *Polynomial[T]) *Polynomial[T] {
	return &Polynomial[T]{
		field: p.field,
		store: p.mul(q),
	}
}

func (p *Polynomial[T]) mul(q *Polynomial[T]) (out Store[T]) {

	f := p.field

	dp, dq := p.Degree(), q.Degree()

	if dp < 0 || dq < 0 {
		return NewStore(f, p.Representation(), 0)
	}

	out = NewStore(f, p.Representation(), dp+dq+1)

	for i, a := range p.store.Terms() {
		for j, b := range q.store.Terms() {
			out.Set(i+j, f.Add(out.At(i+j), f.Mul(a, b)))
		}
	}

	return
}
