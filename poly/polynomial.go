// Package poly implements univariate polynomials over a generic field of coefficients.
//
// A Polynomial[T] pairs a field.Field[T], which provides the coefficient
// arithmetic, with a Store[T], which is either Dense or Sparse. Both
// representations have the same semantics and can be mixed freely: the
// result of a binary operation always takes the representation of its receiver.
//
// Methods suffixed with New, as well as Evaluate, Compose, Quo, Rem, DivMod,
// QuoScalar, Monic and GCD, never modify their operands. The other arithmetic
// methods (Add, Sub, Mul, AddScalar, SubScalar, MulScalar, Neg) update their
// receiver in place. All operands of a binary operation must share the same field.
//
// A Polynomial is not safe for concurrent mutation, but distinct values, or a
// value that is only read, can be shared freely between goroutines.
package poly

import (
	"iter"

	"github.com/google/go-cmp/cmp"

	"github.com/tuneinsight/unipoly/field"
	"github.com/tuneinsight/unipoly/format"
)

// Polynomial is a univariate polynomial with coefficients in T.
type Polynomial[T any] struct {
	field field.Field[T]
	store Store[T]
}

// NewPolynomial returns the polynomial sum coeffs[i] * x^i.
// The coefficients are copied.
func NewPolynomial[T any](f field.Field[T], rep Representation, coeffs []T) (p *Polynomial[T]) {
	p = NewZero(f, rep)
	if rep == Dense {
		p.store = newDenseStore(f, len(coeffs))
	}
	for e, c := range coeffs {
		p.store.Set(e, f.Copy(c))
	}
	return
}

// NewDense returns the dense polynomial sum coeffs[i] * x^i.
func NewDense[T any](f field.Field[T], coeffs []T) *Polynomial[T] {
	return NewPolynomial(f, Dense, coeffs)
}

// NewSparse returns the sparse polynomial sum coeffs[i] * x^i.
func NewSparse[T any](f field.Field[T], coeffs []T) *Polynomial[T] {
	return NewPolynomial(f, Sparse, coeffs)
}

// NewFromSeq returns the polynomial whose i-th coefficient is the i-th value yielded by seq.
func NewFromSeq[T any](f field.Field[T], rep Representation, seq iter.Seq[T]) (p *Polynomial[T]) {
	p = NewZero(f, rep)
	var e int
	for c := range seq {
		p.store.Set(e, f.Copy(c))
		e++
	}
	return
}

// NewZero returns the zero polynomial.
func NewZero[T any](f field.Field[T], rep Representation) *Polynomial[T] {
	return &Polynomial[T]{
		field: f,
		store: NewStore(f, rep, 0),
	}
}

// NewConstant returns the degree-0 polynomial x, or the zero polynomial if x is zero.
func NewConstant[T any](f field.Field[T], rep Representation, x T) *Polynomial[T] {
	return NewMonomial(f, rep, x, 0)
}

// NewMonomial returns the polynomial c * x^e.
func NewMonomial[T any](f field.Field[T], rep Representation, c T, e int) (p *Polynomial[T]) {
	p = NewZero(f, rep)
	p.store.Set(e, f.Copy(c))
	return
}

// Field returns the field of the coefficients.
func (p *Polynomial[T]) Field() field.Field[T] {
	return p.field
}

// Representation returns the storage strategy of p.
func (p *Polynomial[T]) Representation() Representation {
	return p.store.Representation()
}

// Degree returns the degree of p, or -1 if p is the zero polynomial.
func (p *Polynomial[T]) Degree() int {
	return p.store.Degree()
}

// At returns the coefficient of x^e. It returns zero for any e outside [0, Degree()].
// The returned value must not be modified.
func (p *Polynomial[T]) At(e int) T {
	return p.store.At(e)
}

// Leading returns the coefficient of highest degree, or zero for the zero polynomial.
func (p *Polynomial[T]) Leading() T {
	return p.store.At(p.store.Degree())
}

// IsZero returns true if p is the zero polynomial.
func (p *Polynomial[T]) IsZero() bool {
	return p.store.Degree() == -1
}

// Equal returns true if p and q have the same degree and the same coefficients.
func (p *Polynomial[T]) Equal(q *Polynomial[T]) bool {

	if p == q {
		return true
	}

	if sp, ok := p.store.(*sparseStore[T]); ok {
		if sq, ok := q.store.(*sparseStore[T]); ok {
			return cmp.Equal(sp.terms, sq.terms, cmp.Comparer(p.field.Equal))
		}
	}

	deg := p.Degree()

	if deg != q.Degree() {
		return false
	}

	for e := 0; e <= deg; e++ {
		if !p.field.Equal(p.store.At(e), q.store.At(e)) {
			return false
		}
	}

	return true
}

// EqualScalar returns true if p is the constant polynomial x.
func (p *Polynomial[T]) EqualScalar(x T) bool {
	return p.Equal(NewConstant(p.field, p.Representation(), x))
}

// Coefficients returns a copy of the coefficients of p by ascending exponent.
// The returned slice has max(1, Degree()+1) elements, so the constant term is
// present even for the zero polynomial.
func (p *Polynomial[T]) Coefficients() (coeffs []T) {
	coeffs = make([]T, max(1, p.Degree()+1))
	for e := range coeffs {
		coeffs[e] = p.field.Copy(p.store.At(e))
	}
	return
}

// All iterates over the exponents and coefficients in [0, max(1, Degree()+1)),
// zero coefficients included.
func (p *Polynomial[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		n := max(1, p.Degree()+1)
		for e := 0; e < n; e++ {
			if !yield(e, p.store.At(e)) {
				return
			}
		}
	}
}

// Terms iterates over the nonzero coefficients of p by ascending exponent.
func (p *Polynomial[T]) Terms() iter.Seq2[int, T] {
	return p.store.Terms()
}

// CopyNew returns a deep copy of p.
func (p *Polynomial[T]) CopyNew() *Polynomial[T] {
	return &Polynomial[T]{
		field: p.field,
		store: p.store.CopyNew(),
	}
}

// As returns a deep copy of p with the given representation.
func (p *Polynomial[T]) As(rep Representation) (q *Polynomial[T]) {

	if rep == p.Representation() {
		return p.CopyNew()
	}

	q = NewZero(p.field, rep)
	if rep == Dense {
		q.store = newDenseStore(p.field, p.Degree()+1)
	}

	for e, c := range p.store.Terms() {
		q.store.Set(e, p.field.Copy(c))
	}

	return
}

// AsDense returns a dense deep copy of p.
func (p *Polynomial[T]) AsDense() *Polynomial[T] {
	return p.As(Dense)
}

// AsSparse returns a sparse deep copy of p.
func (p *Polynomial[T]) AsSparse() *Polynomial[T] {
	return p.As(Sparse)
}

// String renders p, for instance 3*x^2-x+1.
func (p *Polynomial[T]) String() string {
	return format.Format[T](p, p.field)
}
