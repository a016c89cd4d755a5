package poly

import (
	"iter"

	"github.com/tuneinsight/unipoly/field"
)

// denseStore keeps coefficients in a slice indexed by exponent.
//
// The slice may hold stale zero slots above the degree after a cancellation.
// Zero coefficients are stored as the field's Zero, so that a signed zero
// never reaches the encoding.
// They are never trimmed eagerly: Degree rescans from the end instead, so
// len(coeffs) is an upper bound on Degree()+1 and nothing more.
type denseStore[T any] struct {
	field  field.Field[T]
	coeffs []T
}

func newDenseStore[T any](f field.Field[T], capacity int) *denseStore[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &denseStore[T]{
		field:  f,
		coeffs: make([]T, 0, capacity),
	}
}

func (s *denseStore[T]) Representation() Representation {
	return Dense
}

func (s *denseStore[T]) Degree() int {
	for i := len(s.coeffs) - 1; i >= 0; i-- {
		if !s.field.IsZero(s.coeffs[i]) {
			return i
		}
	}
	return -1
}

func (s *denseStore[T]) At(e int) T {
	if e < 0 || e >= len(s.coeffs) {
		return s.field.Zero()
	}
	return s.coeffs[e]
}

func (s *denseStore[T]) Set(e int, c T) {

	checkExponent(e)

	if e >= len(s.coeffs) {

		if s.field.IsZero(c) {
			return
		}

		for len(s.coeffs) < e {
			s.coeffs = append(s.coeffs, s.field.Zero())
		}

		s.coeffs = append(s.coeffs, c)

		return
	}

	if s.field.IsZero(c) {
		c = s.field.Zero()
	}

	s.coeffs[e] = c
}

func (s *denseStore[T]) Terms() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for e := 0; e < len(s.coeffs); e++ {
			if c := s.coeffs[e]; !s.field.IsZero(c) {
				if !yield(e, c) {
					return
				}
			}
		}
	}
}

func (s *denseStore[T]) Len() int {
	return len(s.coeffs)
}

func (s *denseStore[T]) Reset() {
	s.coeffs = s.coeffs[:0]
}

func (s *denseStore[T]) CopyNew() Store[T] {
	deg := s.Degree()
	cpy := newDenseStore(s.field, deg+1)
	for e := 0; e <= deg; e++ {
		cpy.coeffs = append(cpy.coeffs, s.field.Copy(s.coeffs[e]))
	}
	return cpy
}
