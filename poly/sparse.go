package poly

import (
	"iter"

	"github.com/tuneinsight/unipoly/field"
	"github.com/tuneinsight/unipoly/utils"
)

// sparseStore keeps the nonzero coefficients in a map keyed by exponent.
// Zero coefficients are deleted as soon as they are set, so the map is
// always minimal.
type sparseStore[T any] struct {
	field field.Field[T]
	terms map[int]T
}

func newSparseStore[T any](f field.Field[T]) *sparseStore[T] {
	return &sparseStore[T]{
		field: f,
		terms: map[int]T{},
	}
}

func (s *sparseStore[T]) Representation() Representation {
	return Sparse
}

func (s *sparseStore[T]) Degree() int {
	return utils.MaxKey(s.terms, -1)
}

func (s *sparseStore[T]) At(e int) T {
	if c, ok := s.terms[e]; ok {
		return c
	}
	return s.field.Zero()
}

func (s *sparseStore[T]) Set(e int, c T) {

	checkExponent(e)

	if s.field.IsZero(c) {
		delete(s.terms, e)
		return
	}

	s.terms[e] = c
}

func (s *sparseStore[T]) Terms() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for _, e := range utils.GetSortedKeys(s.terms) {
			c, ok := s.terms[e]
			if !ok {
				continue
			}
			if !yield(e, c) {
				return
			}
		}
	}
}

func (s *sparseStore[T]) Len() int {
	return len(s.terms)
}

func (s *sparseStore[T]) Reset() {
	clear(s.terms)
}

func (s *sparseStore[T]) CopyNew() Store[T] {
	cpy := newSparseStore(s.field)
	for e, c := range s.terms {
		cpy.terms[e] = s.field.Copy(c)
	}
	return cpy
}
