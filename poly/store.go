package poly

import (
	"fmt"
	"iter"

	"github.com/tuneinsight/unipoly/field"
)

// Representation selects the storage strategy of a polynomial.
type Representation int

const (
	// Dense stores the coefficients contiguously, indexed by exponent.
	Dense = Representation(0)
	// Sparse stores only the nonzero coefficients, keyed by exponent.
	Sparse = Representation(1)
)

func (rep Representation) String() string {
	switch rep {
	case Dense:
		return "Dense"
	case Sparse:
		return "Sparse"
	default:
		return fmt.Sprintf("Representation(%d)", int(rep))
	}
}

// Store is the storage capability behind a Polynomial. Both implementations
// answer the same queries with the same results; they only differ in cost.
//
// A Store never reports a nonzero coefficient above Degree(). Coefficients
// passed to Set are owned by the store from then on.
type Store[T any] interface {
	Representation() Representation

	// Degree returns the largest exponent with a nonzero coefficient, or -1.
	Degree() int

	// At returns the coefficient at exponent e, or zero if e is out of range.
	At(e int) T

	// Set sets the coefficient at exponent e >= 0.
	Set(e int, c T)

	// Terms iterates over the nonzero coefficients by ascending exponent.
	// The store may be modified while iterating.
	Terms() iter.Seq2[int, T]

	// Len returns the number of physically stored coefficients, which
	// is not necessarily Degree()+1.
	Len() int

	// Reset makes the store represent the zero polynomial.
	Reset()

	CopyNew() Store[T]
}

// NewStore returns an empty store with the given representation.
// For dense stores, capacity is the number of coefficient slots to preallocate.
func NewStore[T any](f field.Field[T], rep Representation, capacity int) Store[T] {
	switch rep {
	case Dense:
		return newDenseStore(f, capacity)
	case Sparse:
		return newSparseStore(f)
	default:
		panic(fmt.Errorf("invalid representation: %s", rep))
	}
}

func checkExponent(e int) {
	if e < 0 {
		panic(fmt.Errorf("invalid exponent: %d < 0", e))
	}
}
