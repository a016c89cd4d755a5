// Package field defines the coefficient arithmetic used by the polynomial engine
// and provides adapters for common coefficient types.
//
// Go has no operator overloading, so a polynomial over T performs every
// coefficient operation through a Field[T] value. The adapters of this package are:
//
//   - Numbers and Reals: builtin floating point and complex types.
//   - Rationals: exact arithmetic over *big.Rat.
//   - BigFloats: arbitrary precision floating point over *big.Float.
//   - PrimeField: exact arithmetic over the integers modulo a prime q < 2^63.
//
// Approximate types (Numbers, Reals, BigFloats) compare coefficients against zero
// exactly. Values that should cancel may leave a small residue after rounding, in
// which case a polynomial keeps a term that would vanish over an exact field. This
// is a property of the coefficient type and is not masked by the engine.
package field

import (
	"github.com/tuneinsight/unipoly/utils/buffer"
	"github.com/tuneinsight/unipoly/utils/sampling"
)

// Field is the set of operations a coefficient type must support.
// Implementations must return fresh values from every arithmetic operation,
// never one of their operands, so that coefficients are never shared between
// two polynomials.
type Field[T any] interface {
	// Zero returns the additive identity.
	Zero() T
	// One returns the multiplicative identity.
	One() T
	// FromInt64 returns the image of x in the field.
	FromInt64(x int64) T
	Add(a, b T) T
	Sub(a, b T) T
	Mul(a, b T) T
	// Quo returns a/b. The caller guarantees that b is not zero.
	Quo(a, b T) T
	Neg(a T) T
	Equal(a, b T) bool
	IsZero(a T) bool
	// Copy returns a deep copy of a.
	Copy(a T) T
	String(a T) string
}

// Signed is implemented by ordered fields. It is used to render
// polynomials with explicit signs.
type Signed[T any] interface {
	// Sign returns -1, 0 or 1.
	Sign(a T) int
	Abs(a T) T
}

// Codec is implemented by fields whose elements can be serialized.
type Codec[T any] interface {
	// BinarySize returns the number of bytes WriteElement writes for a.
	BinarySize(a T) int
	WriteElement(w buffer.Writer, a T) (n int64, err error)
	ReadElement(r buffer.Reader) (a T, n int64, err error)
}

// Sampler is implemented by fields from which random elements can be drawn.
type Sampler[T any] interface {
	Sample(prng sampling.PRNG) (a T, err error)
}

// FromInt64s maps a slice of integers into the field.
func FromInt64s[T any](f Field[T], x ...int64) (y []T) {
	y = make([]T, len(x))
	for i := range x {
		y[i] = f.FromInt64(x[i])
	}
	return
}
