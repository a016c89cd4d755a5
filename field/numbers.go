package field

import (
	"fmt"
	"math"

	"github.com/tuneinsight/unipoly/utils/buffer"
	"github.com/tuneinsight/unipoly/utils/sampling"
)

// Real is the set of builtin floating point types.
// Named types are excluded since the adapters convert through the builtin types.
type Real interface {
	float32 | float64
}

// Number is the set of builtin types with field-like arithmetic.
type Number interface {
	Real | complex64 | complex128
}

// Numbers is the Field of a builtin floating point or complex type.
// Comparisons are exact, see the package documentation.
type Numbers[T Number] struct{}

func (Numbers[T]) Zero() T {
	return 0
}

func (Numbers[T]) One() T {
	return 1
}

func (Numbers[T]) FromInt64(x int64) T {
	var t T
	switch any(t).(type) {
	case float32:
		return any(float32(x)).(T)
	case float64:
		return any(float64(x)).(T)
	case complex64:
		return any(complex(float32(x), 0)).(T)
	case complex128:
		return any(complex(float64(x), 0)).(T)
	default:
		panic(fmt.Errorf("invalid T: %T is not a float or complex type", t))
	}
}

func (Numbers[T]) Add(a, b T) T {
	return a + b
}

func (Numbers[T]) Sub(a, b T) T {
	return a - b
}

func (Numbers[T]) Mul(a, b T) T {
	return a * b
}

func (Numbers[T]) Quo(a, b T) T {
	return a / b
}

func (Numbers[T]) Neg(a T) T {
	return -a
}

func (Numbers[T]) Equal(a, b T) bool {
	return a == b
}

func (Numbers[T]) IsZero(a T) bool {
	return a == 0
}

func (Numbers[T]) Copy(a T) T {
	return a
}

func (Numbers[T]) String(a T) string {
	return fmt.Sprint(a)
}

// BinarySize returns 8 bytes per real component.
func (Numbers[T]) BinarySize(a T) int {
	switch any(a).(type) {
	case complex64, complex128:
		return 16
	default:
		return 8
	}
}

// WriteElement writes each component of a as the IEEE-754 bits of a float64.
func (Numbers[T]) WriteElement(w buffer.Writer, a T) (n int64, err error) {

	var parts []float64

	switch a := any(a).(type) {
	case float32:
		parts = []float64{float64(a)}
	case float64:
		parts = []float64{a}
	case complex64:
		parts = []float64{float64(real(a)), float64(imag(a))}
	case complex128:
		parts = []float64{real(a), imag(a)}
	}

	var inc int64
	for _, p := range parts {
		if inc, err = buffer.WriteUint64(w, math.Float64bits(p)); err != nil {
			return n + inc, fmt.Errorf("buffer.WriteUint64: %w", err)
		}
		n += inc
	}

	return n, nil
}

// ReadElement reads an element written by WriteElement.
func (f Numbers[T]) ReadElement(r buffer.Reader) (a T, n int64, err error) {

	read := func() (x float64, err error) {
		var u uint64
		var inc int64
		inc, err = buffer.ReadUint64(r, &u)
		n += inc
		if err != nil {
			return 0, fmt.Errorf("buffer.ReadUint64: %w", err)
		}
		return math.Float64frombits(u), nil
	}

	var re, im float64

	if re, err = read(); err != nil {
		return
	}

	switch any(a).(type) {
	case float32:
		return any(float32(re)).(T), n, nil
	case float64:
		return any(re).(T), n, nil
	}

	if im, err = read(); err != nil {
		return
	}

	switch any(a).(type) {
	case complex64:
		return any(complex(float32(re), float32(im))).(T), n, nil
	default:
		return any(complex(re, im)).(T), n, nil
	}
}

// Sample returns an element whose components are uniform in [-1, 1).
func (Numbers[T]) Sample(prng sampling.PRNG) (a T, err error) {

	var re, im float64

	if re, err = sampling.ReadFloat64(prng, -1, 1); err != nil {
		return
	}

	switch any(a).(type) {
	case float32:
		return any(float32(re)).(T), nil
	case float64:
		return any(re).(T), nil
	}

	if im, err = sampling.ReadFloat64(prng, -1, 1); err != nil {
		return
	}

	switch any(a).(type) {
	case complex64:
		return any(complex(float32(re), float32(im))).(T), nil
	default:
		return any(complex(re, im)).(T), nil
	}
}

// Reals is the Field of a builtin floating point type. Unlike Numbers it is
// ordered and implements Signed.
type Reals[T Real] struct {
	Numbers[T]
}

func (Reals[T]) Sign(a T) int {
	switch {
	case a < 0:
		return -1
	case a > 0:
		return 1
	default:
		return 0
	}
}

func (Reals[T]) Abs(a T) T {
	if a < 0 {
		return -a
	}
	return a
}
