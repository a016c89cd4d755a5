package poly

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/tuneinsight/unipoly/field"
)

func toComplex[T field.Number](x T) complex128 {
	switch x := any(x).(type) {
	case float32:
		return complex(float64(x), 0)
	case float64:
		return complex(x, 0)
	case complex64:
		return complex128(x)
	case complex128:
		return x
	default:
		panic("unreachable")
	}
}

// near compares a and b up to a relative error of 2^-30.
func near[T field.Number](a, b T) bool {
	ca, cb := toComplex(a), toComplex(b)
	return cmplx.Abs(ca-cb) <= math.Exp2(-30)*max(1, cmplx.Abs(ca), cmplx.Abs(cb))
}

func runApproxTests[T field.Number](t *testing.T, name string, f testField[T], rep Representation) {

	tc, err := genTestContext[T](name, f, rep)
	require.NoError(t, err)

	equal := func(p, q *Polynomial[T]) bool {
		return cmp.Equal(p.Coefficients(), q.Coefficients(), cmp.Comparer(near[T]))
	}

	t.Run(testString("Evaluate", rep, name), func(t *testing.T) {
		a := tc.sample(t, 9)

		for i := 0; i < 4; i++ {

			x, err := f.Sample(tc.sampler.prng)
			require.NoError(t, err)

			want, pow := f.Zero(), f.One()
			for e := 0; e <= a.Degree(); e++ {
				want += a.At(e) * pow
				pow *= x
			}

			require.True(t, near(want, a.Evaluate(x)))
		}
	})

	t.Run(testString("Compose", rep, name), func(t *testing.T) {
		a, b := tc.sample(t, 4), tc.sample(t, 3)

		ab := a.Compose(b)

		for _, x := range []T{-1, 0, 0.5} {
			require.True(t, near(a.Evaluate(b.Evaluate(x)), ab.Evaluate(x)))
		}
	})

	t.Run(testString("DivMod", rep, name), func(t *testing.T) {
		for _, degrees := range [][2]int{{8, 3}, {5, 5}, {2, 4}, {6, 0}} {

			a, d := tc.sample(t, degrees[0]), tc.sampleMonic(t, degrees[1])

			quo, rem, err := a.DivMod(d)
			require.NoError(t, err)
			require.Less(t, rem.Degree(), d.Degree())
			require.True(t, equal(a, quo.MulNew(d).AddNew(rem)))
		}
	})

	t.Run(testString("Distributivity", rep, name), func(t *testing.T) {
		a, b, c := tc.sample(t, 5), tc.sample(t, 3), tc.sample(t, 4)
		require.True(t, equal(a.MulNew(b.AddNew(c)), a.MulNew(b).AddNew(a.MulNew(c))))
		require.True(t, equal(a.MulNew(b).MulNew(c), a.MulNew(b.MulNew(c))))
	})

	t.Run(testString("Codec", rep, name), func(t *testing.T) {
		testCodec(t, tc)
	})
}
