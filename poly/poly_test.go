package poly

import (
	"fmt"
	"math"
	"math/big"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tuneinsight/unipoly/field"
	"github.com/tuneinsight/unipoly/utils/sampling"
)

var testModulus = uint64(0x3ee0001)

var representations = []Representation{Dense, Sparse}

func testString(opname string, rep Representation, fieldname string) string {
	return fmt.Sprintf("%s/Rep=%s/Field=%s", opname, rep, fieldname)
}

// testField is the union of the interfaces every field adapter implements.
type testField[T any] interface {
	field.Field[T]
	field.Codec[T]
	field.Sampler[T]
}

// plainField hides every optional interface of the wrapped field.
type plainField[T any] struct {
	field.Field[T]
}

type testContext[T any] struct {
	name    string
	field   testField[T]
	rep     Representation
	sampler *UniformSampler[T]
}

func genTestContext[T any](name string, f testField[T], rep Representation) (tc *testContext[T], err error) {

	var prng sampling.PRNG
	if prng, err = sampling.NewKeyedPRNG([]byte(name + "/" + rep.String())); err != nil {
		return nil, err
	}

	tc = &testContext[T]{name: name, field: f, rep: rep}

	if tc.sampler, err = NewUniformSampler[T](f, prng, rep); err != nil {
		return nil, err
	}

	return
}

func (tc *testContext[T]) sample(t *testing.T, degree int) *Polynomial[T] {
	p, err := tc.sampler.ReadNew(degree)
	require.NoError(t, err)
	require.Equal(t, degree, p.Degree())
	return p
}

func (tc *testContext[T]) sampleMonic(t *testing.T, degree int) *Polynomial[T] {
	p, err := tc.sampler.ReadMonicNew(degree)
	require.NoError(t, err)
	require.Equal(t, degree, p.Degree())
	return p
}

func TestPolynomial(t *testing.T) {

	prime, err := field.NewPrimeField(testModulus)
	require.NoError(t, err)

	for _, rep := range representations {

		testScenarios(t, rep)
		testConstructors(t, rep)
		testStorage(t, rep)
		testInPlace(t, rep)
		testErrors(t, rep)

		runExactTests[*big.Rat](t, "Rat", field.Rationals{}, rep)
		runExactTests[uint64](t, "Zp", prime, rep)
		runApproxTests[float64](t, "float64", field.Reals[float64]{}, rep)
		runApproxTests[complex128](t, "complex128", field.Numbers[complex128]{}, rep)

		testValueSemantics(t, rep)
	}
}

func testScenarios(t *testing.T, rep Representation) {

	f := field.Reals[float64]{}

	t.Run(testString("Evaluate", rep, "float64"), func(t *testing.T) {
		p := NewPolynomial[float64](f, rep, []float64{1, 2, 3})
		require.Equal(t, 2, p.Degree())
		require.Equal(t, 17.0, p.Evaluate(2))
		require.Equal(t, 1.0, p.Evaluate(0))
		require.Equal(t, 0.0, NewZero[float64](f, rep).Evaluate(5))
	})

	t.Run(testString("Mul", rep, "float64"), func(t *testing.T) {
		p := NewPolynomial[float64](f, rep, []float64{-1, 1})
		q := NewPolynomial[float64](f, rep, []float64{1, 1})
		r := p.MulNew(q)
		require.Equal(t, []float64{-1, 0, 1}, r.Coefficients())
		require.Equal(t, []float64{-1, 1}, p.Coefficients())

		require.Equal(t, []float64{1, 0, -1}, NewPolynomial[float64](f, rep, []float64{1, -1}).MulNew(q).Coefficients())

		require.True(t, p.MulNew(NewZero[float64](f, rep)).IsZero())
	})

	t.Run(testString("DivMod", rep, "float64"), func(t *testing.T) {
		p := NewPolynomial[float64](f, rep, []float64{-1, 0, 1})
		d := NewPolynomial[float64](f, rep, []float64{-1, 1})

		quo, rem, err := p.DivMod(d)
		require.NoError(t, err)
		require.Equal(t, []float64{1, 1}, quo.Coefficients())
		require.True(t, rem.IsZero())

		quo, rem, err = d.DivMod(p)
		require.NoError(t, err)
		require.True(t, quo.IsZero())
		require.True(t, rem.Equal(d))

		quo, rem, err = p.DivMod(NewConstant[float64](f, rep, 2))
		require.NoError(t, err)
		require.Equal(t, []float64{-0.5, 0, 0.5}, quo.Coefficients())
		require.True(t, rem.IsZero())
	})

	t.Run(testString("GCD", rep, "float64"), func(t *testing.T) {
		p := NewPolynomial[float64](f, rep, []float64{-1, 0, 1})
		q := NewPolynomial[float64](f, rep, []float64{-1, 1})

		gcd, err := GCD(p, q)
		require.NoError(t, err)
		require.Equal(t, []float64{-1, 1}, gcd.Coefficients())
		require.Equal(t, "x-1", gcd.String())

		gcd, err = q.GCD(p)
		require.NoError(t, err)
		require.Equal(t, []float64{-1, 1}, gcd.Coefficients())

		gcd, err = GCD(NewZero[float64](f, rep), NewPolynomial[float64](f, rep, []float64{2, 4}))
		require.NoError(t, err)
		require.Equal(t, []float64{0.5, 1}, gcd.Coefficients())

		gcd, err = GCD(NewPolynomial[float64](f, rep, []float64{2, 4}), NewZero[float64](f, rep))
		require.NoError(t, err)
		require.Equal(t, []float64{0.5, 1}, gcd.Coefficients())
	})

	t.Run(testString("Compose", rep, "float64"), func(t *testing.T) {
		p := NewPolynomial[float64](f, rep, []float64{1, 2, 3})
		x := NewPolynomial[float64](f, rep, []float64{0, 1})
		require.True(t, p.Compose(x).Equal(p))
		require.True(t, x.Compose(p).Equal(p))

		// p(x+1) = 3x^2 + 8x + 6
		require.Equal(t, []float64{6, 8, 3}, p.Compose(NewPolynomial[float64](f, rep, []float64{1, 1})).Coefficients())

		// p(2) as a constant polynomial
		require.True(t, p.Compose(NewConstant[float64](f, rep, 2)).EqualScalar(17))

		require.True(t, NewZero[float64](f, rep).Compose(p).IsZero())
	})

	t.Run(testString("String", rep, "float64"), func(t *testing.T) {
		require.Equal(t, "x^2-1", NewPolynomial[float64](f, rep, []float64{-1, 0, 1}).String())
		require.Equal(t, "3*x^2+2*x+1", fmt.Sprint(NewPolynomial[float64](f, rep, []float64{1, 2, 3})))
		require.Equal(t, "0", NewZero[float64](f, rep).String())
	})
}

func testConstructors(t *testing.T, rep Representation) {

	f := field.Reals[float64]{}

	t.Run(testString("NewPolynomial", rep, "float64"), func(t *testing.T) {
		p := NewPolynomial[float64](f, rep, []float64{1, 0, 3, 0})
		require.Equal(t, rep, p.Representation())
		require.Equal(t, 2, p.Degree())
		require.Equal(t, 3.0, p.Leading())
		require.Equal(t, []float64{1, 0, 3}, p.Coefficients())

		require.True(t, NewPolynomial[float64](f, rep, []float64{0, 0, 0}).IsZero())
		require.True(t, NewPolynomial[float64](f, rep, nil).IsZero())

		require.True(t, p.Equal(NewDense[float64](f, []float64{1, 0, 3})))
		require.True(t, p.Equal(NewSparse[float64](f, []float64{1, 0, 3})))
	})

	t.Run(testString("NewFromSeq", rep, "float64"), func(t *testing.T) {
		p := NewFromSeq[float64](f, rep, slices.Values([]float64{1, 0, 3}))
		require.Equal(t, rep, p.Representation())
		require.True(t, p.Equal(NewPolynomial[float64](f, rep, []float64{1, 0, 3})))
	})

	t.Run(testString("NewMonomial", rep, "float64"), func(t *testing.T) {
		p := NewMonomial[float64](f, rep, 2, 3)
		require.Equal(t, 3, p.Degree())
		require.Equal(t, 2.0, p.Leading())
		require.Equal(t, []float64{0, 0, 0, 2}, p.Coefficients())

		require.True(t, NewMonomial[float64](f, rep, 0, 3).IsZero())

		require.Panics(t, func() { NewMonomial[float64](f, rep, 1, -1) })
	})

	t.Run(testString("NewConstant", rep, "float64"), func(t *testing.T) {
		require.Equal(t, 0, NewConstant[float64](f, rep, 4).Degree())
		require.True(t, NewConstant[float64](f, rep, 4).EqualScalar(4))
		require.False(t, NewConstant[float64](f, rep, 4).EqualScalar(5))
		require.True(t, NewConstant[float64](f, rep, 0).IsZero())
		require.True(t, NewZero[float64](f, rep).EqualScalar(0))
	})

	t.Run(testString("Iterators", rep, "float64"), func(t *testing.T) {
		p := NewPolynomial[float64](f, rep, []float64{1, 0, 3, 0})

		var exps []int
		var coeffs []float64
		for e, c := range p.Terms() {
			exps = append(exps, e)
			coeffs = append(coeffs, c)
		}
		require.Equal(t, []int{0, 2}, exps)
		require.Equal(t, []float64{1, 3}, coeffs)

		var all []float64
		for _, c := range p.All() {
			all = append(all, c)
		}
		require.Equal(t, []float64{1, 0, 3}, all)

		all = all[:0]
		for _, c := range NewZero[float64](f, rep).All() {
			all = append(all, c)
		}
		require.Equal(t, []float64{0}, all)
	})

	t.Run(testString("As", rep, "float64"), func(t *testing.T) {
		p := NewPolynomial[float64](f, rep, []float64{1, 0, 3})

		for _, other := range representations {
			q := p.As(other)
			require.Equal(t, other, q.Representation())
			require.True(t, p.Equal(q))
			require.True(t, q.Equal(p))
		}

		require.Equal(t, Dense, p.AsDense().Representation())
		require.Equal(t, Sparse, p.AsSparse().Representation())
	})
}

func testStorage(t *testing.T, rep Representation) {

	f := field.Reals[float64]{}

	t.Run(testString("Cancellation", rep, "float64"), func(t *testing.T) {
		p := NewPolynomial[float64](f, rep, []float64{1, 2, 3})
		p.Add(p.NegNew())
		require.Equal(t, -1, p.Degree())
		require.True(t, p.IsZero())
		require.Equal(t, []float64{0}, p.Coefficients())

		switch rep {
		case Dense:
			// stale zero slots are kept
			require.Equal(t, 3, p.store.Len())
		case Sparse:
			require.Equal(t, 0, p.store.Len())
		}

		require.Equal(t, 0, p.CopyNew().store.Len())
	})

	t.Run(testString("LeadingCancellation", rep, "float64"), func(t *testing.T) {
		p := NewPolynomial[float64](f, rep, []float64{1, 2, 3})
		p.Sub(NewMonomial[float64](f, rep, 3, 2))
		require.Equal(t, 1, p.Degree())
		require.True(t, p.Equal(NewPolynomial[float64](f, rep, []float64{1, 2})))
		require.Equal(t, "2*x+1", p.String())

		switch rep {
		case Dense:
			require.Equal(t, 3, p.store.Len())
		case Sparse:
			require.Equal(t, 2, p.store.Len())
		}
	})

	t.Run(testString("At", rep, "float64"), func(t *testing.T) {
		p := NewPolynomial[float64](f, rep, []float64{1, 2, 3})
		require.Equal(t, 0.0, p.At(-1))
		require.Equal(t, 0.0, p.At(3))
		require.Equal(t, 0.0, p.At(1000))
		require.Equal(t, 2.0, p.At(1))
		require.Equal(t, 0.0, NewZero[float64](f, rep).Leading())
	})

	t.Run(testString("MixedRepresentations", rep, "float64"), func(t *testing.T) {
		p := NewPolynomial[float64](f, rep, []float64{1, 2})

		for _, other := range representations {
			q := NewPolynomial[float64](f, other, []float64{0, 0, 3})

			r := p.AddNew(q)
			require.Equal(t, rep, r.Representation())
			require.Equal(t, []float64{1, 2, 3}, r.Coefficients())

			r = p.MulNew(q)
			require.Equal(t, rep, r.Representation())
			require.Equal(t, []float64{0, 0, 3, 6}, r.Coefficients())

			quo, rem, err := r.DivMod(q)
			require.NoError(t, err)
			require.Equal(t, rep, quo.Representation())
			require.True(t, quo.Equal(p))
			require.True(t, rem.IsZero())
		}
	})
}

func testInPlace(t *testing.T, rep Representation) {

	f := field.Reals[float64]{}

	t.Run(testString("Aliasing", rep, "float64"), func(t *testing.T) {
		p := NewPolynomial[float64](f, rep, []float64{1, 2})
		p.Add(p)
		require.Equal(t, []float64{2, 4}, p.Coefficients())

		p.Mul(p)
		require.Equal(t, []float64{4, 16, 16}, p.Coefficients())

		p.Sub(p)
		require.True(t, p.IsZero())
	})

	t.Run(testString("Scalar", rep, "float64"), func(t *testing.T) {
		p := NewZero[float64](f, rep)
		p.AddScalar(3)
		require.True(t, p.EqualScalar(3))

		p = NewPolynomial[float64](f, rep, []float64{1, 2})
		require.Equal(t, []float64{4, 2}, p.AddScalarNew(3).Coefficients())
		require.Equal(t, []float64{-2, 2}, p.SubScalarNew(3).Coefficients())
		require.Equal(t, []float64{3, 6}, p.MulScalarNew(3).Coefficients())
		require.Equal(t, []float64{-1, -2}, p.NegNew().Coefficients())
		require.Equal(t, []float64{1, 2}, p.Coefficients())

		p.SubScalar(1)
		require.Equal(t, []float64{0, 2}, p.Coefficients())

		q, err := p.QuoScalar(4)
		require.NoError(t, err)
		require.Equal(t, []float64{0, 0.5}, q.Coefficients())

		p.MulScalar(0)
		require.True(t, p.IsZero())
	})

	t.Run(testString("Monic", rep, "float64"), func(t *testing.T) {
		p := NewPolynomial[float64](f, rep, []float64{2, 4})
		q, err := p.Monic()
		require.NoError(t, err)
		require.Equal(t, []float64{0.5, 1}, q.Coefficients())
		require.Equal(t, []float64{2, 4}, p.Coefficients())

		q, err = q.Monic()
		require.NoError(t, err)
		require.Equal(t, []float64{0.5, 1}, q.Coefficients())
	})
}

func testErrors(t *testing.T, rep Representation) {

	f := field.Reals[float64]{}

	t.Run(testString("ZeroDivisor", rep, "float64"), func(t *testing.T) {
		p := NewPolynomial[float64](f, rep, []float64{1, 2})
		zero := NewZero[float64](f, rep)

		_, _, err := p.DivMod(zero)
		require.ErrorIs(t, err, ErrZeroDivisor)

		_, err = p.Quo(zero)
		require.ErrorIs(t, err, ErrZeroDivisor)

		_, err = p.Rem(zero)
		require.ErrorIs(t, err, ErrZeroDivisor)

		_, err = p.QuoScalar(0)
		require.ErrorIs(t, err, ErrZeroDivisor)

		_, err = zero.Monic()
		require.ErrorIs(t, err, ErrZeroDivisor)

		// stale slots must not hide a zero divisor
		stale := NewPolynomial[float64](f, rep, []float64{1, 1})
		stale.Sub(stale.CopyNew())
		_, _, err = p.DivMod(stale)
		require.ErrorIs(t, err, ErrZeroDivisor)
	})

	t.Run(testString("ZeroGCD", rep, "float64"), func(t *testing.T) {
		zero := NewZero[float64](f, rep)
		_, err := GCD(zero, zero)
		require.ErrorIs(t, err, ErrZeroGCD)

		_, err = zero.GCD(NewZero[float64](f, rep))
		require.ErrorIs(t, err, ErrZeroGCD)
	})

	t.Run(testString("MissingInterfaces", rep, "float64"), func(t *testing.T) {
		plain := plainField[float64]{f}
		p := NewPolynomial[float64](plain, rep, []float64{1, 2})

		_, err := p.MarshalBinary()
		require.Error(t, err)

		_, err = p.Digest()
		require.Error(t, err)

		require.Panics(t, func() { p.BinarySize() })

		prng, err := sampling.NewKeyedPRNG(nil)
		require.NoError(t, err)
		_, err = NewUniformSampler[float64](plain, prng, rep)
		require.Error(t, err)
	})

	t.Run(testString("InvalidEncoding", rep, "float64"), func(t *testing.T) {
		p := NewZero[float64](f, rep)
		require.Error(t, p.UnmarshalBinary([]byte{7, 0, 0, 0, 0, 0, 0, 0, 0}))
		require.Error(t, p.UnmarshalBinary([]byte{uint8(rep), 1}))

		var q Polynomial[float64]
		require.Error(t, q.UnmarshalBinary([]byte{uint8(rep), 0, 0, 0, 0, 0, 0, 0, 0}))
	})
}

func testValueSemantics(t *testing.T, rep Representation) {

	f := field.Rationals{}

	t.Run(testString("ValueSemantics", rep, "Rat"), func(t *testing.T) {
		coeffs := field.NewRats(1, 1, 2)
		p := NewPolynomial[*big.Rat](f, rep, coeffs)

		coeffs[0].SetInt64(7)
		require.Zero(t, p.At(0).Cmp(big.NewRat(1, 1)))

		out := p.Coefficients()
		out[1].SetInt64(9)
		require.Zero(t, p.At(1).Cmp(big.NewRat(2, 1)))

		q := p.CopyNew()
		q.Add(p)
		q.MulScalar(big.NewRat(3, 1))
		require.Equal(t, "12*x+6", q.String())
		require.Equal(t, "2*x+1", p.String())

		x := big.NewRat(5, 1)
		r := NewMonomial[*big.Rat](f, rep, x, 1)
		x.SetInt64(0)
		require.Equal(t, "5*x", r.String())
	})
}

func runExactTests[T any](t *testing.T, name string, f testField[T], rep Representation) {

	tc, err := genTestContext[T](name, f, rep)
	require.NoError(t, err)

	t.Run(testString("Sampler", rep, name), func(t *testing.T) {
		for degree := 0; degree < 8; degree++ {
			p := tc.sample(t, degree)
			require.Equal(t, rep, p.Representation())

			m := tc.sampleMonic(t, degree)
			require.True(t, f.Equal(m.Leading(), f.One()))
		}

		p, err := tc.sampler.ReadNew(-1)
		require.NoError(t, err)
		require.True(t, p.IsZero())

		_, err = tc.sampler.ReadMonicNew(-1)
		require.Error(t, err)
	})

	t.Run(testString("AddSub", rep, name), func(t *testing.T) {
		a, b, c := tc.sample(t, 5), tc.sample(t, 3), tc.sample(t, 7)

		require.True(t, a.AddNew(b).Equal(b.AddNew(a)))
		require.True(t, a.AddNew(b).SubNew(b).Equal(a))
		require.True(t, a.AddNew(b).AddNew(c).Equal(a.AddNew(b.AddNew(c))))
		require.True(t, a.SubNew(b).Equal(a.AddNew(b.NegNew())))
		require.Equal(t, -1, a.AddNew(a.NegNew()).Degree())
		require.True(t, a.SubNew(a).IsZero())
	})

	t.Run(testString("Mul", rep, name), func(t *testing.T) {
		a, b, c := tc.sample(t, 5), tc.sample(t, 3), tc.sample(t, 4)

		require.Equal(t, 8, a.MulNew(b).Degree())
		require.True(t, a.MulNew(b).Equal(b.MulNew(a)))
		require.True(t, a.MulNew(b).MulNew(c).Equal(a.MulNew(b.MulNew(c))))
		require.True(t, a.MulNew(b.AddNew(c)).Equal(a.MulNew(b).AddNew(a.MulNew(c))))

		one := NewConstant(f, rep, f.One())
		require.True(t, a.MulNew(one).Equal(a))

		s := f.FromInt64(5)
		require.True(t, a.MulScalarNew(s).Equal(a.MulNew(NewConstant(f, rep, s))))
		require.True(t, a.AddNew(b).MulScalarNew(s).Equal(a.MulScalarNew(s).AddNew(b.MulScalarNew(s))))

		q, err := a.QuoScalar(s)
		require.NoError(t, err)
		require.True(t, q.MulScalarNew(s).Equal(a))
	})

	t.Run(testString("Evaluate", rep, name), func(t *testing.T) {
		a := tc.sample(t, 9)

		for _, v := range []int64{-3, 0, 1, 5} {

			x := f.FromInt64(v)

			want, pow := f.Zero(), f.One()
			for e := 0; e <= a.Degree(); e++ {
				want = f.Add(want, f.Mul(a.At(e), pow))
				pow = f.Mul(pow, x)
			}

			require.True(t, f.Equal(want, a.Evaluate(x)), "x=%d", v)
		}
	})

	t.Run(testString("Compose", rep, name), func(t *testing.T) {
		a, b := tc.sample(t, 4), tc.sample(t, 3)

		ab := a.Compose(b)
		require.Equal(t, 12, ab.Degree())

		for _, v := range []int64{-2, 0, 3} {
			x := f.FromInt64(v)
			require.True(t, f.Equal(a.Evaluate(b.Evaluate(x)), ab.Evaluate(x)), "x=%d", v)
		}

		x := NewMonomial(f, rep, f.One(), 1)
		require.True(t, a.Compose(x).Equal(a))
	})

	t.Run(testString("DivMod", rep, name), func(t *testing.T) {
		for _, degrees := range [][2]int{{8, 3}, {5, 5}, {2, 4}, {6, 0}} {

			a, d := tc.sample(t, degrees[0]), tc.sample(t, degrees[1])

			quo, rem, err := a.DivMod(d)
			require.NoError(t, err)
			require.Less(t, rem.Degree(), d.Degree())
			require.Equal(t, max(-1, degrees[0]-degrees[1]), quo.Degree())
			require.True(t, quo.MulNew(d).AddNew(rem).Equal(a))

			q, err := a.Quo(d)
			require.NoError(t, err)
			require.True(t, q.Equal(quo))

			r, err := a.Rem(d)
			require.NoError(t, err)
			require.True(t, r.Equal(rem))
		}

		// exact division
		a, d := tc.sample(t, 4), tc.sample(t, 3)
		quo, rem, err := a.MulNew(d).DivMod(d)
		require.NoError(t, err)
		require.True(t, rem.IsZero())
		require.True(t, quo.Equal(a))
	})

	t.Run(testString("GCD", rep, name), func(t *testing.T) {
		g := tc.sampleMonic(t, 2)
		a := g.MulNew(tc.sample(t, 3))
		b := g.MulNew(tc.sample(t, 4))

		gcd, err := GCD(a, b)
		require.NoError(t, err)
		require.True(t, f.Equal(gcd.Leading(), f.One()))
		require.GreaterOrEqual(t, gcd.Degree(), 2)

		for _, p := range []*Polynomial[T]{a, b} {
			r, err := p.Rem(gcd)
			require.NoError(t, err)
			require.True(t, r.IsZero())
		}

		r, err := gcd.Rem(g)
		require.NoError(t, err)
		require.True(t, r.IsZero())

		other, err := b.GCD(a)
		require.NoError(t, err)
		require.True(t, gcd.Equal(other))

		// gcd(5a, a) is a made monic
		scaled, err := GCD(a.MulScalarNew(f.FromInt64(5)), a)
		require.NoError(t, err)
		monic, err := a.Monic()
		require.NoError(t, err)
		require.True(t, scaled.Equal(monic))
	})

	t.Run(testString("Codec", rep, name), func(t *testing.T) {
		testCodec(t, tc)
	})

	t.Run(testString("Digest", rep, name), func(t *testing.T) {
		a := tc.sample(t, 6)

		d0, err := a.Digest()
		require.NoError(t, err)
		require.Len(t, d0, DigestSize)

		for _, other := range representations {
			d1, err := a.As(other).Digest()
			require.NoError(t, err)
			require.Equal(t, d0, d1)
		}

		d2, err := a.AddScalarNew(f.One()).Digest()
		require.NoError(t, err)
		require.NotEqual(t, d0, d2)
	})
}

func TestScalarReduction(t *testing.T) {

	f, err := field.NewPrimeField(7)
	require.NoError(t, err)

	for _, rep := range representations {

		t.Run(testString("AddSubScalar", rep, "Z7"), func(t *testing.T) {
			p := NewZero[uint64](f, rep)
			p.AddScalar(14)
			require.True(t, p.IsZero())

			p.SubScalar(20)
			require.True(t, p.EqualScalar(1))
			require.Equal(t, uint64(1), p.At(0))

			require.True(t, NewZero[uint64](f, rep).AddScalarNew(9).EqualScalar(2))
			require.True(t, NewZero[uint64](f, rep).SubScalarNew(9).EqualScalar(5))
		})

		t.Run(testString("MulQuoScalar", rep, "Z7"), func(t *testing.T) {
			p := NewPolynomial[uint64](f, rep, []uint64{1, 2})
			require.Equal(t, []uint64{1, 2}, p.MulScalarNew(8).Coefficients())
			require.True(t, p.MulScalarNew(14).IsZero())

			q, err := p.QuoScalar(9)
			require.NoError(t, err)
			require.Equal(t, []uint64{4, 1}, q.Coefficients())

			_, err = p.QuoScalar(14)
			require.ErrorIs(t, err, ErrZeroDivisor)
		})
	}
}

func TestSignedZero(t *testing.T) {

	f := field.Reals[float64]{}

	var digests [][]byte

	for _, rep := range representations {

		p := NewPolynomial[float64](f, rep, []float64{1e-200, 1})
		p.MulScalar(-1e-200)

		require.Equal(t, 1, p.Degree())
		require.False(t, math.Signbit(p.At(0)))

		d, err := p.Digest()
		require.NoError(t, err)
		digests = append(digests, d)
	}

	require.Equal(t, digests[0], digests[1])
}

func TestBuiltinNumbers(t *testing.T) {
	testBuiltinNumbers[float32](t, "float32", field.Reals[float32]{})
	testBuiltinNumbers[float64](t, "float64", field.Reals[float64]{})
	testBuiltinNumbers[complex64](t, "complex64", field.Numbers[complex64]{})
	testBuiltinNumbers[complex128](t, "complex128", field.Numbers[complex128]{})
}

func testBuiltinNumbers[T field.Number](t *testing.T, name string, f testField[T]) {

	for _, rep := range representations {

		t.Run(testString("Codec", rep, name), func(t *testing.T) {
			p := NewPolynomial[T](f, rep, []T{1, 2})
			q := NewPolynomial[T](f, rep, []T{3, 4})

			data, err := p.MarshalBinary()
			require.NoError(t, err)
			require.Len(t, data, p.BinarySize())
			require.Greater(t, len(data), 1+8)

			r := NewZero[T](f, rep)
			require.NoError(t, r.UnmarshalBinary(data))
			require.True(t, p.Equal(r))

			dp, err := p.Digest()
			require.NoError(t, err)
			dq, err := q.Digest()
			require.NoError(t, err)
			require.NotEqual(t, dp, dq)
		})
	}
}
