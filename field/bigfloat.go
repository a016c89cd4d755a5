package field

import (
	"fmt"
	"math/big"

	"github.com/tuneinsight/unipoly/utils/bignum"
	"github.com/tuneinsight/unipoly/utils/buffer"
	"github.com/tuneinsight/unipoly/utils/sampling"
)

// BigFloats is the Field of *big.Float at a fixed precision.
// Every result is rounded to that precision, so comparisons are exact on
// rounded values, see the package documentation.
type BigFloats struct {
	prec uint
}

// NewBigFloats returns the field of *big.Float with prec bits of mantissa.
func NewBigFloats(prec uint) (f BigFloats, err error) {
	if prec == 0 || prec > big.MaxPrec {
		return BigFloats{}, fmt.Errorf("cannot NewBigFloats: invalid precision %d", prec)
	}
	return BigFloats{prec: prec}, nil
}

// Prec returns the precision of the field in bits.
func (f BigFloats) Prec() uint {
	return f.prec
}

func (f BigFloats) newFloat() *big.Float {
	return new(big.Float).SetPrec(f.prec)
}

func (f BigFloats) Zero() *big.Float {
	return bignum.NewFloat(0, f.prec)
}

func (f BigFloats) One() *big.Float {
	return bignum.NewFloat(1, f.prec)
}

func (f BigFloats) FromInt64(x int64) *big.Float {
	return bignum.NewFloat(x, f.prec)
}

func (f BigFloats) Add(a, b *big.Float) *big.Float {
	return f.newFloat().Add(a, b)
}

func (f BigFloats) Sub(a, b *big.Float) *big.Float {
	return f.newFloat().Sub(a, b)
}

func (f BigFloats) Mul(a, b *big.Float) *big.Float {
	return f.newFloat().Mul(a, b)
}

func (f BigFloats) Quo(a, b *big.Float) *big.Float {
	return f.newFloat().Quo(a, b)
}

func (f BigFloats) Neg(a *big.Float) *big.Float {
	return f.newFloat().Neg(a)
}

func (BigFloats) Equal(a, b *big.Float) bool {
	return a.Cmp(b) == 0
}

func (BigFloats) IsZero(a *big.Float) bool {
	return a == nil || a.Sign() == 0
}

func (f BigFloats) Copy(a *big.Float) *big.Float {
	if a == nil {
		return f.Zero()
	}
	return f.newFloat().Set(a)
}

func (BigFloats) String(a *big.Float) string {
	return a.Text('g', -1)
}

func (BigFloats) Sign(a *big.Float) int {
	return a.Sign()
}

func (f BigFloats) Abs(a *big.Float) *big.Float {
	return f.newFloat().Abs(a)
}

func (BigFloats) BinarySize(a *big.Float) int {
	data, err := a.GobEncode()
	if err != nil {
		panic(fmt.Errorf("cannot BinarySize: %w", err))
	}
	return 8 + len(data)
}

func (BigFloats) WriteElement(w buffer.Writer, a *big.Float) (n int64, err error) {

	var data []byte
	if data, err = a.GobEncode(); err != nil {
		return 0, fmt.Errorf("big.Float.GobEncode: %w", err)
	}

	return buffer.WriteBytes(w, data)
}

// ReadElement reads an element written by WriteElement and rounds it to the
// precision of the field.
func (f BigFloats) ReadElement(r buffer.Reader) (a *big.Float, n int64, err error) {

	var data []byte
	if data, n, err = buffer.ReadBytes(r); err != nil {
		return nil, n, err
	}

	a = new(big.Float)
	if err = a.GobDecode(data); err != nil {
		return nil, n, fmt.Errorf("big.Float.GobDecode: %w", err)
	}

	return f.Copy(a), n, nil
}

// Sample returns an element uniform in [-1, 1) with 53 bits of randomness.
func (f BigFloats) Sample(prng sampling.PRNG) (a *big.Float, err error) {

	var x float64
	if x, err = sampling.ReadFloat64(prng, -1, 1); err != nil {
		return
	}

	return bignum.NewFloat(x, f.prec), nil
}
