package field

import (
	"fmt"
	"math/big"
	"math/bits"
	"strconv"

	"github.com/tuneinsight/unipoly/utils/buffer"
	"github.com/tuneinsight/unipoly/utils/sampling"
)

// PrimeField is the exact Field of the integers modulo a prime q < 2^63.
// Elements are represented by their canonical residue in [0, q).
type PrimeField struct {
	q uint64
}

// IsPrime applies the Baillie-PSW test, which is exact for numbers below 2^64.
func IsPrime(x uint64) bool {
	return new(big.Int).SetUint64(x).ProbablyPrime(0)
}

// NewPrimeField returns the field of integers modulo q.
// It returns an error if q is not a prime or if q >= 2^63.
func NewPrimeField(q uint64) (f PrimeField, err error) {

	if q >= 1<<63 {
		return PrimeField{}, fmt.Errorf("cannot NewPrimeField: modulus %d must be smaller than 2^63", q)
	}

	if !IsPrime(q) {
		return PrimeField{}, fmt.Errorf("cannot NewPrimeField: modulus %d is not a prime", q)
	}

	return PrimeField{q: q}, nil
}

// Modulus returns q.
func (f PrimeField) Modulus() uint64 {
	return f.q
}

func (f PrimeField) Zero() uint64 {
	return 0
}

func (f PrimeField) One() uint64 {
	return 1 % f.q
}

// FromInt64 returns the residue of x in [0, q).
func (f PrimeField) FromInt64(x int64) uint64 {
	if x < 0 {
		// -x might overflow for math.MinInt64, reduce its magnitude through uint64
		r := (uint64(-(x + 1)) % f.q) + 1
		return (f.q - r%f.q) % f.q
	}
	return uint64(x) % f.q
}

func (f PrimeField) Add(a, b uint64) uint64 {
	c := a + b
	if c >= f.q {
		c -= f.q
	}
	return c
}

func (f PrimeField) Sub(a, b uint64) uint64 {
	if a >= b {
		return a - b
	}
	return a + f.q - b
}

func (f PrimeField) Mul(a, b uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	return bits.Rem64(hi, lo, f.q)
}

// Quo returns a * b^(q-2) mod q.
func (f PrimeField) Quo(a, b uint64) uint64 {
	return f.Mul(a, f.Inverse(b))
}

// Inverse returns b^(-1) mod q by Fermat's little theorem.
// b must not be zero.
func (f PrimeField) Inverse(b uint64) uint64 {
	return f.Exp(b, f.q-2)
}

// Exp returns a^e mod q.
func (f PrimeField) Exp(a, e uint64) (r uint64) {
	r = f.One()
	for e > 0 {
		if e&1 == 1 {
			r = f.Mul(r, a)
		}
		a = f.Mul(a, a)
		e >>= 1
	}
	return
}

func (f PrimeField) Neg(a uint64) uint64 {
	if a == 0 {
		return 0
	}
	return f.q - a
}

func (PrimeField) Equal(a, b uint64) bool {
	return a == b
}

func (PrimeField) IsZero(a uint64) bool {
	return a == 0
}

// Copy returns a reduced modulo q.
func (f PrimeField) Copy(a uint64) uint64 {
	return a % f.q
}

func (PrimeField) String(a uint64) string {
	return strconv.FormatUint(a, 10)
}

func (PrimeField) BinarySize(a uint64) int {
	return 8
}

func (PrimeField) WriteElement(w buffer.Writer, a uint64) (n int64, err error) {
	return buffer.WriteUint64(w, a)
}

// ReadElement reads an element written by WriteElement and rejects
// values that are not reduced modulo q.
func (f PrimeField) ReadElement(r buffer.Reader) (a uint64, n int64, err error) {

	if n, err = buffer.ReadUint64(r, &a); err != nil {
		return 0, n, fmt.Errorf("buffer.ReadUint64: %w", err)
	}

	if a >= f.q {
		return 0, n, fmt.Errorf("cannot ReadElement: %d is not reduced modulo %d", a, f.q)
	}

	return a, n, nil
}

// Sample returns an element uniform in [0, q).
func (f PrimeField) Sample(prng sampling.PRNG) (a uint64, err error) {
	return sampling.ReadUint64Below(prng, f.q)
}
