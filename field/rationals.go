package field

import (
	"fmt"
	"math/big"

	"github.com/tuneinsight/unipoly/utils/buffer"
	"github.com/tuneinsight/unipoly/utils/sampling"
)

// Rationals is the exact Field of *big.Rat. A nil *big.Rat is read as zero.
type Rationals struct{}

// NewRats returns the rationals num[i]/den for each num[i].
func NewRats(den int64, num ...int64) (r []*big.Rat) {
	r = make([]*big.Rat, len(num))
	for i := range num {
		r[i] = big.NewRat(num[i], den)
	}
	return
}

func (Rationals) Zero() *big.Rat {
	return new(big.Rat)
}

func (Rationals) One() *big.Rat {
	return big.NewRat(1, 1)
}

func (Rationals) FromInt64(x int64) *big.Rat {
	return big.NewRat(x, 1)
}

func (Rationals) Add(a, b *big.Rat) *big.Rat {
	return new(big.Rat).Add(a, b)
}

func (Rationals) Sub(a, b *big.Rat) *big.Rat {
	return new(big.Rat).Sub(a, b)
}

func (Rationals) Mul(a, b *big.Rat) *big.Rat {
	return new(big.Rat).Mul(a, b)
}

func (Rationals) Quo(a, b *big.Rat) *big.Rat {
	return new(big.Rat).Quo(a, b)
}

func (Rationals) Neg(a *big.Rat) *big.Rat {
	return new(big.Rat).Neg(a)
}

func (Rationals) Equal(a, b *big.Rat) bool {
	return a.Cmp(b) == 0
}

func (Rationals) IsZero(a *big.Rat) bool {
	return a == nil || a.Sign() == 0
}

func (Rationals) Copy(a *big.Rat) *big.Rat {
	if a == nil {
		return new(big.Rat)
	}
	return new(big.Rat).Set(a)
}

func (Rationals) String(a *big.Rat) string {
	return a.RatString()
}

func (Rationals) Sign(a *big.Rat) int {
	return a.Sign()
}

func (Rationals) Abs(a *big.Rat) *big.Rat {
	return new(big.Rat).Abs(a)
}

func (Rationals) BinarySize(a *big.Rat) int {
	data, err := a.GobEncode()
	if err != nil {
		panic(fmt.Errorf("cannot BinarySize: %w", err))
	}
	return 8 + len(data)
}

func (Rationals) WriteElement(w buffer.Writer, a *big.Rat) (n int64, err error) {

	var data []byte
	if data, err = a.GobEncode(); err != nil {
		return 0, fmt.Errorf("big.Rat.GobEncode: %w", err)
	}

	return buffer.WriteBytes(w, data)
}

func (Rationals) ReadElement(r buffer.Reader) (a *big.Rat, n int64, err error) {

	var data []byte
	if data, n, err = buffer.ReadBytes(r); err != nil {
		return nil, n, err
	}

	a = new(big.Rat)
	if err = a.GobDecode(data); err != nil {
		return nil, n, fmt.Errorf("big.Rat.GobDecode: %w", err)
	}

	return a, n, nil
}

// Sample returns a rational num/den with num uniform in [-16, 16] and den uniform in [1, 16].
func (Rationals) Sample(prng sampling.PRNG) (a *big.Rat, err error) {

	var num, den uint64

	if num, err = sampling.ReadUint64Below(prng, 33); err != nil {
		return
	}

	if den, err = sampling.ReadUint64Below(prng, 16); err != nil {
		return
	}

	return big.NewRat(int64(num)-16, int64(den)+1), nil
}
