// Package precision measures the numerical error of polynomial arithmetic over
// approximate coefficient types against an arbitrary precision reference.
package precision

import (
	"fmt"
	"math"
	"math/big"

	"github.com/montanaflynn/stats"

	"github.com/tuneinsight/unipoly/field"
	"github.com/tuneinsight/unipoly/poly"
	"github.com/tuneinsight/unipoly/utils/bignum"
)

// Stats summarizes the absolute errors between tested and reference values.
// Precisions are given in bits, as log2(1/delta); an exact value has an
// infinite precision.
type Stats struct {
	MinDelta, MaxDelta, MeanDelta, MedianDelta, StdDelta float64

	MinPrecision, MaxPrecision, MeanPrecision, MedianPrecision float64

	Count int
}

func (prec Stats) String() string {
	return fmt.Sprintf(`
┌─────────┬──────────┬──────────┐
│    Log2 │ Delta    │ Prec     │
├─────────┼──────────┼──────────┤
│MIN      │ %8.2f │ %8.2f │
│MAX      │ %8.2f │ %8.2f │
│AVG      │ %8.2f │ %8.2f │
│MED      │ %8.2f │ %8.2f │
└─────────┴──────────┴──────────┘
Err STD : %5.2f Log2 (%d values)
`,
		math.Log2(prec.MinDelta), prec.MinPrecision,
		math.Log2(prec.MaxDelta), prec.MaxPrecision,
		math.Log2(prec.MeanDelta), prec.MeanPrecision,
		math.Log2(prec.MedianDelta), prec.MedianPrecision,
		math.Log2(prec.StdDelta), prec.Count)
}

// GetStats compares the tested values have against the reference values want.
// Each delta |want[i] - have[i]| is computed at the precision of want[i], so
// errors smaller than the float64 resolution are still measured.
func GetStats(want []*big.Float, have []float64) (prec Stats, err error) {

	if len(want) != len(have) {
		return prec, fmt.Errorf("cannot GetStats: len(want)=%d != len(have)=%d", len(want), len(have))
	}

	if len(want) == 0 {
		return prec, fmt.Errorf("cannot GetStats: empty input")
	}

	deltas := make(stats.Float64Data, len(want))
	precisions := make(stats.Float64Data, len(want))

	for i := range want {
		delta := new(big.Float).SetPrec(want[i].Prec())
		delta.Sub(want[i], bignum.NewFloat(have[i], want[i].Prec()))
		delta.Abs(delta)

		deltas[i], _ = delta.Float64()
		precisions[i] = -bignum.Log2Float64(delta)
	}

	prec.Count = len(want)

	if prec.MinDelta, err = stats.Min(deltas); err != nil {
		return prec, fmt.Errorf("stats.Min: %w", err)
	}

	if prec.MaxDelta, err = stats.Max(deltas); err != nil {
		return prec, fmt.Errorf("stats.Max: %w", err)
	}

	if prec.MeanDelta, err = stats.Mean(deltas); err != nil {
		return prec, fmt.Errorf("stats.Mean: %w", err)
	}

	if prec.MedianDelta, err = stats.Median(deltas); err != nil {
		return prec, fmt.Errorf("stats.Median: %w", err)
	}

	if prec.StdDelta, err = stats.StandardDeviation(deltas); err != nil {
		return prec, fmt.Errorf("stats.StandardDeviation: %w", err)
	}

	if prec.MinPrecision, err = stats.Min(precisions); err != nil {
		return prec, fmt.Errorf("stats.Min: %w", err)
	}

	if prec.MaxPrecision, err = stats.Max(precisions); err != nil {
		return prec, fmt.Errorf("stats.Max: %w", err)
	}

	if prec.MedianPrecision, err = stats.Median(precisions); err != nil {
		return prec, fmt.Errorf("stats.Median: %w", err)
	}

	prec.MeanPrecision = -math.Log2(prec.MeanDelta)

	return prec, nil
}

// EvaluationStats evaluates p at each point with float64 arithmetic and
// compares the results with an evaluation at prec bits of precision of the
// same polynomial.
func EvaluationStats(p *poly.Polynomial[float64], points []float64, prec uint) (st Stats, err error) {

	var f field.BigFloats
	if f, err = field.NewBigFloats(prec); err != nil {
		return st, fmt.Errorf("cannot EvaluationStats: %w", err)
	}

	ref := Lift(p, f)

	want := make([]*big.Float, len(points))
	have := make([]float64, len(points))

	for i, x := range points {
		want[i] = ref.Evaluate(bignum.NewFloat(x, prec))
		have[i] = p.Evaluate(x)
	}

	if st, err = GetStats(want, have); err != nil {
		return st, fmt.Errorf("cannot EvaluationStats: %w", err)
	}

	return
}

// Lift returns p with its coefficients converted exactly to *big.Float in the field f.
func Lift(p *poly.Polynomial[float64], f field.BigFloats) *poly.Polynomial[*big.Float] {
	coeffs := p.Coefficients()
	lifted := make([]*big.Float, len(coeffs))
	for i, c := range coeffs {
		lifted[i] = bignum.NewFloat(c, f.Prec())
	}
	return poly.NewPolynomial[*big.Float](f, p.Representation(), lifted)
}
