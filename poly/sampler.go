package poly

import (
	"fmt"

	"github.com/tuneinsight/unipoly/field"
	"github.com/tuneinsight/unipoly/utils/sampling"
)

// UniformSampler draws polynomials with coefficients sampled by the field.
type UniformSampler[T any] struct {
	field  field.Field[T]
	source field.Sampler[T]
	prng   sampling.PRNG
	rep    Representation
}

// NewUniformSampler returns a sampler of polynomials with the given representation.
// The field must implement field.Sampler.
func NewUniformSampler[T any](f field.Field[T], prng sampling.PRNG, rep Representation) (*UniformSampler[T], error) {

	source, ok := f.(field.Sampler[T])
	if !ok {
		return nil, fmt.Errorf("cannot NewUniformSampler: field of type %T does not comply to %T", f, new(field.Sampler[T]))
	}

	return &UniformSampler[T]{
		field:  f,
		source: source,
		prng:   prng,
		rep:    rep,
	}, nil
}

// ReadNew returns a random polynomial of exactly the given degree.
// The leading coefficient is resampled until it is nonzero.
// A negative degree returns the zero polynomial.
func (s *UniformSampler[T]) ReadNew(degree int) (p *Polynomial[T], err error) {

	p = NewZero(s.field, s.rep)

	if degree < 0 {
		return
	}

	if s.rep == Dense {
		p.store = newDenseStore(s.field, degree+1)
	}

	var c T

	for e := 0; e < degree; e++ {
		if c, err = s.source.Sample(s.prng); err != nil {
			return nil, fmt.Errorf("cannot ReadNew: %w", err)
		}
		p.store.Set(e, c)
	}

	for {
		if c, err = s.source.Sample(s.prng); err != nil {
			return nil, fmt.Errorf("cannot ReadNew: %w", err)
		}

		if !s.field.IsZero(c) {
			break
		}
	}

	p.store.Set(degree, c)

	return
}

// ReadMonicNew returns a random monic polynomial of the given degree >= 0.
func (s *UniformSampler[T]) ReadMonicNew(degree int) (p *Polynomial[T], err error) {

	if degree < 0 {
		return nil, fmt.Errorf("cannot ReadMonicNew: invalid degree %d", degree)
	}

	if p, err = s.ReadNew(degree - 1); err != nil {
		return nil, fmt.Errorf("cannot ReadMonicNew: %w", err)
	}

	p.store.Set(degree, s.field.One())

	return
}
