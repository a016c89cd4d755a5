package poly

import (
	"errors"
)

var (
	// ErrZeroDivisor is returned when dividing by the zero polynomial or by a zero scalar.
	ErrZeroDivisor = errors.New("division by zero")

	// ErrZeroGCD is returned when computing the GCD of two zero polynomials.
	ErrZeroGCD = errors.New("gcd of two zero polynomials is undefined")
)
