// Package sampling implements sampling of bytes, integers and floats from a PRNG.
package sampling

import (
	"encoding/binary"
	"fmt"
	"io"
)

// ReadUint64 reads 8 bytes from prng and returns them as a little endian uint64.
func ReadUint64(prng PRNG) (r uint64, err error) {
	var b [8]byte
	if _, err = io.ReadFull(prng, b[:]); err != nil {
		return 0, fmt.Errorf("cannot ReadUint64: %w", err)
	}
	return binary.LittleEndian.Uint64(b[:]), nil
}

// ReadUint64Below returns a uniform value in [0, bound) by rejection sampling.
// The bound must be non-zero.
func ReadUint64Below(prng PRNG, bound uint64) (r uint64, err error) {

	if bound == 0 {
		return 0, fmt.Errorf("cannot ReadUint64Below: bound is zero")
	}

	// largest multiple of bound that fits in an uint64
	limit := ^uint64(0) - (^uint64(0) % bound)

	for {
		if r, err = ReadUint64(prng); err != nil {
			return
		}

		if r < limit {
			return r % bound, nil
		}
	}
}

// ReadFloat64 returns a uniform float64 in [min, max).
func ReadFloat64(prng PRNG, min, max float64) (f float64, err error) {

	var r uint64
	if r, err = ReadUint64(prng); err != nil {
		return
	}

	// 53 random bits scaled to [0, 1)
	f = float64(r>>11) / (1 << 53)

	return min + f*(max-min), nil
}
