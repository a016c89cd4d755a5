package poly

import (
	"bufio"
	"fmt"

	"github.com/zeebo/blake3"

	"github.com/tuneinsight/unipoly/utils/buffer"
)

// DigestSize is the size in bytes of the output of Digest.
const DigestSize = 32

// Digest returns the blake3 hash of the canonical encoding of p, that is its
// degree followed by its coefficients from exponent 0 to the degree.
// Equal polynomials have equal digests regardless of their representation.
// The field of p must implement field.Codec.
func (p *Polynomial[T]) Digest() (digest []byte, err error) {

	codec, err := p.codec()
	if err != nil {
		return nil, fmt.Errorf("cannot Digest: %w", err)
	}

	hasher := blake3.New()
	w := bufio.NewWriter(hasher)

	deg := p.Degree()

	if _, err = buffer.WriteUint64(w, uint64(int64(deg))); err != nil {
		return nil, fmt.Errorf("cannot Digest: %w", err)
	}

	for e := 0; e <= deg; e++ {
		if _, err = codec.WriteElement(w, p.store.At(e)); err != nil {
			return nil, fmt.Errorf("cannot Digest: %w", err)
		}
	}

	if err = w.Flush(); err != nil {
		return nil, fmt.Errorf("cannot Digest: %w", err)
	}

	return hasher.Sum(nil)[:DigestSize], nil
}
