package buffer

import (
	"encoding/binary"
	"fmt"
	"io"
)

// MaxBytesLength is the largest length prefix accepted by ReadBytes.
const MaxBytesLength = 1 << 24

// Read reads exactly len(c) bytes from r into c.
func Read(r Reader, c []byte) (n int64, err error) {
	nint, err := io.ReadFull(r, c)
	return int64(nint), err
}

// ReadUint8 reads a byte from r into c.
func ReadUint8(r Reader, c *uint8) (n int64, err error) {

	if c == nil {
		return 0, fmt.Errorf("cannot ReadUint8: c is nil")
	}

	var bb = [1]byte{}

	if n, err = Read(r, bb[:]); err != nil {
		return
	}

	*c = bb[0]

	return n, nil
}

// ReadUint64 reads a little endian uint64 from r into c.
func ReadUint64(r Reader, c *uint64) (n int64, err error) {

	if c == nil {
		return 0, fmt.Errorf("cannot ReadUint64: c is nil")
	}

	var bb = [8]byte{}

	if n, err = Read(r, bb[:]); err != nil {
		return
	}

	*c = binary.LittleEndian.Uint64(bb[:])

	return n, nil
}

// ReadBytes reads a length-prefixed slice of bytes written by WriteBytes.
func ReadBytes(r Reader) (c []byte, n int64, err error) {

	var size uint64
	if n, err = ReadUint64(r, &size); err != nil {
		return nil, n, fmt.Errorf("cannot ReadBytes: %w", err)
	}

	if size > MaxBytesLength {
		return nil, n, fmt.Errorf("cannot ReadBytes: length prefix %d exceeds %d", size, MaxBytesLength)
	}

	c = make([]byte, size)

	var inc int64
	if inc, err = Read(r, c); err != nil {
		return nil, n + inc, fmt.Errorf("cannot ReadBytes: %w", err)
	}

	return c, n + inc, nil
}
