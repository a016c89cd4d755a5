package poly

import (
	"bufio"
	"fmt"
	"io"
	"math"

	"github.com/tuneinsight/unipoly/field"
	"github.com/tuneinsight/unipoly/utils/buffer"
)

// The binary format of a polynomial is
//
//	[uint8 representation][uint64 count][terms...]
//
// where a dense polynomial writes its Degree()+1 coefficients and a sparse
// polynomial writes count pairs [uint64 exponent][coefficient]. Coefficients
// are encoded by the field, which must implement field.Codec.

func (p *Polynomial[T]) codec() (field.Codec[T], error) {
	codec, ok := p.field.(field.Codec[T])
	if !ok {
		return nil, fmt.Errorf("field of type %T does not comply to %T", p.field, new(field.Codec[T]))
	}
	return codec, nil
}

// BinarySize returns the serialized size of p in bytes.
// It panics if the field of p does not implement field.Codec.
func (p *Polynomial[T]) BinarySize() (size int) {

	codec, err := p.codec()
	if err != nil {
		panic(fmt.Errorf("cannot BinarySize: %w", err))
	}

	size = 1 + 8

	switch p.Representation() {
	case Dense:
		for e := 0; e <= p.Degree(); e++ {
			size += codec.BinarySize(p.store.At(e))
		}
	default:
		for _, c := range p.store.Terms() {
			size += 8 + codec.BinarySize(c)
		}
	}

	return
}

// WriteTo writes p on an io.Writer. It implements the io.WriterTo interface
// and writes exactly p.BinarySize() bytes on w.
//
// Unless w implements the buffer.Writer interface, it is wrapped into a
// bufio.Writer.
func (p *Polynomial[T]) WriteTo(w io.Writer) (n int64, err error) {

	switch w := w.(type) {
	case buffer.Writer:

		var codec field.Codec[T]
		if codec, err = p.codec(); err != nil {
			return 0, fmt.Errorf("cannot WriteTo: %w", err)
		}

		var inc int64
		if inc, err = buffer.WriteUint8(w, uint8(p.Representation())); err != nil {
			return n + inc, fmt.Errorf("buffer.WriteUint8: %w", err)
		}
		n += inc

		switch p.Representation() {
		case Dense:

			deg := p.Degree()

			if inc, err = buffer.WriteUint64(w, uint64(deg+1)); err != nil {
				return n + inc, fmt.Errorf("buffer.WriteUint64: %w", err)
			}
			n += inc

			for e := 0; e <= deg; e++ {
				if inc, err = codec.WriteElement(w, p.store.At(e)); err != nil {
					return n + inc, fmt.Errorf("%T.WriteElement: %w", codec, err)
				}
				n += inc
			}

		default:

			if inc, err = buffer.WriteUint64(w, uint64(p.store.Len())); err != nil {
				return n + inc, fmt.Errorf("buffer.WriteUint64: %w", err)
			}
			n += inc

			for e, c := range p.store.Terms() {

				if inc, err = buffer.WriteUint64(w, uint64(e)); err != nil {
					return n + inc, fmt.Errorf("buffer.WriteUint64: %w", err)
				}
				n += inc

				if inc, err = codec.WriteElement(w, c); err != nil {
					return n + inc, fmt.Errorf("%T.WriteElement: %w", codec, err)
				}
				n += inc
			}
		}

		return n, w.Flush()

	default:
		return p.WriteTo(bufio.NewWriter(w))
	}
}

// ReadFrom reads a polynomial written by WriteTo into p. It implements the
// io.ReaderFrom interface. The field of p must be set, for instance with
// NewZero, and the representation of p is replaced by the one that was written.
//
// Unless r implements the buffer.Reader interface, it is wrapped into a
// bufio.Reader.
func (p *Polynomial[T]) ReadFrom(r io.Reader) (n int64, err error) {

	switch r := r.(type) {
	case buffer.Reader:

		if p.field == nil {
			return 0, fmt.Errorf("cannot ReadFrom: receiver has no field")
		}

		var codec field.Codec[T]
		if codec, err = p.codec(); err != nil {
			return 0, fmt.Errorf("cannot ReadFrom: %w", err)
		}

		var inc int64

		var rep uint8
		if inc, err = buffer.ReadUint8(r, &rep); err != nil {
			return n + inc, fmt.Errorf("buffer.ReadUint8: %w", err)
		}
		n += inc

		if Representation(rep) != Dense && Representation(rep) != Sparse {
			return n, fmt.Errorf("cannot ReadFrom: invalid representation %d", rep)
		}

		var count uint64
		if inc, err = buffer.ReadUint64(r, &count); err != nil {
			return n + inc, fmt.Errorf("buffer.ReadUint64: %w", err)
		}
		n += inc

		if count > math.MaxInt32 {
			return n, fmt.Errorf("cannot ReadFrom: invalid term count %d", count)
		}

		store := NewStore(p.field, Representation(rep), 0)

		var c T

		for i := 0; i < int(count); i++ {

			e := i

			if Representation(rep) == Sparse {

				var exp uint64
				if inc, err = buffer.ReadUint64(r, &exp); err != nil {
					return n + inc, fmt.Errorf("buffer.ReadUint64: %w", err)
				}
				n += inc

				if exp > math.MaxInt32 {
					return n, fmt.Errorf("cannot ReadFrom: invalid exponent %d", exp)
				}

				e = int(exp)
			}

			if c, inc, err = codec.ReadElement(r); err != nil {
				return n + inc, fmt.Errorf("%T.ReadElement: %w", codec, err)
			}
			n += inc

			store.Set(e, c)
		}

		p.store = store

		return n, nil

	default:
		return p.ReadFrom(bufio.NewReader(r))
	}
}

// MarshalBinary encodes p on a newly allocated slice of bytes.
func (p *Polynomial[T]) MarshalBinary() (data []byte, err error) {

	if _, err = p.codec(); err != nil {
		return nil, fmt.Errorf("cannot MarshalBinary: %w", err)
	}

	buf := buffer.NewBufferSize(p.BinarySize())
	_, err = p.WriteTo(buf)
	return buf.Bytes(), err
}

// UnmarshalBinary decodes a slice of bytes generated by MarshalBinary or
// WriteTo into p, whose field must be set.
func (p *Polynomial[T]) UnmarshalBinary(data []byte) (err error) {
	_, err = p.ReadFrom(buffer.NewBuffer(data))
	return
}
