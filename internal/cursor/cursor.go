package cursor

import (
	"encoding/binary"
	"errors"
)

const (
	// ByteSize is the encoded width of a single byte.
	ByteSize = 1
	// Uint64Size is the encoded width of an integer.
	Uint64Size = 8
)

// ByteOrder is the byte order used for all integers.
var ByteOrder = binary.LittleEndian

// ErrShortBuffer is returned when a field does not fit in the remaining buffer.
var ErrShortBuffer = errors.New("cursor: buffer too small")

// Writer encodes fields into a fixed buffer.
type Writer struct {
	buf []byte
	off int
}

// NewWriter returns a Writer positioned at the start of buf.
func NewWriter(buf []byte) *Writer {
	return &Writer{buf: buf}
}

// PutByte writes a single byte.
func (w *Writer) PutByte(b byte) error {
	if len(w.buf)-w.off < ByteSize {
		return ErrShortBuffer
	}
	w.buf[w.off] = b
	w.off += ByteSize
	return nil
}

// PutBytes writes exactly n bytes: src zero padded, or truncated to n.
func (w *Writer) PutBytes(src []byte, n int) error {
	if n < 0 || len(w.buf)-w.off < n {
		return ErrShortBuffer
	}
	dst := w.buf[w.off : w.off+n]
	c := copy(dst, src)
	clear(dst[c:])
	w.off += n
	return nil
}

// PutUint64 writes v as 8 little-endian bytes.
func (w *Writer) PutUint64(v uint64) error {
	if len(w.buf)-w.off < Uint64Size {
		return ErrShortBuffer
	}
	ByteOrder.PutUint64(w.buf[w.off:], v)
	w.off += Uint64Size
	return nil
}

// Offset returns the number of bytes written so far.
func (w *Writer) Offset() int { return w.off }

// Reader decodes fields from a fixed buffer.
type Reader struct {
	buf []byte
	off int
}

// NewReader returns a Reader positioned at the start of buf.
func NewReader(buf []byte) *Reader {
	return &Reader{buf: buf}
}

// Byte reads a single byte.
func (r *Reader) Byte() (byte, error) {
	if len(r.buf)-r.off < ByteSize {
		return 0, ErrShortBuffer
	}
	b := r.buf[r.off]
	r.off += ByteSize
	return b, nil
}

// Bytes reads n bytes into dst, which must hold at least n bytes.
func (r *Reader) Bytes(dst []byte, n int) error {
	if n < 0 || len(r.buf)-r.off < n || len(dst) < n {
		return ErrShortBuffer
	}
	copy(dst, r.buf[r.off:r.off+n])
	r.off += n
	return nil
}

// Uint64 reads an 8-byte little-endian integer.
func (r *Reader) Uint64() (uint64, error) {
	if len(r.buf)-r.off < Uint64Size {
		return 0, ErrShortBuffer
	}
	v := ByteOrder.Uint64(r.buf[r.off:])
	r.off += Uint64Size
	return v, nil
}

// Offset returns the number of bytes consumed so far.
func (r *Reader) Offset() int { return r.off }
