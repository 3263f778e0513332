// Package cursor provides bounded, fixed-width binary encoding over a byte slice.
//
// A Writer or Reader advances through its buffer by a width determined only by
// the type being encoded, never by the host platform:
//
//   - bytes occupy 1 byte
//   - integers are uint64, little-endian, 8 bytes
//
// Every call checks the remaining capacity first and returns ErrShortBuffer
// instead of touching bytes outside the buffer.
//
//	w := cursor.NewWriter(buf)
//	_ = w.PutUint64(42)
//	r := cursor.NewReader(buf)
//	v, _ := r.Uint64()
package cursor
