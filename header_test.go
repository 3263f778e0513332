package mmlog

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeader_Size(t *testing.T) {
	assert.Equal(t, 74, HeaderSize)

	h, err := NewHeader("abc", 4, 10)
	require.NoError(t, err)
	buf, err := h.MarshalBinary()
	require.NoError(t, err)
	assert.Len(t, buf, HeaderSize)
}

func TestHeader_NewHeader(t *testing.T) {
	h, err := NewHeader("abc", 4, 10)
	require.NoError(t, err)
	assert.Equal(t, "abc", h.Name)
	assert.Equal(t, uint64(4), h.ElementSize)
	assert.Equal(t, uint64(10), h.HistorySize)
	assert.Equal(t, uint64(0), h.CurrentSeq)

	size, err := h.FileSize()
	require.NoError(t, err)
	assert.Equal(t, int64(HeaderSize+40), size)
}

func TestHeader_NewHeaderValidation(t *testing.T) {
	_, err := NewHeader(strings.Repeat("n", MaxNameLen), 1, 1)
	assert.NoError(t, err)

	_, err = NewHeader(strings.Repeat("n", MaxNameLen+1), 1, 1)
	assert.ErrorIs(t, err, ErrNameTooLong)
	var ne *NameError
	require.ErrorAs(t, err, &ne)
	assert.Equal(t, MaxNameLen, ne.Max)

	_, err = NewHeader("", 1, 1)
	assert.ErrorIs(t, err, ErrInvalidName)

	_, err = NewHeader("a\x00b", 1, 1)
	assert.ErrorIs(t, err, ErrInvalidName)

	_, err = NewHeader("abc", 0, 10)
	assert.ErrorIs(t, err, ErrInvalidElementSize)

	_, err = NewHeader("abc", math.MaxUint64, 2)
	assert.ErrorIs(t, err, ErrInvalidSize)

	_, err = NewHeader("abc", 1, math.MaxInt64)
	assert.ErrorIs(t, err, ErrInvalidSize)
}

func TestHeader_RoundTrip(t *testing.T) {
	h := &Header{Name: "abc", ElementSize: 4, HistorySize: 10, CurrentSeq: 1009}
	buf, err := h.MarshalBinary()
	require.NoError(t, err)

	got := &Header{Name: "def", ElementSize: 78, HistorySize: 89, CurrentSeq: 7}
	require.NoError(t, got.UnmarshalBinary(buf))
	assert.Equal(t, h, got)
}

func TestHeader_Layout(t *testing.T) {
	h := &Header{Name: "ab", ElementSize: 0x0102, HistorySize: 3, CurrentSeq: 0xff}
	buf := make([]byte, HeaderSize+5)
	n, err := h.MarshalTo(buf)
	require.NoError(t, err)
	assert.Equal(t, HeaderSize, n)

	want := make([]byte, HeaderSize)
	want[0], want[1] = 'a', 'b'
	want[50], want[51] = 0x02, 0x01
	want[58] = 3
	want[66] = 0xff
	assert.Equal(t, want, buf[:HeaderSize])
}

func TestHeader_FullWidthName(t *testing.T) {
	// A name filling every byte (written by a foreign tool) still decodes.
	buf := make([]byte, HeaderSize)
	copy(buf, strings.Repeat("x", NameCapacity))

	var h Header
	require.NoError(t, h.UnmarshalBinary(buf))
	assert.Equal(t, strings.Repeat("x", NameCapacity), h.Name)

	// And encodes back to the same bytes.
	out, err := h.MarshalBinary()
	require.NoError(t, err)
	assert.Equal(t, buf, out)

	// Anything wider than the name field cannot be stored at all.
	h.Name = strings.Repeat("x", NameCapacity+1)
	_, err = h.MarshalBinary()
	assert.ErrorIs(t, err, ErrNameTooLong)
}

func TestHeader_ShortBuffer(t *testing.T) {
	h := &Header{Name: "abc", ElementSize: 4, HistorySize: 10}

	_, err := h.MarshalTo(make([]byte, HeaderSize-1))
	assert.ErrorIs(t, err, ErrShortBuffer)

	_, err = h.MarshalTo(make([]byte, 10))
	assert.ErrorIs(t, err, ErrShortBuffer)

	var got Header
	assert.ErrorIs(t, got.UnmarshalBinary(make([]byte, HeaderSize-1)), ErrShortBuffer)
	assert.ErrorIs(t, got.UnmarshalBinary(nil), ErrShortBuffer)
}

func TestHeader_SlotOffset(t *testing.T) {
	h := &Header{Name: "abc", ElementSize: 4, HistorySize: 10}

	off, err := h.SlotOffset(1)
	require.NoError(t, err)
	assert.Equal(t, int64(HeaderSize), off)

	off, err = h.SlotOffset(10)
	require.NoError(t, err)
	assert.Equal(t, int64(HeaderSize+36), off)

	_, err = h.SlotOffset(0)
	assert.ErrorIs(t, err, ErrInvalidSequence)

	h.ElementSize = math.MaxUint64
	_, err = h.SlotOffset(3)
	assert.ErrorIs(t, err, ErrInvalidSize)
}

func TestHeader_Validate(t *testing.T) {
	h := &Header{Name: "abc", ElementSize: 4, HistorySize: 10, CurrentSeq: 10}
	assert.NoError(t, h.validate(HeaderSize+40))
	assert.ErrorIs(t, h.validate(HeaderSize+41), ErrCorruptHeader)

	h.CurrentSeq = 11
	assert.ErrorIs(t, h.validate(HeaderSize+40), ErrCorruptHeader)

	h = &Header{Name: "abc", ElementSize: 0, HistorySize: 10}
	assert.ErrorIs(t, h.validate(HeaderSize), ErrCorruptHeader)

	h = &Header{Name: "abc", ElementSize: math.MaxUint64, HistorySize: 10}
	assert.ErrorIs(t, h.validate(HeaderSize), ErrCorruptHeader)
}
