package mmlog

import (
	"bytes"
	"fmt"

	"github.com/hupe1980/mmlog/internal/conv"
	"github.com/hupe1980/mmlog/internal/cursor"
)

const (
	// NameCapacity is the number of bytes reserved for the log name.
	NameCapacity = 50
	// MaxNameLen is the longest accepted name. One byte of NameCapacity is
	// kept so the stored name is always NUL-terminated.
	MaxNameLen = NameCapacity - 1
	// HeaderSize is the serialized header length in bytes.
	HeaderSize = NameCapacity + 3*cursor.Uint64Size
)

// Header is the fixed-layout record at offset 0 of every log file.
//
// On disk:
//
//	[name: 50 bytes, zero padded][element_size: u64][history_size: u64][current_seq: u64]
//
// Integers are little-endian.
type Header struct {
	// Name identifies the log. Set once at creation.
	Name string
	// ElementSize is the size of one record in bytes.
	ElementSize uint64
	// HistorySize is the number of record slots.
	HistorySize uint64
	// CurrentSeq is the number of records appended so far.
	CurrentSeq uint64
}

// NewHeader returns a header for an empty log.
func NewHeader(name string, elementSize, historySize uint64) (*Header, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	if elementSize == 0 {
		return nil, ErrInvalidElementSize
	}
	h := &Header{
		Name:        name,
		ElementSize: elementSize,
		HistorySize: historySize,
	}
	if _, err := h.FileSize(); err != nil {
		return nil, err
	}
	return h, nil
}

func validateName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty", ErrInvalidName)
	}
	if len(name) > MaxNameLen {
		return &NameError{Name: name, Max: MaxNameLen}
	}
	if bytes.IndexByte([]byte(name), 0) >= 0 {
		return fmt.Errorf("%w: %q contains NUL", ErrInvalidName, name)
	}
	return nil
}

// MarshalTo serializes h into buf and returns the number of bytes written.
//
// Any name UnmarshalBinary can produce (up to NameCapacity bytes) is
// accepted here; the stricter MaxNameLen only applies to NewHeader.
func (h *Header) MarshalTo(buf []byte) (int, error) {
	if len(h.Name) > NameCapacity {
		return 0, &NameError{Name: h.Name, Max: NameCapacity}
	}

	w := cursor.NewWriter(buf)
	if err := w.PutBytes([]byte(h.Name), NameCapacity); err != nil {
		return w.Offset(), err
	}
	for _, v := range [...]uint64{h.ElementSize, h.HistorySize, h.CurrentSeq} {
		if err := w.PutUint64(v); err != nil {
			return w.Offset(), err
		}
	}
	return w.Offset(), nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (h *Header) MarshalBinary() ([]byte, error) {
	buf := make([]byte, HeaderSize)
	if _, err := h.MarshalTo(buf); err != nil {
		return nil, err
	}
	return buf, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
// data must hold at least HeaderSize bytes; anything after is ignored.
func (h *Header) UnmarshalBinary(data []byte) error {
	r := cursor.NewReader(data)

	var name [NameCapacity]byte
	if err := r.Bytes(name[:], NameCapacity); err != nil {
		return err
	}

	var fields [3]uint64
	for i := range fields {
		v, err := r.Uint64()
		if err != nil {
			return err
		}
		fields[i] = v
	}

	n := bytes.IndexByte(name[:], 0)
	if n < 0 {
		n = NameCapacity
	}
	h.Name = string(name[:n])
	h.ElementSize = fields[0]
	h.HistorySize = fields[1]
	h.CurrentSeq = fields[2]
	return nil
}

// FileSize returns HeaderSize + HistorySize*ElementSize.
func (h *Header) FileSize() (int64, error) {
	data, err := conv.MulUint64(h.HistorySize, h.ElementSize)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidSize, err)
	}
	total, err := conv.AddUint64(HeaderSize, data)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidSize, err)
	}
	size, err := conv.Uint64ToInt64(total)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidSize, err)
	}
	return size, nil
}

// SlotOffset returns the byte offset of the record with 1-indexed sequence
// number seq. It does not check seq against CurrentSeq.
func (h *Header) SlotOffset(seq uint64) (int64, error) {
	if seq == 0 {
		return 0, &SequenceError{Seq: seq, Current: h.CurrentSeq}
	}
	rel, err := conv.MulUint64(seq-1, h.ElementSize)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidSize, err)
	}
	abs, err := conv.AddUint64(HeaderSize, rel)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidSize, err)
	}
	off, err := conv.Uint64ToInt64(abs)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidSize, err)
	}
	return off, nil
}

// validate checks h against the actual length of the file it was read from.
func (h *Header) validate(fileSize int64) error {
	if h.ElementSize == 0 {
		return fmt.Errorf("%w: element size is zero", ErrCorruptHeader)
	}
	if h.CurrentSeq > h.HistorySize {
		return fmt.Errorf("%w: current seq %d exceeds history size %d", ErrCorruptHeader, h.CurrentSeq, h.HistorySize)
	}
	want, err := h.FileSize()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrCorruptHeader, err)
	}
	if want != fileSize {
		return fmt.Errorf("%w: file is %d bytes, header describes %d", ErrCorruptHeader, fileSize, want)
	}
	return nil
}
