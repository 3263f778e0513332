package mmlog

import (
	"errors"
	"fmt"
	iofs "io/fs"

	"github.com/hupe1980/mmlog/internal/cursor"
)

var (
	// ErrNotFound is returned when the log file does not exist.
	ErrNotFound = errors.New("log not found")
	// ErrIO is returned when a file, mapping or lock operation fails.
	ErrIO = errors.New("i/o failure")
	// ErrCapacityExceeded is returned when appending to a full log.
	ErrCapacityExceeded = errors.New("capacity exceeded")
	// ErrInvalidSequence is returned for a sequence number outside [1, current_seq].
	ErrInvalidSequence = errors.New("invalid sequence number")
	// ErrNameTooLong is returned when a name does not fit the header.
	ErrNameTooLong = errors.New("name too long")
	// ErrInvalidName is returned for an empty name or one containing NUL.
	ErrInvalidName = errors.New("invalid name")
	// ErrInvalidElementSize is returned when creating a log with zero-byte records.
	ErrInvalidElementSize = errors.New("element size must be positive")
	// ErrRecordSize is returned when an appended record is not element_size bytes.
	ErrRecordSize = errors.New("record size mismatch")
	// ErrInvalidSize is returned when the log layout does not fit a file offset.
	ErrInvalidSize = errors.New("log size out of range")
	// ErrCorruptHeader is returned when the header disagrees with the file.
	ErrCorruptHeader = errors.New("corrupt header")
	// ErrShortBuffer is returned when a destination buffer is too small.
	ErrShortBuffer = cursor.ErrShortBuffer
)

// CapacityError indicates an append to a log whose slots are all used.
type CapacityError struct {
	Path     string
	Capacity uint64
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("capacity exceeded: %s holds at most %d records", e.Path, e.Capacity)
}

func (e *CapacityError) Is(target error) bool { return target == ErrCapacityExceeded }

// SequenceError indicates a read of a sequence number that was never appended.
type SequenceError struct {
	Seq     uint64
	Current uint64
}

func (e *SequenceError) Error() string {
	return fmt.Sprintf("invalid sequence number: %d not in [1, %d]", e.Seq, e.Current)
}

func (e *SequenceError) Is(target error) bool { return target == ErrInvalidSequence }

// NameError indicates a name longer than the header can store.
type NameError struct {
	Name string
	Max  int
}

func (e *NameError) Error() string {
	return fmt.Sprintf("name too long: %d bytes, max %d", len(e.Name), e.Max)
}

func (e *NameError) Is(target error) bool { return target == ErrNameTooLong }

// IOError records the failed step, the file it touched and the cause.
//
// The original underlying error can be accessed via errors.Unwrap.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

func (e *IOError) Is(target error) bool { return target == ErrIO }

// translateError classifies a low-level failure from the mmap, fs or flock layer.
func translateError(op, path string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, iofs.ErrNotExist) {
		return fmt.Errorf("%w: %s: %w", ErrNotFound, path, err)
	}
	return &IOError{Op: op, Path: path, Err: err}
}
