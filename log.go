package mmlog

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/hupe1980/mmlog/internal/conv"
	"github.com/hupe1980/mmlog/internal/flock"
	"github.com/hupe1980/mmlog/internal/mmap"
)

// ReadStatus is the outcome of ReadLast.
type ReadStatus int

const (
	// ReadFailed means the read returned an error.
	ReadFailed ReadStatus = iota
	// ReadOK means the most recent record was copied into the buffer.
	ReadOK
	// ReadEmpty means the log holds no records; the buffer was not touched.
	ReadEmpty
)

func (s ReadStatus) String() string {
	switch s {
	case ReadOK:
		return "ok"
	case ReadEmpty:
		return "empty"
	case ReadFailed:
		return "failed"
	default:
		return fmt.Sprintf("ReadStatus(%d)", int(s))
	}
}

// Log is a handle to a log file: a resolved path plus options.
//
// A Log caches nothing from the file. Every method reloads the header, so
// several handles (or processes) may share one file.
type Log struct {
	name string
	path string
	opts options
}

func newLog(name, folder string, optFns []Option) *Log {
	return &Log{
		name: name,
		path: ResolvePath(name, folder),
		opts: applyOptions(optFns),
	}
}

// ResolvePath returns folder/name, or name when folder is empty.
func ResolvePath(name, folder string) string {
	if folder == "" {
		return name
	}
	return filepath.Join(folder, name)
}

// Open returns a handle to an existing log after checking its header.
func Open(name, folder string, optFns ...Option) (*Log, error) {
	l := newLog(name, folder, optFns)
	if _, err := l.Header(); err != nil {
		return nil, err
	}
	return l, nil
}

// Name returns the name the log was opened with.
func (l *Log) Name() string { return l.name }

// Path returns the resolved file path.
func (l *Log) Path() string { return l.path }

func (l *Log) create(elementSize, historySize uint64) error {
	h, err := NewHeader(l.name, elementSize, historySize)
	if err != nil {
		return err
	}
	size, err := h.FileSize()
	if err != nil {
		return err
	}
	if err := mmap.CreateFile(l.opts.fs, l.path, size); err != nil {
		return translateError("create", l.path, err)
	}
	if err := l.saveHeader(h); err != nil {
		// A file without a header is unreadable; do not leave it behind.
		if rmErr := l.opts.fs.Remove(l.path); rmErr != nil {
			l.opts.logger.Warn("removing partial log failed", "path", l.path, "error", rmErr)
		}
		return err
	}
	return nil
}

// Header loads and validates the header.
func (l *Log) Header() (*Header, error) {
	start := time.Now()
	var h *Header
	err := l.withLock(flock.Shared, func() error {
		var err error
		h, err = l.loadHeader()
		return err
	})
	l.opts.metricsCollector.RecordRead(time.Since(start), err)
	if err != nil {
		l.opts.logger.LogRead(l.path, 0, err)
		return nil, err
	}
	return h, nil
}

// LatestSeq returns the number of records appended so far.
func (l *Log) LatestSeq() (uint64, error) {
	h, err := l.Header()
	if err != nil {
		return 0, err
	}
	return h.CurrentSeq, nil
}

// Append writes record into the next free slot and returns the new record
// count, which is also the sequence number of record.
//
// record must be exactly ElementSize bytes. Appending to a full log fails
// with a *CapacityError.
func (l *Log) Append(record []byte) (uint64, error) {
	start := time.Now()
	var seq uint64
	err := l.withLock(flock.Exclusive, func() error {
		var err error
		seq, err = l.append(record)
		return err
	})
	l.opts.metricsCollector.RecordAppend(time.Since(start), err)
	l.opts.logger.LogAppend(l.path, seq, err)
	if err != nil {
		return 0, err
	}
	return seq, nil
}

func (l *Log) append(record []byte) (uint64, error) {
	h, err := l.loadHeader()
	if err != nil {
		return 0, err
	}
	if n, _ := conv.IntToUint64(len(record)); n != h.ElementSize {
		return 0, fmt.Errorf("%w: got %d bytes, want %d", ErrRecordSize, len(record), h.ElementSize)
	}
	if h.CurrentSeq >= h.HistorySize {
		return 0, &CapacityError{Path: l.path, Capacity: h.HistorySize}
	}

	off, err := h.SlotOffset(h.CurrentSeq + 1)
	if err != nil {
		return 0, err
	}
	// Encode the advanced header first so an unencodable header fails
	// before the record slot is touched.
	next := *h
	next.CurrentSeq++
	buf, err := next.MarshalBinary()
	if err != nil {
		return 0, err
	}

	if err := mmap.WriteRegion(l.opts.fs, l.path, record, off, l.opts.sync); err != nil {
		return 0, translateError("write record", l.path, err)
	}
	if err := l.writeHeader(buf); err != nil {
		return 0, err
	}
	return next.CurrentSeq, nil
}

// ReadAt copies the record with 1-indexed sequence number seq into dst and
// returns the current record count.
//
// seq outside [1, LatestSeq()] fails with a *SequenceError. dst must hold at
// least ElementSize bytes; only the first ElementSize bytes are written.
func (l *Log) ReadAt(dst []byte, seq uint64) (uint64, error) {
	start := time.Now()
	var current uint64
	err := l.withLock(flock.Shared, func() error {
		h, err := l.loadHeader()
		if err != nil {
			return err
		}
		if seq == 0 || seq > h.CurrentSeq {
			return &SequenceError{Seq: seq, Current: h.CurrentSeq}
		}
		current = h.CurrentSeq
		return l.readSlot(h, dst, seq)
	})
	l.opts.metricsCollector.RecordRead(time.Since(start), err)
	l.opts.logger.LogRead(l.path, seq, err)
	if err != nil {
		return 0, err
	}
	return current, nil
}

// ReadLast copies the most recently appended record into dst.
//
// It returns ReadEmpty without touching dst when the log holds no records,
// and ReadFailed together with the error on any failure.
func (l *Log) ReadLast(dst []byte) (ReadStatus, error) {
	start := time.Now()
	status := ReadFailed
	var seq uint64
	err := l.withLock(flock.Shared, func() error {
		h, err := l.loadHeader()
		if err != nil {
			return err
		}
		if h.CurrentSeq == 0 {
			status = ReadEmpty
			return nil
		}
		seq = h.CurrentSeq
		if err := l.readSlot(h, dst, seq); err != nil {
			return err
		}
		status = ReadOK
		return nil
	})
	l.opts.metricsCollector.RecordRead(time.Since(start), err)
	l.opts.logger.LogRead(l.path, seq, err)
	if err != nil {
		return ReadFailed, err
	}
	return status, nil
}

func (l *Log) readSlot(h *Header, dst []byte, seq uint64) error {
	n, err := conv.Uint64ToInt(h.ElementSize)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSize, err)
	}
	if len(dst) < n {
		return fmt.Errorf("%w: need %d bytes, got %d", ErrShortBuffer, n, len(dst))
	}
	off, err := h.SlotOffset(seq)
	if err != nil {
		return err
	}
	if err := mmap.ReadRegion(l.opts.fs, l.path, dst[:n], off); err != nil {
		return translateError("read record", l.path, err)
	}
	return nil
}

func (l *Log) loadHeader() (*Header, error) {
	fi, err := l.opts.fs.Stat(l.path)
	if err != nil {
		return nil, translateError("stat", l.path, err)
	}
	if fi.Size() < HeaderSize {
		return nil, fmt.Errorf("%w: %s: file is %d bytes, shorter than header", ErrCorruptHeader, l.path, fi.Size())
	}

	buf := make([]byte, HeaderSize)
	if err := mmap.ReadRegion(l.opts.fs, l.path, buf, 0); err != nil {
		return nil, translateError("read header", l.path, err)
	}

	h := new(Header)
	if err := h.UnmarshalBinary(buf); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrCorruptHeader, l.path, err)
	}
	if err := h.validate(fi.Size()); err != nil {
		return nil, fmt.Errorf("%s: %w", l.path, err)
	}
	return h, nil
}

func (l *Log) saveHeader(h *Header) error {
	buf, err := h.MarshalBinary()
	if err != nil {
		return err
	}
	return l.writeHeader(buf)
}

func (l *Log) writeHeader(buf []byte) error {
	if err := mmap.WriteRegion(l.opts.fs, l.path, buf, 0, l.opts.sync); err != nil {
		return translateError("write header", l.path, err)
	}
	return nil
}

// withLock runs fn while holding the advisory lock on the log file.
func (l *Log) withLock(mode flock.Mode, fn func() error) error {
	if !l.opts.locking {
		return fn()
	}
	lock, err := flock.Acquire(l.opts.fs, l.path, mode)
	if err != nil {
		return translateError("lock", l.path, err)
	}
	err = fn()
	// The operation has already committed or failed; a release failure
	// cannot change its outcome.
	if relErr := lock.Release(); relErr != nil {
		l.opts.logger.Warn("lock release failed", "path", l.path, "error", relErr)
	}
	return err
}
