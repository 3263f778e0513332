// Package mmlog provides a fixed-record, append-only log stored in a single
// memory-mapped file.
//
// A log file is a fixed header followed by history_size slots of
// element_size bytes. The file is sized once at creation and never grows;
// appends fill the slots in order and reads address them by 1-indexed
// sequence number.
//
// # Quick Start
//
//	log, err := mmlog.Create("events", "./data", 4, 1024)
//	if err != nil { ... }
//
//	seq, err := log.Append([]byte{0x41, 0x42, 0x43, 0x44}) // seq == 1
//
//	buf := make([]byte, 4)
//	count, err := log.ReadAt(buf, seq)
//
//	switch status, err := log.ReadLast(buf); status {
//	case mmlog.ReadOK:    // buf holds the newest record
//	case mmlog.ReadEmpty: // nothing appended yet
//	case mmlog.ReadFailed:
//	    return err
//	}
//
// The same operations exist as free functions taking (name, folder), e.g.
// mmlog.Append(rec, "events", "./data"). They build a transient *Log.
//
// # File Format
//
//	[ name: 50 bytes | element_size: u64 | history_size: u64 | current_seq: u64 ]
//	[ record 1 ] [ record 2 ] ... [ record history_size ]
//
// Integers are little-endian. The header is HeaderSize (74) bytes; record
// seq lives at HeaderSize + (seq-1)*element_size.
//
// # I/O Model
//
// Every operation reloads the header from disk and performs each region
// access as its own open/mmap/copy/munmap/close cycle. No mapping or
// descriptor survives a call, and no header is cached in memory.
//
// # Concurrency
//
// Append is a read-modify-write of the header. It holds an exclusive
// advisory lock on the file for its whole duration; reads hold a shared
// lock. The lock works across goroutines and processes. WithoutLocking
// turns it off for callers that guarantee a single writer themselves.
//
// # Errors
//
// Failures are classified with sentinels usable with errors.Is:
// ErrNotFound, ErrIO, ErrCapacityExceeded, ErrInvalidSequence,
// ErrNameTooLong, and a few argument and corruption errors. Typed errors
// (*CapacityError, *SequenceError, *NameError, *IOError) carry the detail.
package mmlog
