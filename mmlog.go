package mmlog

import "time"

// Create creates (or replaces) the log file folder/name with room for
// historySize records of elementSize bytes each, and writes an empty header.
//
// An existing file at the same path is truncated and overwritten. If the
// header cannot be written the new file is removed again.
func Create(name, folder string, elementSize, historySize uint64, optFns ...Option) (*Log, error) {
	l := newLog(name, folder, optFns)

	start := time.Now()
	err := l.create(elementSize, historySize)
	l.opts.metricsCollector.RecordCreate(time.Since(start), err)
	l.opts.logger.LogCreate(l.path, elementSize, historySize, err)
	if err != nil {
		return nil, err
	}
	return l, nil
}

// SaveHeader writes h to offset 0 of the log file folder/name.
//
// It does not lock or validate against the file; it is the raw header store
// used by the other operations.
func SaveHeader(h *Header, name, folder string, optFns ...Option) error {
	return newLog(name, folder, optFns).saveHeader(h)
}

// LoadHeader reads and validates the header of the log file folder/name.
func LoadHeader(name, folder string, optFns ...Option) (*Header, error) {
	return newLog(name, folder, optFns).Header()
}

// Append writes record to the next free slot of folder/name and returns the
// new record count. See Log.Append.
func Append(record []byte, name, folder string, optFns ...Option) (uint64, error) {
	return newLog(name, folder, optFns).Append(record)
}

// ReadAt copies record seq of folder/name into dst and returns the current
// record count. See Log.ReadAt.
func ReadAt(dst []byte, seq uint64, name, folder string, optFns ...Option) (uint64, error) {
	return newLog(name, folder, optFns).ReadAt(dst, seq)
}

// LatestSeq returns the number of records appended to folder/name.
func LatestSeq(name, folder string, optFns ...Option) (uint64, error) {
	return newLog(name, folder, optFns).LatestSeq()
}

// ReadLast copies the most recent record of folder/name into dst.
// See Log.ReadLast.
func ReadLast(dst []byte, name, folder string, optFns ...Option) (ReadStatus, error) {
	return newLog(name, folder, optFns).ReadLast(dst)
}
