package mmap

import (
	"os"

	"github.com/hupe1980/mmlog/internal/fs"
)

// CreateFile creates path with a length of exactly size zero bytes.
// An existing file at path is truncated and replaced.
func CreateFile(fsys fs.FileSystem, path string, size int64) (err error) {
	if size < 0 {
		return ErrInvalidSize
	}

	f, err := fsys.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	return f.Truncate(size)
}

// ReadRegion copies len(dst) bytes starting at offset out of the file at path.
// The file is opened, mapped, read, unmapped and closed within the call.
func ReadRegion(fsys fs.FileSystem, path string, dst []byte, offset int64) error {
	return withRegion(fsys, path, offset, len(dst), false, false, func(r *Region) error {
		_, err := r.CopyTo(dst)
		return err
	})
}

// WriteRegion copies src into the file at path starting at offset.
// When sync is true the mapping is flushed to disk before it is released.
func WriteRegion(fsys fs.FileSystem, path string, src []byte, offset int64, sync bool) error {
	return withRegion(fsys, path, offset, len(src), true, sync, func(r *Region) error {
		_, err := r.CopyFrom(src)
		return err
	})
}

func withRegion(fsys fs.FileSystem, path string, offset int64, size int, writable, sync bool, fn func(*Region) error) (err error) {
	if offset < 0 {
		return ErrInvalidOffset
	}

	flag := os.O_RDONLY
	if writable {
		flag = os.O_RDWR
	}
	f, err := fsys.OpenFile(path, flag, 0)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	m, err := Map(f, writable)
	if err != nil {
		return err
	}
	defer func() {
		if unmapErr := m.Close(); unmapErr != nil && err == nil {
			err = unmapErr
		}
	}()

	if offset > int64(m.Size()) {
		return ErrOutOfBounds
	}
	r, err := m.Region(int(offset), size)
	if err != nil {
		return err
	}
	if err := fn(r); err != nil {
		return err
	}
	if sync {
		return m.Flush()
	}
	return nil
}
