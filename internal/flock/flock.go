// Package flock implements a whole-file advisory lock on an existing file.
//
// The lock is bound to the open file description, so two Acquire calls on the
// same path conflict even inside one process. Release the lock with
// [Lock.Release]; closing the descriptor also drops it.
package flock

import (
	"errors"
	"os"

	"github.com/hupe1980/mmlog/internal/fs"
)

// Mode selects shared or exclusive locking.
type Mode int

const (
	// Shared allows any number of concurrent Shared holders.
	Shared Mode = iota
	// Exclusive excludes every other holder.
	Exclusive
)

func (m Mode) String() string {
	switch m {
	case Shared:
		return "shared"
	case Exclusive:
		return "exclusive"
	default:
		return "unknown"
	}
}

// Lock is a held advisory lock.
type Lock struct {
	f    fs.File
	mode Mode
}

// Acquire opens path and blocks until the lock is granted.
func Acquire(fsys fs.FileSystem, path string, mode Mode) (*Lock, error) {
	flag := os.O_RDONLY
	if mode == Exclusive {
		flag = os.O_RDWR
	}
	f, err := fsys.OpenFile(path, flag, 0)
	if err != nil {
		return nil, err
	}
	if err := osLock(f, mode); err != nil {
		f.Close()
		return nil, &os.PathError{Op: "lock " + mode.String(), Path: path, Err: err}
	}
	return &Lock{f: f, mode: mode}, nil
}

// Mode returns the mode the lock was acquired with.
func (l *Lock) Mode() Mode { return l.mode }

// Release unlocks and closes the file. It is safe to call on a nil Lock.
func (l *Lock) Release() error {
	if l == nil || l.f == nil {
		return nil
	}
	unlockErr := osUnlock(l.f)
	closeErr := l.f.Close()
	l.f = nil
	return errors.Join(unlockErr, closeErr)
}
