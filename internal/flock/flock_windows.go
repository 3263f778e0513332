//go:build windows

package flock

import (
	"github.com/hupe1980/mmlog/internal/fs"
	"golang.org/x/sys/windows"
)

const (
	reserved = 0
	allBytes = ^uint32(0)
)

func osLock(f fs.File, mode Mode) error {
	var flags uint32
	if mode == Exclusive {
		flags = windows.LOCKFILE_EXCLUSIVE_LOCK
	}
	// LockFileEx needs an OVERLAPPED even for synchronous handles; a zero
	// offset locks from the start of the file.
	ol := new(windows.Overlapped)
	return windows.LockFileEx(windows.Handle(f.Fd()), flags, reserved, allBytes, allBytes, ol)
}

func osUnlock(f fs.File) error {
	ol := new(windows.Overlapped)
	return windows.UnlockFileEx(windows.Handle(f.Fd()), reserved, allBytes, allBytes, ol)
}
