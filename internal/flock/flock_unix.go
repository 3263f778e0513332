//go:build unix || linux || darwin || freebsd || openbsd || netbsd

package flock

import (
	"github.com/hupe1980/mmlog/internal/fs"
	"golang.org/x/sys/unix"
)

func osLock(f fs.File, mode Mode) error {
	how := unix.LOCK_SH
	if mode == Exclusive {
		how = unix.LOCK_EX
	}
	for {
		err := unix.Flock(int(f.Fd()), how)
		if err != unix.EINTR {
			return err
		}
	}
}

func osUnlock(f fs.File) error {
	return unix.Flock(int(f.Fd()), unix.LOCK_UN)
}
