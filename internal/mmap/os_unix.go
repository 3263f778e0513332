//go:build unix || linux || darwin || freebsd || openbsd || netbsd

package mmap

import (
	"github.com/hupe1980/mmlog/internal/fs"
	"golang.org/x/sys/unix"
)

func osMap(f fs.File, size int, writable bool) ([]byte, func([]byte) error, error) {
	prot := unix.PROT_READ
	if writable {
		prot |= unix.PROT_WRITE
	}
	flags := unix.MAP_SHARED

	data, err := unix.Mmap(int(f.Fd()), 0, size, prot, flags)
	if err != nil {
		return nil, nil, err
	}

	return data, unix.Munmap, nil
}

func osFlush(data []byte) error {
	return unix.Msync(data, unix.MS_SYNC)
}
