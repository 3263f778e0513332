package fs

import (
	"errors"
	"os"
	"strings"
	"sync"
)

// ErrInjected is the error returned by a Fault that does not set Err.
var ErrInjected = errors.New("injected fault error")

// Fault defines specific failure behavior.
type Fault struct {
	// FailAfterOpens lets this many opens of a matching file succeed, then
	// fails every further open. -1 to disable.
	FailAfterOpens int
	FailOnStat     bool
	FailOnTruncate bool
	FailOnClose    bool
	Err            error
}

// FaultyFS is a FileSystem wrapper that can inject errors.
type FaultyFS struct {
	FS      FileSystem
	mu      sync.Mutex
	rules   map[string]Fault // Filename pattern -> Fault
	opens   map[string]int   // Filename pattern -> opens seen
	Default Fault            // Fallback
}

// NewFaultyFS creates a new FaultyFS wrapping the provided FS (or Default if nil).
func NewFaultyFS(fs FileSystem) *FaultyFS {
	if fs == nil {
		fs = Default
	}
	return &FaultyFS{
		FS:    fs,
		rules: make(map[string]Fault),
		opens: make(map[string]int),
		Default: Fault{
			FailAfterOpens: -1,
		},
	}
}

// AddRule adds a fault injection rule for a specific file pattern.
// Zero-valued FailAfterOpens fails the very first open.
func (f *FaultyFS) AddRule(pattern string, fault Fault) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rules[pattern] = fault
	f.opens[pattern] = 0
}

// Opens returns how many times files matching pattern were opened.
func (f *FaultyFS) Opens(pattern string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.opens[pattern]
}

// match returns the fault for name and records an open when open is true.
// The caller must hold f.mu.
func (f *FaultyFS) match(name string, open bool) (Fault, bool) {
	fault := f.Default
	failOpen := false
	for pattern, rule := range f.rules {
		if !strings.Contains(name, pattern) {
			continue
		}
		fault = rule // last winning match
		if open {
			if rule.FailAfterOpens >= 0 && f.opens[pattern] >= rule.FailAfterOpens {
				failOpen = true
			}
			f.opens[pattern]++
		}
	}
	if fault.Err == nil {
		fault.Err = ErrInjected
	}
	return fault, failOpen
}

func (f *FaultyFS) OpenFile(name string, flag int, perm os.FileMode) (File, error) {
	f.mu.Lock()
	fault, failOpen := f.match(name, true)
	f.mu.Unlock()

	if failOpen {
		return nil, &os.PathError{Op: "open", Path: name, Err: fault.Err}
	}

	file, err := f.FS.OpenFile(name, flag, perm)
	if err != nil {
		return nil, err
	}
	return &faultyFile{File: file, fault: fault}, nil
}

func (f *FaultyFS) Remove(name string) error {
	return f.FS.Remove(name)
}

func (f *FaultyFS) Stat(name string) (os.FileInfo, error) {
	f.mu.Lock()
	fault, _ := f.match(name, false)
	f.mu.Unlock()
	if fault.FailOnStat {
		return nil, &os.PathError{Op: "stat", Path: name, Err: fault.Err}
	}
	return f.FS.Stat(name)
}

type faultyFile struct {
	File
	fault Fault
}

func (ff *faultyFile) Stat() (os.FileInfo, error) {
	if ff.fault.FailOnStat {
		return nil, ff.fault.Err
	}
	return ff.File.Stat()
}

func (ff *faultyFile) Truncate(size int64) error {
	if ff.fault.FailOnTruncate {
		return ff.fault.Err
	}
	return ff.File.Truncate(size)
}

func (ff *faultyFile) Close() error {
	if ff.fault.FailOnClose {
		ff.File.Close()
		return ff.fault.Err
	}
	return ff.File.Close()
}
