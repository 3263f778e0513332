// Package fs provides filesystem abstractions for testability and fault injection.
//
// The package defines two key interfaces:
//
//   - [File]: an open file that can be truncated, stat'ed and mapped by descriptor
//   - [FileSystem]: filesystem operations (open, stat, remove, mkdir)
//
// # Implementations
//
//   - [LocalFS]: Production implementation using standard os package
//   - [FaultyFS]: Test utility for fault injection (simulate I/O errors)
//
// # Usage
//
// Production code should use fs.Default (which is [LocalFS]):
//
//	file, err := fs.Default.OpenFile(path, os.O_RDWR, 0)
//
// Tests can inject [FaultyFS] to simulate failures:
//
//	ffs := fs.NewFaultyFS(nil)
//	ffs.AddRule("events.log", fs.Fault{FailOnTruncate: true})
//	// inject ffs into component under test
//
// # Design Notes
//
// This package does NOT include context.Context parameters.
// Local filesystem calls are non-interruptible at the syscall level.
package fs
