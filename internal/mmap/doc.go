// Package mmap provides memory-mapped file access for fixed-size files.
//
// # Overview
//
// The package offers two layers:
//
//   - [Mapping] and [Region]: a shared mapping of a whole open file and bounded
//     views into it.
//   - [CreateFile], [ReadRegion] and [WriteRegion]: self-contained calls that
//     open the file, map it fully, copy one region in or out, then unmap and
//     close. Nothing is held across calls.
//
// # Usage
//
//	if err := mmap.CreateFile(fs.Default, "events.log", 4096); err != nil { ... }
//	if err := mmap.WriteRegion(fs.Default, "events.log", rec, 128, false); err != nil { ... }
//	if err := mmap.ReadRegion(fs.Default, "events.log", buf, 128); err != nil { ... }
//
// A region that does not lie entirely inside the file fails with
// [ErrOutOfBounds]; the mapping is never indexed past its end.
//
// # Durability
//
// Writes land in the shared page cache. Without an explicit flush the kernel
// writes them back on its own schedule. Pass sync=true to [WriteRegion] (or
// call [Mapping.Flush]) to msync the mapping before it is released.
//
// # Platform Support
//
//   - Unix (Linux, macOS, BSD): mmap(2) / msync(2) / munmap(2)
//   - Windows: CreateFileMapping / MapViewOfFile / FlushViewOfFile
package mmap
