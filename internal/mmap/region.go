package mmap

// Region represents a subsection of a memory mapping.
// It does not own the memory; the parent Mapping does.
type Region struct {
	parent *Mapping
	offset int
	size   int
}

// Region creates a new view into the mapping.
func (m *Mapping) Region(offset, size int) (*Region, error) {
	if m.closed.Load() {
		return nil, ErrClosed
	}
	if offset < 0 {
		return nil, ErrInvalidOffset
	}
	if size < 0 || offset > m.size || size > m.size-offset {
		return nil, ErrOutOfBounds
	}
	return &Region{
		parent: m,
		offset: offset,
		size:   size,
	}, nil
}

// Bytes returns the byte slice for this region.
// Warning: The slice is valid only until the parent Mapping is closed.
func (r *Region) Bytes() []byte {
	if r.parent.closed.Load() {
		return nil
	}
	return r.parent.data[r.offset : r.offset+r.size]
}

// Size returns the length of the region in bytes.
func (r *Region) Size() int {
	return r.size
}

// CopyTo copies the region into dst and returns the number of bytes copied.
func (r *Region) CopyTo(dst []byte) (int, error) {
	if r.parent.closed.Load() {
		return 0, ErrClosed
	}
	return copy(dst, r.parent.data[r.offset:r.offset+r.size]), nil
}

// CopyFrom copies src into the region and returns the number of bytes copied.
func (r *Region) CopyFrom(src []byte) (int, error) {
	if r.parent.closed.Load() {
		return 0, ErrClosed
	}
	if !r.parent.writable {
		return 0, ErrReadOnly
	}
	return copy(r.parent.data[r.offset:r.offset+r.size], src), nil
}
