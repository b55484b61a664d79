package nlattr

// Buffer is a read-only view over a byte range. Buffers derived from it with
// Slice never extend past its end.
type Buffer struct {
	data []byte
}

// NewBuffer wraps b without copying.
func NewBuffer(b []byte) Buffer {
	return Buffer{data: b[:len(b):len(b)]}
}

// Len returns the number of viewed bytes.
func (b Buffer) Len() int {
	return len(b.data)
}

// Bytes returns the viewed bytes. Capacity is clipped to the length, so
// appending to the result never writes into the backing array.
func (b Buffer) Bytes() []byte {
	return b.data
}

// Slice returns the n bytes starting at off, or false when that range does
// not fit inside b.
func (b Buffer) Slice(off, n int) (Buffer, bool) {
	if off < 0 || n < 0 || off > len(b.data) || n > len(b.data)-off {
		return Buffer{}, false
	}
	return Buffer{data: b.data[off : off+n : off+n]}, true
}

// Tail returns everything from off to the end of b.
func (b Buffer) Tail(off int) (Buffer, bool) {
	return b.Slice(off, len(b.data)-off)
}
