package media

import "fmt"

// Buffer is a byte container with an adjustable valid range.
//
// A buffer owns its backing storage for its whole lifetime, but the valid
// range may be narrowed after the fact, the way a demuxer trims padding or
// a codec consumes a prefix. Per-buffer attributes such as presentation
// timestamps travel in the buffer's MetaData.
type Buffer struct {
	data        []byte
	rangeOffset int
	rangeLength int
	meta        *MetaData
}

// NewBuffer allocates a zeroed buffer of the given capacity with the valid
// range covering the whole capacity.
func NewBuffer(capacity int) (*Buffer, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("capacity %d: %w", capacity, ErrInvalidSize)
	}
	return &Buffer{
		data:        make([]byte, capacity),
		rangeLength: capacity,
	}, nil
}

// NewBufferWithData wraps existing bytes without copying. The caller must
// not mutate data while the buffer is in flight.
func NewBufferWithData(data []byte) *Buffer {
	return &Buffer{
		data:        data,
		rangeLength: len(data),
	}
}

// Data returns the full backing storage.
func (b *Buffer) Data() []byte {
	return b.data
}

// Capacity returns the size of the backing storage.
func (b *Buffer) Capacity() int {
	return len(b.data)
}

// RangeData returns the valid range of the buffer.
func (b *Buffer) RangeData() []byte {
	return b.data[b.rangeOffset : b.rangeOffset+b.rangeLength]
}

// RangeOffset returns the offset of the valid range.
func (b *Buffer) RangeOffset() int {
	return b.rangeOffset
}

// RangeLength returns the length of the valid range.
func (b *Buffer) RangeLength() int {
	return b.rangeLength
}

// SetRange narrows or moves the valid range. The range must fit within the
// backing storage.
func (b *Buffer) SetRange(offset, length int) error {
	if offset < 0 || length < 0 || offset+length > len(b.data) {
		return fmt.Errorf("offset %d length %d capacity %d: %w",
			offset, length, len(b.data), ErrInvalidRange)
	}
	b.rangeOffset = offset
	b.rangeLength = length
	return nil
}

// Meta returns the buffer's metadata, creating it on first use.
func (b *Buffer) Meta() *MetaData {
	if b.meta == nil {
		b.meta = NewMetaData()
	}
	return b.meta
}
