// Package pool provides pooled byte and numeric-slice buffers shared by the
// codec packages, so that repeated encode/decode calls amortize allocation
// cost instead of allocating a fresh buffer every time.
package pool

import (
	"io"
	"sync"
)

// Default and max-retained sizes for the shared ByteBuffer pool. Codec
// output is typically a few hundred bytes to a few dozen kilobytes per
// block (128-value chunks at up to 8 bytes/value), so these thresholds
// are sized to that range.
const (
	ByteBufferDefaultSize  = 1024 * 4  // 4KiB
	ByteBufferMaxThreshold = 1024 * 64 // 64KiB
)

// ByteBuffer is a growable byte slice wrapper with an amortized growth
// strategy, designed to be reused via a sync.Pool rather than reallocated
// per call.
type ByteBuffer struct {
	// B is the underlying byte slice.
	B []byte
}

// NewByteBuffer creates a new ByteBuffer with the specified default size.
func NewByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{
		B: make([]byte, 0, defaultSize),
	}
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Reset resets the buffer to be empty, but retains the allocated memory for reuse.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// Len returns the length of the buffer.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// Cap returns the capacity of the buffer.
func (bb *ByteBuffer) Cap() int {
	return cap(bb.B)
}

// SetLength sets the length of the buffer to n.
// Panics if n is negative or greater than the capacity.
func (bb *ByteBuffer) SetLength(n int) {
	if n < 0 || n > cap(bb.B) {
		panic("SetLength: invalid length")
	}
	bb.B = bb.B[:n]
}

// Grow grows the buffer so it can hold requiredBytes more bytes without
// reallocating. If the buffer already has sufficient capacity, Grow does
// nothing.
//
// Growth strategy:
//   - Small buffers (≤4× the default size): grow by ByteBufferDefaultSize.
//   - Larger buffers: grow by 25% of current capacity.
//
// Either way the grow amount is raised to at least requiredBytes, so a
// single large request is always satisfied in one reallocation.
func (bb *ByteBuffer) Grow(requiredBytes int) {
	available := cap(bb.B) - len(bb.B)
	if available >= requiredBytes {
		return
	}

	growBy := ByteBufferDefaultSize
	if cap(bb.B) > 4*ByteBufferDefaultSize {
		growBy = cap(bb.B) / 4
	}
	if growBy < requiredBytes {
		growBy = requiredBytes
	}

	newBuf := make([]byte, len(bb.B), len(bb.B)+growBy)
	copy(newBuf, bb.B)
	bb.B = newBuf
}

// Write appends the contents of data to the buffer, growing it as needed.
func (bb *ByteBuffer) Write(data []byte) (int, error) {
	bb.Grow(len(data))
	bb.B = append(bb.B, data...)

	return len(data), nil
}

// WriteTo writes the contents of the buffer to w.
func (bb *ByteBuffer) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(bb.B)
	return int64(n), err
}

// ByteBufferPool is a sync.Pool of ByteBuffers with an optional cap on the
// capacity of buffers retained for reuse, so a single oversized call
// doesn't permanently bloat the pool.
type ByteBufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewByteBufferPool creates a new ByteBufferPool with buffers of the
// specified default size.
func NewByteBufferPool(defaultSize int, maxThreshold int) *ByteBufferPool {
	return &ByteBufferPool{
		pool: sync.Pool{
			New: func() any {
				return NewByteBuffer(defaultSize)
			},
		},
		maxThreshold: maxThreshold,
	}
}

// Get retrieves a ByteBuffer from the pool.
func (bbp *ByteBufferPool) Get() *ByteBuffer {
	bb, _ := bbp.pool.Get().(*ByteBuffer)
	return bb
}

// Put returns a ByteBuffer to the pool for reuse.
func (bbp *ByteBufferPool) Put(bb *ByteBuffer) {
	if bb == nil {
		return
	}

	if bbp.maxThreshold > 0 && cap(bb.B) > bbp.maxThreshold {
		return
	}

	bb.Reset()
	bbp.pool.Put(bb)
}

var defaultPool = NewByteBufferPool(ByteBufferDefaultSize, ByteBufferMaxThreshold)

// GetByteBuffer retrieves a ByteBuffer from the shared default pool.
func GetByteBuffer() *ByteBuffer {
	return defaultPool.Get()
}

// PutByteBuffer returns a ByteBuffer to the shared default pool.
func PutByteBuffer(bb *ByteBuffer) {
	defaultPool.Put(bb)
}
