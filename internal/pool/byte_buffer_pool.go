// Package pool provides a pooled, growable byte buffer used by the frame
// compressor and blob serializer to avoid re-allocating scratch space for
// every compress/serialize call.
package pool

import "sync"

// Default and maximum sizes for buffers handed out by the package pool.
// A typical tick payload (a few hundred ticks across a dozen symbols) fits
// comfortably under BufferDefaultSize; BufferMaxThreshold caps how large a
// buffer we'll retain for reuse so one oversized series doesn't pin memory.
const (
	BufferDefaultSize  = 1024 * 16  // 16KiB
	BufferMaxThreshold = 1024 * 128 // 128KiB
)

// ByteBuffer is a thin growable byte slice wrapper, reset and recycled by
// ByteBufferPool rather than garbage collected on every call.
type ByteBuffer struct {
	B []byte
}

// NewByteBuffer creates a new ByteBuffer with the given starting capacity.
func NewByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{B: make([]byte, 0, defaultSize)}
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte { return bb.B }

// Reset empties the buffer but retains its backing array for reuse.
func (bb *ByteBuffer) Reset() { bb.B = bb.B[:0] }

// Len returns the number of bytes currently written to the buffer.
func (bb *ByteBuffer) Len() int { return len(bb.B) }

// Write appends data to the buffer, growing it as needed.
func (bb *ByteBuffer) Write(data []byte) (int, error) {
	bb.B = append(bb.B, data...)
	return len(data), nil
}

// WriteByte appends a single byte to the buffer.
func (bb *ByteBuffer) WriteByte(b byte) error {
	bb.B = append(bb.B, b)
	return nil
}

// ByteBufferPool pools ByteBuffers via sync.Pool, discarding buffers that
// have grown past maxThreshold instead of returning them to the pool.
type ByteBufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewByteBufferPool creates a pool of buffers starting at defaultSize,
// discarding (rather than recycling) any buffer grown past maxThreshold.
func NewByteBufferPool(defaultSize, maxThreshold int) *ByteBufferPool {
	return &ByteBufferPool{
		pool: sync.Pool{
			New: func() any { return NewByteBuffer(defaultSize) },
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

var defaultPool = NewByteBufferPool(BufferDefaultSize, BufferMaxThreshold)

// Get retrieves a ByteBuffer from the package-default pool.
func Get() *ByteBuffer { return defaultPool.Get() }

// Put returns a ByteBuffer to the package-default pool.
func Put(bb *ByteBuffer) { defaultPool.Put(bb) }
