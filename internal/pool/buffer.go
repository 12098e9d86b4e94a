// Package pool provides a pooled, growable byte buffer used as the
// Writer's output buffer.
package pool

import "sync"

// DefaultSize is the initial capacity handed out by the default pool.
// NBT payloads are typically well under this; it amortizes the first few
// growths away for the common case.
const DefaultSize = 4096

// MaxThreshold is the capacity above which a returned buffer is discarded
// instead of pooled, to avoid one large tree's buffer pinning memory for
// every subsequent small one.
const MaxThreshold = 1024 * 1024

// ByteBuffer is a growable byte slice with an amortized growth strategy.
type ByteBuffer struct {
	B []byte
}

// NewByteBuffer returns a ByteBuffer with the given initial capacity.
func NewByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{B: make([]byte, 0, defaultSize)}
}

// Bytes returns the underlying slice.
func (bb *ByteBuffer) Bytes() []byte { return bb.B }

// Len returns the number of bytes written so far.
func (bb *ByteBuffer) Len() int { return len(bb.B) }

// Reset empties the buffer but retains its allocated memory.
func (bb *ByteBuffer) Reset() { bb.B = bb.B[:0] }

// MustWrite appends data, growing the buffer if necessary.
func (bb *ByteBuffer) MustWrite(data []byte) {
	bb.B = append(bb.B, data...)
}

// Grow ensures the buffer can accept requiredBytes more bytes without a
// further reallocation.
func (bb *ByteBuffer) Grow(requiredBytes int) {
	available := cap(bb.B) - len(bb.B)
	if available >= requiredBytes {
		return
	}

	growBy := DefaultSize
	if cap(bb.B) > 4*DefaultSize {
		growBy = cap(bb.B) / 4
	}

	if growBy < requiredBytes {
		growBy = requiredBytes
	}

	newBuf := make([]byte, len(bb.B), len(bb.B)+growBy)
	copy(newBuf, bb.B)
	bb.B = newBuf
}

// ByteBufferPool pools ByteBuffers via sync.Pool, discarding buffers whose
// capacity has grown past maxThreshold instead of retaining them.
type ByteBufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewByteBufferPool creates a pool whose buffers start at defaultSize.
func NewByteBufferPool(defaultSize, maxThreshold int) *ByteBufferPool {
	return &ByteBufferPool{
		pool: sync.Pool{
			New: func() any { return NewByteBuffer(defaultSize) },
		},
		maxThreshold: maxThreshold,
	}
}

// Get retrieves a buffer from the pool.
func (p *ByteBufferPool) Get() *ByteBuffer {
	bb, _ := p.pool.Get().(*ByteBuffer)
	return bb
}

// Put returns a buffer to the pool, discarding it if oversized.
func (p *ByteBufferPool) Put(bb *ByteBuffer) {
	if bb == nil {
		return
	}

	if p.maxThreshold > 0 && cap(bb.B) > p.maxThreshold {
		return
	}

	bb.Reset()
	p.pool.Put(bb)
}

var defaultPool = NewByteBufferPool(DefaultSize, MaxThreshold)

// GetBuffer retrieves a buffer from the package-wide default pool.
func GetBuffer() *ByteBuffer { return defaultPool.Get() }

// PutBuffer returns a buffer to the package-wide default pool.
func PutBuffer(bb *ByteBuffer) { defaultPool.Put(bb) }
