// Package pool provides pooled byte buffers for codec scratch space.
//
// One compress or decompress call owns its buffers for the duration of the
// call; pooling only amortizes allocations across calls, it never shares
// live state between them.
package pool

import "sync"

const (
	// AssetBufferDefaultSize covers typical sprite and tileset payloads.
	AssetBufferDefaultSize = 1024 * 32
	// AssetBufferMaxThreshold prevents retaining oversized buffers; a
	// compressed payload can never exceed 64KiB, decoded payloads rarely
	// exceed a few multiples of that.
	AssetBufferMaxThreshold = 1024 * 256
)

// ByteBuffer is a growable byte slice with explicit capacity management.
type ByteBuffer struct {
	// B is the underlying byte slice.
	B []byte
}

// NewByteBuffer creates a new ByteBuffer with the specified initial capacity.
func NewByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{
		B: make([]byte, 0, defaultSize),
	}
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Reset empties the buffer but retains the allocated memory for reuse.
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

// WriteByte appends a single byte. Always returns nil; the signature
// matches io.ByteWriter.
func (bb *ByteBuffer) WriteByte(b byte) error {
	bb.B = append(bb.B, b)
	return nil
}

// MustWriteByte appends a single byte, growing the buffer if necessary.
func (bb *ByteBuffer) MustWriteByte(b byte) {
	bb.B = append(bb.B, b)
}

// MustWrite appends data to the buffer, growing it if necessary.
func (bb *ByteBuffer) MustWrite(data []byte) {
	bb.B = append(bb.B, data...)
}

// Grow ensures the buffer can hold requiredBytes more bytes without
// reallocating. Small buffers grow by AssetBufferDefaultSize; larger ones
// by 25% of current capacity.
func (bb *ByteBuffer) Grow(requiredBytes int) {
	available := cap(bb.B) - len(bb.B)
	if available >= requiredBytes {
		return
	}

	growBy := AssetBufferDefaultSize
	if cap(bb.B) > 4*AssetBufferDefaultSize {
		growBy = cap(bb.B) / 4
	}
	if growBy < requiredBytes {
		growBy = requiredBytes
	}

	newBuf := make([]byte, len(bb.B), len(bb.B)+growBy)
	copy(newBuf, bb.B)
	bb.B = newBuf
}

// CopyBytes returns a newly allocated copy of the buffer contents, safe to
// retain after the buffer is returned to a pool.
func (bb *ByteBuffer) CopyBytes() []byte {
	out := make([]byte, len(bb.B))
	copy(out, bb.B)

	return out
}

// ByteBufferPool is a pool of ByteBuffers with a maximum retained capacity.
type ByteBufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewByteBufferPool creates a pool producing buffers of the given default
// size. Buffers whose capacity grew past maxThreshold are dropped on Put.
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
		// Drop oversized buffers to prevent memory bloat.
		return
	}

	bb.Reset()
	bbp.pool.Put(bb)
}

var assetDefaultPool = NewByteBufferPool(AssetBufferDefaultSize, AssetBufferMaxThreshold)

// GetAssetBuffer retrieves a ByteBuffer from the default asset pool.
func GetAssetBuffer() *ByteBuffer {
	return assetDefaultPool.Get()
}

// PutAssetBuffer returns a ByteBuffer to the default asset pool.
func PutAssetBuffer(bb *ByteBuffer) {
	assetDefaultPool.Put(bb)
}
