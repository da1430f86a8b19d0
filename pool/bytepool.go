// File: pool/bytepool.go
// Author: momentics <momentics@gmail.com>

package pool

// BytePool hands out zero-length byte slices with a fixed starting capacity.
// Slices that grew past maxRetain are dropped instead of being recycled.
type BytePool struct {
	pool      *SyncPool[*[]byte]
	size      int
	maxRetain int
}

// NewBytePool creates a pool of buffers with capacity size. Buffers larger
// than maxRetain on return are left to the GC; maxRetain <= size keeps only
// buffers that never grew.
func NewBytePool(size, maxRetain int) *BytePool {
	if maxRetain < size {
		maxRetain = size
	}
	bp := &BytePool{size: size, maxRetain: maxRetain}
	bp.pool = NewSyncPool(
		func() *[]byte {
			b := make([]byte, 0, size)
			return &b
		},
		func(b *[]byte) *[]byte {
			*b = (*b)[:0]
			return b
		},
	)
	return bp
}

// GetBuffer returns an empty buffer from the pool.
func (b *BytePool) GetBuffer() *[]byte {
	return b.pool.Get()
}

// PutBuffer returns a buffer to the pool.
func (b *BytePool) PutBuffer(buf *[]byte) {
	if buf == nil || cap(*buf) > b.maxRetain {
		return
	}
	b.pool.Put(buf)
}

// Size reports the starting capacity of new buffers.
func (b *BytePool) Size() int { return b.size }
