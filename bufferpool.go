package envprobe

// BufferPool hands out fixed-size byte slices for frame reads. It is a
// buffered channel, so Get and Put are safe for concurrent use without locks.
type BufferPool struct {
	pool    chan []byte
	bufSize int
}

// NewBufferPool creates a pool holding count buffers of bufSize bytes.
func NewBufferPool(bufSize, count int) *BufferPool {
	pool := make(chan []byte, count)
	for i := 0; i < count; i++ {
		pool <- make([]byte, bufSize)
	}
	return &BufferPool{pool: pool, bufSize: bufSize}
}

// Size is the length of every buffer the pool returns.
func (bp *BufferPool) Size() int {
	return bp.bufSize
}

// Get returns a pooled buffer, allocating when the pool is drained.
func (bp *BufferPool) Get() []byte {
	select {
	case buf := <-bp.pool:
		return buf
	default:
		return make([]byte, bp.bufSize)
	}
}

// Put returns buf to the pool. Buffers of a foreign size, or surplus buffers
// when the pool is full, are dropped.
func (bp *BufferPool) Put(buf []byte) {
	if cap(buf) != bp.bufSize {
		return
	}
	select {
	case bp.pool <- buf[:bp.bufSize]:
	default:
	}
}
