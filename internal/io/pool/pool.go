// Package pool reduces allocation pressure on the two hot paths of the
// reverse-tail engine: the fixed-size page buffers read from disk, and
// the small scratch buffers used to format a matched line for the
// client. Both are sync.Pool-backed, since allocation volume here
// scales with bytes scanned, not bytes matched.
package pool

import (
	"bytes"
	"sync"
)

// PagePool hands out reusable []byte buffers of one fixed length, sized
// to a server's configured page length. Every Finder on that server
// shares the same pool.
type PagePool struct {
	length int
	pool   sync.Pool
}

// NewPagePool creates a pool of buffers of the given length.
func NewPagePool(length int) *PagePool {
	p := &PagePool{length: length}
	p.pool.New = func() interface{} {
		buf := make([]byte, length)
		return &buf
	}
	return p
}

// Get returns a buffer of exactly the pool's configured length.
func (p *PagePool) Get() []byte {
	bufp := p.pool.Get().(*[]byte)
	if len(*bufp) != p.length {
		*bufp = make([]byte, p.length)
	}
	return *bufp
}

// Put returns buf to the pool. buf must have come from Get.
func (p *PagePool) Put(buf []byte) {
	p.pool.Put(&buf)
}

// BytesBuffer is a pool of small bytes.Buffer values used to format one
// matched line (plus framing) before it is written to the response.
var BytesBuffer = sync.Pool{
	New: func() interface{} {
		b := &bytes.Buffer{}
		b.Grow(512)
		return b
	},
}

// GetBytesBuffer returns an empty buffer from the pool.
func GetBytesBuffer() *bytes.Buffer {
	return BytesBuffer.Get().(*bytes.Buffer)
}

// RecycleBytesBuffer resets b and returns it to the pool.
func RecycleBytesBuffer(b *bytes.Buffer) {
	b.Reset()
	BytesBuffer.Put(b)
}
