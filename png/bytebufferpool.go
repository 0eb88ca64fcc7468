package png

import (
	"io"
	"sync"
)

// Local byte buffer pool used when serializing whole files.
//
// Guidelines:
// - Use GetMinSize(n) when the final size is known up front; Png.Size
//   gives the exact figure, so encoding never reallocates.
// - Bytes() aliases pooled memory. Copy it out before PutByteBuffer.

type ByteBuffer struct {
	b []byte
}

var bbPool = sync.Pool{New: func() any { return &ByteBuffer{b: make([]byte, 0, 4096)} }}

// GetByteBuffer obtains a pooled ByteBuffer. The buffer is Reset() before
// being returned so length is zero (capacity may be reused).
func GetByteBuffer() *ByteBuffer {
	bb := bbPool.Get().(*ByteBuffer)
	bb.Reset()
	return bb
}

// GetMinSize obtains a pooled ByteBuffer with capacity for at least size bytes.
// The buffer is Reset() and then grown if needed.
func GetMinSize(size int) *ByteBuffer {
	bb := GetByteBuffer()
	if size > 0 {
		bb.Ensure(size)
	}
	return bb
}

// PutByteBuffer returns the buffer to the pool after Resetting length to zero.
func PutByteBuffer(bb *ByteBuffer) { bb.Reset(); bbPool.Put(bb) }

// Bytes returns the underlying bytes.
func (bb *ByteBuffer) Bytes() []byte { return bb.b }

// Len returns length.
func (bb *ByteBuffer) Len() int { return len(bb.b) }

// Cap returns capacity.
func (bb *ByteBuffer) Cap() int { return cap(bb.b) }

// Reset resets the length to zero; capacity is unchanged.
func (bb *ByteBuffer) Reset() { bb.b = bb.b[:0] }

// Ensure ensures there is room for at least n more bytes without reallocation.
// If needed, it grows the underlying slice.
func (bb *ByteBuffer) Ensure(n int) {
	need := len(bb.b) + n
	if cap(bb.b) >= need {
		return
	}
	// Grow: double until enough, then allocate
	c := cap(bb.b)
	if c == 0 {
		c = 4096
	}
	for c < need {
		c <<= 1
	}
	nb := make([]byte, len(bb.b), c)
	copy(nb, bb.b)
	bb.b = nb
}

// Write implements io.Writer.
func (bb *ByteBuffer) Write(p []byte) (int, error) {
	bb.Ensure(len(p))
	bb.b = append(bb.b, p...)
	return len(p), nil
}

// WriteTo implements io.WriterTo.
func (bb *ByteBuffer) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(bb.b)
	return int64(n), err
}

// AppendSignature appends the PNG file signature.
func (bb *ByteBuffer) AppendSignature() *ByteBuffer {
	bb.Ensure(SignatureSize)
	bb.b = append(bb.b, signature[:]...)
	return bb
}

// AppendUint32 appends v in big-endian order.
func (bb *ByteBuffer) AppendUint32(v uint32) *ByteBuffer {
	bb.Ensure(4)
	bb.b = be.AppendUint32(bb.b, v)
	return bb
}

// AppendChunk appends the complete frame of c.
func (bb *ByteBuffer) AppendChunk(c Chunk) *ByteBuffer {
	bb.Ensure(c.Size())
	bb.b = c.AppendBytes(bb.b)
	return bb
}
