// Package png parses, edits and re-serializes the chunk structure of
// PNG files. Pixel data is never interpreted: a file is a signature
// followed by an ordered list of checksummed chunks, and this package
// keeps that list byte-exact across a parse/serialize round trip.
package png

import (
	"io"
	"strings"
)

// ParseOptions configures FromBytesWithOptions.
type ParseOptions struct {
	// Strict rejects chunks whose declared length exceeds MaxChunkLength.
	Strict bool
	// MaxChunkLen, if non-zero, rejects chunks whose declared length
	// exceeds it.
	MaxChunkLen uint32
}

// Png is a parsed PNG file: the fixed signature and its chunks in file order.
//
// The package does not check chunk semantics such as IHDR coming first;
// order is whatever the file or the caller made it.
type Png struct {
	chunks []Chunk
}

// FromChunks builds a file from chunks, in order.
func FromChunks(chunks []Chunk) *Png {
	p := &Png{chunks: make([]Chunk, len(chunks))}
	copy(p.chunks, chunks)
	return p
}

// FromBytes parses a complete PNG file.
func FromBytes(b []byte) (*Png, error) {
	return FromBytesWithOptions(b, ParseOptions{})
}

// FromBytesWithOptions parses a complete PNG file. Any chunk error aborts
// the parse; the error is wrapped with the index and offset of the bad
// chunk and still matches the underlying sentinel with errors.Is.
func FromBytesWithOptions(b []byte, opts ParseOptions) (*Png, error) {
	r := NewReaderBytes(b)
	r.SetStrictDecode(opts.Strict)
	r.SetMaxChunkLen(opts.MaxChunkLen)

	if err := r.ReadSignature(); err != nil {
		return nil, err
	}
	p := &Png{}
	for !r.Done() {
		off := r.Offset()
		c, err := r.ReadChunk()
		if err != nil {
			return nil, WrapError(err, "chunk", len(p.chunks), "offset", off)
		}
		p.chunks = append(p.chunks, c)
	}
	return p, nil
}

// Header returns the file signature.
func (p *Png) Header() [SignatureSize]byte { return signature }

// Chunks returns the chunks in file order. The returned slice is a copy;
// the chunk data it refers to must not be modified.
func (p *Png) Chunks() []Chunk {
	out := make([]Chunk, len(p.chunks))
	copy(out, p.chunks)
	return out
}

// Len returns the number of chunks.
func (p *Png) Len() int { return len(p.chunks) }

// ChunkByType returns the first chunk whose type is code.
func (p *Png) ChunkByType(code string) (Chunk, bool) {
	i := p.index(code)
	if i < 0 {
		return Chunk{}, false
	}
	return p.chunks[i], true
}

// AppendChunk adds c after the last chunk.
func (p *Png) AppendChunk(c Chunk) {
	p.chunks = append(p.chunks, c)
}

// RemoveChunk removes the first chunk whose type is code and returns it.
// If there is none, the file is left unchanged and the error matches
// ErrChunkNotFound.
func (p *Png) RemoveChunk(code string) (Chunk, error) {
	i := p.index(code)
	if i < 0 {
		return Chunk{}, &ChunkNotFoundError{Type: code}
	}
	c := p.chunks[i]
	p.chunks = append(p.chunks[:i], p.chunks[i+1:]...)
	return c, nil
}

func (p *Png) index(code string) int {
	for i, c := range p.chunks {
		if c.typ.String() == code {
			return i
		}
	}
	return -1
}

// Size returns the encoded size of the file.
func (p *Png) Size() int {
	n := SignatureSize
	for _, c := range p.chunks {
		n += c.Size()
	}
	return n
}

// AppendBytes appends the encoded file to b.
func (p *Png) AppendBytes(b []byte) []byte {
	b = Require(b, p.Size())
	b = append(b, signature[:]...)
	for _, c := range p.chunks {
		b = c.AppendBytes(b)
	}
	return b
}

// Bytes returns the encoded file: the signature followed by every chunk frame.
func (p *Png) Bytes() []byte {
	bb := GetMinSize(p.Size())
	defer PutByteBuffer(bb)
	p.encode(bb)
	out := make([]byte, bb.Len())
	copy(out, bb.Bytes())
	return out
}

// WriteTo writes the encoded file to w. It implements io.WriterTo.
func (p *Png) WriteTo(w io.Writer) (int64, error) {
	bb := GetMinSize(p.Size())
	defer PutByteBuffer(bb)
	p.encode(bb)
	return bb.WriteTo(w)
}

func (p *Png) encode(bb *ByteBuffer) {
	bb.AppendSignature()
	for _, c := range p.chunks {
		bb.AppendChunk(c)
	}
}

// String renders every chunk for display, in file order.
func (p *Png) String() string {
	var sb strings.Builder
	sb.WriteString("Png {\n")
	for _, c := range p.chunks {
		for _, line := range strings.Split(c.String(), "\n") {
			sb.WriteString("  " + line + "\n")
		}
	}
	sb.WriteString("}")
	return sb.String()
}
