package png

// Reader provides a minimal slice-based PNG frame reader. It walks
// an in-memory buffer one chunk frame at a time, using the declared
// length of each frame to find the next one.
type Reader struct {
	buf    []byte
	off    int
	strict bool
	maxLen uint32
}

// NewReaderBytes constructs a Reader over the provided buffer.
func NewReaderBytes(b []byte) *Reader { return &Reader{buf: b} }

// SetStrictDecode controls whether declared lengths above
// MaxChunkLength are rejected.
func (r *Reader) SetStrictDecode(strict bool) { r.strict = strict }

// SetMaxChunkLen configures an upper bound on declared chunk lengths.
// A value of zero disables the limit. When exceeded, an error matching
// ErrLimitExceeded is returned.
func (r *Reader) SetMaxChunkLen(max uint32) { r.maxLen = max }

// Remaining returns the unread portion of the underlying buffer.
func (r *Reader) Remaining() []byte { return r.buf[r.off:] }

// Offset returns the number of bytes consumed so far.
func (r *Reader) Offset() int { return r.off }

// Done reports whether the whole buffer has been consumed.
func (r *Reader) Done() bool { return r.off >= len(r.buf) }

// ReadSignature consumes the 8-byte PNG signature.
func (r *Reader) ReadSignature() error {
	if !HasSignature(r.Remaining()) {
		return ErrBadSignature
	}
	r.off += SignatureSize
	return nil
}

// ReadChunk decodes the next chunk frame and advances past it.
// On error the reader does not advance.
func (r *Reader) ReadChunk() (Chunk, error) {
	rest := r.Remaining()
	if len(rest) < LengthSize {
		return Chunk{}, ErrShortBytes
	}
	declared := be.Uint32(rest)
	if err := r.checkLength(declared); err != nil {
		return Chunk{}, err
	}
	frame := uint64(declared) + ChunkOverhead
	if uint64(len(rest)) < frame {
		return Chunk{}, ErrShortBytes
	}
	c, err := ChunkFromBytes(rest[:frame])
	if err != nil {
		return Chunk{}, err
	}
	r.off += int(frame)
	return c, nil
}

func (r *Reader) checkLength(n uint32) error {
	if r.strict && n > MaxChunkLength {
		return &LengthOverflowError{Length: n, Limit: MaxChunkLength}
	}
	if r.maxLen > 0 && n > r.maxLen {
		return &LengthOverflowError{Length: n, Limit: r.maxLen}
	}
	return nil
}
