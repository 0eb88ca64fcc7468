package png

// signature is the fixed header of every PNG file.
var signature = [SignatureSize]byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A}

// Signature returns the 8-byte PNG file signature.
func Signature() [SignatureSize]byte { return signature }

// HasSignature reports whether b starts with the PNG signature.
func HasSignature(b []byte) bool {
	return len(b) >= SignatureSize && [SignatureSize]byte(b[:SignatureSize]) == signature
}

// PeekChunkType returns the type of the chunk frame at the start of b
// without validating the rest of the frame.
func PeekChunkType(b []byte) (ChunkType, error) {
	if len(b) < LengthSize+TypeSize {
		return ChunkType{}, ErrShortBytes
	}
	return ChunkTypeFromBytes([4]byte(b[LengthSize : LengthSize+TypeSize]))
}

// Require ensures that b has capacity for at least n additional bytes
// without reallocation. It returns a slice that shares the original
// contents and has sufficient capacity for appending n bytes.
func Require(b []byte, n int) []byte {
	if cap(b)-len(b) >= n {
		return b
	}
	nb := make([]byte, len(b), len(b)+n)
	copy(nb, b)
	return nb
}
