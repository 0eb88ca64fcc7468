package png

// propertyBit is bit 5 of each type byte: the ASCII case bit.
const propertyBit = 0x20

// ChunkType is the 4-byte type code of a PNG chunk.
//
// Each byte is an ASCII letter and the case of each letter carries
// one property: ancillary, private, reserved and safe-to-copy, in
// byte order. A ChunkType is a comparable value; two types are equal
// when their bytes are equal.
type ChunkType struct {
	b [4]byte
}

// ChunkTypeFromBytes validates b and returns it as a ChunkType.
// Every byte must be in A-Z or a-z.
func ChunkTypeFromBytes(b [4]byte) (ChunkType, error) {
	for _, c := range b {
		if !isASCIILetter(c) {
			return ChunkType{}, &InvalidTypeError{Bytes: b}
		}
	}
	return ChunkType{b: b}, nil
}

// ParseChunkType parses a four-letter chunk type such as "IHDR" or "teXt".
// The length is measured in bytes.
func ParseChunkType(s string) (ChunkType, error) {
	if len(s) != TypeSize {
		return ChunkType{}, &InvalidLengthError{Got: len(s)}
	}
	var b [4]byte
	copy(b[:], s)
	return ChunkTypeFromBytes(b)
}

// MustChunkType is like ParseChunkType but panics on error.
func MustChunkType(s string) ChunkType {
	ct, err := ParseChunkType(s)
	if err != nil {
		panic(err)
	}
	return ct
}

// Bytes returns the raw type bytes.
func (t ChunkType) Bytes() [4]byte { return t.b }

// IsCritical reports whether the ancillary bit (byte 0) is clear.
func (t ChunkType) IsCritical() bool { return t.b[0]&propertyBit == 0 }

// IsPublic reports whether the private bit (byte 1) is clear.
func (t ChunkType) IsPublic() bool { return t.b[1]&propertyBit == 0 }

// IsReservedBitValid reports whether the reserved bit (byte 2) is clear,
// as the current format requires.
func (t ChunkType) IsReservedBitValid() bool { return t.b[2]&propertyBit == 0 }

// IsSafeToCopy reports whether the safe-to-copy bit (byte 3) is set.
func (t ChunkType) IsSafeToCopy() bool { return t.b[3]&propertyBit != 0 }

// IsValid reports whether t is a valid type under the current format.
// Letters are guaranteed at construction, so only the reserved bit
// remains to check.
func (t ChunkType) IsValid() bool { return t.IsReservedBitValid() }

// String returns the four letters of the type.
func (t ChunkType) String() string { return string(t.b[:]) }

func isASCIILetter(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}
