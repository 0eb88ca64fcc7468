package png

import (
	"encoding/binary"
	"hash/crc32"
	"strconv"
	"strings"
)

var be = binary.BigEndian

// invalidTextPlaceholder is what String shows for data that is not UTF-8.
const invalidTextPlaceholder = "<invalid UTF-8>"

// Chunk is a single length-prefixed, checksummed PNG record.
// A Chunk is immutable once constructed and owns its data.
type Chunk struct {
	length uint32
	typ    ChunkType
	data   []byte
	crc    uint32
}

// Checksum returns the CRC-32 (ISO-HDLC) of the type bytes followed by data.
// The length field is not part of the checksum.
func Checksum(t ChunkType, data []byte) uint32 {
	c := crc32.Update(0, crc32.IEEETable, t.b[:])
	return crc32.Update(c, crc32.IEEETable, data)
}

// NewChunk builds a chunk of the given type around a copy of data and
// computes its CRC.
func NewChunk(t ChunkType, data []byte) Chunk {
	owned := make([]byte, len(data))
	copy(owned, data)
	return newChunkOwned(t, owned)
}

func newChunkOwned(t ChunkType, data []byte) Chunk {
	return Chunk{
		length: uint32(len(data)),
		typ:    t,
		data:   data,
		crc:    Checksum(t, data),
	}
}

// ChunkFromBytes decodes one complete chunk frame.
//
// The payload is everything between the type and the trailing CRC, so
// b must hold exactly one frame. The declared length is not consulted;
// Length of the returned chunk is always the payload size.
func ChunkFromBytes(b []byte) (Chunk, error) {
	if len(b) < ChunkOverhead {
		return Chunk{}, ErrShortBytes
	}
	var tb [4]byte
	copy(tb[:], b[LengthSize:LengthSize+TypeSize])
	t, err := ChunkTypeFromBytes(tb)
	if err != nil {
		return Chunk{}, err
	}

	payload := b[LengthSize+TypeSize : len(b)-CRCSize]
	stored := be.Uint32(b[len(b)-CRCSize:])

	data := make([]byte, len(payload))
	copy(data, payload)
	c := newChunkOwned(t, data)
	if c.crc != stored {
		return Chunk{}, &CRCMismatchError{Type: t, Want: c.crc, Got: stored}
	}
	return c, nil
}

// Length returns the number of data bytes.
func (c Chunk) Length() uint32 { return c.length }

// Type returns the chunk type.
func (c Chunk) Type() ChunkType { return c.typ }

// Data returns the chunk payload. The slice is shared with the chunk
// and must not be modified.
func (c Chunk) Data() []byte { return c.data }

// CRC returns the checksum of the chunk.
func (c Chunk) CRC() uint32 { return c.crc }

// DataAsString returns the payload as text. Data that is not valid UTF-8
// yields an error matching ErrInvalidUTF8; nothing is substituted.
func (c Chunk) DataAsString() (string, error) {
	if !isUTF8Valid(c.data) {
		return "", errInvalidText{Type: c.typ}
	}
	return string(c.data), nil
}

// Size returns the encoded size of the chunk frame.
func (c Chunk) Size() int { return ChunkOverhead + len(c.data) }

// AppendBytes appends the wire form of c to b:
// length (big-endian) | type | data | crc (big-endian).
func (c Chunk) AppendBytes(b []byte) []byte {
	b = Require(b, c.Size())
	b = be.AppendUint32(b, c.length)
	b = append(b, c.typ.b[:]...)
	b = append(b, c.data...)
	return be.AppendUint32(b, c.crc)
}

// Bytes returns the wire form of c in a new slice.
func (c Chunk) Bytes() []byte { return c.AppendBytes(nil) }

// Equal reports whether c and o have the same type, data and CRC.
func (c Chunk) Equal(o Chunk) bool {
	return c.typ == o.typ && c.crc == o.crc && string(c.data) == string(o.data)
}

// String renders the chunk for display. Data that is not valid UTF-8
// is shown as a placeholder.
func (c Chunk) String() string {
	text, err := c.DataAsString()
	if err != nil {
		text = invalidTextPlaceholder
	}
	var sb strings.Builder
	sb.WriteString("Chunk {\n")
	sb.WriteString("  Length: " + strconv.FormatUint(uint64(c.length), 10) + "\n")
	sb.WriteString("  Type: " + c.typ.String() + "\n")
	sb.WriteString("  Data: " + text + "\n")
	sb.WriteString("  CRC: " + strconv.FormatUint(uint64(c.crc), 10) + "\n")
	sb.WriteString("}")
	return sb.String()
}
