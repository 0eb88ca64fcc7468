package png

// Fixed sizes of the PNG wire layout. A chunk frame is
// length | type | data | crc, so its encoded size is
// ChunkOverhead plus the payload length.
const (
	SignatureSize = 8
	LengthSize    = 4
	TypeSize      = 4
	CRCSize       = 4
	ChunkOverhead = LengthSize + TypeSize + CRCSize

	// MaxChunkLength is the largest payload the PNG format allows
	// (2^31-1). Only strict decoding enforces it.
	MaxChunkLength = 1<<31 - 1
)
