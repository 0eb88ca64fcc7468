package core

import (
	"github.com/tinylib/msgp/msgp"
)

// MessagePack encoders for the report types, written in the shape
// msgp generates: string-keyed maps, unknown keys skipped on decode.

const chunkReportFields = 12

// MarshalMsg implements msgp.Marshaler
func (z *ChunkReport) MarshalMsg(b []byte) (o []byte, err error) {
	o = msgp.Require(b, z.Msgsize())
	o = msgp.AppendMapHeader(o, chunkReportFields)
	o = msgp.AppendString(o, "index")
	o = msgp.AppendInt(o, z.Index)
	o = msgp.AppendString(o, "offset")
	o = msgp.AppendInt(o, z.Offset)
	o = msgp.AppendString(o, "length")
	o = msgp.AppendUint32(o, z.Length)
	o = msgp.AppendString(o, "type")
	o = msgp.AppendString(o, z.Type)
	o = msgp.AppendString(o, "critical")
	o = msgp.AppendBool(o, z.Critical)
	o = msgp.AppendString(o, "public")
	o = msgp.AppendBool(o, z.Public)
	o = msgp.AppendString(o, "reserved_valid")
	o = msgp.AppendBool(o, z.ReservedValid)
	o = msgp.AppendString(o, "safe_to_copy")
	o = msgp.AppendBool(o, z.SafeToCopy)
	o = msgp.AppendString(o, "crc")
	o = msgp.AppendUint32(o, z.CRC)
	o = msgp.AppendString(o, "utf8")
	o = msgp.AppendBool(o, z.UTF8)
	o = msgp.AppendString(o, "text")
	o = msgp.AppendString(o, z.Text)
	o = msgp.AppendString(o, "blake3")
	o = msgp.AppendString(o, z.BLAKE3)
	return
}

// UnmarshalMsg implements msgp.Unmarshaler
func (z *ChunkReport) UnmarshalMsg(bts []byte) (o []byte, err error) {
	var field []byte
	var zb0001 uint32
	zb0001, bts, err = msgp.ReadMapHeaderBytes(bts)
	if err != nil {
		err = msgp.WrapError(err)
		return
	}
	for zb0001 > 0 {
		zb0001--
		field, bts, err = msgp.ReadMapKeyZC(bts)
		if err != nil {
			err = msgp.WrapError(err)
			return
		}
		switch msgp.UnsafeString(field) {
		case "index":
			z.Index, bts, err = msgp.ReadIntBytes(bts)
		case "offset":
			z.Offset, bts, err = msgp.ReadIntBytes(bts)
		case "length":
			z.Length, bts, err = msgp.ReadUint32Bytes(bts)
		case "type":
			z.Type, bts, err = msgp.ReadStringBytes(bts)
		case "critical":
			z.Critical, bts, err = msgp.ReadBoolBytes(bts)
		case "public":
			z.Public, bts, err = msgp.ReadBoolBytes(bts)
		case "reserved_valid":
			z.ReservedValid, bts, err = msgp.ReadBoolBytes(bts)
		case "safe_to_copy":
			z.SafeToCopy, bts, err = msgp.ReadBoolBytes(bts)
		case "crc":
			z.CRC, bts, err = msgp.ReadUint32Bytes(bts)
		case "utf8":
			z.UTF8, bts, err = msgp.ReadBoolBytes(bts)
		case "text":
			z.Text, bts, err = msgp.ReadStringBytes(bts)
		case "blake3":
			z.BLAKE3, bts, err = msgp.ReadStringBytes(bts)
		default:
			bts, err = msgp.Skip(bts)
		}
		if err != nil {
			err = msgp.WrapError(err, string(field))
			return
		}
	}
	o = bts
	return
}

// Msgsize returns an upper bound estimate of the number of bytes occupied by the serialized message
func (z *ChunkReport) Msgsize() (s int) {
	s = msgp.MapHeaderSize +
		6 + msgp.IntSize +
		7 + msgp.IntSize +
		7 + msgp.Uint32Size +
		5 + msgp.StringPrefixSize + len(z.Type) +
		9 + msgp.BoolSize +
		7 + msgp.BoolSize +
		15 + msgp.BoolSize +
		13 + msgp.BoolSize +
		4 + msgp.Uint32Size +
		5 + msgp.BoolSize +
		5 + msgp.StringPrefixSize + len(z.Text) +
		7 + msgp.StringPrefixSize + len(z.BLAKE3)
	return
}

// MarshalMsg implements msgp.Marshaler
func (z *FileReport) MarshalMsg(b []byte) (o []byte, err error) {
	o = msgp.Require(b, z.Msgsize())
	o = msgp.AppendMapHeader(o, 3)
	o = msgp.AppendString(o, "path")
	o = msgp.AppendString(o, z.Path)
	o = msgp.AppendString(o, "size")
	o = msgp.AppendInt(o, z.Size)
	o = msgp.AppendString(o, "chunks")
	o = msgp.AppendArrayHeader(o, uint32(len(z.Chunks)))
	for i := range z.Chunks {
		o, err = z.Chunks[i].MarshalMsg(o)
		if err != nil {
			err = msgp.WrapError(err, "chunks", i)
			return
		}
	}
	return
}

// UnmarshalMsg implements msgp.Unmarshaler
func (z *FileReport) UnmarshalMsg(bts []byte) (o []byte, err error) {
	var field []byte
	var zb0001 uint32
	zb0001, bts, err = msgp.ReadMapHeaderBytes(bts)
	if err != nil {
		err = msgp.WrapError(err)
		return
	}
	for zb0001 > 0 {
		zb0001--
		field, bts, err = msgp.ReadMapKeyZC(bts)
		if err != nil {
			err = msgp.WrapError(err)
			return
		}
		switch msgp.UnsafeString(field) {
		case "path":
			z.Path, bts, err = msgp.ReadStringBytes(bts)
		case "size":
			z.Size, bts, err = msgp.ReadIntBytes(bts)
		case "chunks":
			var zb0002 uint32
			zb0002, bts, err = msgp.ReadArrayHeaderBytes(bts)
			if err != nil {
				break
			}
			z.Chunks = make([]ChunkReport, zb0002)
			for i := range z.Chunks {
				bts, err = z.Chunks[i].UnmarshalMsg(bts)
				if err != nil {
					err = msgp.WrapError(err, i)
					break
				}
			}
		default:
			bts, err = msgp.Skip(bts)
		}
		if err != nil {
			err = msgp.WrapError(err, string(field))
			return
		}
	}
	o = bts
	return
}

// Msgsize returns an upper bound estimate of the number of bytes occupied by the serialized message
func (z *FileReport) Msgsize() (s int) {
	s = msgp.MapHeaderSize +
		5 + msgp.StringPrefixSize + len(z.Path) +
		5 + msgp.IntSize +
		7 + msgp.ArrayHeaderSize
	for i := range z.Chunks {
		s += z.Chunks[i].Msgsize()
	}
	return
}
