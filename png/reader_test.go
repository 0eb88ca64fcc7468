package png

import (
	"bytes"
	"errors"
	"testing"
)

func TestReaderWalksFrames(t *testing.T) {
	chunks := testChunks()
	r := NewReaderBytes(testFile(chunks))
	if err := r.ReadSignature(); err != nil {
		t.Fatalf("ReadSignature error: %v", err)
	}
	if r.Offset() != SignatureSize {
		t.Fatalf("offset after signature: %d", r.Offset())
	}
	off := SignatureSize
	for i, want := range chunks {
		if r.Done() {
			t.Fatalf("reader done early at chunk %d", i)
		}
		c, err := r.ReadChunk()
		if err != nil {
			t.Fatalf("ReadChunk %d error: %v", i, err)
		}
		if !c.Equal(want) {
			t.Fatalf("chunk %d mismatch", i)
		}
		off += want.Size()
		if r.Offset() != off {
			t.Fatalf("offset after chunk %d: got %d want %d", i, r.Offset(), off)
		}
	}
	if !r.Done() || len(r.Remaining()) != 0 {
		t.Fatalf("expected reader to be exhausted")
	}
}

func TestReaderDoesNotAdvanceOnError(t *testing.T) {
	good := NewChunk(MustChunkType("teXt"), []byte("ok")).Bytes()
	bad := frame(2, "teXt", []byte("ok"), 1)
	r := NewReaderBytes(append(good, bad...))
	if _, err := r.ReadChunk(); err != nil {
		t.Fatalf("ReadChunk error: %v", err)
	}
	before := r.Offset()
	if _, err := r.ReadChunk(); !errors.Is(err, ErrCRCMismatch) {
		t.Fatalf("expected ErrCRCMismatch, got %v", err)
	}
	if r.Offset() != before || !bytes.Equal(r.Remaining(), bad) {
		t.Fatalf("reader advanced on error")
	}
}

func TestReaderLimits(t *testing.T) {
	b := NewChunk(MustChunkType("IDAT"), make([]byte, 100)).Bytes()

	r := NewReaderBytes(b)
	r.SetMaxChunkLen(99)
	if _, err := r.ReadChunk(); !errors.Is(err, ErrLimitExceeded) {
		t.Fatalf("expected ErrLimitExceeded, got %v", err)
	}

	r = NewReaderBytes(b)
	r.SetMaxChunkLen(100)
	r.SetStrictDecode(true)
	if _, err := r.ReadChunk(); err != nil {
		t.Fatalf("ReadChunk error: %v", err)
	}
}

func TestReaderSignatureMismatch(t *testing.T) {
	r := NewReaderBytes([]byte("GIF89a\x00\x00\x00"))
	if err := r.ReadSignature(); !errors.Is(err, ErrBadSignature) {
		t.Fatalf("expected ErrBadSignature, got %v", err)
	}
	if r.Offset() != 0 {
		t.Fatalf("reader advanced on bad signature")
	}
}

func TestPeekChunkType(t *testing.T) {
	b := NewChunk(MustChunkType("tIME"), make([]byte, 7)).Bytes()
	ct, err := PeekChunkType(b)
	if err != nil {
		t.Fatalf("PeekChunkType error: %v", err)
	}
	if ct.String() != "tIME" {
		t.Fatalf("PeekChunkType: got %q", ct)
	}
	if _, err := PeekChunkType(b[:7]); !errors.Is(err, ErrShortBytes) {
		t.Fatalf("expected ErrShortBytes, got %v", err)
	}
}

func TestByteBufferPool(t *testing.T) {
	bb := GetMinSize(10000)
	if bb.Len() != 0 || bb.Cap() < 10000 {
		t.Fatalf("GetMinSize: len %d cap %d", bb.Len(), bb.Cap())
	}
	bb.AppendSignature().AppendUint32(0xdeadbeef)
	if !HasSignature(bb.Bytes()) {
		t.Fatalf("missing signature")
	}
	if be.Uint32(bb.Bytes()[SignatureSize:]) != 0xdeadbeef {
		t.Fatalf("AppendUint32 mismatch")
	}
	c := NewChunk(MustChunkType("teXt"), []byte("pool"))
	bb.AppendChunk(c)
	if bb.Len() != SignatureSize+4+c.Size() {
		t.Fatalf("Len: got %d", bb.Len())
	}
	var out bytes.Buffer
	if _, err := bb.WriteTo(&out); err != nil {
		t.Fatalf("WriteTo error: %v", err)
	}
	if !bytes.Equal(out.Bytes(), bb.Bytes()) {
		t.Fatalf("WriteTo mismatch")
	}
	PutByteBuffer(bb)

	bb = GetByteBuffer()
	if bb.Len() != 0 {
		t.Fatalf("pooled buffer not reset")
	}
	PutByteBuffer(bb)
}

func TestByteBufferEnsureGrows(t *testing.T) {
	bb := &ByteBuffer{}
	bb.Write([]byte("abc"))
	bb.Ensure(1 << 16)
	if bb.Cap() < 3+1<<16 || string(bb.Bytes()) != "abc" {
		t.Fatalf("Ensure lost data or capacity: cap %d %q", bb.Cap(), bb.Bytes())
	}
}
