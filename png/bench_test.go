package png

import (
	"bytes"
	"io"
	"testing"
)

func benchFile() []byte {
	chunks := testChunks()
	idat := NewChunk(MustChunkType("IDAT"), bytes.Repeat([]byte{0x42}, 64*1024))
	chunks = append(chunks[:len(chunks)-1], idat, chunks[len(chunks)-1])
	return testFile(chunks)
}

func BenchmarkFromBytes(b *testing.B) {
	raw := benchFile()
	b.SetBytes(int64(len(raw)))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := FromBytes(raw); err != nil {
			b.Fatalf("FromBytes: %v", err)
		}
	}
}

func BenchmarkPngBytes(b *testing.B) {
	p, err := FromBytes(benchFile())
	if err != nil {
		b.Fatalf("FromBytes: %v", err)
	}
	b.SetBytes(int64(p.Size()))
	b.ReportAllocs()
	b.ResetTimer()
	var out []byte
	for i := 0; i < b.N; i++ {
		out = p.Bytes()
	}
	_ = out
}

func BenchmarkPngAppendBytes(b *testing.B) {
	p, err := FromBytes(benchFile())
	if err != nil {
		b.Fatalf("FromBytes: %v", err)
	}
	b.SetBytes(int64(p.Size()))
	b.ReportAllocs()
	b.ResetTimer()
	var out []byte
	for i := 0; i < b.N; i++ {
		out = p.AppendBytes(out[:0])
	}
	_ = out
}

func BenchmarkPngWriteTo(b *testing.B) {
	p, err := FromBytes(benchFile())
	if err != nil {
		b.Fatalf("FromBytes: %v", err)
	}
	b.SetBytes(int64(p.Size()))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := p.WriteTo(io.Discard); err != nil {
			b.Fatalf("WriteTo: %v", err)
		}
	}
}
