package core

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"strings"
	"testing"

	fxcbor "github.com/fxamacker/cbor/v2"
	"github.com/zeebo/blake3"

	"github.com/synadia-labs/png.go/png"
)

func printReport(t *testing.T, path string, f Format, digest bool) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := Print(&buf, path, PrintOptions{Format: f, Digest: digest}, Options{}); err != nil {
		t.Fatalf("Print(%s) error: %v", f, err)
	}
	return buf.Bytes()
}

func checkReport(t *testing.T, rep FileReport, path string, digest bool) {
	t.Helper()
	if rep.Path != path {
		t.Fatalf("path: got %q", rep.Path)
	}
	if len(rep.Chunks) != 4 {
		t.Fatalf("chunk count: got %d", len(rep.Chunks))
	}
	wantTypes := []string{"IHDR", "IDAT", "IEND", "ruSt"}
	wantOffsets := []int{8, 33, 51, 63}
	for i, cr := range rep.Chunks {
		if cr.Index != i || cr.Type != wantTypes[i] || cr.Offset != wantOffsets[i] {
			t.Fatalf("chunk %d: got %+v", i, cr)
		}
	}
	last := rep.Chunks[3]
	if !last.UTF8 || last.Text != "hi" || last.Length != 2 || last.Critical || last.Public || !last.SafeToCopy || !last.ReservedValid {
		t.Fatalf("ruSt report mismatch: %+v", last)
	}
	if last.CRC != png.NewChunk(png.MustChunkType("ruSt"), []byte("hi")).CRC() {
		t.Fatalf("crc mismatch: %d", last.CRC)
	}
	if rep.Chunks[1].UTF8 || rep.Chunks[1].Text != invalidText {
		t.Fatalf("IDAT should not be text: %+v", rep.Chunks[1])
	}
	sum := blake3.Sum256([]byte("hi"))
	if digest && last.BLAKE3 != hex.EncodeToString(sum[:]) {
		t.Fatalf("blake3 mismatch: %q", last.BLAKE3)
	}
	if !digest && last.BLAKE3 != "" {
		t.Fatalf("unexpected digest: %q", last.BLAKE3)
	}
	if rep.Size != wantOffsets[3]+png.ChunkOverhead+2 {
		t.Fatalf("size: got %d", rep.Size)
	}
}

func encodedTestPng(t *testing.T) string {
	t.Helper()
	path := writeTestPng(t)
	if err := Encode(path, "ruSt", "hi", "", Options{}); err != nil {
		t.Fatalf("Encode error: %v", err)
	}
	return path
}

func TestPrintText(t *testing.T) {
	path := encodedTestPng(t)
	out := string(printReport(t, path, FormatText, true))
	if strings.Count(out, "Chunk {") != 4 {
		t.Fatalf("expected 4 chunks:\n%s", out)
	}
	order := []string{"Type: IHDR", "Type: IDAT", "Type: IEND", "Type: ruSt"}
	last := -1
	for _, s := range order {
		i := strings.Index(out, s)
		if i <= last {
			t.Fatalf("chunks out of order at %q:\n%s", s, out)
		}
		last = i
	}
	if !strings.Contains(out, "Data: hi") || !strings.Contains(out, "Data: <invalid UTF-8>") {
		t.Fatalf("unexpected data rendering:\n%s", out)
	}
	if strings.Count(out, "BLAKE3: ") != 4 {
		t.Fatalf("expected a digest per chunk:\n%s", out)
	}
}

func TestPrintJSON(t *testing.T) {
	path := encodedTestPng(t)
	var rep FileReport
	if err := json.Unmarshal(printReport(t, path, FormatJSON, false), &rep); err != nil {
		t.Fatalf("json.Unmarshal error: %v", err)
	}
	checkReport(t, rep, path, false)
}

func TestPrintCBOR(t *testing.T) {
	path := encodedTestPng(t)
	var rep FileReport
	if err := fxcbor.Unmarshal(printReport(t, path, FormatCBOR, true), &rep); err != nil {
		t.Fatalf("cbor.Unmarshal error: %v", err)
	}
	checkReport(t, rep, path, true)
}

func TestPrintCBORDeterministic(t *testing.T) {
	path := encodedTestPng(t)
	a := printReport(t, path, FormatCBOR, true)
	b := printReport(t, path, FormatCBOR, true)
	if !bytes.Equal(a, b) {
		t.Fatalf("CBOR report is not deterministic")
	}
}

func TestPrintMsgpack(t *testing.T) {
	path := encodedTestPng(t)
	var rep FileReport
	rest, err := rep.UnmarshalMsg(printReport(t, path, FormatMsgpack, true))
	if err != nil {
		t.Fatalf("UnmarshalMsg error: %v", err)
	}
	if len(rest) != 0 {
		t.Fatalf("leftover bytes: %d", len(rest))
	}
	checkReport(t, rep, path, true)
}

func TestMsgsizeIsUpperBound(t *testing.T) {
	path := encodedTestPng(t)
	var rep FileReport
	if err := json.Unmarshal(printReport(t, path, FormatJSON, false), &rep); err != nil {
		t.Fatalf("json.Unmarshal error: %v", err)
	}
	b, err := rep.MarshalMsg(nil)
	if err != nil {
		t.Fatalf("MarshalMsg error: %v", err)
	}
	if len(b) > rep.Msgsize() {
		t.Fatalf("Msgsize %d below encoded size %d", rep.Msgsize(), len(b))
	}
}

func TestParseFormat(t *testing.T) {
	for _, f := range Formats {
		got, err := ParseFormat(strings.ToUpper(string(f)))
		if err != nil || got != f {
			t.Fatalf("ParseFormat(%s): %v %v", f, got, err)
		}
	}
	if _, err := ParseFormat("yaml"); err == nil {
		t.Fatalf("expected error for yaml")
	}
	var rep FileReport
	if err := rep.Render(&bytes.Buffer{}, Format("yaml")); err == nil {
		t.Fatalf("expected Render error for unknown format")
	}
}
