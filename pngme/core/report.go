package core

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	fxcbor "github.com/fxamacker/cbor/v2"
	"github.com/zeebo/blake3"

	"github.com/synadia-labs/png.go/png"
)

// Format selects the encoding of a print report.
type Format string

const (
	FormatText    Format = "text"
	FormatJSON    Format = "json"
	FormatCBOR    Format = "cbor"
	FormatMsgpack Format = "msgpack"
)

// Formats lists every supported report format.
var Formats = []Format{FormatText, FormatJSON, FormatCBOR, FormatMsgpack}

// ParseFormat maps a flag value to a Format.
func ParseFormat(s string) (Format, error) {
	for _, f := range Formats {
		if string(f) == strings.ToLower(s) {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown report format %q", s)
}

// invalidText stands in for chunk data that is not UTF-8.
const invalidText = "<invalid UTF-8>"

// ChunkReport describes one chunk of a file.
type ChunkReport struct {
	Index         int    `json:"index" cbor:"index"`
	Offset        int    `json:"offset" cbor:"offset"`
	Length        uint32 `json:"length" cbor:"length"`
	Type          string `json:"type" cbor:"type"`
	Critical      bool   `json:"critical" cbor:"critical"`
	Public        bool   `json:"public" cbor:"public"`
	ReservedValid bool   `json:"reserved_valid" cbor:"reserved_valid"`
	SafeToCopy    bool   `json:"safe_to_copy" cbor:"safe_to_copy"`
	CRC           uint32 `json:"crc" cbor:"crc"`
	UTF8          bool   `json:"utf8" cbor:"utf8"`
	Text          string `json:"text" cbor:"text"`
	BLAKE3        string `json:"blake3,omitempty" cbor:"blake3,omitempty"`
}

// FileReport describes a whole file.
type FileReport struct {
	Path   string        `json:"path" cbor:"path"`
	Size   int           `json:"size" cbor:"size"`
	Chunks []ChunkReport `json:"chunks" cbor:"chunks"`

	src *png.Png
}

// NewFileReport builds the report for p. With digest set, each chunk
// carries the hex BLAKE3-256 digest of its payload.
func NewFileReport(path string, p *png.Png, digest bool) *FileReport {
	chunks := p.Chunks()
	rep := &FileReport{
		Path:   path,
		Size:   p.Size(),
		Chunks: make([]ChunkReport, 0, len(chunks)),
		src:    p,
	}
	off := png.SignatureSize
	for i, c := range chunks {
		ct := c.Type()
		cr := ChunkReport{
			Index:         i,
			Offset:        off,
			Length:        c.Length(),
			Type:          ct.String(),
			Critical:      ct.IsCritical(),
			Public:        ct.IsPublic(),
			ReservedValid: ct.IsReservedBitValid(),
			SafeToCopy:    ct.IsSafeToCopy(),
			CRC:           c.CRC(),
		}
		if text, err := c.DataAsString(); err == nil {
			cr.UTF8 = true
			cr.Text = text
		} else {
			cr.Text = invalidText
		}
		if digest {
			sum := blake3.Sum256(c.Data())
			cr.BLAKE3 = hex.EncodeToString(sum[:])
		}
		rep.Chunks = append(rep.Chunks, cr)
		off += c.Size()
	}
	return rep
}

// Render writes the report to w in format f.
func (r *FileReport) Render(w io.Writer, f Format) error {
	switch f {
	case FormatText, "":
		return r.renderText(w)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case FormatCBOR:
		em, err := fxcbor.CoreDetEncOptions().EncMode()
		if err != nil {
			return err
		}
		b, err := em.Marshal(r)
		if err != nil {
			return err
		}
		_, err = w.Write(b)
		return err
	case FormatMsgpack:
		b, err := r.MarshalMsg(nil)
		if err != nil {
			return err
		}
		_, err = w.Write(b)
		return err
	default:
		return fmt.Errorf("unknown report format %q", f)
	}
}

// renderText prints every chunk's display form in file order.
func (r *FileReport) renderText(w io.Writer) error {
	var chunks []png.Chunk
	if r.src != nil {
		chunks = r.src.Chunks()
	}
	for i, c := range chunks {
		s := c.String()
		if d := r.Chunks[i].BLAKE3; d != "" {
			s = strings.TrimSuffix(s, "}") + "  BLAKE3: " + d + "\n}"
		}
		if _, err := fmt.Fprintln(w, s); err != nil {
			return err
		}
	}
	return nil
}
