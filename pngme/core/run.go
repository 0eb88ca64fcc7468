package core

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/synadia-labs/png.go/png"

	"github.com/synadia-labs/png.go/internal/logging"
)

// Options configures how the commands load files and report progress.
type Options struct {
	// Logger receives one record per action. Nil discards.
	Logger *slog.Logger
	// Parse controls chunk length limits while loading.
	Parse png.ParseOptions
}

func (o Options) logger() *slog.Logger {
	if o.Logger == nil {
		return logging.Discard()
	}
	return o.Logger
}

// Encode appends a chunk of type chunkType carrying message to the file
// at path. The result is written to output, or back to path when output
// is empty.
func Encode(path, chunkType, message, output string, opts Options) error {
	ct, err := png.ParseChunkType(chunkType)
	if err != nil {
		return fmt.Errorf("chunk type: %w", err)
	}
	p, mode, err := load(path, opts)
	if err != nil {
		return err
	}

	log := opts.logger()
	if !ct.IsValid() {
		log.Warn("chunk type has the reserved bit set; other tools may reject it", "type", ct.String())
	}

	c := png.NewChunk(ct, []byte(message))
	p.AppendChunk(c)

	out := output
	if strings.TrimSpace(out) == "" {
		out = path
	}
	if err := save(out, p, mode); err != nil {
		return err
	}
	log.Info("encoded chunk", "file", out, "type", ct.String(), "bytes", c.Length(), "crc", c.CRC())
	return nil
}

// Decode returns the text of the first chunk of type chunkType.
// A missing chunk matches png.ErrChunkNotFound and undecodable text
// matches png.ErrInvalidUTF8.
func Decode(path, chunkType string, opts Options) (string, error) {
	if _, err := png.ParseChunkType(chunkType); err != nil {
		return "", fmt.Errorf("chunk type: %w", err)
	}
	p, _, err := load(path, opts)
	if err != nil {
		return "", err
	}
	c, ok := p.ChunkByType(chunkType)
	if !ok {
		return "", &png.ChunkNotFoundError{Type: chunkType}
	}
	msg, err := c.DataAsString()
	if err != nil {
		return "", err
	}
	opts.logger().Info("decoded chunk", "file", path, "type", chunkType, "bytes", c.Length())
	return msg, nil
}

// Remove deletes the first chunk of type chunkType from the file at path,
// rewriting it in place, and returns the removed chunk.
func Remove(path, chunkType string, opts Options) (png.Chunk, error) {
	if _, err := png.ParseChunkType(chunkType); err != nil {
		return png.Chunk{}, fmt.Errorf("chunk type: %w", err)
	}
	p, mode, err := load(path, opts)
	if err != nil {
		return png.Chunk{}, err
	}
	c, err := p.RemoveChunk(chunkType)
	if err != nil {
		return png.Chunk{}, err
	}
	if err := save(path, p, mode); err != nil {
		return png.Chunk{}, err
	}
	opts.logger().Info("removed chunk", "file", path, "type", chunkType, "bytes", c.Length(), "chunks", p.Len())
	return c, nil
}

// PrintOptions selects how Print renders a file.
type PrintOptions struct {
	Format Format
	// Digest adds a BLAKE3-256 digest of every chunk payload.
	Digest bool
}

// Print writes a report of every chunk in the file at path to w, in file order.
func Print(w io.Writer, path string, popts PrintOptions, opts Options) error {
	p, _, err := load(path, opts)
	if err != nil {
		return err
	}
	rep := NewFileReport(path, p, popts.Digest)
	if err := rep.Render(w, popts.Format); err != nil {
		return fmt.Errorf("render %s report: %w", popts.Format, err)
	}
	opts.logger().Debug("printed file", "file", path, "format", string(popts.Format), "chunks", p.Len())
	return nil
}
