// Command pngme hides text messages in PNG files as extra chunks,
// reads them back, removes them and lists the chunks of a file.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/synadia-labs/png.go/internal/logging"
	"github.com/synadia-labs/png.go/png"
	"github.com/synadia-labs/png.go/pngme/core"
)

// Globals holds the flags shared by every subcommand.
type Globals struct {
	LogLevel    string `name:"log-level" help:"Log level (debug, info, warn, error)" enum:"debug,info,warn,error" default:"warn"`
	LogFormat   string `name:"log-format" help:"Log format (text, json)" enum:"text,json" default:"text"`
	Strict      bool   `help:"Reject chunks whose declared length exceeds 2^31-1"`
	MaxChunkLen uint32 `name:"max-chunk-len" help:"Reject chunks whose declared length exceeds this many bytes (0 disables)" default:"0"`
}

func (g *Globals) options(logger *slog.Logger) core.Options {
	return core.Options{
		Logger: logger,
		Parse:  png.ParseOptions{Strict: g.Strict, MaxChunkLen: g.MaxChunkLen},
	}
}

// CLI defines the pngme command-line interface.
type CLI struct {
	Globals

	Encode EncodeCmd `cmd:"" help:"Hide a message in a new chunk"`
	Decode DecodeCmd `cmd:"" help:"Print the message stored in a chunk"`
	Remove RemoveCmd `cmd:"" help:"Remove the first chunk of a type"`
	Print  PrintCmd  `cmd:"" help:"List every chunk of a file"`
}

// EncodeCmd appends a message chunk.
type EncodeCmd struct {
	Path      string `arg:"" help:"PNG file to read" type:"existingfile"`
	ChunkType string `arg:"" name:"type" help:"Four-letter chunk type, e.g. ruSt"`
	Message   string `arg:"" help:"Message to store"`
	Output    string `arg:"" optional:"" help:"Write here instead of rewriting the input" type:"path"`
}

func (c *EncodeCmd) Run(g *Globals, logger *slog.Logger) error {
	return core.Encode(c.Path, c.ChunkType, c.Message, c.Output, g.options(logger))
}

// DecodeCmd prints a stored message.
type DecodeCmd struct {
	Path      string `arg:"" help:"PNG file to read" type:"existingfile"`
	ChunkType string `arg:"" name:"type" help:"Four-letter chunk type"`
}

func (c *DecodeCmd) Run(g *Globals, logger *slog.Logger) error {
	msg, err := core.Decode(c.Path, c.ChunkType, g.options(logger))
	if err != nil {
		return err
	}
	fmt.Println(msg)
	return nil
}

// RemoveCmd removes a chunk in place.
type RemoveCmd struct {
	Path      string `arg:"" help:"PNG file to edit in place" type:"existingfile"`
	ChunkType string `arg:"" name:"type" help:"Four-letter chunk type"`
}

func (c *RemoveCmd) Run(g *Globals, logger *slog.Logger) error {
	removed, err := core.Remove(c.Path, c.ChunkType, g.options(logger))
	if err != nil {
		return err
	}
	fmt.Printf("Removed:\n%s\n", removed)
	return nil
}

// PrintCmd lists chunks.
type PrintCmd struct {
	Path   string `arg:"" help:"PNG file to read" type:"existingfile"`
	Format string `short:"f" help:"Output format (text, json, cbor, msgpack)" enum:"text,json,cbor,msgpack" default:"text"`
	Digest bool   `short:"d" help:"Include a BLAKE3 digest of each chunk payload"`
}

func (c *PrintCmd) Run(g *Globals, logger *slog.Logger) error {
	f, err := core.ParseFormat(c.Format)
	if err != nil {
		return err
	}
	return core.Print(os.Stdout, c.Path, core.PrintOptions{Format: f, Digest: c.Digest}, g.options(logger))
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("pngme"),
		kong.Description("Hide, read and remove messages stored in PNG chunks."),
		kong.UsageOnError(),
	)

	logger, err := newLogger(&cli.Globals)
	ctx.FatalIfErrorf(err)

	if err := ctx.Run(&cli.Globals, logger); err != nil {
		logger.Debug("command failed", "command", ctx.Command(), "resumable", png.Resumable(err), "error", err)
		ctx.FatalIfErrorf(err)
	}
}

func newLogger(g *Globals) (*slog.Logger, error) {
	level, err := logging.ParseLevel(g.LogLevel)
	if err != nil {
		return nil, err
	}
	format, err := logging.ParseFormat(g.LogFormat)
	if err != nil {
		return nil, err
	}
	return logging.Init(level, format), nil
}
