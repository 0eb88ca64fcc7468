package core

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/synadia-labs/png.go/png"
)

// load reads the whole file at path and parses it.
func load(path string, opts Options) (*png.Png, os.FileMode, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, 0, fmt.Errorf("stat input: %w", err)
	}
	if !info.Mode().IsRegular() {
		return nil, 0, fmt.Errorf("%s is not a regular file", path)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, 0, fmt.Errorf("read %s: %w", path, err)
	}
	p, err := png.FromBytesWithOptions(raw, opts.Parse)
	if err != nil {
		return nil, 0, fmt.Errorf("parse %s: %w", path, err)
	}
	opts.logger().Debug("parsed file", "file", path, "bytes", len(raw), "chunks", p.Len())
	return p, info.Mode().Perm(), nil
}

// save writes p to path atomically: a temp file in the same
// directory is written, synced and renamed over the destination.
func save(path string, p *png.Png, mode os.FileMode) (err error) {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".pngme-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmpPath)
		}
	}()

	if _, err = p.WriteTo(tmp); err != nil {
		return fmt.Errorf("write %s: %w", tmpPath, err)
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("sync %s: %w", tmpPath, err)
	}
	if err = tmp.Chmod(mode); err != nil {
		return fmt.Errorf("chmod %s: %w", tmpPath, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", tmpPath, err)
	}
	if err = os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("rename to %s: %w", path, err)
	}
	return nil
}
