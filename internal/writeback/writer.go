// Package writeback persists rendered artifacts, writing only when the
// fresh bytes differ from what is already on disk. The compiler reprints
// every schema on every run; this package is what turns that into
// idempotent output and gates regeneration of dependent stub files.
package writeback

import (
	"bytes"
	"fmt"
	"path/filepath"

	billy "github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
	"github.com/rs/zerolog"
)

// Writer is a change-aware file writer over a billy filesystem.
// Production runs use osfs; tests use memfs.
type Writer struct {
	fs  billy.Filesystem
	log zerolog.Logger
}

func New(fs billy.Filesystem, log zerolog.Logger) *Writer {
	return &Writer{fs: fs, log: log}
}

// Write persists content at path unless the file already holds exactly
// those bytes. It reports whether the file changed. The write is atomic:
// content goes to a temp file in the target directory first, then renames
// over the destination.
func (w *Writer) Write(path string, content []byte) (bool, error) {
	if existing, err := util.ReadFile(w.fs, path); err == nil && bytes.Equal(existing, content) {
		w.log.Info().Str("file", path).Msg("unchanged, skipped writing")
		return false, nil
	}

	dir := filepath.Dir(path)
	if err := w.fs.MkdirAll(dir, 0o755); err != nil {
		return false, fmt.Errorf("create dir %s: %w", dir, err)
	}

	tmp, err := util.TempFile(w.fs, dir, ".yang2proto-")
	if err != nil {
		return false, fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(content); err != nil {
		_ = tmp.Close()
		_ = w.fs.Remove(tmpName) // best-effort cleanup
		return false, fmt.Errorf("write temp: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = w.fs.Remove(tmpName) // best-effort cleanup
		return false, fmt.Errorf("close temp: %w", err)
	}
	if err := w.fs.Rename(tmpName, path); err != nil {
		_ = w.fs.Remove(tmpName) // best-effort cleanup
		return false, fmt.Errorf("rename temp to %s: %w", path, err)
	}

	w.log.Info().Str("file", path).Msg("writing file")
	return true, nil
}
