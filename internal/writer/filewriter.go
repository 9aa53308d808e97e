// Package writer exposes sinks for rewritten resource scripts.
package writer

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// DefaultPerm is used when the destination does not exist yet.
const DefaultPerm fs.FileMode = 0o644

// Sink receives the final bytes of a rewritten file.
type Sink interface {
	WriteFile(data []byte) error
}

// FileWriter writes a file to a filesystem path atomically.
type FileWriter struct {
	Path string
	// FullSync asks for the strongest flush the platform offers before the
	// rename. It only changes behavior on darwin.
	FullSync bool
}

// WriteFile writes data to the configured path atomically via temp file +
// rename. An existing destination keeps its permission bits.
func (w *FileWriter) WriteFile(data []byte) error {
	if w.Path == "" {
		return errors.New("writer: empty path")
	}
	perm := DefaultPerm
	if fi, err := os.Stat(w.Path); err == nil {
		if !fi.Mode().IsRegular() {
			return fmt.Errorf("writer: %s is not a regular file", w.Path)
		}
		perm = fi.Mode().Perm()
	}

	// Create temp file in same directory to ensure atomic rename
	dir := filepath.Dir(w.Path)
	tmpFile, err := os.CreateTemp(dir, ".rcversion-tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	// Clean up temp file on error
	defer func() {
		if tmpFile != nil {
			_ = tmpFile.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if _, writeErr := tmpFile.Write(data); writeErr != nil {
		return fmt.Errorf("write temp file: %w", writeErr)
	}
	if chmodErr := tmpFile.Chmod(perm); chmodErr != nil {
		return fmt.Errorf("chmod temp file: %w", chmodErr)
	}
	if syncErr := syncFile(tmpFile, w.FullSync); syncErr != nil {
		return fmt.Errorf("sync temp file: %w", syncErr)
	}

	// Close before rename
	if closeErr := tmpFile.Close(); closeErr != nil {
		return fmt.Errorf("close temp file: %w", closeErr)
	}
	tmpFile = nil // Don't clean up in defer

	if renameErr := os.Rename(tmpPath, w.Path); renameErr != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", renameErr)
	}

	return nil
}
