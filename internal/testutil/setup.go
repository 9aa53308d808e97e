// Package testutil provides resource script fixtures and file helpers for
// tests.
package testutil

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"unicode/utf16"

	"github.com/joshuapare/rcversion/internal/textenc"
)

// SetupScript copies a fixture script to a temporary directory and returns
// the copy's path, so the test may rewrite it freely.
// Calls t.Skip if the fixture is not found.
//
// Example:
//
//	path := testutil.SetupScript(t, testutil.ScriptVSGenerated)
func SetupScript(t *testing.T, fixture string) string {
	t.Helper()

	src := resolveTestPath(t, fixture)
	dst := filepath.Join(t.TempDir(), filepath.Base(fixture))
	copyFile(t, src, dst)
	return dst
}

// ReadFixture returns the bytes of a fixture script.
// Calls t.Skip if the fixture is not found.
func ReadFixture(t *testing.T, fixture string) []byte {
	t.Helper()

	data, err := os.ReadFile(resolveTestPath(t, fixture))
	if err != nil {
		t.Fatalf("Failed to read fixture: %v", err)
	}
	return data
}

// WriteScript writes data to name inside a fresh temporary directory and
// returns the path.
func WriteScript(t *testing.T, name string, data []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("Failed to write script: %v", err)
	}
	return path
}

// UTF16LE encodes s as UTF-16 little-endian, optionally with a byte order mark.
func UTF16LE(s string, bom bool) []byte {
	return textenc.EncodeUnits(utf16.Encode([]rune(s)), bom)
}

// resolveTestPath attempts to find the fixture by trying multiple path resolutions.
// This handles the fact that tests may be run from different working directories.
func resolveTestPath(t *testing.T, relativePath string) string {
	t.Helper()

	// Try paths in order of likelihood
	candidates := []string{
		relativePath,                  // Direct path (from repo root)
		"../../" + relativePath,       // From package two levels deep (e.g., internal/rcfile/)
		"../../../" + relativePath,    // From package three levels deep
		"../../../../" + relativePath, // From package four levels deep
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	// If not found, skip the test
	t.Skipf("Fixture not found at any candidate path starting from: %s", relativePath)
	return "" // unreachable
}

// copyFile copies a fixture from src to dst.
// Calls t.Fatal if the copy fails.
func copyFile(t *testing.T, src, dst string) {
	t.Helper()

	srcFile, err := os.Open(src)
	if err != nil {
		t.Skipf("Fixture not found: %v", err)
	}
	defer srcFile.Close()

	dstFile, err := os.Create(dst)
	if err != nil {
		t.Fatalf("Failed to create temp script: %v", err)
	}
	defer dstFile.Close()

	if _, copyErr := io.Copy(dstFile, srcFile); copyErr != nil {
		t.Fatalf("Failed to copy script: %v", copyErr)
	}
}
