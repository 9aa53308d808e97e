// Package peinfo reads the version resource of a compiled PE image, so a
// build can check that the version written into a resource script ended up
// in the binary.
package peinfo

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/saferwall/pe"

	"github.com/joshuapare/rcversion/internal/rctext"
	"github.com/joshuapare/rcversion/pkg/types"
)

// MaxImageSize is the largest image Read will open.
const MaxImageSize = 300 * 1024 * 1024

// String-table keys with a dedicated field in Info.
const (
	KeyFileVersion    = "FileVersion"
	KeyProductVersion = "ProductVersion"
)

// ErrNoVersionInfo indicates the image parsed but carries no version resource.
var ErrNoVersionInfo = errors.New("peinfo: no version resource")

// Info is the string table of an image's version resource.
type Info struct {
	Path   string
	Fields map[string]string

	// FileVersion and ProductVersion are parsed from the string table when
	// they hold a four-part tuple.
	FileVersion    types.Version
	HasFile        bool
	ProductVersion types.Version
	HasProduct     bool
}

// Read opens the image at path and returns its version resource.
func Read(path string) (*Info, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("peinfo: %w", err)
	}
	if fi.Size() > MaxImageSize {
		return nil, fmt.Errorf("%w: %s is %d bytes", types.ErrFileTooLarge, path, fi.Size())
	}

	f, err := pe.New(path, &pe.Options{})
	if err != nil {
		return nil, fmt.Errorf("peinfo: open %s: %w", path, err)
	}
	defer f.Close()

	if err := f.Parse(); err != nil {
		return nil, fmt.Errorf("peinfo: parse %s: %w", path, err)
	}

	fields, err := f.ParseVersionResources()
	if err != nil {
		return nil, fmt.Errorf("peinfo: version resource of %s: %w", path, err)
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoVersionInfo, path)
	}
	return newInfo(path, fields), nil
}

func newInfo(path string, fields map[string]string) *Info {
	info := &Info{Path: path, Fields: fields}
	info.FileVersion, info.HasFile = ParseVersion(fields[KeyFileVersion])
	info.ProductVersion, info.HasProduct = ParseVersion(fields[KeyProductVersion])
	return info
}

// Keys returns the string-table keys in sorted order.
func (i *Info) Keys() []string {
	keys := make([]string, 0, len(i.Fields))
	for k := range i.Fields {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// ParseVersion reads a four-part tuple from a string-table value using the
// same rules as the resource script scanner.
func ParseVersion(s string) (types.Version, bool) {
	p, ok := rctext.Parse([]byte(s), 0)
	return p.Version, ok
}
