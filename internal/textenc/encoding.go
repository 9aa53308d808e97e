// Package textenc sniffs the character width of a resource script and
// converts between raw file bytes and the code units the scanner works on.
package textenc

import (
	"bytes"
	"encoding/binary"
)

// Encoding classifies how a resource script is stored on disk.
type Encoding int

const (
	// Narrow is 8-bit text without a byte order mark (ANSI code page or UTF-8).
	Narrow Encoding = iota
	// NarrowUTF8BOM is UTF-8 with a leading byte order mark.
	NarrowUTF8BOM
	// WideUTF16LE is UTF-16 little-endian without a byte order mark.
	WideUTF16LE
	// WideUTF16LEBOM is UTF-16 little-endian with a leading byte order mark.
	WideUTF16LEBOM
)

// String returns a short name used in log lines.
func (e Encoding) String() string {
	switch e {
	case Narrow:
		return "narrow"
	case NarrowUTF8BOM:
		return "utf-8 bom"
	case WideUTF16LE:
		return "utf-16le"
	case WideUTF16LEBOM:
		return "utf-16le bom"
	default:
		return "unknown"
	}
}

// Wide reports whether the encoding stores 16-bit code units.
func (e Encoding) Wide() bool {
	return e == WideUTF16LE || e == WideUTF16LEBOM
}

// BOM returns the byte order mark written in front of the content.
func (e Encoding) BOM() []byte {
	switch e {
	case NarrowUTF8BOM:
		return UTF8BOM
	case WideUTF16LEBOM:
		return UTF16LEBOM
	default:
		return nil
	}
}

// Detect classifies data. A byte order mark wins; otherwise the first
// SniffLength bytes are run through LooksUTF16LE.
func Detect(data []byte) Encoding {
	switch {
	case bytes.HasPrefix(data, UTF16LEBOM):
		return WideUTF16LEBOM
	case bytes.HasPrefix(data, UTF8BOM):
		return NarrowUTF8BOM
	}
	sample := data
	if len(sample) > SniffLength {
		sample = sample[:SniffLength]
	}
	if LooksUTF16LE(sample) {
		return WideUTF16LE
	}
	return Narrow
}

// LooksUTF16LE is a statistical check in the spirit of IsTextUnicode: text
// that is mostly ASCII stored as UTF-16LE has zero high bytes at odd offsets
// and almost none at even offsets. Narrow text has no zero bytes at all.
func LooksUTF16LE(sample []byte) bool {
	// trailing zero padding is not evidence either way
	sample = bytes.TrimRight(sample, "\x00")
	if len(sample) < UTF16CodeUnitSize {
		return false
	}
	if bytes.HasPrefix(sample, UTF16BEBOM) {
		return false
	}
	units := len(sample) / UTF16CodeUnitSize
	var oddZero, evenZero int
	for i := 0; i < units*UTF16CodeUnitSize; i += UTF16CodeUnitSize {
		if sample[i] == 0 {
			evenZero++
		}
		if sample[i+1] == 0 {
			oddZero++
		}
	}
	// a NUL code unit in the low byte means binary or big-endian data
	if evenZero > units/8 {
		return false
	}
	return oddZero*2 >= units
}

// Strip returns data without the byte order mark of enc.
func Strip(data []byte, enc Encoding) []byte {
	return bytes.TrimPrefix(data, enc.BOM())
}

// DecodeUnits converts UTF-16LE bytes into code units. A dangling odd byte is
// dropped. Surrogates are kept as separate units: the scanner only needs to
// see ASCII keywords and digits, so pairs never have to be combined.
func DecodeUnits(data []byte) []uint16 {
	if len(data)%UTF16CodeUnitSize == 1 {
		data = data[:len(data)-1]
	}
	units := make([]uint16, len(data)/UTF16CodeUnitSize)
	for i := range units {
		units[i] = binary.LittleEndian.Uint16(data[i*UTF16CodeUnitSize:])
	}
	return units
}

// EncodeUnits converts code units back to UTF-16LE bytes, optionally prefixed
// with the byte order mark.
func EncodeUnits(units []uint16, withBOM bool) []byte {
	size := len(units) * UTF16CodeUnitSize
	offset := 0
	if withBOM {
		size += len(UTF16LEBOM)
		offset = len(UTF16LEBOM)
	}
	out := make([]byte, size)
	copy(out, UTF16LEBOM[:offset])
	for i, u := range units {
		binary.LittleEndian.PutUint16(out[offset+i*UTF16CodeUnitSize:], u)
	}
	return out
}
