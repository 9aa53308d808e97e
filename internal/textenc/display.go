package textenc

import (
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// NarrowString renders 8-bit text for a log line. Valid UTF-8 is passed
// through; anything else is assumed to be in the Windows-1252 code page that
// legacy resource scripts are usually saved in.
func NarrowString(b []byte) string {
	if utf8.Valid(b) {
		return string(b)
	}
	s, _, err := transform.Bytes(charmap.Windows1252.NewDecoder(), b)
	if err != nil {
		return string(b)
	}
	return string(s)
}

// WideString renders UTF-16 code units for a log line. Unpaired surrogates
// become U+FFFD.
func WideString(units []uint16) string {
	dec := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewDecoder()
	s, _, err := transform.Bytes(dec, EncodeUnits(units, false))
	if err != nil {
		return ""
	}
	return string(s)
}
