package rctext

import (
	"github.com/joshuapare/rcversion/internal/textenc"
)

// Char is the element type of a text buffer: byte for 8-bit text, uint16 for
// UTF-16 code units.
type Char interface {
	byte | uint16
}

// at returns s[i], or zero when i is outside s. Zero doubles as the end of
// the logical content, so every scanning loop stops at the slice boundary
// without a separate length check.
func at[C Char](s []C, i int) C {
	if i < 0 || i >= len(s) {
		return 0
	}
	return s[i]
}

func inSet[C Char](c C, set string) bool {
	for j := 0; j < len(set); j++ {
		if c == C(set[j]) {
			return true
		}
	}
	return false
}

func isDigit[C Char](c C) bool {
	return c >= '0' && c <= '9'
}

func isEOL[C Char](c C) bool {
	return c == 0 || c == '\r' || c == '\n'
}

// fromString widens an ASCII string into the buffer's element type.
func fromString[C Char](s string) []C {
	out := make([]C, len(s))
	for i := 0; i < len(s); i++ {
		out[i] = C(s[i])
	}
	return out
}

// display renders a buffer fragment for log output.
func display[C Char](s []C) string {
	switch v := any(s).(type) {
	case []byte:
		return textenc.NarrowString(v)
	case []uint16:
		return textenc.WideString(v)
	}
	return ""
}

// fragment renders up to fragmentLimit elements of s starting at i, stopping
// at the end of the line.
func fragment[C Char](s []C, i int) string {
	if i < 0 || i >= len(s) {
		return ""
	}
	end := i
	for end < len(s) && end-i < fragmentLimit && !isEOL(s[end]) {
		end++
	}
	return display(s[i:end])
}
