package rctext

import (
	"fmt"
	"math"

	"github.com/joshuapare/rcversion/internal/buf"
	"github.com/joshuapare/rcversion/pkg/types"
)

// Parsed is a version tuple read from a buffer.
type Parsed struct {
	Version types.Version
	// End is the offset just past the last digit of the revision on success,
	// or the offset where parsing stopped on failure.
	End int
}

// Parse reads a four-part tuple at off. Leading spaces and tabs are skipped.
// Each component is a run of decimal digits; components are separated by at
// least one of '.', ',', space, or tab in any mix. Nothing after the revision
// is consumed. Components larger than math.MaxInt32 saturate.
func Parse[C Char](s []C, off int) (Parsed, bool) {
	i := LTrim(s, off, blanks)
	var parts [4]int
	for n := range parts {
		if !isDigit(at(s, i)) {
			return Parsed{End: i}, false
		}
		parts[n], i = parseComponent(s, i)
		if n == len(parts)-1 {
			break
		}
		next := LTrim(s, i, tupleSeparators)
		if next == i {
			return Parsed{End: i}, false
		}
		i = next
	}
	return Parsed{
		Version: types.Version{Major: parts[0], Minor: parts[1], Build: parts[2], Revision: parts[3]},
		End:     i,
	}, true
}

func parseComponent[C Char](s []C, i int) (int, int) {
	v := 0
	for ; isDigit(at(s, i)); i++ {
		if v < math.MaxInt32 {
			v = v*10 + int(s[i]-'0')
			if v > math.MaxInt32 {
				v = math.MaxInt32
			}
		}
	}
	return v, i
}

// Format renders v in the canonical "a, b, c, d" form.
func Format[C Char](v types.Version) ([]C, error) {
	text := v.String()
	if len(text) >= FormatLimit {
		return nil, fmt.Errorf("%w: version text %q exceeds %d characters", types.ErrFileCorrupt, text, FormatLimit)
	}
	return fromString[C](text), nil
}

// Replace overwrites the first oldLen elements of s with newText, shifting
// the rest of the content, up to its zero terminator, to follow the new text.
// len(s) is the space available. A growing replacement fails unless the
// result and a terminator fit; on failure s is untouched.
//
// The shift is overlap-safe in both directions. Elements vacated by a
// shrinking replacement are zeroed.
func Replace[C Char](s []C, oldLen int, newText []C) bool {
	if oldLen < 0 || oldLen > len(s) {
		return false
	}
	tailLen := buf.Terminator(s, oldLen) - oldLen
	newLen := len(newText)
	if newLen > oldLen && len(s) <= newLen+tailLen {
		return false
	}

	if newLen != oldLen {
		if !buf.Move(s, newLen, oldLen, tailLen) {
			return false
		}
		end := newLen + tailLen
		if newLen < oldLen {
			buf.Clear(s, end, oldLen-newLen)
		} else {
			s[end] = 0
		}
	}
	copy(s, newText)
	return true
}
