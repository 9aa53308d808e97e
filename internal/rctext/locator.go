package rctext

import (
	"github.com/joshuapare/rcversion/internal/logger"
)

// Locator finds VERSIONINFO blocks and the version tuples inside them.
// A zero Locator works and logs nothing.
type Locator[C Char] struct {
	log *logger.Logger

	// SkipDirectives makes preprocessor lines inside the block behave like
	// comments instead of ending the scan.
	SkipDirectives bool
}

// NewLocator returns a Locator that reports what it recognises to log.
func NewLocator[C Char](log *logger.Logger) *Locator[C] {
	return &Locator[C]{log: log}
}

// FindStartOfVersion returns the offset of the line after the first
// VERSIONINFO keyword, or 0 when there is none. The keyword must be a whole
// word outside any comment. Only the first block in a buffer is considered.
func (l *Locator[C]) FindStartOfVersion(s []C) int {
	for line := 0; at(s, line) != 0; {
		i := SkipComments(s, line)
		for !isEOL(at(s, i)) {
			if hasKeyword(s, i, KeywordVersionInfo) {
				start := NextLine(s, i)
				l.log.Logf(logger.LevelSection, "found %s at offset %d, block starts at offset %d",
					KeywordVersionInfo, i, start)
				return start
			}
			next := SkipComments(s, skipWord(s, i))
			if next == i {
				next++
			}
			i = next
		}
		line = NextLine(s, i)
	}
	l.log.Logf(logger.LevelSection, "no %s keyword found", KeywordVersionInfo)
	return 0
}

// FindVersionStrings walks the lines from start and returns, in document
// order, the offset of every version tuple it finds.
//
// Blank and comment-only lines are skipped. Any other line must begin with a
// known keyword; the first line that does not, including a preprocessor
// directive unless SkipDirectives is set, ends the block.
func (l *Locator[C]) FindVersionStrings(s []C, start int) []int {
	var offsets []int
	line := clamp(s, start)
	for at(s, line) != 0 {
		i := SkipComments(s, line)
		c := at(s, i)
		if isEOL(c) {
			line = NextLine(s, i)
			continue
		}
		if c == preprocessorMark {
			if l.SkipDirectives {
				l.log.Logf(logger.LevelTrace, "skipping directive [%s] at offset %d", fragment(s, i), i)
				line = NextLine(s, i)
				continue
			}
			l.log.Logf(logger.LevelTrace, "directive [%s] at offset %d ends the block", fragment(s, i), i)
			break
		}

		kw, ok := matchKeyword(s, i)
		if !ok {
			l.log.Logf(logger.LevelTrace, "line [%s] at offset %d ends the block", fragment(s, i), i)
			break
		}
		l.log.Logf(logger.LevelTrace, "found %s keyword %s at offset %d", kw.role, kw.text, i)

		end := i + len(kw.text)
		switch kw.role {
		case roleFixed:
			end = SkipComments(s, end)
			offsets = append(offsets, end)
		case roleString:
			var found bool
			end, found = l.stringValue(s, end)
			if found {
				offsets = append(offsets, end)
			}
		}
		line = NextLine(s, end)
	}
	l.log.Logf(logger.LevelSection, "found %d version fields", len(offsets))
	return offsets
}

// stringValue inspects the text after a VALUE keyword. When it names one of
// the version entries and a value follows, it returns the offset of the first
// non-blank character inside the value's opening quote.
func (l *Locator[C]) stringValue(s []C, i int) (int, bool) {
	j := SkipComments(s, i)
	for _, name := range stringNames {
		if !hasPrefix(s, j, name) {
			continue
		}
		k := j + len(name)
		for {
			next := SkipComments(s, LTrim(s, k, nameSeparators))
			if next == k {
				break
			}
			k = next
		}
		if isEOL(at(s, k)) {
			l.log.Logf(logger.LevelTrace, "entry %s at offset %d has no value", name, j)
			return k, false
		}
		if at(s, k) == quote {
			k = LTrim(s, k+1, blanks)
		}
		l.log.Logf(logger.LevelTrace, "found entry %s at offset %d, value at offset %d", name, j, k)
		return k, true
	}
	return j, false
}

func matchKeyword[C Char](s []C, i int) (keyword, bool) {
	for _, kw := range keywords {
		if hasKeyword(s, i, kw.text) {
			return kw, true
		}
	}
	return keyword{}, false
}

// FindStartOfVersion is Locator.FindStartOfVersion without logging.
func FindStartOfVersion[C Char](s []C) int {
	var l Locator[C]
	return l.FindStartOfVersion(s)
}

// FindVersionStrings is Locator.FindVersionStrings without logging.
func FindVersionStrings[C Char](s []C, start int) []int {
	var l Locator[C]
	return l.FindVersionStrings(s, start)
}
