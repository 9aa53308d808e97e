package rctext

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSkipComment(t *testing.T) {
	tests := []struct {
		name  string
		input string
		start int
		want  int
	}{
		{name: "line comment to end of text", input: "// hello", want: 8},
		{name: "empty line comment", input: "//", want: 2},
		{name: "line comment stops before CR", input: "// a\r\nb", want: 4},
		{name: "line comment stops before LF", input: "// a\nb", want: 4},
		{name: "block comment", input: "/* x */rest", want: 7},
		{name: "empty block comment", input: "/**/x", want: 4},
		{name: "block comment spanning lines", input: "/* a\r\n b */x", want: 11},
		{name: "unterminated block comment", input: "/* never closed", want: 0},
		{name: "block comments do not nest", input: "/* /* */ */", want: 8},
		{name: "plain text", input: "abc", want: 0},
		{name: "lone slash", input: "/ x", want: 0},
		{name: "offset inside text", input: "ab/*c*/d", start: 2, want: 7},
		{name: "offset past end", input: "ab", start: 5, want: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SkipComment([]byte(tt.input), tt.start))
			assert.Equal(t, tt.want, SkipComment(wide(tt.input, 0)[:len(tt.input)], tt.start), "wide")
		})
	}
}

func TestSkipComments(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{name: "nothing to skip", input: "X", want: 0},
		{name: "blanks only", input: " \t X", want: 3},
		{name: "block then blanks", input: "\t/* a */ X", want: 9},
		{name: "block then line comment", input: "  /* a */ // b", want: 14},
		{name: "adjacent block comments", input: "/*a*//*b*/X", want: 10},
		{name: "stops at unterminated comment", input: " /* X", want: 1},
		{name: "does not cross line break", input: " \r\n X", want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SkipComments(narrow(tt.input, 0), 0))
		})
	}
}

func TestLTrimSkipToNextLine(t *testing.T) {
	s := narrow(" \t,x,y\r\nnext\nlast", 0)

	assert.Equal(t, 2, LTrim(s, 0, " \t"))
	assert.Equal(t, 3, LTrim(s, 0, " \t,"))
	assert.Equal(t, 3, LTrim(s, 3, " \t,"))
	assert.Equal(t, 2, SkipTo(s, 0, ","))
	assert.Equal(t, 6, SkipTo(s, 0, "\r\n"))
	assert.Equal(t, 8, NextLine(s, 0))
	assert.Equal(t, 13, NextLine(s, 8))
	assert.Equal(t, 17, NextLine(s, 13), "last line ends at the terminator")
	assert.Equal(t, 17, NextLine(s, 17))
}

func TestLexStopsAtTerminator(t *testing.T) {
	s := []byte("ab\x00  cd\n")

	assert.Equal(t, 2, LTrim(s, 2, " \x00"))
	assert.Equal(t, 2, SkipTo(s, 0, "c"))
	assert.Equal(t, 2, NextLine(s, 0))
	assert.Equal(t, len(s), LTrim(s, 100, " "))
	assert.Equal(t, 0, LTrim(s, -3, ""))
}

func TestHasKeyword(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{input: "FILEVERSION 1,0,0,1", want: true},
		{input: "FILEVERSION\t1", want: true},
		{input: "FILEVERSION\r\n", want: true},
		{input: "FILEVERSION", want: true},
		{input: "FILEVERSION/* c */1", want: true},
		{input: "FILEVERSION// c", want: true},
		{input: "FILEVERSIONS 1", want: false},
		{input: "FILEVERSION1", want: false},
		{input: "FileVersion 1", want: false},
		{input: "FILEVER", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, hasKeyword([]byte(tt.input), 0, KeywordFileVersion))
		})
	}
}

func TestSkipWord(t *testing.T) {
	s := []byte(`VS_VERSION_INFO/* c */VERSIONINFO`)
	assert.Equal(t, 15, skipWord(s, 0))
	assert.Equal(t, 15, skipWord(s, 15), "no progress on a comment opener")
	assert.Equal(t, len(s), skipWord(s, 22))
}
