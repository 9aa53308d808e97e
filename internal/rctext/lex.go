package rctext

// LTrim returns the offset of the first element at or after i that is not in
// chaff. It never moves past the end of the content.
func LTrim[C Char](s []C, i int, chaff string) int {
	i = clamp(s, i)
	for i < len(s) && s[i] != 0 && inSet(s[i], chaff) {
		i++
	}
	return i
}

// SkipTo returns the offset of the first element at or after i that is in
// set, or the end of the content.
func SkipTo[C Char](s []C, i int, set string) int {
	i = clamp(s, i)
	for i < len(s) && s[i] != 0 && !inSet(s[i], set) {
		i++
	}
	return i
}

// NextLine returns the offset just past the next line feed at or after i, or
// the end of the content when there is none.
func NextLine[C Char](s []C, i int) int {
	i = SkipTo(s, i, "\n")
	if at(s, i) == '\n' {
		i++
	}
	return i
}

// SkipComment returns the offset after a comment that begins at i. A line
// comment ends before the line break. A block comment ends after its closing
// */; when there is none it is not a comment and i is returned unchanged, as
// it is for any other text.
func SkipComment[C Char](s []C, i int) int {
	if at(s, i) != '/' {
		return i
	}
	switch at(s, i+1) {
	case '/':
		j := i + 2
		for !isEOL(at(s, j)) {
			j++
		}
		return j
	case '*':
		for j := i + 2; at(s, j) != 0; j++ {
			if s[j] == '*' && at(s, j+1) == '/' {
				return j + 2
			}
		}
	}
	return i
}

// SkipComments skips any mix of spaces, tabs and comments starting at i.
func SkipComments[C Char](s []C, i int) int {
	for {
		i = LTrim(s, i, blanks)
		j := SkipComment(s, i)
		if j == i {
			return i
		}
		i = j
	}
}

func startsComment[C Char](s []C, i int) bool {
	return at(s, i) == '/' && (at(s, i+1) == '/' || at(s, i+1) == '*')
}

// wordEnds reports whether a word may end right before i.
func wordEnds[C Char](s []C, i int) bool {
	return at(s, i) <= ' ' || startsComment(s, i)
}

// skipWord returns the offset after the run of non-blank text at i.
func skipWord[C Char](s []C, i int) int {
	for !wordEnds(s, i) {
		i++
	}
	return i
}

// hasPrefix reports whether text occurs literally at i.
func hasPrefix[C Char](s []C, i int, text string) bool {
	for j := 0; j < len(text); j++ {
		if at(s, i+j) != C(text[j]) {
			return false
		}
	}
	return true
}

// hasKeyword reports whether kw occurs at i as a whole word.
func hasKeyword[C Char](s []C, i int, kw string) bool {
	return hasPrefix(s, i, kw) && wordEnds(s, i+len(kw))
}

func clamp[C Char](s []C, i int) int {
	if i < 0 {
		return 0
	}
	if i > len(s) {
		return len(s)
	}
	return i
}
