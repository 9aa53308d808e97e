package rctext

import "github.com/joshuapare/rcversion/internal/buf"

// NewBuffer copies content into a buffer with headroom zero elements after
// it. Headroom below MinPadding is raised to MinPadding.
func NewBuffer[C Char](content []C, headroom int) []C {
	headroom = max(headroom, MinPadding)
	out := make([]C, len(content)+headroom)
	copy(out, content)
	return out
}

// Content returns the logical content of s: everything before its first zero
// element.
func Content[C Char](s []C) []C {
	return s[:buf.Terminator(s, 0)]
}
