// Package buf contains bounds-checked helpers for in-place slice editing.
package buf

import "math"

// AddOverflowSafe adds a and b, returning ok = false when the result would overflow int.
func AddOverflowSafe(a, b int) (int, bool) {
	switch {
	case b > 0 && a > math.MaxInt-b:
		return 0, false
	case b < 0 && a < math.MinInt-b:
		return 0, false
	default:
		return a + b, true
	}
}

// Slice returns the sub-slice [off:off+n] if it fits within len(s).
func Slice[T any](s []T, off, n int) ([]T, bool) {
	if off < 0 || n < 0 || off > len(s) {
		return nil, false
	}
	end, ok := AddOverflowSafe(off, n)
	if !ok || end > len(s) {
		return nil, false
	}
	return s[off:end], true
}

// Has reports whether s[off:off+n] is within bounds.
func Has[T any](s []T, off, n int) bool {
	_, ok := Slice(s, off, n)
	return ok
}

// Move copies n elements from s[src:] to s[dst:] inside the same slice.
// The ranges may overlap in either direction; the result is as if the source
// had first been copied to a temporary.
//
// Move reports false, and leaves s untouched, when either range falls outside s.
func Move[T any](s []T, dst, src, n int) bool {
	from, ok := Slice(s, src, n)
	if !ok {
		return false
	}
	to, ok := Slice(s, dst, n)
	if !ok {
		return false
	}
	if n == 0 || dst == src {
		return true
	}
	// copy is specified to handle overlapping slices.
	copy(to, from)
	return true
}

// Clear zeroes s[off:off+n]. It reports false when the range is out of bounds.
func Clear[T any](s []T, off, n int) bool {
	span, ok := Slice(s, off, n)
	if !ok {
		return false
	}
	clear(span)
	return true
}

// Terminator returns the index of the first zero element at or after off, or
// len(s) when the remainder holds none.
func Terminator[T byte | uint16](s []T, off int) int {
	if off < 0 {
		off = 0
	}
	for i := off; i < len(s); i++ {
		if s[i] == 0 {
			return i
		}
	}
	return len(s)
}
