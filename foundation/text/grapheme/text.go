// File: text.go
// Title: Segmented Text
// Description: Text holds a string together with its grapheme cluster
//              boundaries and offers index based access to the units.
// Author: msto63
// Version: v0.1.1
// Created: 2026-09-29
// Modified: 2026-10-18
//
// Change History:
// - 2026-09-29 v0.1.0: Initial implementation
// - 2026-10-18 v0.1.1: Whitespace is ASCII only

package grapheme

import (
	"sort"
	"strings"

	"github.com/rivo/uniseg"
)

const asciiSpace = " \t\n\v\f\r"

// Text is an immutable string segmented into character units.
type Text struct {
	s      string
	bounds []int // bounds[i] is the byte offset of unit i; the last entry is len(s)
}

// New segments s.
func New(s string) Text {
	bounds := make([]int, 1, len(s)+1)
	state := -1
	rest := s
	offset := 0
	for len(rest) > 0 {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		offset += len(cluster)
		bounds = append(bounds, offset)
	}
	return Text{s: s, bounds: bounds}
}

// String returns the underlying string.
func (t Text) String() string {
	return t.s
}

// Len returns the number of character units.
func (t Text) Len() int {
	if len(t.bounds) == 0 {
		return 0
	}
	return len(t.bounds) - 1
}

// At returns unit i. It panics if i is out of range.
func (t Text) At(i int) string {
	return t.s[t.bounds[i]:t.bounds[i+1]]
}

// Slice returns the units in [i, j) as a string.
func (t Text) Slice(i, j int) string {
	if t.Len() == 0 {
		return ""
	}
	return t.s[t.bounds[i]:t.bounds[j]]
}

// Offset returns the byte offset of character index i, 0 <= i <= Len().
func (t Text) Offset(i int) int {
	if len(t.bounds) == 0 {
		return 0
	}
	return t.bounds[i]
}

// Index converts a byte offset to a character index. ok is false when the
// offset does not fall on a unit boundary.
func (t Text) Index(offset int) (index int, ok bool) {
	if len(t.bounds) == 0 {
		return 0, offset == 0
	}
	i := sort.SearchInts(t.bounds, offset)
	if i < len(t.bounds) && t.bounds[i] == offset {
		return i, true
	}
	return i, false
}

// Units returns every unit in order.
func (t Text) Units() []string {
	units := make([]string, t.Len())
	for i := range units {
		units[i] = t.At(i)
	}
	return units
}

// IsSpaceAt reports whether unit i is whitespace.
func (t Text) IsSpaceAt(i int) bool {
	return IsSpace(t.At(i))
}

// Split returns the character units of s.
func Split(s string) []string {
	units := make([]string, 0, len(s))
	state := -1
	for len(s) > 0 {
		var cluster string
		cluster, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
		units = append(units, cluster)
	}
	return units
}

// Count returns the number of character units in s.
func Count(s string) int {
	return uniseg.GraphemeClusterCount(s)
}

// IsSpace reports whether unit is ASCII whitespace: space, \t, \n, \v,
// \f, \r or the single unit "\r\n". Unicode spaces such as U+00A0 and
// U+3000 are ordinary characters.
func IsSpace(unit string) bool {
	if unit == "" {
		return false
	}
	for i := 0; i < len(unit); i++ {
		if !strings.ContainsRune(asciiSpace, rune(unit[i])) {
			return false
		}
	}
	return true
}
