// File: stringx.go
// Title: Core String Utility Functions
// Description: Character aware helpers mirroring Ruby's simpler String
//              methods: length, concatenation, reversal, chomp, chop and the
//              strip family.
// Author: msto63
// Version: v0.2.1
// Created: 2026-10-02
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-02 v0.1.0: Length, IsBlank, Reverse
// - 2026-10-12 v0.2.0: Concat, Prepend, Chomp, Chop, Strip family
// - 2026-10-18 v0.2.1: IsBlank shares the ASCII whitespace definition

package stringx

import (
	"strings"

	"github.com/msto63/rbstr/foundation/text/grapheme"
)

// Length returns the number of characters (grapheme clusters) in s.
func Length(s string) int {
	return grapheme.Count(s)
}

// IsBlank returns true if the string is empty or contains only whitespace,
// using the same ASCII whitespace as Strip.
func IsBlank(s string) bool {
	return s == "" || grapheme.IsSpace(s)
}

// Concat returns s followed by others.
func Concat(s string, others ...string) string {
	if len(others) == 0 {
		return s
	}
	return s + strings.Join(others, "")
}

// Prepend returns others followed by s. Callers holding s in a variable
// assign the result back to it.
func Prepend(s string, others ...string) string {
	if len(others) == 0 {
		return s
	}
	return strings.Join(others, "") + s
}

// Reverse reverses the characters of s. Combining marks stay attached to
// their base character.
func Reverse(s string) string {
	units := grapheme.Split(s)
	for i, j := 0, len(units)-1; i < j; i, j = i+1, j-1 {
		units[i], units[j] = units[j], units[i]
	}
	return strings.Join(units, "")
}

// Chomp removes a record separator from the end of s.
//
// Without a suffix argument all trailing whitespace is removed. With the
// empty suffix every trailing "\n" or "\r\n" is removed, but not a lone
// "\r". Otherwise the suffix is removed once if s ends with it.
func Chomp(s string, suffix ...string) string {
	if len(suffix) == 0 {
		return RStrip(s)
	}

	if suffix[0] == "" {
		for {
			switch {
			case strings.HasSuffix(s, "\r\n"):
				s = s[:len(s)-2]
			case strings.HasSuffix(s, "\n"):
				s = s[:len(s)-1]
			default:
				return s
			}
		}
	}

	if !strings.HasSuffix(s, suffix[0]) {
		return s
	}
	cut := len(s) - len(suffix[0])
	// Never cut a character in half
	if _, ok := grapheme.New(s).Index(cut); !ok {
		return s
	}
	return s[:cut]
}

// Chop removes the last character of s. "\r\n" counts as one character.
func Chop(s string) string {
	text := grapheme.New(s)
	if text.Len() == 0 {
		return ""
	}
	return text.Slice(0, text.Len()-1)
}

// Strip removes leading and trailing whitespace.
func Strip(s string) string {
	return RStrip(LStrip(s))
}

// LStrip removes leading whitespace.
func LStrip(s string) string {
	text := grapheme.New(s)
	start := 0
	for start < text.Len() && text.IsSpaceAt(start) {
		start++
	}
	return text.Slice(start, text.Len())
}

// RStrip removes trailing whitespace.
func RStrip(s string) string {
	text := grapheme.New(s)
	end := text.Len()
	for end > 0 && text.IsSpaceAt(end-1) {
		end--
	}
	return text.Slice(0, end)
}
