// File: justify.go
// Title: Justification Functions
// Description: LJust, RJust and Center pad a string to a width measured in
//              characters, cycling through a pad string. ASCII input takes
//              a byte level fast path.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-12
// Modified: 2026-10-12
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation

package stringx

import (
	"strings"

	"github.com/msto63/rbstr/foundation/text/grapheme"
)

const defaultPad = " "

// LJust returns s left justified in a string of width characters, padded
// on the right with pad (default a space). If width is not greater than the
// length of s, s is returned unchanged.
func LJust(s string, width int, pad ...string) string {
	n := Length(s)
	if width <= n {
		return s
	}
	return s + padding(width-n, padString(pad))
}

// RJust returns s right justified in a string of width characters.
func RJust(s string, width int, pad ...string) string {
	n := Length(s)
	if width <= n {
		return s
	}
	return padding(width-n, padString(pad)) + s
}

// Center returns s centered in a string of width characters. When the
// padding cannot be split evenly the extra character goes to the right.
func Center(s string, width int, pad ...string) string {
	n := Length(s)
	if width <= n {
		return s
	}
	p := padString(pad)
	total := width - n
	left := total / 2
	return padding(left, p) + s + padding(total-left, p)
}

// padString returns the pad argument; an empty pad falls back to a space.
func padString(pad []string) string {
	if len(pad) == 0 || pad[0] == "" {
		return defaultPad
	}
	return pad[0]
}

// padding returns count characters taken cyclically from pad, starting at
// its first character.
func padding(count int, pad string) string {
	if count <= 0 {
		return ""
	}

	// Fast path for ASCII pads; "\r\n" is a single character
	if isASCIIString(pad) && !strings.Contains(pad, "\r\n") {
		result := make([]byte, count)
		for i := range result {
			result[i] = pad[i%len(pad)]
		}
		return string(result)
	}

	units := grapheme.Split(pad)
	var builder strings.Builder
	builder.Grow(count * len(pad) / len(units))
	for i := 0; i < count; i++ {
		builder.WriteString(units[i%len(units)])
	}
	return builder.String()
}

// isASCIIString checks if a string contains only ASCII characters
func isASCIIString(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 128 {
			return false
		}
	}
	return true
}
