// File: scanner.go
// Title: Match Scanning
// Description: Finds separator matches as character index spans. Byte
//              level matches from strings.Index and regexp are mapped onto
//              grapheme boundaries; a match starting or ending inside a unit
//              is dropped and not retried at the next boundary.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-01
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-01 v0.1.0: Initial implementation
// - 2026-10-18 v0.1.1: Text based first and last match helpers

package scanner

import (
	"regexp"
	"strings"

	"github.com/msto63/rbstr/foundation/text/grapheme"
)

// Span is a half-open range [Start, End) of character indices.
type Span struct {
	Start, End int
}

// Len returns the number of units covered.
func (s Span) Len() int {
	return s.End - s.Start
}

// IsEmpty reports whether the span is a zero length match.
func (s Span) IsEmpty() bool {
	return s.Start == s.End
}

// FindAll returns every match of sep in subject, left to right.
func FindAll(subject string, sep Separator) []Span {
	return findAll(grapheme.New(subject), sep)
}

// FindFirst returns the leftmost match.
func FindFirst(subject string, sep Separator) (Span, bool) {
	return firstMatch(grapheme.New(subject), sep)
}

// FindLast returns the last match FindAll would report.
func FindLast(subject string, sep Separator) (Span, bool) {
	return lastMatch(grapheme.New(subject), sep)
}

func firstMatch(text grapheme.Text, sep Separator) (Span, bool) {
	spans := findAll(text, sep)
	if len(spans) == 0 {
		return Span{}, false
	}
	return spans[0], true
}

func lastMatch(text grapheme.Text, sep Separator) (Span, bool) {
	spans := findAll(text, sep)
	if len(spans) == 0 {
		return Span{}, false
	}
	return spans[len(spans)-1], true
}

func findAll(text grapheme.Text, sep Separator) []Span {
	switch sep.kind {
	case KindPattern:
		return patternMatches(text, sep.re)
	case KindLiteral:
		if sep.literal == "" {
			return boundaries(text)
		}
		return literalMatches(text, sep.literal)
	default:
		return whitespaceRuns(text)
	}
}

// leadingSpace returns the index of the first non-whitespace unit.
func leadingSpace(text grapheme.Text) int {
	i := 0
	for i < text.Len() && text.IsSpaceAt(i) {
		i++
	}
	return i
}

func whitespaceRuns(text grapheme.Text) []Span {
	var spans []Span
	n := text.Len()
	for i := leadingSpace(text); i < n; {
		if !text.IsSpaceAt(i) {
			i++
			continue
		}
		j := i + 1
		for j < n && text.IsSpaceAt(j) {
			j++
		}
		spans = append(spans, Span{Start: i, End: j})
		i = j
	}
	return spans
}

func boundaries(text grapheme.Text) []Span {
	spans := make([]Span, 0, text.Len()+1)
	for i := 0; i <= text.Len(); i++ {
		spans = append(spans, Span{Start: i, End: i})
	}
	return spans
}

func literalMatches(text grapheme.Text, literal string) []Span {
	var spans []Span
	s := text.String()
	for pos := 0; pos+len(literal) <= len(s); {
		idx := strings.Index(s[pos:], literal)
		if idx < 0 {
			break
		}
		start := pos + idx
		end := start + len(literal)
		if span, ok := toSpan(text, start, end); ok {
			spans = append(spans, span)
			pos = end
			continue
		}
		pos = start + 1
	}
	return spans
}

// patternMatches relies on regexp's own iteration, which advances past a
// zero length match by one code point and rejects an empty match directly
// after a previous match.
func patternMatches(text grapheme.Text, re *regexp.Regexp) []Span {
	locs := re.FindAllStringIndex(text.String(), -1)
	spans := make([]Span, 0, len(locs))
	for _, loc := range locs {
		if span, ok := toSpan(text, loc[0], loc[1]); ok {
			spans = append(spans, span)
		}
	}
	return spans
}

func toSpan(text grapheme.Text, start, end int) (Span, bool) {
	i, ok := text.Index(start)
	if !ok {
		return Span{}, false
	}
	j, ok := text.Index(end)
	if !ok {
		return Span{}, false
	}
	return Span{Start: i, End: j}, true
}
