// File: split.go
// Title: Split, Partition and RPartition
// Description: Cuts a subject at separator matches. Split drops trailing
//              empty segments and keeps interior ones; Partition and
//              RPartition return the text around the first or last match.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-01
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-01 v0.1.0: Initial implementation
// - 2026-10-18 v0.1.1: Partition and RPartition share the match helpers

package scanner

import (
	"github.com/msto63/rbstr/foundation/text/grapheme"
)

// Split cuts subject at every match of sep. The result is never nil; an
// empty subject or one made only of separators gives an empty slice.
func Split(subject string, sep Separator) []string {
	text := grapheme.New(subject)

	start := 0
	if sep.kind == KindWhitespace {
		start = leadingSpace(text)
	}

	parts := make([]string, 0)
	for _, span := range findAll(text, sep) {
		// Empty match at the very start does not cut
		if span.End == 0 {
			continue
		}
		parts = append(parts, text.Slice(start, span.Start))
		start = span.End
	}
	parts = append(parts, text.Slice(start, text.Len()))

	end := len(parts)
	for end > 0 && parts[end-1] == "" {
		end--
	}
	return parts[:end]
}

// Partition splits subject around the first match of sep. Without a match
// it returns (subject, "", "").
func Partition(subject string, sep Separator) (before, match, after string) {
	text := grapheme.New(subject)
	span, ok := firstMatch(text, sep)
	if !ok {
		return subject, "", ""
	}
	return cut(text, span)
}

// RPartition splits subject around the last match of sep. Without a match
// it returns ("", "", subject).
func RPartition(subject string, sep Separator) (before, match, after string) {
	text := grapheme.New(subject)
	span, ok := lastMatch(text, sep)
	if !ok {
		return "", "", subject
	}
	return cut(text, span)
}

func cut(text grapheme.Text, span Span) (before, match, after string) {
	return text.Slice(0, span.Start), text.Slice(span.Start, span.End), text.Slice(span.End, text.Len())
}
