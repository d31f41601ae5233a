// Package scanner locates separator matches in a string and implements
// split, partition and rpartition on top of them.
//
// Package: scanner
// Title: Pattern Scanner
// Description: A Separator is resolved once, at construction, into one of
//              three kinds: whitespace runs, literal text, or a compiled
//              regular expression. FindAll, FindFirst and FindLast return
//              match spans in character units; Split, Partition and
//              RPartition cut the subject at those spans.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-01
// Modified: 2026-10-09
//
// Change History:
// - 2026-10-01 v0.1.0: Initial implementation
// - 2026-10-09 v0.1.1: Invalid patterns reported through foundation errors
//
// Matching rules
//
//   - Whitespace: leading whitespace is skipped, then every maximal run of
//     whitespace units is one match.
//   - Literal(""): every character boundary, including both ends, is a
//     zero length match.
//   - Literal and Pattern: leftmost, non overlapping matches. Matches that
//     would split a character unit are discarded.
//
// Split keeps interior empty segments and drops trailing ones. A zero length
// match at the start of the subject never produces a leading empty segment.
//
//	scanner.Split("1,2,,3,4,,", scanner.Literal(","))
//	// ["1" "2" "" "3" "4"]
//
//	before, match, after := scanner.Partition("hello", scanner.Literal("l"))
//	// "he" "l" "lo"
package scanner
