// Package stringx provides Ruby-style string operations for Go.
//
// Package: stringx
// Title: Ruby-style String Operations
// Description: Count, delete, split, partition and justify strings the way
//              Ruby's String methods do, with every operation working on
//              user-perceived characters (extended grapheme clusters)
//              instead of bytes or code points.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-02
// Modified: 2026-10-12
//
// Change History:
// - 2026-10-02 v0.1.0: Selector and separator operations
// - 2026-10-12 v0.2.0: Chomp, chop, strip family and justification
//
// Overview
//
// The package is a thin façade over two engines:
//
//   - foundation/text/selector parses character selectors such as "a-z",
//     "^aeiou" or `\-` used by Count and Delete
//   - foundation/text/scanner finds separator matches used by Split,
//     Partition and RPartition
//
// Everything else is direct composition over character units.
//
// Selectors
//
//	stringx.Count("hello world", "lo")      // 5
//	stringx.Count("hello world", "lo", "o") // 2, intersection of both
//	stringx.Delete("hello world", "lo")     // "he wrd"
//	stringx.Delete("hello", "^l")           // "ll"
//
// Splitting
//
// Split interprets its argument like Ruby's String#split with a pattern:
// no argument or a single space splits on whitespace runs, the empty string
// splits into characters, anything else is a regular expression.
//
//	stringx.Split(" now's  the time")   // ["now's" "the" "time"]
//	stringx.Split("hello", "l+")        // ["he" "o"]
//	stringx.SplitString("1,2,,3,4,,", ",") // ["1" "2" "" "3" "4"]
//
// Partitioning
//
//	stringx.Partition("hello", "l")  // "he", "l", "lo"
//	stringx.RPartition("hello", "l") // "hel", "l", "o"
//	stringx.Partition("hello", "le") // "hello", "", ""
//
// Error Handling
//
// Only malformed regular expressions fail. They are reported as errors with
// code INVALID_PATTERN (see scanner.IsInvalidPattern). A missing match is a
// normal result, never an error.
//
// Thread Safety
//
// All functions are pure and safe for concurrent use.
package stringx
