// File: split.go
// Title: Split and Partition Operations
// Description: Maps Ruby's split, partition and rpartition call shapes onto
//              scanner separators. String arguments to Split are patterns;
//              the String and Regexp variants make the choice explicit.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-02
// Modified: 2026-10-02
//
// Change History:
// - 2026-10-02 v0.1.0: Initial implementation

package stringx

import (
	"regexp"

	rberrors "github.com/msto63/rbstr/foundation/core/errors"
	"github.com/msto63/rbstr/foundation/text/scanner"
)

const whitespaceSeparator = " "

// Split splits s by an optional pattern. Without a pattern, or with a single
// space, s is split on whitespace runs with leading and trailing whitespace
// ignored. The empty pattern splits s into characters. Any other pattern is
// compiled as a regular expression. Trailing empty strings are removed.
func Split(s string, pattern ...string) ([]string, error) {
	sep, err := ResolveSplitPattern(pattern...)
	if err != nil {
		return nil, err
	}
	return scanner.Split(s, sep), nil
}

// ResolveSplitPattern classifies the optional split argument into a
// separator.
func ResolveSplitPattern(pattern ...string) (scanner.Separator, error) {
	switch {
	case len(pattern) == 0:
		return scanner.Whitespace(), nil
	case len(pattern) > 1:
		return scanner.Separator{}, rberrors.InvalidInput(rberrors.ModuleStringx, "Split", pattern, "at most one pattern")
	case pattern[0] == whitespaceSeparator:
		return scanner.Whitespace(), nil
	case pattern[0] == "":
		return scanner.Literal(""), nil
	default:
		return scanner.Pattern(pattern[0])
	}
}

// SplitString splits s by the literal separator sep. A single space selects
// whitespace mode and the empty separator splits into characters.
func SplitString(s, sep string) []string {
	if sep == whitespaceSeparator {
		return scanner.Split(s, scanner.Whitespace())
	}
	return scanner.Split(s, scanner.Literal(sep))
}

// SplitRegexp splits s by re. A nil re selects whitespace mode.
func SplitRegexp(s string, re *regexp.Regexp) []string {
	return scanner.Split(s, scanner.FromRegexp(re))
}

// Fields splits s on whitespace runs, the same as Split without a pattern.
func Fields(s string) []string {
	return scanner.Split(s, scanner.Whitespace())
}

// Partition searches s for the literal sep and returns the text before it,
// the match and the text after it. If sep is not found it returns s and two
// empty strings.
func Partition(s, sep string) (before, match, after string) {
	return scanner.Partition(s, scanner.Literal(sep))
}

// RPartition is like Partition but uses the last occurrence of sep. If sep
// is not found it returns two empty strings and s.
func RPartition(s, sep string) (before, match, after string) {
	return scanner.RPartition(s, scanner.Literal(sep))
}

// PartitionRegexp partitions s around the first match of re.
func PartitionRegexp(s string, re *regexp.Regexp) (before, match, after string) {
	if re == nil {
		return s, "", ""
	}
	return scanner.Partition(s, scanner.FromRegexp(re))
}

// RPartitionRegexp partitions s around the last match of re.
func RPartitionRegexp(s string, re *regexp.Regexp) (before, match, after string) {
	if re == nil {
		return "", "", s
	}
	return scanner.RPartition(s, scanner.FromRegexp(re))
}

// PartitionPattern compiles expr and partitions s around its first match.
func PartitionPattern(s, expr string) (before, match, after string, err error) {
	sep, err := scanner.Pattern(expr)
	if err != nil {
		return "", "", "", err
	}
	before, match, after = scanner.Partition(s, sep)
	return before, match, after, nil
}

// RPartitionPattern compiles expr and partitions s around its last match.
func RPartitionPattern(s, expr string) (before, match, after string, err error) {
	sep, err := scanner.Pattern(expr)
	if err != nil {
		return "", "", "", err
	}
	before, match, after = scanner.RPartition(s, sep)
	return before, match, after, nil
}
