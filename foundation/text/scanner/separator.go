// File: separator.go
// Title: Separator Kinds
// Description: Separator is the tagged form of a split or partition
//              argument: whitespace mode, literal text or a compiled
//              regular expression.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-01
// Modified: 2026-10-09
//
// Change History:
// - 2026-10-01 v0.1.0: Initial implementation
// - 2026-10-09 v0.1.1: InvalidPattern errors

package scanner

import (
	"fmt"
	"regexp"

	rberr "github.com/msto63/rbstr/foundation/core/error"
	rberrors "github.com/msto63/rbstr/foundation/core/errors"
)

// Kind identifies how a Separator matches.
type Kind int

const (
	// KindWhitespace matches runs of whitespace after skipping leading whitespace
	KindWhitespace Kind = iota

	// KindLiteral matches literal text; empty text matches every boundary
	KindLiteral

	// KindPattern matches a regular expression
	KindPattern
)

func (k Kind) String() string {
	switch k {
	case KindWhitespace:
		return "whitespace"
	case KindLiteral:
		return "literal"
	case KindPattern:
		return "pattern"
	default:
		return "unknown"
	}
}

// Separator is a resolved separator. The zero value is whitespace mode.
type Separator struct {
	kind    Kind
	literal string
	re      *regexp.Regexp
}

// Whitespace returns the whitespace run separator.
func Whitespace() Separator {
	return Separator{kind: KindWhitespace}
}

// Literal returns a separator matching sep exactly.
func Literal(sep string) Separator {
	return Separator{kind: KindLiteral, literal: sep}
}

// Pattern compiles expr with RE2 syntax. A malformed expression yields an
// error with code INVALID_PATTERN.
func Pattern(expr string) (Separator, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return Separator{}, rberrors.InvalidPattern(rberrors.ModuleScanner, "Pattern", expr, err)
	}
	return Separator{kind: KindPattern, re: re}, nil
}

// MustPattern is like Pattern but panics on a malformed expression.
func MustPattern(expr string) Separator {
	sep, err := Pattern(expr)
	if err != nil {
		panic(fmt.Sprintf("scanner: %v", err))
	}
	return sep
}

// FromRegexp wraps a compiled expression. A nil expression selects
// whitespace mode, the same as calling split without an argument.
func FromRegexp(re *regexp.Regexp) Separator {
	if re == nil {
		return Whitespace()
	}
	return Separator{kind: KindPattern, re: re}
}

// Kind returns the separator kind.
func (s Separator) Kind() Kind {
	return s.kind
}

func (s Separator) String() string {
	switch s.kind {
	case KindLiteral:
		return fmt.Sprintf("literal(%q)", s.literal)
	case KindPattern:
		return fmt.Sprintf("pattern(/%s/)", s.re.String())
	default:
		return "whitespace"
	}
}

// IsInvalidPattern reports whether err was caused by a malformed pattern.
func IsInvalidPattern(err error) bool {
	return rberr.HasCode(err, rberr.CodeInvalidPattern)
}
