// File: selector.go
// Title: Selector Parser and Set
// Description: Parses one selector string into a Set of literal units and
//              ranges with an optional negation.
// Author: msto63
// Version: v0.1.0
// Created: 2026-09-30
// Modified: 2026-10-04
//
// Change History:
// - 2026-09-30 v0.1.0: Initial implementation
// - 2026-10-04 v0.1.1: Canonical String form for log output

package selector

import (
	"sort"
	"strings"

	"github.com/msto63/rbstr/foundation/text/grapheme"
)

const (
	negationMarker = "^"
	escapeMarker   = `\`
	rangeOperator  = "-"
)

// Matcher is anything that can test a character unit for membership.
type Matcher interface {
	Contains(unit string) bool
}

// Range is an inclusive range of character units.
type Range struct {
	Low, High string
}

// Contains reports whether unit lies within the range.
func (r Range) Contains(unit string) bool {
	return r.Low <= unit && unit <= r.High
}

// Set is a parsed selector. The zero value is the empty set.
type Set struct {
	members map[string]struct{}
	ranges  []Range
	negated bool
}

// token is one unit of the selector after escape processing.
type token struct {
	unit    string
	escaped bool
}

func (t token) isRangeOperator() bool {
	return !t.escaped && t.unit == rangeOperator
}

// Parse parses a selector. It accepts every string.
func Parse(selector string) Set {
	units := grapheme.Split(selector)
	set := Set{members: make(map[string]struct{})}

	if len(units) > 1 && units[0] == negationMarker {
		set.negated = true
		units = units[1:]
	}

	tokens := tokenize(units)
	for i := 0; i < len(tokens); {
		if i+2 < len(tokens) && tokens[i+1].isRangeOperator() {
			set.ranges = append(set.ranges, Range{Low: tokens[i].unit, High: tokens[i+2].unit})
			i += 3
			continue
		}
		set.members[tokens[i].unit] = struct{}{}
		i++
	}

	return set
}

// tokenize resolves escapes. A trailing lone backslash is a literal backslash.
func tokenize(units []string) []token {
	tokens := make([]token, 0, len(units))
	for i := 0; i < len(units); i++ {
		if units[i] == escapeMarker && i+1 < len(units) {
			tokens = append(tokens, token{unit: units[i+1], escaped: true})
			i++
			continue
		}
		tokens = append(tokens, token{unit: units[i]})
	}
	return tokens
}

// Contains reports whether unit is selected.
func (s Set) Contains(unit string) bool {
	_, ok := s.members[unit]
	if !ok {
		for _, r := range s.ranges {
			if r.Contains(unit) {
				ok = true
				break
			}
		}
	}
	return ok != s.negated
}

// Negated reports whether the selector started with a negation marker.
func (s Set) Negated() bool {
	return s.negated
}

// IsEmpty reports whether the set has no members and no ranges, ignoring
// negation.
func (s Set) IsEmpty() bool {
	return len(s.members) == 0 && len(s.ranges) == 0
}

// String renders the set in selector syntax with members sorted. Parsing
// the result yields an equivalent set.
func (s Set) String() string {
	var b strings.Builder
	if s.negated {
		b.WriteString(negationMarker)
	}

	members := make([]string, 0, len(s.members))
	for m := range s.members {
		members = append(members, m)
	}
	sort.Strings(members)
	for _, m := range members {
		writeUnit(&b, m)
	}

	for _, r := range s.ranges {
		writeUnit(&b, r.Low)
		b.WriteString(rangeOperator)
		writeUnit(&b, r.High)
	}

	out := b.String()
	// A leading caret would read as negation
	if !s.negated && strings.HasPrefix(out, negationMarker) {
		out = escapeMarker + out
	}
	return out
}

func writeUnit(b *strings.Builder, unit string) {
	if unit == escapeMarker || unit == rangeOperator {
		b.WriteString(escapeMarker)
	}
	b.WriteString(unit)
}
