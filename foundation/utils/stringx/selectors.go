// File: selectors.go
// Title: Selector Based Operations
// Description: Count and Delete, driven by the intersection of one or more
//              character selectors.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-02
// Modified: 2026-10-02
//
// Change History:
// - 2026-10-02 v0.1.0: Initial implementation

package stringx

import (
	"strings"

	"github.com/msto63/rbstr/foundation/text/grapheme"
	"github.com/msto63/rbstr/foundation/text/selector"
)

// Count returns how many characters of s are selected by every selector.
// An empty selector selects nothing.
func Count(s string, sel string, more ...string) int {
	group := selectorGroup(sel, more)
	count := 0
	for _, unit := range grapheme.Split(s) {
		if group.Contains(unit) {
			count++
		}
	}
	return count
}

// Delete returns s without the characters selected by every selector.
func Delete(s string, sel string, more ...string) string {
	group := selectorGroup(sel, more)
	var b strings.Builder
	b.Grow(len(s))
	for _, unit := range grapheme.Split(s) {
		if !group.Contains(unit) {
			b.WriteString(unit)
		}
	}
	return b.String()
}

func selectorGroup(sel string, more []string) selector.Group {
	return selector.ParseGroup(append([]string{sel}, more...)...)
}
