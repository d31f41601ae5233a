// File: group.go
// Title: Selector Intersection
// Description: Group combines several selector sets; a unit belongs to the
//              group when every member set contains it.
// Author: msto63
// Version: v0.1.0
// Created: 2026-09-30
// Modified: 2026-09-30
//
// Change History:
// - 2026-09-30 v0.1.0: Initial implementation

package selector

import "strings"

// Group is the intersection of its sets.
type Group []Set

// Intersect builds a group from already parsed sets.
func Intersect(sets ...Set) Group {
	group := make(Group, len(sets))
	copy(group, sets)
	return group
}

// ParseGroup parses every selector and intersects the results.
func ParseGroup(selectors ...string) Group {
	group := make(Group, 0, len(selectors))
	for _, s := range selectors {
		group = append(group, Parse(s))
	}
	return group
}

// Contains reports whether every set in the group contains unit. An empty
// group contains nothing.
func (g Group) Contains(unit string) bool {
	if len(g) == 0 {
		return false
	}
	for _, set := range g {
		if !set.Contains(unit) {
			return false
		}
	}
	return true
}

func (g Group) String() string {
	parts := make([]string, len(g))
	for i, set := range g {
		parts[i] = set.String()
	}
	return strings.Join(parts, " & ")
}
