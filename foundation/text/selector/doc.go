// Package selector parses character selector strings into membership sets.
//
// Package: selector
// Title: Character Selectors
// Description: A selector is a compact character class written as a string,
//              in the style of Ruby's String#count and String#delete
//              arguments. Several selectors combine by intersection.
// Author: msto63
// Version: v0.1.0
// Created: 2026-09-30
// Modified: 2026-10-04
//
// Change History:
// - 2026-09-30 v0.1.0: Initial implementation
//
// Grammar
//
// Selectors are scanned left to right over character units:
//
//	^abc    negated set: every unit except a, b and c (only when ^ is first
//	        and followed by at least one more unit)
//	a-e     inclusive range from a to e
//	\x      the unit x taken literally; never a range operator or negation
//	x       any other unit is a literal member
//
// A hyphen that is first, last or escaped is literal. A bare "^" is the
// literal caret. The empty selector is the empty set and matches nothing.
// A range whose low end sorts after its high end contains nothing.
//
// Units are ordered by comparing their UTF-8 encodings, which is code point
// order for single code point units.
//
// Usage
//
//	vowels := selector.Parse("aeiou")
//	vowels.Contains("e") // true
//
//	g := selector.ParseGroup("a-z", "^aeiou") // lower case consonants
//	g.Contains("k") // true
//	g.Contains("e") // false
package selector
