// Package grapheme segments strings into character units.
//
// Package: grapheme
// Title: Character Unit Iteration
// Description: A character unit is an extended grapheme cluster as defined
//              by Unicode Standard Annex #29: what a reader perceives as one
//              character, even when it is made of several code points. All
//              rbstr scanning works on these units so that a combining mark
//              is never separated from its base character.
// Author: msto63
// Version: v0.1.0
// Created: 2026-09-29
// Modified: 2026-09-29
//
// Change History:
// - 2026-09-29 v0.1.0: Initial implementation on top of rivo/uniseg
//
// Text pairs a string with the byte offset of every unit boundary, which
// makes conversions between character indices and byte offsets constant
// time (index to offset) or logarithmic (offset to index).
//
//	t := grapheme.New("éte")
//	t.Len()      // 3
//	t.At(0)      // "é"
//	t.Slice(1, 3) // "te"
package grapheme
