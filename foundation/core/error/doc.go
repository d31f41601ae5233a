// Package error provides structured error handling for the rbstr packages.
//
// Package: error
// Title: rbstr Error Handling
// Description: Structured errors with codes, severity levels, details and
//              cause chains. All rbstr packages report failures through this
//              type so callers and the CLI can inspect them uniformly.
// Author: msto63
// Version: v0.1.0
// Created: 2026-09-28
// Modified: 2026-09-28
//
// Change History:
// - 2026-09-28 v0.1.0: Initial implementation
//
// Usage:
//
//	import rberr "github.com/msto63/rbstr/foundation/core/error"
//
//	err := rberr.New("invalid pattern").
//		WithCode(rberr.CodeInvalidPattern).
//		WithDetail("pattern", "[a-").
//		WithOperation("scanner.Pattern")
//
//	if rberr.HasCode(err, rberr.CodeInvalidPattern) {
//		// ...
//	}
//
// Errors created by this package implement Unwrap, so errors.Is and
// errors.As from the standard library work across wrapped chains.
package error
