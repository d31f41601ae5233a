// Package errors provides the standard error constructors used by all rbstr
// packages.
//
// Package: errors
// Title: Standard Error Constructors
// Description: A fluent ErrorBuilder plus helpers for the handful of error
//              conditions rbstr can report: malformed patterns, invalid
//              caller input, unsupported formats and configuration failures.
//              Every constructor records the module and operation as details
//              so log output can be filtered by origin.
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
//	re, err := regexp.Compile(expr)
//	if err != nil {
//		return errors.InvalidPattern(errors.ModuleScanner, "Pattern", expr, err)
//	}
package errors
