// File: standards.go
// Title: Standard Error Constructors
// Description: Module names and constructors for the error conditions that
//              rbstr reports, plus helpers to read module information back
//              out of an error.
// Author: msto63
// Version: v0.1.0
// Created: 2026-09-28
// Modified: 2026-09-28
//
// Change History:
// - 2026-09-28 v0.1.0: Initial implementation

package errors

import (
	"fmt"

	rberr "github.com/msto63/rbstr/foundation/core/error"
)

// Module names recorded in error details
const (
	ModuleScanner  = "scanner"
	ModuleSelector = "selector"
	ModuleStringx  = "stringx"
	ModuleConfig   = "config"
	ModuleLog      = "log"
	ModuleCLI      = "cli"
)

// InvalidPattern reports a regular expression that failed to compile.
func InvalidPattern(module, operation, pattern string, cause error) *rberr.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("invalid pattern %q", pattern).
		Code(rberr.CodeInvalidPattern).
		Cause(cause).
		Detail("pattern", pattern).
		Severity(rberr.SeverityLow).
		Build()
}

// InvalidInput creates a standardized invalid input error
func InvalidInput(module, operation string, input interface{}, expected string) *rberr.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Message(fmt.Sprintf("invalid input for %s.%s: expected %s", module, operation, expected)).
		Code(rberr.CodeInvalidInput).
		Detail("input", input).
		Detail("expected", expected).
		Severity(rberr.SeverityLow).
		Build()
}

// InvalidFormat creates a standardized format error
func InvalidFormat(module string, input interface{}, expectedFormat string) *rberr.Error {
	return NewErrorBuilder(module).
		Message(fmt.Sprintf("invalid format in %s: %v", module, input)).
		Code(rberr.CodeInvalidFormat).
		Detail("input", input).
		Detail("expected_format", expectedFormat).
		Severity(rberr.SeverityLow).
		Build()
}

// ConfigFailure wraps a configuration loading or parsing problem.
func ConfigFailure(operation, path string, cause error) *rberr.Error {
	b := NewErrorBuilder(ModuleConfig).
		Operation(operation).
		Code(rberr.CodeConfigError).
		Cause(cause).
		Severity(rberr.SeverityHigh)
	if path != "" {
		b = b.Messagef("configuration %s failed for %s", operation, path).Detail("path", path)
	}
	return b.Build()
}

// ExtractModule returns the module recorded in an rbstr error, or "".
func ExtractModule(err error) string {
	if rbErr, ok := rberr.As(err); ok {
		if module, ok := rbErr.Details()["module"].(string); ok {
			return module
		}
	}
	return ""
}

// IsModuleError reports whether err was raised by module.
func IsModuleError(err error, module string) bool {
	return ExtractModule(err) == module
}
