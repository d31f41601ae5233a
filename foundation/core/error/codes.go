// File: codes.go
// Title: Error Codes
// Description: Defines the error codes used across rbstr together with their
//              categories. Codes are stable strings suitable for JSON output.
// Author: msto63
// Version: v0.1.0
// Created: 2026-09-28
// Modified: 2026-09-28
//
// Change History:
// - 2026-09-28 v0.1.0: Initial code set

package error

// Code is a machine readable error classification.
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Text processing
	CodeInvalidPattern Code = "INVALID_PATTERN"
	CodeInvalidFormat  Code = "INVALID_FORMAT"

	// Configuration
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeInvalidConfig Code = "INVALID_CONFIG"
)

func (c Code) String() string {
	return string(c)
}

// IsValid reports whether c is one of the known codes.
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput,
		CodeInvalidPattern, CodeInvalidFormat,
		CodeConfigError, CodeInvalidConfig:
		return true
	default:
		return false
	}
}

// Category groups codes for reporting.
func (c Code) Category() string {
	switch c {
	case CodeInvalidPattern, CodeInvalidFormat:
		return "text"
	case CodeConfigError, CodeInvalidConfig:
		return "configuration"
	case CodeInvalidInput:
		return "validation"
	default:
		return "generic"
	}
}

// ExitCode maps a code to a process exit status for command line tools.
func (c Code) ExitCode() int {
	switch c {
	case CodeInvalidInput, CodeInvalidPattern, CodeInvalidFormat:
		return 2
	case CodeConfigError, CodeInvalidConfig, CodeNotFound:
		return 3
	default:
		return 1
	}
}
