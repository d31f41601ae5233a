// File: severity.go
// Title: Error Severity Levels
// Description: Severity classification for errors, used by the logger to
//              choose the level an error is reported at.
// Author: msto63
// Version: v0.1.0
// Created: 2026-09-28
// Modified: 2026-09-28
//
// Change History:
// - 2026-09-28 v0.1.0: Initial severity levels

package error

// Severity represents how serious an error is.
type Severity int

const (
	// SeverityLow indicates a problem with caller input
	SeverityLow Severity = iota

	// SeverityMedium indicates a failed operation that can be retried with other input
	SeverityMedium

	// SeverityHigh indicates an environment problem such as unreadable configuration
	SeverityHigh

	// SeverityCritical indicates a bug
	SeverityCritical
)

func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// ShouldAlert reports whether the severity warrants operator attention.
func (s Severity) ShouldAlert() bool {
	return s >= SeverityHigh
}

// GetSeverityFromCode returns the default severity for a code.
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal:
		return SeverityCritical
	case CodeConfigError, CodeInvalidConfig:
		return SeverityHigh
	case CodeInvalidInput, CodeInvalidPattern, CodeInvalidFormat, CodeNotFound:
		return SeverityLow
	default:
		return SeverityMedium
	}
}
