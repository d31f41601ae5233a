// File: codes_test.go
// Title: Error Code and Severity Tests
// Description: Tests code validation, categories, exit codes and the
//              default severity mapping.
// Author: msto63
// Version: v0.1.0
// Created: 2026-09-28
// Modified: 2026-09-28
//
// Change History:
// - 2026-09-28 v0.1.0: Initial tests

package error

import "testing"

func TestCodeProperties(t *testing.T) {
	tests := []struct {
		code     Code
		valid    bool
		category string
		exit     int
		severity Severity
	}{
		{CodeUnknown, true, "generic", 1, SeverityMedium},
		{CodeInternal, true, "generic", 1, SeverityCritical},
		{CodeNotFound, true, "generic", 3, SeverityLow},
		{CodeInvalidInput, true, "validation", 2, SeverityLow},
		{CodeInvalidPattern, true, "text", 2, SeverityLow},
		{CodeInvalidFormat, true, "text", 2, SeverityLow},
		{CodeConfigError, true, "configuration", 3, SeverityHigh},
		{CodeInvalidConfig, true, "configuration", 3, SeverityHigh},
		{Code("SOMETHING_ELSE"), false, "generic", 1, SeverityMedium},
	}

	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			if got := tt.code.IsValid(); got != tt.valid {
				t.Errorf("IsValid() = %v, want %v", got, tt.valid)
			}
			if got := tt.code.Category(); got != tt.category {
				t.Errorf("Category() = %q, want %q", got, tt.category)
			}
			if got := tt.code.ExitCode(); got != tt.exit {
				t.Errorf("ExitCode() = %d, want %d", got, tt.exit)
			}
			if got := GetSeverityFromCode(tt.code); got != tt.severity {
				t.Errorf("GetSeverityFromCode() = %v, want %v", got, tt.severity)
			}
		})
	}
}

func TestSeverity(t *testing.T) {
	tests := []struct {
		severity Severity
		name     string
		alert    bool
	}{
		{SeverityLow, "low", false},
		{SeverityMedium, "medium", false},
		{SeverityHigh, "high", true},
		{SeverityCritical, "critical", true},
		{Severity(42), "unknown", true},
	}

	for _, tt := range tests {
		if got := tt.severity.String(); got != tt.name {
			t.Errorf("Severity(%d).String() = %q, want %q", int(tt.severity), got, tt.name)
		}
		if got := tt.severity.ShouldAlert(); got != tt.alert {
			t.Errorf("Severity(%d).ShouldAlert() = %v, want %v", int(tt.severity), got, tt.alert)
		}
	}
}
