// File: error_test.go
// Title: Error Module Tests
// Description: Tests for error creation, wrapping, codes, severity, details
//              and JSON encoding.
// Author: msto63
// Version: v0.1.1
// Created: 2026-09-28
// Modified: 2026-10-09
//
// Change History:
// - 2026-09-28 v0.1.0: Initial tests
// - 2026-10-09 v0.1.1: Chain lookups through fmt.Errorf wrapping

package error

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	msg := "test error message"
	err := New(msg)

	if err == nil {
		t.Fatal("New() returned nil")
	}

	if err.Error() != msg {
		t.Errorf("Error() = %q, want %q", err.Error(), msg)
	}

	if err.Code() != CodeUnknown {
		t.Errorf("Code() = %v, want %v", err.Code(), CodeUnknown)
	}

	if err.Severity() != SeverityMedium {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityMedium)
	}

	if err.Timestamp().IsZero() {
		t.Error("Timestamp() should not be zero")
	}

	if got := Newf("bad %s at %d", "pattern", 3).Message(); got != "bad pattern at 3" {
		t.Errorf("Newf() message = %q", got)
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		message string
		wantNil bool
		wantMsg string
	}{
		{
			name:    "wrap nil error",
			err:     nil,
			message: "wrapper message",
			wantNil: true,
		},
		{
			name:    "wrap standard error",
			err:     errors.New("original error"),
			message: "wrapper message",
			wantMsg: "wrapper message: original error",
		},
		{
			name:    "wrap rbstr error",
			err:     New("original rbstr error").WithCode(CodeInvalidPattern),
			message: "wrapper message",
			wantMsg: "wrapper message: original rbstr error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Wrap(tt.err, tt.message)

			if tt.wantNil {
				if result != nil {
					t.Errorf("Wrap() = %v, want nil", result)
				}
				return
			}

			if result.Error() != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", result.Error(), tt.wantMsg)
			}

			if !errors.Is(result, tt.err) {
				t.Error("wrapped error should match its cause with errors.Is")
			}
		})
	}
}

func TestWrapInheritsClassification(t *testing.T) {
	inner := New("compile failed").
		WithCode(CodeInvalidPattern).
		WithOperation("scanner.Pattern").
		WithDetail("pattern", "(")

	outer := Wrap(inner, "split failed")

	if outer.Code() != CodeInvalidPattern {
		t.Errorf("Code() = %v, want %v", outer.Code(), CodeInvalidPattern)
	}
	if outer.Severity() != SeverityLow {
		t.Errorf("Severity() = %v, want %v", outer.Severity(), SeverityLow)
	}
	if outer.Operation() != "scanner.Pattern" {
		t.Errorf("Operation() = %q", outer.Operation())
	}
	if outer.Details()["pattern"] != "(" {
		t.Errorf("Details() = %v", outer.Details())
	}
	if outer.Message() != "split failed" {
		t.Errorf("Message() = %q", outer.Message())
	}
}

func TestWrapChainLimit(t *testing.T) {
	var err error = errors.New("root")
	for i := 0; i < MaxErrorChainDepth+5; i++ {
		err = Wrap(err, fmt.Sprintf("level %d", i))
	}

	rbErr, ok := As(err)
	if !ok {
		t.Fatal("expected an rbstr error")
	}
	if chainDepth(rbErr) > MaxErrorChainDepth+1 {
		t.Errorf("chain depth = %d, want at most %d", chainDepth(rbErr), MaxErrorChainDepth+1)
	}
	if !strings.Contains(err.Error(), "root") {
		t.Errorf("truncated error lost its root cause: %q", err.Error())
	}
}

func TestWithCodeKeepsExplicitSeverity(t *testing.T) {
	err := New("boom").WithSeverity(SeverityCritical).WithCode(CodeInvalidInput)
	if err.Severity() != SeverityCritical {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityCritical)
	}

	err = New("boom").WithCode(CodeConfigError)
	if err.Severity() != SeverityHigh {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityHigh)
	}
}

func TestDetails(t *testing.T) {
	err := New("boom").
		WithDetail("a", 1).
		WithDetails(map[string]interface{}{"b": "two", "c": true})

	details := err.Details()
	if len(details) != 3 {
		t.Fatalf("len(Details()) = %d, want 3", len(details))
	}

	// Details returns a copy
	details["a"] = 99
	if err.Details()["a"] != 1 {
		t.Error("modifying Details() result changed the error")
	}
}

func TestRootCause(t *testing.T) {
	root := errors.New("disk gone")
	err := Wrap(Wrap(root, "read"), "load")

	if err.RootCause() != root {
		t.Errorf("RootCause() = %v, want %v", err.RootCause(), root)
	}

	plain := New("alone")
	if plain.RootCause() != plain {
		t.Error("RootCause() of an unwrapped error should be itself")
	}
}

func TestString(t *testing.T) {
	err := Wrap(errors.New("cause"), "outer").
		WithCode(CodeInvalidFormat).
		WithOperation("cli.count").
		WithDetail("z", 1).
		WithDetail("a", 2)

	s := err.String()
	for _, want := range []string{
		"Error: outer",
		"Code: INVALID_FORMAT",
		"Severity: low",
		"Operation: cli.count",
		"Details: {a=2, z=1}",
		"Cause: cause",
	} {
		if !strings.Contains(s, want) {
			t.Errorf("String() missing %q in:\n%s", want, s)
		}
	}
}

func TestMarshalJSON(t *testing.T) {
	err := Wrap(errors.New("cause"), "outer").
		WithCode(CodeInvalidPattern).
		WithOperation("scanner.Pattern").
		WithDetail("pattern", "[")

	data, jsonErr := json.Marshal(err)
	if jsonErr != nil {
		t.Fatalf("json.Marshal() error = %v", jsonErr)
	}

	var decoded map[string]interface{}
	if jsonErr := json.Unmarshal(data, &decoded); jsonErr != nil {
		t.Fatalf("json.Unmarshal() error = %v", jsonErr)
	}

	expected := map[string]string{
		"message":   "outer",
		"code":      "INVALID_PATTERN",
		"severity":  "low",
		"operation": "scanner.Pattern",
		"cause":     "cause",
	}
	for key, want := range expected {
		if decoded[key] != want {
			t.Errorf("%s = %v, want %q", key, decoded[key], want)
		}
	}

	details, ok := decoded["details"].(map[string]interface{})
	if !ok || details["pattern"] != "[" {
		t.Errorf("details = %v", decoded["details"])
	}
}

func TestChainHelpers(t *testing.T) {
	base := New("bad pattern").WithCode(CodeInvalidPattern)
	wrapped := fmt.Errorf("split: %w", base)

	tests := []struct {
		name         string
		err          error
		wantCode     Code
		wantSeverity Severity
		wantAs       bool
	}{
		{"rbstr error", base, CodeInvalidPattern, SeverityLow, true},
		{"fmt wrapped", wrapped, CodeInvalidPattern, SeverityLow, true},
		{"foreign error", errors.New("plain"), CodeUnknown, SeverityMedium, false},
		{"nil", nil, CodeUnknown, SeverityMedium, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetCode(tt.err); got != tt.wantCode {
				t.Errorf("GetCode() = %v, want %v", got, tt.wantCode)
			}
			if got := GetSeverity(tt.err); got != tt.wantSeverity {
				t.Errorf("GetSeverity() = %v, want %v", got, tt.wantSeverity)
			}
			if _, ok := As(tt.err); ok != tt.wantAs {
				t.Errorf("As() ok = %v, want %v", ok, tt.wantAs)
			}
			if !HasCode(tt.err, tt.wantCode) {
				t.Errorf("HasCode(%v) = false", tt.wantCode)
			}
		})
	}
}
