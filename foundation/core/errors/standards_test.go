// File: standards_test.go
// Title: Standardized Error Tests
// Description: Tests the error builder and the standard constructors used
//              by the text packages, the configuration layer and the CLI.
// Author: msto63
// Version: v0.1.0
// Created: 2026-09-29
// Modified: 2026-09-29
//
// Change History:
// - 2026-09-29 v0.1.0: Initial tests

package errors

import (
	"errors"
	"strings"
	"testing"

	rberr "github.com/msto63/rbstr/foundation/core/error"
)

func TestErrorBuilder(t *testing.T) {
	cause := errors.New("underlying")
	err := NewErrorBuilder(ModuleScanner).
		Operation("Split").
		Messagef("cannot split %q", "abc").
		Cause(cause).
		Detail("separator", "(").
		Code(rberr.CodeInvalidPattern).
		Build()

	if err.Message() != `cannot split "abc"` {
		t.Errorf("Message() = %q", err.Message())
	}
	if err.Code() != rberr.CodeInvalidPattern {
		t.Errorf("Code() = %v, want %v", err.Code(), rberr.CodeInvalidPattern)
	}
	if err.Severity() != rberr.SeverityLow {
		t.Errorf("Severity() = %v, want %v", err.Severity(), rberr.SeverityLow)
	}
	if err.Operation() != "scanner.Split" {
		t.Errorf("Operation() = %q, want %q", err.Operation(), "scanner.Split")
	}
	if !errors.Is(err, cause) {
		t.Error("built error should wrap its cause")
	}

	details := err.Details()
	if details["module"] != ModuleScanner || details["operation"] != "Split" || details["separator"] != "(" {
		t.Errorf("Details() = %v", details)
	}
}

func TestErrorBuilderDefaults(t *testing.T) {
	tests := []struct {
		name        string
		builder     *ErrorBuilder
		wantMessage string
		wantCode    rberr.Code
	}{
		{
			name:        "module only",
			builder:     NewErrorBuilder(ModuleCLI),
			wantMessage: "cli operation failed",
			wantCode:    rberr.CodeUnknown,
		},
		{
			name:        "module and operation",
			builder:     NewErrorBuilder(ModuleConfig).Operation("Load"),
			wantMessage: "config.Load failed",
			wantCode:    rberr.CodeUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.builder.Build()
			if err.Message() != tt.wantMessage {
				t.Errorf("Message() = %q, want %q", err.Message(), tt.wantMessage)
			}
			if err.Code() != tt.wantCode {
				t.Errorf("Code() = %v, want %v", err.Code(), tt.wantCode)
			}
		})
	}
}

func TestErrorBuilderExplicitSeverity(t *testing.T) {
	err := NewErrorBuilder(ModuleStringx).
		Code(rberr.CodeInvalidInput).
		Severity(rberr.SeverityCritical).
		Build()

	if err.Severity() != rberr.SeverityCritical {
		t.Errorf("Severity() = %v, want %v", err.Severity(), rberr.SeverityCritical)
	}
}

func TestInvalidPattern(t *testing.T) {
	cause := errors.New("missing closing )")
	err := InvalidPattern(ModuleScanner, "Pattern", "(", cause)

	if !rberr.HasCode(err, rberr.CodeInvalidPattern) {
		t.Errorf("Code() = %v", err.Code())
	}
	if !strings.Contains(err.Error(), `invalid pattern "("`) || !strings.Contains(err.Error(), "missing closing )") {
		t.Errorf("Error() = %q", err.Error())
	}
	if err.Details()["pattern"] != "(" {
		t.Errorf("Details() = %v", err.Details())
	}
	if !IsModuleError(err, ModuleScanner) {
		t.Errorf("ExtractModule() = %q", ExtractModule(err))
	}
}

func TestInvalidInputAndFormat(t *testing.T) {
	input := InvalidInput(ModuleStringx, "Split", []string{"a", "b"}, "at most one pattern")
	if input.Code() != rberr.CodeInvalidInput {
		t.Errorf("InvalidInput Code() = %v", input.Code())
	}
	if input.Message() != "invalid input for stringx.Split: expected at most one pattern" {
		t.Errorf("InvalidInput Message() = %q", input.Message())
	}

	format := InvalidFormat(ModuleCLI, "xml", "text or json")
	if format.Code() != rberr.CodeInvalidFormat {
		t.Errorf("InvalidFormat Code() = %v", format.Code())
	}
	if format.Details()["expected_format"] != "text or json" {
		t.Errorf("InvalidFormat Details() = %v", format.Details())
	}
	if format.Code().ExitCode() != 2 {
		t.Errorf("InvalidFormat exit code = %d, want 2", format.Code().ExitCode())
	}
}

func TestConfigFailure(t *testing.T) {
	cause := errors.New("toml: line 3: expected '='")

	err := ConfigFailure("Load", "rbstr.toml", cause)
	if err.Code() != rberr.CodeConfigError {
		t.Errorf("Code() = %v", err.Code())
	}
	if err.Severity() != rberr.SeverityHigh {
		t.Errorf("Severity() = %v", err.Severity())
	}
	if err.Details()["path"] != "rbstr.toml" {
		t.Errorf("Details() = %v", err.Details())
	}
	if !strings.HasPrefix(err.Error(), "configuration Load failed for rbstr.toml: ") {
		t.Errorf("Error() = %q", err.Error())
	}

	noPath := ConfigFailure("Parse", "", cause)
	if noPath.Message() != "config.Parse failed" {
		t.Errorf("Message() = %q", noPath.Message())
	}
}

func TestExtractModule(t *testing.T) {
	if got := ExtractModule(errors.New("plain")); got != "" {
		t.Errorf("ExtractModule(plain) = %q", got)
	}
	if got := ExtractModule(nil); got != "" {
		t.Errorf("ExtractModule(nil) = %q", got)
	}
	if IsModuleError(InvalidFormat(ModuleCLI, "x", "y"), ModuleConfig) {
		t.Error("IsModuleError matched the wrong module")
	}
}
