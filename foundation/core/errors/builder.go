// File: builder.go
// Title: Fluent Error Builder
// Description: ErrorBuilder assembles a structured error step by step and
//              derives a code and message from module and operation when
//              none is given.
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

// ErrorBuilder provides a fluent interface for building standardized errors
type ErrorBuilder struct {
	module    string
	operation string
	message   string
	cause     error
	details   map[string]interface{}
	severity  rberr.Severity
	code      rberr.Code
}

// NewErrorBuilder creates a new error builder for the specified module
func NewErrorBuilder(module string) *ErrorBuilder {
	return &ErrorBuilder{
		module:   module,
		details:  make(map[string]interface{}),
		severity: rberr.SeverityMedium,
	}
}

// Operation sets the operation name for the error
func (eb *ErrorBuilder) Operation(operation string) *ErrorBuilder {
	eb.operation = operation
	return eb
}

// Message sets the error message
func (eb *ErrorBuilder) Message(message string) *ErrorBuilder {
	eb.message = message
	return eb
}

// Messagef sets the error message with formatting
func (eb *ErrorBuilder) Messagef(format string, args ...interface{}) *ErrorBuilder {
	eb.message = fmt.Sprintf(format, args...)
	return eb
}

// Cause sets the underlying cause of the error
func (eb *ErrorBuilder) Cause(cause error) *ErrorBuilder {
	eb.cause = cause
	return eb
}

// Detail adds a detail key-value pair to the error
func (eb *ErrorBuilder) Detail(key string, value interface{}) *ErrorBuilder {
	eb.details[key] = value
	return eb
}

// Severity sets the error severity
func (eb *ErrorBuilder) Severity(severity rberr.Severity) *ErrorBuilder {
	eb.severity = severity
	return eb
}

// Code sets the error code
func (eb *ErrorBuilder) Code(code rberr.Code) *ErrorBuilder {
	eb.code = code
	return eb
}

// Build creates the final error
func (eb *ErrorBuilder) Build() *rberr.Error {
	code := eb.code
	if code == "" {
		code = rberr.CodeUnknown
	}

	message := eb.message
	if message == "" {
		if eb.operation != "" {
			message = fmt.Sprintf("%s.%s failed", eb.module, eb.operation)
		} else {
			message = fmt.Sprintf("%s operation failed", eb.module)
		}
	}

	var err *rberr.Error
	if eb.cause != nil {
		err = rberr.Wrap(eb.cause, message)
	} else {
		err = rberr.New(message)
	}

	details := make(map[string]interface{}, len(eb.details)+2)
	for k, v := range eb.details {
		details[k] = v
	}
	details["module"] = eb.module

	operation := eb.module
	if eb.operation != "" {
		details["operation"] = eb.operation
		operation = eb.module + "." + eb.operation
	}

	// Severity first so WithCode keeps an explicit choice
	return err.
		WithSeverity(eb.severity).
		WithCode(code).
		WithDetails(details).
		WithOperation(operation)
}
