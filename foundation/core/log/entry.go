// File: entry.go
// Title: Log Entry Structure
// Description: The Entry passed to formatters and the Fields helpers used
//              to attach structured data to log calls.
// Author: msto63
// Version: v0.2.1
// Created: 2026-09-30
// Modified: 2026-10-18
//
// Change History:
// - 2026-09-30 v0.1.0: Initial implementation
// - 2026-10-14 v0.2.0: Correlation ID
// - 2026-10-18 v0.2.1: Only the field helpers rbstr logs with

package log

import (
	"time"
)

// Entry represents a single log entry with all its metadata
type Entry struct {
	Timestamp     time.Time
	Level         Level
	Message       string
	Logger        string
	CorrelationID string
	Fields        Fields
	Error         error
	Duration      time.Duration
}

// Fields represents custom key-value pairs for structured logging
type Fields map[string]interface{}

// Int creates an integer field
func Int(key string, value int) Fields {
	return Fields{key: value}
}

// String creates a string field
func String(key string, value string) Fields {
	return Fields{key: value}
}

// Merge combines two Fields into a new one; other wins on conflicts
func (f Fields) Merge(other Fields) Fields {
	result := make(Fields, len(f)+len(other))
	for k, v := range f {
		result[k] = v
	}
	for k, v := range other {
		result[k] = v
	}
	return result
}

// NewEntry creates a new log entry with the given level and message
func NewEntry(level Level, message string) *Entry {
	return &Entry{
		Timestamp: time.Now(),
		Level:     level,
		Message:   message,
		Fields:    make(Fields),
	}
}
