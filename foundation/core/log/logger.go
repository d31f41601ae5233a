// File: logger.go
// Title: Core Logger Implementation
// Description: The Logger type: leveled structured logging with contextual
//              fields, a correlation ID per command invocation and
//              integration with the rbstr error type.
// Author: msto63
// Version: v0.3.0
// Created: 2026-09-30
// Modified: 2026-10-18
//
// Change History:
// - 2026-09-30 v0.1.0: Initial implementation
// - 2026-10-14 v0.2.0: Correlation IDs, shared write lock across clones
// - 2026-10-18 v0.3.0: Immutable after construction, package level logger
//                      and in-place setters removed

package log

import (
	"io"
	"os"
	"sync"
	"time"

	rberr "github.com/msto63/rbstr/foundation/core/error"
)

// Logger writes leveled entries to one output. A Logger never changes after
// construction; the With* methods return copies. It is safe for concurrent
// use.
type Logger struct {
	level         Level
	formatter     Formatter
	output        io.Writer
	name          string
	correlationID string
	fields        Fields

	// shared by all copies writing to the same output
	writeMu *sync.Mutex
}

// Config represents logger configuration
type Config struct {
	Level  Level
	Format Format
	Output io.Writer // defaults to os.Stderr
	Name   string
}

// NewWithConfig creates a new logger with the specified configuration
func NewWithConfig(config Config) *Logger {
	output := config.Output
	if output == nil {
		output = os.Stderr
	}

	return &Logger{
		level:     config.Level,
		formatter: GetFormatter(config.Format),
		output:    output,
		name:      config.Name,
		fields:    Fields{},
		writeMu:   &sync.Mutex{},
	}
}

// WithName returns a copy reporting name as the logger
func (l *Logger) WithName(name string) *Logger {
	c := *l
	c.name = name
	return &c
}

// WithField returns a copy that adds key to every entry
func (l *Logger) WithField(key string, value interface{}) *Logger {
	c := *l
	c.fields = l.fields.Merge(Fields{key: value})
	return &c
}

// WithCorrelationID returns a copy tagging every entry with id
func (l *Logger) WithCorrelationID(id string) *Logger {
	c := *l
	c.correlationID = id
	return &c
}

func (l *Logger) Trace(message string, fields ...Fields) {
	l.log(LevelTrace, message, nil, 0, fields...)
}

func (l *Logger) Debug(message string, fields ...Fields) {
	l.log(LevelDebug, message, nil, 0, fields...)
}

func (l *Logger) Info(message string, fields ...Fields) {
	l.log(LevelInfo, message, nil, 0, fields...)
}

func (l *Logger) Warn(message string, fields ...Fields) {
	l.log(LevelWarn, message, nil, 0, fields...)
}

func (l *Logger) Error(message string, fields ...Fields) {
	l.log(LevelError, message, nil, 0, fields...)
}

// LogError logs err at a level derived from its severity. rbstr errors
// contribute their code, operation and details as fields.
func (l *Logger) LogError(err error) {
	if err == nil {
		return
	}

	rbErr, ok := rberr.As(err)
	if !ok {
		l.log(LevelError, err.Error(), err, 0)
		return
	}

	fields := Fields{
		"error_code":     rbErr.Code().String(),
		"error_severity": rbErr.Severity().String(),
	}
	if op := rbErr.Operation(); op != "" {
		fields["error_operation"] = op
	}
	for k, v := range rbErr.Details() {
		fields["error_"+k] = v
	}

	l.log(severityLevel(rbErr.Severity()), err.Error(), err, 0, fields)
}

func severityLevel(s rberr.Severity) Level {
	switch s {
	case rberr.SeverityLow:
		return LevelInfo
	case rberr.SeverityMedium:
		return LevelWarn
	default:
		return LevelError
	}
}

// IsLevelEnabled reports whether entries at level are written
func (l *Logger) IsLevelEnabled(level Level) bool {
	return level.ShouldLog(l.level)
}

func (l *Logger) log(level Level, message string, err error, duration time.Duration, fields ...Fields) {
	if !level.ShouldLog(l.level) {
		return
	}

	entry := NewEntry(level, message)
	entry.Logger = l.name
	entry.CorrelationID = l.correlationID
	entry.Error = err
	entry.Duration = duration

	entry.Fields = entry.Fields.Merge(l.fields)
	for _, f := range fields {
		entry.Fields = entry.Fields.Merge(f)
	}

	formatted, formatErr := l.formatter.Format(entry)
	if formatErr != nil {
		return
	}

	l.writeMu.Lock()
	defer l.writeMu.Unlock()
	_, _ = l.output.Write(formatted)
}
