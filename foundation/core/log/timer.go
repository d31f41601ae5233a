// File: timer.go
// Title: Operation Timer
// Description: Measures one string operation and reports its outcome with
//              the elapsed time.
// Author: msto63
// Version: v0.2.0
// Created: 2026-09-30
// Modified: 2026-10-18
//
// Change History:
// - 2026-09-30 v0.1.0: Initial implementation
// - 2026-10-18 v0.2.0: Single Done(err) replaces Stop/StopWithError

package log

import (
	"time"
)

// Timer measures a single operation. It is not safe for concurrent use.
type Timer struct {
	logger *Logger
	op     string
	start  time.Time
	fields Fields
	done   bool
}

// StartTimer starts timing operation. fields are reported when it is done.
func (l *Logger) StartTimer(operation string, fields ...Fields) *Timer {
	t := &Timer{logger: l, op: operation, start: time.Now(), fields: Fields{"operation": operation}}
	for _, f := range fields {
		t.fields = t.fields.Merge(f)
	}
	return t
}

// Add attaches fields reported when the timer is done
func (t *Timer) Add(fields Fields) *Timer {
	t.fields = t.fields.Merge(fields)
	return t
}

// Done logs "<operation> completed", or "<operation> failed" with err, at
// debug level and returns the elapsed time. Only the first call logs.
// Failures are reported at their own severity by Logger.LogError.
func (t *Timer) Done(err error) time.Duration {
	elapsed := time.Since(t.start)
	if t.done || t.logger == nil {
		return elapsed
	}
	t.done = true

	message := t.op + " completed"
	if err != nil {
		message = t.op + " failed"
	}
	t.logger.log(LevelDebug, message, err, elapsed, t.fields)
	return elapsed
}
