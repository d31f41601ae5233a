// Package log provides leveled, structured logging for rbstr.
//
// Package: log
// Title: rbstr Structured Logging
// Description: A small structured logger with levels, contextual fields,
//              JSON, text and logfmt output, integration with the rbstr
//              error type and operation timers. The command line tool logs
//              every string operation through it.
// Author: msto63
// Version: v0.3.0
// Created: 2026-09-30
// Modified: 2026-10-18
//
// Change History:
// - 2026-09-30 v0.1.0: Initial implementation
// - 2026-10-14 v0.2.0: Correlation IDs and logfmt output
// - 2026-10-18 v0.3.0: Timer.Done, immutable Logger
//
// Usage:
//
//	logger := log.NewWithConfig(log.Config{
//		Level:  log.LevelDebug,
//		Format: log.FormatText,
//		Name:   "rbstr",
//	}).WithCorrelationID(id)
//
//	logger.Trace("compiling split pattern", log.String("pattern", expr))
//
//	timer := logger.StartTimer("count", log.Int("subject_length", n))
//	result, err := op()
//	timer.Done(err)
//	logger.LogError(err)
//
// Log output goes to stderr by default so that command output on stdout stays
// machine readable.
package log
