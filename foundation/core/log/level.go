// File: level.go
// Title: Log Level Definitions
// Description: The five log levels, their long and short names and parsing
//              of either form.
// Author: msto63
// Version: v0.2.0
// Created: 2026-09-30
// Modified: 2026-10-18
//
// Change History:
// - 2026-09-30 v0.1.0: Initial implementation
// - 2026-10-18 v0.2.0: Level table replaces switch statements, fatal and
//                      audit levels removed

package log

import (
	"strings"

	rberrors "github.com/msto63/rbstr/foundation/core/errors"
)

// Level represents the importance level of a log message
type Level int

const (
	// LevelTrace logs per-operation details such as compiled patterns
	LevelTrace Level = iota

	// LevelDebug logs operation timings (--verbose)
	LevelDebug

	LevelInfo
	LevelWarn

	// LevelError represents failed operations
	LevelError
)

type levelName struct {
	long, short string
}

var levelNames = [...]levelName{
	LevelTrace: {"trace", "TRC"},
	LevelDebug: {"debug", "DBG"},
	LevelInfo:  {"info", "INF"},
	LevelWarn:  {"warn", "WRN"},
	LevelError: {"error", "ERR"},
}

func (l Level) valid() bool {
	return l >= 0 && int(l) < len(levelNames)
}

// String returns the lower case name used in config files and JSON output
func (l Level) String() string {
	if !l.valid() {
		return "unknown"
	}
	return levelNames[l].long
}

// ShortString returns the three letter form used by the text formatter
func (l Level) ShortString() string {
	if !l.valid() {
		return "???"
	}
	return levelNames[l].short
}

// ShouldLog reports whether l passes the minimum level.
func (l Level) ShouldLog(minLevel Level) bool {
	return l >= minLevel
}

// ParseLevel accepts the long name, the short name or "warning".
func ParseLevel(level string) (Level, error) {
	name := strings.ToLower(strings.TrimSpace(level))
	if name == "warning" {
		return LevelWarn, nil
	}
	for l, n := range levelNames {
		if name == n.long || name == strings.ToLower(n.short) {
			return Level(l), nil
		}
	}
	return LevelInfo, rberrors.InvalidFormat(rberrors.ModuleLog, level, "one of "+strings.Join(LevelNames(), ", "))
}

// LevelNames lists the long level names from most to least verbose.
func LevelNames() []string {
	names := make([]string, len(levelNames))
	for i, n := range levelNames {
		names[i] = n.long
	}
	return names
}

// DefaultLevel returns the level used when nothing is configured
func DefaultLevel() Level {
	return LevelWarn
}
