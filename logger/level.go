package logger

import (
	"github.com/philipp01105/tlog/core"
)

// Level Re-export type and constants for convenience
type Level = core.Level

const (
	NoneLevel     = core.NoneLevel
	CriticalLevel = core.CriticalLevel
	ErrorLevel    = core.ErrorLevel
	WarningLevel  = core.WarningLevel
	InfoLevel     = core.InfoLevel
	DebugLevel    = core.DebugLevel
	TraceLevel    = core.TraceLevel
)

// ParseLevel converts a case-insensitive name to a Level
func ParseLevel(s string) Level {
	return core.ParseLevel(s)
}
