package core

import (
	"strings"
)

// Level represents the verbosity of a log message. Larger values are more
// verbose and less severe: a gate configured at InfoLevel accepts
// Critical, Error, Warning and Info messages.
type Level int8

const (
	// NoneLevel logs nothing
	NoneLevel Level = iota
	// CriticalLevel for unrecoverable conditions
	CriticalLevel
	// ErrorLevel for error messages
	ErrorLevel
	// WarningLevel for warning messages
	WarningLevel
	// InfoLevel for general informational messages (default)
	InfoLevel
	// DebugLevel for detailed debugging information
	DebugLevel
	// TraceLevel for the most verbose output
	TraceLevel

	maxLevel

	// UnknownLevel is what invalid input normalizes to. It is NoneLevel.
	UnknownLevel = NoneLevel
)

var levelNames = [...]string{
	NoneLevel:     "none",
	CriticalLevel: "critical",
	ErrorLevel:    "error",
	WarningLevel:  "warning",
	InfoLevel:     "info",
	DebugLevel:    "debug",
	TraceLevel:    "trace",
}

var levelChars = [...]byte{
	NoneLevel:     '_',
	CriticalLevel: 'C',
	ErrorLevel:    'E',
	WarningLevel:  'W',
	InfoLevel:     'I',
	DebugLevel:    'D',
	TraceLevel:    'T',
}

// LevelFromInt converts an ordinal to a Level. Values outside the valid
// range yield UnknownLevel.
func LevelFromInt(i int) Level {
	if i < int(NoneLevel) || i >= int(maxLevel) {
		return UnknownLevel
	}
	return Level(i)
}

// ParseLevel converts a case-insensitive level name to a Level.
// Unrecognized names yield UnknownLevel.
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none":
		return NoneLevel
	case "critical":
		return CriticalLevel
	case "error":
		return ErrorLevel
	case "warning", "warn":
		return WarningLevel
	case "info":
		return InfoLevel
	case "debug":
		return DebugLevel
	case "trace":
		return TraceLevel
	default:
		return UnknownLevel
	}
}

// Valid reports whether l is one of the named levels.
func (l Level) Valid() bool {
	return l >= NoneLevel && l < maxLevel
}

// Get returns the level itself, normalized.
func (l Level) Get() Level {
	if !l.Valid() {
		return UnknownLevel
	}
	return l
}

// Set replaces the level, normalizing invalid values to UnknownLevel.
func (l *Level) Set(newLevel Level) {
	*l = newLevel.Get()
}

// Allows reports whether a message at msg passes a gate configured at l.
// NoneLevel messages never pass and a NoneLevel gate passes nothing.
func (l Level) Allows(msg Level) bool {
	return msg > NoneLevel && msg.Valid() && msg <= l.Get()
}

// String returns the lowercase name of the level
func (l Level) String() string {
	if !l.Valid() {
		return "unknown"
	}
	return levelNames[l]
}

// Char returns the single uppercase letter for the level, '_' for
// NoneLevel and invalid values.
func (l Level) Char() byte {
	if !l.Valid() {
		return '_'
	}
	return levelChars[l]
}

// MarshalText implements encoding.TextMarshaler.
func (l Level) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Unknown names
// decode to UnknownLevel rather than failing.
func (l *Level) UnmarshalText(text []byte) error {
	*l = ParseLevel(string(text))
	return nil
}
