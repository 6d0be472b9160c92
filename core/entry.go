package core

import (
	"time"
)

// Entry is the decoration context of a single log message. The logger
// builds one per emitted message, after the level gate, and hands it to
// the decorator pipeline.
type Entry struct {
	Time    time.Time
	Level   Level
	Message string
}

// NewEntry creates an entry stamped with t
func NewEntry(t time.Time, level Level, msg string) Entry {
	return Entry{
		Time:    t,
		Level:   level,
		Message: msg,
	}
}
