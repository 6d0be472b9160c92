package decorator

import (
	"os"
	"strconv"
	"time"

	"github.com/philipp01105/tlog/core"
)

// Decorator renders one bracketed metadata field for a log entry
type Decorator interface {
	// Decorate returns the field, e.g. "[1234]"
	Decorate(e *core.Entry) string
}

// Func adapts a plain function to the Decorator interface
type Func func(e *core.Entry) string

// Decorate calls f(e)
func (f Func) Decorate(e *core.Entry) string {
	return f(e)
}

// bracket wraps a field value in square brackets
func bracket(s string) string {
	return "[" + s + "]"
}

// Timestamp renders the entry time. The zero value uses time.ANSIC in
// the local time zone, which is what "%c" produces in the C locale.
type Timestamp struct {
	// Layout is the time layout (default: time.ANSIC)
	Layout string
	// Location converts the entry time before formatting (default: time.Local)
	Location *time.Location
}

// Decorate formats e.Time
func (d Timestamp) Decorate(e *core.Entry) string {
	layout := d.Layout
	if layout == "" {
		layout = time.ANSIC
	}
	loc := d.Location
	if loc == nil {
		loc = time.Local
	}
	return bracket(e.Time.In(loc).Format(layout))
}

var pid = strconv.Itoa(os.Getpid())

// PID renders the process id
func PID() Decorator {
	return Func(func(*core.Entry) string {
		return bracket(pid)
	})
}

// ThreadID renders the id of the OS thread running the caller. Go may
// move a goroutine between threads, so the value identifies where the
// message was decorated, not the goroutine.
func ThreadID() Decorator {
	return Func(func(*core.Entry) string {
		return bracket(strconv.Itoa(threadID()))
	})
}

// LevelChar renders the single letter of the entry level
func LevelChar() Decorator {
	return Func(func(e *core.Entry) string {
		return "[" + string(e.Level.Char()) + "]"
	})
}
