package logger

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/philipp01105/tlog/core"
	"github.com/philipp01105/tlog/decorator"
	"github.com/philipp01105/tlog/target"
	"go.uber.org/multierr"
)

// Logger is a named logger that fans records out to a set of targets.
// It is safe for concurrent use.
type Logger struct {
	// mu guards name and the targets slice header. The slice itself is
	// never modified in place, so a reader may keep using it unlocked.
	mu      sync.RWMutex
	name    string
	targets []target.Target

	level      atomic.Int32
	decorators decorator.Pipeline
	clock      func() time.Time
}

// Builder provides a fluent API for building Logger instances
type Builder struct {
	name       string
	level      core.Level
	levelSet   bool
	targets    []target.Target
	decorators decorator.Pipeline
	clock      func() time.Time
}

// NewBuilder creates a new logger builder
func NewBuilder(name string) *Builder {
	return &Builder{
		name:  name,
		level: DefaultLevel,
		clock: time.Now,
	}
}

// WithLevel sets the logger level
func (b *Builder) WithLevel(level core.Level) *Builder {
	b.level = level
	b.levelSet = true
	return b
}

// WithTargets adds targets in order
func (b *Builder) WithTargets(targets ...target.Target) *Builder {
	b.targets = append(b.targets, targets...)
	return b
}

// WithDecorators replaces the default decorator pipeline
func (b *Builder) WithDecorators(decorators ...decorator.Decorator) *Builder {
	b.decorators = append(decorator.Pipeline{}, decorators...)
	return b
}

// WithClock sets the time source used to stamp records
func (b *Builder) WithClock(clock func() time.Time) *Builder {
	if clock != nil {
		b.clock = clock
	}
	return b
}

// WithCoarseClock stamps records with core.CoarseNow
func (b *Builder) WithCoarseClock() *Builder {
	core.StartCoarseClock()
	b.clock = core.CoarseNow
	return b
}

// Build creates the Logger. Every given target is retained. Without
// targets the logger writes to stdout, at TraceLevel or at the logger
// level if one was set.
func (b *Builder) Build() *Logger {
	l := &Logger{
		name:       b.name,
		decorators: b.decorators,
		clock:      b.clock,
	}
	if l.decorators == nil {
		l.decorators = decorator.Default()
	}
	l.level.Store(int32(b.level.Get()))

	for _, t := range b.targets {
		if t == nil {
			continue
		}
		t.Retain()
		l.targets = append(l.targets, t)
	}
	if len(l.targets) == 0 {
		level := core.TraceLevel
		if b.levelSet {
			level = b.level
		}
		// Only reference is the logger's
		l.targets = []target.Target{target.NewStdout(level)}
	}
	return l
}

// New creates a logger at DefaultLevel writing to targets
func New(name string, targets ...target.Target) *Logger {
	return NewBuilder(name).WithTargets(targets...).Build()
}

// Name returns the logger name
func (l *Logger) Name() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.name
}

// SetName renames the logger
func (l *Logger) SetName(name string) {
	l.mu.Lock()
	l.name = name
	l.mu.Unlock()
}

// Level returns the logger level
func (l *Logger) Level() core.Level {
	return core.Level(l.level.Load())
}

// SetLevel changes the logger level
func (l *Logger) SetLevel(level core.Level) {
	l.level.Store(int32(level.Get()))
}

// Targets returns a copy of the current target list
func (l *Logger) Targets() []target.Target {
	ts := l.snapshot()
	out := make([]target.Target, len(ts))
	copy(out, ts)
	return out
}

// AddTarget retains t and appends it to the target list
func (l *Logger) AddTarget(t target.Target) {
	if t == nil {
		return
	}
	t.Retain()

	l.mu.Lock()
	next := make([]target.Target, len(l.targets), len(l.targets)+1)
	copy(next, l.targets)
	l.targets = append(next, t)
	l.mu.Unlock()
}

// RemoveTarget removes the first occurrence of t and releases it. It
// reports whether t was found.
func (l *Logger) RemoveTarget(t target.Target) bool {
	l.mu.Lock()
	idx := -1
	for i, cur := range l.targets {
		if cur == t {
			idx = i
			break
		}
	}
	if idx < 0 {
		l.mu.Unlock()
		return false
	}
	next := make([]target.Target, 0, len(l.targets)-1)
	next = append(next, l.targets[:idx]...)
	l.targets = append(next, l.targets[idx+1:]...)
	l.mu.Unlock()

	_ = t.Release()
	return true
}

// snapshot returns the current target slice. Callers must not modify it.
func (l *Logger) snapshot() []target.Target {
	l.mu.RLock()
	ts := l.targets
	l.mu.RUnlock()
	return ts
}

// Log logs a message at the specified level
func (l *Logger) Log(level core.Level, msg string) {
	// Level check before any allocation
	if !l.Level().Allows(level) {
		return
	}
	l.log(level, msg)
}

// Logf logs a formatted message at the specified level
func (l *Logger) Logf(level core.Level, format string, args ...interface{}) {
	if !l.Level().Allows(level) {
		return
	}
	l.log(level, fmt.Sprintf(format, args...))
}

// log decorates msg once and hands it to every target. Each target
// applies its own gate; write failures are counted by the target and
// otherwise ignored.
func (l *Logger) log(level core.Level, msg string) {
	e := core.NewEntry(l.clock(), level, msg)
	record := l.decorators.Render(&e)

	for _, t := range l.snapshot() {
		t.Log(level, record)
	}
}

// Trace logs a trace message
func (l *Logger) Trace(msg string) {
	l.Log(core.TraceLevel, msg)
}

// Debug logs a debug message
func (l *Logger) Debug(msg string) {
	l.Log(core.DebugLevel, msg)
}

// Info logs an info message
func (l *Logger) Info(msg string) {
	l.Log(core.InfoLevel, msg)
}

// Warning logs a warning message
func (l *Logger) Warning(msg string) {
	l.Log(core.WarningLevel, msg)
}

// Error logs an error message
func (l *Logger) Error(msg string) {
	l.Log(core.ErrorLevel, msg)
}

// Critical logs a critical message. Unlike Fatal in other loggers it
// does not exit.
func (l *Logger) Critical(msg string) {
	l.Log(core.CriticalLevel, msg)
}

// Tracef logs a trace message with formatting
func (l *Logger) Tracef(format string, args ...interface{}) {
	l.Logf(core.TraceLevel, format, args...)
}

// Debugf logs a debug message with formatting
func (l *Logger) Debugf(format string, args ...interface{}) {
	l.Logf(core.DebugLevel, format, args...)
}

// Infof logs an info message with formatting
func (l *Logger) Infof(format string, args ...interface{}) {
	l.Logf(core.InfoLevel, format, args...)
}

// Warningf logs a warning message with formatting
func (l *Logger) Warningf(format string, args ...interface{}) {
	l.Logf(core.WarningLevel, format, args...)
}

// Errorf logs an error message with formatting
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.Logf(core.ErrorLevel, format, args...)
}

// Criticalf logs a critical message with formatting
func (l *Logger) Criticalf(format string, args ...interface{}) {
	l.Logf(core.CriticalLevel, format, args...)
}

// Flush flushes every target in order. A failing target does not stop
// the others; all errors are combined.
func (l *Logger) Flush() error {
	var err error
	for _, t := range l.snapshot() {
		err = multierr.Append(err, t.Flush())
	}
	return err
}

// Close flushes and releases every target, leaving the logger without
// targets. Targets still held elsewhere stay open.
func (l *Logger) Close() error {
	err := l.Flush()

	l.mu.Lock()
	ts := l.targets
	l.targets = nil
	l.mu.Unlock()

	for _, t := range ts {
		err = multierr.Append(err, t.Release())
	}
	return err
}
