// Package core defines the shared types used across tlog.
//
// Level is an ordered verbosity: NoneLevel < CriticalLevel < ErrorLevel <
// WarningLevel < InfoLevel < DebugLevel < TraceLevel. A gate configured
// at some level accepts every message whose level is less than or equal
// to it, so a TraceLevel target accepts everything and a NoneLevel
// target accepts nothing. Invalid integers and unrecognized names
// normalize to UnknownLevel, which is NoneLevel.
//
// Entry carries the time, level and raw message of one log call through
// the decorator pipeline.
//
// CoarseNow is an optional cheap clock for hot logging paths: after
// StartCoarseClock it returns a time refreshed every 500µs.
package core
