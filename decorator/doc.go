// Package decorator renders the metadata prefix of a log record.
//
// A Decorator produces one bracketed field such as "[1234]" from an
// Entry and ambient process state. A Pipeline applies decorators in
// order and appends the raw message, so the default pipeline yields
//
//	[Wed Feb 18 13:00:00 2026] [1234] [I] message
//
// Loggers render a message once, after the level gate, and pass the
// same string to every target. Pipelines are configurable per logger.
//
// Render formats into a pooled bytes.Buffer. Buffers larger than 64 KiB
// are not returned to the pool.
package decorator
