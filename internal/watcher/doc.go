// Package watcher polls the system clipboard for changes and turns them
// into clip captures.
//
// The watcher owns the clipboard exclusively: it compares a monotonic
// change counter on every tick, builds a candidate record from the current
// payload, suppresses rapid re-captures of identical content, and hands
// surviving candidates to a capture callback. The callback completes
// before the tick does, so captures are sequential end to end.
//
// Capture-side problems (no usable payload, image encoding failure, an
// unreadable frontmost app) are not errors: they degrade to "no capture
// this tick". Only the capture callback can report a failure, and that is
// logged without pausing the poll loop.
package watcher
