// Package source defines the pull-based media source contract consumed by
// handler-driven pipeline stages, plus a synthetic implementation for
// wiring and testing pipelines without capture hardware.
//
// A MediaSource produces buffers one Read at a time. Read may block the
// calling goroutine (which may itself be a looper worker) until a buffer,
// end of stream, or a format change is available; end of stream and format
// changes are signalled through the sentinel errors ErrEndOfStream and
// ErrFormatChanged, the way io.EOF terminates reads. Seek requests travel
// in ReadOptions alongside a non-blocking flag and a lateness hint.
//
// Optional capabilities (Pause, SetBuffers, SetStopTimeUS) default to
// ErrUnsupported; embed Unimplemented to pick up those defaults and
// override only what a concrete source supports.
package source
