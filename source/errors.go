package source

import "errors"

// Sentinel errors and informational results for source operations.
// These enable reliable classification using errors.Is(). ErrEndOfStream,
// ErrFormatChanged, and ErrWouldBlock are stream conditions rather than
// failures; callers are expected to handle them as part of the normal
// read protocol.

var (
	// ErrEndOfStream signals that the source has no further buffers.
	ErrEndOfStream = errors.New("end of stream")

	// ErrFormatChanged signals that the output format changed mid-stream.
	// The client can keep reading but should re-query GetFormat and be
	// prepared for buffers of the new configuration.
	ErrFormatChanged = errors.New("format changed")

	// ErrWouldBlock signals that a non-blocking read, or a read on a
	// paused source, has no buffer available right now.
	ErrWouldBlock = errors.New("read would block")

	// ErrUnsupported is the default result of optional capabilities a
	// concrete source does not implement. Not fatal; callers must handle
	// it gracefully.
	ErrUnsupported = errors.New("operation not supported")

	// ErrNotInitialized indicates an operation before Start or after
	// Stop.
	ErrNotInitialized = errors.New("source not started")

	// ErrBadValue indicates a malformed seek or stop-time request.
	ErrBadValue = errors.New("bad value")
)
