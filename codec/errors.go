package codec

import "errors"

// Sentinel errors for codec registry operations.
// These errors enable reliable error classification using errors.Is().

var (
	// ErrNilFactory indicates a nil factory was passed to RegisterFactory.
	ErrNilFactory = errors.New("codec factory is nil")

	// ErrNoFactory indicates no registered factory can satisfy a request.
	ErrNoFactory = errors.New("no codec factory supports the request")

	// ErrEncoderUnsupported indicates a factory was asked for an encoder
	// it cannot build.
	ErrEncoderUnsupported = errors.New("encoder not supported")

	// ErrNotConfigured indicates Process was called before Configure on a
	// codec that requires configuration.
	ErrNotConfigured = errors.New("codec not configured")

	// ErrClosed indicates the codec has been closed.
	ErrClosed = errors.New("codec closed")
)
