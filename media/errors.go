package media

import "errors"

// Sentinel errors for media package operations.
// These errors enable reliable error classification using errors.Is().

var (
	// ErrNotBufferBacked indicates a buffer operation was attempted on a
	// packet that carries a native handle instead of an owned buffer.
	ErrNotBufferBacked = errors.New("packet is not buffer backed")

	// ErrInvalidSize indicates a zero or negative buffer size.
	ErrInvalidSize = errors.New("invalid buffer size")

	// ErrInvalidRange indicates a range that does not fit inside the
	// buffer's capacity.
	ErrInvalidRange = errors.New("range exceeds buffer capacity")
)
