package looper

import "errors"

// Sentinel errors for looper operations.
// These errors enable reliable error classification using errors.Is().

// Lifecycle errors.
var (
	// ErrNotStarted indicates an operation that requires a running loop
	// was attempted before Start.
	ErrNotStarted = errors.New("looper is not started")

	// ErrAlreadyStarted indicates Start was called on a running looper.
	ErrAlreadyStarted = errors.New("looper is already started")

	// ErrTerminated indicates the looper has been stopped. It is also the
	// failure returned to reply waiters unblocked by shutdown.
	ErrTerminated = errors.New("looper terminated")
)

// Registration errors.
var (
	// ErrInvalidHandler indicates a nil handler was passed to
	// RegisterHandler.
	ErrInvalidHandler = errors.New("handler is nil")

	// ErrNilMessage indicates a nil message was posted.
	ErrNilMessage = errors.New("message is nil")
)

// Reply mechanism errors. ErrSelfWait and ErrDoubleReply indicate logic
// bugs in the caller, not runtime conditions, and are logged loudly.
var (
	// ErrInvalidToken indicates a nil or foreign reply token.
	ErrInvalidToken = errors.New("invalid reply token")

	// ErrSelfWait indicates AwaitResponse was called from the looper's own
	// worker goroutine, which would deadlock the single-threaded loop.
	ErrSelfWait = errors.New("await response called from looper thread")

	// ErrDoubleReply indicates PostReply was called twice for one token.
	ErrDoubleReply = errors.New("reply token already delivered")

	// ErrTokenCanceled indicates PostReply arrived after the waiter
	// abandoned the token (deadline expiry).
	ErrTokenCanceled = errors.New("reply token canceled")

	// ErrTimeout indicates a deadline-bound AwaitResponse expired before
	// any reply was posted.
	ErrTimeout = errors.New("await response timed out")
)
