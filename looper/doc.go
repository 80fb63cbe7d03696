// Package looper implements the threading backbone of an avfoundation
// pipeline: a per-component worker goroutine that serializes all work for
// one or more attached handlers through timestamped messages.
//
// Each Looper owns exactly one worker goroutine running a cooperative,
// synchronous dispatch loop over a time-ordered event queue. Any goroutine
// may post messages; the worker dequeues due events in timestamp order and
// delivers each to the handler the message addresses, one at a time.
// Handler code therefore never runs concurrently with other handler code
// on the same Looper, which is what lets pipeline stages keep per-stage
// state without locks.
//
// On top of the asynchronous loop the package provides a synchronous
// request/reply pattern: a foreign goroutine creates a ReplyToken via
// CreateReplyToken, embeds it in a message, posts the message, and blocks
// in AwaitResponse. The handler, when dispatched, answers with PostReply,
// waking exactly the one waiter. Shutdown is the universal cancellation
// signal: Stop unblocks the queue wait and every pending reply waiter.
//
// The design follows established patterns from the avfoundation codebase:
//   - Interface-based Handler contract for testability
//   - Thread-safe operations with a single mutex guarding all shared state
//   - Sentinel errors for reliable classification with errors.Is
//   - Structured logging of lifecycle transitions
package looper
