package looper

// HandlerID identifies a handler within one Looper. IDs are strictly
// increasing per looper and never reused. The zero value is invalid and is
// what RegisterHandler returns on rejection.
type HandlerID int32

// Handler is the capability of receiving and processing a delivered
// message. A handler owns no goroutine of its own; all of its
// OnMessageReceived invocations run serialized on the worker goroutine of
// the Looper it is registered with.
//
// The looper guarantees a delivery attempt, not handler success: a handler
// that fails internally is responsible for its own recovery.
type Handler interface {
	OnMessageReceived(msg *Message)
}

// HandlerFunc adapts a plain function to the Handler interface, following
// the http.HandlerFunc convention.
type HandlerFunc func(msg *Message)

// OnMessageReceived calls f(msg).
func (f HandlerFunc) OnMessageReceived(msg *Message) {
	f(msg)
}
