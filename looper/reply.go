package looper

import "sync"

// ReplyToken is a one-shot correlation object pairing a synchronous call
// with its eventual single answer.
//
// A token is created by Looper.CreateReplyToken, embedded in a message,
// and posted to a handler. The calling goroutine blocks in AwaitResponse
// while the handler, running on the loop, answers with PostReply. The
// token is owned jointly by the caller (waiting on it) and the looper's
// waiting set (correlating it) until the await returns.
type ReplyToken struct {
	id uint64

	mu        sync.Mutex
	delivered bool
	canceled  bool

	// Buffered so PostReply never blocks on the single waiter.
	replyCh chan *Message
}

func newReplyToken(id uint64) *ReplyToken {
	return &ReplyToken{
		id:      id,
		replyCh: make(chan *Message, 1),
	}
}

// ID returns the token's unique id within its looper.
func (t *ReplyToken) ID() uint64 {
	return t.id
}

// deliver stores the reply exactly once. It reports which failure applies
// when the token can no longer accept a reply.
func (t *ReplyToken) deliver(reply *Message) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.delivered {
		return ErrDoubleReply
	}
	if t.canceled {
		return ErrTokenCanceled
	}
	t.delivered = true
	t.replyCh <- reply
	return nil
}

// cancel marks the token as abandoned by its waiter. A reply already
// delivered wins over a concurrent cancel.
func (t *ReplyToken) cancel() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.delivered {
		t.canceled = true
	}
}
