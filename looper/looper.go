package looper

import (
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"
)

// Looper owns one worker goroutine, a time-ordered event queue, a handler
// registry, and the reply-waiting machinery.
//
// A Looper is constructed idle. Start spawns the worker and blocks the
// caller until the worker has signalled it is about to enter its loop, so
// a Post issued after Start returns is guaranteed to be observed. Stop
// signals termination, wakes the queue wait and every pending reply
// waiter, and returns only after the worker has exited. A stopped Looper
// is unusable for further Post or Start calls.
//
// All methods are safe for concurrent use from any goroutine, including
// from handler code running on the loop itself (self-posting for
// continuations or retries).
type Looper struct {
	name     string
	priority int32

	// mu guards the event queue, handler registry, waiting set, and run
	// state. The worker is the sole consumer of the queue's head, but any
	// goroutine may insert.
	mu          sync.Mutex
	started     bool
	stopped     bool
	queue       eventQueue
	nextSeq     uint64
	handlers    map[HandlerID]Handler
	nextHandler HandlerID
	waiting     map[uint64]*ReplyToken
	nextToken   uint64

	// wakeCh carries at most one pending wakeup for the worker; stopCh is
	// closed exactly once by Stop and doubles as the cancellation signal
	// for reply waiters.
	wakeCh    chan struct{}
	stopCh    chan struct{}
	startedCh chan struct{}
	doneCh    chan struct{}

	// loopGID holds the worker goroutine's id while the loop runs, for
	// self-wait detection in AwaitResponse.
	loopGID atomic.Uint64

	// dropped counts messages discarded because their target handler was
	// no longer registered at dispatch time.
	dropped atomic.Uint64
}

// New creates an idle looper with the given name. The name appears in log
// fields only.
func New(name string) *Looper {
	return &Looper{
		name:      name,
		handlers:  make(map[HandlerID]Handler),
		waiting:   make(map[uint64]*ReplyToken),
		wakeCh:    make(chan struct{}, 1),
		stopCh:    make(chan struct{}),
		startedCh: make(chan struct{}),
		doneCh:    make(chan struct{}),
	}
}

// NowUS returns the current wall-clock time in microseconds, the time base
// of every posted event.
func NowUS() int64 {
	return time.Now().UnixMicro()
}

// Name returns the looper's name.
func (l *Looper) Name() string {
	return l.name
}

// Start spawns the worker goroutine and blocks until it is about to enter
// its dispatch loop. The priority is advisory: Go offers no portable
// goroutine priority control, so it is recorded and logged for parity
// with platform schedulers that honor it.
//
// Calling Start twice on a running looper is an error, as is starting a
// looper that has already been stopped.
func (l *Looper) Start(priority int32) error {
	l.mu.Lock()
	if l.stopped {
		l.mu.Unlock()
		return ErrTerminated
	}
	if l.started {
		l.mu.Unlock()
		logrus.WithFields(logrus.Fields{
			"function": "Looper.Start",
			"name":     l.name,
		}).Error("Start called on a running looper")
		return ErrAlreadyStarted
	}
	l.started = true
	l.priority = priority
	l.mu.Unlock()

	logrus.WithFields(logrus.Fields{
		"function": "Looper.Start",
		"name":     l.name,
		"priority": priority,
	}).Info("Starting looper worker")

	go l.loop()

	// One-shot latch: after Start returns, the worker is inside (or about
	// to enter) its select, so no Post can miss its wakeup.
	<-l.startedCh
	return nil
}

// Stop signals termination, wakes the queue wait and all pending reply
// waiters, and waits for the worker goroutine to exit. Stop is
// idempotent; a second call is a no-op returning nil.
func (l *Looper) Stop() error {
	l.mu.Lock()
	if l.stopped {
		l.mu.Unlock()
		return nil
	}
	l.stopped = true
	wasStarted := l.started
	pendingReplies := len(l.waiting)
	close(l.stopCh)
	l.mu.Unlock()

	if wasStarted {
		<-l.doneCh
	}

	logrus.WithFields(logrus.Fields{
		"function":        "Looper.Stop",
		"name":            l.name,
		"pending_replies": pendingReplies,
		"dropped_total":   l.dropped.Load(),
	}).Info("Looper stopped")
	return nil
}

// RegisterHandler assigns a strictly increasing id to handler and stores
// the association. A nil handler is rejected with id 0. Registration is
// permitted at any time after construction, concurrently with the loop.
func (l *Looper) RegisterHandler(handler Handler) (HandlerID, error) {
	if handler == nil {
		logrus.WithFields(logrus.Fields{
			"function": "Looper.RegisterHandler",
			"name":     l.name,
		}).Error("Rejecting nil handler registration")
		return 0, ErrInvalidHandler
	}

	l.mu.Lock()
	l.nextHandler++
	id := l.nextHandler
	l.handlers[id] = handler
	l.mu.Unlock()

	logrus.WithFields(logrus.Fields{
		"function":   "Looper.RegisterHandler",
		"name":       l.name,
		"handler_id": id,
	}).Debug("Handler registered")
	return id, nil
}

// UnregisterHandler removes the registration for id. Messages already
// queued for id are not retroactively invalidated; they are dropped
// silently at dispatch time (drop-not-crash policy, because
// unregistration may race with in-flight posts).
func (l *Looper) UnregisterHandler(id HandlerID) {
	l.mu.Lock()
	delete(l.handlers, id)
	l.mu.Unlock()

	logrus.WithFields(logrus.Fields{
		"function":   "Looper.UnregisterHandler",
		"name":       l.name,
		"handler_id": id,
	}).Debug("Handler unregistered")
}

// Post schedules msg for dispatch no earlier than delayUS microseconds
// from now. A zero or negative delay means "as soon as possible". Post is
// safe from any goroutine, including the loop's own worker.
func (l *Looper) Post(msg *Message, delayUS int64) error {
	if msg == nil {
		return ErrNilMessage
	}
	if delayUS < 0 {
		delayUS = 0
	}

	l.mu.Lock()
	if l.stopped {
		l.mu.Unlock()
		return ErrTerminated
	}
	if !l.started {
		l.mu.Unlock()
		return ErrNotStarted
	}
	l.nextSeq++
	ev := &event{
		whenUS: NowUS() + delayUS,
		seq:    l.nextSeq,
		msg:    msg,
	}
	l.queue.push(ev)
	isEarliest := l.queue.peek() == ev
	l.mu.Unlock()

	// Only an event that became the new head can shorten the worker's
	// wait; anything later is covered by the existing deadline.
	if isEarliest {
		select {
		case l.wakeCh <- struct{}{}:
		default:
		}
	}
	return nil
}

// DroppedMessages returns the number of messages discarded because their
// target handler was unregistered or never existed. Silent drops are
// deliberate policy; the counter exists so they cannot mask bugs
// invisibly.
func (l *Looper) DroppedMessages() uint64 {
	return l.dropped.Load()
}

// loop is the worker goroutine body: a cooperative, synchronous dispatch
// loop between Start and Stop.
func (l *Looper) loop() {
	l.loopGID.Store(curGoroutineID())
	defer l.loopGID.Store(0)
	defer close(l.doneCh)

	logrus.WithFields(logrus.Fields{
		"function": "Looper.loop",
		"name":     l.name,
	}).Debug("Worker entering dispatch loop")
	close(l.startedCh)

	for {
		l.mu.Lock()
		if l.stopped {
			l.mu.Unlock()
			return
		}

		// The wait below is re-evaluated against the actual clock on
		// every wake, so a future event is never dispatched early even
		// under scheduling jitter.
		wait := time.Duration(-1)
		if l.queue.Len() > 0 {
			now := NowUS()
			next := l.queue.peek().whenUS
			if next <= now {
				ev := l.queue.pop()
				l.mu.Unlock()
				l.dispatch(ev)
				continue
			}
			wait = time.Duration(next-now) * time.Microsecond
		}
		l.mu.Unlock()

		if wait >= 0 {
			timer := time.NewTimer(wait)
			select {
			case <-l.stopCh:
				timer.Stop()
				return
			case <-l.wakeCh:
				timer.Stop()
			case <-timer.C:
			}
		} else {
			select {
			case <-l.stopCh:
				return
			case <-l.wakeCh:
			}
		}
	}
}

// dispatch delivers one event to its target handler, synchronously on the
// worker goroutine. A missing target is a silent drop, not an error.
func (l *Looper) dispatch(ev *event) {
	l.mu.Lock()
	handler, ok := l.handlers[ev.msg.Target()]
	l.mu.Unlock()

	if !ok {
		l.dropped.Add(1)
		logrus.WithFields(logrus.Fields{
			"function":   "Looper.dispatch",
			"name":       l.name,
			"handler_id": ev.msg.Target(),
			"what":       ev.msg.What(),
		}).Debug("Dropping message for unregistered handler")
		return
	}

	handler.OnMessageReceived(ev.msg)
}

// CreateReplyToken allocates a fresh token and records it in the looper's
// waiting set. The token is intended to be embedded in a message posted to
// a handler, with the creator blocking in AwaitResponse.
func (l *Looper) CreateReplyToken() (*ReplyToken, error) {
	l.mu.Lock()
	if l.stopped {
		l.mu.Unlock()
		return nil, ErrTerminated
	}
	l.nextToken++
	token := newReplyToken(l.nextToken)
	l.waiting[token.id] = token
	l.mu.Unlock()
	return token, nil
}

// AwaitResponse blocks until the token's reply arrives or the looper
// stops. See AwaitResponseTimeout for the deadline-bound variant.
func (l *Looper) AwaitResponse(token *ReplyToken) (*Message, error) {
	return l.awaitResponse(token, 0)
}

// AwaitResponseTimeout is AwaitResponse with a deadline. On expiry the
// token is removed from the waiting set, so a late PostReply finds no
// reader, and ErrTimeout is returned (distinct from ErrTerminated).
func (l *Looper) AwaitResponseTimeout(token *ReplyToken, timeout time.Duration) (*Message, error) {
	return l.awaitResponse(token, timeout)
}

func (l *Looper) awaitResponse(token *ReplyToken, timeout time.Duration) (*Message, error) {
	if token == nil {
		return nil, ErrInvalidToken
	}
	l.mu.Lock()
	_, known := l.waiting[token.id]
	l.mu.Unlock()
	if !known {
		return nil, ErrInvalidToken
	}

	// A wait on the worker goroutine can never be satisfied: the only
	// goroutine able to post the reply would be the one blocking.
	if gid := l.loopGID.Load(); gid != 0 && gid == curGoroutineID() {
		logrus.WithFields(logrus.Fields{
			"function": "Looper.AwaitResponse",
			"name":     l.name,
			"token_id": token.id,
		}).Error("AwaitResponse called from the looper's own goroutine")
		return nil, ErrSelfWait
	}

	var timeoutCh <-chan time.Time
	if timeout > 0 {
		timer := time.NewTimer(timeout)
		defer timer.Stop()
		timeoutCh = timer.C
	}

	select {
	case resp := <-token.replyCh:
		l.removeWaiter(token)
		return resp, nil

	case <-l.stopCh:
		// A reply that landed just before shutdown still wins.
		select {
		case resp := <-token.replyCh:
			l.removeWaiter(token)
			return resp, nil
		default:
		}
		l.removeWaiter(token)
		return nil, ErrTerminated

	case <-timeoutCh:
		token.cancel()
		// cancel loses to a reply delivered first; drain it if so.
		select {
		case resp := <-token.replyCh:
			l.removeWaiter(token)
			return resp, nil
		default:
		}
		l.removeWaiter(token)
		return nil, ErrTimeout
	}
}

// PostReply stores reply into the token and wakes the one waiter. Calling
// PostReply twice on one token is a programming error surfaced as
// ErrDoubleReply; a reply for a token whose waiter already gave up is
// reported as ErrTokenCanceled and delivered to no one.
func (l *Looper) PostReply(token *ReplyToken, reply *Message) error {
	if token == nil {
		return ErrInvalidToken
	}
	if err := token.deliver(reply); err != nil {
		fields := logrus.Fields{
			"function": "Looper.PostReply",
			"name":     l.name,
			"token_id": token.id,
		}
		if err == ErrDoubleReply {
			logrus.WithFields(fields).Error("PostReply called twice for one token")
		} else {
			logrus.WithFields(fields).Warn("Reply arrived after waiter abandoned token")
		}
		return err
	}
	return nil
}

func (l *Looper) removeWaiter(token *ReplyToken) {
	l.mu.Lock()
	delete(l.waiting, token.id)
	l.mu.Unlock()
}

// curGoroutineID extracts the current goroutine's id from the runtime
// stack header ("goroutine N [running]: ...").
func curGoroutineID() uint64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	var id uint64
	for i := len("goroutine "); i < n; i++ {
		if buf[i] < '0' || buf[i] > '9' {
			break
		}
		id = id*10 + uint64(buf[i]-'0')
	}
	return id
}
