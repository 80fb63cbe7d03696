package looper

import "container/heap"

// event is the internal (timestamp, message) pair held in the scheduling
// queue. Ownership transfers atomically from the queue to the dispatch
// call; events are never shared.
type event struct {
	whenUS int64
	seq    uint64
	msg    *Message
}

// eventQueue is a min-heap ordered by whenUS ascending, with the insertion
// sequence number breaking ties so that equal timestamps dispatch in FIFO
// post order.
type eventQueue []*event

func (q eventQueue) Len() int { return len(q) }

func (q eventQueue) Less(i, j int) bool {
	if q[i].whenUS != q[j].whenUS {
		return q[i].whenUS < q[j].whenUS
	}
	return q[i].seq < q[j].seq
}

func (q eventQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *eventQueue) Push(x interface{}) {
	*q = append(*q, x.(*event))
}

func (q *eventQueue) Pop() interface{} {
	old := *q
	n := len(old)
	ev := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return ev
}

func (q eventQueue) peek() *event {
	return q[0]
}

func (q *eventQueue) push(ev *event) {
	heap.Push(q, ev)
}

func (q *eventQueue) pop() *event {
	return heap.Pop(q).(*event)
}
