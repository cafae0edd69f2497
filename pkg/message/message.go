// Package message defines the messages widgets emit in response to input and
// the queue that carries them from the event phase to the message phase of a
// frame.
package message

// Message is an application-defined notification. A message whose IsMessage
// reports false is the empty sentinel and is never queued.
type Message interface {
	IsMessage() bool
}

// None is the empty sentinel, for trees that never emit messages.
type None struct{}

// IsMessage reports false.
func (None) IsMessage() bool { return false }

// Empty reports whether m is nil or the empty sentinel.
func Empty(m Message) bool {
	return m == nil || !m.IsMessage()
}

// Queue is a FIFO of pending messages for one frame.
type Queue struct {
	items []Message
}

// NewQueue returns an empty queue.
func NewQueue() *Queue {
	return &Queue{}
}

// Push appends m unless it is empty.
func (q *Queue) Push(m Message) {
	if Empty(m) {
		return
	}
	q.items = append(q.items, m)
}

// Drain removes and returns every queued message in push order.
func (q *Queue) Drain() []Message {
	items := q.items
	q.items = nil
	return items
}

// Len returns the number of queued messages.
func (q *Queue) Len() int {
	return len(q.items)
}
