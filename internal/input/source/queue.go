package source

import (
	"sync"

	"github.com/dshills/chord/internal/renderer/backend"
)

// DefaultQueueSize is the queue capacity used when none is configured.
const DefaultQueueSize = 256

// Queue is a single-producer single-consumer event queue.
type Queue struct {
	events chan backend.Event
	done   chan struct{}
	once   sync.Once
}

// NewQueue creates a queue holding up to size events.
func NewQueue(size int) *Queue {
	if size <= 0 {
		size = DefaultQueueSize
	}
	return &Queue{
		events: make(chan backend.Event, size),
		done:   make(chan struct{}),
	}
}

// Push enqueues ev, waiting for room when the queue is full.
// It returns false once the queue has been closed.
func (q *Queue) Push(ev backend.Event) bool {
	select {
	case <-q.done:
		return false
	default:
	}

	select {
	case q.events <- ev:
		return true
	case <-q.done:
		return false
	}
}

// TryPop returns the oldest event without blocking.
func (q *Queue) TryPop() (backend.Event, bool) {
	select {
	case ev := <-q.events:
		return ev, true
	default:
		return backend.Event{}, false
	}
}

// Close signals the producer to stop. It is safe to call more than once.
func (q *Queue) Close() {
	q.once.Do(func() { close(q.done) })
}

// Closed reports whether Close has been called.
func (q *Queue) Closed() bool {
	select {
	case <-q.done:
		return true
	default:
		return false
	}
}

// Len returns the number of buffered events.
func (q *Queue) Len() int {
	return len(q.events)
}
