package source

import (
	"time"

	"github.com/dshills/chord/internal/log"
	"github.com/dshills/chord/internal/renderer/backend"
)

// DefaultInterval is the polling interval used when none is configured.
const DefaultInterval = 10 * time.Millisecond

// Poller yields decoded terminal events. backend.Backend satisfies it.
type Poller interface {
	PollEvent(timeout time.Duration) (backend.Event, bool)
}

// Source polls a Poller and feeds a Queue.
type Source struct {
	poller   Poller
	queue    *Queue
	interval time.Duration
	logger   *log.Logger
	done     chan struct{}
}

// Option configures a Source.
type Option func(*Source)

// WithInterval sets the polling interval.
func WithInterval(d time.Duration) Option {
	return func(s *Source) {
		if d > 0 {
			s.interval = d
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *log.Logger) Option {
	return func(s *Source) {
		if l != nil {
			s.logger = l
		}
	}
}

// New creates a source reading from p into q.
func New(p Poller, q *Queue, opts ...Option) *Source {
	s := &Source{
		poller:   p,
		queue:    q,
		interval: DefaultInterval,
		logger:   log.Null(),
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.WithComponent("source")
	return s
}

// Run polls until the queue is closed. It returns after the first push
// that observes the closed queue, or at the next idle poll.
func (s *Source) Run() {
	defer close(s.done)

	for {
		if s.queue.Closed() {
			s.logger.Debug("queue closed, stopping")
			return
		}

		ev, ok := s.poller.PollEvent(s.interval)
		if !ok {
			time.Sleep(s.interval)
			continue
		}

		if !s.queue.Push(ev) {
			s.logger.Debug("push rejected, stopping")
			return
		}
	}
}

// Start runs the source on its own goroutine.
func (s *Source) Start() {
	go s.Run()
}

// Done is closed when Run returns.
func (s *Source) Done() <-chan struct{} {
	return s.done
}
