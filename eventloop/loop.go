// SPDX-License-Identifier: EPL-2.0

package eventloop

import (
	"container/heap"
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
)

type task struct {
	deadline time.Time
	seq      uint64
	fn       func()
}

// queue is a min-heap on (deadline, seq).
type queue []*task

func (q queue) Len() int { return len(q) }
func (q queue) Less(i, j int) bool {
	if q[i].deadline.Equal(q[j].deadline) {
		return q[i].seq < q[j].seq
	}

	return q[i].deadline.Before(q[j].deadline)
}
func (q queue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }
func (q *queue) Push(x any)   { *q = append(*q, x.(*task)) }
func (q *queue) Pop() any {
	old := *q
	t := old[len(old)-1]
	old[len(old)-1] = nil
	*q = old[:len(old)-1]

	return t
}

// Loop runs deferred tasks in deadline order.
type Loop struct {
	clock clock.Clock
	log   *slog.Logger

	mtx   sync.Mutex
	tasks queue
	seq   uint64
	wake  chan struct{}
}

type Option func(*Loop)

// WithClock replaces the wall clock, typically with clock.NewMock().
func WithClock(c clock.Clock) Option {
	return func(l *Loop) { l.clock = c }
}

func WithLogger(log *slog.Logger) Option {
	return func(l *Loop) { l.log = log }
}

func New(opts ...Option) *Loop {
	l := &Loop{
		clock: clock.New(),
		log:   slog.Default(),
		wake:  make(chan struct{}, 1),
	}

	for _, opt := range opts {
		opt(l)
	}

	l.log = l.log.With("component", "eventloop")

	return l
}

// Clock returns the clock deadlines are measured against.
func (l *Loop) Clock() clock.Clock { return l.clock }

// Post queues fn to run as soon as possible, after tasks already due.
func (l *Loop) Post(fn func()) { l.After(0, fn) }

// After queues fn to run once d has elapsed on the loop's clock.
func (l *Loop) After(d time.Duration, fn func()) {
	l.mtx.Lock()
	l.seq++
	heap.Push(&l.tasks, &task{
		deadline: l.clock.Now().Add(d),
		seq:      l.seq,
		fn:       fn,
	})
	l.mtx.Unlock()

	select {
	case l.wake <- struct{}{}:
	default:
	}
}

// Len is the number of pending tasks.
func (l *Loop) Len() int {
	l.mtx.Lock()
	defer l.mtx.Unlock()

	return len(l.tasks)
}

// RunDue runs every task whose deadline has passed, including tasks queued
// by those tasks if they are due too, and reports how many ran.
func (l *Loop) RunDue() int {
	ran := 0
	for {
		t := l.popDue()
		if t == nil {
			return ran
		}

		l.run(t)
		ran++
	}
}

// Run executes tasks as they fall due until ctx is done.
func (l *Loop) Run(ctx context.Context) error {
	for {
		l.RunDue()

		var timer *clock.Timer
		var fire <-chan time.Time

		if d, ok := l.nextDelay(); ok {
			timer = l.clock.Timer(d)
			fire = timer.C
		}

		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return ctx.Err()
		case <-l.wake:
		case <-fire:
		}

		if timer != nil {
			timer.Stop()
		}
	}
}

func (l *Loop) popDue() *task {
	l.mtx.Lock()
	defer l.mtx.Unlock()

	if len(l.tasks) == 0 || l.tasks[0].deadline.After(l.clock.Now()) {
		return nil
	}

	return heap.Pop(&l.tasks).(*task)
}

func (l *Loop) nextDelay() (time.Duration, bool) {
	l.mtx.Lock()
	defer l.mtx.Unlock()

	if len(l.tasks) == 0 {
		return 0, false
	}

	return max(l.tasks[0].deadline.Sub(l.clock.Now()), 0), true
}

func (l *Loop) run(t *task) {
	defer func() {
		if r := recover(); r != nil {
			l.log.Error("task panicked", "panic", r, "seq", t.seq)
		}
	}()

	t.fn()
}
