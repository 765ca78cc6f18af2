// Package debounce coalesces bursts of calls into a single invocation.
package debounce

import (
	"sync"
	"time"

	"github.com/reshuffle/admin/internal/pkg/clock"
)

// DefaultWait is the quiet window used by the form controllers.
const DefaultWait = 100 * time.Millisecond

// Debouncer delays fn until no Call has arrived for the wait window, then
// invokes it once with the most recent argument.
type Debouncer[T any] struct {
	mu      sync.Mutex
	clock   clock.Clock
	wait    time.Duration
	fn      func(T)
	timer   clock.Timer
	gen     uint64
	pending bool
	last    T
}

// Option configures a Debouncer.
type Option func(*options)

type options struct {
	clock clock.Clock
}

// WithClock overrides the clock used for scheduling.
func WithClock(c clock.Clock) Option {
	return func(o *options) { o.clock = c }
}

// New creates a Debouncer around fn. A non-positive wait uses DefaultWait.
func New[T any](wait time.Duration, fn func(T), opts ...Option) *Debouncer[T] {
	o := options{clock: clock.New()}
	for _, opt := range opts {
		opt(&o)
	}
	if wait <= 0 {
		wait = DefaultWait
	}
	return &Debouncer[T]{clock: o.clock, wait: wait, fn: fn}
}

// Call records arg and restarts the quiet window.
func (d *Debouncer[T]) Call(arg T) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.gen++
	d.last = arg
	d.pending = true

	gen := d.gen
	d.timer = d.clock.AfterFunc(d.wait, func() { d.fire(gen) })
}

// fire runs fn if no newer Call superseded the timer that scheduled it.
func (d *Debouncer[T]) fire(gen uint64) {
	d.mu.Lock()
	if gen != d.gen || !d.pending {
		d.mu.Unlock()
		return
	}
	arg := d.last
	d.pending = false
	d.timer = nil
	d.mu.Unlock()

	d.fn(arg)
}

// Flush invokes fn immediately with the pending argument, if any.
func (d *Debouncer[T]) Flush() {
	d.mu.Lock()
	if !d.pending {
		d.mu.Unlock()
		return
	}
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.gen++
	arg := d.last
	d.pending = false
	d.mu.Unlock()

	d.fn(arg)
}

// Stop discards any pending call.
func (d *Debouncer[T]) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.gen++
	d.pending = false
}

// Pending reports whether a call is waiting for the quiet window to elapse.
func (d *Debouncer[T]) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pending
}
