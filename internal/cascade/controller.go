package cascade

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/reshuffle/admin/internal/debounce"
	"github.com/reshuffle/admin/internal/pkg/clock"
	"github.com/reshuffle/admin/internal/validation"
)

var (
	// ErrSuperseded is returned by Load when a newer fetch started before
	// this one finished. Its response is discarded.
	ErrSuperseded = errors.New("superseded by a newer request")

	// ErrNoPayload is returned by FieldChanged before the first successful
	// fetch. The value is still recorded.
	ErrNoPayload = errors.New("no validation payload loaded yet")

	// ErrClosed is returned by Load once the controller has been closed.
	ErrClosed = errors.New("controller closed")
)

// Controller keeps one form's dependent fields in sync with its parent
// field. It is safe for concurrent use.
type Controller[P any] struct {
	name      string
	fetch     func(ctx context.Context, parent string) (*P, error)
	recompute func(p *P, parent string, v Values) []FieldState
	form      Form
	logger    *slog.Logger
	debouncer *debounce.Debouncer[string]

	base context.Context
	stop context.CancelFunc

	mu       sync.Mutex
	parent   string
	values   Values
	payload  *P
	seq      uint64
	inFlight context.CancelFunc
	closed   bool
}

// PartController drives the part form (parent: subject).
type PartController = Controller[validation.PartPayload]

// TaskController drives the task form (parent: part).
type TaskController = Controller[validation.TaskPayload]

// ControllerOption configures a Controller.
type ControllerOption func(*options)

type options struct {
	clock    clock.Clock
	debounce time.Duration
	logger   *slog.Logger
}

// WithClock sets the clock used for debouncing.
func WithClock(c clock.Clock) ControllerOption {
	return func(o *options) { o.clock = c }
}

// WithDebounce sets the quiet window for parent changes.
func WithDebounce(d time.Duration) ControllerOption {
	return func(o *options) { o.debounce = d }
}

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(l *slog.Logger) ControllerOption {
	return func(o *options) { o.logger = l }
}

// NewPart creates a controller for the part form. partID is the part
// being edited, or "" when adding a new one.
func NewPart(f validation.Fetcher, form Form, partID string, opts ...ControllerOption) *PartController {
	fetch := func(ctx context.Context, subject string) (*validation.PartPayload, error) {
		return f.FetchPart(ctx, validation.PartQuery{SubjectID: subject, PartID: partID})
	}
	return newController(validation.EndpointPart, fetch, RecomputePart, form, opts)
}

// NewTask creates a controller for the task form.
func NewTask(f validation.Fetcher, form Form, opts ...ControllerOption) *TaskController {
	fetch := func(ctx context.Context, part string) (*validation.TaskPayload, error) {
		return f.FetchTask(ctx, validation.TaskQuery{PartID: part})
	}
	return newController(validation.EndpointTask, fetch, RecomputeTask, form, opts)
}

func newController[P any](
	name string,
	fetch func(context.Context, string) (*P, error),
	recompute func(*P, string, Values) []FieldState,
	form Form,
	opts []ControllerOption,
) *Controller[P] {
	o := options{clock: clock.New(), debounce: debounce.DefaultWait}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}

	base, stop := context.WithCancel(context.Background())
	c := &Controller[P]{
		name:      name,
		fetch:     fetch,
		recompute: recompute,
		form:      form,
		logger:    o.logger.With("form", name),
		base:      base,
		stop:      stop,
		values:    Values{},
	}
	c.debouncer = debounce.New(o.debounce, func(parent string) {
		// Failures are logged inside refresh.
		_ = c.refresh(c.base, parent)
	}, debounce.WithClock(o.clock))
	return c
}

// Seed sets the initial field values, e.g. those of the record being edited.
func (c *Controller[P]) Seed(v Values) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.values = v.Clone()
}

// Load fetches the payload for parent immediately and applies the result.
// It is used on page load.
func (c *Controller[P]) Load(ctx context.Context, parent string) error {
	return c.refresh(ctx, parent)
}

// ParentChanged schedules a fetch for parent once changes stop arriving for
// the debounce window. Only the last value of a burst is fetched.
func (c *Controller[P]) ParentChanged(parent string) {
	c.debouncer.Call(parent)
}

// FlushParent fetches a pending parent change now instead of at the end of
// the debounce window.
func (c *Controller[P]) FlushParent() {
	c.debouncer.Flush()
}

// FieldChanged records a new value for id and recomputes the chain from the
// cached payload without fetching.
func (c *Controller[P]) FieldChanged(id FieldID, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.values[id] = value
	if c.payload == nil {
		return ErrNoPayload
	}
	c.form.Apply(c.snapshotLocked())
	return nil
}

// Snapshot returns the current derived state, if a payload has been loaded.
func (c *Controller[P]) Snapshot() (Snapshot, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.payload == nil {
		return Snapshot{}, false
	}
	return c.snapshotLocked(), true
}

// Close drops any pending debounced fetch and cancels the one in flight.
// A response arriving after Close is never applied.
func (c *Controller[P]) Close() {
	c.debouncer.Stop()
	c.stop()

	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	c.seq++
	if c.inFlight != nil {
		c.inFlight()
		c.inFlight = nil
	}
}

// refresh fetches the payload for parent. A response is only applied if no
// newer refresh started meanwhile; starting a refresh cancels the previous
// one. On failure the prior state is left untouched.
func (c *Controller[P]) refresh(ctx context.Context, parent string) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	c.seq++
	token := c.seq
	if c.inFlight != nil {
		c.inFlight()
	}
	fctx, cancel := context.WithCancel(ctx)
	c.inFlight = cancel
	c.mu.Unlock()
	defer cancel()

	p, err := c.fetch(fctx, parent)

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return ErrClosed
	}
	if token != c.seq {
		c.logger.Debug("discarding stale validation response", "parent", parent, "token", token)
		return ErrSuperseded
	}
	c.inFlight = nil

	if err != nil {
		c.logger.Error("validation fetch failed", "parent", parent, "error", err)
		return err
	}

	c.parent = parent
	c.payload = p
	c.form.Apply(c.snapshotLocked())
	return nil
}

// snapshotLocked recomputes every field and writes clamped values back.
func (c *Controller[P]) snapshotLocked() Snapshot {
	fields := c.recompute(c.payload, c.parent, c.values)
	for _, f := range fields {
		c.values[f.ID] = f.Value
	}
	return Snapshot{Parent: c.parent, Fields: fields}
}
