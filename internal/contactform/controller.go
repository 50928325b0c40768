package contactform

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
)

// DefaultResetDelay is how long the success panel stays before the form
// returns to idle.
const DefaultResetDelay = 5 * time.Second

// ErrorMessage is shown inline when a submission fails.
const ErrorMessage = "Something went wrong. Please try again or email us directly."

const (
	submitLabel     = "Submit Request"
	submittingLabel = "Sending..."
)

var (
	// ErrSubmitInFlight is returned while a submission request is outstanding.
	ErrSubmitInFlight = errors.New("contact form: submission in flight")
	// ErrSubmitUnavailable is returned by Submit and Edit while the success
	// panel is showing.
	ErrSubmitUnavailable = errors.New("contact form: submit unavailable until reset")
	// ErrUnknownField is returned when editing a field the form does not have.
	ErrUnknownField = errors.New("contact form: unknown field")
	// ErrClosed is returned once the view owning the controller is gone.
	ErrClosed = errors.New("contact form: closed")
)

// Relay delivers a submitted form to the external endpoint. A nil error
// means the endpoint answered affirmatively.
type Relay interface {
	Send(ctx context.Context, data FormData) error
}

// Timer is a pending scheduled callback.
type Timer interface {
	Stop() bool
}

// Scheduler arms delayed callbacks.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type wallClock struct{}

func (wallClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// Option configures a Controller.
type Option func(*Controller)

// WithScheduler replaces the wall-clock scheduler.
func WithScheduler(s Scheduler) Option {
	return func(c *Controller) {
		if s != nil {
			c.scheduler = s
		}
	}
}

// WithResetDelay overrides DefaultResetDelay.
func WithResetDelay(d time.Duration) Option {
	return func(c *Controller) {
		if d > 0 {
			c.resetDelay = d
		}
	}
}

// WithLogger sets the diagnostic logger.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithStatusHook registers a callback invoked after every status change,
// outside the controller lock.
func WithStatusHook(hook func(Status)) Option {
	return func(c *Controller) {
		c.hook = hook
	}
}

// View is a render-ready snapshot of the controller.
type View struct {
	Status         Status
	Fields         FormData
	ErrorVisible   bool
	ErrorMessage   string
	SubmitDisabled bool
	SubmitLabel    string
}

// Controller owns the form fields and submission status of one view.
type Controller struct {
	relay      Relay
	scheduler  Scheduler
	resetDelay time.Duration
	logger     *zap.Logger
	hook       func(Status)

	mu         sync.Mutex
	data       FormData
	status     Status
	resetTimer Timer
	generation uint64
	closed     bool
	pending    []Status
}

// New returns an idle controller with empty fields.
func New(relay Relay, opts ...Option) *Controller {
	c := &Controller{
		relay:      relay,
		scheduler:  wallClock{},
		resetDelay: DefaultResetDelay,
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

// Status returns the current submission status.
func (c *Controller) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}

// Snapshot returns the render state.
func (c *Controller) Snapshot() View {
	c.mu.Lock()
	defer c.mu.Unlock()
	view := View{
		Status:         c.status,
		Fields:         c.data,
		ErrorVisible:   c.status == StatusError,
		SubmitDisabled: c.status == StatusSubmitting,
		SubmitLabel:    submitLabel,
	}
	if view.ErrorVisible {
		view.ErrorMessage = ErrorMessage
	}
	if view.SubmitDisabled {
		view.SubmitLabel = submittingLabel
	}
	return view
}

// Edit sets one field. The status, other fields, and any visible error
// message are left unchanged. Edits are refused while the success panel is
// showing so the form returns to idle empty.
func (c *Controller) Edit(field Field, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrClosed
	}
	switch c.status {
	case StatusSubmitting:
		return ErrSubmitInFlight
	case StatusSuccess:
		return ErrSubmitUnavailable
	}
	if !c.data.set(field, value) {
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	return nil
}

// Submit sends the current fields to the relay.
//
// A failed delivery is not returned as an error: it moves the form to
// StatusError and keeps the fields for a retry. Errors are returned only when
// the submit is refused before any request is made (in flight, success panel
// showing, closed, or required fields empty), or when the view was closed
// while the request was outstanding.
func (c *Controller) Submit(ctx context.Context) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	switch c.status {
	case StatusSubmitting:
		c.mu.Unlock()
		return ErrSubmitInFlight
	case StatusSuccess:
		c.mu.Unlock()
		return ErrSubmitUnavailable
	}
	if err := CheckRequired(c.data); err != nil {
		c.mu.Unlock()
		return err
	}
	payload := c.data
	c.transitionLocked(StatusSubmitting)
	c.unlockAndNotify()

	sendErr := c.send(ctx, payload)

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	if sendErr != nil {
		c.logger.Error("contact form submission failed", zap.Error(sendErr))
		c.transitionLocked(StatusError)
		c.unlockAndNotify()
		return nil
	}
	c.data = FormData{}
	c.transitionLocked(StatusSuccess)
	c.armResetLocked()
	c.unlockAndNotify()
	return nil
}

// Close ends the view. A pending success reset is cancelled and any later
// firing of it is ignored.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	c.generation++
	if c.resetTimer != nil {
		c.resetTimer.Stop()
		c.resetTimer = nil
	}
	c.pending = nil
}

// Closed reports whether Close has been called.
func (c *Controller) Closed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

func (c *Controller) send(ctx context.Context, payload FormData) (err error) {
	if c.relay == nil {
		return errors.New("contact form relay is not configured")
	}
	defer func() {
		if recovered := recover(); recovered != nil {
			err = fmt.Errorf("relay panic: %v", recovered)
		}
	}()
	return c.relay.Send(ctx, payload)
}

func (c *Controller) armResetLocked() {
	c.generation++
	generation := c.generation
	c.resetTimer = c.scheduler.AfterFunc(c.resetDelay, func() {
		c.reset(generation)
	})
}

func (c *Controller) reset(generation uint64) {
	c.mu.Lock()
	if c.closed || generation != c.generation || c.status != StatusSuccess {
		c.mu.Unlock()
		return
	}
	c.resetTimer = nil
	c.transitionLocked(StatusIdle)
	c.unlockAndNotify()
}

func (c *Controller) transitionLocked(next Status) {
	c.status = next
	if c.hook != nil {
		c.pending = append(c.pending, next)
	}
}

func (c *Controller) unlockAndNotify() {
	pending := c.pending
	c.pending = nil
	hook := c.hook
	c.mu.Unlock()
	if hook == nil {
		return
	}
	for _, status := range pending {
		hook(status)
	}
}
