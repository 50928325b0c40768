package contactform

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type fakeRelay struct {
	mu    sync.Mutex
	calls []FormData
	err   error
	// gate, when set, blocks Send until closed.
	gate    chan struct{}
	started chan struct{}
}

func (r *fakeRelay) Send(ctx context.Context, data FormData) error {
	r.mu.Lock()
	r.calls = append(r.calls, data)
	gate, started, err := r.gate, r.started, r.err
	r.mu.Unlock()
	if started != nil {
		started <- struct{}{}
	}
	if gate != nil {
		<-gate
	}
	return err
}

func (r *fakeRelay) callCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.calls)
}

type panicRelay struct{}

func (panicRelay) Send(context.Context, FormData) error {
	panic("socket exploded")
}

type fakeTimer struct {
	scheduler *fakeScheduler
	delay     time.Duration
	fn        func()
	stopped   bool
}

func (t *fakeTimer) Stop() bool {
	t.scheduler.mu.Lock()
	defer t.scheduler.mu.Unlock()
	wasActive := !t.stopped
	t.stopped = true
	return wasActive
}

type fakeScheduler struct {
	mu     sync.Mutex
	timers []*fakeTimer
}

func (s *fakeScheduler) AfterFunc(d time.Duration, f func()) Timer {
	s.mu.Lock()
	defer s.mu.Unlock()
	timer := &fakeTimer{scheduler: s, delay: d, fn: f}
	s.timers = append(s.timers, timer)
	return timer
}

// fireAll runs every armed callback, including stopped ones, to mimic a
// timer that raced with Stop.
func (s *fakeScheduler) fireAll() {
	s.mu.Lock()
	timers := append([]*fakeTimer(nil), s.timers...)
	s.mu.Unlock()
	for _, timer := range timers {
		timer.fn()
	}
}

func (s *fakeScheduler) last() *fakeTimer {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.timers) == 0 {
		return nil
	}
	return s.timers[len(s.timers)-1]
}

var janeDoe = FormData{
	Name:    "Jane Doe",
	Email:   "jane@x.com",
	Phone:   "+971500000000",
	Message: "Need VAT help",
}

func fill(t *testing.T, c *Controller, data FormData) {
	t.Helper()
	for _, field := range Fields() {
		if err := c.Edit(field, data.Value(field)); err != nil {
			t.Fatalf("Edit(%s) error = %v", field, err)
		}
	}
}

type statusRecorder struct {
	mu       sync.Mutex
	statuses []Status
}

func (r *statusRecorder) record(s Status) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.statuses = append(r.statuses, s)
}

func (r *statusRecorder) sequence() []Status {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Status{StatusIdle}, r.statuses...)
}

func TestNewControllerIsIdleAndEmpty(t *testing.T) {
	t.Parallel()

	view := New(&fakeRelay{}).Snapshot()
	want := View{Status: StatusIdle, SubmitLabel: "Submit Request"}
	if diff := cmp.Diff(want, view); diff != "" {
		t.Fatalf("Snapshot() mismatch (-want +got):\n%s", diff)
	}
}

func TestEditUpdatesOnlyNamedField(t *testing.T) {
	t.Parallel()

	c := New(&fakeRelay{})
	fill(t, c, janeDoe)
	if err := c.Edit(FieldPhone, "+971 55 000 0000"); err != nil {
		t.Fatalf("Edit() error = %v", err)
	}
	want := janeDoe
	want.Phone = "+971 55 000 0000"
	view := c.Snapshot()
	if diff := cmp.Diff(want, view.Fields); diff != "" {
		t.Fatalf("fields mismatch (-want +got):\n%s", diff)
	}
	if view.Status != StatusIdle {
		t.Fatalf("Status = %s, want idle", view.Status)
	}
}

func TestEditRejectsUnknownField(t *testing.T) {
	t.Parallel()

	c := New(&fakeRelay{})
	if err := c.Edit(Field("company"), "Acme"); !errors.Is(err, ErrUnknownField) {
		t.Fatalf("Edit() error = %v, want ErrUnknownField", err)
	}
}

func TestSubmitWithEmptyFieldIsGated(t *testing.T) {
	t.Parallel()

	for _, missing := range Fields() {
		t.Run(string(missing), func(t *testing.T) {
			t.Parallel()

			relay := &fakeRelay{}
			recorder := &statusRecorder{}
			c := New(relay, WithStatusHook(recorder.record))
			fill(t, c, janeDoe)
			if err := c.Edit(missing, ""); err != nil {
				t.Fatalf("Edit() error = %v", err)
			}

			err := c.Submit(context.Background())
			var incomplete *IncompleteError
			if !errors.As(err, &incomplete) {
				t.Fatalf("Submit() error = %v, want *IncompleteError", err)
			}
			if diff := cmp.Diff([]Field{missing}, incomplete.Missing); diff != "" {
				t.Fatalf("missing fields mismatch (-want +got):\n%s", diff)
			}
			if relay.callCount() != 0 {
				t.Fatalf("relay calls = %d, want 0", relay.callCount())
			}
			if c.Status() != StatusIdle {
				t.Fatalf("Status = %s, want idle", c.Status())
			}
			if len(recorder.statuses) != 0 {
				t.Fatalf("status changes = %v, want none", recorder.statuses)
			}
		})
	}
}

func TestSubmitWithAllFieldsEmptyListsEveryField(t *testing.T) {
	t.Parallel()

	err := New(&fakeRelay{}).Submit(context.Background())
	var incomplete *IncompleteError
	if !errors.As(err, &incomplete) {
		t.Fatalf("Submit() error = %v, want *IncompleteError", err)
	}
	if diff := cmp.Diff(Fields(), incomplete.Missing); diff != "" {
		t.Fatalf("missing fields mismatch (-want +got):\n%s", diff)
	}
}

func TestSubmitSuccessClearsFieldsAndResetsAfterDelay(t *testing.T) {
	t.Parallel()

	relay := &fakeRelay{}
	scheduler := &fakeScheduler{}
	recorder := &statusRecorder{}
	c := New(relay, WithScheduler(scheduler), WithStatusHook(recorder.record))
	fill(t, c, janeDoe)

	if err := c.Submit(context.Background()); err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	if relay.callCount() != 1 {
		t.Fatalf("relay calls = %d, want 1", relay.callCount())
	}
	if diff := cmp.Diff(janeDoe, relay.calls[0]); diff != "" {
		t.Fatalf("relay payload mismatch (-want +got):\n%s", diff)
	}

	view := c.Snapshot()
	if view.Status != StatusSuccess {
		t.Fatalf("Status = %s, want success", view.Status)
	}
	if view.Fields != (FormData{}) {
		t.Fatalf("Fields = %+v, want empty", view.Fields)
	}
	timer := scheduler.last()
	if timer == nil || timer.delay != 5*time.Second {
		t.Fatalf("reset timer = %+v, want 5s", timer)
	}

	scheduler.fireAll()

	view = c.Snapshot()
	if view.Status != StatusIdle {
		t.Fatalf("Status after reset = %s, want idle", view.Status)
	}
	if view.Fields != (FormData{}) {
		t.Fatalf("Fields after reset = %+v, want empty", view.Fields)
	}
	want := []Status{StatusIdle, StatusSubmitting, StatusSuccess, StatusIdle}
	if diff := cmp.Diff(want, recorder.sequence()); diff != "" {
		t.Fatalf("status sequence mismatch (-want +got):\n%s", diff)
	}
}

func TestSubmitFailurePreservesFieldsAndShowsError(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zap.ErrorLevel)
	relay := &fakeRelay{err: errors.New("dial tcp: network is unreachable")}
	scheduler := &fakeScheduler{}
	recorder := &statusRecorder{}
	c := New(relay, WithScheduler(scheduler), WithStatusHook(recorder.record), WithLogger(zap.New(core)))
	fill(t, c, janeDoe)

	if err := c.Submit(context.Background()); err != nil {
		t.Fatalf("Submit() error = %v, want nil", err)
	}

	view := c.Snapshot()
	if view.Status != StatusError {
		t.Fatalf("Status = %s, want error", view.Status)
	}
	if diff := cmp.Diff(janeDoe, view.Fields); diff != "" {
		t.Fatalf("fields mismatch (-want +got):\n%s", diff)
	}
	if !view.ErrorVisible || view.ErrorMessage != ErrorMessage {
		t.Fatalf("error view = %+v", view)
	}
	if scheduler.last() != nil {
		t.Fatal("failure must not arm the reset timer")
	}
	want := []Status{StatusIdle, StatusSubmitting, StatusError}
	if diff := cmp.Diff(want, recorder.sequence()); diff != "" {
		t.Fatalf("status sequence mismatch (-want +got):\n%s", diff)
	}
	if logs.Len() != 1 {
		t.Fatalf("error log entries = %d, want 1", logs.Len())
	}
}

func TestSubmitRelayPanicBecomesError(t *testing.T) {
	t.Parallel()

	c := New(panicRelay{})
	fill(t, c, janeDoe)
	if err := c.Submit(context.Background()); err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	if c.Status() != StatusError {
		t.Fatalf("Status = %s, want error", c.Status())
	}
}

func TestEditDuringErrorKeepsMessageUntilResubmit(t *testing.T) {
	t.Parallel()

	relay := &fakeRelay{err: errors.New("502")}
	c := New(relay, WithScheduler(&fakeScheduler{}))
	fill(t, c, janeDoe)
	_ = c.Submit(context.Background())

	if err := c.Edit(FieldMessage, "Need VAT and audit help"); err != nil {
		t.Fatalf("Edit() error = %v", err)
	}
	view := c.Snapshot()
	if view.Status != StatusError || !view.ErrorVisible {
		t.Fatalf("view after edit = %+v, want error still visible", view)
	}
	if view.Fields.Message != "Need VAT and audit help" || view.Fields.Name != "Jane Doe" {
		t.Fatalf("fields after edit = %+v", view.Fields)
	}

	relay.mu.Lock()
	relay.err = nil
	relay.mu.Unlock()
	if err := c.Submit(context.Background()); err != nil {
		t.Fatalf("resubmit error = %v", err)
	}
	if c.Status() != StatusSuccess {
		t.Fatalf("Status after resubmit = %s, want success", c.Status())
	}
	if relay.callCount() != 2 {
		t.Fatalf("relay calls = %d, want 2", relay.callCount())
	}
	if got := relay.calls[1].Message; got != "Need VAT and audit help" {
		t.Fatalf("resubmitted message = %q", got)
	}
}

func TestSubmitWhileInFlightIssuesNoSecondRequest(t *testing.T) {
	t.Parallel()

	relay := &fakeRelay{gate: make(chan struct{}), started: make(chan struct{}, 1)}
	c := New(relay, WithScheduler(&fakeScheduler{}))
	fill(t, c, janeDoe)

	done := make(chan error, 1)
	go func() {
		done <- c.Submit(context.Background())
	}()
	<-relay.started

	view := c.Snapshot()
	if view.Status != StatusSubmitting || !view.SubmitDisabled || view.SubmitLabel != "Sending..." {
		t.Fatalf("in-flight view = %+v", view)
	}
	if err := c.Submit(context.Background()); !errors.Is(err, ErrSubmitInFlight) {
		t.Fatalf("second Submit() error = %v, want ErrSubmitInFlight", err)
	}
	if err := c.Edit(FieldName, "Someone Else"); !errors.Is(err, ErrSubmitInFlight) {
		t.Fatalf("Edit() during flight error = %v, want ErrSubmitInFlight", err)
	}

	close(relay.gate)
	if err := <-done; err != nil {
		t.Fatalf("first Submit() error = %v", err)
	}
	if relay.callCount() != 1 {
		t.Fatalf("relay calls = %d, want 1", relay.callCount())
	}
}

func TestSubmitDuringSuccessIsUnavailable(t *testing.T) {
	t.Parallel()

	relay := &fakeRelay{}
	c := New(relay, WithScheduler(&fakeScheduler{}))
	fill(t, c, janeDoe)
	_ = c.Submit(context.Background())

	if err := c.Submit(context.Background()); !errors.Is(err, ErrSubmitUnavailable) {
		t.Fatalf("Submit() error = %v, want ErrSubmitUnavailable", err)
	}
	if relay.callCount() != 1 {
		t.Fatalf("relay calls = %d, want 1", relay.callCount())
	}
}

func TestEditDuringSuccessIsRefusedAndResetStaysEmpty(t *testing.T) {
	t.Parallel()

	scheduler := &fakeScheduler{}
	c := New(&fakeRelay{}, WithScheduler(scheduler))
	fill(t, c, janeDoe)
	if err := c.Submit(context.Background()); err != nil {
		t.Fatalf("Submit() error = %v", err)
	}

	for _, field := range Fields() {
		if err := c.Edit(field, janeDoe.Value(field)); !errors.Is(err, ErrSubmitUnavailable) {
			t.Fatalf("Edit(%s) during success error = %v, want ErrSubmitUnavailable", field, err)
		}
	}
	if got := c.Snapshot().Fields; got != (FormData{}) {
		t.Fatalf("Fields during success = %+v, want empty", got)
	}

	scheduler.fireAll()

	view := c.Snapshot()
	if view.Status != StatusIdle {
		t.Fatalf("Status after reset = %s, want idle", view.Status)
	}
	if view.Fields != (FormData{}) {
		t.Fatalf("Fields after reset = %+v, want empty", view.Fields)
	}
	if err := c.Edit(FieldName, "Jane Doe"); err != nil {
		t.Fatalf("Edit() after reset error = %v", err)
	}
}

func TestCloseCancelsPendingReset(t *testing.T) {
	t.Parallel()

	scheduler := &fakeScheduler{}
	recorder := &statusRecorder{}
	c := New(&fakeRelay{}, WithScheduler(scheduler), WithStatusHook(recorder.record))
	fill(t, c, janeDoe)
	_ = c.Submit(context.Background())

	c.Close()
	timer := scheduler.last()
	if timer == nil || !timer.stopped {
		t.Fatal("Close() should stop the reset timer")
	}

	// A timer that already fired before Stop took effect must not apply.
	scheduler.fireAll()
	if c.Status() != StatusSuccess {
		t.Fatalf("Status after stale reset = %s, want success", c.Status())
	}
	want := []Status{StatusIdle, StatusSubmitting, StatusSuccess}
	if diff := cmp.Diff(want, recorder.sequence()); diff != "" {
		t.Fatalf("status sequence mismatch (-want +got):\n%s", diff)
	}
	if err := c.Edit(FieldName, "x"); !errors.Is(err, ErrClosed) {
		t.Fatalf("Edit() after Close error = %v, want ErrClosed", err)
	}
	if err := c.Submit(context.Background()); !errors.Is(err, ErrClosed) {
		t.Fatalf("Submit() after Close error = %v, want ErrClosed", err)
	}
}

func TestCloseDuringFlightDiscardsOutcome(t *testing.T) {
	t.Parallel()

	relay := &fakeRelay{gate: make(chan struct{}), started: make(chan struct{}, 1)}
	scheduler := &fakeScheduler{}
	c := New(relay, WithScheduler(scheduler))
	fill(t, c, janeDoe)

	done := make(chan error, 1)
	go func() {
		done <- c.Submit(context.Background())
	}()
	<-relay.started
	c.Close()
	close(relay.gate)

	if err := <-done; !errors.Is(err, ErrClosed) {
		t.Fatalf("Submit() error = %v, want ErrClosed", err)
	}
	if scheduler.last() != nil {
		t.Fatal("closed controller must not arm a reset")
	}
	if c.Snapshot().Status != StatusSubmitting {
		t.Fatalf("Status = %s, want untouched submitting", c.Snapshot().Status)
	}
}

func TestWallClockResetUsesConfiguredDelay(t *testing.T) {
	t.Parallel()

	reset := make(chan Status, 4)
	c := New(&fakeRelay{}, WithResetDelay(10*time.Millisecond), WithStatusHook(func(s Status) { reset <- s }))
	fill(t, c, janeDoe)
	if err := c.Submit(context.Background()); err != nil {
		t.Fatalf("Submit() error = %v", err)
	}

	deadline := time.After(2 * time.Second)
	for {
		select {
		case s := <-reset:
			if s == StatusIdle {
				if c.Status() != StatusIdle {
					t.Fatalf("Status = %s, want idle", c.Status())
				}
				return
			}
		case <-deadline:
			t.Fatal("timed out waiting for reset to idle")
		}
	}
}

func TestSubmitWithoutRelayFails(t *testing.T) {
	t.Parallel()

	c := New(nil)
	fill(t, c, janeDoe)
	if err := c.Submit(context.Background()); err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	if c.Status() != StatusError {
		t.Fatalf("Status = %s, want error", c.Status())
	}
}
