package runner

import (
	"sync"
	"time"

	"github.com/cwbudde/algo-am/sim"
)

// DefaultDebounceDelay is the quiet period after the last edit before the
// parameters are submitted.
const DefaultDebounceDelay = 300 * time.Millisecond

// Submitter accepts parameter sets. *Runner implements it.
type Submitter interface {
	Submit(p sim.Params) (Handle, error)
}

// Debouncer coalesces rapid parameter edits. Each Update restarts the delay
// and only the most recent parameters are submitted once it expires.
type Debouncer struct {
	target   Submitter
	delay    time.Duration
	onSubmit func(Handle)
	onError  func(error)

	mu      sync.Mutex
	timer   *time.Timer
	pending sim.Params
	dirty   bool
}

// DebounceOption configures a Debouncer.
type DebounceOption func(*Debouncer)

// OnSubmit is called with the handle of every accepted submission.
func OnSubmit(fn func(Handle)) DebounceOption {
	return func(d *Debouncer) { d.onSubmit = fn }
}

// OnError is called when the target refuses a submission, for example with
// ErrBusy or a validation error.
func OnError(fn func(error)) DebounceOption {
	return func(d *Debouncer) { d.onError = fn }
}

// NewDebouncer returns a Debouncer in front of target. A non-positive delay
// selects DefaultDebounceDelay.
func NewDebouncer(target Submitter, delay time.Duration, opts ...DebounceOption) *Debouncer {
	if delay <= 0 {
		delay = DefaultDebounceDelay
	}
	d := &Debouncer{target: target, delay: delay}
	for _, opt := range opts {
		if opt != nil {
			opt(d)
		}
	}
	return d
}

// Update records p and restarts the delay.
func (d *Debouncer) Update(p sim.Params) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.pending = p
	d.dirty = true
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, d.fire)
}

// Flush submits pending parameters immediately.
func (d *Debouncer) Flush() {
	d.mu.Lock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.mu.Unlock()
	d.fire()
}

// Stop discards pending parameters. It reports whether any were pending.
func (d *Debouncer) Stop() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	had := d.dirty
	d.dirty = false
	return had
}

func (d *Debouncer) fire() {
	d.mu.Lock()
	if !d.dirty {
		d.mu.Unlock()
		return
	}
	p := d.pending
	d.dirty = false
	d.mu.Unlock()

	h, err := d.target.Submit(p)
	if err != nil {
		if d.onError != nil {
			d.onError(err)
		}
		return
	}
	if d.onSubmit != nil {
		d.onSubmit(h)
	}
}
