package runner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/cwbudde/algo-am/sim"
)

// DefaultPollInterval is the period at which Wait polls for a result.
const DefaultPollInterval = 100 * time.Millisecond

var (
	// ErrBusy is returned by Submit while a run is in flight or its result
	// has not been collected.
	ErrBusy = errors.New("runner: simulation in progress")
	// ErrUnknownHandle is returned for handles this Runner did not issue or
	// no longer tracks.
	ErrUnknownHandle = errors.New("runner: unknown handle")
)

// Handle identifies one submitted run.
type Handle uuid.UUID

func (h Handle) String() string { return uuid.UUID(h).String() }

// State is the lifecycle position of a run.
type State int

const (
	Pending State = iota + 1
	Done
	Failed
)

func (s State) String() string {
	switch s {
	case Pending:
		return "pending"
	case Done:
		return "done"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Status is the observed state of a run. Result is set for Done, Err for
// Failed.
type Status struct {
	State  State
	Result *sim.Result
	Err    error
}

// RunFunc executes one simulation. sim.Run is the default.
type RunFunc func(p sim.Params, opts ...sim.Option) (*sim.Result, error)

// Option configures a Runner.
type Option func(*Runner)

// WithLogger sets the structured logger. The default is slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(r *Runner) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithMetrics records run statistics into m.
func WithMetrics(m *Metrics) Option {
	return func(r *Runner) { r.metrics = m }
}

// WithRunFunc replaces sim.Run.
func WithRunFunc(fn RunFunc) Option {
	return func(r *Runner) {
		if fn != nil {
			r.run = fn
		}
	}
}

// WithPollInterval sets the Wait polling period.
func WithPollInterval(d time.Duration) Option {
	return func(r *Runner) {
		if d > 0 {
			r.pollInterval = d
		}
	}
}

// WithSimOptions passes opts to every run.
func WithSimOptions(opts ...sim.Option) Option {
	return func(r *Runner) { r.simOpts = append(r.simOpts, opts...) }
}

type outcome struct {
	handle  Handle
	result  *sim.Result
	err     error
	elapsed time.Duration
}

// Runner executes at most one simulation at a time in the background.
type Runner struct {
	logger       *slog.Logger
	metrics      *Metrics
	run          RunFunc
	simOpts      []sim.Option
	pollInterval time.Duration

	results chan outcome

	mu      sync.Mutex
	busy    bool
	current Handle
	last    Handle
	lastSt  Status
	latest  *sim.Result
}

// New returns an idle Runner.
func New(opts ...Option) *Runner {
	r := &Runner{
		logger:       slog.Default(),
		run:          sim.Run,
		pollInterval: DefaultPollInterval,
		results:      make(chan outcome, 1),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

// Submit validates p and starts a background run. Invalid or infeasible
// parameters fail immediately with the sim error and never reach the
// worker. A second Submit before the previous result is collected fails
// with ErrBusy.
func (r *Runner) Submit(p sim.Params) (Handle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.busy {
		r.metrics.reject(reasonBusy)
		r.logger.Warn("simulation rejected", "handle", r.current, "err", ErrBusy)
		return Handle{}, ErrBusy
	}

	plan, err := sim.NewPlan(p, r.simOpts...)
	if err != nil {
		reason := reasonValidation
		if errors.Is(err, sim.ErrFeasibility) {
			reason = reasonFeasibility
		}
		r.metrics.reject(reason)
		r.logger.Warn("simulation rejected", "reason", reason, "err", err)
		return Handle{}, err
	}

	h := Handle(uuid.New())
	r.busy = true
	r.current = h
	r.metrics.started()
	r.logger.Info("simulation submitted", "handle", h, "sample_rate", plan.SampleRate, "samples", plan.Samples)

	go r.work(h, p)

	return h, nil
}

func (r *Runner) work(h Handle, p sim.Params) {
	start := time.Now()
	res, err := r.safeRun(p)
	r.results <- outcome{handle: h, result: res, err: err, elapsed: time.Since(start)}
}

// safeRun converts a panic escaping a custom RunFunc into a computation
// error so the worker always reports back.
func (r *Runner) safeRun(p sim.Params) (res *sim.Result, err error) {
	defer func() {
		if v := recover(); v != nil {
			res = nil
			err = &sim.ComputationError{Stage: "run", Err: fmt.Errorf("panic: %v", v)}
		}
	}()
	return r.run(p, r.simOpts...)
}

// Poll reports the state of h without blocking. Collecting a finished run
// frees the Runner for the next Submit; later polls of the same handle
// return the same Status.
func (r *Runner) Poll(h Handle) (Status, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	switch {
	case r.busy && h == r.current:
	case h == r.last && r.lastSt.State != 0:
		return r.lastSt, nil
	default:
		return Status{}, fmt.Errorf("%w: %s", ErrUnknownHandle, h)
	}

	select {
	case o := <-r.results:
		return r.collect(o), nil
	default:
		return Status{State: Pending}, nil
	}
}

func (r *Runner) collect(o outcome) Status {
	r.busy = false
	r.metrics.finished(o.err, o.elapsed)

	st := Status{State: Done, Result: o.result}
	if o.err != nil {
		st = Status{State: Failed, Err: o.err}
		r.logger.Error("simulation failed", "handle", o.handle, "duration", o.elapsed, "err", o.err)
	} else {
		r.latest = o.result
		r.logger.Info("simulation finished", "handle", o.handle, "duration", o.elapsed)
	}

	r.last, r.lastSt = o.handle, st
	return st
}

// Wait polls h every poll interval until it leaves Pending or ctx ends.
func (r *Runner) Wait(ctx context.Context, h Handle) (Status, error) {
	ticker := time.NewTicker(r.pollInterval)
	defer ticker.Stop()

	for {
		st, err := r.Poll(h)
		if err != nil || st.State != Pending {
			return st, err
		}

		select {
		case <-ctx.Done():
			return Status{}, ctx.Err()
		case <-ticker.C:
		}
	}
}

// Latest returns the most recent successful result, or nil. Failed runs
// leave it unchanged.
func (r *Runner) Latest() *sim.Result {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.latest
}

// Busy reports whether a run is in flight or uncollected.
func (r *Runner) Busy() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.busy
}
