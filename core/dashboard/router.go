package dashboard

import (
	"context"
	"fmt"
	"sync"
	"time"

	"athlete-dashboard/core/events"
	"athlete-dashboard/core/logger"

	"go.uber.org/zap"
)

// State is the router's externally visible state.
type State string

const (
	StateNoFeature    State = "no-feature"
	StateDisabled     State = "disabled"
	StateInitializing State = "initializing"
	StateError        State = "error"
	StateReady        State = "ready"
)

// Snapshot is what the router reports to the client after each operation.
type Snapshot struct {
	State      State     `json:"state"`
	Feature    string    `json:"feature,omitempty"`
	Metadata   *Metadata `json:"metadata,omitempty"`
	Generation uint64    `json:"generation"`
	View       View      `json:"view,omitempty"`
	Error      string    `json:"error,omitempty"`
	Fallback   bool      `json:"fallback,omitempty"`
	Retryable  bool      `json:"retryable,omitempty"`
}

// RouterOptions configures a Router.
type RouterOptions struct {
	Logger   *zap.Logger
	Registry *Registry
	// InitTimeout bounds a single Init call. Defaults to 30s.
	InitTimeout time.Duration
	// OnTransition observes every lifecycle change, e.g. for metrics.
	OnTransition func(feature string, to Lifecycle)
	// OnInit observes how long each Init call took.
	OnInit func(feature string, took time.Duration)
}

// Router drives the lifecycle of the single active feature of one dashboard session.
//
// Each activation gets a new generation. An Init that completes after a newer
// activation is discarded and its feature cleaned up, so a slow feature can never
// overwrite the state of the one the user switched to.
type Router struct {
	// switchMu serialises activations so cleanup of the previous feature always
	// finishes before the next Init starts.
	switchMu sync.Mutex

	mu         sync.Mutex
	active     Feature
	fc         Context
	state      State
	generation uint64
	err        error
	done       chan struct{}

	logger       *zap.Logger
	registry     *Registry
	boundary     Boundary
	initTimeout  time.Duration
	onTransition func(string, Lifecycle)
	onInit       func(string, time.Duration)
	inflight     sync.WaitGroup
}

// NewRouter creates a router with no active feature.
func NewRouter(opts RouterOptions) *Router {
	l := opts.Logger
	if l == nil {
		l = zap.NewNop()
	}
	timeout := opts.InitTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	l = l.Named("dashboard")
	return &Router{
		state:        StateNoFeature,
		done:         closedChan(),
		logger:       l,
		registry:     opts.Registry,
		boundary:     NewBoundary(l),
		initTimeout:  timeout,
		onTransition: opts.OnTransition,
		onInit:       opts.OnInit,
	}
}

func closedChan() chan struct{} {
	ch := make(chan struct{})
	close(ch)
	return ch
}

// Activate makes requested (or fallback when requested is nil) the active feature.
//
// Init only runs when the identifier changes; re-activating the feature that is
// already initializing, ready or failed just refreshes the context. Use Retry to
// re-run Init.
func (r *Router) Activate(ctx context.Context, requested, fallback Feature, fc Context) Snapshot {
	r.switchMu.Lock()
	defer r.switchMu.Unlock()

	target := requested
	if target == nil {
		target = fallback
	}
	debug := logger.Debug(r.logger, fc.Debug)

	if target != nil {
		r.mu.Lock()
		if r.active != nil && r.active.ID() == target.ID() && r.state != StateDisabled && target.IsEnabled() {
			r.fc = fc
			snap := r.snapshotLocked()
			r.mu.Unlock()
			debug.Debug("Feature already active",
				zap.String("feature", snap.Feature),
				zap.String("state", string(snap.State)))
			return snap
		}
		r.mu.Unlock()
	}

	if requested == nil && target != nil {
		debug.Debug("Requested feature unavailable, using fallback", zap.String("fallback", target.ID()))
	}
	r.switchTo(ctx, target, fc)
	return r.Snapshot()
}

// Retry re-runs Init for the active feature, the server-side counterpart of
// reloading the page. It is a no-op while an Init is in flight.
func (r *Router) Retry(ctx context.Context, fc Context) Snapshot {
	r.switchMu.Lock()
	defer r.switchMu.Unlock()

	r.mu.Lock()
	f, state := r.active, r.state
	r.mu.Unlock()

	if f == nil || state == StateInitializing {
		return r.Snapshot()
	}
	logger.Debug(r.logger, fc.Debug).Debug("Retrying feature", zap.String("feature", f.ID()))
	r.switchTo(ctx, f, fc)
	return r.Snapshot()
}

// Close cleans up the active feature and leaves the router empty.
func (r *Router) Close(ctx context.Context) {
	r.switchMu.Lock()
	defer r.switchMu.Unlock()
	r.switchTo(ctx, nil, Context{})
}

// Wait blocks until every Init started by this router has returned.
func (r *Router) Wait() {
	r.inflight.Wait()
}

func (r *Router) switchTo(ctx context.Context, target Feature, fc Context) {
	enabled := target != nil && target.IsEnabled()

	next := StateInitializing
	switch {
	case target == nil:
		next = StateNoFeature
	case !enabled:
		next = StateDisabled
	}

	r.mu.Lock()
	r.generation++
	gen := r.generation
	prev, prevState, prevFC := r.active, r.state, r.fc

	r.active, r.fc, r.state, r.err = target, fc, next, nil
	done := closedChan()
	if next == StateInitializing {
		done = make(chan struct{})
	}
	r.done = done
	r.mu.Unlock()

	// An in-flight Init of prev cleans up after itself once it sees the newer generation.
	if prev != nil && (prevState == StateReady || prevState == StateError) {
		r.cleanup(prev, prevFC)
	}

	debug := logger.Debug(r.logger, fc.Debug)
	switch next {
	case StateNoFeature:
		debug.Debug("No feature available")
		return
	case StateDisabled:
		debug.Debug("Feature disabled", zap.String("feature", target.ID()))
		r.notify(target.ID(), Disabled)
		return
	}

	debug.Debug("Initializing feature", zap.String("feature", target.ID()), zap.Uint64("generation", gen))
	r.notify(target.ID(), Initializing)

	initCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), r.initTimeout)
	r.inflight.Add(1)
	go func() {
		defer r.inflight.Done()
		defer cancel()
		start := time.Now()
		err := r.runInit(initCtx, target, fc)
		if r.onInit != nil {
			r.onInit(target.ID(), time.Since(start))
		}
		r.complete(gen, target, fc, err, done)
	}()
}

func (r *Router) runInit(ctx context.Context, f Feature, fc Context) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("panic: %v", rec)
		}
	}()
	return f.Init(ctx, fc)
}

func (r *Router) complete(gen uint64, f Feature, fc Context, err error, done chan struct{}) {
	defer close(done)
	debug := logger.Debug(r.logger, fc.Debug)

	r.mu.Lock()
	if r.generation != gen {
		r.mu.Unlock()
		r.discard(gen, f, fc)
		return
	}

	next, lifecycle := StateReady, Ready
	if err != nil {
		r.err = &InitError{Feature: f.ID(), Err: err}
		next, lifecycle = StateError, Failed
	}
	r.state = next
	current := r.fc
	r.mu.Unlock()

	r.notify(f.ID(), lifecycle)

	if err != nil {
		r.logger.Warn("Feature initialization failed", zap.String("feature", f.ID()), zap.Error(err))
		current.Emit(events.FeatureError, events.FeaturePayload{UserID: current.UserID, Feature: f.ID(), Error: err.Error()})
		return
	}
	debug.Debug("Feature ready", zap.String("feature", f.ID()))
	current.Emit(events.FeatureReady, events.FeaturePayload{UserID: current.UserID, Feature: f.ID()})
}

// discard cleans up after an Init that a newer activation superseded. When the
// same feature has been activated again since, its current Init owns the
// cleanup, so nothing runs here. switchMu keeps the check and the cleanup from
// interleaving with another activation.
func (r *Router) discard(gen uint64, f Feature, fc Context) {
	r.switchMu.Lock()
	defer r.switchMu.Unlock()

	debug := logger.Debug(r.logger, fc.Debug)
	r.mu.Lock()
	live := r.active != nil && r.active.ID() == f.ID()
	r.mu.Unlock()

	if live {
		debug.Debug("Stale initialization superseded by the same feature",
			zap.String("feature", f.ID()),
			zap.Uint64("generation", gen))
		return
	}
	debug.Debug("Discarding stale initialization",
		zap.String("feature", f.ID()),
		zap.Uint64("generation", gen))
	r.cleanup(f, fc)
}

func (r *Router) cleanup(f Feature, fc Context) {
	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Error("Feature cleanup panicked", zap.String("feature", f.ID()), zap.Any("panic", rec))
		}
	}()
	ctx, cancel := context.WithTimeout(context.Background(), r.initTimeout)
	defer cancel()
	f.Cleanup(ctx, fc)
	r.notify(f.ID(), CleanedUp)
}

func (r *Router) notify(id string, to Lifecycle) {
	if r.registry != nil {
		r.registry.transition(id, to)
	}
	if r.onTransition != nil {
		r.onTransition(id, to)
	}
}

// Await blocks until the active feature's initialisation has settled or ctx ends.
// Lifecycle notifications for the settled Init have been delivered when it returns.
func (r *Router) Await(ctx context.Context) Snapshot {
	for {
		r.mu.Lock()
		done := r.done
		r.mu.Unlock()

		select {
		case <-done:
		case <-ctx.Done():
			return r.Snapshot()
		}

		r.mu.Lock()
		if r.done == done {
			snap := r.snapshotLocked()
			r.mu.Unlock()
			return snap
		}
		r.mu.Unlock()
	}
}

// Render renders the active feature when it is ready. Failures inside the
// feature are contained by the error boundary and reported as a fallback view;
// the router itself stays ready.
func (r *Router) Render(ctx context.Context) Snapshot {
	r.mu.Lock()
	f, fc := r.active, r.fc
	snap := r.snapshotLocked()
	r.mu.Unlock()

	if snap.State == StateReady && !f.IsEnabled() {
		snap.State = StateDisabled
	}
	if snap.State != StateReady {
		snap.View = stateView(snap)
		return snap
	}

	view, err := r.boundary.Render(f.ID(), func() (View, error) {
		return f.Render(ctx, fc)
	})
	if err != nil {
		snap.View = FallbackView(err)
		snap.Error = err.Error()
		snap.Fallback = true
		snap.Retryable = true
		return snap
	}
	snap.View = view
	return snap
}

// Snapshot reports the current state without rendering.
func (r *Router) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snapshotLocked()
}

func (r *Router) snapshotLocked() Snapshot {
	snap := Snapshot{State: r.state, Generation: r.generation}
	if r.active != nil {
		md := r.active.Metadata()
		snap.Feature = r.active.ID()
		snap.Metadata = &md
	}
	if r.err != nil {
		snap.Error = r.err.Error()
		snap.Retryable = true
	}
	return snap
}

func stateView(s Snapshot) View {
	switch s.State {
	case StateNoFeature:
		return View{"message": "The requested feature is not available."}
	case StateDisabled:
		return View{"message": "This feature is currently disabled."}
	case StateInitializing:
		return View{"loading": true}
	case StateError:
		return View{
			"message": "Failed to initialize feature.",
			"details": s.Error,
			"action":  "retry",
		}
	default:
		return nil
	}
}
