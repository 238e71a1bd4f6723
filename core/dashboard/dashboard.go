package dashboard

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Options configures a Dashboard.
type Options struct {
	Logger *zap.Logger
	// Fallback is the feature shown when the requested one is missing or unset.
	Fallback     string
	InitTimeout  time.Duration
	OnTransition func(feature string, to Lifecycle)
	OnInit       func(feature string, took time.Duration)
}

// Dashboard ties the registry, navigation and per-user routers together.
type Dashboard struct {
	Registry   *Registry
	Navigation *Navigation
	Sessions   *Sessions

	fallback string
}

// New creates an empty dashboard.
func New(opts Options) *Dashboard {
	registry := NewRegistry()
	return &Dashboard{
		Registry:   registry,
		Navigation: NewNavigation(registry),
		Sessions: NewSessions(func() *Router {
			return NewRouter(RouterOptions{
				Logger:       opts.Logger,
				Registry:     registry,
				InitTimeout:  opts.InitTimeout,
				OnTransition: opts.OnTransition,
				OnInit:       opts.OnInit,
			})
		}),
		fallback: opts.Fallback,
	}
}

// Register adds features in order; the first invalid one aborts registration.
func (d *Dashboard) Register(features ...Feature) error {
	for _, f := range features {
		if err := d.Registry.Register(f); err != nil {
			return err
		}
	}
	return nil
}

// Fallback returns the configured fallback feature identifier.
func (d *Dashboard) Fallback() string {
	return d.fallback
}

// Open activates requested for the user in fc, waits for initialisation to settle
// (bounded by ctx) and renders the result.
func (d *Dashboard) Open(ctx context.Context, fc Context, requested string) Snapshot {
	var req Feature
	if requested != "" {
		req, _ = d.Registry.Get(requested)
	}
	fallback, _ := d.Registry.Get(d.fallback)

	router, release := d.Sessions.Acquire(fc.UserID)
	defer release()
	router.Activate(ctx, req, fallback, fc)
	router.Await(ctx)
	return router.Render(ctx)
}

// Retry re-initialises the user's active feature and renders it.
func (d *Dashboard) Retry(ctx context.Context, fc Context) Snapshot {
	router, release := d.Sessions.Acquire(fc.UserID)
	defer release()
	router.Retry(ctx, fc)
	router.Await(ctx)
	return router.Render(ctx)
}
