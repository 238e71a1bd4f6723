package dashboard

import (
	"context"
	"fmt"
	"strings"
)

// Metadata describes how a feature appears in navigation.
type Metadata struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Icon        string `json:"icon,omitempty"`
	// Order sorts navigation ascending. Features that leave it unset sort as 0.
	Order int `json:"order"`
}

// View is the JSON document a feature renders for the client.
type View map[string]any

// Feature is a self-contained dashboard module with its own lifecycle.
type Feature interface {
	// ID is the unique identifier used in the dashboard_feature query parameter.
	ID() string
	Metadata() Metadata
	// IsEnabled is consulted before every activation and render. A disabled
	// feature is never initialised or rendered.
	IsEnabled() bool
	// Init prepares the feature for the user in fc. It may block; the router runs it
	// off the request path.
	Init(ctx context.Context, fc Context) error
	Render(ctx context.Context, fc Context) (View, error)
	// Cleanup releases whatever Init acquired. It runs after Init returns, once
	// the feature stops being active. An Init superseded by a newer Init of the
	// same feature shares that Init's Cleanup, so Init must be idempotent per user.
	Cleanup(ctx context.Context, fc Context)
}

// Validate checks the members every feature must provide.
func Validate(f Feature) error {
	if f == nil {
		return fmt.Errorf("%w: feature is nil", ErrInvalidFeature)
	}
	id := f.ID()
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: empty identifier", ErrInvalidFeature)
	}
	if strings.ContainsAny(id, " /?&#=") {
		return fmt.Errorf("%w: identifier %q is not URL safe", ErrInvalidFeature, id)
	}
	if strings.TrimSpace(f.Metadata().Name) == "" {
		return fmt.Errorf("%w: feature %q has no display name", ErrInvalidFeature, id)
	}
	return nil
}

// Lifecycle is the registry's view of where a feature is in its life.
type Lifecycle string

const (
	Unregistered Lifecycle = "unregistered"
	Registered   Lifecycle = "registered"
	Initializing Lifecycle = "initializing"
	Ready        Lifecycle = "ready"
	Failed       Lifecycle = "error"
	Disabled     Lifecycle = "disabled"
	CleanedUp    Lifecycle = "cleaned-up"
)
