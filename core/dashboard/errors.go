package dashboard

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidFeature   = errors.New("invalid feature")
	ErrDuplicateFeature = errors.New("feature already registered")
	ErrFeatureNotFound  = errors.New("feature not found")
	ErrFeatureDisabled  = errors.New("feature disabled")
)

// InitError wraps a failure returned (or panicked) by Feature.Init.
type InitError struct {
	Feature string
	Err     error
}

func (e *InitError) Error() string {
	return fmt.Sprintf("feature %s failed to initialize: %v", e.Feature, e.Err)
}

func (e *InitError) Unwrap() error { return e.Err }

// RenderError wraps a failure from Feature.Render caught by the boundary.
type RenderError struct {
	Feature string
	Err     error
	Panic   bool
}

func (e *RenderError) Error() string {
	if e.Panic {
		return fmt.Sprintf("feature %s panicked while rendering: %v", e.Feature, e.Err)
	}
	return fmt.Sprintf("feature %s failed to render: %v", e.Feature, e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }
