package dashboard

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// Boundary isolates a feature's render from the rest of the dashboard.
type Boundary struct {
	logger *zap.Logger
}

// NewBoundary creates a boundary logging caught failures to logger.
func NewBoundary(logger *zap.Logger) Boundary {
	if logger == nil {
		logger = zap.NewNop()
	}
	return Boundary{logger: logger}
}

// Render runs fn and converts any returned error or panic into a *RenderError.
func (b Boundary) Render(featureID string, fn func() (View, error)) (view View, err error) {
	defer func() {
		if r := recover(); r != nil {
			cause, ok := r.(error)
			if !ok {
				cause = fmt.Errorf("%v", r)
			}
			view = nil
			err = &RenderError{Feature: featureID, Err: cause, Panic: true}
			b.logger.Error("Feature render panicked", zap.String("feature", featureID), zap.Error(cause))
		}
	}()

	view, err = fn()
	if err != nil {
		var re *RenderError
		if !errors.As(err, &re) {
			err = &RenderError{Feature: featureID, Err: err}
		}
		b.logger.Warn("Feature render failed", zap.String("feature", featureID), zap.Error(err))
		return nil, err
	}
	return view, nil
}

// FallbackView is shown in place of a feature whose render failed.
func FallbackView(err error) View {
	return View{
		"error":   true,
		"message": "Something went wrong while displaying this section.",
		"details": err.Error(),
		"action":  "retry",
	}
}
