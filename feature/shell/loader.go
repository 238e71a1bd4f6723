package shell

import "github.com/gofiber/fiber/v2"

// Feature mounts the dashboard shell routes.
type Feature struct {
	handler *Handler
}

// NewFeature creates the shell feature.
func NewFeature(opts Options) (*Feature, error) {
	h, err := NewHandler(opts)
	if err != nil {
		return nil, err
	}
	return &Feature{handler: h}, nil
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "dashboard"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
