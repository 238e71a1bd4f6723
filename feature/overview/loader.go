package overview

import (
	"context"

	"athlete-dashboard/core/dashboard"
	"athlete-dashboard/core/events"

	"github.com/gofiber/fiber/v2"
)

// ID identifies the overview feature. It is the default dashboard feature.
const ID = "overview"

// Feature implements both loader.Feature and dashboard.Feature.
type Feature struct {
	service *Service
	handler *Handler
	enabled bool
	subs    []events.Subscription
}

// NewFeature creates the overview feature and subscribes it to data changes on bus.
func NewFeature(svc *Service, authn fiber.Handler, bus *events.Bus, enabled bool) *Feature {
	return &Feature{
		service: svc,
		handler: NewHandler(svc, authn),
		enabled: enabled,
		subs:    svc.Subscribe(bus),
	}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return ID
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return f.enabled
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}

// Subscriptions returns the bus registrations made by NewFeature.
func (f *Feature) Subscriptions() []events.Subscription {
	return f.subs
}

// ID returns the dashboard identifier of the feature.
func (f *Feature) ID() string {
	return ID
}

// Metadata describes the overview entry in the navigation.
func (f *Feature) Metadata() dashboard.Metadata {
	return dashboard.Metadata{
		Name:        "Overview",
		Description: "Your week at a glance",
		Icon:        "dashboard",
		Order:       1,
	}
}

// Init warms the cached summary for the user.
func (f *Feature) Init(ctx context.Context, fc dashboard.Context) error {
	_, err := f.service.Summary(ctx, fc.UserID)
	return err
}

// Render returns the summary of profile, training and equipment.
func (f *Feature) Render(ctx context.Context, fc dashboard.Context) (dashboard.View, error) {
	sum, err := f.service.Summary(ctx, fc.UserID)
	if err != nil {
		return nil, err
	}
	return dashboard.View{"summary": sum}, nil
}

// Cleanup forgets the cached summary.
func (f *Feature) Cleanup(ctx context.Context, fc dashboard.Context) {
	f.service.Forget(ctx, fc.UserID)
}
