package equipment

import (
	"context"

	"athlete-dashboard/core/dashboard"

	"github.com/gofiber/fiber/v2"
)

// ID identifies the equipment feature.
const ID = "equipment"

// Feature implements both loader.Feature and dashboard.Feature.
type Feature struct {
	service *Service
	handler *Handler
	enabled bool
}

// NewFeature creates the equipment feature.
func NewFeature(svc *Service, authn fiber.Handler, enabled bool) *Feature {
	return &Feature{service: svc, handler: NewHandler(svc, authn), enabled: enabled}
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

// ID returns the dashboard identifier of the feature.
func (f *Feature) ID() string {
	return ID
}

// Metadata describes the equipment entry in the navigation.
func (f *Feature) Metadata() dashboard.Metadata {
	return dashboard.Metadata{
		Name:        "Equipment",
		Description: "Keep track of the gear you train with",
		Icon:        "equipment",
		Order:       30,
	}
}

// Init checks that the user exists and the inventory decodes.
func (f *Feature) Init(ctx context.Context, fc dashboard.Context) error {
	_, err := f.service.load(ctx, fc.UserID)
	return err
}

// Render returns the inventory and per-type counts.
func (f *Feature) Render(ctx context.Context, fc dashboard.Context) (dashboard.View, error) {
	items, err := f.service.List(ctx, fc.UserID)
	if err != nil {
		return nil, err
	}
	byType, err := f.service.CountByType(ctx, fc.UserID)
	if err != nil {
		return nil, err
	}
	return dashboard.View{
		"items":    items,
		"byType":   byType,
		"endpoint": fc.APIBaseURL + "/athlete-dashboard/v1/equipment",
	}, nil
}

// Cleanup is a no-op; equipment holds nothing between requests.
func (f *Feature) Cleanup(context.Context, dashboard.Context) {}
