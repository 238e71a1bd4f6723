package profile

import (
	"context"

	"athlete-dashboard/core/dashboard"
	"athlete-dashboard/core/events"
	"athlete-dashboard/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ID identifies the profile feature in the dashboard and in dashboard_feature.
const ID = "profile"

// Feature implements both loader.Feature and dashboard.Feature.
type Feature struct {
	service *Service
	handler *Handler
	enabled bool
	subs    []events.Subscription
}

// NewFeature creates the profile feature and subscribes its cache to bus.
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

// Metadata describes the profile entry in the navigation.
func (f *Feature) Metadata() dashboard.Metadata {
	return dashboard.Metadata{
		Name:        "Profile",
		Description: "Manage your personal information and measurements",
		Icon:        "user",
		Order:       10,
	}
}

// Init warms the profile cache and fails for unknown users.
func (f *Feature) Init(ctx context.Context, fc dashboard.Context) error {
	_, err := f.service.GetProfile(ctx, fc.UserID)
	return err
}

// Render returns the profile, current measurements and the endpoints the panel talks to.
func (f *Feature) Render(ctx context.Context, fc dashboard.Context) (dashboard.View, error) {
	p, err := f.service.GetProfile(ctx, fc.UserID)
	if err != nil {
		return nil, err
	}
	phys, err := f.service.GetPhysical(ctx, fc.UserID)
	if err != nil {
		return nil, err
	}
	return dashboard.View{
		"profile":  p,
		"physical": phys,
		"endpoints": map[string]string{
			"profile":  fc.APIBaseURL + "/athlete-dashboard/v1/profile",
			"avatar":   fc.APIBaseURL + "/athlete-dashboard/v1/profile/avatar",
			"physical": fc.APIBaseURL + "/profile/physical/" + uintString(fc.UserID),
		},
	}, nil
}

// Cleanup drops the cached profile so an idle user does not pin it.
func (f *Feature) Cleanup(ctx context.Context, fc dashboard.Context) {
	f.service.cache.Invalidate(ctx, cacheKey(fc.UserID))
	logger.Debug(f.service.logger, fc.Debug).Debug("Profile feature cleaned up", zap.Uint("user_id", fc.UserID))
}
