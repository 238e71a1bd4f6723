package workouts

import (
	"context"

	"athlete-dashboard/core/dashboard"

	"github.com/gofiber/fiber/v2"
)

// ID identifies the workouts feature.
const ID = "workouts"

// recentLimit is how many workouts the dashboard panel shows.
const recentLimit = 10

// Feature implements both loader.Feature and dashboard.Feature.
type Feature struct {
	service *Service
	handler *Handler
	enabled bool
}

// NewFeature creates the workouts feature.
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

// Metadata describes the workouts entry in the navigation.
func (f *Feature) Metadata() dashboard.Metadata {
	return dashboard.Metadata{
		Name:        "Workouts",
		Description: "Log and review your training sessions",
		Icon:        "dumbbell",
		Order:       20,
	}
}

// Init checks that the user exists and the workout log decodes.
func (f *Feature) Init(ctx context.Context, fc dashboard.Context) error {
	_, err := f.service.load(ctx, fc.UserID)
	return err
}

// Render returns the most recent workouts and the last seven days' totals.
func (f *Feature) Render(ctx context.Context, fc dashboard.Context) (dashboard.View, error) {
	list, err := f.service.List(ctx, fc.UserID)
	if err != nil {
		return nil, err
	}
	now := f.service.now()
	week, err := f.service.Summarize(ctx, fc.UserID, now.AddDate(0, 0, -6), now)
	if err != nil {
		return nil, err
	}
	if len(list) > recentLimit {
		list = list[:recentLimit]
	}
	return dashboard.View{
		"recent":   list,
		"week":     week,
		"endpoint": fc.APIBaseURL + "/athlete-dashboard/v1/workouts",
	}, nil
}

// Cleanup is a no-op; workouts hold nothing between requests.
func (f *Feature) Cleanup(context.Context, dashboard.Context) {}
