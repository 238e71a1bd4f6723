package overview

import (
	"context"
	"strconv"
	"time"

	"athlete-dashboard/core/cache"
	"athlete-dashboard/core/events"
	"athlete-dashboard/feature/equipment"
	"athlete-dashboard/feature/profile"
	profilemodels "athlete-dashboard/feature/profile/models"
	"athlete-dashboard/feature/workouts"
	workoutmodels "athlete-dashboard/feature/workouts/models"
)

// Summary is the overview panel content.
type Summary struct {
	Name                string                      `json:"name"`
	AvatarURL           string                      `json:"avatarUrl,omitempty"`
	ProfileCompleteness int                         `json:"profileCompleteness"`
	Physical            *profilemodels.PhysicalData `json:"physical"`
	Week                *workoutmodels.Summary      `json:"week"`
	EquipmentCount      int                         `json:"equipmentCount"`
	GeneratedAt         time.Time                   `json:"generatedAt"`
}

// Service assembles summaries from the other features' services.
type Service struct {
	profiles  *profile.Service
	workouts  *workouts.Service
	equipment *equipment.Service
	cache     *cache.Loader
	now       func() time.Time
}

// NewService creates an overview service.
func NewService(p *profile.Service, w *workouts.Service, e *equipment.Service, c *cache.Loader) *Service {
	return &Service{profiles: p, workouts: w, equipment: e, cache: c, now: time.Now}
}

func cacheKey(userID uint) string {
	return "overview:" + strconv.FormatUint(uint64(userID), 10)
}

// Subscribe invalidates a user's summary whenever any of its sources changes.
func (s *Service) Subscribe(bus *events.Bus) []events.Subscription {
	invalidate := func(payload any) {
		if p, ok := payload.(events.UserPayload); ok {
			s.cache.Invalidate(context.Background(), cacheKey(p.UserID))
		}
	}
	var subs []events.Subscription
	for _, name := range []string{events.ProfileUpdated, events.PhysicalUpdated, events.WorkoutsUpdated, events.EquipmentUpdated} {
		subs = append(subs, bus.On(name, invalidate))
	}
	return subs
}

// Summary returns the cached summary of userID, building it on a miss.
func (s *Service) Summary(ctx context.Context, userID uint) (*Summary, error) {
	var sum Summary
	err := s.cache.GetJSON(ctx, cacheKey(userID), &sum, func(ctx context.Context) (any, error) {
		return s.build(ctx, userID)
	})
	if err != nil {
		return nil, err
	}
	return &sum, nil
}

// Forget drops the cached summary of userID.
func (s *Service) Forget(ctx context.Context, userID uint) {
	s.cache.Invalidate(ctx, cacheKey(userID))
}

func (s *Service) build(ctx context.Context, userID uint) (*Summary, error) {
	p, err := s.profiles.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	phys, err := s.profiles.GetPhysical(ctx, userID)
	if err != nil {
		return nil, err
	}
	now := s.now().UTC()
	week, err := s.workouts.Summarize(ctx, userID, now.AddDate(0, 0, -6), now)
	if err != nil {
		return nil, err
	}
	byType, err := s.equipment.CountByType(ctx, userID)
	if err != nil {
		return nil, err
	}

	sum := &Summary{
		Name:                p.FirstName,
		AvatarURL:           p.AvatarURL,
		ProfileCompleteness: Completeness(p),
		Week:                week,
		GeneratedAt:         now,
	}
	if !phys.UpdatedAt.IsZero() {
		sum.Physical = phys
	}
	for _, n := range byType {
		sum.EquipmentCount += n
	}
	return sum, nil
}

// Completeness is the percentage of optional profile fields that are filled in.
func Completeness(p *profilemodels.Profile) int {
	filled := []bool{
		p.FirstName != "",
		p.LastName != "",
		p.Email != "",
		p.Phone != "",
		p.Age != nil,
		p.Gender != "",
		p.DateOfBirth != "",
		p.FitnessLevel != "",
		p.ActivityLevel != "",
		len(p.Goals) > 0,
		p.EmergencyContact != nil,
	}
	n := 0
	for _, ok := range filled {
		if ok {
			n++
		}
	}
	return n * 100 / len(filled)
}
