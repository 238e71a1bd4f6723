package workouts

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"athlete-dashboard/core/events"
	"athlete-dashboard/core/usermeta"
	"athlete-dashboard/core/validation"
	"athlete-dashboard/feature/workouts/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// MaxWorkouts caps the stored log per user; the oldest entries are dropped first.
const MaxWorkouts = 500

// ErrWorkoutNotFound is returned when deleting an unknown workout id.
var ErrWorkoutNotFound = errors.New("workout not found")

// Service manages the workout log stored in user meta.
type Service struct {
	repo      *usermeta.Repository
	validator *validation.Validator
	bus       *events.Bus
	logger    *zap.Logger
	now       func() time.Time

	// mu serialises read-modify-write cycles on the log.
	mu sync.Mutex
}

// NewService creates a workout service.
func NewService(repo *usermeta.Repository, v *validation.Validator, bus *events.Bus, logger *zap.Logger) *Service {
	return &Service{repo: repo, validator: v, bus: bus, logger: logger, now: time.Now}
}

func (s *Service) load(ctx context.Context, userID uint) ([]models.Workout, error) {
	if _, err := s.repo.GetUser(ctx, userID); err != nil {
		return nil, err
	}
	var list []models.Workout
	if _, err := s.repo.GetJSON(ctx, userID, models.Key, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// List returns the user's workouts, most recent date first.
func (s *Service) List(ctx context.Context, userID uint) ([]models.Workout, error) {
	list, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(list, func(i, j int) bool {
		if list[i].Date != list[j].Date {
			return list[i].Date > list[j].Date
		}
		return list[i].CreatedAt.After(list[j].CreatedAt)
	})
	if list == nil {
		list = []models.Workout{}
	}
	return list, nil
}

// Create validates w, assigns it an id and appends it to the log.
func (s *Service) Create(ctx context.Context, userID uint, w models.Workout) (*models.Workout, error) {
	if w.Exercises == nil {
		w.Exercises = []models.Exercise{}
	}
	if err := s.validator.Struct(w); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	w.ID = uuid.NewString()
	w.CreatedAt = s.now().UTC()
	list = append(list, w)
	if len(list) > MaxWorkouts {
		list = list[len(list)-MaxWorkouts:]
	}
	if err := s.repo.UpdateJSON(ctx, userID, models.Key, list); err != nil {
		return nil, err
	}

	s.logger.Info("Workout logged", zap.Uint("user_id", userID), zap.String("workout_id", w.ID))
	s.bus.Emit(events.WorkoutsUpdated, events.UserPayload{UserID: userID})
	return &w, nil
}

// Delete removes the workout with id.
func (s *Service) Delete(ctx context.Context, userID uint, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := s.load(ctx, userID)
	if err != nil {
		return err
	}
	idx := -1
	for i, w := range list {
		if w.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrWorkoutNotFound
	}
	list = append(list[:idx], list[idx+1:]...)
	if err := s.repo.UpdateJSON(ctx, userID, models.Key, list); err != nil {
		return err
	}

	s.logger.Info("Workout deleted", zap.Uint("user_id", userID), zap.String("workout_id", id))
	s.bus.Emit(events.WorkoutsUpdated, events.UserPayload{UserID: userID})
	return nil
}

// Summarize aggregates workouts dated from since through until, both days inclusive.
func (s *Service) Summarize(ctx context.Context, userID uint, since, until time.Time) (*models.Summary, error) {
	list, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	from, to := since.Format(validation.DateLayout), until.Format(validation.DateLayout)
	sum := &models.Summary{ByType: map[string]int{}}
	for _, w := range list {
		if w.Date < from || w.Date > to {
			continue
		}
		sum.Count++
		sum.Minutes += w.Duration
		sum.ByType[w.Type]++
	}
	return sum, nil
}
