package equipment

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"athlete-dashboard/core/events"
	"athlete-dashboard/core/usermeta"
	"athlete-dashboard/core/validation"
	"athlete-dashboard/feature/equipment/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrEquipmentNotFound is returned when deleting an unknown equipment id.
var ErrEquipmentNotFound = errors.New("equipment not found")

// Service manages the equipment inventory stored in user meta.
type Service struct {
	repo      *usermeta.Repository
	validator *validation.Validator
	bus       *events.Bus
	logger    *zap.Logger
	now       func() time.Time
	mu        sync.Mutex
}

// NewService creates an equipment service.
func NewService(repo *usermeta.Repository, v *validation.Validator, bus *events.Bus, logger *zap.Logger) *Service {
	return &Service{repo: repo, validator: v, bus: bus, logger: logger, now: time.Now}
}

func (s *Service) load(ctx context.Context, userID uint) ([]models.Equipment, error) {
	if _, err := s.repo.GetUser(ctx, userID); err != nil {
		return nil, err
	}
	var items []models.Equipment
	if _, err := s.repo.GetJSON(ctx, userID, models.Key, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// List returns the inventory sorted by type, then name.
func (s *Service) List(ctx context.Context, userID uint) ([]models.Equipment, error) {
	items, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Type != items[j].Type {
			return items[i].Type < items[j].Type
		}
		return items[i].Name < items[j].Name
	})
	if items == nil {
		items = []models.Equipment{}
	}
	return items, nil
}

// Add validates e and stores it with a new id. A zero quantity means one.
func (s *Service) Add(ctx context.Context, userID uint, e models.Equipment) (*models.Equipment, error) {
	if e.Quantity == 0 {
		e.Quantity = 1
	}
	if err := s.validator.Struct(e); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	e.ID = uuid.NewString()
	e.CreatedAt = s.now().UTC()
	items = append(items, e)
	if err := s.repo.UpdateJSON(ctx, userID, models.Key, items); err != nil {
		return nil, err
	}

	s.logger.Info("Equipment added", zap.Uint("user_id", userID), zap.String("equipment_id", e.ID))
	s.bus.Emit(events.EquipmentUpdated, events.UserPayload{UserID: userID})
	return &e, nil
}

// Remove deletes the item with id.
func (s *Service) Remove(ctx context.Context, userID uint, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.load(ctx, userID)
	if err != nil {
		return err
	}
	kept := items[:0]
	for _, e := range items {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	if len(kept) == len(items) {
		return ErrEquipmentNotFound
	}
	if err := s.repo.UpdateJSON(ctx, userID, models.Key, kept); err != nil {
		return err
	}

	s.logger.Info("Equipment removed", zap.Uint("user_id", userID), zap.String("equipment_id", id))
	s.bus.Emit(events.EquipmentUpdated, events.UserPayload{UserID: userID})
	return nil
}

// CountByType returns how many items of each type the user owns, quantities included.
func (s *Service) CountByType(ctx context.Context, userID uint) (map[string]int, error) {
	items, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := map[string]int{}
	for _, e := range items {
		out[e.Type] += e.Quantity
	}
	return out, nil
}
