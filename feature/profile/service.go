package profile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"athlete-dashboard/core/cache"
	"athlete-dashboard/core/events"
	"athlete-dashboard/core/storage"
	"athlete-dashboard/core/usermeta"
	"athlete-dashboard/core/validation"
	"athlete-dashboard/feature/profile/models"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// MaxHistory caps the stored physical history per user.
const MaxHistory = 100

var (
	// ErrStorageUnavailable is returned for uploads when no object storage is configured.
	ErrStorageUnavailable = errors.New("object storage is not configured")
	// ErrUnsupportedAvatar is returned for uploads that are too large or not an image.
	ErrUnsupportedAvatar = errors.New("unsupported avatar upload")
)

// Service reads and writes profile and physical data in user meta.
type Service struct {
	repo      *usermeta.Repository
	validator *validation.Validator
	cache     *cache.Loader
	bus       *events.Bus
	store     storage.Client
	storeCfg  storage.Config
	logger    *zap.Logger
	now       func() time.Time
	// mu serialises read-modify-write cycles on the profile and physical meta values.
	mu sync.Mutex
}

// NewService creates a profile service. store may be nil, which disables avatar uploads.
func NewService(repo *usermeta.Repository, v *validation.Validator, c *cache.Loader, bus *events.Bus, store storage.Client, storeCfg storage.Config, logger *zap.Logger) *Service {
	return &Service{
		repo:      repo,
		validator: v,
		cache:     c,
		bus:       bus,
		store:     store,
		storeCfg:  storeCfg,
		logger:    logger,
		now:       time.Now,
	}
}

func uintString(v uint) string {
	return strconv.FormatUint(uint64(v), 10)
}

func cacheKey(userID uint) string {
	return "profile:" + uintString(userID)
}

// Subscribe drops cached profiles whenever one is updated, whoever published the change.
func (s *Service) Subscribe(bus *events.Bus) []events.Subscription {
	return []events.Subscription{
		bus.On(events.ProfileUpdated, func(payload any) {
			if p, ok := payload.(events.UserPayload); ok {
				s.cache.Invalidate(context.Background(), cacheKey(p.UserID))
			}
		}),
	}
}

// CanAccess reports whether actor may read or write target's data: themselves or an administrator.
func (s *Service) CanAccess(ctx context.Context, actor, target uint) (bool, error) {
	if actor == target {
		return true, nil
	}
	return s.repo.IsAdmin(ctx, actor)
}

// GetProfile returns the stored profile, falling back to the user's account email.
func (s *Service) GetProfile(ctx context.Context, userID uint) (*models.Profile, error) {
	var p models.Profile
	err := s.cache.GetJSON(ctx, cacheKey(userID), &p, func(ctx context.Context) (any, error) {
		return s.loadProfile(ctx, userID)
	})
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *Service) loadProfile(ctx context.Context, userID uint) (*models.Profile, error) {
	user, err := s.repo.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	var p models.Profile
	if _, err := s.repo.GetJSON(ctx, userID, models.ProfileKey, &p); err != nil {
		return nil, err
	}
	if p.Email == "" {
		p.Email = user.Email
	}
	p.Normalize()
	return &p, nil
}

// UpdateProfile merges the JSON object patch onto the stored profile, validates
// the result and saves it. Fields absent from patch keep their stored values.
func (s *Service) UpdateProfile(ctx context.Context, userID uint, patch []byte) (*models.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.loadProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(patch, current); err != nil {
		return nil, validation.Errors{"body": "must be a JSON object matching the profile schema"}
	}
	current.Normalize()
	if err := s.validator.Struct(current); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	current.UpdatedAt = &now
	if err := s.repo.UpdateJSON(ctx, userID, models.ProfileKey, current); err != nil {
		return nil, err
	}

	s.logger.Info("Profile updated", zap.Uint("user_id", userID))
	s.bus.Emit(events.ProfileUpdated, events.UserPayload{UserID: userID})
	return current, nil
}

// LegacyProfile flattens account, profile and physical data into the /custom/v1 shape.
func (s *Service) LegacyProfile(ctx context.Context, userID uint) (*models.LegacyProfile, error) {
	user, err := s.repo.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	p, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	phys, err := s.GetPhysical(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := &models.LegacyProfile{
		ID:           user.ID,
		Username:     user.Login,
		Email:        p.Email,
		DisplayName:  user.DisplayName,
		FirstName:    p.FirstName,
		LastName:     p.LastName,
		Gender:       p.Gender,
		Height:       phys.Height,
		Weight:       phys.Weight,
		Units:        phys.Units,
		FitnessLevel: p.FitnessLevel,
		Goals:        p.Goals,
		AvatarURL:    p.AvatarURL,
	}
	if p.Age != nil {
		out.Age = *p.Age
	}
	return out, nil
}

// GetPhysical returns the latest physical data, or metric defaults when none was saved.
func (s *Service) GetPhysical(ctx context.Context, userID uint) (*models.PhysicalData, error) {
	if _, err := s.repo.GetUser(ctx, userID); err != nil {
		return nil, err
	}
	d := models.PhysicalData{Units: models.UnitsMetric, Preferences: models.Preferences{ShowMetric: true}}
	if _, err := s.repo.GetJSON(ctx, userID, models.PhysicalKey, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

// UpdatePhysical validates and saves d, appending it to the history.
func (s *Service) UpdatePhysical(ctx context.Context, userID uint, d models.PhysicalData) (*models.PhysicalData, error) {
	if _, err := s.repo.GetUser(ctx, userID); err != nil {
		return nil, err
	}
	if err := s.validatePhysical(d); err != nil {
		return nil, err
	}
	d.UpdatedAt = s.now().UTC()

	s.mu.Lock()
	defer s.mu.Unlock()

	var history []models.PhysicalData
	if _, err := s.repo.GetJSON(ctx, userID, models.PhysicalHistoryKey, &history); err != nil {
		return nil, err
	}
	history = append(history, d)
	if len(history) > MaxHistory {
		history = history[len(history)-MaxHistory:]
	}

	if err := s.repo.UpdateJSON(ctx, userID, models.PhysicalKey, d); err != nil {
		return nil, err
	}
	if err := s.repo.UpdateJSON(ctx, userID, models.PhysicalHistoryKey, history); err != nil {
		return nil, err
	}

	s.logger.Info("Physical data updated", zap.Uint("user_id", userID), zap.String("units", d.Units))
	s.bus.Emit(events.PhysicalUpdated, events.UserPayload{UserID: userID})
	return &d, nil
}

func (s *Service) validatePhysical(d models.PhysicalData) error {
	if err := s.validator.Struct(d); err != nil {
		return err
	}
	lim := models.PhysicalLimits[d.Units]
	errs := validation.Errors{}
	if d.Height < lim.MinHeight || d.Height > lim.MaxHeight {
		errs["height"] = fmt.Sprintf("must be between %g and %g for %s units", lim.MinHeight, lim.MaxHeight, d.Units)
	}
	if d.Weight < lim.MinWeight || d.Weight > lim.MaxWeight {
		errs["weight"] = fmt.Sprintf("must be between %g and %g for %s units", lim.MinWeight, lim.MaxWeight, d.Units)
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// History returns up to limit physical entries, newest first.
func (s *Service) History(ctx context.Context, userID uint, limit int) ([]models.PhysicalData, error) {
	if _, err := s.repo.GetUser(ctx, userID); err != nil {
		return nil, err
	}
	var history []models.PhysicalData
	if _, err := s.repo.GetJSON(ctx, userID, models.PhysicalHistoryKey, &history); err != nil {
		return nil, err
	}
	sort.SliceStable(history, func(i, j int) bool {
		return history[i].UpdatedAt.After(history[j].UpdatedAt)
	})
	if limit > 0 && len(history) > limit {
		history = history[:limit]
	}
	if history == nil {
		history = []models.PhysicalData{}
	}
	return history, nil
}

// UploadAvatar stores an image in object storage and records its URL on the profile.
func (s *Service) UploadAvatar(ctx context.Context, userID uint, contentType string, size int64, r io.Reader) (string, error) {
	if s.store == nil {
		return "", ErrStorageUnavailable
	}
	ext, ok := models.AvatarTypes[contentType]
	if !ok || size <= 0 || size > models.MaxAvatarBytes {
		return "", ErrUnsupportedAvatar
	}
	if _, err := s.repo.GetUser(ctx, userID); err != nil {
		return "", err
	}

	key := path.Join("avatars", uintString(userID), uuid.NewString()+ext)
	if _, err := s.store.PutObject(ctx, s.storeCfg.Bucket, key, r, size, minio.PutObjectOptions{ContentType: contentType}); err != nil {
		return "", fmt.Errorf("failed to upload avatar for user %d: %w", userID, err)
	}
	url := storage.ObjectURL(s.storeCfg, key)

	previous, err := s.saveAvatarURL(ctx, userID, url)
	if err != nil {
		return "", err
	}

	s.removeAvatar(ctx, userID, previous)

	s.logger.Info("Avatar uploaded", zap.Uint("user_id", userID), zap.String("key", key))
	s.bus.Emit(events.ProfileUpdated, events.UserPayload{UserID: userID})
	return url, nil
}

// saveAvatarURL records url on the profile and returns the URL it replaced.
func (s *Service) saveAvatarURL(ctx context.Context, userID uint, url string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.loadProfile(ctx, userID)
	if err != nil {
		return "", err
	}
	previous := p.AvatarURL
	now := s.now().UTC()
	p.AvatarURL = url
	p.UpdatedAt = &now
	if err := s.repo.UpdateJSON(ctx, userID, models.ProfileKey, p); err != nil {
		return "", err
	}
	return previous, nil
}

// removeAvatar deletes a replaced avatar when it lives in our bucket. Failures only leave an orphan.
func (s *Service) removeAvatar(ctx context.Context, userID uint, url string) {
	prefix := storage.ObjectURL(s.storeCfg, path.Join("avatars", uintString(userID))+"/")
	if url == "" || !strings.HasPrefix(url, prefix) {
		return
	}
	key := strings.TrimPrefix(url, storage.ObjectURL(s.storeCfg, ""))
	if err := s.store.RemoveObject(ctx, s.storeCfg.Bucket, key, minio.RemoveObjectOptions{}); err != nil {
		s.logger.Warn("Failed to remove previous avatar", zap.String("key", key), zap.Error(err))
	}
}
