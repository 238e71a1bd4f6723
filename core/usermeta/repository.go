package usermeta

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// ErrUserNotFound is returned when the user id does not exist.
var ErrUserNotFound = errors.New("user not found")

// CapabilitiesKey holds the serialised role map WordPress writes for each user.
const CapabilitiesKey = "wp_capabilities"

// Repository reads and writes user meta the way get_user_meta/update_user_meta do.
// A key may exist several times for one user; the single-value accessors act on
// the oldest row, like WordPress with $single = true.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a repository over db.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// GetUser loads a user row.
func (r *Repository) GetUser(ctx context.Context, userID uint) (*User, error) {
	var u User
	err := r.db.WithContext(ctx).First(&u, userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %d", ErrUserNotFound, userID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load user %d: %w", userID, err)
	}
	return &u, nil
}

// CreateUser inserts a user row.
func (r *Repository) CreateUser(ctx context.Context, u *User) error {
	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		return fmt.Errorf("failed to create user %s: %w", u.Login, err)
	}
	return nil
}

// IsAdmin reports whether the user holds the administrator role.
func (r *Repository) IsAdmin(ctx context.Context, userID uint) (bool, error) {
	caps, ok, err := r.Get(ctx, userID, CapabilitiesKey)
	if err != nil || !ok {
		return false, err
	}
	return strings.Contains(caps, `"administrator"`), nil
}

// Get returns the first value stored under key.
func (r *Repository) Get(ctx context.Context, userID uint, key string) (string, bool, error) {
	var rows []Meta
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND meta_key = ?", userID, key).
		Order("umeta_id ASC").
		Limit(1).
		Find(&rows).Error
	if err != nil {
		return "", false, fmt.Errorf("failed to read meta %s for user %d: %w", key, userID, err)
	}
	if len(rows) == 0 {
		return "", false, nil
	}
	return rows[0].Value, true, nil
}

// GetAll returns the first value of every key stored for the user.
func (r *Repository) GetAll(ctx context.Context, userID uint) (map[string]string, error) {
	var rows []Meta
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("umeta_id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to read meta for user %d: %w", userID, err)
	}
	out := make(map[string]string, len(rows))
	for _, row := range rows {
		if _, seen := out[row.Key]; !seen {
			out[row.Key] = row.Value
		}
	}
	return out, nil
}

// Update sets key to value, inserting the row when absent.
func (r *Repository) Update(ctx context.Context, userID uint, key, value string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var rows []Meta
		if err := tx.Where("user_id = ? AND meta_key = ?", userID, key).
			Order("umeta_id ASC").
			Limit(1).
			Find(&rows).Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return tx.Create(&Meta{UserID: userID, Key: key, Value: value}).Error
		}
		return tx.Model(&Meta{}).Where("umeta_id = ?", rows[0].ID).Update("meta_value", value).Error
	})
	if err != nil {
		return fmt.Errorf("failed to update meta %s for user %d: %w", key, userID, err)
	}
	return nil
}

// Delete removes every row stored under key.
func (r *Repository) Delete(ctx context.Context, userID uint, key string) error {
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND meta_key = ?", userID, key).
		Delete(&Meta{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete meta %s for user %d: %w", key, userID, err)
	}
	return nil
}

// GetJSON decodes the JSON value stored under key into out.
// It reports false, leaving out untouched, when the key is absent or empty.
func (r *Repository) GetJSON(ctx context.Context, userID uint, key string, out any) (bool, error) {
	raw, ok, err := r.Get(ctx, userID, key)
	if err != nil || !ok || raw == "" {
		return false, err
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return false, fmt.Errorf("meta %s for user %d is not valid JSON: %w", key, userID, err)
	}
	return true, nil
}

// UpdateJSON stores v JSON-encoded under key.
func (r *Repository) UpdateJSON(ctx context.Context, userID uint, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode meta %s: %w", key, err)
	}
	return r.Update(ctx, userID, key, string(raw))
}
