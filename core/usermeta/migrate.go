package usermeta

import (
	"context"
	"fmt"
	"sort"
	"time"

	"athlete-dashboard/core/database"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Migration is a one-off data migration over user meta, e.g. consolidating legacy keys.
type Migration struct {
	Version int
	Name    string
	Up      func(ctx context.Context, repo *Repository) error
}

// Migrate creates the schema and applies pending data migrations in version order.
// It returns the migrations that ran.
func Migrate(ctx context.Context, db *gorm.DB, logger *zap.Logger, migrations ...Migration) ([]Migration, error) {
	if err := database.Migrate(db, Models()...); err != nil {
		return nil, err
	}

	var applied []AppliedMigration
	if err := db.WithContext(ctx).Find(&applied).Error; err != nil {
		return nil, fmt.Errorf("failed to read applied migrations: %w", err)
	}
	done := make(map[int]struct{}, len(applied))
	for _, a := range applied {
		done[a.Version] = struct{}{}
	}

	pending := make([]Migration, 0, len(migrations))
	seen := make(map[int]string, len(migrations))
	for _, m := range migrations {
		if other, dup := seen[m.Version]; dup {
			return nil, fmt.Errorf("migrations %q and %q share version %d", other, m.Name, m.Version)
		}
		seen[m.Version] = m.Name
		if _, ok := done[m.Version]; !ok {
			pending = append(pending, m)
		}
	}
	sort.Slice(pending, func(i, j int) bool { return pending[i].Version < pending[j].Version })

	ran := make([]Migration, 0, len(pending))
	for _, m := range pending {
		logger.Info("Applying migration", zap.Int("version", m.Version), zap.String("name", m.Name))

		err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := m.Up(ctx, NewRepository(tx)); err != nil {
				return err
			}
			return tx.Create(&AppliedMigration{Version: m.Version, Name: m.Name, AppliedAt: time.Now()}).Error
		})
		if err != nil {
			return ran, fmt.Errorf("migration %d (%s) failed: %w", m.Version, m.Name, err)
		}
		ran = append(ran, m)
	}
	return ran, nil
}

// UserIDsWithKey lists users that have at least one row under key.
func (r *Repository) UserIDsWithKey(ctx context.Context, key string) ([]uint, error) {
	var ids []uint
	err := r.db.WithContext(ctx).
		Model(&Meta{}).
		Where("meta_key = ?", key).
		Distinct().
		Order("user_id ASC").
		Pluck("user_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list users with meta %s: %w", key, err)
	}
	return ids, nil
}
