package profile

import (
	"context"
	"time"

	"athlete-dashboard/core/usermeta"
	"athlete-dashboard/core/utils"
	"athlete-dashboard/feature/profile/models"
)

// Legacy meta keys written by earlier releases, one value per key.
const (
	legacyFirstName = "first_name"
	legacyLastName  = "last_name"
	legacyAge       = "athlete_age"
	legacyGender    = "athlete_gender"
	legacyGoals     = "athlete_goals"
	legacyFitness   = "athlete_fitness_level"
	legacyHeight    = "athlete_height"
	legacyWeight    = "athlete_weight"
)

// Migrations returns the data migrations of the profile feature.
func Migrations() []usermeta.Migration {
	return []usermeta.Migration{
		{Version: 1, Name: "consolidate legacy profile meta", Up: consolidateLegacyMeta},
	}
}

func consolidateLegacyMeta(ctx context.Context, repo *usermeta.Repository) error {
	users := map[uint]struct{}{}
	for _, key := range []string{legacyAge, legacyGender, legacyGoals, legacyFitness, legacyHeight, legacyWeight} {
		ids, err := repo.UserIDsWithKey(ctx, key)
		if err != nil {
			return err
		}
		for _, id := range ids {
			users[id] = struct{}{}
		}
	}

	for id := range users {
		if err := migrateUser(ctx, repo, id); err != nil {
			return err
		}
	}
	return nil
}

func migrateUser(ctx context.Context, repo *usermeta.Repository, userID uint) error {
	meta, err := repo.GetAll(ctx, userID)
	if err != nil {
		return err
	}

	var p models.Profile
	if _, err := repo.GetJSON(ctx, userID, models.ProfileKey, &p); err != nil {
		return err
	}
	if p.FirstName == "" {
		p.FirstName = meta[legacyFirstName]
	}
	if p.LastName == "" {
		p.LastName = meta[legacyLastName]
	}
	if p.Age == nil {
		if age := utils.ToInt(meta[legacyAge]); age > 0 {
			p.Age = &age
		}
	}
	if p.Gender == "" {
		p.Gender = meta[legacyGender]
	}
	if p.FitnessLevel == "" {
		p.FitnessLevel = meta[legacyFitness]
	}
	if len(p.Goals) == 0 {
		p.Goals = utils.ToStrings(meta[legacyGoals])
	}
	p.Normalize()
	if err := repo.UpdateJSON(ctx, userID, models.ProfileKey, p); err != nil {
		return err
	}

	height, weight := utils.ToFloat(meta[legacyHeight]), utils.ToFloat(meta[legacyWeight])
	if _, exists := meta[models.PhysicalKey]; !exists && height > 0 && weight > 0 {
		d := models.PhysicalData{
			Height:      height,
			Weight:      weight,
			Units:       models.UnitsMetric,
			Preferences: models.Preferences{ShowMetric: true},
			UpdatedAt:   time.Now().UTC(),
		}
		if err := repo.UpdateJSON(ctx, userID, models.PhysicalKey, d); err != nil {
			return err
		}
		if err := repo.UpdateJSON(ctx, userID, models.PhysicalHistoryKey, []models.PhysicalData{d}); err != nil {
			return err
		}
	}

	// first_name and last_name belong to WordPress core and stay.
	for _, key := range []string{legacyAge, legacyGender, legacyGoals, legacyFitness, legacyHeight, legacyWeight} {
		if err := repo.Delete(ctx, userID, key); err != nil {
			return err
		}
	}
	return nil
}
