package overview

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"athlete-dashboard/core/cache"
	"athlete-dashboard/core/dashboard"
	"athlete-dashboard/core/database"
	"athlete-dashboard/core/events"
	"athlete-dashboard/core/storage"
	"athlete-dashboard/core/usermeta"
	"athlete-dashboard/core/validation"
	"athlete-dashboard/feature/equipment"
	equipmentmodels "athlete-dashboard/feature/equipment/models"
	"athlete-dashboard/feature/profile"
	profilemodels "athlete-dashboard/feature/profile/models"
	"athlete-dashboard/feature/workouts"
	workoutmodels "athlete-dashboard/feature/workouts/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type deps struct {
	feature   *Feature
	profiles  *profile.Service
	workouts  *workouts.Service
	equipment *equipment.Service
}

func setup(t *testing.T) deps {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:", TablePrefix: "wp_"})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db, usermeta.Models()...))
	repo := usermeta.NewRepository(db)
	require.NoError(t, repo.CreateUser(context.Background(), &usermeta.User{ID: 1, Login: "sam", Email: "sam@example.com"}))

	bus := events.NewBus(zap.NewNop())
	v := validation.New()
	loader := cache.NewLoader(cache.NewMemory(), time.Minute, zap.NewNop())

	d := deps{
		profiles:  profile.NewService(repo, v, loader, bus, nil, storage.Config{}, zap.NewNop()),
		workouts:  workouts.NewService(repo, v, bus, zap.NewNop()),
		equipment: equipment.NewService(repo, v, bus, zap.NewNop()),
	}
	d.profiles.Subscribe(bus)
	svc := NewService(d.profiles, d.workouts, d.equipment, loader)
	passthrough := func(c *fiber.Ctx) error {
		c.Locals("user_id", uint(1))
		return c.Next()
	}
	d.feature = NewFeature(svc, passthrough, bus, true)
	return d
}

func TestCompleteness(t *testing.T) {
	assert.Equal(t, 0, Completeness(&profilemodels.Profile{}))

	age := 30
	p := &profilemodels.Profile{FirstName: "Sam", LastName: "Lee", Email: "s@example.com", Age: &age, Goals: []string{"run"}}
	assert.Equal(t, 45, Completeness(p))
}

func TestSummary_InvalidatedByEvents(t *testing.T) {
	d := setup(t)
	ctx := context.Background()
	fc := dashboard.Context{UserID: 1}

	require.NoError(t, d.feature.Init(ctx, fc))
	view, err := d.feature.Render(ctx, fc)
	require.NoError(t, err)
	sum := view["summary"].(*Summary)
	assert.Equal(t, 0, sum.Week.Count)
	assert.Nil(t, sum.Physical)
	assert.Len(t, d.feature.Subscriptions(), 4)

	today := time.Now().UTC().Format("2006-01-02")
	_, err = d.workouts.Create(ctx, 1, workoutmodels.Workout{Name: "Run", Type: "cardio", Duration: 40, Date: today})
	require.NoError(t, err)
	_, err = d.equipment.Add(ctx, 1, equipmentmodels.Equipment{Name: "Rope", Type: "accessories", Quantity: 2})
	require.NoError(t, err)
	_, err = d.profiles.UpdatePhysical(ctx, 1, profilemodels.PhysicalData{Height: 175, Weight: 70, Units: "metric"})
	require.NoError(t, err)
	_, err = d.profiles.UpdateProfile(ctx, 1, []byte(`{"firstName":"Sam"}`))
	require.NoError(t, err)

	view, err = d.feature.Render(ctx, fc)
	require.NoError(t, err)
	sum = view["summary"].(*Summary)
	assert.Equal(t, "Sam", sum.Name)
	assert.Equal(t, 1, sum.Week.Count)
	assert.Equal(t, 40, sum.Week.Minutes)
	assert.Equal(t, 2, sum.EquipmentCount)
	require.NotNil(t, sum.Physical)
	assert.Equal(t, 175.0, sum.Physical.Height)
}

func TestHandleGetOverview(t *testing.T) {
	d := setup(t)
	app := fiber.New()
	require.NoError(t, d.feature.Load(app))

	resp, err := app.Test(httptest.NewRequest("GET", "/athlete-dashboard/v1/overview", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}
