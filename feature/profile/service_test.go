package profile

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"athlete-dashboard/core/cache"
	"athlete-dashboard/core/database"
	"athlete-dashboard/core/events"
	"athlete-dashboard/core/storage"
	"athlete-dashboard/core/storage/mocks"
	"athlete-dashboard/core/usermeta"
	"athlete-dashboard/core/validation"
	"athlete-dashboard/feature/profile/models"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fixture struct {
	svc   *Service
	repo  *usermeta.Repository
	bus   *events.Bus
	store *mocks.Client
	now   time.Time
}

func setup(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()

	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:", TablePrefix: "wp_"})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db, usermeta.Models()...))

	repo := usermeta.NewRepository(db)
	require.NoError(t, repo.CreateUser(ctx, &usermeta.User{ID: 1, Login: "sam", Email: "sam@example.com", DisplayName: "Sam"}))
	require.NoError(t, repo.CreateUser(ctx, &usermeta.User{ID: 2, Login: "pat", Email: "pat@example.com", DisplayName: "Pat"}))
	require.NoError(t, repo.CreateUser(ctx, &usermeta.User{ID: 3, Login: "coach", Email: "coach@example.com"}))
	require.NoError(t, repo.Update(ctx, 3, usermeta.CapabilitiesKey, `a:1:{s:13:"administrator";b:1;}`))

	f := &fixture{
		repo:  repo,
		bus:   events.NewBus(zap.NewNop()),
		store: new(mocks.Client),
		now:   time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
	loader := cache.NewLoader(cache.NewMemory(), time.Minute, zap.NewNop())
	cfg := storage.Config{Endpoint: "localhost:9000", Bucket: "athlete-dashboard"}
	f.svc = NewService(repo, validation.New(), loader, f.bus, f.store, cfg, zap.NewNop())
	f.svc.now = func() time.Time { return f.now }
	f.svc.Subscribe(f.bus)
	return f
}

func TestGetProfile_Defaults(t *testing.T) {
	f := setup(t)

	p, err := f.svc.GetProfile(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "sam@example.com", p.Email)
	assert.Equal(t, models.UnitsMetric, p.PreferredUnits)
	assert.NotNil(t, p.Goals)

	_, err = f.svc.GetProfile(context.Background(), 99)
	assert.ErrorIs(t, err, usermeta.ErrUserNotFound)
}

func TestUpdateProfile_MergesAndEmits(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	var got []events.UserPayload
	f.bus.On(events.ProfileUpdated, func(p any) { got = append(got, p.(events.UserPayload)) })

	_, err := f.svc.UpdateProfile(ctx, 1, []byte(`{"firstName":"Sam","goals":["run a marathon"]}`))
	require.NoError(t, err)

	// cached read must observe the update
	_, err = f.svc.GetProfile(ctx, 1)
	require.NoError(t, err)

	p, err := f.svc.UpdateProfile(ctx, 1, []byte(`{"lastName":"Lee","age":31}`))
	require.NoError(t, err)
	assert.Equal(t, "Sam", p.FirstName)
	assert.Equal(t, "Lee", p.LastName)
	assert.Equal(t, 31, *p.Age)
	assert.Equal(t, []string{"run a marathon"}, p.Goals)
	assert.Equal(t, f.now, *p.UpdatedAt)

	cached, err := f.svc.GetProfile(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Lee", cached.LastName)

	assert.Equal(t, []events.UserPayload{{UserID: 1}, {UserID: 1}}, got)
}

func TestUpdateProfile_Invalid(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	_, err := f.svc.UpdateProfile(ctx, 1, []byte(`{"email":"nope","age":5,"preferredUnits":"stone"}`))
	var verrs validation.Errors
	require.True(t, errors.As(err, &verrs))
	assert.Contains(t, verrs, "email")
	assert.Contains(t, verrs, "age")
	assert.Contains(t, verrs, "preferredUnits")

	_, err = f.svc.UpdateProfile(ctx, 1, []byte(`[1,2]`))
	require.True(t, errors.As(err, &verrs))
	assert.Contains(t, verrs, "body")

	_, ok, err := f.repo.Get(ctx, 1, models.ProfileKey)
	require.NoError(t, err)
	assert.False(t, ok, "nothing saved")
}

func TestCanAccess(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	ok, err := f.svc.CanAccess(ctx, 1, 1)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = f.svc.CanAccess(ctx, 1, 2)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = f.svc.CanAccess(ctx, 3, 2)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestPhysical(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	d, err := f.svc.GetPhysical(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, models.UnitsMetric, d.Units)
	assert.True(t, d.Preferences.ShowMetric)

	_, err = f.svc.UpdatePhysical(ctx, 1, models.PhysicalData{Height: 180, Weight: 75, Units: models.UnitsMetric})
	require.NoError(t, err)

	f.now = f.now.Add(24 * time.Hour)
	_, err = f.svc.UpdatePhysical(ctx, 1, models.PhysicalData{Height: 71, Weight: 170, Units: models.UnitsImperial})
	require.NoError(t, err)

	d, err = f.svc.GetPhysical(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, models.UnitsImperial, d.Units)

	history, err := f.svc.History(ctx, 1, 10)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, 71.0, history[0].Height, "newest first")

	history, err = f.svc.History(ctx, 1, 1)
	require.NoError(t, err)
	assert.Len(t, history, 1)

	history, err = f.svc.History(ctx, 2, 10)
	require.NoError(t, err)
	assert.Empty(t, history)
	assert.NotNil(t, history)
}

func TestUpdatePhysical_Invalid(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	_, err := f.svc.UpdatePhysical(ctx, 1, models.PhysicalData{Height: 180, Weight: 75, Units: "furlongs"})
	var verrs validation.Errors
	require.True(t, errors.As(err, &verrs))
	assert.Contains(t, verrs, "units")

	_, err = f.svc.UpdatePhysical(ctx, 1, models.PhysicalData{Height: 180, Weight: 75, Units: models.UnitsImperial})
	require.True(t, errors.As(err, &verrs))
	assert.Contains(t, verrs, "height")
	assert.NotContains(t, verrs, "weight")

	_, err = f.svc.UpdatePhysical(ctx, 99, models.PhysicalData{Height: 180, Weight: 75, Units: models.UnitsMetric})
	assert.ErrorIs(t, err, usermeta.ErrUserNotFound)
}

func TestHistoryIsCapped(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	for i := 0; i < MaxHistory+5; i++ {
		f.now = f.now.Add(time.Minute)
		_, err := f.svc.UpdatePhysical(ctx, 1, models.PhysicalData{Height: 150 + float64(i%50), Weight: 70, Units: models.UnitsMetric})
		require.NoError(t, err)
	}

	history, err := f.svc.History(ctx, 1, 0)
	require.NoError(t, err)
	assert.Len(t, history, MaxHistory)
}

func TestConcurrentWritesKeepEveryUpdate(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	const saves = 40
	var wg sync.WaitGroup
	for i := 0; i < saves; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := f.svc.UpdatePhysical(ctx, 1, models.PhysicalData{Height: 150 + float64(i), Weight: 70, Units: models.UnitsMetric})
			assert.NoError(t, err)
		}(i)
	}
	wg.Add(2)
	go func() {
		defer wg.Done()
		_, err := f.svc.UpdateProfile(ctx, 1, []byte(`{"firstName":"Sam"}`))
		assert.NoError(t, err)
	}()
	go func() {
		defer wg.Done()
		_, err := f.svc.UpdateProfile(ctx, 1, []byte(`{"lastName":"Rivera"}`))
		assert.NoError(t, err)
	}()
	wg.Wait()

	history, err := f.svc.History(ctx, 1, 0)
	require.NoError(t, err)
	assert.Len(t, history, saves)

	p, err := f.svc.GetProfile(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Sam", p.FirstName)
	assert.Equal(t, "Rivera", p.LastName)
}

func TestLegacyProfile(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	_, err := f.svc.UpdateProfile(ctx, 1, []byte(`{"firstName":"Sam","age":30,"fitnessLevel":"advanced"}`))
	require.NoError(t, err)
	_, err = f.svc.UpdatePhysical(ctx, 1, models.PhysicalData{Height: 180, Weight: 75, Units: models.UnitsMetric})
	require.NoError(t, err)

	lp, err := f.svc.LegacyProfile(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, uint(1), lp.ID)
	assert.Equal(t, "sam", lp.Username)
	assert.Equal(t, "Sam", lp.DisplayName)
	assert.Equal(t, 30, lp.Age)
	assert.Equal(t, 180.0, lp.Height)
	assert.Equal(t, "advanced", lp.FitnessLevel)
}

func TestUploadAvatar(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	f.store.On("PutObject", mock.Anything, "athlete-dashboard", mock.MatchedBy(func(key string) bool {
		return strings.HasPrefix(key, "avatars/1/") && strings.HasSuffix(key, ".png")
	}), mock.Anything, int64(4), minio.PutObjectOptions{ContentType: "image/png"}).Return(minio.UploadInfo{}, nil)
	f.store.On("RemoveObject", mock.Anything, "athlete-dashboard", mock.MatchedBy(func(key string) bool {
		return strings.HasPrefix(key, "avatars/1/")
	}), minio.RemoveObjectOptions{}).Return(nil)

	first, err := f.svc.UploadAvatar(ctx, 1, "image/png", 4, strings.NewReader("\x89PNG"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(first, "http://localhost:9000/athlete-dashboard/avatars/1/"))
	f.store.AssertNotCalled(t, "RemoveObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything)

	second, err := f.svc.UploadAvatar(ctx, 1, "image/png", 4, strings.NewReader("\x89PNG"))
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
	f.store.AssertNumberOfCalls(t, "RemoveObject", 1)

	p, err := f.svc.GetProfile(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, second, p.AvatarURL)
}

func TestUploadAvatar_Rejected(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	_, err := f.svc.UploadAvatar(ctx, 1, "application/pdf", 10, strings.NewReader("x"))
	assert.ErrorIs(t, err, ErrUnsupportedAvatar)

	_, err = f.svc.UploadAvatar(ctx, 1, "image/png", models.MaxAvatarBytes+1, strings.NewReader("x"))
	assert.ErrorIs(t, err, ErrUnsupportedAvatar)

	f.svc.store = nil
	_, err = f.svc.UploadAvatar(ctx, 1, "image/png", 4, strings.NewReader("x"))
	assert.ErrorIs(t, err, ErrStorageUnavailable)
}

func TestMigrations(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	for k, v := range map[string]string{
		legacyFirstName: "Sam",
		legacyAge:       "29",
		legacyGoals:     "run, swim",
		legacyHeight:    "181.5",
		legacyWeight:    "80",
		legacyFitness:   "beginner",
	} {
		require.NoError(t, f.repo.Update(ctx, 1, k, v))
	}
	require.NoError(t, f.repo.UpdateJSON(ctx, 2, models.ProfileKey, models.Profile{FirstName: "Pat", Goals: []string{"lift"}}))
	require.NoError(t, f.repo.Update(ctx, 2, legacyGoals, "ignored"))

	for _, m := range Migrations() {
		require.NoError(t, m.Up(ctx, f.repo))
	}

	var p models.Profile
	_, err := f.repo.GetJSON(ctx, 1, models.ProfileKey, &p)
	require.NoError(t, err)
	assert.Equal(t, "Sam", p.FirstName)
	assert.Equal(t, 29, *p.Age)
	assert.Equal(t, []string{"run", "swim"}, p.Goals)
	assert.Equal(t, "beginner", p.FitnessLevel)

	d, err := f.svc.GetPhysical(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 181.5, d.Height)

	_, ok, err := f.repo.Get(ctx, 1, legacyAge)
	require.NoError(t, err)
	assert.False(t, ok, "legacy key removed")
	_, ok, err = f.repo.Get(ctx, 1, legacyFirstName)
	require.NoError(t, err)
	assert.True(t, ok, "core key kept")

	var p2 models.Profile
	_, err = f.repo.GetJSON(ctx, 2, models.ProfileKey, &p2)
	require.NoError(t, err)
	assert.Equal(t, []string{"lift"}, p2.Goals, "existing values win")
}
