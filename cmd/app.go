package cmd

import (
	"context"
	"time"

	"athlete-dashboard/core/cache"
	"athlete-dashboard/core/config"
	"athlete-dashboard/core/dashboard"
	"athlete-dashboard/core/events"
	"athlete-dashboard/core/loader"
	"athlete-dashboard/core/metrics"
	"athlete-dashboard/core/middleware/auth"
	"athlete-dashboard/core/storage"
	"athlete-dashboard/core/usermeta"
	"athlete-dashboard/core/validation"
	"athlete-dashboard/feature/equipment"
	"athlete-dashboard/feature/overview"
	"athlete-dashboard/feature/profile"
	"athlete-dashboard/feature/shell"
	"athlete-dashboard/feature/workouts"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// application is everything the server needs, wired from configuration.
type application struct {
	Dashboard *dashboard.Dashboard
	Manager   *loader.Manager
	Bus       *events.Bus
	Metrics   *metrics.Metrics
	Nonces    *auth.Nonces
	Users     *usermeta.Repository
}

// buildApplication wires services, features and the dashboard.
// Storage and metrics are optional: a nil store disables avatar uploads.
func buildApplication(ctx context.Context, cfg *config.Config, logg *zap.Logger, db *gorm.DB) (*application, error) {
	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		m = metrics.New()
	}

	c, err := cache.New(cfg.Cache)
	if err != nil {
		return nil, err
	}
	cl := cache.NewLoader(c, time.Duration(cfg.Cache.TTLSeconds)*time.Second, logg)

	store, err := storage.NewClient(cfg.Storage)
	if err != nil {
		logg.Warn("Storage client unavailable, avatar uploads disabled", zap.Error(err))
		store = nil
	} else if err := storage.EnsureBucket(ctx, store, cfg.Storage.Bucket, cfg.Storage.Region); err != nil {
		logg.Warn("Storage bucket unavailable, avatar uploads disabled", zap.Error(err))
		store = nil
	}

	bus := events.NewBus(logg)
	bus.Observe(m.EventEmitted)

	users := usermeta.NewRepository(db)
	v := validation.New()
	nonces := auth.NewNonces(cfg.Auth.NonceSecret, cfg.Auth.Lifetime())
	authn := auth.New(nonces)

	d := dashboard.New(dashboard.Options{
		Logger:      logg,
		Fallback:    cfg.Dashboard.DefaultFeature,
		InitTimeout: cfg.Dashboard.InitTimeout(),
		OnTransition: func(feature string, to dashboard.Lifecycle) {
			m.FeatureTransition(feature, string(to))
		},
		OnInit: m.ObserveInit,
	})

	profileSvc := profile.NewService(users, v, cl, bus, store, cfg.Storage, logg)
	workoutSvc := workouts.NewService(users, v, bus, logg)
	equipmentSvc := equipment.NewService(users, v, bus, logg)
	overviewSvc := overview.NewService(profileSvc, workoutSvc, equipmentSvc, cl)

	enabled := cfg.Dashboard.FeatureEnabled
	overviewFeature := overview.NewFeature(overviewSvc, authn, bus, enabled(overview.ID))
	profileFeature := profile.NewFeature(profileSvc, authn, bus, enabled(profile.ID))
	workoutsFeature := workouts.NewFeature(workoutSvc, authn, enabled(workouts.ID))
	equipmentFeature := equipment.NewFeature(equipmentSvc, authn, enabled(equipment.ID))

	if err := d.Register(overviewFeature, profileFeature, workoutsFeature, equipmentFeature); err != nil {
		return nil, err
	}

	shellFeature, err := shell.NewFeature(shell.Options{
		Dashboard: d,
		Bus:       bus,
		Nonces:    nonces,
		Users:     users,
		Server:    cfg.Server,
		Config:    cfg.Dashboard,
		Auth:      authn,
		Logger:    logg,

		BootstrapSecret: cfg.Auth.BootstrapSecret,
	})
	if err != nil {
		return nil, err
	}

	mgr := loader.NewManager(logg)
	mgr.Register(shellFeature, overviewFeature, profileFeature, workoutsFeature, equipmentFeature)

	return &application{
		Dashboard: d,
		Manager:   mgr,
		Bus:       bus,
		Metrics:   m,
		Nonces:    nonces,
		Users:     users,
	}, nil
}
