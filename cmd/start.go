package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"athlete-dashboard/core/apierror"
	"athlete-dashboard/core/config"
	"athlete-dashboard/core/database"
	"athlete-dashboard/core/logger"
	"athlete-dashboard/core/middleware/rayid"
	"athlete-dashboard/core/usermeta"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "athlete-dashboard/docs/swagger"
)

// @title Athlete Dashboard API
// @version 1.0
// @description REST API of the athlete dashboard.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey WPNonce
// @in header
// @name X-WP-Nonce

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the athlete dashboard server",
	Long:  `Starts the HTTP server and initializes all enabled dashboard features.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		if !cfg.Server.IsValidEnvironment() {
			logg.Warn("Unknown environment, treating as production", zap.String("environment", cfg.Server.Environment))
		}

		// 3. Connect to Database
		db, err := database.Connect(cfg.Database)
		if err != nil {
			logg.Fatal("Failed to connect to database", zap.Error(err))
		}
		issues, err := database.CheckSchema(db, usermeta.Models()...)
		if err != nil {
			logg.Warn("Schema check failed", zap.Error(err))
		}
		for _, issue := range issues {
			logg.Warn("Schema out of date, run migrate", zap.String("issue", issue.String()))
		}

		// 4. Wire services, features and the dashboard
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		a, err := buildApplication(ctx, cfg, logg, db)
		if err != nil {
			logg.Fatal("Failed to build application", zap.Error(err))
		}

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
			ErrorHandler:          apierror.Handler,
			BodyLimit:             4 * 1024 * 1024,
		})

		// Middleware Registration
		// 1. RayID (Must be first to trace everything)
		app.Use(rayid.New())

		// 2. Request logging (Zap + RayID)
		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// 3. Metrics
		if a.Metrics != nil {
			app.Use(a.Metrics.Middleware())
			app.Get(cfg.Metrics.Path, a.Metrics.Handler())
		}

		// 4. Swagger Documentation (Public)
		app.Get("/swagger/*", swagger.HandlerDefault)

		// 5. Load Features (each protects its own routes with the nonce check)
		if err := a.Manager.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 6. Sweep idle dashboard sessions
		sweepCtx, stopSweep := context.WithCancel(context.Background())
		go sweepSessions(sweepCtx, a, cfg.Dashboard.SessionIdle(), logg)

		// 7. Start Server
		go func() {
			logg.Info("Starting server",
				zap.String("port", cfg.Server.Port),
				zap.String("environment", cfg.Server.Environment))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 8. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		stopSweep()
		_ = app.Shutdown()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Dashboard.InitTimeout())
		defer cancel()
		a.Dashboard.Sessions.CloseAll(shutdownCtx)
	},
}

// sweepSessions closes sessions idle for longer than idle until ctx ends.
func sweepSessions(ctx context.Context, a *application, idle time.Duration, logg *zap.Logger) {
	ticker := time.NewTicker(idle / 2)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := a.Dashboard.Sessions.Sweep(ctx, idle); n > 0 {
				logg.Debug("Closed idle dashboard sessions", zap.Int("count", n))
			}
			a.Metrics.SetSessions(a.Dashboard.Sessions.Len())
		}
	}
}

func init() {
	RootCmd.AddCommand(startCmd)
}
