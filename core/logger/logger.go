package logger

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New creates a new zap logger based on the configuration.
func New(cfg *Config) (*zap.Logger, error) {
	var config zap.Config

	if cfg.Level == "debug" {
		config = zap.NewDevelopmentConfig()
	} else {
		config = zap.NewProductionConfig()
		if lvl, err := zapcore.ParseLevel(cfg.Level); err == nil {
			config.Level = zap.NewAtomicLevelAt(lvl)
		}
	}

	if cfg.Format == "console" {
		config.Encoding = "console"
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		config.DisableStacktrace = true
	} else {
		config.Encoding = "json"
	}

	config.EncoderConfig.LevelKey = "level"
	config.EncoderConfig.TimeKey = "time"
	config.EncoderConfig.MessageKey = "message"

	return config.Build()
}

// WithRayID returns a logger with the ray_id field set from the Fiber context.
func WithRayID(l *zap.Logger, c *fiber.Ctx) *zap.Logger {
	rid := c.Locals("ray_id")
	if str, ok := rid.(string); ok && str != "" {
		return l.With(zap.String("ray_id", str))
	}
	return l
}

// WithUser returns a logger annotated with the authenticated user id, if any.
func WithUser(l *zap.Logger, c *fiber.Ctx) *zap.Logger {
	l = WithRayID(l, c)
	if uid, ok := c.Locals("user_id").(uint); ok && uid > 0 {
		return l.With(zap.Uint("user_id", uid))
	}
	return l
}

// Debug returns the debug channel used by the dashboard router.
// When enabled is false the returned logger discards everything.
func Debug(l *zap.Logger, enabled bool) *zap.Logger {
	if !enabled || l == nil {
		return zap.NewNop()
	}
	return l.Named("debug")
}
