// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance that supports different environments (development vs production)
// and integrates with the Fiber web framework.
//
// # Context Awareness
//
// WithRayID extracts the RayID from a Fiber context and attaches it to the log entry.
// WithUser additionally attaches the authenticated dashboard user, so every line
// written while serving a request can be correlated back to the athlete.
//
// # Debug Channel
//
// The dashboard router only emits lifecycle traces when the request context has
// debug enabled. Debug returns a named child logger in that case and a no-op logger
// otherwise.
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	log.Info("Server started")
//
//	// In a request handler:
//	l := logger.WithUser(log, c)
//	l.Error("Handler failed", zap.Error(err))
package logger
