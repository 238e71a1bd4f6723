// Package metrics exposes Prometheus collectors for the dashboard.
//
// Recorded series:
//   - events_emitted_total: one increment per bus emission
//   - feature_transitions_total and feature_init_duration_seconds: router lifecycle
//   - http_requests_total and http_request_duration_seconds: fiber middleware
//   - active_sessions: live per-user routers
//
// Every recording method is safe to call on a nil *Metrics, which is how the
// server runs with metrics.enabled=false.
package metrics
