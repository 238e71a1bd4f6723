// Package dashboard implements the pluggable feature system behind the athlete
// dashboard: the Feature contract, the application-wide Registry, a per-user Router
// driving feature lifecycles, Navigation, and the render error Boundary.
//
// # Lifecycle
//
// A feature moves through
//
//	unregistered -> registered -> initializing -> ready | error -> disabled | cleaned-up
//
// Registration validates the required members (identifier, display name) and
// rejects duplicates. The router activates one feature at a time: the previous
// feature is cleaned up before the next one's Init starts. Init runs in its own
// goroutine; callers Await the outcome with a context deadline so a slow feature
// shows a loading state instead of hanging the request.
//
// # Generations
//
// Every activation increments the router's generation. When an Init finishes for a
// generation that is no longer current, its result is dropped and Cleanup runs for
// it, so switching features mid-initialisation is safe.
//
// # Router states
//
//   - no-feature: neither the requested nor the fallback feature exists
//   - disabled: the feature's IsEnabled returned false; Init and Render never run
//   - initializing: Init in flight
//   - error: Init failed; terminal until Retry
//   - ready: Render output is returned, wrapped by the error Boundary
//
// Init only re-runs when the feature identifier changes or on an explicit Retry.
package dashboard
