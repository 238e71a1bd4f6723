// Package shell serves the dashboard page itself: the bootstrap data the client
// reads once at start-up, the ordered navigation, feature switching and the
// per-user router snapshot of the active feature.
//
//	GET  /dashboard/bootstrap   api url, nonce, user id, debug flag
//	GET  /dashboard/navigation  enabled features in display order
//	POST /dashboard/navigate    {feature} -> URL carrying dashboard_feature
//	GET  /dashboard             activate and render ?dashboard_feature=
//	POST /dashboard/retry       re-run Init of the active feature
//
// Bootstrap mints a nonce for the user named in X-WP-User, so it is only
// answered when X-Dashboard-Bootstrap carries the secret shared with the page
// host, or, with no secret configured, in development.
//
// Feature state is reported inline in the snapshot; these routes answer 200
// even when the active feature failed.
package shell
