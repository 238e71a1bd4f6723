// Package middleware groups the HTTP middleware for the Fiber application.
//
// It provides cross-cutting concerns that sit between the request and the handler.
//
// # Components
//
//   - auth: resolves the calling user from X-WP-User and checks the X-WP-Nonce
//     header against it, mirroring the WordPress REST cookie check. The same
//     package issues the per-user HMAC nonces.
//   - rayid: Generates a unique Request ID (RayID) for every incoming request,
//     injecting it into the context and response headers for tracing.
//
// These middleware components are designed to be registered globally or per-route
// in the main application setup.
package middleware
