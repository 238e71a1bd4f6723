// Package apierror renders failures as WordPress REST error objects.
//
// The dashboard client was written against WordPress and expects every error body to
// carry a machine-readable code, a human message and the HTTP status nested under
// data. Handlers return *Error values (or plain errors) and the Fiber ErrorHandler
// registered by the start command serialises them.
//
// Status conventions:
//   - 401 unauthenticated (missing user)
//   - 403 forbidden (bad nonce, other user's data)
//   - 404 missing user or resource
//   - 400 validation failure, with per-field messages under data.params
//   - 500 persistence failure
package apierror
