// Package cache provides the read-through cache used for hot per-user documents
// such as profiles.
//
// Three backends implement Cache:
//   - Memory: process local, the default
//   - Redis: shared between instances (go-redis)
//   - Noop: disables caching
//
// Loader layers JSON encoding and singleflight on top so a burst of requests for
// an uncached profile hits the database once. Features invalidate entries when
// they publish update events.
package cache
