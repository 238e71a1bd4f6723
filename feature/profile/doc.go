// Package profile implements the athlete profile feature.
//
// It serves the profile REST endpoints the dashboard client consumes:
//
//	GET/POST /athlete-dashboard/v1/profile         profile of the current user
//	POST     /athlete-dashboard/v1/profile/avatar  avatar upload to object storage
//	GET      /custom/v1/profile                    legacy flat profile
//	GET/POST /profile/physical/:user_id            measurements (self or administrator)
//	GET      /profile/physical/:user_id/history    measurement history, newest first
//
// Data lives in user meta (athlete_profile, athlete_physical and
// athlete_physical_history). Profile reads go through the read-through cache,
// which is invalidated by profile:updated events.
//
// The Feature type is also a dashboard feature: Init warms the cache and Render
// returns the profile panel view.
package profile
