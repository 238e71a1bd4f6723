// Package workouts implements the training log feature: list, create and delete
// workouts under /athlete-dashboard/v1/workouts, stored as one JSON document per
// user in the athlete_workouts meta key.
package workouts
