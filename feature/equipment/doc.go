// Package equipment implements the equipment inventory feature under
// /athlete-dashboard/v1/equipment. Items are kept as one JSON document per user
// in the athlete_equipment meta key.
package equipment
