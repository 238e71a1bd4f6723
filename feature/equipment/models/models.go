package models

import "time"

// Key is the user meta key holding the JSON-encoded equipment inventory.
const Key = "athlete_equipment"

// Equipment is an item the athlete has access to. Weight is in the user's preferred units.
type Equipment struct {
	ID          string    `json:"id"`
	Name        string    `json:"name" validate:"required,max=100"`
	Type        string    `json:"type" validate:"required,oneof=free_weights machine cardio accessories other"`
	Weight      *float64  `json:"weight,omitempty" validate:"omitempty,gte=0"`
	Quantity    int       `json:"quantity" validate:"gte=1,lte=1000"`
	Description string    `json:"description,omitempty" validate:"max=500"`
	CreatedAt   time.Time `json:"createdAt"`
}
