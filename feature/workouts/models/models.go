package models

import "time"

// Key is the user meta key holding the JSON-encoded workout log.
const Key = "athlete_workouts"

// Exercise is one movement within a workout.
type Exercise struct {
	Name   string  `json:"name" validate:"required,max=100"`
	Sets   int     `json:"sets" validate:"gte=0,lte=100"`
	Reps   int     `json:"reps" validate:"gte=0,lte=1000"`
	Weight float64 `json:"weight,omitempty" validate:"gte=0"`
}

// Workout is a logged training session. Duration is in minutes, Intensity 1-10.
type Workout struct {
	ID        string     `json:"id"`
	Name      string     `json:"name" validate:"required,max=100"`
	Type      string     `json:"type" validate:"required,oneof=strength cardio hiit flexibility sports other"`
	Duration  int        `json:"duration" validate:"gt=0,lte=1440"`
	Intensity int        `json:"intensity,omitempty" validate:"omitempty,gte=1,lte=10"`
	Date      string     `json:"date" validate:"required,datetime=2006-01-02"`
	Notes     string     `json:"notes,omitempty" validate:"max=1000"`
	Exercises []Exercise `json:"exercises" validate:"max=50,dive"`
	CreatedAt time.Time  `json:"createdAt"`
}

// Summary aggregates workouts over a period.
type Summary struct {
	Count   int            `json:"count"`
	Minutes int            `json:"minutes"`
	ByType  map[string]int `json:"byType"`
}
