package models

import "time"

// Meta keys the profile feature owns.
const (
	ProfileKey         = "athlete_profile"
	PhysicalHistoryKey = "athlete_physical_history"
	PhysicalKey        = "athlete_physical"
)

// EmergencyContact is the person to call for an athlete.
type EmergencyContact struct {
	Name         string `json:"name" validate:"required,max=100"`
	Phone        string `json:"phone" validate:"required,phone"`
	Relationship string `json:"relationship,omitempty" validate:"omitempty,max=50"`
}

// Profile is the athlete's personal information, stored JSON-encoded under ProfileKey.
type Profile struct {
	FirstName         string            `json:"firstName" validate:"omitempty,max=50"`
	LastName          string            `json:"lastName" validate:"omitempty,max=50"`
	Email             string            `json:"email" validate:"omitempty,email"`
	Phone             string            `json:"phone,omitempty" validate:"omitempty,phone"`
	Age               *int              `json:"age,omitempty" validate:"omitempty,gte=13,lte=120"`
	Gender            string            `json:"gender,omitempty" validate:"omitempty,oneof=male female other prefer_not_to_say"`
	DateOfBirth       string            `json:"dateOfBirth,omitempty" validate:"omitempty,pastdate"`
	FitnessLevel      string            `json:"fitnessLevel,omitempty" validate:"omitempty,oneof=beginner intermediate advanced expert"`
	ActivityLevel     string            `json:"activityLevel,omitempty" validate:"omitempty,oneof=sedentary lightly_active moderately_active very_active extremely_active"`
	Goals             []string          `json:"goals" validate:"max=10,dive,max=100"`
	MedicalConditions []string          `json:"medicalConditions" validate:"max=20,dive,max=200"`
	Injuries          []string          `json:"injuries" validate:"max=20,dive,max=200"`
	EmergencyContact  *EmergencyContact `json:"emergencyContact,omitempty" validate:"omitempty"`
	PreferredUnits    string            `json:"preferredUnits" validate:"omitempty,oneof=metric imperial"`
	AvatarURL         string            `json:"avatarUrl,omitempty"`
	UpdatedAt         *time.Time        `json:"updatedAt,omitempty"`
}

// Normalize fills collection fields so they serialise as [] rather than null.
func (p *Profile) Normalize() {
	if p.Goals == nil {
		p.Goals = []string{}
	}
	if p.MedicalConditions == nil {
		p.MedicalConditions = []string{}
	}
	if p.Injuries == nil {
		p.Injuries = []string{}
	}
	if p.PreferredUnits == "" {
		p.PreferredUnits = UnitsMetric
	}
}

// LegacyProfile is the flat shape served on /custom/v1/profile.
type LegacyProfile struct {
	ID           uint     `json:"id"`
	Username     string   `json:"username"`
	Email        string   `json:"email"`
	DisplayName  string   `json:"displayName"`
	FirstName    string   `json:"firstName"`
	LastName     string   `json:"lastName"`
	Age          int      `json:"age"`
	Gender       string   `json:"gender"`
	Height       float64  `json:"height"`
	Weight       float64  `json:"weight"`
	Units        string   `json:"units"`
	FitnessLevel string   `json:"fitnessLevel"`
	Goals        []string `json:"goals"`
	AvatarURL    string   `json:"avatarUrl"`
}

// Units systems for physical measurements.
const (
	UnitsMetric   = "metric"
	UnitsImperial = "imperial"
)

// Preferences controls how physical data is displayed.
type Preferences struct {
	ShowMetric bool `json:"showMetric"`
}

// PhysicalData holds body measurements. Lengths are cm (metric) or inches
// (imperial); weight is kg or lb.
type PhysicalData struct {
	Height      float64     `json:"height" validate:"gt=0"`
	Weight      float64     `json:"weight" validate:"gt=0"`
	Units       string      `json:"units" validate:"required,oneof=metric imperial"`
	Chest       *float64    `json:"chest,omitempty" validate:"omitempty,gt=0"`
	Waist       *float64    `json:"waist,omitempty" validate:"omitempty,gt=0"`
	Hips        *float64    `json:"hips,omitempty" validate:"omitempty,gt=0"`
	Preferences Preferences `json:"preferences"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

// Limits are the accepted height and weight ranges for one units system.
type Limits struct {
	MinHeight, MaxHeight float64
	MinWeight, MaxWeight float64
}

// PhysicalLimits maps each units system to its plausible ranges.
var PhysicalLimits = map[string]Limits{
	UnitsMetric:   {MinHeight: 50, MaxHeight: 300, MinWeight: 20, MaxWeight: 500},
	UnitsImperial: {MinHeight: 20, MaxHeight: 120, MinWeight: 44, MaxWeight: 1100},
}

// MaxAvatarBytes is the largest accepted avatar upload.
const MaxAvatarBytes = 2 << 20

// AvatarTypes maps accepted upload content types to file extensions.
var AvatarTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}
