package events

// Event names shared between features.
const (
	Navigate         = "dashboard:navigate"
	FeatureReady     = "dashboard:feature-ready"
	FeatureError     = "dashboard:feature-error"
	ProfileUpdated   = "profile:updated"
	PhysicalUpdated  = "physical:updated"
	WorkoutsUpdated  = "workouts:updated"
	EquipmentUpdated = "equipment:updated"
)

// NavigatePayload is emitted with Navigate.
type NavigatePayload struct {
	UserID uint   `json:"userId"`
	From   string `json:"from"`
	To     string `json:"to"`
}

// FeaturePayload is emitted with FeatureReady and FeatureError.
type FeaturePayload struct {
	UserID  uint   `json:"userId"`
	Feature string `json:"feature"`
	Error   string `json:"error,omitempty"`
}

// UserPayload is emitted whenever a user's stored data changes.
type UserPayload struct {
	UserID uint `json:"userId"`
}
