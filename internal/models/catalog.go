package models

// Event is a catalogued analytics event. The (Name, Type) pair identifies an
// event uniquely across the whole catalog.
type Event struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description"`
}

// Property is a catalogued payload property. Identity follows the same
// (Name, Type) convention as Event; Type is one of string, number, boolean.
type Property struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description"`
}

// TrackingPlan composes events and properties into a schema describing the
// payloads a data pipeline expects. The plan owns its join rows only; the
// underlying Event and Property rows are shared across plans.
type TrackingPlan struct {
	ID          int64               `json:"id"`
	Name        string              `json:"name"`
	Description string              `json:"description"`
	Events      []TrackingPlanEvent `json:"events"`
}

// TrackingPlanEvent links one event into a plan together with the plan's
// additional-properties policy for it.
type TrackingPlanEvent struct {
	ID                   int64                       `json:"id"`
	TrackingPlanID       int64                       `json:"trackingPlanId"`
	EventID              int64                       `json:"eventId"`
	AdditionalProperties bool                        `json:"additionalProperties"`
	Event                Event                       `json:"event"`
	Properties           []TrackingPlanEventProperty `json:"properties"`
}

// TrackingPlanEventProperty links one property into an event-within-a-plan,
// optionally marking it required.
type TrackingPlanEventProperty struct {
	ID                  int64    `json:"id"`
	TrackingPlanEventID int64    `json:"trackingPlanEventId"`
	PropertyID          int64    `json:"propertyId"`
	Required            bool     `json:"required"`
	Property            Property `json:"property"`
}
