package models

// Request DTOs. Validation rules live in the binding tags and are evaluated
// by gin's validator engine; update DTOs use pointers so that an absent field
// means "leave unchanged" rather than "overwrite with the zero value".

// CreateEventRequest is the POST /events payload.
type CreateEventRequest struct {
	Name        string `json:"name" binding:"required"`
	Type        string `json:"type" binding:"required"`
	Description string `json:"description" binding:"required"`
}

// UpdateEventRequest is the PUT /events/:id payload.
type UpdateEventRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1"`
	Type        *string `json:"type" binding:"omitempty,min=1"`
	Description *string `json:"description" binding:"omitempty,min=1"`
}

// CreatePropertyRequest is the POST /properties payload.
type CreatePropertyRequest struct {
	Name        string `json:"name" binding:"required"`
	Type        string `json:"type" binding:"required,oneof=string number boolean"`
	Description string `json:"description" binding:"required"`
}

// UpdatePropertyRequest is the PUT /properties/:id payload.
type UpdatePropertyRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1"`
	Type        *string `json:"type" binding:"omitempty,oneof=string number boolean"`
	Description *string `json:"description" binding:"omitempty,min=1"`
}

// TrackingPlanPropertyInput is one property spec inside a tracking-plan
// payload. ID targets an existing join row and is only honored on update.
type TrackingPlanPropertyInput struct {
	ID          *int64 `json:"id" binding:"omitempty,gt=0"`
	Name        string `json:"name" binding:"required"`
	Type        string `json:"type" binding:"required,oneof=string number boolean"`
	Description string `json:"description" binding:"required"`
	Required    *bool  `json:"required" binding:"required"`
}

// TrackingPlanEventInput is one event spec inside a tracking-plan payload.
// ID targets an existing join row and is only honored on update.
type TrackingPlanEventInput struct {
	ID                   *int64                      `json:"id" binding:"omitempty,gt=0"`
	Name                 string                      `json:"name" binding:"required"`
	Type                 string                      `json:"type" binding:"required"`
	Description          string                      `json:"description" binding:"required"`
	AdditionalProperties *bool                       `json:"additionalProperties" binding:"required"`
	Properties           []TrackingPlanPropertyInput `json:"properties" binding:"dive"`
}

// CreateTrackingPlanRequest is the POST /tracking-plans payload.
type CreateTrackingPlanRequest struct {
	Name        string                   `json:"name" binding:"required"`
	Description string                   `json:"description" binding:"required"`
	Events      []TrackingPlanEventInput `json:"events" binding:"required,dive"`
}

// UpdateTrackingPlanRequest is the PUT /tracking-plans/:id payload. A nil
// Events slice leaves the plan's composition untouched; join rows omitted
// from a present slice are left alone, never pruned.
type UpdateTrackingPlanRequest struct {
	Name        *string                  `json:"name" binding:"omitempty,min=1"`
	Description *string                  `json:"description" binding:"omitempty,min=1"`
	Events      []TrackingPlanEventInput `json:"events" binding:"omitempty,dive"`
}
