package types

import "time"

// VisitRequest is the create payload. PetID comes from the request path;
// a zero Date means today. IdempotencyKey is optional and lets a client
// replay a booking without creating a second visit.
type VisitRequest struct {
	PetID          int64     `json:"petId" validate:"gt=0"`
	Date           time.Time `json:"date"`
	Description    string    `json:"description" validate:"notblank"`
	IdempotencyKey string    `json:"idempotencyKey,omitempty"`
}
