package domain

import "time"

// Visit records one appointment for a pet. PetID is fixed when the visit is
// created.
type Visit struct {
	ID          int64
	PetID       int64
	Date        time.Time
	Description string
}

// Today returns the current UTC date at midnight, the default visit date.
func Today() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
