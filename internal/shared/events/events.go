// Package events defines the domain event envelope published after writes.
package events

import (
	"context"
	"encoding/json"
	"strconv"
	"time"
)

// Event types emitted by the clinic services.
const (
	OwnerCreated = "owner.created"
	OwnerUpdated = "owner.updated"
	PetCreated   = "pet.created"
	PetUpdated   = "pet.updated"
	VisitCreated = "visit.created"
)

// Event is a single state change, keyed by the affected entity id.
type Event struct {
	Type       string          `json:"type"`
	Key        string          `json:"key"`
	OccurredAt time.Time       `json:"occurredAt"`
	Payload    json.RawMessage `json:"payload"`
}

// New encodes payload and stamps the event with the current time.
func New(eventType string, id int64, payload any) (Event, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return Event{}, err
	}
	return Event{
		Type:       eventType,
		Key:        strconv.FormatInt(id, 10),
		OccurredAt: time.Now().UTC(),
		Payload:    raw,
	}, nil
}

// Publisher delivers events to a broker.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// Noop discards every event.
type Noop struct{}

func (Noop) Publish(context.Context, Event) error { return nil }

var _ Publisher = Noop{}
