// Package events publishes roster-change notifications for downstream
// consumers (attendance dashboards, notification jobs).
package events

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Roster actions carried in the event payload.
const (
	ActionSignup     = "signup"
	ActionUnregister = "unregister"
)

// RosterChanged is emitted after a participant list mutation commits.
type RosterChanged struct {
	EventID    string    `json:"event_id"`
	Activity   string    `json:"activity"`
	Email      string    `json:"email"`
	Action     string    `json:"action"`
	OccurredAt time.Time `json:"occurred_at"`
}

// NewRosterChanged stamps a roster event with an ID and timestamp.
func NewRosterChanged(activity, email, action string) RosterChanged {
	return RosterChanged{
		EventID:    uuid.NewString(),
		Activity:   activity,
		Email:      email,
		Action:     action,
		OccurredAt: time.Now().UTC(),
	}
}

// Publisher delivers roster events. Publish failures must not surface to the
// HTTP caller; the registry mutation has already committed.
type Publisher interface {
	PublishRosterChanged(ctx context.Context, event RosterChanged) error
	Close() error
}

// NopPublisher discards events. Used when no brokers are configured.
type NopPublisher struct{}

// NewNopPublisher builds a NopPublisher.
func NewNopPublisher() *NopPublisher {
	return &NopPublisher{}
}

// PublishRosterChanged implements Publisher.
func (*NopPublisher) PublishRosterChanged(context.Context, RosterChanged) error {
	return nil
}

// Close implements Publisher.
func (*NopPublisher) Close() error {
	return nil
}
