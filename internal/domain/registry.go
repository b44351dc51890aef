// Package domain defines the activity registry and its business rules.
package domain

import (
	"errors"
	"sync"
)

var (
	// ErrActivityNotFound is returned when an activity name is not in the registry.
	ErrActivityNotFound = errors.New("activity not found")
	// ErrAlreadySignedUp is returned when the email is already on the activity's roster.
	ErrAlreadySignedUp = errors.New("already signed up for activity")
	// ErrNotRegistered is returned when the email is not on the activity's roster.
	ErrNotRegistered = errors.New("not registered for activity")
)

// Activity describes one school club or class and its roster.
type Activity struct {
	Name            string
	Description     string
	Schedule        string
	MaxParticipants int // advisory capacity, never enforced
	Participants    []string
}

// Registry is the in-memory store of all activities. The activity set is
// fixed at construction; only participant lists mutate afterwards. A single
// RWMutex serializes mutations so each operation is atomic.
type Registry struct {
	mu         sync.RWMutex
	order      []string
	activities map[string]*Activity
}

// NewRegistry builds a registry seeded with the given activities, preserving
// their order for listing. Tests reset state by constructing a fresh registry.
func NewRegistry(seed []Activity) *Registry {
	r := &Registry{
		activities: make(map[string]*Activity, len(seed)),
		order:      make([]string, 0, len(seed)),
	}
	for _, activity := range seed {
		copied := activity
		copied.Participants = append([]string(nil), activity.Participants...)
		r.activities[copied.Name] = &copied
		r.order = append(r.order, copied.Name)
	}
	return r
}

// List returns a snapshot of every activity in insertion order. The snapshot
// shares no memory with the registry.
func (r *Registry) List() []Activity {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Activity, 0, len(r.order))
	for _, name := range r.order {
		activity := r.activities[name]
		copied := *activity
		copied.Participants = make([]string, len(activity.Participants))
		copy(copied.Participants, activity.Participants)
		out = append(out, copied)
	}
	return out
}

// SignUp appends email to the activity's roster. Matching is exact-string:
// no trimming, case folding, or format validation, and the empty string is a
// valid value. Capacity is advisory and never checked.
func (r *Registry) SignUp(activityName, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	activity, ok := r.activities[activityName]
	if !ok {
		return ErrActivityNotFound
	}
	for _, participant := range activity.Participants {
		if participant == email {
			return ErrAlreadySignedUp
		}
	}
	activity.Participants = append(activity.Participants, email)
	return nil
}

// Unregister removes exactly one occurrence of email from the activity's
// roster, preserving the order of the remaining participants.
func (r *Registry) Unregister(activityName, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	activity, ok := r.activities[activityName]
	if !ok {
		return ErrActivityNotFound
	}
	for i, participant := range activity.Participants {
		if participant == email {
			activity.Participants = append(activity.Participants[:i], activity.Participants[i+1:]...)
			return nil
		}
	}
	return ErrNotRegistered
}

// RosterSize reports the current participant count for an activity, or -1 if
// the activity is unknown. Used for the participants gauge.
func (r *Registry) RosterSize(activityName string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	activity, ok := r.activities[activityName]
	if !ok {
		return -1
	}
	return len(activity.Participants)
}
