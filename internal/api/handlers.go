// Package api exposes HTTP handlers for the roster service.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"example.com/roster/internal/domain"
	"example.com/roster/internal/events"
	"example.com/roster/internal/observability"
)

// IndexPath is where the root redirect sends browsers.
const IndexPath = "/static/index.html"

// Handler coordinates HTTP requests with the activity registry.
type Handler struct {
	registry  *domain.Registry
	publisher events.Publisher
}

// NewHandler builds a Handler.
func NewHandler(registry *domain.Registry, publisher events.Publisher) *Handler {
	return &Handler{registry: registry, publisher: publisher}
}

// RegisterRoutes wires endpoints to the mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/", root)
	mux.HandleFunc("/activities", h.activities)
	mux.HandleFunc("/activities/", h.rosterAction)
	mux.HandleFunc("/healthz", healthz)
}

// root redirects the bare path to the front-end page.
func root(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	http.Redirect(w, r, IndexPath, http.StatusTemporaryRedirect)
}

// healthz reports a simple OK status for container health checks.
func healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (h *Handler) activities(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "unsupported method")
		return
	}
	writeJSON(w, http.StatusOK, orderedActivities(h.registry.List()))
}

// rosterAction dispatches /activities/{name}/signup and
// /activities/{name}/unregister. The activity name is the URL-decoded path
// between the prefix and the final segment.
func (h *Handler) rosterAction(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/activities/")
	idx := strings.LastIndex(rest, "/")
	if idx <= 0 {
		http.NotFound(w, r)
		return
	}
	name, action := rest[:idx], rest[idx+1:]

	switch action {
	case "signup":
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "unsupported method")
			return
		}
		h.signup(w, r, name)
	case "unregister":
		if r.Method != http.MethodDelete {
			writeError(w, http.StatusMethodNotAllowed, "unsupported method")
			return
		}
		h.unregister(w, r, name)
	default:
		http.NotFound(w, r)
	}
}

func (h *Handler) signup(w http.ResponseWriter, r *http.Request, name string) {
	email, ok := requireEmail(w, r)
	if !ok {
		return
	}

	if err := h.registry.SignUp(name, email); err != nil {
		h.writeRegistryError(w, err, email, name)
		return
	}

	observability.RecordSignup(name, h.registry.RosterSize(name))
	h.publish(r.Context(), events.NewRosterChanged(name, email, events.ActionSignup))
	writeMessage(w, fmt.Sprintf("%s signed up for %s", email, name))
}

func (h *Handler) unregister(w http.ResponseWriter, r *http.Request, name string) {
	email, ok := requireEmail(w, r)
	if !ok {
		return
	}

	if err := h.registry.Unregister(name, email); err != nil {
		h.writeRegistryError(w, err, email, name)
		return
	}

	observability.RecordUnregister(name, h.registry.RosterSize(name))
	h.publish(r.Context(), events.NewRosterChanged(name, email, events.ActionUnregister))
	writeMessage(w, fmt.Sprintf("%s unregistered from %s", email, name))
}

// requireEmail distinguishes a missing email parameter (422) from an empty
// value, which is accepted and stored like any other string.
func requireEmail(w http.ResponseWriter, r *http.Request) (string, bool) {
	query := r.URL.Query()
	if !query.Has("email") {
		writeError(w, http.StatusUnprocessableEntity, "email query parameter is required")
		return "", false
	}
	return query.Get("email"), true
}

func (h *Handler) writeRegistryError(w http.ResponseWriter, err error, email, name string) {
	switch {
	case errors.Is(err, domain.ErrActivityNotFound):
		observability.RecordRejection(observability.ReasonNotFound)
		writeError(w, http.StatusNotFound, "Activity not found")
	case errors.Is(err, domain.ErrAlreadySignedUp):
		observability.RecordRejection(observability.ReasonAlreadySignedUp)
		writeError(w, http.StatusBadRequest, fmt.Sprintf("%s is already signed up for %s", email, name))
	case errors.Is(err, domain.ErrNotRegistered):
		observability.RecordRejection(observability.ReasonNotRegistered)
		writeError(w, http.StatusBadRequest, fmt.Sprintf("%s is not registered for %s", email, name))
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

// publish delivers a roster event without surfacing failures to the caller;
// the registry mutation has already committed.
func (h *Handler) publish(ctx context.Context, event events.RosterChanged) {
	if err := h.publisher.PublishRosterChanged(ctx, event); err != nil {
		log.Printf("publish roster event failed (activity=%s, action=%s): %v", event.Activity, event.Action, err)
	}
}

// activityView is the JSON shape of one activity record.
type activityView struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// orderedActivities marshals the name→record map as a JSON object whose keys
// appear in registry insertion order.
type orderedActivities []domain.Activity

// MarshalJSON implements json.Marshaler.
func (oa orderedActivities) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, activity := range oa {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(activity.Name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		value, err := json.Marshal(activityView{
			Description:     activity.Description,
			Schedule:        activity.Schedule,
			MaxParticipants: activity.MaxParticipants,
			Participants:    activity.Participants,
		})
		if err != nil {
			return nil, err
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func writeMessage(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusOK, map[string]string{"message": message})
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
