// Package session defines the read-only session accessor consumed by web
// views and the provider contract implemented by authentication backends.
package session

import (
	"context"
	"net/http"
	"strings"
)

// Session is the authenticated identity visible to views.
type Session struct {
	UserID      string
	DisplayName string
	Email       string
	PhotoURL    string
}

// State enumerates session resolution outcomes.
type State int

const (
	// StateAbsent means no authenticated user. It is terminal for a render.
	StateAbsent State = iota
	// StatePending means resolution did not finish within its deadline.
	StatePending
	// StatePresent means an authenticated user is available.
	StatePresent
)

// String returns the metric/log label for the state.
func (s State) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StatePresent:
		return "present"
	default:
		return "absent"
	}
}

// Status is the outcome of resolving the session for one request.
type Status struct {
	State   State
	Session Session
	// Key is the session cookie value the status was resolved from. Logouts
	// for one cookie share a key whether or not resolution finished.
	Key string
}

// Absent returns the unauthenticated status.
func Absent() Status {
	return Status{State: StateAbsent}
}

// Pending returns the unresolved status.
func Pending() Status {
	return Status{State: StatePending}
}

// Present returns an authenticated status for s.
func Present(key string, s Session) Status {
	return Status{State: StatePresent, Session: s, Key: strings.TrimSpace(key)}
}

// User returns the session when present.
func (s Status) User() (Session, bool) {
	if s.State != StatePresent {
		return Session{}, false
	}
	return s.Session, true
}

// Provider is the authentication collaborator.
//
// Resolve must be safe to call on every render and never fails: resolution
// errors collapse to Absent, and only an unfinished resolution reports
// Pending. Logout ends the request's session and reports failure explicitly.
type Provider interface {
	Resolve(r *http.Request) Status
	Logout(ctx context.Context, r *http.Request) error
}

// Accessor is the per-request read view over a Provider. It resolves the
// session at most once.
type Accessor struct {
	provider Provider
	request  *http.Request
	status   *Status
}

// NewAccessor binds provider to one request. A nil provider always reports Absent.
func NewAccessor(provider Provider, r *http.Request) *Accessor {
	return &Accessor{provider: provider, request: r}
}

// Status resolves and caches the session status.
func (a *Accessor) Status() Status {
	if a == nil {
		return Absent()
	}
	if a.status != nil {
		return *a.status
	}
	status := Absent()
	if a.provider != nil && a.request != nil {
		status = a.provider.Resolve(a.request)
	}
	a.status = &status
	return status
}

// Logout invokes the provider's logout action for the bound request.
func (a *Accessor) Logout(ctx context.Context) error {
	if a == nil || a.provider == nil {
		return nil
	}
	return a.provider.Logout(ctx, a.request)
}

// DisplayNameFallback is shown when the identity has no display name.
const DisplayNameFallback = "User"

// PlaceholderPhotoURL is shown when the identity has no photo.
const PlaceholderPhotoURL = "https://placehold.co/40x40"

// Name returns the display name or the literal fallback.
func (s Session) Name() string {
	if name := strings.TrimSpace(s.DisplayName); name != "" {
		return name
	}
	return DisplayNameFallback
}

// Avatar returns the photo URL or the placeholder image.
func (s Session) Avatar() string {
	if photo := strings.TrimSpace(s.PhotoURL); photo != "" {
		return photo
	}
	return PlaceholderPhotoURL
}
