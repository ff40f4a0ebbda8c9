// Package session holds the per-client application state: who is logged in
// and which view is active. State changes only through the action methods.
package session

import (
	"time"

	"temanikan/internal/access"
	"temanikan/internal/models"
)

// Session is the state of one browsing client.
type Session struct {
	ID         string      `json:"id"`
	User       models.User `json:"user"`
	ActiveView models.View `json:"active_view"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`

	// requested is the last navigation target, valid or not.
	requested string
}

// New returns a guest session on the home view.
func New(id string, now time.Time) *Session {
	now = now.UTC()
	return &Session{
		ID:         id,
		User:       models.GuestUser(),
		ActiveView: models.ViewHome,
		CreatedAt:  now,
		UpdatedAt:  now,
		requested:  string(models.ViewHome),
	}
}

// Role is the role used for access decisions.
func (s *Session) Role() models.Role {
	if s.User.IsGuest() {
		return models.RoleGuest
	}
	return s.User.Role
}

// Login replaces the current user wholesale. The active view is kept.
func (s *Session) Login(u models.User) {
	s.User = u
	s.touch()
}

// Logout drops the user and returns to home as a guest.
func (s *Session) Logout() {
	s.User = models.GuestUser()
	s.ActiveView = models.ViewHome
	s.requested = string(models.ViewHome)
	s.touch()
}

// SwitchToGuest becomes the guest identity without leaving the current view.
// The next Resolve drops the view if guests may not see it.
func (s *Session) SwitchToGuest() {
	s.User = models.GuestUser()
	s.touch()
}

// Navigate records the requested view unconditionally. Validation happens
// in Resolve, so callers cannot tell a denied target from home.
func (s *Session) Navigate(viewID string) {
	s.requested = viewID
	if v, ok := models.ParseView(viewID); ok {
		s.ActiveView = v
	} else {
		s.ActiveView = models.View(viewID)
	}
	s.touch()
}

// Resolve is the render step: it re-checks the active view against the
// access policy and forces home when the view is denied or unknown.
// It reports whether the requested view was kept.
func (s *Session) Resolve() (models.View, bool) {
	v, known := models.ParseView(string(s.ActiveView))
	if !known || !access.CanAccess(s.Role(), v) {
		s.ActiveView = models.ViewHome
		return models.ViewHome, known && v == models.ViewHome
	}
	s.ActiveView = v
	return v, true
}

// Requested returns the last navigation target as given by the caller.
func (s *Session) Requested() string {
	return s.requested
}

func (s *Session) touch() {
	s.UpdatedAt = time.Now().UTC()
}
