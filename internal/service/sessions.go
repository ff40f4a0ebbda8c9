package service

import (
	"context"
	"time"

	"temanikan/internal/metrics"
	"temanikan/internal/models"
	"temanikan/internal/session"
)

// Login methods reported in events and metrics.
const (
	MethodPassword = "password"
	MethodDemo     = "demo"
	MethodRegister = "register"
	MethodGuest    = "guest"
)

// Navigation is the outcome of a view change. Active is what the client
// renders; it is home whenever Requested was denied or unknown.
type Navigation struct {
	Requested string          `json:"requested"`
	Active    models.View     `json:"active"`
	Session   session.Session `json:"session"`
}

// DefaultSweepInterval is how often Run evicts expired sessions.
const DefaultSweepInterval = time.Minute

type SessionService struct {
	store  *session.Store
	events EventLog
	maxAge time.Duration
	now    func() time.Time
}

type SessionOption func(*SessionService)

// WithSessionMaxAge bounds how long a session outlives its creation. It
// should match the token lifetime.
func WithSessionMaxAge(d time.Duration) SessionOption {
	return func(s *SessionService) {
		if d > 0 {
			s.maxAge = d
		}
	}
}

func NewSessionService(store *session.Store, events EventLog, opts ...SessionOption) *SessionService {
	s := &SessionService{store: store, events: events, maxAge: DefaultTokenTTL, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start opens a stored guest session on home.
func (s *SessionService) Start() session.Session {
	sess := s.store.Create()
	metrics.SessionsActive.Set(float64(s.store.Len()))
	return sess
}

// Guest returns an unstored guest session on home for requests that only read.
func (s *SessionService) Guest() session.Session {
	return *session.New("", s.now())
}

// Discard drops a stored session.
func (s *SessionService) Discard(id string) {
	s.store.Delete(id)
	metrics.SessionsActive.Set(float64(s.store.Len()))
}

// Sweep evicts sessions older than the max age.
func (s *SessionService) Sweep() int {
	n := s.store.Sweep(s.maxAge)
	metrics.SessionsActive.Set(float64(s.store.Len()))
	return n
}

// Run sweeps every tick until ctx is cancelled.
func (s *SessionService) Run(ctx context.Context, tick time.Duration) {
	if tick <= 0 {
		tick = DefaultSweepInterval
	}
	t := time.NewTicker(tick)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			s.Sweep()
		}
	}
}

func (s *SessionService) Get(id string) (session.Session, error) {
	return s.store.Get(id)
}

// Login replaces the session user. The active view is re-resolved for the new role.
func (s *SessionService) Login(ctx context.Context, id string, u models.User, method string) (session.Session, error) {
	sess, err := s.store.Update(id, func(st *session.Session) {
		st.Login(u)
		st.Resolve()
	})
	if err != nil {
		return session.Session{}, err
	}
	metrics.LoginsTotal.WithLabelValues(method, string(sess.Role())).Inc()
	s.events.Record(ctx, models.EventLogin, u.Name+" signed in", map[string]any{
		"session_id": id, "user_id": u.ID, "role": u.Role, "method": method,
	})
	return sess, nil
}

// Logout returns the session to the guest identity on home.
func (s *SessionService) Logout(ctx context.Context, id string) (session.Session, error) {
	var prev models.User
	sess, err := s.store.Update(id, func(st *session.Session) {
		prev = st.User
		st.Logout()
	})
	if err != nil {
		return session.Session{}, err
	}
	s.events.Record(ctx, models.EventLogout, prev.Name+" signed out", map[string]any{
		"session_id": id, "user_id": prev.ID,
	})
	return sess, nil
}

// SwitchToGuest drops the user but keeps browsing; a view guests may not
// see falls back to home.
func (s *SessionService) SwitchToGuest(ctx context.Context, id string) (session.Session, error) {
	sess, err := s.store.Update(id, func(st *session.Session) {
		st.SwitchToGuest()
		st.Resolve()
	})
	if err != nil {
		return session.Session{}, err
	}
	metrics.LoginsTotal.WithLabelValues(MethodGuest, string(models.RoleGuest)).Inc()
	return sess, nil
}

// Navigate stores the requested view and resolves it against the policy in
// one step. A denied or unknown view lands on home without an error.
func (s *SessionService) Navigate(ctx context.Context, id, viewID string) (Navigation, error) {
	var kept bool
	sess, err := s.store.Update(id, func(st *session.Session) {
		st.Navigate(viewID)
		_, kept = st.Resolve()
	})
	if err != nil {
		return Navigation{}, err
	}

	outcome := metrics.OutcomeAllowed
	if !kept {
		outcome = metrics.OutcomeDenied
		s.events.Record(ctx, models.EventAccessDenied, "navigation to "+viewID+" redirected home", map[string]any{
			"session_id": id, "requested": viewID, "role": sess.Role(),
		})
	} else {
		s.events.Record(ctx, models.EventNavigate, "navigated to "+string(sess.ActiveView), map[string]any{
			"session_id": id, "view": sess.ActiveView,
		})
	}
	metrics.NavigationsTotal.WithLabelValues(navLabel(viewID), outcome).Inc()

	return Navigation{Requested: viewID, Active: sess.ActiveView, Session: sess}, nil
}

// Resolve runs the render step on the stored session.
func (s *SessionService) Resolve(id string) (session.Session, error) {
	return s.store.Update(id, func(st *session.Session) { st.Resolve() })
}

// navLabel keeps metric cardinality bounded to the known views.
func navLabel(viewID string) string {
	if v, ok := models.ParseView(viewID); ok {
		return string(v)
	}
	return "unknown"
}
