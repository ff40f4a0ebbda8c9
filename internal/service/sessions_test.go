package service

import (
	"context"
	"testing"
	"time"

	"temanikan/internal/metrics"
	"temanikan/internal/models"
	"temanikan/internal/session"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSessions(t *testing.T) (*SessionService, *fakeEventRepo) {
	t.Helper()
	events := &fakeEventRepo{}
	return NewSessionService(session.NewStore(), NewEventLogService(events, nil)), events
}

func TestSessionService_GuestToDemoAdminScenario(t *testing.T) {
	ctx := context.Background()
	sessions, events := newSessions(t)
	auth, _, _ := newAuth(t, true)

	sess := sessions.Start()
	assert.Equal(t, models.ViewHome, sess.ActiveView)
	assert.Equal(t, models.RoleGuest, sess.Role())

	nav, err := sessions.Navigate(ctx, sess.ID, "admin")
	require.NoError(t, err)
	assert.Equal(t, "admin", nav.Requested)
	assert.Equal(t, models.ViewHome, nav.Active)

	admin, err := auth.DemoLogin(models.RoleAdmin)
	require.NoError(t, err)
	_, err = sessions.Login(ctx, sess.ID, admin, MethodDemo)
	require.NoError(t, err)

	nav, err = sessions.Navigate(ctx, sess.ID, "admin")
	require.NoError(t, err)
	assert.Equal(t, models.ViewAdmin, nav.Active)

	assert.Equal(t, []string{models.EventAccessDenied, models.EventLogin, models.EventNavigate}, events.types())
}

func TestSessionService_DemoMemberCannotOpenAdmin(t *testing.T) {
	ctx := context.Background()
	sessions, _ := newSessions(t)
	auth, _, _ := newAuth(t, true)

	sess := sessions.Start()
	member, err := auth.DemoLogin(models.RoleMember)
	require.NoError(t, err)
	_, err = sessions.Login(ctx, sess.ID, member, MethodDemo)
	require.NoError(t, err)

	nav, err := sessions.Navigate(ctx, sess.ID, "admin")
	require.NoError(t, err)
	assert.Equal(t, models.ViewHome, nav.Active)

	nav, err = sessions.Navigate(ctx, sess.ID, "forum")
	require.NoError(t, err)
	assert.Equal(t, models.ViewForum, nav.Active)
}

func TestSessionService_RegisterMismatchLeavesViewUnchanged(t *testing.T) {
	ctx := context.Background()
	sessions, _ := newSessions(t)
	auth, _, _ := newAuth(t, true)

	sess := sessions.Start()
	_, err := sessions.Navigate(ctx, sess.ID, "shop")
	require.NoError(t, err)

	_, err = auth.Register(ctx, RegisterInput{Name: "A", Email: "a@b.c", Password: "abc123", ConfirmPassword: "xyz999"})
	require.ErrorIs(t, err, ErrPasswordMismatch)

	got, err := sessions.Get(sess.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ViewShop, got.ActiveView)
	assert.True(t, got.User.IsGuest())
}

func TestSessionService_UnknownViewGoesHome(t *testing.T) {
	sessions, events := newSessions(t)
	sess := sessions.Start()

	nav, err := sessions.Navigate(context.Background(), sess.ID, "settings")
	require.NoError(t, err)
	assert.Equal(t, "settings", nav.Requested)
	assert.Equal(t, models.ViewHome, nav.Active)
	assert.Equal(t, []string{models.EventAccessDenied}, events.types())
}

func TestSessionService_LogoutAndSwitchToGuest(t *testing.T) {
	ctx := context.Background()
	sessions, _ := newSessions(t)
	sess := sessions.Start()
	member := models.User{ID: 5, Name: "Rina", Role: models.RoleMember}

	_, err := sessions.Login(ctx, sess.ID, member, MethodPassword)
	require.NoError(t, err)
	_, err = sessions.Navigate(ctx, sess.ID, "monitoring")
	require.NoError(t, err)

	// Guest switch keeps shop-like views but drops member-only ones.
	got, err := sessions.SwitchToGuest(ctx, sess.ID)
	require.NoError(t, err)
	assert.True(t, got.User.IsGuest())
	assert.Equal(t, models.ViewHome, got.ActiveView)

	_, err = sessions.Login(ctx, sess.ID, member, MethodPassword)
	require.NoError(t, err)
	_, err = sessions.Navigate(ctx, sess.ID, "panduan")
	require.NoError(t, err)
	got, err = sessions.Logout(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, models.GuestUser(), got.User)
	assert.Equal(t, models.ViewHome, got.ActiveView)
}

func TestSessionService_UnknownSession(t *testing.T) {
	sessions, _ := newSessions(t)
	ctx := context.Background()

	_, err := sessions.Navigate(ctx, "nope", "home")
	assert.ErrorIs(t, err, session.ErrNotFound)
	_, err = sessions.Login(ctx, "nope", models.User{}, MethodDemo)
	assert.ErrorIs(t, err, session.ErrNotFound)
	_, err = sessions.Logout(ctx, "nope")
	assert.ErrorIs(t, err, session.ErrNotFound)
	_, err = sessions.Resolve("nope")
	assert.ErrorIs(t, err, session.ErrNotFound)
}

func TestNavLabel(t *testing.T) {
	assert.Equal(t, "admin", navLabel(" Admin "))
	assert.Equal(t, "unknown", navLabel("../../etc"))
}

func TestSessionService_GuestIsNotStored(t *testing.T) {
	store := session.NewStore()
	sessions := NewSessionService(store, NewEventLogService(&fakeEventRepo{}, nil))

	g := sessions.Guest()
	assert.Empty(t, g.ID)
	assert.Equal(t, models.RoleGuest, g.Role())
	assert.Equal(t, models.ViewHome, g.ActiveView)
	assert.Equal(t, 0, store.Len())
}

func TestSessionService_SweepKeepsYoungSessions(t *testing.T) {
	store := session.NewStore()
	sessions := NewSessionService(store, NewEventLogService(&fakeEventRepo{}, nil), WithSessionMaxAge(time.Hour))

	sessions.Start()
	sessions.Start()
	assert.Equal(t, 0, sessions.Sweep())
	assert.Equal(t, 2, store.Len())
	assert.Equal(t, float64(2), testutil.ToFloat64(metrics.SessionsActive))
}

func TestSessionService_RunEvictsUntilCancelled(t *testing.T) {
	store := session.NewStore()
	sessions := NewSessionService(store, NewEventLogService(&fakeEventRepo{}, nil), WithSessionMaxAge(time.Millisecond))

	for i := 0; i < 10; i++ {
		sessions.Start()
	}
	require.Equal(t, 10, store.Len())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		sessions.Run(ctx, 5*time.Millisecond)
	}()

	require.Eventually(t, func() bool { return store.Len() == 0 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, float64(0), testutil.ToFloat64(metrics.SessionsActive))

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
