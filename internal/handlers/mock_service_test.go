package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"temanikan/internal/models"
	"temanikan/internal/repository"
	"temanikan/internal/service"
	"temanikan/internal/session"
	"temanikan/internal/telemetry"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

const tokenPrefix = "tok-"

type mockAuth struct {
	signInUser  models.User
	signInErr   error
	registerErr error
	demoErr     error
	infoErr     error
	parseErr    error

	lastEmail    string
	lastRegister service.RegisterInput
}

func (m *mockAuth) SignIn(_ context.Context, email, _ string) (models.User, error) {
	m.lastEmail = email
	return m.signInUser, m.signInErr
}

func (m *mockAuth) Register(_ context.Context, in service.RegisterInput) (models.User, error) {
	m.lastRegister = in
	if m.registerErr != nil {
		return models.User{}, m.registerErr
	}
	if in.Password != in.ConfirmPassword {
		return models.User{}, service.ErrPasswordMismatch
	}
	return models.User{ID: 7, Name: in.Name, Email: in.Email, Role: models.RoleMember}, nil
}

func (m *mockAuth) DemoLogin(role models.Role) (models.User, error) {
	if m.demoErr != nil {
		return models.User{}, m.demoErr
	}
	switch role {
	case models.RoleAdmin:
		return models.User{ID: 999, Name: "Admin Demo", Role: models.RoleAdmin}, nil
	case models.RoleMember:
		return models.User{ID: 123, Name: "Member Demo", Role: models.RoleMember}, nil
	}
	return models.User{}, service.ErrInvalidDemoRole
}

func (m *mockAuth) AdminCredentials() (models.AdminCredentials, error) {
	return models.AdminCredentials{Email: "admin@temanikan.com"}, m.infoErr
}

func (m *mockAuth) IssueToken(sessionID string) (string, error) {
	return tokenPrefix + sessionID, nil
}

func (m *mockAuth) ParseToken(token string) (string, error) {
	if m.parseErr != nil {
		return "", m.parseErr
	}
	if !strings.HasPrefix(token, tokenPrefix) {
		return "", service.ErrInvalidToken
	}
	return strings.TrimPrefix(token, tokenPrefix), nil
}

type mockEventLog struct {
	mu       sync.Mutex
	recorded []models.ActivityEvent
	resp     []models.ActivityEvent
	err      error
	last     service.LogFilter
}

func (m *mockEventLog) Record(_ context.Context, typ, description string, meta any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.recorded = append(m.recorded, models.ActivityEvent{Type: typ, Description: description, Metadata: meta})
}

func (m *mockEventLog) List(_ context.Context, f service.LogFilter) ([]models.ActivityEvent, error) {
	m.last = f
	return m.resp, m.err
}

func (m *mockEventLog) types() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, 0, len(m.recorded))
	for _, e := range m.recorded {
		out = append(out, e.Type)
	}
	return out
}

type mockCatalog struct {
	err        error
	lastFilter repository.FishFilter
}

func (m *mockCatalog) Home(_ context.Context, role models.Role) (service.HomePage, error) {
	return service.HomePage{QuickAccess: []models.QuickAccess{{View: models.ViewForum, Locked: role == models.RoleGuest}}}, m.err
}

func (m *mockCatalog) Encyclopedia(_ context.Context, f repository.FishFilter) (service.EncyclopediaPage, error) {
	m.lastFilter = f
	return service.EncyclopediaPage{Fish: []models.Fish{{ID: 1, Name: "Ikan Cupang"}}}, m.err
}

func (m *mockCatalog) Forum(context.Context) (service.ForumPage, error) {
	return service.ForumPage{}, m.err
}

func (m *mockCatalog) Shop(context.Context) (service.ShopPage, error) {
	return service.ShopPage{}, m.err
}

func (m *mockCatalog) Guides(context.Context) (service.GuidePage, error) {
	return service.GuidePage{}, m.err
}

func (m *mockCatalog) Admin(context.Context) (service.AdminPage, error) {
	return service.AdminPage{Stats: models.AdminStats{TotalUsers: 1247}}, m.err
}

type mockDiagnosis struct {
	err  error
	last service.DiagnosisInput
}

func (m *mockDiagnosis) Diagnose(_ context.Context, in service.DiagnosisInput) (models.Diagnosis, error) {
	m.last = in
	if m.err != nil {
		return models.Diagnosis{}, m.err
	}
	return models.Diagnosis{Disease: "White Spot Disease (Ich)", Confidence: 87}, nil
}

func (m *mockDiagnosis) CommonSymptoms() []string {
	return []string{"Bintik putih pada tubuh"}
}

type mockMonitoring struct {
	err        error
	scheduleID int
	update     service.ControlsUpdate
	period     time.Duration
	feeds      int
	mu         sync.Mutex
}

func (m *mockMonitoring) Panel(context.Context) (service.MonitoringPanel, error) {
	return service.MonitoringPanel{Alerts: []string{}}, m.err
}

func (m *mockMonitoring) ToggleSchedule(_ context.Context, id int) (models.CleaningSchedule, error) {
	m.scheduleID = id
	return models.CleaningSchedule{ID: id, Enabled: true}, m.err
}

func (m *mockMonitoring) ToggleRobot(context.Context) (models.AquariumControls, error) {
	return models.AquariumControls{ID: 1, RobotActive: true}, m.err
}

func (m *mockMonitoring) EmergencyClean(context.Context) (models.AquariumControls, error) {
	if m.err != nil {
		return models.AquariumControls{}, m.err
	}
	return models.AquariumControls{ID: 1, RobotActive: true}, nil
}

func (m *mockMonitoring) UpdateControls(_ context.Context, u service.ControlsUpdate) (models.AquariumControls, error) {
	m.update = u
	return models.AquariumControls{ID: 1}, m.err
}

func (m *mockMonitoring) NewFeed() *telemetry.Feed {
	m.mu.Lock()
	m.feeds++
	m.mu.Unlock()
	return telemetry.NewFeed()
}

func (m *mockMonitoring) FeedPeriod() time.Duration {
	if m.period > 0 {
		return m.period
	}
	return telemetry.DefaultPeriod
}

func (m *mockMonitoring) Close() {}

// ---- Shared Test Helpers ----

var errBoom = errors.New("boom")

// testDeps backs a Service with mocks, except sessions and views which run
// for real on top of them.
type testDeps struct {
	auth       *mockAuth
	events     *mockEventLog
	catalog    *mockCatalog
	diagnosis  *mockDiagnosis
	monitoring *mockMonitoring
	store      *session.Store
}

func newTestDeps() *testDeps {
	return &testDeps{
		auth:       &mockAuth{},
		events:     &mockEventLog{},
		catalog:    &mockCatalog{},
		diagnosis:  &mockDiagnosis{},
		monitoring: &mockMonitoring{},
		store:      session.NewStore(),
	}
}

func (d *testDeps) service() *service.Service {
	return &service.Service{
		Authorization: d.auth,
		Sessions:      service.NewSessionService(d.store, d.events),
		Catalog:       d.catalog,
		Diagnosis:     d.diagnosis,
		Monitoring:    d.monitoring,
		EventLog:      d.events,
		Views:         service.NewViewService(d.catalog, d.diagnosis, d.monitoring),
	}
}

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

func authHeader(token string) http.Header {
	h := http.Header{}
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}

// doJSON sends body (if any) as JSON with an optional bearer token.
func doJSON(r http.Handler, method, path, token, body string) *httptest.ResponseRecorder {
	var rd *bytes.Buffer
	if body != "" {
		rd = bytes.NewBufferString(body)
	} else {
		rd = &bytes.Buffer{}
	}
	req := httptest.NewRequest(method, path, rd)
	req.Header = authHeader(token)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeAuth(t *testing.T, w *httptest.ResponseRecorder) authResponse {
	t.Helper()
	var out authResponse
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal auth response: %v (body=%s)", err, w.Body.String())
	}
	return out
}

// loginAs runs a demo login and returns the session token.
func loginAs(t *testing.T, r http.Handler, role models.Role) string {
	t.Helper()
	w := doJSON(r, http.MethodPost, "/auth/demo", "", `{"role":"`+string(role)+`"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("demo login as %s: status=%d body=%s", role, w.Code, w.Body.String())
	}
	return decodeAuth(t, w).Token
}

func errorBody(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var out struct {
		Error string `json:"error"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &out)
	return out.Error
}
