package service

import (
	"context"
	"time"

	"temanikan/internal/logger"
	"temanikan/internal/models"
	"temanikan/internal/repository"
	"temanikan/internal/session"
	"temanikan/internal/telemetry"
)

// Authorization covers the mock login flows and session tokens.
type Authorization interface {
	SignIn(ctx context.Context, email, password string) (models.User, error)
	Register(ctx context.Context, in RegisterInput) (models.User, error)
	DemoLogin(role models.Role) (models.User, error)
	AdminCredentials() (models.AdminCredentials, error)
	IssueToken(sessionID string) (string, error)
	ParseToken(token string) (string, error)
}

// Sessions owns per-client state and the view router.
type Sessions interface {
	Start() session.Session
	Guest() session.Session
	Discard(id string)
	Sweep() int
	Run(ctx context.Context, tick time.Duration)
	Get(id string) (session.Session, error)
	Login(ctx context.Context, id string, u models.User, method string) (session.Session, error)
	Logout(ctx context.Context, id string) (session.Session, error)
	SwitchToGuest(ctx context.Context, id string) (session.Session, error)
	Navigate(ctx context.Context, id, viewID string) (Navigation, error)
	Resolve(id string) (session.Session, error)
}

// Catalog serves the static datasets behind each content view.
type Catalog interface {
	Home(ctx context.Context, role models.Role) (HomePage, error)
	Encyclopedia(ctx context.Context, f repository.FishFilter) (EncyclopediaPage, error)
	Forum(ctx context.Context) (ForumPage, error)
	Shop(ctx context.Context) (ShopPage, error)
	Guides(ctx context.Context) (GuidePage, error)
	Admin(ctx context.Context) (AdminPage, error)
}

// Diagnosis runs the mock symptom analysis.
type Diagnosis interface {
	Diagnose(ctx context.Context, in DiagnosisInput) (models.Diagnosis, error)
	CommonSymptoms() []string
}

// Monitoring exposes the aquarium panel and telemetry feeds.
type Monitoring interface {
	Panel(ctx context.Context) (MonitoringPanel, error)
	ToggleSchedule(ctx context.Context, id int) (models.CleaningSchedule, error)
	ToggleRobot(ctx context.Context) (models.AquariumControls, error)
	EmergencyClean(ctx context.Context) (models.AquariumControls, error)
	UpdateControls(ctx context.Context, u ControlsUpdate) (models.AquariumControls, error)
	NewFeed() *telemetry.Feed
	FeedPeriod() time.Duration
	Close()
}

// EventLog exposes the append-only activity log.
type EventLog interface {
	Record(ctx context.Context, typ, description string, meta any)
	List(ctx context.Context, f LogFilter) ([]models.ActivityEvent, error)
}

// Views renders the payload of a session's active view.
type Views interface {
	Render(ctx context.Context, sess session.Session) (ViewPayload, error)
}

// Service aggregates all sub-services.
type Service struct {
	Authorization
	Sessions
	Catalog
	Diagnosis
	Monitoring
	EventLog
	Views
}

// Config carries the tunables the services need from the application config.
type Config struct {
	DemoMode       bool
	AdminEmail     string
	SigningKey     string
	TokenTTL       time.Duration
	DiagnosisDelay time.Duration
	FeedPeriod     time.Duration
	EmergencyClean time.Duration
}

// NewService wires the repository layer into concrete services.
func NewService(repos *repository.Repository, store *session.Store, cfg Config, log *logger.Logger) *Service {
	events := NewEventLogService(repos.EventRepo, log)
	catalog := NewCatalogService(repos.Catalog, repos.Admin)
	diagnosis := NewDiagnosisService(NewMockDiagnoser(cfg.DiagnosisDelay), events)
	monitoring := NewMonitoringService(repos.Monitoring, repos.Controls, events, log,
		WithFeedPeriod(cfg.FeedPeriod), WithEmergencyDuration(cfg.EmergencyClean))

	return &Service{
		Authorization: NewAuthService(repos.Auth, events, AuthConfig{
			DemoMode:   cfg.DemoMode,
			AdminEmail: cfg.AdminEmail,
			SigningKey: cfg.SigningKey,
			TokenTTL:   cfg.TokenTTL,
		}),
		Sessions:   NewSessionService(store, events, WithSessionMaxAge(cfg.TokenTTL)),
		Catalog:    catalog,
		Diagnosis:  diagnosis,
		Monitoring: monitoring,
		EventLog:   events,
		Views:      NewViewService(catalog, diagnosis, monitoring),
	}
}
