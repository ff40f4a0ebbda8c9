package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"temanikan/internal/logger"
	"temanikan/internal/models"
	"temanikan/internal/repository"
)

// LogFilter narrows the activity log listing.
type LogFilter struct {
	From  time.Time // inclusive; zero means no lower bound
	To    time.Time // inclusive; zero means no upper bound
	Type  string    // "", LOGIN, LOGOUT, REGISTER, NAVIGATE, ACCESS_DENIED, DIAGNOSIS, ROBOT, SCHEDULE
	Limit int
}

const maxLogLimit = 500

var (
	ErrInvalidTimeRange = errors.New("invalid time range: from must be <= to")
	ErrUnknownEventType = errors.New("unknown event type")
)

var knownEventTypes = map[string]bool{
	models.EventLogin:        true,
	models.EventLogout:       true,
	models.EventRegister:     true,
	models.EventNavigate:     true,
	models.EventAccessDenied: true,
	models.EventDiagnosis:    true,
	models.EventRobot:        true,
	models.EventSchedule:     true,
}

type EventLogService struct {
	eventRepo repository.EventRepo
	log       *logger.Logger
	now       func() time.Time
}

func NewEventLogService(eventRepo repository.EventRepo, log *logger.Logger) *EventLogService {
	if log == nil {
		log = logger.Nop()
	}
	return &EventLogService{eventRepo: eventRepo, log: log, now: time.Now}
}

// Record appends an event. Failures are logged and never reach the caller:
// the activity log must not break the action being logged.
func (s *EventLogService) Record(ctx context.Context, typ, description string, meta any) {
	err := s.eventRepo.Append(ctx, models.ActivityEvent{
		OccurredAt:  s.now().UTC(),
		Type:        typ,
		Description: description,
		Metadata:    meta,
	})
	if err != nil {
		s.log.Warnw("activity_record_failed", "type", typ, "error", err)
	}
}

func normalizeToUTC(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return t.UTC()
}

func normalizeFilter(f LogFilter) (repository.EventQuery, error) {
	q := repository.EventQuery{
		From:  normalizeToUTC(f.From),
		To:    normalizeToUTC(f.To),
		Type:  strings.ToUpper(strings.TrimSpace(f.Type)),
		Limit: f.Limit,
	}
	if !q.From.IsZero() && !q.To.IsZero() && q.From.After(q.To) {
		return repository.EventQuery{}, ErrInvalidTimeRange
	}
	if q.Type != "" && !knownEventTypes[q.Type] {
		return repository.EventQuery{}, ErrUnknownEventType
	}
	if q.Limit <= 0 || q.Limit > maxLogLimit {
		q.Limit = maxLogLimit
	}
	return q, nil
}

func (s *EventLogService) List(ctx context.Context, f LogFilter) ([]models.ActivityEvent, error) {
	q, err := normalizeFilter(f)
	if err != nil {
		return nil, err
	}
	return s.eventRepo.List(ctx, q)
}
