package models

import "time"

// Activity event types.
const (
	EventLogin        = "LOGIN"
	EventLogout       = "LOGOUT"
	EventRegister     = "REGISTER"
	EventNavigate     = "NAVIGATE"
	EventAccessDenied = "ACCESS_DENIED"
	EventDiagnosis    = "DIAGNOSIS"
	EventRobot        = "ROBOT"
	EventSchedule     = "SCHEDULE"
)

// ActivityEvent is a single log entry.
type ActivityEvent struct {
	EventID     string    `json:"event_id"`
	OccurredAt  time.Time `json:"occurred_at"`
	Type        string    `json:"type"`
	Description string    `json:"description"` // human-readable
	Metadata    any       `json:"metadata,omitempty"`
}
