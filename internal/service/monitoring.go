package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"temanikan/internal/logger"
	"temanikan/internal/models"
	"temanikan/internal/repository"
	"temanikan/internal/telemetry"
)

const DefaultEmergencyClean = 5 * time.Second

var (
	ErrControlOutOfRange = errors.New("control value must be between 0 and 100")
	ErrRobotBusy         = errors.New("cleaning robot is already running")
)

var waterQuality = []models.WaterQualityScore{
	{Name: "pH", Value: 95, Fill: "#06b6d4"},
	{Name: "Suhu", Value: 88, Fill: "#3b82f6"},
	{Name: "Oksigen", Value: 92, Fill: "#10b981"},
	{Name: "Kejernihan", Value: 78, Fill: "#8b5cf6"},
}

// defaultControls is the panel state before anything was saved.
var defaultControls = models.AquariumControls{ID: 1, AutoMode: true, LightIntensity: 75, FilterSpeed: 60}

// MonitoringPanel is everything the monitoring view shows besides the live feed.
type MonitoringPanel struct {
	Devices      []models.Device            `json:"devices"`
	Alerts       []string                   `json:"alerts"`
	Schedules    []models.CleaningSchedule  `json:"schedules"`
	Controls     models.AquariumControls    `json:"controls"`
	WaterQuality []models.WaterQualityScore `json:"water_quality"`
	Telemetry    telemetry.Snapshot         `json:"telemetry"`
}

// ControlsUpdate changes only the non-nil fields.
type ControlsUpdate struct {
	AutoMode       *bool
	LightIntensity *int
	FilterSpeed    *int
}

type MonitoringOption func(*MonitoringService)

func WithFeedPeriod(d time.Duration) MonitoringOption {
	return func(s *MonitoringService) {
		if d > 0 {
			s.period = d
		}
	}
}

func WithEmergencyDuration(d time.Duration) MonitoringOption {
	return func(s *MonitoringService) {
		if d > 0 {
			s.emergency = d
		}
	}
}

type MonitoringService struct {
	repo     repository.MonitoringRepo
	controls repository.ControlsRepo
	events   EventLog
	log      *logger.Logger

	period    time.Duration
	emergency time.Duration

	// mu serialises control writes and guards the emergency timer.
	mu    sync.Mutex
	timer *time.Timer
	run   uint64
}

func NewMonitoringService(repo repository.MonitoringRepo, controls repository.ControlsRepo, events EventLog,
	log *logger.Logger, opts ...MonitoringOption) *MonitoringService {
	if log == nil {
		log = logger.Nop()
	}
	s := &MonitoringService{
		repo:      repo,
		controls:  controls,
		events:    events,
		log:       log,
		period:    telemetry.DefaultPeriod,
		emergency: DefaultEmergencyClean,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

func (s *MonitoringService) Panel(ctx context.Context) (MonitoringPanel, error) {
	devices, err := s.repo.Devices(ctx)
	if err != nil {
		return MonitoringPanel{}, err
	}
	schedules, err := s.repo.Schedules(ctx)
	if err != nil {
		return MonitoringPanel{}, err
	}
	c, err := s.load(ctx)
	if err != nil {
		return MonitoringPanel{}, err
	}
	return MonitoringPanel{
		Devices:      devices,
		Alerts:       deviceAlerts(devices),
		Schedules:    schedules,
		Controls:     c,
		WaterQuality: waterQuality,
		Telemetry:    s.NewFeed().Snapshot(),
	}, nil
}

func deviceAlerts(devices []models.Device) []string {
	alerts := []string{}
	for _, d := range devices {
		if d.Status != models.DeviceWarning {
			continue
		}
		if d.BatteryLevel != nil {
			alerts = append(alerts, d.Name+" memiliki baterai rendah ("+strconv.Itoa(*d.BatteryLevel)+"%). Segera ganti baterai.")
		} else {
			alerts = append(alerts, d.Name+" membutuhkan perhatian.")
		}
	}
	return alerts
}

func (s *MonitoringService) ToggleSchedule(ctx context.Context, id int) (models.CleaningSchedule, error) {
	sch, err := s.repo.ToggleSchedule(ctx, id)
	if err != nil {
		return models.CleaningSchedule{}, err
	}
	s.events.Record(ctx, models.EventSchedule, fmt.Sprintf("schedule %d enabled=%t", id, sch.Enabled), map[string]any{
		"schedule_id": id, "enabled": sch.Enabled,
	})
	return sch, nil
}

// ToggleRobot flips the robot. Stopping it also cancels a pending emergency run.
func (s *MonitoringService) ToggleRobot(ctx context.Context) (models.AquariumControls, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, err := s.load(ctx)
	if err != nil {
		return models.AquariumControls{}, err
	}
	c.RobotActive = !c.RobotActive
	if !c.RobotActive {
		s.stopTimerLocked()
	}
	if err := s.save(ctx, &c); err != nil {
		return models.AquariumControls{}, err
	}
	s.events.Record(ctx, models.EventRobot, fmt.Sprintf("robot active=%t", c.RobotActive), map[string]any{"active": c.RobotActive})
	return c, nil
}

// EmergencyClean starts the robot and switches it off again after the
// emergency duration. It is rejected while the robot already runs.
func (s *MonitoringService) EmergencyClean(ctx context.Context) (models.AquariumControls, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, err := s.load(ctx)
	if err != nil {
		return models.AquariumControls{}, err
	}
	if c.RobotActive {
		return models.AquariumControls{}, ErrRobotBusy
	}
	c.RobotActive = true
	if err := s.save(ctx, &c); err != nil {
		return models.AquariumControls{}, err
	}
	s.events.Record(ctx, models.EventRobot, "emergency clean started", map[string]any{"duration": s.emergency.String()})

	s.stopTimerLocked()
	s.run++
	run := s.run
	s.timer = time.AfterFunc(s.emergency, func() { s.finishEmergency(run) })
	return c, nil
}

// finishEmergency turns the robot off unless the run was superseded or cancelled.
func (s *MonitoringService) finishEmergency(run uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer == nil || s.run != run {
		return
	}
	s.timer = nil

	ctx := context.Background()
	c, err := s.load(ctx)
	if err != nil {
		s.log.Errorw("emergency_clean_finish_failed", "error", err)
		return
	}
	c.RobotActive = false
	if err := s.save(ctx, &c); err != nil {
		s.log.Errorw("emergency_clean_finish_failed", "error", err)
		return
	}
	s.events.Record(ctx, models.EventRobot, "emergency clean finished", nil)
}

func (s *MonitoringService) stopTimerLocked() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.run++
}

func (s *MonitoringService) UpdateControls(ctx context.Context, u ControlsUpdate) (models.AquariumControls, error) {
	if !inPercent(u.LightIntensity) || !inPercent(u.FilterSpeed) {
		return models.AquariumControls{}, ErrControlOutOfRange
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c, err := s.load(ctx)
	if err != nil {
		return models.AquariumControls{}, err
	}
	if u.AutoMode != nil {
		c.AutoMode = *u.AutoMode
	}
	if u.LightIntensity != nil {
		c.LightIntensity = *u.LightIntensity
	}
	if u.FilterSpeed != nil {
		c.FilterSpeed = *u.FilterSpeed
	}
	if err := s.save(ctx, &c); err != nil {
		return models.AquariumControls{}, err
	}
	return c, nil
}

func inPercent(v *int) bool {
	return v == nil || (*v >= 0 && *v <= 100)
}

// NewFeed starts a fresh telemetry feed from the seed reading.
func (s *MonitoringService) NewFeed() *telemetry.Feed {
	return telemetry.NewFeed()
}

func (s *MonitoringService) FeedPeriod() time.Duration {
	return s.period
}

// Close cancels a pending emergency run.
func (s *MonitoringService) Close() {
	s.mu.Lock()
	s.stopTimerLocked()
	s.mu.Unlock()
}

func (s *MonitoringService) load(ctx context.Context) (models.AquariumControls, error) {
	c, err := s.controls.Load(ctx)
	if err != nil {
		return models.AquariumControls{}, err
	}
	if c.ID == 0 {
		return defaultControls, nil
	}
	return c, nil
}

func (s *MonitoringService) save(ctx context.Context, c *models.AquariumControls) error {
	c.UpdatedAt = time.Now().UTC()
	return s.controls.Save(ctx, *c)
}
