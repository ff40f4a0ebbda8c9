package service

import (
	"context"
	"testing"
	"time"

	"temanikan/internal/models"
	"temanikan/internal/repository"
	"temanikan/internal/telemetry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMonitoring(t *testing.T, opts ...MonitoringOption) (*MonitoringService, *fakeControlsRepo, *fakeMonitoringRepo, *fakeEventRepo) {
	t.Helper()
	controls := &fakeControlsRepo{}
	repo := newFakeMonitoringRepo()
	events := &fakeEventRepo{}
	svc := NewMonitoringService(repo, controls, NewEventLogService(events, nil), nil, opts...)
	t.Cleanup(svc.Close)
	return svc, controls, repo, events
}

func intp(v int) *int    { return &v }
func boolp(v bool) *bool { return &v }

func TestMonitoringService_Panel_Defaults(t *testing.T) {
	svc, _, repo, _ := newMonitoring(t)
	battery := 25
	repo.devices = append(repo.devices, models.Device{ID: "feeder", Name: "Auto Feeder", Status: models.DeviceWarning, BatteryLevel: &battery})

	p, err := svc.Panel(context.Background())
	require.NoError(t, err)

	assert.Equal(t, defaultControls, p.Controls)
	assert.Len(t, p.WaterQuality, 4)
	assert.Equal(t, []string{"Auto Feeder memiliki baterai rendah (25%). Segera ganti baterai."}, p.Alerts)
	assert.Equal(t, telemetry.Seed(time.Now()).PH, p.Telemetry.Current.PH)
	assert.Len(t, p.Telemetry.History, telemetry.HistoryLen)
}

func TestMonitoringService_Panel_NoAlerts(t *testing.T) {
	svc, _, _, _ := newMonitoring(t)

	p, err := svc.Panel(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, p.Alerts)
	assert.Empty(t, p.Alerts)
}

func TestMonitoringService_ToggleSchedule(t *testing.T) {
	svc, _, _, events := newMonitoring(t)

	s, err := svc.ToggleSchedule(context.Background(), 1)
	require.NoError(t, err)
	assert.False(t, s.Enabled)
	assert.Equal(t, []string{models.EventSchedule}, events.types())

	_, err = svc.ToggleSchedule(context.Background(), 42)
	assert.ErrorIs(t, err, repository.ErrScheduleNotFound)
}

func TestMonitoringService_ToggleRobot(t *testing.T) {
	svc, controls, _, events := newMonitoring(t)

	c, err := svc.ToggleRobot(context.Background())
	require.NoError(t, err)
	assert.True(t, c.RobotActive)
	assert.True(t, controls.current().RobotActive)
	assert.False(t, c.UpdatedAt.IsZero())

	c, err = svc.ToggleRobot(context.Background())
	require.NoError(t, err)
	assert.False(t, c.RobotActive)
	assert.Equal(t, []string{models.EventRobot, models.EventRobot}, events.types())
}

func TestMonitoringService_EmergencyClean_StopsAfterDuration(t *testing.T) {
	svc, controls, _, _ := newMonitoring(t, WithEmergencyDuration(20*time.Millisecond))

	c, err := svc.EmergencyClean(context.Background())
	require.NoError(t, err)
	assert.True(t, c.RobotActive)

	_, err = svc.EmergencyClean(context.Background())
	assert.ErrorIs(t, err, ErrRobotBusy)

	require.Eventually(t, func() bool { return !controls.current().RobotActive },
		time.Second, 5*time.Millisecond)
}

func TestMonitoringService_EmergencyClean_ManualStopCancelsTimer(t *testing.T) {
	svc, controls, _, _ := newMonitoring(t, WithEmergencyDuration(30*time.Millisecond))
	ctx := context.Background()

	_, err := svc.EmergencyClean(ctx)
	require.NoError(t, err)
	_, err = svc.ToggleRobot(ctx) // stop
	require.NoError(t, err)
	_, err = svc.ToggleRobot(ctx) // manual start
	require.NoError(t, err)

	time.Sleep(80 * time.Millisecond)
	assert.True(t, controls.current().RobotActive, "cancelled emergency run must not switch the robot off")
}

func TestMonitoringService_UpdateControls(t *testing.T) {
	svc, controls, _, _ := newMonitoring(t)
	ctx := context.Background()

	c, err := svc.UpdateControls(ctx, ControlsUpdate{LightIntensity: intp(40)})
	require.NoError(t, err)
	assert.Equal(t, 40, c.LightIntensity)
	assert.Equal(t, 60, c.FilterSpeed, "untouched fields keep their value")
	assert.True(t, c.AutoMode)

	c, err = svc.UpdateControls(ctx, ControlsUpdate{AutoMode: boolp(false), FilterSpeed: intp(100)})
	require.NoError(t, err)
	assert.False(t, c.AutoMode)
	assert.Equal(t, 100, controls.current().FilterSpeed)

	for _, bad := range []ControlsUpdate{{LightIntensity: intp(-1)}, {FilterSpeed: intp(101)}} {
		_, err := svc.UpdateControls(ctx, bad)
		assert.ErrorIs(t, err, ErrControlOutOfRange)
	}
	assert.Equal(t, 2, controls.saves)
}

func TestMonitoringService_SaveError(t *testing.T) {
	svc, controls, _, events := newMonitoring(t)
	controls.saveErr = errBoom

	_, err := svc.ToggleRobot(context.Background())
	assert.ErrorIs(t, err, errBoom)
	assert.Empty(t, events.types())
}

func TestMonitoringService_FeedPeriod(t *testing.T) {
	svc, _, _, _ := newMonitoring(t)
	assert.Equal(t, telemetry.DefaultPeriod, svc.FeedPeriod())

	svc2, _, _, _ := newMonitoring(t, WithFeedPeriod(time.Second))
	assert.Equal(t, time.Second, svc2.FeedPeriod())
}

func TestMonitoringService_NewFeedIsFresh(t *testing.T) {
	svc, _, _, _ := newMonitoring(t)

	f := svc.NewFeed()
	f.Tick()
	f.Tick()

	assert.Equal(t, 0, svc.NewFeed().Snapshot().Tick)
}
