package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"temanikan/internal/models"
)

var ErrScheduleNotFound = errors.New("cleaning schedule not found")

type MonitoringSQLite struct {
	db *sql.DB
}

func NewMonitoringSQLite(db *sql.DB) *MonitoringSQLite { return &MonitoringSQLite{db: db} }

var _ MonitoringRepo = (*MonitoringSQLite)(nil)

const (
	selectDevicesSQL   = `SELECT id, name, status, last_update, battery_level FROM devices ORDER BY position`
	selectSchedulesSQL = `SELECT id, day, time, type, enabled FROM cleaning_schedules ORDER BY id`
	toggleScheduleSQL  = `UPDATE cleaning_schedules SET enabled = NOT enabled WHERE id = ?`
	selectScheduleSQL  = `SELECT id, day, time, type, enabled FROM cleaning_schedules WHERE id = ?`
)

func (r *MonitoringSQLite) Devices(ctx context.Context) ([]models.Device, error) {
	return queryAll(ctx, r.db, "devices", selectDevicesSQL, func(rows *sql.Rows) (models.Device, error) {
		var (
			d       models.Device
			status  string
			battery sql.NullInt64
		)
		if err := rows.Scan(&d.ID, &d.Name, &status, &d.LastUpdate, &battery); err != nil {
			return d, err
		}
		d.Status = models.DeviceState(status)
		if battery.Valid {
			b := int(battery.Int64)
			d.BatteryLevel = &b
		}
		return d, nil
	})
}

func (r *MonitoringSQLite) Schedules(ctx context.Context) ([]models.CleaningSchedule, error) {
	return queryAll(ctx, r.db, "schedules", selectSchedulesSQL, func(rows *sql.Rows) (models.CleaningSchedule, error) {
		var s models.CleaningSchedule
		err := rows.Scan(&s.ID, &s.Day, &s.Time, &s.Type, &s.Enabled)
		return s, err
	})
}

// ToggleSchedule flips enabled for id and returns the updated row.
func (r *MonitoringSQLite) ToggleSchedule(ctx context.Context, id int) (models.CleaningSchedule, error) {
	res, err := r.db.ExecContext(ctx, toggleScheduleSQL, id)
	if err != nil {
		return models.CleaningSchedule{}, fmt.Errorf("toggle schedule %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return models.CleaningSchedule{}, fmt.Errorf("toggle schedule %d: %w", id, err)
	}
	if n == 0 {
		return models.CleaningSchedule{}, ErrScheduleNotFound
	}

	var s models.CleaningSchedule
	if err := r.db.QueryRowContext(ctx, selectScheduleSQL, id).Scan(&s.ID, &s.Day, &s.Time, &s.Type, &s.Enabled); err != nil {
		return models.CleaningSchedule{}, fmt.Errorf("select schedule %d: %w", id, err)
	}
	return s, nil
}
