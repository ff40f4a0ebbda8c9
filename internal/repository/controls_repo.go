package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"temanikan/internal/models"
)

// ControlsSQLite persists the single aquarium actuator row.
type ControlsSQLite struct {
	db *sql.DB
}

func NewControlsSQLite(db *sql.DB) *ControlsSQLite { return &ControlsSQLite{db: db} }

var _ ControlsRepo = (*ControlsSQLite)(nil)

const (
	controlsRowID = 1

	upsertControlsSQL = `INSERT INTO aquarium_controls (id, auto_mode, robot_active, light_intensity, filter_speed, updated_at)
VALUES (?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET auto_mode=excluded.auto_mode, robot_active=excluded.robot_active,
light_intensity=excluded.light_intensity, filter_speed=excluded.filter_speed, updated_at=excluded.updated_at`

	selectControlsSQL = `SELECT auto_mode, robot_active, light_intensity, filter_speed, updated_at FROM aquarium_controls WHERE id = ?`
)

func (r *ControlsSQLite) Save(ctx context.Context, c models.AquariumControls) error {
	at := c.UpdatedAt.UTC()
	if c.UpdatedAt.IsZero() {
		at = time.Now().UTC()
	}
	if _, err := r.db.ExecContext(ctx, upsertControlsSQL,
		controlsRowID, c.AutoMode, c.RobotActive, c.LightIntensity, c.FilterSpeed, at,
	); err != nil {
		return fmt.Errorf("save aquarium controls: %w", err)
	}
	return nil
}

// Load returns the stored controls, or the zero value when no row exists yet.
func (r *ControlsSQLite) Load(ctx context.Context) (models.AquariumControls, error) {
	c := models.AquariumControls{ID: controlsRowID}
	err := r.db.QueryRowContext(ctx, selectControlsSQL, controlsRowID).
		Scan(&c.AutoMode, &c.RobotActive, &c.LightIntensity, &c.FilterSpeed, &c.UpdatedAt)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.AquariumControls{}, nil
	case err != nil:
		return models.AquariumControls{}, fmt.Errorf("load aquarium controls: %w", err)
	}
	c.UpdatedAt = c.UpdatedAt.UTC()
	return c, nil
}
