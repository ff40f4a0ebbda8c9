package models

import "time"

type DeviceState string

const (
	DeviceOnline  DeviceState = "online"
	DeviceOffline DeviceState = "offline"
	DeviceWarning DeviceState = "warning"
)

type Device struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	Status       DeviceState `json:"status"`
	LastUpdate   string      `json:"last_update"`
	BatteryLevel *int        `json:"battery_level,omitempty"`
}

type CleaningSchedule struct {
	ID      int    `json:"id"`
	Day     string `json:"day"`
	Time    string `json:"time"`
	Type    string `json:"type"`
	Enabled bool   `json:"enabled"`
}

// AquariumControls is the single-row actuator state of the monitored tank.
type AquariumControls struct {
	ID             int       `json:"id"`
	AutoMode       bool      `json:"auto_mode"`
	RobotActive    bool      `json:"robot_active"`
	LightIntensity int       `json:"light_intensity"` // 0..100
	FilterSpeed    int       `json:"filter_speed"`    // 0..100
	UpdatedAt      time.Time `json:"updated_at"`
}

type WaterQualityScore struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
	Fill  string `json:"fill"`
}
