package models

// Reading is one simulated sensor sample shown on the monitoring cards.
type Reading struct {
	PH          float64 `json:"ph"`
	Temperature float64 `json:"temperature"` // °C
	Turbidity   float64 `json:"turbidity"`   // NTU
	Oxygen      float64 `json:"oxygen"`      // mg/L
	WaterLevel  int     `json:"water_level"` // percent
	Time        string  `json:"time"`        // display string, e.g. "14.03.27"
}

// Sample is one point of the historical chart series.
type Sample struct {
	Time        string  `json:"time"`
	PH          float64 `json:"ph"`
	Temperature float64 `json:"temperature"`
	Turbidity   float64 `json:"turbidity"`
	Oxygen      float64 `json:"oxygen"`
}

// Status is the badge tier of one reading field.
type Status string

const (
	StatusOptimal   Status = "optimal"
	StatusAttention Status = "attention"
	StatusDanger    Status = "danger"
)

// ReadingStatus carries the per-field classification of a reading.
type ReadingStatus struct {
	PH          Status `json:"ph"`
	Temperature Status `json:"temperature"`
	Turbidity   Status `json:"turbidity"`
	Oxygen      Status `json:"oxygen"`
}
