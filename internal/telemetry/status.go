package telemetry

import "temanikan/internal/models"

// Range is the optimal band of one field.
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// AttentionTolerance widens an optimal Range into the attention tier.
const AttentionTolerance = 0.5

// TurbidityCleanThreshold is where the turbidity badge flips to "needs cleaning".
const TurbidityCleanThreshold = 20.0

var (
	PHRange          = Range{Min: 6.8, Max: 7.5}
	TemperatureRange = Range{Min: 25, Max: 28}
	OxygenRange      = Range{Min: 7, Max: 9}
)

// Classify thresholds value against r: optimal inside, attention within
// AttentionTolerance of either bound, danger beyond.
func Classify(value float64, r Range) models.Status {
	switch {
	case value >= r.Min && value <= r.Max:
		return models.StatusOptimal
	case value >= r.Min-AttentionTolerance && value <= r.Max+AttentionTolerance:
		return models.StatusAttention
	default:
		return models.StatusDanger
	}
}

// ClassifyTurbidity has two tiers only.
func ClassifyTurbidity(value float64) models.Status {
	if value < TurbidityCleanThreshold {
		return models.StatusOptimal
	}
	return models.StatusAttention
}

// StatusOf classifies every field of r.
func StatusOf(r models.Reading) models.ReadingStatus {
	return models.ReadingStatus{
		PH:          Classify(r.PH, PHRange),
		Temperature: Classify(r.Temperature, TemperatureRange),
		Turbidity:   ClassifyTurbidity(r.Turbidity),
		Oxygen:      Classify(r.Oxygen, OxygenRange),
	}
}
