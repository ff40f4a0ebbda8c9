// Package telemetry simulates the aquarium sensor feed shown on the
// monitoring view.
package telemetry

import (
	"math"
	"math/rand/v2"
	"time"

	"temanikan/internal/models"
)

// Per-tick perturbation bounds: each field moves by a uniform delta in
// [-span/2, span/2).
const (
	phSpan          = 0.1
	temperatureSpan = 0.2
	turbiditySpan   = 2.0
	oxygenSpan      = 0.1

	TurbidityMin = 5.0
	TurbidityMax = 30.0

	timeLayout = "15.04.05" // id-ID time display
)

// Seed is the reading every freshly mounted feed starts from.
func Seed(now time.Time) models.Reading {
	return models.Reading{
		PH:          7.2,
		Temperature: 26.5,
		Turbidity:   15,
		Oxygen:      8.5,
		WaterLevel:  85,
		Time:        now.Format(timeLayout),
	}
}

// Step returns the next reading: prev plus a random delta per field.
// pH is rounded to 2 decimals, temperature and oxygen to 1, turbidity is
// clamped to [TurbidityMin, TurbidityMax]. Water level does not drift.
func Step(prev models.Reading, rng *rand.Rand, now time.Time) models.Reading {
	return models.Reading{
		PH:          round(prev.PH+delta(rng, phSpan), 2),
		Temperature: round(prev.Temperature+delta(rng, temperatureSpan), 1),
		Turbidity:   clamp(prev.Turbidity+delta(rng, turbiditySpan), TurbidityMin, TurbidityMax),
		Oxygen:      round(prev.Oxygen+delta(rng, oxygenSpan), 1),
		WaterLevel:  prev.WaterLevel,
		Time:        now.Format(timeLayout),
	}
}

func delta(rng *rand.Rand, span float64) float64 {
	return (rng.Float64() - 0.5) * span
}

func round(v float64, places int) float64 {
	p := math.Pow10(places)
	return math.Round(v*p) / p
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
