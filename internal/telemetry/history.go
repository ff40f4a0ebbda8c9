package telemetry

import "temanikan/internal/models"

// HistoryLen is the number of points on the history chart.
const HistoryLen = 7

var seedHistory = [HistoryLen]models.Sample{
	{Time: "00:00", PH: 7.0, Temperature: 25.5, Turbidity: 18, Oxygen: 8.2},
	{Time: "04:00", PH: 7.1, Temperature: 25.8, Turbidity: 16, Oxygen: 8.3},
	{Time: "08:00", PH: 7.2, Temperature: 26.0, Turbidity: 15, Oxygen: 8.4},
	{Time: "12:00", PH: 7.3, Temperature: 26.5, Turbidity: 14, Oxygen: 8.5},
	{Time: "16:00", PH: 7.2, Temperature: 26.8, Turbidity: 15, Oxygen: 8.6},
	{Time: "20:00", PH: 7.1, Temperature: 26.5, Turbidity: 16, Oxygen: 8.5},
	{Time: "24:00", PH: 7.2, Temperature: 26.5, Turbidity: 15, Oxygen: 8.5},
}

// History is a fixed-length rolling window of samples. The live feed pushes
// every tick into it, so the chart follows the cards.
type History struct {
	buf  [HistoryLen]models.Sample
	head int // index of the oldest sample
}

// NewHistory returns a window holding the static seed series.
func NewHistory() *History {
	return &History{buf: seedHistory}
}

// Push appends r and drops the oldest sample.
func (h *History) Push(r models.Reading) {
	h.buf[h.head] = models.Sample{
		Time:        r.Time,
		PH:          r.PH,
		Temperature: r.Temperature,
		Turbidity:   r.Turbidity,
		Oxygen:      r.Oxygen,
	}
	h.head = (h.head + 1) % HistoryLen
}

// Samples returns the window oldest first.
func (h *History) Samples() []models.Sample {
	out := make([]models.Sample, 0, HistoryLen)
	for i := 0; i < HistoryLen; i++ {
		out = append(out, h.buf[(h.head+i)%HistoryLen])
	}
	return out
}

// SeedHistory returns the static series a new window starts with.
func SeedHistory() []models.Sample {
	out := make([]models.Sample, HistoryLen)
	copy(out, seedHistory[:])
	return out
}
