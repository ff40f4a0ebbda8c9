package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"temanikan/internal/metrics"
	"temanikan/internal/models"
)

const DefaultDiagnosisDelay = 2 * time.Second

var ErrNoSymptoms = errors.New("symptoms are required")

var commonSymptoms = []string{
	"Sirip rusak atau robek",
	"Bintik putih pada tubuh",
	"Ikan lemas dan tidak aktif",
	"Napas tersengal-sengal",
	"Mata keruh atau bengkak",
	"Sisik rontok",
	"Perubahan warna",
	"Tidak mau makan",
}

// Diagnoser turns a symptom description into a diagnosis.
type Diagnoser interface {
	Diagnose(ctx context.Context, symptoms string) (models.Diagnosis, error)
}

// MockDiagnoser waits a fixed analysis delay and always returns the same
// white spot result.
type MockDiagnoser struct {
	delay time.Duration
}

func NewMockDiagnoser(delay time.Duration) *MockDiagnoser {
	if delay < 0 {
		delay = 0
	}
	return &MockDiagnoser{delay: delay}
}

func (d *MockDiagnoser) Diagnose(ctx context.Context, symptoms string) (models.Diagnosis, error) {
	if strings.TrimSpace(symptoms) == "" {
		return models.Diagnosis{}, ErrNoSymptoms
	}
	if d.delay > 0 {
		t := time.NewTimer(d.delay)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return models.Diagnosis{}, ctx.Err()
		case <-t.C:
		}
	}
	return whiteSpotDiagnosis(), nil
}

func whiteSpotDiagnosis() models.Diagnosis {
	return models.Diagnosis{
		Disease:    "White Spot Disease (Ichthyophthirius)",
		Confidence: 87,
		Severity:   "Sedang",
		Symptoms:   []string{"Bintik putih pada tubuh", "Ikan lemas dan tidak aktif"},
		Treatment: []string{
			"Naikkan suhu air secara bertahap ke 30°C",
			"Tambahkan garam ikan (1 sendok teh per 4 liter)",
			"Berikan obat anti parasit sesuai dosis",
			"Ganti air 25% setiap hari",
		},
		Prevention: []string{
			"Jaga kualitas air tetap stabil",
			"Karantina ikan baru sebelum dicampur",
			"Hindari perubahan suhu mendadak",
			"Bersihkan akuarium secara rutin",
		},
		Duration: "7-14 hari",
	}
}

// AddSymptom appends symptom to a comma-separated description unless the
// description already contains it.
func AddSymptom(current, symptom string) string {
	symptom = strings.TrimSpace(symptom)
	if symptom == "" || strings.Contains(current, symptom) {
		return current
	}
	if current == "" {
		return symptom
	}
	return current + ", " + symptom
}

// DiagnosisInput is free text plus quick-pick symptoms merged into it.
type DiagnosisInput struct {
	Symptoms string
	Selected []string
}

// Text is the merged description sent to the diagnoser.
func (in DiagnosisInput) Text() string {
	text := strings.TrimSpace(in.Symptoms)
	for _, s := range in.Selected {
		text = AddSymptom(text, s)
	}
	return text
}

type DiagnosisService struct {
	diagnoser Diagnoser
	events    EventLog
}

func NewDiagnosisService(d Diagnoser, events EventLog) *DiagnosisService {
	return &DiagnosisService{diagnoser: d, events: events}
}

func (s *DiagnosisService) Diagnose(ctx context.Context, in DiagnosisInput) (models.Diagnosis, error) {
	text := in.Text()
	res, err := s.diagnoser.Diagnose(ctx, text)
	if err != nil {
		return models.Diagnosis{}, err
	}
	metrics.DiagnosesTotal.Inc()
	s.events.Record(ctx, models.EventDiagnosis, res.Disease, map[string]any{
		"symptoms": text, "confidence": res.Confidence,
	})
	return res, nil
}

// CommonSymptoms returns the quick-pick list.
func (s *DiagnosisService) CommonSymptoms() []string {
	out := make([]string, len(commonSymptoms))
	copy(out, commonSymptoms)
	return out
}
