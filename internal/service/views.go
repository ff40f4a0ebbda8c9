package service

import (
	"context"

	"temanikan/internal/access"
	"temanikan/internal/models"
	"temanikan/internal/repository"
	"temanikan/internal/session"
)

// ViewPayload is the data of the view a session currently renders, plus
// the navigation bar for its role.
type ViewPayload struct {
	View models.View     `json:"view"`
	Nav  []models.NavTab `json:"nav"`
	Data any             `json:"data"`
}

// DiagnosisPage is the empty diagnosis form.
type DiagnosisPage struct {
	CommonSymptoms []string `json:"common_symptoms"`
}

type ViewService struct {
	catalog    Catalog
	diagnosis  Diagnosis
	monitoring Monitoring
}

func NewViewService(catalog Catalog, diagnosis Diagnosis, monitoring Monitoring) *ViewService {
	return &ViewService{catalog: catalog, diagnosis: diagnosis, monitoring: monitoring}
}

// Render dispatches on the session's active view. The view is re-checked
// against the access policy first, so a stale or denied view renders home.
func (s *ViewService) Render(ctx context.Context, sess session.Session) (ViewPayload, error) {
	view, _ := sess.Resolve()
	role := sess.Role()

	var (
		data any
		err  error
	)
	switch view {
	case models.ViewEncyclopedia:
		data, err = s.catalog.Encyclopedia(ctx, repository.FishFilter{})
	case models.ViewDiagnosis:
		data = DiagnosisPage{CommonSymptoms: s.diagnosis.CommonSymptoms()}
	case models.ViewForum:
		data, err = s.catalog.Forum(ctx)
	case models.ViewShop:
		data, err = s.catalog.Shop(ctx)
	case models.ViewGuide:
		data, err = s.catalog.Guides(ctx)
	case models.ViewAdmin:
		data, err = s.catalog.Admin(ctx)
	case models.ViewMonitoring:
		data, err = s.monitoring.Panel(ctx)
	default:
		view = models.ViewHome
		data, err = s.catalog.Home(ctx, role)
	}
	if err != nil {
		return ViewPayload{}, err
	}
	return ViewPayload{View: view, Nav: access.NavTabs(role, view), Data: data}, nil
}
