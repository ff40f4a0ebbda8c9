package handlers

import (
	"context"
	"errors"
	"net/http"

	"temanikan/internal/service"

	"github.com/gin-gonic/gin"
)

type diagnoseInput struct {
	Symptoms string   `json:"symptoms"`
	Selected []string `json:"selected"`
}

// @Summary      Common symptoms
// @Tags         diagnosis
// @Produce      json
// @Success      200  {object}  service.DiagnosisPage
// @Failure      403  {object}  map[string]string
// @Router       /api/v1/diagnosis/symptoms [get]
// @Security     BearerAuth
func (h *Handler) getSymptoms(c *gin.Context) {
	c.JSON(http.StatusOK, service.DiagnosisPage{CommonSymptoms: h.services.CommonSymptoms()})
}

// @Summary      Diagnose symptoms
// @Description  Free text plus quick-pick symptoms. The analysis is simulated and takes a moment.
// @Tags         diagnosis
// @Accept       json
// @Produce      json
// @Param        input  body      diagnoseInput  true  "Symptoms"
// @Success      200    {object}  models.Diagnosis
// @Failure      400    {object}  map[string]string
// @Failure      403    {object}  map[string]string
// @Router       /api/v1/diagnosis [post]
// @Security     BearerAuth
func (h *Handler) diagnose(c *gin.Context) {
	var input diagnoseInput
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	res, err := h.services.Diagnose(c.Request.Context(), service.DiagnosisInput{
		Symptoms: input.Symptoms,
		Selected: input.Selected,
	})
	switch {
	case errors.Is(err, service.ErrNoSymptoms):
		h.logAndJSONError(c, http.StatusBadRequest, err.Error(), "diagnosis_rejected", err)
		return
	case errors.Is(err, context.Canceled):
		// client went away mid-analysis
		c.Status(http.StatusNoContent)
		return
	case err != nil:
		h.logAndJSONError(c, http.StatusInternalServerError, "diagnosis failed", "diagnosis_failed", err)
		return
	}
	c.JSON(http.StatusOK, res)
}
