package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"temanikan/internal/repository"
	"temanikan/internal/service"

	"github.com/gin-gonic/gin"
)

type controlsInput struct {
	AutoMode       *bool `json:"auto_mode"`
	LightIntensity *int  `json:"light_intensity" binding:"omitempty,min=0,max=100"`
	FilterSpeed    *int  `json:"filter_speed" binding:"omitempty,min=0,max=100"`
}

// @Summary      Monitoring panel
// @Tags         monitoring
// @Produce      json
// @Success      200  {object}  service.MonitoringPanel
// @Failure      403  {object}  map[string]string
// @Router       /api/v1/monitoring [get]
// @Security     BearerAuth
func (h *Handler) getMonitoring(c *gin.Context) {
	panel, err := h.services.Panel(c.Request.Context())
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to load monitoring panel", "monitoring_panel_failed", err)
		return
	}
	c.JSON(http.StatusOK, panel)
}

// @Summary      Toggle cleaning schedule
// @Tags         monitoring
// @Produce      json
// @Param        id   path      int  true  "Schedule id"
// @Success      200  {object}  models.CleaningSchedule
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/monitoring/schedules/{id}/toggle [post]
// @Security     BearerAuth
func (h *Handler) toggleSchedule(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		h.logAndJSONError(c, http.StatusBadRequest, "invalid schedule id", "schedule_bad_id", err, "id", c.Param("id"))
		return
	}
	sch, err := h.services.ToggleSchedule(c.Request.Context(), id)
	switch {
	case errors.Is(err, repository.ErrScheduleNotFound):
		h.logAndJSONError(c, http.StatusNotFound, "schedule not found", "schedule_toggle_failed", err, "id", id)
		return
	case err != nil:
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to toggle schedule", "schedule_toggle_failed", err, "id", id)
		return
	}
	c.JSON(http.StatusOK, sch)
}

// @Summary      Toggle cleaning robot
// @Tags         monitoring
// @Produce      json
// @Success      200  {object}  models.AquariumControls
// @Router       /api/v1/monitoring/robot/toggle [post]
// @Security     BearerAuth
func (h *Handler) toggleRobot(c *gin.Context) {
	ctrl, err := h.services.ToggleRobot(c.Request.Context())
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to toggle robot", "robot_toggle_failed", err)
		return
	}
	c.JSON(http.StatusOK, ctrl)
}

// @Summary      Emergency clean
// @Description  Starts the robot and stops it again after the configured duration.
// @Tags         monitoring
// @Produce      json
// @Success      200  {object}  models.AquariumControls
// @Failure      409  {object}  map[string]string
// @Router       /api/v1/monitoring/robot/emergency [post]
// @Security     BearerAuth
func (h *Handler) emergencyClean(c *gin.Context) {
	ctrl, err := h.services.EmergencyClean(c.Request.Context())
	switch {
	case errors.Is(err, service.ErrRobotBusy):
		h.logAndJSONError(c, http.StatusConflict, err.Error(), "robot_emergency_rejected", err)
		return
	case err != nil:
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to start emergency clean", "robot_emergency_failed", err)
		return
	}
	c.JSON(http.StatusOK, ctrl)
}

// @Summary      Update controls
// @Description  Only the fields present in the body change.
// @Tags         monitoring
// @Accept       json
// @Produce      json
// @Param        input  body      controlsInput  true  "Controls"
// @Success      200    {object}  models.AquariumControls
// @Failure      400    {object}  map[string]string
// @Router       /api/v1/monitoring/controls [post]
// @Security     BearerAuth
func (h *Handler) updateControls(c *gin.Context) {
	var input controlsInput
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}
	ctrl, err := h.services.UpdateControls(c.Request.Context(), service.ControlsUpdate{
		AutoMode:       input.AutoMode,
		LightIntensity: input.LightIntensity,
		FilterSpeed:    input.FilterSpeed,
	})
	switch {
	case errors.Is(err, service.ErrControlOutOfRange):
		h.logAndJSONError(c, http.StatusBadRequest, err.Error(), "controls_rejected", err)
		return
	case err != nil:
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to update controls", "controls_update_failed", err)
		return
	}
	c.JSON(http.StatusOK, ctrl)
}
