package handlers

import (
	"net/http"

	"temanikan/internal/access"
	"temanikan/internal/models"

	"github.com/gin-gonic/gin"
)

type navigateInput struct {
	// Any string is accepted. Empty means home; unknown or denied views land on home.
	View string `json:"view"`
}

type navigateResponse struct {
	Requested string          `json:"requested"`
	Active    models.View     `json:"active"`
	Nav       []models.NavTab `json:"nav"`
}

type accessQuery struct {
	View string `json:"view" form:"view" binding:"required,view"`
}

type accessResponse struct {
	View    string      `json:"view"`
	Role    models.Role `json:"role"`
	Allowed bool        `json:"allowed"`
}

// @Summary      Current session
// @Tags         session
// @Produce      json
// @Success      200  {object}  session.Session
// @Router       /api/v1/session [get]
// @Security     BearerAuth
func (h *Handler) getSession(c *gin.Context) {
	sid, ok := h.ensureSession(c)
	if !ok {
		return
	}
	sess, err := h.services.Resolve(sid)
	if err != nil {
		h.logAndJSONError(c, http.StatusUnauthorized, "session expired", "session_get_failed", err)
		return
	}
	c.JSON(http.StatusOK, sess)
}

// @Summary      Navigate
// @Description  Switches the active view. A view the role may not see, or an unknown one, resolves to home without an error.
// @Tags         session
// @Accept       json
// @Produce      json
// @Param        input  body      navigateInput  true  "Target view"
// @Success      200    {object}  navigateResponse
// @Failure      400    {object}  map[string]string
// @Router       /api/v1/navigate [post]
// @Security     BearerAuth
func (h *Handler) navigate(c *gin.Context) {
	var input navigateInput
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	if input.View == "" {
		input.View = string(models.ViewHome)
	}

	sid, ok := h.ensureSession(c)
	if !ok {
		return
	}
	nav, err := h.services.Navigate(c.Request.Context(), sid, input.View)
	if err != nil {
		h.logAndJSONError(c, http.StatusUnauthorized, "session expired", "navigate_failed", err, "view", input.View)
		return
	}
	c.JSON(http.StatusOK, navigateResponse{
		Requested: nav.Requested,
		Active:    nav.Active,
		Nav:       access.NavTabs(nav.Session.Role(), nav.Active),
	})
}

// @Summary      Render the active view
// @Description  Returns the data of whatever view the session resolves to, plus the navigation bar.
// @Tags         session
// @Produce      json
// @Success      200  {object}  service.ViewPayload
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/view [get]
// @Security     BearerAuth
func (h *Handler) getView(c *gin.Context) {
	sess, ok := h.currentSession(c)
	if !ok {
		return
	}
	payload, err := h.services.Render(c.Request.Context(), sess)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to render view", "view_render_failed", err, "view", sess.ActiveView)
		return
	}
	c.JSON(http.StatusOK, payload)
}

// @Summary      Check access
// @Tags         session
// @Produce      json
// @Param        view  query     string  true  "View identifier"
// @Success      200   {object}  accessResponse
// @Failure      400   {object}  map[string]string
// @Router       /api/v1/access [get]
// @Security     BearerAuth
func (h *Handler) checkAccess(c *gin.Context) {
	sess, ok := h.currentSession(c)
	if !ok {
		return
	}
	var q accessQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.logAndJSONError(c, http.StatusBadRequest, validationMessage(err), "access_bad_query", err)
		return
	}
	view, _ := models.ParseView(q.View)
	c.JSON(http.StatusOK, accessResponse{
		View:    string(view),
		Role:    sess.Role(),
		Allowed: access.CanAccess(sess.Role(), view),
	})
}
