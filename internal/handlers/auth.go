package handlers

import (
	"errors"
	"net/http"

	"temanikan/internal/models"
	"temanikan/internal/repository"
	"temanikan/internal/service"
	"temanikan/internal/session"

	"github.com/gin-gonic/gin"
)

type signInInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type signUpInput struct {
	Name            string `json:"name" binding:"required,notblank"`
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required,notblank"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
}

type demoInput struct {
	Role string `json:"role" binding:"required,role"`
}

// authResponse carries the session token with the resulting session.
type authResponse struct {
	Token   string          `json:"token,omitempty"`
	Session session.Session `json:"session"`
}

// @Summary      Sign in
// @Description  In demo mode any email signs in as a member and the admin email as admin.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        input  body      signInInput  true  "Credentials"
// @Success      200    {object}  authResponse
// @Failure      400    {object}  map[string]string
// @Failure      401    {object}  map[string]string
// @Router       /auth/sign-in [post]
func (h *Handler) signIn(c *gin.Context) {
	var input signInInput
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	u, err := h.services.SignIn(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		h.logAndJSONError(c, http.StatusUnauthorized, "invalid credentials", "auth_sign_in_failed", err, "email", input.Email)
		return
	}
	h.loginAndRespond(c, u, service.MethodPassword)
}

// @Summary      Register
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        input  body      signUpInput  true  "Account"
// @Success      200    {object}  authResponse
// @Failure      400    {object}  map[string]string
// @Failure      409    {object}  map[string]string
// @Router       /auth/sign-up [post]
func (h *Handler) signUp(c *gin.Context) {
	var input signUpInput
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	u, err := h.services.Register(c.Request.Context(), service.RegisterInput{
		Name:            input.Name,
		Email:           input.Email,
		Password:        input.Password,
		ConfirmPassword: input.ConfirmPassword,
	})
	switch {
	case errors.Is(err, service.ErrPasswordMismatch):
		h.logAndJSONError(c, http.StatusBadRequest, service.ErrPasswordMismatch.Error(), "auth_sign_up_failed", err, "email", input.Email)
		return
	case errors.Is(err, repository.ErrEmailTaken):
		h.logAndJSONError(c, http.StatusConflict, "email already registered", "auth_sign_up_failed", err, "email", input.Email)
		return
	case err != nil:
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to register", "auth_sign_up_failed", err, "email", input.Email)
		return
	}
	h.loginAndRespond(c, u, service.MethodRegister)
}

// @Summary      Demo login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        input  body      demoInput  true  "member or admin"
// @Success      200    {object}  authResponse
// @Failure      400    {object}  map[string]string
// @Failure      403    {object}  map[string]string
// @Router       /auth/demo [post]
func (h *Handler) demoLogin(c *gin.Context) {
	var input demoInput
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}
	role, _ := models.ParseRole(input.Role)

	u, err := h.services.DemoLogin(role)
	if err != nil {
		code := http.StatusBadRequest
		if errors.Is(err, service.ErrDemoDisabled) {
			code = http.StatusForbidden
		}
		h.logAndJSONError(c, code, err.Error(), "auth_demo_login_failed", err, "role", input.Role)
		return
	}
	h.loginAndRespond(c, u, service.MethodDemo)
}

func (h *Handler) loginAndRespond(c *gin.Context, u models.User, method string) {
	sid, ok := h.ensureSession(c)
	if !ok {
		return
	}
	sess, err := h.services.Sessions.Login(c.Request.Context(), sid, u, method)
	if err != nil {
		h.logAndJSONError(c, http.StatusUnauthorized, "session expired", "auth_login_failed", err)
		return
	}
	c.JSON(http.StatusOK, authResponse{Token: c.GetString(ctxToken), Session: sess})
}

// @Summary      Continue as guest
// @Description  Drops the user but keeps the current view when guests may see it.
// @Tags         auth
// @Produce      json
// @Success      200  {object}  authResponse
// @Router       /auth/guest [post]
func (h *Handler) switchToGuest(c *gin.Context) {
	sid := c.GetString(ctxSessionID)
	if sid == "" {
		// nothing stored to change
		c.JSON(http.StatusOK, authResponse{Session: h.services.Guest()})
		return
	}
	sess, err := h.services.SwitchToGuest(c.Request.Context(), sid)
	if err != nil {
		h.logAndJSONError(c, http.StatusUnauthorized, "session expired", "auth_guest_failed", err)
		return
	}
	c.JSON(http.StatusOK, authResponse{Token: c.GetString(ctxToken), Session: sess})
}

// @Summary      Log out
// @Tags         auth
// @Produce      json
// @Success      200  {object}  authResponse
// @Router       /auth/logout [post]
func (h *Handler) logout(c *gin.Context) {
	sid := c.GetString(ctxSessionID)
	if sid == "" {
		// nothing stored to change
		c.JSON(http.StatusOK, authResponse{Session: h.services.Guest()})
		return
	}
	sess, err := h.services.Logout(c.Request.Context(), sid)
	if err != nil {
		h.logAndJSONError(c, http.StatusUnauthorized, "session expired", "auth_logout_failed", err)
		return
	}
	c.JSON(http.StatusOK, authResponse{Token: c.GetString(ctxToken), Session: sess})
}

// @Summary      Demo admin credentials
// @Tags         auth
// @Produce      json
// @Success      200  {object}  models.AdminCredentials
// @Failure      404  {object}  map[string]string
// @Router       /auth/admin-info [get]
func (h *Handler) adminInfo(c *gin.Context) {
	info, err := h.services.AdminCredentials()
	if err != nil {
		h.logAndJSONError(c, http.StatusNotFound, "not available", "auth_admin_info_failed", err)
		return
	}
	c.JSON(http.StatusOK, info)
}
