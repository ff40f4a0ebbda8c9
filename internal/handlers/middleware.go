package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"temanikan/internal/access"
	"temanikan/internal/metrics"
	"temanikan/internal/models"
	"temanikan/internal/session"

	"github.com/gin-gonic/gin"
)

// Gin context keys and the header a freshly issued token is returned in.
const (
	ctxSessionID   = "sessionId"
	ctxToken       = "sessionToken"
	sessionHeader  = "X-Session-Token"
	unmatchedRoute = "unmatched"
)

// sessionMiddleware binds the request to the stored session named by the
// token in "Authorization: Bearer" or the token query parameter. A missing,
// invalid or expired token is not an error: the request proceeds as an
// unstored guest until a handler needs state kept (see ensureSession).
func (h *Handler) sessionMiddleware(c *gin.Context) {
	if token := requestToken(c); token != "" {
		sid, err := h.services.ParseToken(token)
		if err == nil {
			if _, err = h.services.Sessions.Get(sid); err == nil {
				c.Set(ctxSessionID, sid)
				c.Set(ctxToken, token)
				c.Next()
				return
			}
		}
		h.log.Debugw("session_token_rejected", "err", err)
	}
	c.Next()
}

// ensureSession returns the request's stored session id, opening a guest
// session and returning its token in the X-Session-Token header when there
// is none. It writes a 500 and returns false if no token could be issued.
func (h *Handler) ensureSession(c *gin.Context) (string, bool) {
	if sid := c.GetString(ctxSessionID); sid != "" {
		return sid, true
	}
	sess := h.services.Start()
	token, err := h.services.IssueToken(sess.ID)
	if err != nil {
		h.services.Discard(sess.ID)
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to start session", "session_token_issue_failed", err)
		return "", false
	}
	c.Header(sessionHeader, token)
	c.Set(ctxSessionID, sess.ID)
	c.Set(ctxToken, token)
	return sess.ID, true
}

func requestToken(c *gin.Context) string {
	if header := c.GetHeader("Authorization"); header != "" {
		parts := strings.SplitN(header, " ", 2)
		if len(parts) == 2 && parts[0] == "Bearer" {
			return strings.TrimSpace(parts[1])
		}
		return ""
	}
	return c.Query("token")
}

// currentSession loads the request's session, or an unstored guest when the
// request carries none. It writes a 401 and returns false when the session
// disappeared between middleware and handler.
func (h *Handler) currentSession(c *gin.Context) (session.Session, bool) {
	sid := c.GetString(ctxSessionID)
	if sid == "" {
		return h.services.Guest(), true
	}
	sess, err := h.services.Sessions.Get(sid)
	if err != nil {
		h.logAndJSONError(c, http.StatusUnauthorized, "session expired", "session_lookup_failed", err)
		c.Abort()
		return session.Session{}, false
	}
	return sess, true
}

// requireView rejects requests whose session role may not see view.
// Data endpoints answer 403; only navigation falls back to home silently.
func (h *Handler) requireView(view models.View) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := h.currentSession(c)
		if !ok {
			return
		}
		if !access.CanAccess(sess.Role(), view) {
			h.services.EventLog.Record(c.Request.Context(), models.EventAccessDenied,
				"request to "+c.FullPath()+" denied", map[string]any{
					"session_id": sess.ID, "view": view, "role": sess.Role(),
				})
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "access denied"})
			return
		}
		c.Next()
	}
}

// requestLogger writes one zap line per request.
func (h *Handler) requestLogger(c *gin.Context) {
	start := time.Now()
	c.Next()
	h.log.Debugw("http_request",
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"status", c.Writer.Status(),
		"duration", time.Since(start),
		"client_ip", c.ClientIP(),
	)
}

// requestMetrics records count and latency per route template.
func requestMetrics(c *gin.Context) {
	start := time.Now()
	c.Next()
	route := c.FullPath()
	if route == "" {
		route = unmatchedRoute
	}
	metrics.HTTPRequestTotal.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
	metrics.HTTPRequestDurationSeconds.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
}
