package handlers

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"time"

	"temanikan/internal/access"
	"temanikan/internal/metrics"
	"temanikan/internal/models"
	"temanikan/internal/telemetry"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// Send/receive timing configuration and message size limits.
const (
	writeWait        = 10 * time.Second
	pongWait         = 60 * time.Second
	pingPeriod       = (pongWait * 9) / 10
	maxMsgSize       = 1 << 12 // 4 KB
	minInterval      = 100 * time.Millisecond
	maxInterval      = 10 * time.Second
	maxIntervalMilli = 10_000
)

// errAccessRevoked ends a stream whose session lost the monitoring view.
var errAccessRevoked = errors.New("monitoring access revoked")

type wsEnvelope struct {
	Type  string      `json:"type"`
	Data  interface{} `json:"data,omitempty"`
	Error string      `json:"error,omitempty"`
}

// @Summary      Live telemetry stream
// @Description  Websocket. Sends {"type":"telemetry","data":snapshot} right away and then every interval. Authenticate with ?token=.
// @Tags         monitoring
// @Param        token        query  string  false  "Session token"
// @Param        interval     query  string  false  "Period, e.g. 3s (100ms..10s)"
// @Param        interval_ms  query  int     false  "Period in milliseconds"
// @Success      101
// @Failure      403  {object}  map[string]string
// @Router       /ws/monitoring [get]
func (h *Handler) wsMonitoring(c *gin.Context) {
	interval := h.parseInterval(c)
	sid := c.GetString(ctxSessionID)

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Errorw("ws_upgrade_failed", "err", err)
		return
	}

	metrics.TelemetryStreamsActive.Inc()
	defer metrics.TelemetryStreamsActive.Dec()

	ctx, cancel := context.WithCancel(c.Request.Context())
	var wg sync.WaitGroup
	defer func() {
		cancel()
		_ = conn.Close()
		wg.Wait()
	}()

	conn.SetReadLimit(maxMsgSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	wg.Add(2)
	go func() {
		defer wg.Done()
		h.startReader(conn, cancel)
	}()
	go func() {
		defer wg.Done()
		h.startPinger(ctx, conn)
	}()

	// Each connection watches its own simulated tank.
	feed := h.services.NewFeed()
	err = feed.Run(ctx, interval, func(s telemetry.Snapshot) error {
		if !h.streamAllowed(sid) {
			return errAccessRevoked
		}
		metrics.TelemetryTicksTotal.Inc()
		_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
		return conn.WriteJSON(wsEnvelope{Type: "telemetry", Data: s})
	})
	switch {
	case errors.Is(err, errAccessRevoked):
		h.log.Infow("ws_access_revoked", "session_id", sid)
		msg := websocket.FormatCloseMessage(websocket.ClosePolicyViolation, "access denied")
		if werr := conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(writeWait)); werr != nil {
			h.log.Debugw("ws_close_failed", "err", werr)
		}
	case err != nil && !errors.Is(err, context.Canceled):
		h.log.Infow("ws_write_failed", "err", err)
	}
}

// streamAllowed reports whether the session still exists and may see the
// monitoring view.
func (h *Handler) streamAllowed(sid string) bool {
	sess, err := h.services.Sessions.Get(sid)
	if err != nil {
		return false
	}
	return access.CanAccess(sess.Role(), models.ViewMonitoring)
}

// parseInterval reads ?interval=2s or ?interval_ms=2000 within bounds and
// falls back to the configured feed period.
func (h *Handler) parseInterval(c *gin.Context) time.Duration {
	if s := c.Query("interval"); s != "" {
		if d, err := time.ParseDuration(s); err == nil && d >= minInterval && d <= maxInterval {
			return d
		}
	}

	if ms := c.Query("interval_ms"); ms != "" {
		if v, err := strconv.Atoi(ms); err == nil && v >= int(minInterval/time.Millisecond) && v <= maxIntervalMilli {
			return time.Duration(v) * time.Millisecond
		}
	}

	return h.services.FeedPeriod()
}

// startReader drains incoming frames so control messages are handled, and
// cancels the stream once the peer goes away.
func (h *Handler) startReader(conn *websocket.Conn, cancel context.CancelFunc) {
	defer cancel()
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			h.log.Debugw("ws_read_closed", "err", err)
			return
		}
	}
}

// startPinger keeps the connection alive. WriteControl may run alongside the
// feed's writes.
func (h *Handler) startPinger(ctx context.Context, conn *websocket.Conn) {
	t := time.NewTicker(pingPeriod)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				h.log.Infow("ws_ping_failed", "err", err)
				return
			}
		}
	}
}
