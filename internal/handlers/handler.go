package handlers

import (
	"net/http"

	_ "temanikan/docs"
	"temanikan/internal/logger"
	"temanikan/internal/models"
	"temanikan/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
	upgrader websocket.Upgrader
}

type Option func(*Handler)

// WithOriginCheck restricts which browser origins may open the telemetry
// websocket. Requests without an Origin header always pass.
func WithOriginCheck(allowed func(*http.Request) bool) Option {
	return func(h *Handler) {
		h.upgrader.CheckOrigin = func(r *http.Request) bool {
			return r.Header.Get("Origin") == "" || allowed(r)
		}
	}
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger, opts ...Option) *Handler {
	if log == nil {
		log = logger.Nop()
	}
	h := &Handler{
		services: services,
		log:      log,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
	for _, o := range opts {
		o(h)
	}
	return h
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	registerValidators()

	router := gin.New()
	router.Use(gin.Recovery(), h.requestLogger, requestMetrics)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", h.health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	h.registerAuthRoutes(router)
	h.registerAPIRoutes(router)

	// The stream authenticates through ?token= since browsers cannot set
	// headers on a websocket handshake.
	router.GET("/ws/monitoring", h.sessionMiddleware, h.requireView(models.ViewMonitoring), h.wsMonitoring)

	return router
}

func (h *Handler) registerAuthRoutes(r *gin.Engine) {
	auth := r.Group("/auth", h.sessionMiddleware)
	{
		auth.POST("/sign-in", h.signIn)
		auth.POST("/sign-up", h.signUp)
		auth.POST("/demo", h.demoLogin)
		auth.POST("/guest", h.switchToGuest)
		auth.POST("/logout", h.logout)
		auth.GET("/admin-info", h.adminInfo)
	}
}

func (h *Handler) registerAPIRoutes(r *gin.Engine) {
	api := r.Group("/api/v1", h.sessionMiddleware)
	{
		api.GET("/session", h.getSession)
		api.POST("/navigate", h.navigate)
		api.GET("/view", h.getView)
		api.GET("/access", h.checkAccess)

		h.registerCatalogRoutes(api)
		h.registerDiagnosisRoutes(api)
		h.registerAdminRoutes(api)
		h.registerMonitoringRoutes(api)
	}
}

func (h *Handler) registerCatalogRoutes(api *gin.RouterGroup) {
	api.GET("/encyclopedia", h.requireView(models.ViewEncyclopedia), h.getEncyclopedia)
	api.GET("/forum", h.requireView(models.ViewForum), h.getForum)
	api.GET("/shop", h.requireView(models.ViewShop), h.getShop)
	api.GET("/guides", h.requireView(models.ViewGuide), h.getGuides)
}

func (h *Handler) registerDiagnosisRoutes(api *gin.RouterGroup) {
	diag := api.Group("/diagnosis", h.requireView(models.ViewDiagnosis))
	{
		diag.GET("/symptoms", h.getSymptoms)
		diag.POST("", h.diagnose)
	}
}

func (h *Handler) registerAdminRoutes(api *gin.RouterGroup) {
	admin := api.Group("/admin", h.requireView(models.ViewAdmin))
	{
		admin.GET("", h.getAdmin)
		admin.GET("/logs", h.getLogs)
	}
}

func (h *Handler) registerMonitoringRoutes(api *gin.RouterGroup) {
	mon := api.Group("/monitoring", h.requireView(models.ViewMonitoring))
	{
		mon.GET("", h.getMonitoring)
		mon.POST("/schedules/:id/toggle", h.toggleSchedule)
		mon.POST("/robot/toggle", h.toggleRobot)
		mon.POST("/robot/emergency", h.emergencyClean)
		// Body example: {"light_intensity":80,"filter_speed":50,"auto_mode":false}
		mon.POST("/controls", h.updateControls)
	}
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// logAndJSONError logs err under logKey and writes {"error": userMsg}.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		if httpCode >= http.StatusInternalServerError {
			h.log.Errorw(logKey, fields...)
		} else {
			h.log.Infow(logKey, fields...)
		}
	}
	c.JSON(httpCode, gin.H{"error": userMsg})
}

// bindJSONOrBadRequest binds the body into dst and writes a 400 on failure.
// It returns false when the request was already answered.
func (h *Handler) bindJSONOrBadRequest(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		h.logAndJSONError(c, http.StatusBadRequest, validationMessage(err), "bad_request_body", err, "path", c.FullPath())
		return false
	}
	return true
}
