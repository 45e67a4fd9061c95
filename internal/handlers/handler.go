package handlers

import (
	"tjbuilding/internal/logger"
	"tjbuilding/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger) *Handler {
	return &Handler{services: services, log: log}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), h.requestMetrics)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// System endpoints
	router.GET("/health", h.health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Auth endpoints
	h.registerAuthRoutes(router)

	// Dashboard collaborators
	h.registerAssistantRoutes(router)
	h.registerStatisticsRoutes(router)

	// Synthetic telemetry views
	h.registerAPIRoutes(router)

	return router
}

func (h *Handler) registerAuthRoutes(r *gin.Engine) {
	auth := r.Group("/auth")
	{
		auth.POST("/sign-up", h.signUp)
		auth.POST("/sign-in", h.signIn)
	}
}

func (h *Handler) registerAssistantRoutes(r *gin.Engine) {
	assistant := r.Group("/api/assistant")
	{
		// Body example: {"question":"How can we save energy?"}
		assistant.POST("/ask", h.askAssistant)
		assistant.GET("/suggestions", h.getSuggestions)
		assistant.GET("/knowledge", h.listKnowledge)

		admin := assistant.Group("/knowledge", h.userIdMiddleware)
		admin.POST("", h.addKnowledge)
		admin.PUT("/:id", h.updateKnowledge)
		admin.DELETE("/:id", h.deleteKnowledge)
	}
}

func (h *Handler) registerStatisticsRoutes(r *gin.Engine) {
	stats := r.Group("/api/statistics")
	{
		stats.GET("/floor", h.getFloorStatistics)
		stats.GET("/room", h.getRoomStatistics)
		stats.GET("/floors", h.getFloors)
		stats.GET("/rooms", h.getRoomsByFloor)
	}
}

func (h *Handler) registerAPIRoutes(r *gin.Engine) {
	api := r.Group("/api/v1")
	{
		h.registerSessionRoutes(api)
		h.registerStatusRoutes(api)
		api.GET("/floors/:floor/report", h.getFloorReport)
	}
}

func (h *Handler) registerSessionRoutes(api *gin.RouterGroup) {
	sessions := api.Group("/sessions")
	{
		// Body example: {"floor":"3","kind":"ac"}
		sessions.POST("", h.openSession)
		sessions.DELETE("/:id", h.closeSession)
		sessions.GET("/:id/floor", h.getFloorView)
		sessions.GET("/:id/rooms/:room", h.getRoomView)
		// Body example: {"on":false}
		sessions.PUT("/:id/devices/:device/state", h.setDeviceState)
	}
}

func (h *Handler) registerStatusRoutes(api *gin.RouterGroup) {
	status := api.Group("/status")
	{
		status.GET("/rooms/:room", h.getRoomStatus)
		status.GET("/floors/:floor", h.getFloorStatus)
	}
}
