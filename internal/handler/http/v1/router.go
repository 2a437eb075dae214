package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Маршрут Health-check без аутентификации
	api.GET("/system/health", h.healthCheck)

	protected := api.Group("")
	protected.Use(APIKeyAuthMiddleware(h.cfg, h.logger))

	// Прием сигналов
	protected.POST("/reports", h.createReport)
	protected.GET("/reports", h.listReports)
	protected.PUT("/reports/:id/verify", h.verifyReport)
	protected.POST("/social-posts", h.createSocialPost)
	protected.GET("/social-media", h.listSocialPosts)

	signals := protected.Group("/signals")
	{
		signals.POST("", h.createSignal)
		signals.GET("/recent", h.recentSignals)
		signals.GET("/area", h.signalsInArea)
		signals.GET("/stream", h.streamSignals)
		signals.GET("/:id", h.getSignal)
	}

	analysis := protected.Group("/analysis")
	{
		analysis.POST("/text", h.analyzeText)
		analysis.GET("/hazards", h.hazardAnalysis)
	}

	dashboard := protected.Group("/dashboard")
	{
		dashboard.GET("/stats", h.dashboardStats)
		dashboard.GET("/hazard-types", h.hazardTypeCounts)
		dashboard.GET("/sources", h.sourceCounts)
	}

	protected.GET("/hotspots", h.listHotspots)
	protected.GET("/alerts", h.listAlerts)
	protected.POST("/aggregation/run", h.runAggregation)
}
