package v1

import (
	"github.com/gin-gonic/gin"
)

const apiPrefix = "/api/v1"

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Панель экстренного реагирования
	emergency := api.Group("/emergency")
	{
		emergency.GET("/incidents", h.listIncidents)
		emergency.POST("/incidents", h.reportIncident)
		emergency.GET("/resources", h.listResources)
		emergency.POST("/resources/:id/dispatch", h.dispatchResource)
		emergency.GET("/summary", h.getEmergencySummary)
		emergency.GET("/messages", h.listMessages)
		emergency.POST("/messages", h.sendMessage)
	}

	// Панель сетевых операций
	network := api.Group("/network")
	{
		network.GET("/incidents", h.listNetworkIncidents)
		network.GET("/alerts", h.listAlerts)
		network.GET("/kpis", h.listNetworkKPIs)
	}

	// Панель объектов инфраструктуры
	assets := api.Group("/assets")
	{
		assets.GET("", h.listAssets)
		assets.GET("/kpis", h.getAssetKPIs)
		assets.GET("/maintenance", h.getMaintenanceQueue)
		assets.GET("/budget", h.listBudgetLines)
		assets.GET("/condition", h.getConditionMatrix)
		assets.GET("/schedule", h.getSchedule)
		assets.GET("/costs", h.getCostBreakdown)
	}

	// Панель аналитики движения
	traffic := api.Group("/traffic")
	{
		traffic.GET("/hotspots", h.listHotspots)
		traffic.GET("/metrics", h.listTrafficMetrics)
		traffic.GET("/volume", h.getVolumeChart)
		traffic.GET("/segments", h.listSegments)
		traffic.GET("/history", h.getHistory)
	}

	api.GET("/dashboards", h.listDashboards)
	api.GET("/dashboards/:slug", h.getDashboard)

	api.GET("/system/health", h.healthCheck)
	api.GET("/system/status", h.getStatus)
}

// RegisterFallbacks: корневой путь открывает панель по умолчанию, неизвестный путь - 404
func (h *Handler) RegisterFallbacks(router *gin.Engine) {
	router.GET("/", h.getDefaultDashboard)
	router.NoRoute(h.notFound)
}
