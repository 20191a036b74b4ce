package v1

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/road_intelligence/internal/models"
	"github.com/shenikar/road_intelligence/internal/pipeline"
	"github.com/shenikar/road_intelligence/internal/service"
)

// @Summary List dashboards
// @Description Dashboards in navigation order
// @Tags Dashboards
// @Produce json
// @Success 200 {array} DashboardResponse
// @Router /dashboards [get]
func (h *Handler) listDashboards(c *gin.Context) {
	dashboards := service.Dashboards()
	resp := make([]DashboardResponse, len(dashboards))
	for i, d := range dashboards {
		resp[i] = toDashboardResponse(d)
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Get dashboard
// @Description All views of a dashboard with default filters and sorting
// @Tags Dashboards
// @Produce json
// @Param slug path string true "Dashboard slug"
// @Success 200 {object} DashboardViewResponse
// @Failure 404 {object} map[string]string "Dashboard not found"
// @Router /dashboards/{slug} [get]
func (h *Handler) getDashboard(c *gin.Context) {
	h.renderDashboard(c, c.Param("slug"))
}

// getDefaultDashboard отдает панель по умолчанию на корневом пути
func (h *Handler) getDefaultDashboard(c *gin.Context) {
	h.renderDashboard(c, "")
}

func (h *Handler) renderDashboard(c *gin.Context, slug string) {
	log := h.logger.WithField("method", "renderDashboard").WithField("slug", slug)

	dashboard, ok := service.DashboardBySlug(slug)
	if !ok {
		log.Warn("Unknown dashboard requested")
		h.notFound(c)
		return
	}

	views, err := h.dashboardViews(c.Request.Context(), dashboard)
	if err != nil {
		log.WithError(err).Error("Failed to build dashboard views")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, DashboardViewResponse{Dashboard: toDashboardResponse(dashboard), Views: views})
}

func (h *Handler) dashboardViews(ctx context.Context, d service.Dashboard) (map[string]any, error) {
	defaults := service.ViewQuery{Filter: pipeline.All}
	switch d.Slug {
	case service.DashboardEmergency:
		return map[string]any{
			"summary":   toSummaryResponse(h.emergencyService.Summary(ctx)),
			"incidents": toIncidentList(h.emergencyService.ListIncidents(ctx, defaults)),
			"resources": toResourceList(h.emergencyService.ListResources(ctx, defaults)),
			"messages":  toMessageFeed(h.emergencyService.ListMessages(ctx, service.ViewQuery{Filter: models.ChannelDispatch})),
		}, nil
	case service.DashboardNetwork:
		return map[string]any{
			"kpis":      toKPIItems(h.networkService.KPIs(ctx)),
			"incidents": toNetworkIncidentList(h.networkService.ListIncidents(ctx, defaults)),
			"alerts":    toAlertFeed(h.networkService.ListAlerts(ctx, defaults)),
		}, nil
	case service.DashboardAssets:
		kpis, err := h.assetService.KPIs(ctx, h.cfg.ConditionThreshold)
		if err != nil {
			return nil, err
		}
		condition, err := h.assetService.ConditionMatrix(ctx, DefaultConditionMonths)
		if err != nil {
			return nil, err
		}
		return map[string]any{
			"kpis":        toAssetKPIs(kpis),
			"assets":      toAssetList(h.assetService.ListAssets(ctx, defaults)),
			"maintenance": toMaintenanceQueue(h.assetService.MaintenanceQueue(ctx, defaults)),
			"budget":      h.assetService.BudgetLines(ctx),
			"condition":   toConditionRows(condition),
			"schedule":    toProjectSchedule(h.assetService.Schedule(ctx, defaults)),
			"costs":       toCostBreakdown(h.assetService.CostBreakdown(ctx)),
		}, nil
	case service.DashboardTraffic:
		return map[string]any{
			"metrics":  h.trafficService.Metrics(ctx),
			"volume":   toVolumeChart(h.trafficService.VolumeSeries(ctx)),
			"hotspots": toHotspotList(h.trafficService.ListHotspots(ctx, defaults)),
			"segments": toSegmentList(h.trafficService.Segments(ctx, defaults)),
			"history":  toTrendChart(h.trafficService.History(ctx, false)),
		}, nil
	}
	return map[string]any{}, nil
}
