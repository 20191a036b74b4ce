package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary List network incidents
// @Description Incident management table, newest first by default
// @Tags Network
// @Produce json
// @Param filter query string false "Status filter" default(all)
// @Param sort query string false "Sort field"
// @Param dir query string false "Sort direction" Enums(asc, desc)
// @Param toggle query string false "Field to toggle relative to sort/dir"
// @Success 200 {object} NetworkIncidentListResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Router /network/incidents [get]
func (h *Handler) listNetworkIncidents(c *gin.Context) {
	log := h.logger.WithField("method", "listNetworkIncidents")
	q, ok := h.bindViewQuery(c, log)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, toNetworkIncidentList(h.networkService.ListIncidents(c.Request.Context(), q)))
}

// @Summary Live alert feed
// @Description Alerts with "time ago" labels, filtered by severity
// @Tags Network
// @Produce json
// @Param filter query string false "Severity filter" default(all)
// @Param sort query string false "Sort field"
// @Param dir query string false "Sort direction" Enums(asc, desc)
// @Param toggle query string false "Field to toggle relative to sort/dir"
// @Success 200 {object} AlertFeedResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Router /network/alerts [get]
func (h *Handler) listAlerts(c *gin.Context) {
	log := h.logger.WithField("method", "listAlerts")
	q, ok := h.bindViewQuery(c, log)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, toAlertFeed(h.networkService.ListAlerts(c.Request.Context(), q)))
}

// @Summary Network KPI cards
// @Tags Network
// @Produce json
// @Success 200 {array} KPIItem
// @Router /network/kpis [get]
func (h *Handler) listNetworkKPIs(c *gin.Context) {
	c.JSON(http.StatusOK, toKPIItems(h.networkService.KPIs(c.Request.Context())))
}
