package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary Congestion hotspots
// @Description Hotspots, most congested first by default
// @Tags Traffic
// @Produce json
// @Param filter query string false "Severity filter" default(all)
// @Param sort query string false "Sort field"
// @Param dir query string false "Sort direction" Enums(asc, desc)
// @Param toggle query string false "Field to toggle relative to sort/dir"
// @Success 200 {object} HotspotListResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Router /traffic/hotspots [get]
func (h *Handler) listHotspots(c *gin.Context) {
	log := h.logger.WithField("method", "listHotspots")
	q, ok := h.bindViewQuery(c, log)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, toHotspotList(h.trafficService.ListHotspots(c.Request.Context(), q)))
}

// @Summary Traffic overview cards
// @Tags Traffic
// @Produce json
// @Success 200 {array} models.TrafficMetric
// @Router /traffic/metrics [get]
func (h *Handler) listTrafficMetrics(c *gin.Context) {
	c.JSON(http.StatusOK, h.trafficService.Metrics(c.Request.Context()))
}

// @Summary Daily traffic volume
// @Description Volume and congestion by time of day with the peak points
// @Tags Traffic
// @Produce json
// @Success 200 {object} VolumeChartResponse
// @Router /traffic/volume [get]
func (h *Handler) getVolumeChart(c *gin.Context) {
	c.JSON(http.StatusOK, toVolumeChart(h.trafficService.VolumeSeries(c.Request.Context())))
}

// @Summary Segment comparison
// @Description Current against previous period per road segment
// @Tags Traffic
// @Produce json
// @Param filter query string false "Segment filter" default(all)
// @Param sort query string false "Sort field"
// @Param dir query string false "Sort direction" Enums(asc, desc)
// @Param toggle query string false "Field to toggle relative to sort/dir"
// @Success 200 {object} SegmentListResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Router /traffic/segments [get]
func (h *Handler) listSegments(c *gin.Context) {
	log := h.logger.WithField("method", "listSegments")
	q, ok := h.bindViewQuery(c, log)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, toSegmentList(h.trafficService.Segments(c.Request.Context(), q)))
}

// @Summary Historical trends
// @Description Monthly volume, speed, incidents and efficiency, optionally with forecasts
// @Tags Traffic
// @Produce json
// @Param forecast query bool false "Include forecasts"
// @Success 200 {array} TrendPointResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Router /traffic/history [get]
func (h *Handler) getHistory(c *gin.Context) {
	log := h.logger.WithField("method", "getHistory")

	var input HistoryQueryRequest
	if !h.bindQuery(c, log, &input) {
		return
	}
	c.JSON(http.StatusOK, toTrendChart(h.trafficService.History(c.Request.Context(), input.Forecast)))
}
