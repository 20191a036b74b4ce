package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary List infrastructure assets
// @Tags Assets
// @Produce json
// @Param filter query string false "Type filter" default(all)
// @Param sort query string false "Sort field"
// @Param dir query string false "Sort direction" Enums(asc, desc)
// @Param toggle query string false "Field to toggle relative to sort/dir"
// @Success 200 {object} AssetListResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Router /assets [get]
func (h *Handler) listAssets(c *gin.Context) {
	log := h.logger.WithField("method", "listAssets")
	q, ok := h.bindViewQuery(c, log)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, toAssetList(h.assetService.ListAssets(c.Request.Context(), q)))
}

// @Summary Asset overview KPIs
// @Description Totals, backlog, budget utilization and predicted failures below the condition threshold
// @Tags Assets
// @Produce json
// @Param threshold query int false "Condition score threshold, 0..100"
// @Success 200 {object} AssetKPIsResponse
// @Failure 400 {object} map[string]string "Invalid threshold"
// @Router /assets/kpis [get]
func (h *Handler) getAssetKPIs(c *gin.Context) {
	log := h.logger.WithField("method", "getAssetKPIs")

	var input AssetKPIsRequest
	if !h.bindQuery(c, log, &input) {
		return
	}

	threshold := h.cfg.ConditionThreshold
	if input.Threshold != nil {
		threshold = *input.Threshold
	}
	kpis, err := h.assetService.KPIs(c.Request.Context(), threshold)
	if err != nil {
		log.WithError(err).Warn("Failed to compute asset KPIs")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, toAssetKPIs(kpis))
}

// @Summary Maintenance queue
// @Description Maintenance tasks with filter tab counts over all tasks
// @Tags Assets
// @Produce json
// @Param filter query string false "Status filter" default(all)
// @Param sort query string false "Sort field"
// @Param dir query string false "Sort direction" Enums(asc, desc)
// @Param toggle query string false "Field to toggle relative to sort/dir"
// @Success 200 {object} MaintenanceQueueResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Router /assets/maintenance [get]
func (h *Handler) getMaintenanceQueue(c *gin.Context) {
	log := h.logger.WithField("method", "getMaintenanceQueue")
	q, ok := h.bindViewQuery(c, log)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, toMaintenanceQueue(h.assetService.MaintenanceQueue(c.Request.Context(), q)))
}

// @Summary Monthly budget lines
// @Tags Assets
// @Produce json
// @Success 200 {array} models.BudgetLine
// @Router /assets/budget [get]
func (h *Handler) listBudgetLines(c *gin.Context) {
	c.JSON(http.StatusOK, h.assetService.BudgetLines(c.Request.Context()))
}

// @Summary Asset condition matrix
// @Description Monthly condition scores of assets with history, trend and recommendation
// @Tags Assets
// @Produce json
// @Param months query int false "Number of latest months, 0 for the whole history" default(6)
// @Success 200 {array} ConditionRowResponse
// @Failure 400 {object} map[string]string "Invalid window"
// @Router /assets/condition [get]
func (h *Handler) getConditionMatrix(c *gin.Context) {
	log := h.logger.WithField("method", "getConditionMatrix")

	var input ConditionQueryRequest
	if !h.bindQuery(c, log, &input) {
		return
	}
	months := DefaultConditionMonths
	if input.Months != nil {
		months = *input.Months
	}
	rows, err := h.assetService.ConditionMatrix(c.Request.Context(), months)
	if err != nil {
		log.WithError(err).Warn("Failed to build condition matrix")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, toConditionRows(rows))
}

// @Summary Maintenance project schedule
// @Description Gantt rows, earliest start first by default, with the number of resource conflicts
// @Tags Assets
// @Produce json
// @Param filter query string false "Status filter" default(all)
// @Param sort query string false "Sort field"
// @Param dir query string false "Sort direction" Enums(asc, desc)
// @Param toggle query string false "Field to toggle relative to sort/dir"
// @Success 200 {object} ProjectScheduleResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Router /assets/schedule [get]
func (h *Handler) getSchedule(c *gin.Context) {
	log := h.logger.WithField("method", "getSchedule")
	q, ok := h.bindViewQuery(c, log)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, toProjectSchedule(h.assetService.Schedule(c.Request.Context(), q)))
}

// @Summary Cost breakdown
// @Description Project ROI and the share of each cost category
// @Tags Assets
// @Produce json
// @Success 200 {object} CostBreakdownResponse
// @Router /assets/costs [get]
func (h *Handler) getCostBreakdown(c *gin.Context) {
	c.JSON(http.StatusOK, toCostBreakdown(h.assetService.CostBreakdown(c.Request.Context())))
}
