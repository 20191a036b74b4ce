package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/road_intelligence/internal/service"
)

// @Summary List emergency incidents
// @Description Incident table of the emergency dashboard. Default sort is priority descending.
// @Tags Emergency
// @Produce json
// @Param filter query string false "Status filter" default(all)
// @Param sort query string false "Sort field"
// @Param dir query string false "Sort direction" Enums(asc, desc)
// @Param toggle query string false "Field to toggle relative to sort/dir"
// @Success 200 {object} IncidentListResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Router /emergency/incidents [get]
func (h *Handler) listIncidents(c *gin.Context) {
	log := h.logger.WithField("method", "listIncidents")
	q, ok := h.bindViewQuery(c, log)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, toIncidentList(h.emergencyService.ListIncidents(c.Request.Context(), q)))
}

// @Summary Report a new incident
// @Description Adds an active incident to the current snapshot
// @Tags Emergency
// @Accept json
// @Produce json
// @Param incident body CreateIncidentRequest true "Incident report"
// @Success 201 {object} IncidentItem
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 409 {object} map[string]string "Incident id collision"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /emergency/incidents [post]
func (h *Handler) reportIncident(c *gin.Context) {
	var input CreateIncidentRequest
	log := h.logger.WithField("method", "reportIncident")
	if !h.bindJSON(c, log, &input) {
		return
	}
	if (input.Lat == nil) != (input.Lng == nil) {
		log.Warn("Incident coordinates are incomplete")
		c.JSON(http.StatusBadRequest, gin.H{"error": "lat and lng must be set together"})
		return
	}

	incident, err := h.emergencyService.ReportIncident(c.Request.Context(), service.NewIncident{
		Type:               input.Type,
		Severity:           input.Severity,
		Location:           input.Location,
		Priority:           input.Priority,
		EstimatedClearance: input.EstimatedClearance,
		Coordinates:        toCoordinates(input.Lat, input.Lng),
	})
	if err != nil {
		respondServiceError(c, log, err, "incident id collision, retry")
		return
	}
	c.JSON(http.StatusCreated, toIncidentItem(incident))
}

// @Summary List response units
// @Description Resource table with per-type availability computed over all units
// @Tags Emergency
// @Produce json
// @Param filter query string false "Type filter" default(all)
// @Param sort query string false "Sort field"
// @Param dir query string false "Sort direction" Enums(asc, desc)
// @Param toggle query string false "Field to toggle relative to sort/dir"
// @Success 200 {object} ResourceListResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Router /emergency/resources [get]
func (h *Handler) listResources(c *gin.Context) {
	log := h.logger.WithField("method", "listResources")
	q, ok := h.bindViewQuery(c, log)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, toResourceList(h.emergencyService.ListResources(c.Request.Context(), q)))
}

// @Summary Dispatch a unit
// @Description Assigns an available unit to an incident and publishes a dispatch event
// @Tags Emergency
// @Accept json
// @Produce json
// @Param id path string true "Resource ID"
// @Param order body DispatchRequest true "Dispatch order"
// @Success 200 {object} DispatchResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 404 {object} map[string]string "Resource or incident not found"
// @Failure 409 {object} map[string]string "Resource is not available"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /emergency/resources/{id}/dispatch [post]
func (h *Handler) dispatchResource(c *gin.Context) {
	resourceID := c.Param("id")
	log := h.logger.WithField("method", "dispatchResource").WithField("resource_id", resourceID)

	var input DispatchRequest
	if !h.bindJSON(c, log, &input) {
		return
	}

	result, err := h.emergencyService.DispatchResource(c.Request.Context(), resourceID, service.DispatchOrder{
		IncidentID: input.IncidentID,
		ETA:        input.ETA,
	})
	if err != nil {
		respondServiceError(c, log, err, "resource is not available")
		return
	}
	c.JSON(http.StatusOK, toDispatchResponse(result))
}

// @Summary Emergency header KPIs
// @Description Active incidents, average response, unit availability and alert level over all records
// @Tags Emergency
// @Produce json
// @Success 200 {object} EmergencySummaryResponse
// @Router /emergency/summary [get]
func (h *Handler) getEmergencySummary(c *gin.Context) {
	c.JSON(http.StatusOK, toSummaryResponse(h.emergencyService.Summary(c.Request.Context())))
}

// @Summary Channel message feed
// @Description Messages of one channel, oldest first by default, with per-channel counts over the whole feed
// @Tags Emergency
// @Produce json
// @Param channel query string false "Channel id" default(all)
// @Param sort query string false "Sort field"
// @Param dir query string false "Sort direction" Enums(asc, desc)
// @Param toggle query string false "Field to toggle relative to sort/dir"
// @Success 200 {object} MessageFeedResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Router /emergency/messages [get]
func (h *Handler) listMessages(c *gin.Context) {
	log := h.logger.WithField("method", "listMessages")

	var input MessageQueryRequest
	if !h.bindQuery(c, log, &input) {
		return
	}
	q := toViewQuery(input.ViewQueryRequest)
	if input.Channel != "" {
		q.Filter = input.Channel
	}
	c.JSON(http.StatusOK, toMessageFeed(h.emergencyService.ListMessages(c.Request.Context(), q)))
}

// @Summary Send a message
// @Description Appends an operator broadcast to the channel feed
// @Tags Emergency
// @Accept json
// @Produce json
// @Param message body SendMessageRequest true "Operator message"
// @Success 201 {object} MessageItem
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 404 {object} map[string]string "Channel not found"
// @Failure 409 {object} map[string]string "Message id collision"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /emergency/messages [post]
func (h *Handler) sendMessage(c *gin.Context) {
	var input SendMessageRequest
	log := h.logger.WithField("method", "sendMessage")
	if !h.bindJSON(c, log, &input) {
		return
	}

	message, err := h.emergencyService.SendMessage(c.Request.Context(), service.NewMessage{
		Channel: input.Channel,
		Content: input.Message,
	})
	if err != nil {
		respondServiceError(c, log, err, "message id collision, retry")
		return
	}
	c.JSON(http.StatusCreated, toMessageItem(message, service.MessageAge(message.Timestamp, message.Timestamp)))
}
