package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/shenikar/road_intelligence/internal/config"
	"github.com/shenikar/road_intelligence/internal/service"
	"github.com/shenikar/road_intelligence/internal/status"
	"github.com/sirupsen/logrus"
)

// StatusReader отдает последний срез состояния подключения и оповещений
type StatusReader interface {
	Current() status.State
}

type Handler struct {
	emergencyService service.EmergencyService
	networkService   service.NetworkService
	assetService     service.AssetService
	trafficService   service.TrafficService
	status           StatusReader
	logger           *logrus.Logger
	validate         *validator.Validate
	cfg              *config.Config
}

func NewHandler(
	emergencyService service.EmergencyService,
	networkService service.NetworkService,
	assetService service.AssetService,
	trafficService service.TrafficService,
	status StatusReader,
	logger *logrus.Logger,
	cfg *config.Config,
) *Handler {
	validate := validator.New()
	// notblank отклоняет строки из одних пробелов
	if err := validate.RegisterValidation("notblank", validators.NotBlank); err != nil {
		logger.WithError(err).Fatal("Failed to register validators")
	}
	return &Handler{
		emergencyService: emergencyService,
		networkService:   networkService,
		assetService:     assetService,
		trafficService:   trafficService,
		status:           status,
		logger:           logger,
		validate:         validate,
		cfg:              cfg,
	}
}

// bindQuery разбирает и валидирует параметры запроса. При ошибке ответ уже записан.
func (h *Handler) bindQuery(c *gin.Context, log *logrus.Entry, input any) bool {
	if err := c.ShouldBindQuery(input); err != nil {
		log.WithError(err).Warn("Failed to bind query")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters"})
		return false
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}

// bindViewQuery читает filter/sort/dir/toggle. При ошибке ответ уже записан.
func (h *Handler) bindViewQuery(c *gin.Context, log *logrus.Entry) (service.ViewQuery, bool) {
	var input ViewQueryRequest
	if !h.bindQuery(c, log, &input) {
		return service.ViewQuery{}, false
	}
	return toViewQuery(input), true
}

// bindJSON разбирает и валидирует тело запроса. При ошибке ответ уже записан.
func (h *Handler) bindJSON(c *gin.Context, log *logrus.Entry, input any) bool {
	if err := c.ShouldBindJSON(input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return false
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}

// respondServiceError переводит ошибки сервиса в HTTP статусы
func respondServiceError(c *gin.Context, log *logrus.Entry, err error, conflictMessage string) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		log.WithError(err).Warn("Requested record not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, service.ErrConflict):
		log.WithError(err).Warn("Request conflicts with current state")
		c.JSON(http.StatusConflict, gin.H{"error": conflictMessage})
	default:
		log.WithError(err).Error("Service call failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// @Summary Get live status
// @Description Connection status, active alert count and the time of the last data refresh
// @Tags System
// @Produce json
// @Success 200 {object} StatusResponse
// @Router /system/status [get]
func (h *Handler) getStatus(c *gin.Context) {
	c.JSON(http.StatusOK, toStatusResponse(h.status.Current()))
}

func (h *Handler) notFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
}
