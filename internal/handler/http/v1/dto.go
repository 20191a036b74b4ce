package v1

import (
	"time"

	"github.com/shenikar/road_intelligence/internal/models"
	"github.com/shenikar/road_intelligence/internal/pipeline"
	"github.com/shenikar/road_intelligence/internal/presentation"
	"github.com/shopspring/decimal"
)

// ViewQueryRequest DTO параметров представления таблицы
// @Description Фильтр и сортировка, выбранные в интерфейсе. toggle переключает сортировку относительно sort/dir.
type ViewQueryRequest struct {
	Filter string `form:"filter" validate:"omitempty,max=64"`
	Sort   string `form:"sort" validate:"omitempty,max=64"`
	Dir    string `form:"dir" validate:"omitempty,oneof=asc desc"`
	Toggle string `form:"toggle" validate:"omitempty,max=64"`
}

// AssetKPIsRequest DTO параметров карточек объектов
type AssetKPIsRequest struct {
	Threshold *int `form:"threshold" validate:"omitempty,min=0,max=100"`
}

// CreateIncidentRequest DTO для регистрации инцидента
// @Description DTO для регистрации инцидента
type CreateIncidentRequest struct {
	Type               string `json:"type" validate:"required,min=2,max=100"`
	Severity           string `json:"severity" validate:"required,oneof=low medium high critical"`
	Location           string `json:"location" validate:"required,min=2,max=255"`
	Priority           int    `json:"priority" validate:"required,min=1,max=5"`
	EstimatedClearance string `json:"estimated_clearance,omitempty" validate:"omitempty,max=64"`
	// Lat и Lng задаются вместе
	Lat *float64 `json:"lat,omitempty" validate:"omitempty,min=-90,max=90"`
	Lng *float64 `json:"lng,omitempty" validate:"omitempty,min=-180,max=180"`
}

// DispatchRequest DTO для назначения подразделения
// @Description DTO для назначения подразделения на инцидент
type DispatchRequest struct {
	IncidentID string `json:"incident_id" validate:"required"`
	ETA        string `json:"eta" validate:"required,max=32"`
}

// ViewMeta - состояние представления, общее для всех таблиц
type ViewMeta struct {
	Total        int                `json:"total"`
	Count        int                `json:"count"`
	Sort         pipeline.SortState `json:"sort"`
	Empty        bool               `json:"empty"`
	EmptyMessage string             `json:"empty_message,omitempty"`
	Degraded     bool               `json:"degraded"`
	Notices      []string           `json:"notices,omitempty"`
}

type IncidentItem struct {
	models.Incident
	Presentation presentation.IncidentRow `json:"presentation"`
}

type IncidentListResponse struct {
	ViewMeta
	Items []IncidentItem `json:"items"`
}

// AssignmentResponse - инцидент, на который назначено подразделение
type AssignmentResponse struct {
	IncidentID string `json:"incident_id"`
	Type       string `json:"type"`
	Location   string `json:"location"`
}

type ResourceItem struct {
	models.Resource
	Assignment   *AssignmentResponse      `json:"assignment,omitempty"`
	Presentation presentation.ResourceRow `json:"presentation"`
}

type TypeStatsResponse struct {
	Type         string                    `json:"type"`
	Available    int                       `json:"available"`
	Total        int                       `json:"total"`
	Presentation presentation.Presentation `json:"presentation"`
}

type ResourceListResponse struct {
	ViewMeta
	Items []ResourceItem      `json:"items"`
	Stats []TypeStatsResponse `json:"stats"`
}

type DispatchResponse struct {
	Resource ResourceItem `json:"resource"`
	Incident IncidentItem `json:"incident"`
}

// EmergencySummaryResponse DTO заголовка панели реагирования
type EmergencySummaryResponse struct {
	ActiveIncidents        int                       `json:"active_incidents"`
	AvgResponseMinutes     float64                   `json:"avg_response_minutes"`
	AvailableUnits         int                       `json:"available_units"`
	TotalUnits             int                       `json:"total_units"`
	CriticalAlerts         int                       `json:"critical_alerts"`
	AlertLevel             string                    `json:"alert_level"`
	AlertLevelPresentation presentation.Presentation `json:"alert_level_presentation"`
	IncidentsByStatus      pipeline.Summary          `json:"incidents_by_status"`
	IncidentsBySeverity    pipeline.Summary          `json:"incidents_by_severity"`
}

type NetworkIncidentItem struct {
	models.NetworkIncident
	Presentation presentation.NetworkIncidentRow `json:"presentation"`
}

type NetworkIncidentListResponse struct {
	ViewMeta
	Items []NetworkIncidentItem `json:"items"`
}

type AlertItem struct {
	models.Alert
	TimeAgo      string                `json:"time_ago"`
	Presentation presentation.AlertRow `json:"presentation"`
}

type AlertFeedResponse struct {
	ViewMeta
	Items    []AlertItem      `json:"items"`
	Now      time.Time        `json:"now"`
	Severity pipeline.Summary `json:"severity"`
}

type KPIItem struct {
	models.KPI
	Presentation presentation.Presentation `json:"presentation"`
}

type AssetItem struct {
	models.Asset
	Presentation presentation.AssetRow `json:"presentation"`
}

type AssetListResponse struct {
	ViewMeta
	Items []AssetItem `json:"items"`
}

// AssetKPIsResponse DTO карточек обзора объектов
type AssetKPIsResponse struct {
	TotalAssets        int             `json:"total_assets"`
	MaintenanceBacklog int             `json:"maintenance_backlog"`
	BudgetUtilization  decimal.Decimal `json:"budget_utilization" swaggertype:"string"`
	PredictedFailures  int             `json:"predicted_failures"`
	Threshold          int             `json:"threshold"`
	TotalBudgeted      decimal.Decimal `json:"total_budgeted" swaggertype:"string"`
	TotalActual        decimal.Decimal `json:"total_actual" swaggertype:"string"`
}

type TaskItem struct {
	models.MaintenanceTask
	Presentation presentation.TaskRow `json:"presentation"`
}

type TabCountResponse struct {
	Status string `json:"status"`
	Label  string `json:"label"`
	Count  int    `json:"count"`
}

type MaintenanceQueueResponse struct {
	ViewMeta
	Items []TaskItem         `json:"items"`
	Tabs  []TabCountResponse `json:"tabs"`
}

type HotspotItem struct {
	models.Hotspot
	Presentation presentation.HotspotRow `json:"presentation"`
}

type HotspotListResponse struct {
	ViewMeta
	Items    []HotspotItem    `json:"items"`
	Severity pipeline.Summary `json:"severity"`
}

// DashboardResponse - элемент навигации
type DashboardResponse struct {
	Slug    string `json:"slug"`
	Title   string `json:"title"`
	Icon    string `json:"icon"`
	Path    string `json:"path"`
	APIPath string `json:"api_path"`
}

// DashboardViewResponse - все представления панели со значениями по умолчанию
type DashboardViewResponse struct {
	Dashboard DashboardResponse `json:"dashboard"`
	Views     map[string]any    `json:"views"`
}

// StatusResponse DTO строки состояния
type StatusResponse struct {
	Connection             string                    `json:"connection"`
	ConnectionPresentation presentation.Presentation `json:"connection_presentation"`
	AlertCount             int                       `json:"alert_count"`
	SampledAt              time.Time                 `json:"sampled_at"`
	LastUpdated            *time.Time                `json:"last_updated,omitempty"`
}

// MessageQueryRequest DTO параметров ленты центра связи.
// channel задает фильтр ленты и имеет приоритет над filter.
type MessageQueryRequest struct {
	ViewQueryRequest
	Channel string `form:"channel" validate:"omitempty,max=32"`
}

// SendMessageRequest DTO сообщения оператора
// @Description DTO сообщения оператора в канал центра связи
type SendMessageRequest struct {
	Channel string `json:"channel" validate:"required,max=32"`
	Message string `json:"message" validate:"required,notblank,max=1000"`
}

// ConditionQueryRequest DTO окна матрицы состояния, в месяцах
type ConditionQueryRequest struct {
	Months *int `form:"months" validate:"omitempty,min=0,max=24"`
}

// HistoryQueryRequest DTO истории движения
type HistoryQueryRequest struct {
	Forecast bool `form:"forecast"`
}

type ChannelResponse struct {
	models.Channel
	Count int `json:"count"`
}

type MessageItem struct {
	models.Message
	TimeAgo  string `json:"time_ago"`
	TypeIcon string `json:"type_icon"`
}

type MessageFeedResponse struct {
	ViewMeta
	Items    []MessageItem     `json:"items"`
	Channels []ChannelResponse `json:"channels"`
}

type ConditionRowResponse struct {
	AssetID        string `json:"asset_id"`
	Name           string `json:"name"`
	Scores         []int  `json:"scores"`
	Trend          string `json:"trend"`
	Recommendation string `json:"recommendation"`
}

type ProjectItem struct {
	models.MaintenanceProject
	DurationDays int `json:"duration_days"`
}

type ProjectScheduleResponse struct {
	ViewMeta
	Items     []ProjectItem `json:"items"`
	Conflicts int           `json:"conflicts"`
}

type CostShareResponse struct {
	Name  string          `json:"name"`
	Value decimal.Decimal `json:"value" swaggertype:"string"`
	Share decimal.Decimal `json:"share" swaggertype:"string"`
}

type CostBreakdownResponse struct {
	ROI        []models.ProjectROI `json:"roi"`
	Categories []CostShareResponse `json:"categories"`
	Total      decimal.Decimal     `json:"total" swaggertype:"string"`
}

type VolumeChartResponse struct {
	Points         []models.VolumePoint `json:"points"`
	Peak           *models.VolumePoint  `json:"peak,omitempty"`
	PeakCongestion *models.VolumePoint  `json:"peak_congestion,omitempty"`
}

type SegmentItem struct {
	models.SegmentComparison
	VolumeChange     float64 `json:"volume_change"`
	EfficiencyChange float64 `json:"efficiency_change"`
}

type SegmentListResponse struct {
	ViewMeta
	Items []SegmentItem `json:"items"`
}

// ForecastResponse - прогноз на период, только при forecast=true
type ForecastResponse struct {
	Volume     int `json:"volume"`
	Speed      int `json:"speed"`
	Incidents  int `json:"incidents"`
	Efficiency int `json:"efficiency"`
}

type TrendPointResponse struct {
	Period     string            `json:"period"`
	Volume     int               `json:"volume"`
	Speed      int               `json:"speed"`
	Incidents  int               `json:"incidents"`
	Efficiency int               `json:"efficiency"`
	Forecast   *ForecastResponse `json:"forecast,omitempty"`
}
