package v1

import (
	"math"

	"github.com/shenikar/road_intelligence/internal/models"
	"github.com/shenikar/road_intelligence/internal/pipeline"
	"github.com/shenikar/road_intelligence/internal/presentation"
	"github.com/shenikar/road_intelligence/internal/service"
	"github.com/shenikar/road_intelligence/internal/status"
)

// NoRecordsMessage показывается, когда фильтр таблицы не оставил записей
const NoRecordsMessage = "No records match the selected filter."

// toViewQuery переводит параметры запроса в состояние представления.
// Поле без направления получает направление по умолчанию. toggle передается как есть:
// сервис применяет его после подстановки сортировки по умолчанию.
func toViewQuery(q ViewQueryRequest) service.ViewQuery {
	state := pipeline.SortState{Field: q.Sort}
	if q.Sort != "" {
		state.Direction = pipeline.DefaultDirection
		if dir, ok := pipeline.ParseDirection(q.Dir); ok {
			state.Direction = dir
		}
	}
	filter := q.Filter
	if filter == "" {
		filter = pipeline.All
	}
	return service.ViewQuery{Filter: filter, Sort: state, Toggle: q.Toggle}
}

// DefaultConditionMonths - окно матрицы состояния по умолчанию
const DefaultConditionMonths = 6

func toCoordinates(lat, lng *float64) *models.Coordinates {
	if lat == nil || lng == nil {
		return nil
	}
	return &models.Coordinates{Lat: *lat, Lng: *lng}
}

func newViewMeta[T any](view pipeline.View[T], emptyMessage string) ViewMeta {
	meta := ViewMeta{
		Total:    view.Total,
		Count:    len(view.Records),
		Sort:     view.Sort,
		Empty:    view.Empty,
		Degraded: view.Degraded,
		Notices:  view.Notices,
	}
	if view.Empty {
		meta.EmptyMessage = emptyMessage
	}
	return meta
}

func toIncidentItem(i models.Incident) IncidentItem {
	return IncidentItem{Incident: i, Presentation: presentation.DeriveIncident(i)}
}

func toIncidentList(view pipeline.View[models.Incident]) IncidentListResponse {
	items := make([]IncidentItem, len(view.Records))
	for i, r := range view.Records {
		items[i] = toIncidentItem(r)
	}
	return IncidentListResponse{ViewMeta: newViewMeta(view, NoRecordsMessage), Items: items}
}

func toResourceItem(r models.Resource, assigned *models.Incident) ResourceItem {
	item := ResourceItem{Resource: r, Presentation: presentation.DeriveResource(r)}
	if assigned != nil {
		item.Assignment = &AssignmentResponse{
			IncidentID: assigned.ID,
			Type:       assigned.Type,
			Location:   assigned.Location,
		}
	}
	return item
}

func toResourceList(board service.ResourceBoard) ResourceListResponse {
	items := make([]ResourceItem, len(board.View.Records))
	for i, r := range board.View.Records {
		var assigned *models.Incident
		if incident, ok := board.Assignments[r.ID]; ok {
			assigned = &incident
		}
		items[i] = toResourceItem(r, assigned)
	}
	stats := make([]TypeStatsResponse, len(board.Stats))
	for i, s := range board.Stats {
		stats[i] = TypeStatsResponse{
			Type:         s.Type,
			Available:    s.Available,
			Total:        s.Total,
			Presentation: presentation.Lookup(presentation.ResourceType, s.Type),
		}
	}
	return ResourceListResponse{ViewMeta: newViewMeta(board.View, NoRecordsMessage), Items: items, Stats: stats}
}

func toDispatchResponse(result service.DispatchResult) DispatchResponse {
	return DispatchResponse{
		Resource: toResourceItem(result.Resource, &result.Incident),
		Incident: toIncidentItem(result.Incident),
	}
}

func toSummaryResponse(s service.EmergencySummary) EmergencySummaryResponse {
	return EmergencySummaryResponse{
		ActiveIncidents:        s.ActiveIncidents,
		AvgResponseMinutes:     s.AvgResponseMinutes,
		AvailableUnits:         s.AvailableUnits,
		TotalUnits:             s.TotalUnits,
		CriticalAlerts:         s.CriticalAlerts,
		AlertLevel:             s.AlertLevel,
		AlertLevelPresentation: presentation.Lookup(presentation.AlertLevel, s.AlertLevel),
		IncidentsByStatus:      s.IncidentsByStatus,
		IncidentsBySeverity:    s.IncidentsBySeverity,
	}
}

func toNetworkIncidentList(view pipeline.View[models.NetworkIncident]) NetworkIncidentListResponse {
	items := make([]NetworkIncidentItem, len(view.Records))
	for i, r := range view.Records {
		items[i] = NetworkIncidentItem{NetworkIncident: r, Presentation: presentation.DeriveNetworkIncident(r)}
	}
	return NetworkIncidentListResponse{ViewMeta: newViewMeta(view, NoRecordsMessage), Items: items}
}

func toAlertFeed(feed service.AlertFeed) AlertFeedResponse {
	items := make([]AlertItem, len(feed.View.Records))
	for i, r := range feed.View.Records {
		items[i] = AlertItem{Alert: r, TimeAgo: feed.TimeAgo[r.ID], Presentation: presentation.DeriveAlert(r)}
	}
	return AlertFeedResponse{
		ViewMeta: newViewMeta(feed.View, NoRecordsMessage),
		Items:    items,
		Now:      feed.Now,
		Severity: feed.Severity,
	}
}

func toKPIItems(kpis []models.KPI) []KPIItem {
	items := make([]KPIItem, len(kpis))
	for i, k := range kpis {
		items[i] = KPIItem{KPI: k, Presentation: presentation.DeriveKPI(k)}
	}
	return items
}

func toAssetList(view pipeline.View[models.Asset]) AssetListResponse {
	items := make([]AssetItem, len(view.Records))
	for i, r := range view.Records {
		items[i] = AssetItem{Asset: r, Presentation: presentation.DeriveAsset(r)}
	}
	return AssetListResponse{ViewMeta: newViewMeta(view, NoRecordsMessage), Items: items}
}

func toAssetKPIs(k service.AssetKPIs) AssetKPIsResponse {
	return AssetKPIsResponse{
		TotalAssets:        k.TotalAssets,
		MaintenanceBacklog: k.MaintenanceBacklog,
		BudgetUtilization:  k.BudgetUtilization,
		PredictedFailures:  k.PredictedFailures,
		Threshold:          k.Threshold,
		TotalBudgeted:      k.TotalBudgeted,
		TotalActual:        k.TotalActual,
	}
}

func toMaintenanceQueue(q service.MaintenanceQueue) MaintenanceQueueResponse {
	items := make([]TaskItem, len(q.View.Records))
	for i, r := range q.View.Records {
		items[i] = TaskItem{MaintenanceTask: r, Presentation: presentation.DeriveTask(r)}
	}
	tabs := make([]TabCountResponse, len(q.Tabs))
	for i, t := range q.Tabs {
		tabs[i] = TabCountResponse{
			Status: t.Status,
			Label:  presentation.Lookup(presentation.TaskStatus, t.Status).BadgeLabel,
			Count:  t.Count,
		}
	}
	return MaintenanceQueueResponse{
		ViewMeta: newViewMeta(q.View, service.EmptyTasksMessage),
		Items:    items,
		Tabs:     tabs,
	}
}

func toHotspotList(board service.HotspotBoard) HotspotListResponse {
	items := make([]HotspotItem, len(board.View.Records))
	for i, r := range board.View.Records {
		items[i] = HotspotItem{Hotspot: r, Presentation: presentation.DeriveHotspot(r)}
	}
	return HotspotListResponse{
		ViewMeta: newViewMeta(board.View, NoRecordsMessage),
		Items:    items,
		Severity: board.Severity,
	}
}

func toDashboardResponse(d service.Dashboard) DashboardResponse {
	return DashboardResponse{
		Slug:    d.Slug,
		Title:   d.Title,
		Icon:    d.Icon,
		Path:    "/" + d.Slug,
		APIPath: apiPrefix + d.APIPath,
	}
}

func toStatusResponse(s status.State) StatusResponse {
	resp := StatusResponse{
		Connection:             string(s.Connection),
		ConnectionPresentation: presentation.Lookup(presentation.Connection, string(s.Connection)),
		AlertCount:             s.AlertCount,
		SampledAt:              s.SampledAt,
	}
	if !s.LastUpdated.IsZero() {
		lastUpdated := s.LastUpdated
		resp.LastUpdated = &lastUpdated
	}
	return resp
}

// messageTypeIcons - значок типа сообщения в ленте
var messageTypeIcons = map[string]string{
	models.MessageBroadcast: "Megaphone",
	models.MessageResponse:  "MessageSquare",
	models.MessageRequest:   "HelpCircle",
	models.MessageUpdate:    "Info",
	models.MessageReport:    "FileText",
}

func toMessageItem(m models.Message, timeAgo string) MessageItem {
	icon, ok := messageTypeIcons[m.Type]
	if !ok {
		icon = "MessageSquare"
	}
	return MessageItem{Message: m, TimeAgo: timeAgo, TypeIcon: icon}
}

func toMessageFeed(feed service.MessageFeed) MessageFeedResponse {
	items := make([]MessageItem, len(feed.View.Records))
	for i, m := range feed.View.Records {
		items[i] = toMessageItem(m, feed.TimeAgo[m.ID])
	}
	channels := make([]ChannelResponse, len(feed.Channels))
	for i, c := range feed.Channels {
		channels[i] = ChannelResponse{Channel: c.Channel, Count: c.Count}
	}
	return MessageFeedResponse{
		ViewMeta: newViewMeta(feed.View, service.EmptyChannelMessage),
		Items:    items,
		Channels: channels,
	}
}

func toConditionRows(rows []service.ConditionRow) []ConditionRowResponse {
	out := make([]ConditionRowResponse, len(rows))
	for i, r := range rows {
		out[i] = ConditionRowResponse{
			AssetID:        r.AssetID,
			Name:           r.Name,
			Scores:         r.Scores,
			Trend:          r.Trend,
			Recommendation: r.Recommendation,
		}
	}
	return out
}

// durationDays - длительность проекта в полных днях с округлением вверх
func durationDays(p models.MaintenanceProject) int {
	d := p.EndDate.Sub(p.StartDate)
	if d < 0 {
		d = -d
	}
	return int(math.Ceil(d.Hours() / 24))
}

func toProjectSchedule(s service.ProjectSchedule) ProjectScheduleResponse {
	items := make([]ProjectItem, len(s.View.Records))
	for i, p := range s.View.Records {
		items[i] = ProjectItem{MaintenanceProject: p, DurationDays: durationDays(p)}
	}
	return ProjectScheduleResponse{ViewMeta: newViewMeta(s.View, NoRecordsMessage), Items: items, Conflicts: s.Conflicts}
}

func toCostBreakdown(b service.CostBreakdown) CostBreakdownResponse {
	categories := make([]CostShareResponse, len(b.Categories))
	for i, c := range b.Categories {
		categories[i] = CostShareResponse{Name: c.Category.Name, Value: c.Category.Value, Share: c.Share}
	}
	return CostBreakdownResponse{ROI: b.ROI, Categories: categories, Total: b.Total}
}

func toVolumeChart(c service.VolumeChart) VolumeChartResponse {
	return VolumeChartResponse{Points: c.Points, Peak: c.Peak, PeakCongestion: c.PeakCongestion}
}

func toSegmentList(view pipeline.View[models.SegmentComparison]) SegmentListResponse {
	items := make([]SegmentItem, len(view.Records))
	for i, s := range view.Records {
		items[i] = SegmentItem{SegmentComparison: s, VolumeChange: s.VolumeChange(), EfficiencyChange: s.EfficiencyChange()}
	}
	return SegmentListResponse{ViewMeta: newViewMeta(view, NoRecordsMessage), Items: items}
}

func toTrendChart(c service.TrendChart) []TrendPointResponse {
	out := make([]TrendPointResponse, len(c.Points))
	for i, p := range c.Points {
		out[i] = TrendPointResponse{
			Period:     p.Period,
			Volume:     p.Volume,
			Speed:      p.Speed,
			Incidents:  p.Incidents,
			Efficiency: p.Efficiency,
		}
		if c.Forecast {
			out[i].Forecast = &ForecastResponse{
				Volume:     p.VolumeForecast,
				Speed:      p.SpeedForecast,
				Incidents:  p.IncidentsForecast,
				Efficiency: p.EfficiencyForecast,
			}
		}
	}
	return out
}
