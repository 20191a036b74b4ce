// Package schema объявляет схемы записей и таблицы рангов для каждой панели.
package schema

import (
	"time"

	"github.com/shenikar/road_intelligence/internal/models"
	"github.com/shenikar/road_intelligence/internal/pipeline"
	"github.com/shopspring/decimal"
)

// SeverityRank - канонический порядок серьезности, больше - срочнее
var SeverityRank = pipeline.RankTable{
	models.SeverityLow:      0,
	models.SeverityMedium:   1,
	models.SeverityHigh:     2,
	models.SeverityCritical: 3,
}

// TaskPriorityRank использует ту же шкалу, что и серьезность
var TaskPriorityRank = pipeline.RankTable{
	"low":      0,
	"medium":   1,
	"high":     2,
	"critical": 3,
}

var Incident = pipeline.NewSchema("incident",
	func(i models.Incident) string { return i.ID },
	pipeline.String("id", func(i models.Incident) string { return i.ID }),
	pipeline.String("type", func(i models.Incident) string { return i.Type }),
	pipeline.Ranked("severity", func(i models.Incident) string { return i.Severity }, SeverityRank),
	pipeline.String("location", func(i models.Incident) string { return i.Location }),
	pipeline.String("status", func(i models.Incident) string { return i.Status }),
	pipeline.Time("reported_at", func(i models.Incident) time.Time { return i.ReportedAt }),
	pipeline.Int("priority", func(i models.Incident) int { return i.Priority }),
	pipeline.Int("assigned_units", func(i models.Incident) int { return i.AssignedUnits }),
)

var Resource = pipeline.NewSchema("resource",
	func(r models.Resource) string { return r.ID },
	pipeline.String("id", func(r models.Resource) string { return r.ID }),
	pipeline.String("type", func(r models.Resource) string { return r.Type }),
	pipeline.String("name", func(r models.Resource) string { return r.Name }),
	pipeline.String("status", func(r models.Resource) string { return r.Status }),
)

var MaintenanceTask = pipeline.NewSchema("maintenance_task",
	func(t models.MaintenanceTask) string { return t.ID },
	pipeline.String("id", func(t models.MaintenanceTask) string { return t.ID }),
	pipeline.String("title", func(t models.MaintenanceTask) string { return t.Title }),
	pipeline.Ranked("priority", func(t models.MaintenanceTask) string { return t.Priority }, TaskPriorityRank),
	pipeline.String("status", func(t models.MaintenanceTask) string { return t.Status }),
	pipeline.Time("scheduled_date", func(t models.MaintenanceTask) time.Time { return t.ScheduledDate }),
	pipeline.String("assigned_to", func(t models.MaintenanceTask) string { return t.AssignedTo }),
	pipeline.Decimal("estimated_cost", func(t models.MaintenanceTask) decimal.Decimal { return t.EstimatedCost }),
)

var Asset = pipeline.NewSchema("asset",
	func(a models.Asset) string { return a.ID },
	pipeline.String("id", func(a models.Asset) string { return a.ID }),
	pipeline.String("name", func(a models.Asset) string { return a.Name }),
	pipeline.String("type", func(a models.Asset) string { return a.Type }),
	pipeline.Int("condition_score", func(a models.Asset) int { return a.ConditionScore }),
	pipeline.Time("last_inspection", func(a models.Asset) time.Time { return a.LastInspection }),
	pipeline.Time("next_maintenance", func(a models.Asset) time.Time { return a.NextMaintenance }),
	pipeline.Decimal("estimated_cost", func(a models.Asset) decimal.Decimal { return a.EstimatedCost }),
)

var NetworkIncident = pipeline.NewSchema("network_incident",
	func(n models.NetworkIncident) string { return n.ID },
	pipeline.String("id", func(n models.NetworkIncident) string { return n.ID }),
	pipeline.String("type", func(n models.NetworkIncident) string { return n.Type }),
	pipeline.Ranked("severity", func(n models.NetworkIncident) string { return n.Severity }, SeverityRank),
	pipeline.String("status", func(n models.NetworkIncident) string { return n.Status }),
	pipeline.Time("timestamp", func(n models.NetworkIncident) time.Time { return n.Timestamp }),
	pipeline.Int("priority", func(n models.NetworkIncident) int { return n.Priority }),
	pipeline.Int("affected_lanes", func(n models.NetworkIncident) int { return n.AffectedLanes }),
)

var Alert = pipeline.NewSchema("alert",
	func(a models.Alert) string { return a.ID },
	pipeline.String("id", func(a models.Alert) string { return a.ID }),
	pipeline.Ranked("severity", func(a models.Alert) string { return a.Severity }, SeverityRank),
	pipeline.String("type", func(a models.Alert) string { return a.Type }),
	pipeline.String("status", func(a models.Alert) string { return a.Status }),
	pipeline.Time("timestamp", func(a models.Alert) time.Time { return a.Timestamp }),
)

var Hotspot = pipeline.NewSchema("hotspot",
	func(h models.Hotspot) string { return h.ID },
	pipeline.String("id", func(h models.Hotspot) string { return h.ID }),
	pipeline.Ranked("severity", func(h models.Hotspot) string { return h.Severity }, SeverityRank),
	pipeline.Int("congestion_level", func(h models.Hotspot) int { return h.CongestionLevel }),
	pipeline.Number("avg_delay", func(h models.Hotspot) float64 { return h.AvgDelay }),
	pipeline.Int("avg_speed", func(h models.Hotspot) int { return h.AvgSpeed }),
)

var KPI = pipeline.NewSchema("kpi",
	func(k models.KPI) string { return k.ID },
	pipeline.String("id", func(k models.KPI) string { return k.ID }),
	pipeline.String("status", func(k models.KPI) string { return k.Status }),
)

var BudgetLine = pipeline.NewSchema("budget_line",
	func(b models.BudgetLine) string { return b.Month },
	pipeline.String("month", func(b models.BudgetLine) string { return b.Month }),
	pipeline.Decimal("budgeted", func(b models.BudgetLine) decimal.Decimal { return b.Budgeted }),
	pipeline.Decimal("actual", func(b models.BudgetLine) decimal.Decimal { return b.Actual }),
)

var Message = pipeline.NewSchema("message",
	func(m models.Message) string { return m.ID },
	pipeline.String("id", func(m models.Message) string { return m.ID }),
	pipeline.String("channel", func(m models.Message) string { return m.Channel }),
	pipeline.String("sender", func(m models.Message) string { return m.Sender }),
	pipeline.Time("timestamp", func(m models.Message) time.Time { return m.Timestamp }),
	pipeline.Ranked("priority", func(m models.Message) string { return m.Priority }, MessagePriorityRank),
	pipeline.String("type", func(m models.Message) string { return m.Type }),
)

// MessagePriorityRank - срочность сообщений центра связи
var MessagePriorityRank = pipeline.RankTable{
	models.MessagePriorityLow:    0,
	models.MessagePriorityNormal: 1,
	models.MessagePriorityHigh:   2,
}

var MaintenanceProject = pipeline.NewSchema("maintenance_project",
	func(p models.MaintenanceProject) string { return p.ID },
	pipeline.String("id", func(p models.MaintenanceProject) string { return p.ID }),
	pipeline.String("name", func(p models.MaintenanceProject) string { return p.Name }),
	pipeline.String("status", func(p models.MaintenanceProject) string { return p.Status }),
	pipeline.Time("start_date", func(p models.MaintenanceProject) time.Time { return p.StartDate }),
	pipeline.Time("end_date", func(p models.MaintenanceProject) time.Time { return p.EndDate }),
	pipeline.Int("progress", func(p models.MaintenanceProject) int { return p.Progress }),
	pipeline.Decimal("budget", func(p models.MaintenanceProject) decimal.Decimal { return p.Budget }),
)

var ProjectROI = pipeline.NewSchema("project_roi",
	func(r models.ProjectROI) string { return r.Project },
	pipeline.String("project", func(r models.ProjectROI) string { return r.Project }),
	pipeline.Number("roi", func(r models.ProjectROI) float64 { return r.ROI }),
)

var CostCategory = pipeline.NewSchema("cost_category",
	func(c models.CostCategory) string { return c.Name },
	pipeline.String("name", func(c models.CostCategory) string { return c.Name }),
	pipeline.Decimal("value", func(c models.CostCategory) decimal.Decimal { return c.Value }),
)

var TrafficMetric = pipeline.NewSchema("traffic_metric",
	func(m models.TrafficMetric) string { return m.ID },
	pipeline.String("id", func(m models.TrafficMetric) string { return m.ID }),
	pipeline.String("change_type", func(m models.TrafficMetric) string { return m.ChangeType }),
)

var VolumePoint = pipeline.NewSchema("volume_point",
	func(p models.VolumePoint) string { return p.Time },
	pipeline.String("time", func(p models.VolumePoint) string { return p.Time }),
	pipeline.Int("volume", func(p models.VolumePoint) int { return p.Volume }),
	pipeline.Int("congestion", func(p models.VolumePoint) int { return p.Congestion }),
)

var SegmentComparison = pipeline.NewSchema("segment_comparison",
	func(s models.SegmentComparison) string { return s.Segment },
	pipeline.String("segment", func(s models.SegmentComparison) string { return s.Segment }),
	pipeline.Int("current_volume", func(s models.SegmentComparison) int { return s.CurrentVolume }),
	pipeline.Int("current_efficiency", func(s models.SegmentComparison) int { return s.CurrentEfficiency }),
	pipeline.Number("volume_change", models.SegmentComparison.VolumeChange),
	pipeline.Number("efficiency_change", models.SegmentComparison.EfficiencyChange),
	pipeline.Int("avg_speed", func(s models.SegmentComparison) int { return s.AvgSpeed }),
)

var TrendPoint = pipeline.NewSchema("trend_point",
	func(p models.TrendPoint) string { return p.Period },
	pipeline.String("period", func(p models.TrendPoint) string { return p.Period }),
	pipeline.Int("volume", func(p models.TrendPoint) int { return p.Volume }),
	pipeline.Int("incidents", func(p models.TrendPoint) int { return p.Incidents }),
)
