package presentation

import "github.com/shenikar/road_intelligence/internal/models"

type IncidentRow struct {
	Status   Presentation `json:"status"`
	Severity Presentation `json:"severity"`
	Priority Presentation `json:"priority"`
}

func DeriveIncident(i models.Incident) IncidentRow {
	return IncidentRow{
		Status:   Lookup(IncidentStatus, i.Status),
		Severity: Lookup(Severity, i.Severity),
		Priority: Lookup(PriorityBand, PriorityBandOf(i.Priority)),
	}
}

type ResourceRow struct {
	Status Presentation `json:"status"`
	Type   Presentation `json:"type"`
}

func DeriveResource(r models.Resource) ResourceRow {
	return ResourceRow{
		Status: Lookup(ResourceStatus, r.Status),
		Type:   Lookup(ResourceType, r.Type),
	}
}

type TaskRow struct {
	Priority Presentation `json:"priority"`
	Status   Presentation `json:"status"`
}

func DeriveTask(t models.MaintenanceTask) TaskRow {
	return TaskRow{
		Priority: Lookup(TaskPriority, t.Priority),
		Status:   Lookup(TaskStatus, t.Status),
	}
}

type AssetRow struct {
	Condition Presentation `json:"condition"`
}

func DeriveAsset(a models.Asset) AssetRow {
	return AssetRow{Condition: Lookup(ConditionBand, ConditionBandOf(a.ConditionScore))}
}

type NetworkIncidentRow struct {
	Status        Presentation `json:"status"`
	Severity      Presentation `json:"severity"`
	Type          Presentation `json:"type"`
	TrafficImpact Presentation `json:"traffic_impact"`
}

func DeriveNetworkIncident(n models.NetworkIncident) NetworkIncidentRow {
	return NetworkIncidentRow{
		Status:        Lookup(NetworkStatus, n.Status),
		Severity:      Lookup(Severity, n.Severity),
		Type:          Lookup(IncidentType, n.Type),
		TrafficImpact: Lookup(TrafficImpact, n.TrafficImpact),
	}
}

type AlertRow struct {
	Severity Presentation `json:"severity"`
	Type     Presentation `json:"type"`
	Status   Presentation `json:"status"`
}

func DeriveAlert(a models.Alert) AlertRow {
	return AlertRow{
		Severity: Lookup(Severity, a.Severity),
		Type:     Lookup(IncidentType, a.Type),
		Status:   Lookup(NetworkStatus, a.Status),
	}
}

type HotspotRow struct {
	Severity   Presentation `json:"severity"`
	Congestion Presentation `json:"congestion"`
}

func DeriveHotspot(h models.Hotspot) HotspotRow {
	return HotspotRow{
		Severity:   Lookup(Severity, h.Severity),
		Congestion: Lookup(CongestionBand, CongestionBandOf(h.CongestionLevel)),
	}
}

func DeriveKPI(k models.KPI) Presentation {
	return Lookup(KPIStatus, k.Status)
}
