package models

import "time"

// Дополнительные статусы сетевых инцидентов и оповещений
const (
	NetworkInProgress    = "in-progress"
	NetworkInvestigating = "investigating"
	NetworkScheduled     = "scheduled"
)

// NetworkIncident - строка таблицы управления инцидентами центра сетевых операций
type NetworkIncident struct {
	ID                  string    `json:"id"`
	Type                string    `json:"type"`
	Severity            string    `json:"severity"`
	Title               string    `json:"title"`
	Location            string    `json:"location"`
	ReportedBy          string    `json:"reported_by"`
	Timestamp           time.Time `json:"timestamp"`
	Status              string    `json:"status"`
	AssignedTeam        string    `json:"assigned_team"`
	EstimatedResolution string    `json:"estimated_resolution"`
	Priority            int       `json:"priority"`
	AffectedLanes       int       `json:"affected_lanes"`
	TrafficImpact       string    `json:"traffic_impact"`
}

// Alert - запись ленты оповещений
type Alert struct {
	ID                 string    `json:"id"`
	Severity           string    `json:"severity"`
	Type               string    `json:"type"`
	Title              string    `json:"title"`
	Location           string    `json:"location"`
	Timestamp          time.Time `json:"timestamp"`
	Status             string    `json:"status"`
	AssignedTo         string    `json:"assigned_to"`
	Description        string    `json:"description"`
	EstimatedClearTime string    `json:"estimated_clear_time"`
}

// KPI - карточка показателя сети
type KPI struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Value       string `json:"value"`
	Unit        string `json:"unit"`
	Status      string `json:"status"`
	Trend       string `json:"trend"`
	TrendValue  string `json:"trend_value"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
}
