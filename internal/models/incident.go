package models

import "time"

// Статусы инцидента на панели экстренного реагирования
const (
	IncidentActive     = "active"
	IncidentResponding = "responding"
	IncidentEnRoute    = "en-route"
	IncidentMonitoring = "monitoring"
	IncidentResolved   = "resolved"
)

// Уровни серьезности, общие для инцидентов, оповещений и заторов
const (
	SeverityLow      = "low"
	SeverityMedium   = "medium"
	SeverityHigh     = "high"
	SeverityCritical = "critical"
)

// Incident представляет строку таблицы инцидентов. Priority: меньше - срочнее.
type Incident struct {
	ID                 string    `json:"id"`
	Type               string    `json:"type"`
	Severity           string    `json:"severity"`
	Location           string    `json:"location"`
	Status             string    `json:"status"`
	ReportedAt         time.Time `json:"reported_at"`
	Priority           int       `json:"priority"`
	ResponseTime       string    `json:"response_time"`
	AssignedUnits      int       `json:"assigned_units"`
	EstimatedClearance string    `json:"estimated_clearance"`
	// Coordinates - точка маркера на карте, nil если место не геокодировано
	Coordinates *Coordinates `json:"coordinates,omitempty"`
}
