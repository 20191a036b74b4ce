package presentation

import (
	"unicode"
	"unicode/utf8"
)

// Kind - перечисление, к которому относится значение
type Kind string

const (
	IncidentStatus Kind = "incident_status"
	NetworkStatus  Kind = "network_status"
	Severity       Kind = "severity"
	TaskPriority   Kind = "task_priority"
	TaskStatus     Kind = "task_status"
	ResourceStatus Kind = "resource_status"
	ResourceType   Kind = "resource_type"
	IncidentType   Kind = "incident_type"
	TrafficImpact  Kind = "traffic_impact"
	AlertLevel     Kind = "alert_level"
	Connection     Kind = "connection"
	KPIStatus      Kind = "kpi_status"
	PriorityBand   Kind = "priority_band"
	ConditionBand  Kind = "condition_band"
	CongestionBand Kind = "congestion_band"
)

// Presentation - метаданные отображения одного значения
type Presentation struct {
	ColorToken string `json:"color_token"`
	IconID     string `json:"icon_id"`
	BadgeLabel string `json:"badge_label"`
}

const (
	fallbackColor = "muted"
	fallbackIcon  = "Circle"
)

// Lookup возвращает метаданные значения. Неизвестное значение получает
// нейтральный цвет, общую иконку и исходное значение с заглавной буквы.
func Lookup(kind Kind, value string) Presentation {
	if p, ok := table[kind][value]; ok {
		return p
	}
	return Fallback(value)
}

// Known сообщает, есть ли значение в таблице
func Known(kind Kind, value string) bool {
	_, ok := table[kind][value]
	return ok
}

// Fallback - тройка для значения вне перечисления
func Fallback(value string) Presentation {
	return Presentation{
		ColorToken: fallbackColor,
		IconID:     fallbackIcon,
		BadgeLabel: capitalize(value),
	}
}

func capitalize(s string) string {
	if s == "" {
		return "Unknown"
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}
