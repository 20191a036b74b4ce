package models

// Типы и статусы подразделений
const (
	ResourcePolice      = "police"
	ResourceFire        = "fire"
	ResourceMedical     = "medical"
	ResourceMaintenance = "maintenance"

	ResourceAvailable  = "available"
	ResourceDispatched = "dispatched"
	ResourceEnRoute    = "en-route"
	ResourceOnScene    = "on-scene"
)

// ResourceTypes - порядок отображения статистики по типам
var ResourceTypes = []string{ResourcePolice, ResourceFire, ResourceMedical, ResourceMaintenance}

// Resource - подразделение реагирования. AssignedIncident - мягкая ссылка на Incident.ID.
type Resource struct {
	ID               string  `json:"id"`
	Type             string  `json:"type"`
	Name             string  `json:"name"`
	Status           string  `json:"status"`
	Location         string  `json:"location"`
	AssignedIncident *string `json:"assigned_incident,omitempty"`
	ETA              string  `json:"eta"`
}
