package service

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/shenikar/road_intelligence/internal/models"
	"github.com/shenikar/road_intelligence/internal/pipeline"
	"github.com/shenikar/road_intelligence/internal/presentation"
	"github.com/shenikar/road_intelligence/internal/schema"
	"github.com/shenikar/road_intelligence/internal/webhook"
	"github.com/sirupsen/logrus"
)

// Уровни тревоги центра реагирования
const (
	AlertLevelLow      = "low"
	AlertLevelModerate = "moderate"
	AlertLevelHigh     = "high"
)

var (
	incidentTable = tableSpec[models.Incident]{
		name:        "emergency.incidents",
		schema:      schema.Incident,
		filterField: "status",
		defaultSort: pipeline.SortState{Field: "priority", Direction: pipeline.Descending},
	}
	resourceTable = tableSpec[models.Resource]{
		name:        "emergency.resources",
		schema:      schema.Resource,
		filterField: "type",
	}
)

// NewIncident - данные нового инцидента от оператора
type NewIncident struct {
	Type               string
	Severity           string
	Location           string
	Priority           int
	EstimatedClearance string
	// Coordinates - точка на карте, nil если оператор ее не указал
	Coordinates *models.Coordinates
}

// DispatchOrder - назначение подразделения на инцидент
type DispatchOrder struct {
	IncidentID string
	ETA        string
}

type DispatchResult struct {
	Resource models.Resource
	Incident models.Incident
}

// TypeStats - доступность подразделений одного типа по всей коллекции
type TypeStats struct {
	Type      string
	Available int
	Total     int
}

// ResourceBoard - таблица подразделений. Assignments содержит только
// назначения, инцидент которых найден в текущем снимке.
type ResourceBoard struct {
	View        pipeline.View[models.Resource]
	Assignments map[string]models.Incident
	Stats       []TypeStats
}

// EmergencySummary - показатели заголовка панели, всегда по полным коллекциям
type EmergencySummary struct {
	ActiveIncidents     int
	AvgResponseMinutes  float64
	AvailableUnits      int
	TotalUnits          int
	CriticalAlerts      int
	AlertLevel          string
	IncidentsByStatus   pipeline.Summary
	IncidentsBySeverity pipeline.Summary
}

// EmergencyService определяет бизнес-логику панели экстренного реагирования
type EmergencyService interface {
	ListIncidents(ctx context.Context, q ViewQuery) pipeline.View[models.Incident]
	ReportIncident(ctx context.Context, in NewIncident) (models.Incident, error)
	ListResources(ctx context.Context, q ViewQuery) ResourceBoard
	DispatchResource(ctx context.Context, resourceID string, order DispatchOrder) (DispatchResult, error)
	Summary(ctx context.Context) EmergencySummary
	ListMessages(ctx context.Context, q ViewQuery) MessageFeed
	SendMessage(ctx context.Context, in NewMessage) (models.Message, error)
}

type emergencyService struct {
	stores    *Stores
	publisher webhook.WebhookPublisher
	observer  Observer
	clock     Clock
	logger    *logrus.Logger
}

func NewEmergencyService(stores *Stores, publisher webhook.WebhookPublisher, observer Observer, clock Clock, logger *logrus.Logger) EmergencyService {
	return &emergencyService{
		stores:    stores,
		publisher: publisher,
		observer:  observer,
		clock:     clock,
		logger:    logger,
	}
}

// ListIncidents возвращает таблицу инцидентов, по умолчанию самые срочные сверху
func (s *emergencyService) ListIncidents(_ context.Context, q ViewQuery) pipeline.View[models.Incident] {
	log := s.logger.WithFields(logrus.Fields{
		"service": "emergency",
		"method":  "ListIncidents",
		"filter":  q.Filter,
	})
	view := incidentTable.run(log, s.observer, s.stores.Incidents.Set(), q)
	log.WithField("count", len(view.Records)).Debug("Incidents listed")
	return view
}

// ReportIncident добавляет инцидент в текущий снимок со статусом active
func (s *emergencyService) ReportIncident(ctx context.Context, in NewIncident) (models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "emergency",
		"method":  "ReportIncident",
		"type":    in.Type,
	})
	log.Info("Attempting to report a new incident")

	incident := models.Incident{
		ID:                 "INC-" + strings.ToUpper(uuid.NewString()[:8]),
		Type:               in.Type,
		Severity:           in.Severity,
		Location:           in.Location,
		Status:             models.IncidentActive,
		ReportedAt:         s.clock(),
		Priority:           in.Priority,
		ResponseTime:       "",
		AssignedUnits:      0,
		EstimatedClearance: in.EstimatedClearance,
		Coordinates:        in.Coordinates,
	}
	if replaced := s.stores.Incidents.Upsert(incident); replaced {
		log.WithField("incident_id", incident.ID).Error("Generated incident id collided with an existing one")
		return models.Incident{}, fmt.Errorf("service: could not report incident %s: %w", incident.ID, ErrConflict)
	}

	event := webhook.WebhookEvent{
		ID:         uuid.New(),
		Type:       webhook.EventIncidentReported,
		IncidentID: incident.ID,
		Timestamp:  incident.ReportedAt,
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		log.WithError(err).Warn("Failed to publish incident event")
	}

	log.WithField("incident_id", incident.ID).Info("Incident reported successfully")
	return incident, nil
}

// ListResources возвращает подразделения со статистикой по типам из полной коллекции
func (s *emergencyService) ListResources(_ context.Context, q ViewQuery) ResourceBoard {
	log := s.logger.WithFields(logrus.Fields{
		"service": "emergency",
		"method":  "ListResources",
		"filter":  q.Filter,
	})

	set := s.stores.Resources.Set()
	view := resourceTable.run(log, s.observer, set, q)
	incidents := s.stores.Incidents.Set()

	assignments := make(map[string]models.Incident)
	for _, r := range view.Records {
		if r.AssignedIncident == nil {
			continue
		}
		incident, ok := incidents.Get(*r.AssignedIncident)
		if !ok {
			log.WithFields(logrus.Fields{
				"resource_id": r.ID,
				"incident_id": *r.AssignedIncident,
			}).Debug("Assigned incident not found, omitting assignment")
			continue
		}
		assignments[r.ID] = incident
	}

	return ResourceBoard{
		View:        view,
		Assignments: assignments,
		Stats:       s.typeStats(log, set),
	}
}

func isAvailable(r models.Resource) bool {
	return r.Status == models.ResourceAvailable
}

func (s *emergencyService) typeStats(log *logrus.Entry, set pipeline.Set[models.Resource]) []TypeStats {
	summary, err := pipeline.SummarizeSet(schema.Resource, set, "type", isAvailable)
	if err != nil {
		log.WithError(err).Warn("Failed to summarize resources")
		return nil
	}
	stats := make([]TypeStats, 0, len(models.ResourceTypes))
	for _, t := range models.ResourceTypes {
		stats = append(stats, TypeStats{Type: t, Available: summary.Available(t), Total: summary.Count(t)})
	}
	return stats
}

// DispatchResource назначает свободное подразделение на инцидент.
// Подразделение и инцидент заменяются в снимке по id.
func (s *emergencyService) DispatchResource(ctx context.Context, resourceID string, order DispatchOrder) (DispatchResult, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "emergency",
		"method":      "DispatchResource",
		"resource_id": resourceID,
		"incident_id": order.IncidentID,
	})
	log.Info("Attempting to dispatch resource")

	var (
		resource models.Resource
		incident models.Incident
		err      error
	)
	// проверка и обе правки не должны пересекаться с заменой снимков
	s.stores.Batch(func() {
		resource, incident, err = s.assign(log, resourceID, order)
	})
	if err != nil {
		return DispatchResult{}, err
	}

	s.observer.ResourceDispatched(resource.Type)
	event := webhook.WebhookEvent{
		ID:           uuid.New(),
		Type:         webhook.EventResourceDispatched,
		IncidentID:   incident.ID,
		ResourceID:   resource.ID,
		ResourceType: resource.Type,
		ETA:          resource.ETA,
		Timestamp:    s.clock(),
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		log.WithError(err).Warn("Failed to publish dispatch event")
	}

	log.Info("Resource dispatched successfully")
	return DispatchResult{Resource: resource, Incident: incident}, nil
}

// assign переводит ресурс в dispatched и увеличивает число подразделений инцидента.
// Вызывается внутри Stores.Batch.
func (s *emergencyService) assign(log *logrus.Entry, resourceID string, order DispatchOrder) (models.Resource, models.Incident, error) {
	if _, ok := s.stores.Incidents.Set().Get(order.IncidentID); !ok {
		log.Warn("Attempted to dispatch to a non-existent incident")
		return models.Resource{}, models.Incident{}, fmt.Errorf("service: incident with id %s not found for dispatch: %w", order.IncidentID, ErrNotFound)
	}

	var (
		previous models.Resource
		busy     bool
	)
	resource, ok := s.stores.Resources.Update(resourceID, func(current models.Resource) (models.Resource, bool) {
		if current.Status != models.ResourceAvailable {
			busy = true
			return current, false
		}
		previous = current
		incidentID := order.IncidentID
		current.Status = models.ResourceDispatched
		current.AssignedIncident = &incidentID
		current.ETA = order.ETA
		return current, true
	})
	switch {
	case busy:
		log.WithField("status", resource.Status).Warn("Attempted to dispatch a busy resource")
		return models.Resource{}, models.Incident{}, fmt.Errorf("service: resource %s is %s: %w", resourceID, resource.Status, ErrConflict)
	case !ok:
		log.Warn("Attempted to dispatch a non-existent resource")
		return models.Resource{}, models.Incident{}, fmt.Errorf("service: resource with id %s not found for dispatch: %w", resourceID, ErrNotFound)
	}

	incident, ok := s.stores.Incidents.Update(order.IncidentID, func(current models.Incident) (models.Incident, bool) {
		current.AssignedUnits++
		return current, true
	})
	if !ok {
		// ресурс не должен ссылаться на отсутствующий инцидент
		s.stores.Resources.Update(resourceID, func(models.Resource) (models.Resource, bool) {
			return previous, true
		})
		log.Warn("Incident disappeared during dispatch, resource reverted")
		return models.Resource{}, models.Incident{}, fmt.Errorf("service: incident with id %s not found for dispatch: %w", order.IncidentID, ErrNotFound)
	}
	return resource, incident, nil
}

// Summary считает показатели заголовка по полным коллекциям, а не по отфильтрованным таблицам
func (s *emergencyService) Summary(_ context.Context) EmergencySummary {
	log := s.logger.WithFields(logrus.Fields{
		"service": "emergency",
		"method":  "Summary",
	})

	incidents := s.stores.Incidents.Set()
	resources := s.stores.Resources.Set()

	critical := incidents.Count(func(i models.Incident) bool {
		return i.Status != models.IncidentResolved && presentation.PriorityBandOf(i.Priority) == "urgent"
	})

	summary := EmergencySummary{
		ActiveIncidents: incidents.Count(func(i models.Incident) bool {
			return i.Status != models.IncidentResolved
		}),
		AvgResponseMinutes: averageResponse(log, incidents.Records()),
		AvailableUnits:     resources.Count(isAvailable),
		TotalUnits:         resources.Len(),
		CriticalAlerts:     critical,
		AlertLevel:         AlertLevelFor(critical),
	}

	var err error
	if summary.IncidentsByStatus, err = pipeline.SummarizeSet(schema.Incident, incidents, "status", nil); err != nil {
		log.WithError(err).Warn("Failed to summarize incidents by status")
	}
	if summary.IncidentsBySeverity, err = pipeline.SummarizeSet(schema.Incident, incidents, "severity", nil); err != nil {
		log.WithError(err).Warn("Failed to summarize incidents by severity")
	}
	return summary
}

// AlertLevelFor: 0 - low, 1-2 - moderate, от 3 - high
func AlertLevelFor(critical int) string {
	switch {
	case critical <= 0:
		return AlertLevelLow
	case critical <= 2:
		return AlertLevelModerate
	default:
		return AlertLevelHigh
	}
}

// ParseMinutes разбирает время реакции вида "3.2 min"
func ParseMinutes(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "min")
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0, false
	}
	return v, true
}

// averageResponse - среднее по разобранным значениям, округленное до десятых
func averageResponse(log *logrus.Entry, incidents []models.Incident) float64 {
	var (
		sum float64
		n   int
	)
	for _, i := range incidents {
		v, ok := ParseMinutes(i.ResponseTime)
		if !ok {
			if i.ResponseTime != "" {
				log.WithField("incident_id", i.ID).Debug("Unparseable response time skipped")
			}
			continue
		}
		sum += v
		n++
	}
	if n == 0 {
		return 0
	}
	return math.Round(sum/float64(n)*10) / 10
}
