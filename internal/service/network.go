package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/shenikar/road_intelligence/internal/models"
	"github.com/shenikar/road_intelligence/internal/pipeline"
	"github.com/shenikar/road_intelligence/internal/schema"
	"github.com/sirupsen/logrus"
)

// ActiveIncidentsKPI - карточка, значение которой пересчитывается по инцидентам сети
const ActiveIncidentsKPI = "active-incidents"

var (
	networkIncidentTable = tableSpec[models.NetworkIncident]{
		name:        "network.incidents",
		schema:      schema.NetworkIncident,
		filterField: "status",
		defaultSort: pipeline.SortState{Field: "timestamp", Direction: pipeline.Descending},
	}
	alertTable = tableSpec[models.Alert]{
		name:        "network.alerts",
		schema:      schema.Alert,
		filterField: "severity",
		defaultSort: pipeline.SortState{Field: "timestamp", Direction: pipeline.Descending},
	}
)

// AlertFeed - лента оповещений с подписями "сколько прошло" на момент Now
type AlertFeed struct {
	View     pipeline.View[models.Alert]
	TimeAgo  map[string]string
	Now      time.Time
	Severity pipeline.Summary
}

// NetworkService определяет бизнес-логику панели сетевых операций
type NetworkService interface {
	ListIncidents(ctx context.Context, q ViewQuery) pipeline.View[models.NetworkIncident]
	ListAlerts(ctx context.Context, q ViewQuery) AlertFeed
	KPIs(ctx context.Context) []models.KPI
}

type networkService struct {
	stores   *Stores
	observer Observer
	clock    Clock
	logger   *logrus.Logger
}

func NewNetworkService(stores *Stores, observer Observer, clock Clock, logger *logrus.Logger) NetworkService {
	return &networkService{stores: stores, observer: observer, clock: clock, logger: logger}
}

func (s *networkService) ListIncidents(_ context.Context, q ViewQuery) pipeline.View[models.NetworkIncident] {
	log := s.logger.WithFields(logrus.Fields{
		"service": "network",
		"method":  "ListIncidents",
		"filter":  q.Filter,
	})
	return networkIncidentTable.run(log, s.observer, s.stores.NetworkIncidents.Set(), q)
}

func (s *networkService) ListAlerts(_ context.Context, q ViewQuery) AlertFeed {
	log := s.logger.WithFields(logrus.Fields{
		"service": "network",
		"method":  "ListAlerts",
		"filter":  q.Filter,
	})

	set := s.stores.Alerts.Set()
	view := alertTable.run(log, s.observer, set, q)
	now := s.clock()

	ago := make(map[string]string, len(view.Records))
	for _, a := range view.Records {
		ago[a.ID] = TimeAgo(now, a.Timestamp)
	}

	severity, err := pipeline.SummarizeSet(schema.Alert, set, "severity", nil)
	if err != nil {
		log.WithError(err).Warn("Failed to summarize alerts")
	}
	return AlertFeed{View: view, TimeAgo: ago, Now: now, Severity: severity}
}

// KPIs возвращает карточки, подставляя число нерешенных инцидентов сети
func (s *networkService) KPIs(_ context.Context) []models.KPI {
	active := s.stores.NetworkIncidents.Set().Count(func(n models.NetworkIncident) bool {
		return n.Status != models.IncidentResolved
	})

	kpis := s.stores.KPIs.Set().Records()
	for i := range kpis {
		if kpis[i].ID == ActiveIncidentsKPI {
			kpis[i].Value = strconv.Itoa(active)
		}
	}
	return kpis
}

// TimeAgo: меньше минуты - "Just now", меньше часа - минуты, иначе целые часы
func TimeAgo(now, at time.Time) string {
	minutes := int(now.Sub(at) / time.Minute)
	switch {
	case minutes < 1:
		return "Just now"
	case minutes < 60:
		return fmt.Sprintf("%dm ago", minutes)
	default:
		return fmt.Sprintf("%dh ago", minutes/60)
	}
}
