package service

import (
	"sync"

	"github.com/shenikar/road_intelligence/internal/models"
	"github.com/shenikar/road_intelligence/internal/schema"
	"github.com/shenikar/road_intelligence/internal/store"
)

// Stores - текущие снимки всех коллекций
type Stores struct {
	Incidents        *store.Store[models.Incident]
	Resources        *store.Store[models.Resource]
	MaintenanceTasks *store.Store[models.MaintenanceTask]
	Assets           *store.Store[models.Asset]
	NetworkIncidents *store.Store[models.NetworkIncident]
	Alerts           *store.Store[models.Alert]
	Hotspots         *store.Store[models.Hotspot]
	BudgetLines      *store.Store[models.BudgetLine]
	KPIs             *store.Store[models.KPI]
	Messages         *store.Store[models.Message]
	Projects         *store.Store[models.MaintenanceProject]
	ProjectROI       *store.Store[models.ProjectROI]
	CostCategories   *store.Store[models.CostCategory]
	TrafficMetrics   *store.Store[models.TrafficMetric]
	VolumeSeries     *store.Store[models.VolumePoint]
	Segments         *store.Store[models.SegmentComparison]
	TrendHistory     *store.Store[models.TrendPoint]

	mu sync.Mutex
}

func NewStores() *Stores {
	return &Stores{
		Incidents:        store.New(schema.Incident),
		Resources:        store.New(schema.Resource),
		MaintenanceTasks: store.New(schema.MaintenanceTask),
		Assets:           store.New(schema.Asset),
		NetworkIncidents: store.New(schema.NetworkIncident),
		Alerts:           store.New(schema.Alert),
		Hotspots:         store.New(schema.Hotspot),
		BudgetLines:      store.New(schema.BudgetLine),
		KPIs:             store.New(schema.KPI),
		Messages:         store.New(schema.Message),
		Projects:         store.New(schema.MaintenanceProject),
		ProjectROI:       store.New(schema.ProjectROI),
		CostCategories:   store.New(schema.CostCategory),
		TrafficMetrics:   store.New(schema.TrafficMetric),
		VolumeSeries:     store.New(schema.VolumePoint),
		Segments:         store.New(schema.SegmentComparison),
		TrendHistory:     store.New(schema.TrendPoint),
	}
}

// Batch выполняет fn без параллельной замены снимков и других составных правок.
// Правки, затрагивающие несколько коллекций, должны идти через Batch.
func (s *Stores) Batch(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn()
}
