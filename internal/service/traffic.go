package service

import (
	"context"

	"github.com/shenikar/road_intelligence/internal/models"
	"github.com/shenikar/road_intelligence/internal/pipeline"
	"github.com/shenikar/road_intelligence/internal/schema"
	"github.com/sirupsen/logrus"
)

var hotspotTable = tableSpec[models.Hotspot]{
	name:        "traffic.hotspots",
	schema:      schema.Hotspot,
	filterField: "severity",
	defaultSort: pipeline.SortState{Field: "congestion_level", Direction: pipeline.Descending},
}

type HotspotBoard struct {
	View     pipeline.View[models.Hotspot]
	Severity pipeline.Summary
}

// TrafficService определяет бизнес-логику панели аналитики движения
type TrafficService interface {
	ListHotspots(ctx context.Context, q ViewQuery) HotspotBoard
	Metrics(ctx context.Context) []models.TrafficMetric
	VolumeSeries(ctx context.Context) VolumeChart
	Segments(ctx context.Context, q ViewQuery) pipeline.View[models.SegmentComparison]
	History(ctx context.Context, forecast bool) TrendChart
}

type trafficService struct {
	stores   *Stores
	observer Observer
	logger   *logrus.Logger
}

func NewTrafficService(stores *Stores, observer Observer, logger *logrus.Logger) TrafficService {
	return &trafficService{stores: stores, observer: observer, logger: logger}
}

// ListHotspots возвращает участки заторов, по умолчанию самые загруженные сверху
func (s *trafficService) ListHotspots(_ context.Context, q ViewQuery) HotspotBoard {
	log := s.logger.WithFields(logrus.Fields{
		"service": "traffic",
		"method":  "ListHotspots",
		"filter":  q.Filter,
	})
	set := s.stores.Hotspots.Set()
	view := hotspotTable.run(log, s.observer, set, q)

	severity, err := pipeline.SummarizeSet(schema.Hotspot, set, "severity", nil)
	if err != nil {
		log.WithError(err).Warn("Failed to summarize hotspots")
	}
	return HotspotBoard{View: view, Severity: severity}
}
