package service

import (
	"context"

	"github.com/shenikar/road_intelligence/internal/models"
	"github.com/shenikar/road_intelligence/internal/pipeline"
	"github.com/shenikar/road_intelligence/internal/schema"
	"github.com/sirupsen/logrus"
)

var segmentTable = tableSpec[models.SegmentComparison]{
	name:        "traffic.segments",
	schema:      schema.SegmentComparison,
	filterField: "segment",
}

// VolumeChart - суточный график и точки максимума. Peak пуст, если точек нет.
type VolumeChart struct {
	Points         []models.VolumePoint
	Peak           *models.VolumePoint
	PeakCongestion *models.VolumePoint
}

// TrendChart - месячная история. Forecast сообщает, запрошен ли прогноз.
type TrendChart struct {
	Points   []models.TrendPoint
	Forecast bool
}

func (s *trafficService) Metrics(_ context.Context) []models.TrafficMetric {
	return s.stores.TrafficMetrics.Set().Records()
}

// VolumeSeries возвращает график потока. При равенстве берется более ранняя точка.
func (s *trafficService) VolumeSeries(_ context.Context) VolumeChart {
	points := s.stores.VolumeSeries.Set().Records()
	chart := VolumeChart{Points: points}
	for i := range points {
		p := &points[i]
		if chart.Peak == nil || p.Volume > chart.Peak.Volume {
			chart.Peak = p
		}
		if chart.PeakCongestion == nil || p.Congestion > chart.PeakCongestion.Congestion {
			chart.PeakCongestion = p
		}
	}
	return chart
}

// Segments возвращает сравнение участков с предыдущим периодом
func (s *trafficService) Segments(_ context.Context, q ViewQuery) pipeline.View[models.SegmentComparison] {
	log := s.logger.WithFields(logrus.Fields{
		"service": "traffic",
		"method":  "Segments",
		"filter":  q.Filter,
	})
	return segmentTable.run(log, s.observer, s.stores.Segments.Set(), q)
}

func (s *trafficService) History(_ context.Context, forecast bool) TrendChart {
	return TrendChart{Points: s.stores.TrendHistory.Set().Records(), Forecast: forecast}
}
