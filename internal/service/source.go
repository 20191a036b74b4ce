package service

import (
	"context"
	"errors"
	"time"

	"github.com/shenikar/road_intelligence/internal/models"
)

var (
	// ErrNotFound - запись с указанным id отсутствует в текущем снимке
	ErrNotFound = errors.New("not found")
	// ErrConflict - запись существует, но ее состояние не допускает операцию
	ErrConflict = errors.New("conflict")
)

// RecordSource определяет контракт источника данных панелей.
// Каждый вызов возвращает полный снимок коллекции.
type RecordSource interface {
	Incidents(ctx context.Context) ([]models.Incident, error)
	Resources(ctx context.Context) ([]models.Resource, error)
	MaintenanceTasks(ctx context.Context) ([]models.MaintenanceTask, error)
	Assets(ctx context.Context) ([]models.Asset, error)
	NetworkIncidents(ctx context.Context) ([]models.NetworkIncident, error)
	Alerts(ctx context.Context) ([]models.Alert, error)
	Hotspots(ctx context.Context) ([]models.Hotspot, error)
	BudgetLines(ctx context.Context) ([]models.BudgetLine, error)
	KPIs(ctx context.Context) ([]models.KPI, error)
	Messages(ctx context.Context) ([]models.Message, error)
	MaintenanceProjects(ctx context.Context) ([]models.MaintenanceProject, error)
	ProjectROI(ctx context.Context) ([]models.ProjectROI, error)
	CostCategories(ctx context.Context) ([]models.CostCategory, error)
	TrafficMetrics(ctx context.Context) ([]models.TrafficMetric, error)
	VolumeSeries(ctx context.Context) ([]models.VolumePoint, error)
	SegmentComparisons(ctx context.Context) ([]models.SegmentComparison, error)
	TrendHistory(ctx context.Context) ([]models.TrendPoint, error)
}

// Observer получает события для метрик
type Observer interface {
	ViewDegraded(view string)
	SnapshotLoaded(collection string, size int)
	RefreshFinished(duration time.Duration, err error)
	ResourceDispatched(resourceType string)
}

// UpdateMarker фиксирует момент последнего обновления данных
type UpdateMarker interface {
	MarkUpdated(at time.Time)
}

// Clock возвращает текущее время. Подменяется в тестах.
type Clock func() time.Time
