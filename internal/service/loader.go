package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shenikar/road_intelligence/internal/models"
	"github.com/shenikar/road_intelligence/internal/store"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Loader загружает снимки всех коллекций и заменяет их целиком.
// Локальные изменения (диспетчеризация, новые инциденты) при этом теряются.
type Loader struct {
	source   RecordSource
	stores   *Stores
	observer Observer
	clock    Clock
	logger   *logrus.Logger
}

func NewLoader(source RecordSource, stores *Stores, observer Observer, clock Clock, logger *logrus.Logger) *Loader {
	if clock == nil {
		clock = time.Now
	}
	return &Loader{source: source, stores: stores, observer: observer, clock: clock, logger: logger}
}

func fetch[T any](g *errgroup.Group, ctx context.Context, name string, load func(context.Context) ([]T, error), dst *[]T) {
	g.Go(func() error {
		records, err := load(ctx)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		*dst = records
		return nil
	})
}

func replaceStore[T any](l *Loader, name string, st *store.Store[T], records []T, at time.Time) error {
	if err := st.Replace(records, at); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	l.observer.SnapshotLoaded(name, len(records))
	return nil
}

// Load получает все коллекции параллельно. Если хотя бы одна не загрузилась,
// ни один снимок не меняется. Коллекция с дублирующимися id сохраняет прежний снимок.
func (l *Loader) Load(ctx context.Context) (time.Time, error) {
	log := l.logger.WithFields(logrus.Fields{
		"service": "loader",
		"method":  "Load",
	})

	var (
		incidents        []models.Incident
		resources        []models.Resource
		tasks            []models.MaintenanceTask
		assets           []models.Asset
		networkIncidents []models.NetworkIncident
		alerts           []models.Alert
		hotspots         []models.Hotspot
		budget           []models.BudgetLine
		kpis             []models.KPI
		messages         []models.Message
		projects         []models.MaintenanceProject
		roi              []models.ProjectROI
		costs            []models.CostCategory
		trafficMetrics   []models.TrafficMetric
		volume           []models.VolumePoint
		segments         []models.SegmentComparison
		history          []models.TrendPoint
	)

	g, gctx := errgroup.WithContext(ctx)
	fetch(g, gctx, "incidents", l.source.Incidents, &incidents)
	fetch(g, gctx, "resources", l.source.Resources, &resources)
	fetch(g, gctx, "maintenance_tasks", l.source.MaintenanceTasks, &tasks)
	fetch(g, gctx, "assets", l.source.Assets, &assets)
	fetch(g, gctx, "network_incidents", l.source.NetworkIncidents, &networkIncidents)
	fetch(g, gctx, "alerts", l.source.Alerts, &alerts)
	fetch(g, gctx, "hotspots", l.source.Hotspots, &hotspots)
	fetch(g, gctx, "budget_lines", l.source.BudgetLines, &budget)
	fetch(g, gctx, "kpis", l.source.KPIs, &kpis)
	fetch(g, gctx, "messages", l.source.Messages, &messages)
	fetch(g, gctx, "maintenance_projects", l.source.MaintenanceProjects, &projects)
	fetch(g, gctx, "project_roi", l.source.ProjectROI, &roi)
	fetch(g, gctx, "cost_categories", l.source.CostCategories, &costs)
	fetch(g, gctx, "traffic_metrics", l.source.TrafficMetrics, &trafficMetrics)
	fetch(g, gctx, "volume_series", l.source.VolumeSeries, &volume)
	fetch(g, gctx, "segment_comparisons", l.source.SegmentComparisons, &segments)
	fetch(g, gctx, "trend_history", l.source.TrendHistory, &history)
	if err := g.Wait(); err != nil {
		log.WithError(err).Error("Failed to fetch snapshot from source")
		return time.Time{}, fmt.Errorf("service: could not load snapshot: %w", err)
	}

	at := l.clock()
	var err error
	l.stores.Batch(func() {
		err = errors.Join(
			replaceStore(l, "incidents", l.stores.Incidents, incidents, at),
			replaceStore(l, "resources", l.stores.Resources, resources, at),
			replaceStore(l, "maintenance_tasks", l.stores.MaintenanceTasks, tasks, at),
			replaceStore(l, "assets", l.stores.Assets, assets, at),
			replaceStore(l, "network_incidents", l.stores.NetworkIncidents, networkIncidents, at),
			replaceStore(l, "alerts", l.stores.Alerts, alerts, at),
			replaceStore(l, "hotspots", l.stores.Hotspots, hotspots, at),
			replaceStore(l, "budget_lines", l.stores.BudgetLines, budget, at),
			replaceStore(l, "kpis", l.stores.KPIs, kpis, at),
			replaceStore(l, "messages", l.stores.Messages, messages, at),
			replaceStore(l, "maintenance_projects", l.stores.Projects, projects, at),
			replaceStore(l, "project_roi", l.stores.ProjectROI, roi, at),
			replaceStore(l, "cost_categories", l.stores.CostCategories, costs, at),
			replaceStore(l, "traffic_metrics", l.stores.TrafficMetrics, trafficMetrics, at),
			replaceStore(l, "volume_series", l.stores.VolumeSeries, volume, at),
			replaceStore(l, "segment_comparisons", l.stores.Segments, segments, at),
			replaceStore(l, "trend_history", l.stores.TrendHistory, history, at),
		)
	})
	if err != nil {
		log.WithError(err).Warn("Some collections kept their previous snapshot")
		return at, fmt.Errorf("service: could not replace snapshot: %w", err)
	}

	log.Debug("Snapshot loaded")
	return at, nil
}

// Refresher периодически перезагружает снимки. Таймер живет, пока жив контекст Start.
type Refresher struct {
	loader   *Loader
	interval time.Duration
	marker   UpdateMarker
	observer Observer
	logger   *logrus.Logger
	done     chan struct{}
}

func NewRefresher(loader *Loader, interval time.Duration, marker UpdateMarker, observer Observer, logger *logrus.Logger) *Refresher {
	return &Refresher{
		loader:   loader,
		interval: interval,
		marker:   marker,
		observer: observer,
		logger:   logger,
		done:     make(chan struct{}),
	}
}

// Refresh выполняет одну перезагрузку
func (r *Refresher) Refresh(ctx context.Context) error {
	start := time.Now()
	at, err := r.loader.Load(ctx)
	r.observer.RefreshFinished(time.Since(start), err)
	if !at.IsZero() {
		r.marker.MarkUpdated(at)
	}
	return err
}

// Start запускает периодическую перезагрузку в горутине
func (r *Refresher) Start(ctx context.Context) {
	r.logger.Info("Starting snapshot refresher...")
	go func() {
		defer close(r.done)
		ticker := time.NewTicker(r.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				r.logger.Info("Stopping snapshot refresher.")
				return
			case <-ticker.C:
				if err := r.Refresh(ctx); err != nil {
					r.logger.WithError(err).Warn("Snapshot refresh failed")
				}
			}
		}
	}()
}

// Done закрывается после остановки перезагрузки
func (r *Refresher) Done() <-chan struct{} {
	return r.done
}
