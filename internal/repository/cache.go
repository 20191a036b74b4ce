package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/road_intelligence/internal/models"
	"github.com/shenikar/road_intelligence/internal/service"
	"github.com/sirupsen/logrus"
)

// ErrCacheMiss - ключа нет в кеше
var ErrCacheMiss = errors.New("cache miss")

// SnapshotCache хранит сериализованные снимки коллекций
type SnapshotCache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// RedisCache реализует SnapshotCache поверх Redis
type RedisCache struct {
	client *redis.Client
}

func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{client: client}
}

func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, fmt.Errorf("failed to get %s from cache: %w", key, err)
	}
	return val, nil
}

func (c *RedisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := c.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("failed to set %s in cache: %w", key, err)
	}
	return nil
}

// CachedSource отдает снимки из кеша и обращается к next только при промахе.
// Ошибка кеша не ломает загрузку: она логируется, а данные берутся из next.
type CachedSource struct {
	next   service.RecordSource
	cache  SnapshotCache
	ttl    time.Duration
	logger *logrus.Logger
}

func NewCachedSource(next service.RecordSource, cache SnapshotCache, ttl time.Duration, logger *logrus.Logger) service.RecordSource {
	return &CachedSource{next: next, cache: cache, ttl: ttl, logger: logger}
}

func snapshotKey(collection string) string {
	return fmt.Sprintf("snapshot:%s", collection)
}

func cached[T any](ctx context.Context, s *CachedSource, collection string, load func(context.Context) ([]T, error)) ([]T, error) {
	key := snapshotKey(collection)
	log := s.logger.WithFields(logrus.Fields{
		"repository": "cache",
		"collection": collection,
	})

	val, err := s.cache.Get(ctx, key)
	switch {
	case err == nil:
		var out []T
		decodeErr := json.Unmarshal(val, &out)
		if decodeErr == nil {
			log.Debug("Snapshot served from cache")
			return out, nil
		}
		log.WithError(decodeErr).Warn("Failed to unmarshal cached snapshot")
	case !errors.Is(err, ErrCacheMiss):
		log.WithError(err).Warn("Cache unavailable, loading from source")
	}

	records, err := load(ctx)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(records)
	if err != nil {
		log.WithError(err).Warn("Failed to marshal snapshot for cache")
		return records, nil
	}
	if err := s.cache.Set(ctx, key, payload, s.ttl); err != nil {
		log.WithError(err).Warn("Failed to store snapshot in cache")
	}
	return records, nil
}

func (s *CachedSource) Incidents(ctx context.Context) ([]models.Incident, error) {
	return cached(ctx, s, "incidents", s.next.Incidents)
}

func (s *CachedSource) Resources(ctx context.Context) ([]models.Resource, error) {
	return cached(ctx, s, "resources", s.next.Resources)
}

func (s *CachedSource) MaintenanceTasks(ctx context.Context) ([]models.MaintenanceTask, error) {
	return cached(ctx, s, "maintenance_tasks", s.next.MaintenanceTasks)
}

func (s *CachedSource) Assets(ctx context.Context) ([]models.Asset, error) {
	return cached(ctx, s, "assets", s.next.Assets)
}

func (s *CachedSource) NetworkIncidents(ctx context.Context) ([]models.NetworkIncident, error) {
	return cached(ctx, s, "network_incidents", s.next.NetworkIncidents)
}

func (s *CachedSource) Alerts(ctx context.Context) ([]models.Alert, error) {
	return cached(ctx, s, "alerts", s.next.Alerts)
}

func (s *CachedSource) Hotspots(ctx context.Context) ([]models.Hotspot, error) {
	return cached(ctx, s, "hotspots", s.next.Hotspots)
}

func (s *CachedSource) BudgetLines(ctx context.Context) ([]models.BudgetLine, error) {
	return cached(ctx, s, "budget_lines", s.next.BudgetLines)
}

func (s *CachedSource) KPIs(ctx context.Context) ([]models.KPI, error) {
	return cached(ctx, s, "kpis", s.next.KPIs)
}

func (s *CachedSource) Messages(ctx context.Context) ([]models.Message, error) {
	return cached(ctx, s, "messages", s.next.Messages)
}

func (s *CachedSource) MaintenanceProjects(ctx context.Context) ([]models.MaintenanceProject, error) {
	return cached(ctx, s, "maintenance_projects", s.next.MaintenanceProjects)
}

func (s *CachedSource) ProjectROI(ctx context.Context) ([]models.ProjectROI, error) {
	return cached(ctx, s, "project_roi", s.next.ProjectROI)
}

func (s *CachedSource) CostCategories(ctx context.Context) ([]models.CostCategory, error) {
	return cached(ctx, s, "cost_categories", s.next.CostCategories)
}

func (s *CachedSource) TrafficMetrics(ctx context.Context) ([]models.TrafficMetric, error) {
	return cached(ctx, s, "traffic_metrics", s.next.TrafficMetrics)
}

func (s *CachedSource) VolumeSeries(ctx context.Context) ([]models.VolumePoint, error) {
	return cached(ctx, s, "volume_series", s.next.VolumeSeries)
}

func (s *CachedSource) SegmentComparisons(ctx context.Context) ([]models.SegmentComparison, error) {
	return cached(ctx, s, "segment_comparisons", s.next.SegmentComparisons)
}

func (s *CachedSource) TrendHistory(ctx context.Context) ([]models.TrendPoint, error) {
	return cached(ctx, s, "trend_history", s.next.TrendHistory)
}
