package service

import (
	"context"
	"fmt"

	"github.com/shenikar/road_intelligence/internal/models"
	"github.com/shenikar/road_intelligence/internal/pipeline"
	"github.com/shenikar/road_intelligence/internal/schema"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// EmptyTasksMessage показывается, когда фильтр очереди не оставил задач
const EmptyTasksMessage = "No tasks found for the selected filter."

var (
	assetTable = tableSpec[models.Asset]{
		name:        "assets.assets",
		schema:      schema.Asset,
		filterField: "type",
	}
	taskTable = tableSpec[models.MaintenanceTask]{
		name:        "assets.maintenance",
		schema:      schema.MaintenanceTask,
		filterField: "status",
	}
)

// TaskTabs - вкладки фильтра очереди в порядке отображения
var TaskTabs = []string{pipeline.All, models.TaskOverdue, models.TaskScheduled, models.TaskInProgress}

// AssetKPIs - карточки обзора объектов, всегда по полным коллекциям
type AssetKPIs struct {
	TotalAssets        int
	MaintenanceBacklog int
	BudgetUtilization  decimal.Decimal
	PredictedFailures  int
	Threshold          int
	TotalBudgeted      decimal.Decimal
	TotalActual        decimal.Decimal
}

// TabCount - число задач на вкладке фильтра
type TabCount struct {
	Status string
	Count  int
}

type MaintenanceQueue struct {
	View pipeline.View[models.MaintenanceTask]
	Tabs []TabCount
}

// AssetService определяет бизнес-логику панели управления объектами инфраструктуры
type AssetService interface {
	ListAssets(ctx context.Context, q ViewQuery) pipeline.View[models.Asset]
	KPIs(ctx context.Context, threshold int) (AssetKPIs, error)
	MaintenanceQueue(ctx context.Context, q ViewQuery) MaintenanceQueue
	BudgetLines(ctx context.Context) []models.BudgetLine
	ConditionMatrix(ctx context.Context, months int) ([]ConditionRow, error)
	Schedule(ctx context.Context, q ViewQuery) ProjectSchedule
	CostBreakdown(ctx context.Context) CostBreakdown
}

type assetService struct {
	stores   *Stores
	observer Observer
	logger   *logrus.Logger
}

func NewAssetService(stores *Stores, observer Observer, logger *logrus.Logger) AssetService {
	return &assetService{stores: stores, observer: observer, logger: logger}
}

func (s *assetService) ListAssets(_ context.Context, q ViewQuery) pipeline.View[models.Asset] {
	log := s.logger.WithFields(logrus.Fields{
		"service": "asset",
		"method":  "ListAssets",
		"filter":  q.Filter,
	})
	return assetTable.run(log, s.observer, s.stores.Assets.Set(), q)
}

// KPIs считает показатели обзора. threshold - порог прогноза отказов, 0..100.
func (s *assetService) KPIs(_ context.Context, threshold int) (AssetKPIs, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "asset",
		"method":    "KPIs",
		"threshold": threshold,
	})
	if threshold < 0 || threshold > 100 {
		log.Warn("Condition threshold out of range")
		return AssetKPIs{}, fmt.Errorf("service: condition threshold %d out of range 0..100", threshold)
	}

	assets := s.stores.Assets.Set()
	tasks := s.stores.MaintenanceTasks.Set()

	kpis := AssetKPIs{
		TotalAssets: assets.Len(),
		MaintenanceBacklog: tasks.Count(func(t models.MaintenanceTask) bool {
			return t.Status == models.TaskOverdue || t.Status == models.TaskScheduled
		}),
		PredictedFailures: assets.Count(func(a models.Asset) bool {
			return a.ConditionScore < threshold
		}),
		Threshold: threshold,
	}
	kpis.TotalBudgeted, kpis.TotalActual, kpis.BudgetUtilization = budgetUtilization(s.stores.BudgetLines.Set().Records())
	return kpis, nil
}

// budgetUtilization - сумма факта к сумме плана в процентах с одним знаком.
// Без плана утилизация равна нулю.
func budgetUtilization(lines []models.BudgetLine) (budgeted, actual, utilization decimal.Decimal) {
	for _, l := range lines {
		budgeted = budgeted.Add(l.Budgeted)
		actual = actual.Add(l.Actual)
	}
	if budgeted.IsZero() {
		return budgeted, actual, decimal.Zero
	}
	return budgeted, actual, actual.Div(budgeted).Mul(decimal.NewFromInt(100)).Round(1)
}

// MaintenanceQueue возвращает очередь задач. Счетчики вкладок берутся из полной коллекции.
func (s *assetService) MaintenanceQueue(_ context.Context, q ViewQuery) MaintenanceQueue {
	log := s.logger.WithFields(logrus.Fields{
		"service": "asset",
		"method":  "MaintenanceQueue",
		"filter":  q.Filter,
	})

	set := s.stores.MaintenanceTasks.Set()
	view := taskTable.run(log, s.observer, set, q)

	byStatus, err := pipeline.SummarizeSet(schema.MaintenanceTask, set, "status", nil)
	if err != nil {
		log.WithError(err).Warn("Failed to summarize maintenance tasks")
	}
	tabs := make([]TabCount, 0, len(TaskTabs))
	for _, status := range TaskTabs {
		count := byStatus.Count(status)
		if status == pipeline.All {
			count = set.Len()
		}
		tabs = append(tabs, TabCount{Status: status, Count: count})
	}
	return MaintenanceQueue{View: view, Tabs: tabs}
}

func (s *assetService) BudgetLines(_ context.Context) []models.BudgetLine {
	return s.stores.BudgetLines.Set().Records()
}
