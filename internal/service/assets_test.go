package service_test

import (
	"context"
	"testing"

	"github.com/shenikar/road_intelligence/internal/metrics"
	"github.com/shenikar/road_intelligence/internal/models"
	"github.com/shenikar/road_intelligence/internal/pipeline"
	"github.com/shenikar/road_intelligence/internal/service"
	"github.com/shenikar/road_intelligence/internal/service/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestAssetService(t *testing.T) (service.AssetService, *service.Stores) {
	stores := fixtureStores(t)
	return service.NewAssetService(stores, metrics.New(), quietLogger()), stores
}

func taskID(task models.MaintenanceTask) string { return task.ID }

func TestAssetKPIs(t *testing.T) {
	svc, _ := newTestAssetService(t)

	kpis, err := svc.KPIs(context.Background(), 60)

	require.NoError(t, err)
	assert.Equal(t, 8, kpis.TotalAssets)
	assert.Equal(t, 5, kpis.MaintenanceBacklog)
	assert.Equal(t, 2, kpis.PredictedFailures)
	assert.Equal(t, 60, kpis.Threshold)
	assert.True(t, decimal.RequireFromString("99.1").Equal(kpis.BudgetUtilization), kpis.BudgetUtilization.String())
	assert.True(t, decimal.NewFromInt(3230000).Equal(kpis.TotalBudgeted))
	assert.True(t, decimal.NewFromInt(3200000).Equal(kpis.TotalActual))
}

func TestAssetKPIs_ThresholdIsStrict(t *testing.T) {
	svc, stores := newTestAssetService(t)
	require.NoError(t, stores.Assets.Replace([]models.Asset{
		{ID: "a", ConditionScore: 45},
		{ID: "b", ConditionScore: 85},
		{ID: "c", ConditionScore: 60},
	}, testNow))

	kpis, err := svc.KPIs(context.Background(), 60)

	require.NoError(t, err)
	assert.Equal(t, 1, kpis.PredictedFailures)
}

func TestAssetKPIs_ThresholdOutOfRange(t *testing.T) {
	svc, _ := newTestAssetService(t)

	for _, threshold := range []int{-1, 101} {
		_, err := svc.KPIs(context.Background(), threshold)
		assert.Error(t, err, "threshold=%d", threshold)
	}
}

func TestAssetKPIs_NoBudget(t *testing.T) {
	svc, stores := newTestAssetService(t)
	require.NoError(t, stores.BudgetLines.Replace(nil, testNow))

	kpis, err := svc.KPIs(context.Background(), 60)

	require.NoError(t, err)
	assert.True(t, kpis.BudgetUtilization.IsZero())
}

func TestMaintenanceQueue_TabsFromFullCollection(t *testing.T) {
	svc, _ := newTestAssetService(t)

	queue := svc.MaintenanceQueue(context.Background(), service.ViewQuery{Filter: models.TaskOverdue})

	assert.Equal(t, []string{"task-001"}, ids(queue.View.Records, taskID))
	assert.Equal(t, []service.TabCount{
		{Status: pipeline.All, Count: 6},
		{Status: models.TaskOverdue, Count: 1},
		{Status: models.TaskScheduled, Count: 4},
		{Status: models.TaskInProgress, Count: 1},
	}, queue.Tabs)
}

func TestMaintenanceQueue_PriorityUsesRank(t *testing.T) {
	svc, _ := newTestAssetService(t)

	queue := svc.MaintenanceQueue(context.Background(), service.ViewQuery{
		Sort: pipeline.SortState{Field: "priority", Direction: pipeline.Descending},
	})

	assert.Equal(t, []string{"task-001", "task-002", "task-004", "task-003", "task-006", "task-005"}, ids(queue.View.Records, taskID))
}

func TestMaintenanceQueue_CostAscending(t *testing.T) {
	svc, _ := newTestAssetService(t)

	queue := svc.MaintenanceQueue(context.Background(), service.ViewQuery{
		Sort: pipeline.SortState{Field: "estimated_cost", Direction: pipeline.Ascending},
	})

	assert.Equal(t, []string{"task-005", "task-002", "task-003", "task-006", "task-001", "task-004"}, ids(queue.View.Records, taskID))
}

func TestMaintenanceQueue_EmptyCollection(t *testing.T) {
	svc, stores := newTestAssetService(t)
	require.NoError(t, stores.MaintenanceTasks.Replace([]models.MaintenanceTask{}, testNow))

	queue := svc.MaintenanceQueue(context.Background(), service.ViewQuery{Filter: models.TaskOverdue})
	kpis, err := svc.KPIs(context.Background(), 60)

	assert.True(t, queue.View.Empty)
	assert.False(t, queue.View.Degraded)
	for _, tab := range queue.Tabs {
		assert.Zero(t, tab.Count, tab.Status)
	}
	require.NoError(t, err)
	assert.Zero(t, kpis.MaintenanceBacklog)
}

func TestListAssets_InvalidFilterDegrades(t *testing.T) {
	// Подготовка
	stores := fixtureStores(t)
	ctrl := gomock.NewController(t)
	observer := mocks.NewMockObserver(ctrl)
	svc := service.NewAssetService(stores, observer, quietLogger())

	// Ожидания
	observer.EXPECT().ViewDegraded("assets.assets").Times(1)

	// Действие
	view := svc.ListAssets(context.Background(), service.ViewQuery{
		Filter: "Bridge",
		Sort:   pipeline.SortState{Field: "coordinates", Direction: pipeline.Ascending},
	})

	// Проверки
	assert.True(t, view.Degraded)
	assert.Equal(t, []string{"asset-001", "asset-006"}, ids(view.Records, func(a models.Asset) string { return a.ID }))
}

func TestListAssets_ConditionAscending(t *testing.T) {
	svc, _ := newTestAssetService(t)

	view := svc.ListAssets(context.Background(), service.ViewQuery{
		Sort: pipeline.SortState{Field: "condition_score", Direction: pipeline.Ascending},
	})

	require.Len(t, view.Records, 8)
	assert.Equal(t, "asset-003", view.Records[0].ID)
	assert.Equal(t, "asset-004", view.Records[7].ID)
}

func TestBudgetLines(t *testing.T) {
	svc, _ := newTestAssetService(t)

	lines := svc.BudgetLines(context.Background())

	require.Len(t, lines, 6)
	assert.Equal(t, "Jan", lines[0].Month)
	assert.Equal(t, "Jun", lines[5].Month)
}
