package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/shenikar/road_intelligence/internal/metrics"
	"github.com/shenikar/road_intelligence/internal/models"
	"github.com/shenikar/road_intelligence/internal/pipeline"
	"github.com/shenikar/road_intelligence/internal/service"
	"github.com/shenikar/road_intelligence/internal/webhook"
	webhook_mocks "github.com/shenikar/road_intelligence/internal/webhook/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestEmergencyService(t *testing.T) (service.EmergencyService, *service.Stores, *webhook_mocks.MockWebhookPublisher) {
	ctrl := gomock.NewController(t)
	publisher := webhook_mocks.NewMockWebhookPublisher(ctrl)
	stores := fixtureStores(t)
	return service.NewEmergencyService(stores, publisher, metrics.New(), fixedClock, quietLogger()), stores, publisher
}

func incidentID(i models.Incident) string { return i.ID }
func resourceID(r models.Resource) string { return r.ID }

func TestListIncidents_DefaultSortByPriorityDesc(t *testing.T) {
	svc, _, _ := newTestEmergencyService(t)

	view := svc.ListIncidents(context.Background(), service.ViewQuery{})

	assert.Equal(t, []string{"INC-005", "INC-004", "INC-003", "INC-002", "INC-001"}, ids(view.Records, incidentID))
	assert.Equal(t, pipeline.SortState{Field: "priority", Direction: pipeline.Descending}, view.Sort)
	assert.False(t, view.Degraded)
}

func TestListIncidents_ToggleDefaultSort(t *testing.T) {
	svc, _, _ := newTestEmergencyService(t)

	view := svc.ListIncidents(context.Background(), service.ViewQuery{Toggle: "priority"})

	assert.Equal(t, []string{"INC-001", "INC-002", "INC-003", "INC-004", "INC-005"}, ids(view.Records, incidentID))
	assert.Equal(t, pipeline.SortState{Field: "priority", Direction: pipeline.Ascending}, view.Sort)
}

func TestListIncidents_Toggle(t *testing.T) {
	cases := []struct {
		name  string
		query service.ViewQuery
		want  pipeline.SortState
	}{
		{
			name:  "same field flips desc",
			query: service.ViewQuery{Sort: pipeline.SortState{Field: "priority", Direction: pipeline.Descending}, Toggle: "priority"},
			want:  pipeline.SortState{Field: "priority", Direction: pipeline.Ascending},
		},
		{
			name:  "same field flips asc",
			query: service.ViewQuery{Sort: pipeline.SortState{Field: "priority", Direction: pipeline.Ascending}, Toggle: "priority"},
			want:  pipeline.SortState{Field: "priority", Direction: pipeline.Descending},
		},
		{
			name:  "new field resets to desc",
			query: service.ViewQuery{Sort: pipeline.SortState{Field: "priority", Direction: pipeline.Ascending}, Toggle: "severity"},
			want:  pipeline.SortState{Field: "severity", Direction: pipeline.Descending},
		},
		{
			name:  "new field over default",
			query: service.ViewQuery{Toggle: "reported_at"},
			want:  pipeline.SortState{Field: "reported_at", Direction: pipeline.Descending},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc, _, _ := newTestEmergencyService(t)

			view := svc.ListIncidents(context.Background(), tc.query)

			assert.Equal(t, tc.want, view.Sort)
			assert.False(t, view.Degraded)
		})
	}
}

func TestListIncidents_FilterAndAscendingSort(t *testing.T) {
	svc, _, _ := newTestEmergencyService(t)

	view := svc.ListIncidents(context.Background(), service.ViewQuery{
		Filter: pipeline.All,
		Sort:   pipeline.SortState{Field: "reported_at", Direction: pipeline.Ascending},
	})
	assert.Equal(t, []string{"INC-004", "INC-003", "INC-002", "INC-001", "INC-005"}, ids(view.Records, incidentID))

	active := svc.ListIncidents(context.Background(), service.ViewQuery{Filter: models.IncidentActive})
	assert.Equal(t, []string{"INC-001"}, ids(active.Records, incidentID))
	assert.Equal(t, 5, active.Total)
}

func TestListIncidents_SeveritySortUsesRank(t *testing.T) {
	svc, _, _ := newTestEmergencyService(t)

	view := svc.ListIncidents(context.Background(), service.ViewQuery{
		Sort: pipeline.SortState{Field: "severity", Direction: pipeline.Descending},
	})

	// high, medium (INC-002, INC-004 в исходном порядке), low (INC-003, INC-005)
	assert.Equal(t, []string{"INC-001", "INC-002", "INC-004", "INC-003", "INC-005"}, ids(view.Records, incidentID))
}

func TestListIncidents_InvalidSortDegrades(t *testing.T) {
	svc, _, _ := newTestEmergencyService(t)

	view := svc.ListIncidents(context.Background(), service.ViewQuery{
		Sort: pipeline.SortState{Field: "response_time", Direction: pipeline.Ascending},
	})

	assert.True(t, view.Degraded)
	assert.Len(t, view.Notices, 1)
	assert.ErrorIs(t, view.Err(), pipeline.ErrInvalidField)
	assert.Equal(t, []string{"INC-001", "INC-002", "INC-003", "INC-004", "INC-005"}, ids(view.Records, incidentID))
}

func TestListIncidents_NoMatchIsEmpty(t *testing.T) {
	svc, _, _ := newTestEmergencyService(t)

	view := svc.ListIncidents(context.Background(), service.ViewQuery{Filter: "Active"})

	assert.True(t, view.Empty)
	assert.False(t, view.Degraded)
	assert.Empty(t, view.Records)
}

func TestListResources_PoliceStatsFromGlobalSet(t *testing.T) {
	svc, _, _ := newTestEmergencyService(t)

	board := svc.ListResources(context.Background(), service.ViewQuery{Filter: models.ResourcePolice})

	assert.Equal(t, []string{"POLICE-01", "POLICE-02"}, ids(board.View.Records, resourceID))
	require.Len(t, board.Stats, 4)
	assert.Equal(t, service.TypeStats{Type: models.ResourcePolice, Available: 1, Total: 2}, board.Stats[0])
	assert.Equal(t, service.TypeStats{Type: models.ResourceFire, Available: 0, Total: 1}, board.Stats[1])
	assert.Equal(t, service.TypeStats{Type: models.ResourceMaintenance, Available: 1, Total: 1}, board.Stats[3])
	assert.Equal(t, "INC-001", board.Assignments["POLICE-01"].ID)
	assert.NotContains(t, board.Assignments, "POLICE-02")
}

func TestListResources_DanglingAssignmentOmitted(t *testing.T) {
	svc, stores, _ := newTestEmergencyService(t)
	missing := "INC-404"
	stores.Resources.Upsert(models.Resource{ID: "FIRE-09", Type: models.ResourceFire, Status: models.ResourceEnRoute, AssignedIncident: &missing})

	board := svc.ListResources(context.Background(), service.ViewQuery{Filter: models.ResourceFire})

	assert.Equal(t, []string{"FIRE-03", "FIRE-09"}, ids(board.View.Records, resourceID))
	assert.Contains(t, board.Assignments, "FIRE-03")
	assert.NotContains(t, board.Assignments, "FIRE-09")
}

func TestDispatchResource_Success(t *testing.T) {
	// Подготовка
	svc, stores, publisher := newTestEmergencyService(t)
	ctx := context.Background()

	// Ожидания
	publisher.EXPECT().
		Publish(ctx, gomock.Any()).
		Do(func(_ context.Context, event webhook.WebhookEvent) {
			assert.Equal(t, webhook.EventResourceDispatched, event.Type)
			assert.Equal(t, "POLICE-02", event.ResourceID)
			assert.Equal(t, "INC-002", event.IncidentID)
			assert.Equal(t, "4 min", event.ETA)
			assert.Equal(t, testNow, event.Timestamp)
		}).
		Return(nil).
		Times(1)

	// Действие
	result, err := svc.DispatchResource(ctx, "POLICE-02", service.DispatchOrder{IncidentID: "INC-002", ETA: "4 min"})

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, models.ResourceDispatched, result.Resource.Status)
	require.NotNil(t, result.Resource.AssignedIncident)
	assert.Equal(t, "INC-002", *result.Resource.AssignedIncident)
	assert.Equal(t, 3, result.Incident.AssignedUnits)

	stored, _ := stores.Resources.Set().Get("POLICE-02")
	assert.Equal(t, models.ResourceDispatched, stored.Status)
	assert.Equal(t, 1, svc.Summary(ctx).AvailableUnits)
}

func TestDispatchResource_BusyResource(t *testing.T) {
	svc, stores, publisher := newTestEmergencyService(t)
	publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	_, err := svc.DispatchResource(context.Background(), "MED-07", service.DispatchOrder{IncidentID: "INC-002", ETA: "1 min"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, service.ErrConflict))
	incident, _ := stores.Incidents.Set().Get("INC-002")
	assert.Equal(t, 2, incident.AssignedUnits)
}

func TestDispatchResource_NotFound(t *testing.T) {
	svc, _, publisher := newTestEmergencyService(t)
	publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	_, err := svc.DispatchResource(context.Background(), "POLICE-99", service.DispatchOrder{IncidentID: "INC-002"})
	assert.ErrorIs(t, err, service.ErrNotFound)

	_, err = svc.DispatchResource(context.Background(), "POLICE-02", service.DispatchOrder{IncidentID: "INC-999"})
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestDispatchResource_SnapshotSwappedDuringDispatch(t *testing.T) {
	svc, stores, publisher := newTestEmergencyService(t)
	publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	var (
		done = make(chan struct{})
		err  error
	)
	stores.Batch(func() {
		go func() {
			defer close(done)
			_, err = svc.DispatchResource(context.Background(), "POLICE-02", service.DispatchOrder{IncidentID: "INC-002", ETA: "4 min"})
		}()
		// новый снимок без INC-002 приходит, пока диспетчеризация ждет
		remaining := []models.Incident{}
		for _, i := range stores.Incidents.Set().Records() {
			if i.ID != "INC-002" {
				remaining = append(remaining, i)
			}
		}
		require.NoError(t, stores.Incidents.Replace(remaining, testNow))
	})
	<-done

	assert.ErrorIs(t, err, service.ErrNotFound)
	resource, ok := stores.Resources.Set().Get("POLICE-02")
	require.True(t, ok)
	assert.Equal(t, models.ResourceAvailable, resource.Status)
	assert.Nil(t, resource.AssignedIncident)
}

func TestDispatchResource_PublishFailureDoesNotFail(t *testing.T) {
	svc, _, publisher := newTestEmergencyService(t)
	publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("redis down")).Times(1)

	result, err := svc.DispatchResource(context.Background(), "MAINT-12", service.DispatchOrder{IncidentID: "INC-005", ETA: "12 min"})

	require.NoError(t, err)
	assert.Equal(t, "12 min", result.Resource.ETA)
}

func TestReportIncident(t *testing.T) {
	svc, _, publisher := newTestEmergencyService(t)
	ctx := context.Background()
	publisher.EXPECT().Publish(ctx, gomock.Any()).Return(nil).Times(1)

	incident, err := svc.ReportIncident(ctx, service.NewIncident{
		Type:     "Debris on Road",
		Severity: models.SeverityMedium,
		Location: "Queensboro Bridge",
		Priority: 2,
	})

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(incident.ID, "INC-"))
	assert.Len(t, incident.ID, 12)
	assert.Equal(t, models.IncidentActive, incident.Status)
	assert.Equal(t, testNow, incident.ReportedAt)

	view := svc.ListIncidents(ctx, service.ViewQuery{Filter: models.IncidentActive})
	assert.ElementsMatch(t, []string{"INC-001", incident.ID}, ids(view.Records, incidentID))
}

func TestSummary_UsesGlobalCollections(t *testing.T) {
	svc, _, _ := newTestEmergencyService(t)

	summary := svc.Summary(context.Background())

	assert.Equal(t, 4, summary.ActiveIncidents)
	assert.InDelta(t, 6.5, summary.AvgResponseMinutes, 1e-9)
	assert.Equal(t, 2, summary.AvailableUnits)
	assert.Equal(t, 5, summary.TotalUnits)
	assert.Equal(t, 2, summary.CriticalAlerts)
	assert.Equal(t, service.AlertLevelModerate, summary.AlertLevel)
	assert.Equal(t, 1, summary.IncidentsByStatus.Count(models.IncidentResolved))
	assert.Equal(t, 2, summary.IncidentsBySeverity.Count(models.SeverityLow))
	assert.Equal(t, pipeline.ScopeGlobal, summary.IncidentsByStatus.Scope)
}

func TestSummary_IgnoresNonFiniteResponseTimes(t *testing.T) {
	svc, stores, _ := newTestEmergencyService(t)
	stores.Incidents.Upsert(models.Incident{ID: "INC-090", Status: models.IncidentActive, Priority: 5, ResponseTime: "NaN min"})
	stores.Incidents.Upsert(models.Incident{ID: "INC-091", Status: models.IncidentActive, Priority: 5, ResponseTime: "Inf min"})

	summary := svc.Summary(context.Background())

	assert.InDelta(t, 6.5, summary.AvgResponseMinutes, 1e-9)
	_, err := json.Marshal(summary)
	assert.NoError(t, err)
}

func TestAlertLevelFor(t *testing.T) {
	cases := map[int]string{
		0: service.AlertLevelLow,
		1: service.AlertLevelModerate,
		2: service.AlertLevelModerate,
		3: service.AlertLevelHigh,
		9: service.AlertLevelHigh,
	}
	for critical, want := range cases {
		assert.Equal(t, want, service.AlertLevelFor(critical), "critical=%d", critical)
	}
}

func TestParseMinutes(t *testing.T) {
	v, ok := service.ParseMinutes("3.2 min")
	assert.True(t, ok)
	assert.InDelta(t, 3.2, v, 1e-9)

	v, ok = service.ParseMinutes(" 12 ")
	assert.True(t, ok)
	assert.InDelta(t, 12.0, v, 1e-9)

	for _, bad := range []string{"", "soon", "-1 min", "NaN min", "Inf min", "-Inf", "+Inf min"} {
		_, ok := service.ParseMinutes(bad)
		assert.False(t, ok, bad)
	}
}
