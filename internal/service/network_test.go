package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/shenikar/road_intelligence/internal/metrics"
	"github.com/shenikar/road_intelligence/internal/models"
	"github.com/shenikar/road_intelligence/internal/pipeline"
	"github.com/shenikar/road_intelligence/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestNetworkService(t *testing.T) (service.NetworkService, *service.Stores) {
	stores := fixtureStores(t)
	return service.NewNetworkService(stores, metrics.New(), fixedClock, quietLogger()), stores
}

func TestNetworkListIncidents_NewestFirst(t *testing.T) {
	svc, _ := newTestNetworkService(t)

	view := svc.ListIncidents(context.Background(), service.ViewQuery{})

	assert.Equal(t, []string{"INC-2024-001", "INC-2024-002", "INC-2024-003", "INC-2024-004", "INC-2024-005"},
		ids(view.Records, func(n models.NetworkIncident) string { return n.ID }))

	resolved := svc.ListIncidents(context.Background(), service.ViewQuery{Filter: models.IncidentResolved})
	assert.Equal(t, []string{"INC-2024-005"}, ids(resolved.Records, func(n models.NetworkIncident) string { return n.ID }))
}

func TestNetworkListIncidents_AffectedLanesAscending(t *testing.T) {
	svc, _ := newTestNetworkService(t)

	view := svc.ListIncidents(context.Background(), service.ViewQuery{
		Sort: pipeline.SortState{Field: "affected_lanes", Direction: pipeline.Ascending},
	})

	assert.Equal(t, []string{"INC-2024-003", "INC-2024-005", "INC-2024-002", "INC-2024-001", "INC-2024-004"},
		ids(view.Records, func(n models.NetworkIncident) string { return n.ID }))
}

func TestListAlerts_TimeAgoRelativeToClock(t *testing.T) {
	svc, _ := newTestNetworkService(t)

	feed := svc.ListAlerts(context.Background(), service.ViewQuery{})

	assert.Equal(t, []string{"ALT-001", "ALT-005", "ALT-002", "ALT-003", "ALT-004"},
		ids(feed.View.Records, func(a models.Alert) string { return a.ID }))
	assert.Equal(t, "5m ago", feed.TimeAgo["ALT-001"])
	assert.Equal(t, "1h ago", feed.TimeAgo["ALT-004"])
	assert.Equal(t, testNow, feed.Now)
	assert.Equal(t, 2, feed.Severity.Count(models.SeverityHigh))
}

func TestListAlerts_SeverityFilterKeepsGlobalSummary(t *testing.T) {
	svc, _ := newTestNetworkService(t)

	feed := svc.ListAlerts(context.Background(), service.ViewQuery{Filter: models.SeverityHigh})

	assert.Equal(t, []string{"ALT-005", "ALT-002"}, ids(feed.View.Records, func(a models.Alert) string { return a.ID }))
	assert.Len(t, feed.TimeAgo, 2)
	assert.Equal(t, 5, feed.Severity.Total)
}

func TestNetworkKPIs_RecomputesActiveIncidents(t *testing.T) {
	svc, stores := newTestNetworkService(t)

	kpis := svc.KPIs(context.Background())

	require.Len(t, kpis, 6)
	assert.Equal(t, service.ActiveIncidentsKPI, kpis[1].ID)
	assert.Equal(t, "4", kpis[1].Value)
	assert.Equal(t, "94.2", kpis[0].Value)

	stored, _ := stores.KPIs.Set().Get(service.ActiveIncidentsKPI)
	assert.Equal(t, "12", stored.Value, "stored snapshot is not modified")
}

func TestTimeAgo(t *testing.T) {
	cases := []struct {
		name string
		ago  time.Duration
		want string
	}{
		{"seconds", 30 * time.Second, "Just now"},
		{"future", -time.Minute, "Just now"},
		{"one minute", time.Minute, "1m ago"},
		{"under an hour", 59*time.Minute + 59*time.Second, "59m ago"},
		{"one hour", time.Hour, "1h ago"},
		{"floors hours", 150 * time.Minute, "2h ago"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, service.TimeAgo(testNow, testNow.Add(-tc.ago)))
		})
	}
}
