package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shenikar/road_intelligence/internal/models"
	"github.com/shenikar/road_intelligence/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func messageID(m models.Message) string { return m.ID }

func TestListMessages_Channel(t *testing.T) {
	svc, _, _ := newTestEmergencyService(t)

	feed := svc.ListMessages(context.Background(), service.ViewQuery{Filter: models.ChannelDispatch})

	assert.Equal(t, []string{"MSG-001", "MSG-004"}, ids(feed.View.Records, messageID))
	assert.Equal(t, "5 min ago", feed.TimeAgo["MSG-001"])
	assert.Equal(t, "2 min ago", feed.TimeAgo["MSG-004"])

	counts := make(map[string]int, len(feed.Channels))
	for _, c := range feed.Channels {
		counts[c.Channel.ID] = c.Count
	}
	assert.Equal(t, map[string]int{
		models.ChannelDispatch:    2,
		models.ChannelPolice:      2,
		models.ChannelFire:        1,
		models.ChannelMedical:     0,
		models.ChannelMaintenance: 0,
	}, counts)
}

func TestListMessages_EmptyFilterListsAll(t *testing.T) {
	svc, _, _ := newTestEmergencyService(t)

	feed := svc.ListMessages(context.Background(), service.ViewQuery{})

	assert.Equal(t, []string{"MSG-001", "MSG-002", "MSG-003", "MSG-004", "MSG-005"}, ids(feed.View.Records, messageID))
}

func TestListMessages_EmptyChannel(t *testing.T) {
	svc, _, _ := newTestEmergencyService(t)

	feed := svc.ListMessages(context.Background(), service.ViewQuery{Filter: models.ChannelMedical})

	assert.Empty(t, feed.View.Records)
	assert.Empty(t, feed.TimeAgo)
}

func TestSendMessage_AppendsToChannel(t *testing.T) {
	svc, stores, _ := newTestEmergencyService(t)
	ctx := context.Background()

	message, err := svc.SendMessage(ctx, service.NewMessage{Channel: models.ChannelFire, Content: "  Units en route  "})

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(message.ID, "MSG-"))
	assert.Len(t, message.ID, 12)
	assert.Equal(t, "Units en route", message.Content)
	assert.Equal(t, service.OperatorID, message.Sender)
	assert.Equal(t, models.MessagePriorityNormal, message.Priority)
	assert.Equal(t, models.MessageBroadcast, message.Type)
	assert.Equal(t, testNow, message.Timestamp)
	assert.Equal(t, 6, stores.Messages.Set().Len())

	feed := svc.ListMessages(ctx, service.ViewQuery{Filter: models.ChannelFire})
	assert.Equal(t, []string{"MSG-003", message.ID}, ids(feed.View.Records, messageID))
	assert.Equal(t, "Just now", feed.TimeAgo[message.ID])
}

func TestSendMessage_UnknownChannel(t *testing.T) {
	svc, stores, _ := newTestEmergencyService(t)

	_, err := svc.SendMessage(context.Background(), service.NewMessage{Channel: "radio", Content: "hello"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, service.ErrNotFound))
	assert.Equal(t, 5, stores.Messages.Set().Len())
}

func TestMessageAge(t *testing.T) {
	testCases := []struct {
		name string
		ago  time.Duration
		want string
	}{
		{"under a minute", 30 * time.Second, "Just now"},
		{"one minute", time.Minute, "1 min ago"},
		{"several minutes", 7*time.Minute + 10*time.Second, "7 min ago"},
		{"future timestamp", -time.Minute, "Just now"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, service.MessageAge(testNow, testNow.Add(-tc.ago)))
		})
	}
}

func TestReportIncident_KeepsCoordinates(t *testing.T) {
	svc, _, publisher := newTestEmergencyService(t)
	ctx := context.Background()
	publisher.EXPECT().Publish(ctx, gomock.Any()).Return(nil)

	incident, err := svc.ReportIncident(ctx, service.NewIncident{
		Type:        "Stalled Vehicle",
		Severity:    models.SeverityLow,
		Location:    "FDR Drive",
		Priority:    3,
		Coordinates: &models.Coordinates{Lat: 40.7128, Lng: -74.006},
	})

	require.NoError(t, err)
	require.NotNil(t, incident.Coordinates)
	assert.Equal(t, 40.7128, incident.Coordinates.Lat)
	assert.Equal(t, -74.006, incident.Coordinates.Lng)
}
