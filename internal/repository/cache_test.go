package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/shenikar/road_intelligence/internal/models"
	"github.com/shenikar/road_intelligence/internal/service/mocks"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fakeCache struct {
	data   map[string][]byte
	ttl    map[string]time.Duration
	getErr error
	setErr error
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: map[string][]byte{}, ttl: map[string]time.Duration{}}
}

func (c *fakeCache) Get(_ context.Context, key string) ([]byte, error) {
	if c.getErr != nil {
		return nil, c.getErr
	}
	val, ok := c.data[key]
	if !ok {
		return nil, ErrCacheMiss
	}
	return val, nil
}

func (c *fakeCache) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	if c.setErr != nil {
		return c.setErr
	}
	c.data[key] = value
	c.ttl[key] = ttl
	return nil
}

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	return logger
}

var testHotspots = []models.Hotspot{
	{ID: "1", Location: "Main Street Bridge", Severity: models.SeverityHigh, CongestionLevel: 76, AvgDelay: 8.2, AvgSpeed: 25, Volume: "3,890 veh/hr"},
}

func TestCachedSource_MissLoadsAndStores(t *testing.T) {
	// Подготовка
	ctrl := gomock.NewController(t)
	next := mocks.NewMockRecordSource(ctrl)
	cache := newFakeCache()
	src := NewCachedSource(next, cache, 5*time.Minute, quietLogger())

	// Ожидания
	next.EXPECT().Hotspots(gomock.Any()).Return(testHotspots, nil).Times(1)

	// Действие
	got, err := src.Hotspots(context.Background())

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, testHotspots, got)
	assert.Contains(t, cache.data, "snapshot:hotspots")
	assert.Equal(t, 5*time.Minute, cache.ttl["snapshot:hotspots"])
}

func TestCachedSource_HitSkipsSource(t *testing.T) {
	ctrl := gomock.NewController(t)
	next := mocks.NewMockRecordSource(ctrl)
	cache := newFakeCache()
	payload, err := json.Marshal(testHotspots)
	require.NoError(t, err)
	cache.data["snapshot:hotspots"] = payload
	src := NewCachedSource(next, cache, time.Minute, quietLogger())

	next.EXPECT().Hotspots(gomock.Any()).Times(0)

	got, err := src.Hotspots(context.Background())

	require.NoError(t, err)
	assert.Equal(t, testHotspots, got)
}

func TestCachedSource_CacheErrorFallsBack(t *testing.T) {
	ctrl := gomock.NewController(t)
	next := mocks.NewMockRecordSource(ctrl)
	cache := newFakeCache()
	cache.getErr = errors.New("dial tcp: connection refused")
	cache.setErr = errors.New("dial tcp: connection refused")
	src := NewCachedSource(next, cache, time.Minute, quietLogger())

	next.EXPECT().Hotspots(gomock.Any()).Return(testHotspots, nil).Times(1)

	got, err := src.Hotspots(context.Background())

	require.NoError(t, err)
	assert.Equal(t, testHotspots, got)
}

func TestCachedSource_CorruptEntryReloads(t *testing.T) {
	ctrl := gomock.NewController(t)
	next := mocks.NewMockRecordSource(ctrl)
	cache := newFakeCache()
	cache.data["snapshot:hotspots"] = []byte("{not json")
	logger, hook := logtest.NewNullLogger()
	src := NewCachedSource(next, cache, time.Minute, logger)

	next.EXPECT().Hotspots(gomock.Any()).Return(testHotspots, nil).Times(1)

	got, err := src.Hotspots(context.Background())

	require.NoError(t, err)
	assert.Equal(t, testHotspots, got)

	// Предупреждение о битой записи несет ошибку декодирования
	var warn *logrus.Entry
	for _, e := range hook.AllEntries() {
		if e.Message == "Failed to unmarshal cached snapshot" {
			warn = e
		}
	}
	require.NotNil(t, warn)
	assert.Equal(t, logrus.WarnLevel, warn.Level)
	decodeErr, ok := warn.Data[logrus.ErrorKey].(error)
	require.True(t, ok)
	var syntaxErr *json.SyntaxError
	assert.True(t, errors.As(decodeErr, &syntaxErr))
}

func TestCachedSource_SourceErrorIsReturned(t *testing.T) {
	ctrl := gomock.NewController(t)
	next := mocks.NewMockRecordSource(ctrl)
	cache := newFakeCache()
	src := NewCachedSource(next, cache, time.Minute, quietLogger())

	next.EXPECT().Hotspots(gomock.Any()).Return(nil, errors.New("db down")).Times(1)

	_, err := src.Hotspots(context.Background())

	assert.Error(t, err)
	assert.NotContains(t, cache.data, "snapshot:hotspots")
}

func TestCachedSource_MessagesRoundTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	next := mocks.NewMockRecordSource(ctrl)
	cache := newFakeCache()
	src := NewCachedSource(next, cache, time.Minute, quietLogger())
	messages := []models.Message{{
		ID: "MSG-001", Channel: models.ChannelDispatch, Sender: "DISPATCH-01", Content: "All units stand by",
		Timestamp: time.Date(2025, 9, 1, 16, 10, 0, 0, time.UTC), Priority: models.MessagePriorityHigh, Type: models.MessageBroadcast,
	}}

	next.EXPECT().Messages(gomock.Any()).Return(messages, nil).Times(1)

	first, err := src.Messages(context.Background())
	require.NoError(t, err)
	second, err := src.Messages(context.Background())
	require.NoError(t, err)

	assert.Equal(t, messages, first)
	assert.Equal(t, messages, second)
	assert.Contains(t, cache.data, "snapshot:messages")
}
