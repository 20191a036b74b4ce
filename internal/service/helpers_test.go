package service_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shenikar/road_intelligence/internal/metrics"
	"github.com/shenikar/road_intelligence/internal/repository"
	"github.com/shenikar/road_intelligence/internal/service"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 9, 1, 16, 15, 0, 0, time.UTC)

func fixedClock() time.Time { return testNow }

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах
	return logger
}

// fixtureStores загружает встроенный набор данных в новые хранилища
func fixtureStores(t *testing.T) *service.Stores {
	t.Helper()
	stores := service.NewStores()
	loader := service.NewLoader(repository.NewFixtureSource(fixedClock), stores, metrics.New(), fixedClock, quietLogger())
	_, err := loader.Load(context.Background())
	require.NoError(t, err)
	return stores
}

func ids[T any](records []T, id func(T) string) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = id(r)
	}
	return out
}
