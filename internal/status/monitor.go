package status

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// State - последний снятый срез состояния
type State struct {
	Connection  Connection `json:"connection"`
	AlertCount  int        `json:"alert_count"`
	SampledAt   time.Time  `json:"sampled_at"`
	LastUpdated time.Time  `json:"last_updated"`
}

// Monitor периодически опрашивает Provider. Таймеры живут, пока жив контекст Start.
type Monitor struct {
	provider           Provider
	connectionInterval time.Duration
	alertInterval      time.Duration
	logger             *logrus.Logger

	mu    sync.RWMutex
	state State
	done  chan struct{}
}

func NewMonitor(provider Provider, connectionInterval, alertInterval time.Duration, logger *logrus.Logger) *Monitor {
	m := &Monitor{
		provider:           provider,
		connectionInterval: connectionInterval,
		alertInterval:      alertInterval,
		logger:             logger,
		done:               make(chan struct{}),
	}
	now := provider.Now()
	m.state = State{
		Connection:  provider.Connection(),
		AlertCount:  provider.AlertCount(),
		SampledAt:   now,
		LastUpdated: now,
	}
	return m
}

// Start запускает опрос в горутине. Отмена ctx останавливает оба таймера.
func (m *Monitor) Start(ctx context.Context) {
	m.logger.Info("Starting status monitor...")
	go func() {
		defer close(m.done)
		connTicker := time.NewTicker(m.connectionInterval)
		defer connTicker.Stop()
		alertTicker := time.NewTicker(m.alertInterval)
		defer alertTicker.Stop()

		for {
			select {
			case <-ctx.Done():
				m.logger.Info("Stopping status monitor.")
				return
			case <-connTicker.C:
				conn := m.provider.Connection()
				m.mu.Lock()
				m.state.Connection = conn
				m.state.SampledAt = m.provider.Now()
				m.mu.Unlock()
				m.logger.WithField("connection", conn).Debug("Connection status sampled")
			case <-alertTicker.C:
				count := m.provider.AlertCount()
				m.mu.Lock()
				m.state.AlertCount = count
				m.state.SampledAt = m.provider.Now()
				m.mu.Unlock()
			}
		}
	}()
}

// Done закрывается после остановки опроса
func (m *Monitor) Done() <-chan struct{} {
	return m.done
}

// Current возвращает копию последнего состояния
func (m *Monitor) Current() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state
}

// MarkUpdated фиксирует время последнего обновления данных
func (m *Monitor) MarkUpdated(at time.Time) {
	m.mu.Lock()
	m.state.LastUpdated = at
	m.mu.Unlock()
}
