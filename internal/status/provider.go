package status

import (
	"math/rand/v2"
	"sync"
	"time"
)

// Connection - состояние канала данных реального времени
type Connection string

const (
	Connected    Connection = "connected"
	Connecting   Connection = "connecting"
	Disconnected Connection = "disconnected"
)

var connections = []Connection{Connected, Connecting, Disconnected}

// Provider поставляет имитируемое состояние "живых" данных.
// В тестах подставляется StaticProvider вместо случайного.
type Provider interface {
	Connection() Connection
	AlertCount() int
	Now() time.Time
}

// RandomProvider выбирает состояние случайно, как в демонстрационном режиме
type RandomProvider struct {
	mu  sync.Mutex
	rng *rand.Rand
	now func() time.Time
}

func NewRandomProvider(seed uint64) *RandomProvider {
	return &RandomProvider{
		rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		now: time.Now,
	}
}

func (p *RandomProvider) Connection() Connection {
	p.mu.Lock()
	defer p.mu.Unlock()
	return connections[p.rng.IntN(len(connections))]
}

// AlertCount возвращает 0..4
func (p *RandomProvider) AlertCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.rng.IntN(5)
}

func (p *RandomProvider) Now() time.Time {
	return p.now()
}

// StaticProvider всегда возвращает заданные значения
type StaticProvider struct {
	Conn   Connection
	Alerts int
	At     time.Time
}

func (p StaticProvider) Connection() Connection { return p.Conn }
func (p StaticProvider) AlertCount() int        { return p.Alerts }
func (p StaticProvider) Now() time.Time         { return p.At }
