package store

import (
	"sync"
	"time"

	"github.com/shenikar/road_intelligence/internal/pipeline"
)

// Store хранит текущий снимок коллекции. Снимок неизменяем:
// обновление заменяет его целиком, правка одной записи создает новый снимок.
type Store[T any] struct {
	schema *pipeline.Schema[T]

	mu       sync.RWMutex
	set      pipeline.Set[T]
	loadedAt time.Time
}

func New[T any](schema *pipeline.Schema[T]) *Store[T] {
	return &Store[T]{schema: schema}
}

func (s *Store[T]) Schema() *pipeline.Schema[T] {
	return s.schema
}

// Set возвращает текущий полный снимок
func (s *Store[T]) Set() pipeline.Set[T] {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.set
}

// LoadedAt - время последней полной замены
func (s *Store[T]) LoadedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadedAt
}

// Replace заменяет снимок целиком. При ошибке остается прежний снимок.
func (s *Store[T]) Replace(records []T, at time.Time) error {
	set, err := pipeline.NewSet(s.schema, records)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.set = set
	s.loadedAt = at
	s.mu.Unlock()
	return nil
}

// Upsert заменяет запись с тем же id или добавляет новую.
// Возвращает true, если запись была заменена.
func (s *Store[T]) Upsert(record T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, replaced := s.set.With(s.schema, record)
	s.set = next
	return replaced
}

// Update атомарно читает запись по id и записывает результат fn.
// fn возвращает false, чтобы отказаться от изменения.
func (s *Store[T]) Update(id string, fn func(current T) (T, bool)) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	current, ok := s.set.Get(id)
	if !ok {
		var zero T
		return zero, false
	}
	next, apply := fn(current)
	if !apply {
		return current, false
	}
	s.set, _ = s.set.With(s.schema, next)
	return next, true
}
