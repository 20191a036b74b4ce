package pipeline

import (
	"fmt"
	"maps"
	"slices"
)

// Set - полная неизменяемая коллекция записей с уникальными идентификаторами.
// Глобальные KPI считаются только по Set, а не по отфильтрованному View.
type Set[T any] struct {
	records []T
	index   map[string]int
}

// NewSet копирует записи и проверяет уникальность идентификаторов
func NewSet[T any](schema *Schema[T], records []T) (Set[T], error) {
	cloned := slices.Clone(records)
	index := make(map[string]int, len(cloned))
	for i, r := range cloned {
		id := schema.ID(r)
		if _, dup := index[id]; dup {
			return Set[T]{}, fmt.Errorf("%w: %s %q", ErrDuplicateID, schema.Name(), id)
		}
		index[id] = i
	}
	return Set[T]{records: cloned, index: index}, nil
}

func (s Set[T]) Len() int {
	return len(s.records)
}

// Records возвращает копию записей в исходном порядке
func (s Set[T]) Records() []T {
	if s.records == nil {
		return []T{}
	}
	return slices.Clone(s.records)
}

// Get ищет запись по идентификатору
func (s Set[T]) Get(id string) (T, bool) {
	i, ok := s.index[id]
	if !ok {
		var zero T
		return zero, false
	}
	return s.records[i], true
}

// Count считает записи, удовлетворяющие предикату
func (s Set[T]) Count(pred func(T) bool) int {
	n := 0
	for _, r := range s.records {
		if pred(r) {
			n++
		}
	}
	return n
}

// With возвращает новый Set, где запись заменяет существующую с тем же id
// или добавляется в конец. Исходный Set не меняется.
func (s Set[T]) With(schema *Schema[T], record T) (Set[T], bool) {
	id := schema.ID(record)
	records := slices.Clone(s.records)
	if i, ok := s.index[id]; ok {
		records[i] = record
		return Set[T]{records: records, index: s.index}, true
	}
	index := maps.Clone(s.index)
	if index == nil {
		index = make(map[string]int, 1)
	}
	index[id] = len(records)
	records = append(records, record)
	return Set[T]{records: records, index: index}, false
}
