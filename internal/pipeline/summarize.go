package pipeline

import (
	"fmt"
	"maps"
)

// Scope указывает, по какой коллекции посчитана сводка
type Scope string

const (
	ScopeGlobal Scope = "global"
	ScopeView   Scope = "view"
)

// GroupStats - счетчики одной группы. AvailableCount задан,
// только если сводка считалась с предикатом доступности.
type GroupStats struct {
	Count          int  `json:"count"`
	AvailableCount *int `json:"available_count,omitempty"`
}

// Summary - сводка по значениям одного категориального поля
type Summary struct {
	Scope  Scope                 `json:"scope"`
	Total  int                   `json:"total"`
	Groups map[string]GroupStats `json:"groups"`
}

// Count возвращает размер группы, отсутствующая группа - 0
func (s Summary) Count(group string) int {
	return s.Groups[group].Count
}

// Available возвращает число доступных в группе
func (s Summary) Available(group string) int {
	g := s.Groups[group]
	if g.AvailableCount == nil {
		return 0
	}
	return *g.AvailableCount
}

// SummarizeSet считает сводку по полной коллекции (глобальные KPI)
func SummarizeSet[T any](schema *Schema[T], set Set[T], groupField string, available func(T) bool) (Summary, error) {
	return summarize(schema, ScopeGlobal, set.records, groupField, available)
}

// SummarizeView считает сводку по текущему представлению
func SummarizeView[T any](schema *Schema[T], view View[T], groupField string, available func(T) bool) (Summary, error) {
	return summarize(schema, ScopeView, view.Records, groupField, available)
}

func summarize[T any](schema *Schema[T], scope Scope, records []T, groupField string, available func(T) bool) (Summary, error) {
	f, err := schema.Field(groupField)
	if err != nil {
		return Summary{}, err
	}
	if !f.Categorical() {
		return Summary{}, fmt.Errorf("%w: %s field %q can not be grouped", ErrInvalidField, schema.Name(), groupField)
	}

	counts := make(map[string]int)
	avail := make(map[string]int)
	for _, r := range records {
		key := f.text(r)
		counts[key]++
		if available != nil && available(r) {
			avail[key]++
		}
	}

	groups := make(map[string]GroupStats, len(counts))
	for key, n := range counts {
		g := GroupStats{Count: n}
		if available != nil {
			a := avail[key]
			g.AvailableCount = &a
		}
		groups[key] = g
	}
	return Summary{Scope: scope, Total: len(records), Groups: groups}, nil
}

// Merge складывает сводки двух непересекающихся частей коллекции
func (s Summary) Merge(other Summary) Summary {
	out := Summary{
		Scope:  s.Scope,
		Total:  s.Total + other.Total,
		Groups: maps.Clone(s.Groups),
	}
	if out.Groups == nil {
		out.Groups = make(map[string]GroupStats, len(other.Groups))
	}
	for key, g := range other.Groups {
		cur, ok := out.Groups[key]
		if !ok {
			out.Groups[key] = copyStats(g)
			continue
		}
		merged := GroupStats{Count: cur.Count + g.Count}
		if cur.AvailableCount != nil || g.AvailableCount != nil {
			a := deref(cur.AvailableCount) + deref(g.AvailableCount)
			merged.AvailableCount = &a
		}
		out.Groups[key] = merged
	}
	return out
}

func copyStats(g GroupStats) GroupStats {
	if g.AvailableCount == nil {
		return g
	}
	a := *g.AvailableCount
	return GroupStats{Count: g.Count, AvailableCount: &a}
}

func deref(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}
