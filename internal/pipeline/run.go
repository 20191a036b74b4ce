package pipeline

import (
	"errors"
	"fmt"
)

// Query - параметры, выбранные в представлении
type Query struct {
	FilterField string
	FilterValue string
	Sort        SortState
}

// View - результат конвейера для одного представления.
// Total - размер полной коллекции, из которой построен View.
type View[T any] struct {
	Records  []T
	Total    int
	Sort     SortState
	Empty    bool
	Degraded bool
	Notices  []string

	errs []error
}

// Err объединяет ошибки стадий, из-за которых View деградировал
func (v View[T]) Err() error {
	return errors.Join(v.errs...)
}

// Run применяет фильтр и сортировку к полной коллекции.
// Ошибка стадии не прерывает вызов: стадия пропускается, а View помечается как деградировавший,
// чтобы записи оставались видимыми без фильтра или без сортировки.
func Run[T any](schema *Schema[T], set Set[T], q Query) View[T] {
	view := View[T]{Total: set.Len()}
	records := set.Records()

	if q.FilterField != "" {
		filtered, err := Filter(schema, records, q.FilterField, q.FilterValue)
		if err != nil {
			view.degrade(err, fmt.Sprintf("filter on %q was not applied, showing all records", q.FilterField))
		} else {
			records = filtered
		}
	}

	sorted, err := Sort(schema, records, q.Sort)
	if err != nil {
		view.degrade(err, fmt.Sprintf("sort by %q was not applied, showing records unsorted", q.Sort.Field))
	} else {
		records = sorted
		view.Sort = q.Sort
		if view.Sort.Active() && view.Sort.Direction != Ascending {
			view.Sort.Direction = Descending
		}
	}

	view.Records = records
	view.Empty = len(records) == 0
	return view
}

func (v *View[T]) degrade(err error, notice string) {
	v.Degraded = true
	v.Notices = append(v.Notices, notice)
	v.errs = append(v.errs, err)
}
