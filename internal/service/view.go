package service

import (
	"github.com/shenikar/road_intelligence/internal/pipeline"
	"github.com/sirupsen/logrus"
)

// ViewQuery - параметры представления, выбранные пользователем.
// Пустой Sort означает сортировку по умолчанию для таблицы, пустой Filter - pipeline.All.
// Toggle применяется к уже выбранной сортировке, в том числе к сортировке по умолчанию.
type ViewQuery struct {
	Filter string
	Sort   pipeline.SortState
	Toggle string
}

// tableSpec описывает одну таблицу панели
type tableSpec[T any] struct {
	name        string
	schema      *pipeline.Schema[T]
	filterField string
	defaultSort pipeline.SortState
}

// resolve подставляет значения по умолчанию и применяет toggle к активной сортировке
func (t tableSpec[T]) resolve(q ViewQuery) pipeline.Query {
	sort := q.Sort
	if !sort.Active() {
		sort = t.defaultSort
	}
	if q.Toggle != "" {
		sort = sort.Toggle(q.Toggle)
	}
	filter := q.Filter
	if filter == "" {
		filter = pipeline.All
	}
	return pipeline.Query{
		FilterField: t.filterField,
		FilterValue: filter,
		Sort:        sort,
	}
}

func (t tableSpec[T]) run(log *logrus.Entry, observer Observer, set pipeline.Set[T], q ViewQuery) pipeline.View[T] {
	view := pipeline.Run(t.schema, set, t.resolve(q))
	if view.Degraded {
		log.WithError(view.Err()).WithField("view", t.name).Warn("View degraded")
		observer.ViewDegraded(t.name)
	}
	return view
}
