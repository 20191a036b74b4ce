package pipeline

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Kind определяет политику сравнения поля
type Kind int

const (
	KindString Kind = iota
	KindNumber
	KindDecimal
	KindTime
	KindRanked
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindDecimal:
		return "decimal"
	case KindTime:
		return "time"
	case KindRanked:
		return "ranked"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// RankTable задает явный порядок значений перечисления.
// Больший вес - более срочное значение.
type RankTable map[string]int

// Rank возвращает вес значения. Значения вне таблицы ниже любого известного.
func (r RankTable) Rank(value string) int {
	if w, ok := r[value]; ok {
		return w
	}
	return -1
}

// Field описывает одно типизированное поле записи
type Field[T any] struct {
	Name string
	Kind Kind

	text    func(T) string
	number  func(T) float64
	dec     func(T) decimal.Decimal
	instant func(T) time.Time
	rank    RankTable
}

// String - строковое или перечислимое поле, сравнение побайтовое
func String[T any](name string, fn func(T) string) Field[T] {
	return Field[T]{Name: name, Kind: KindString, text: fn}
}

// Number - числовое поле
func Number[T any](name string, fn func(T) float64) Field[T] {
	return Field[T]{Name: name, Kind: KindNumber, number: fn}
}

// Int - целочисленное поле, сравнивается как число
func Int[T any](name string, fn func(T) int) Field[T] {
	return Number(name, func(r T) float64 { return float64(fn(r)) })
}

// Decimal - денежное поле
func Decimal[T any](name string, fn func(T) decimal.Decimal) Field[T] {
	return Field[T]{Name: name, Kind: KindDecimal, dec: fn}
}

// Time - поле даты или метки времени, сравнивается как момент времени
func Time[T any](name string, fn func(T) time.Time) Field[T] {
	return Field[T]{Name: name, Kind: KindTime, instant: fn}
}

// Ranked - перечисление с явной таблицей рангов вместо алфавитного порядка
func Ranked[T any](name string, fn func(T) string, rank RankTable) Field[T] {
	return Field[T]{Name: name, Kind: KindRanked, text: fn, rank: rank}
}

// Categorical сообщает, можно ли фильтровать и группировать по полю
func (f Field[T]) Categorical() bool {
	return f.text != nil
}

// Text возвращает категориальное значение поля
func (f Field[T]) Text(r T) string {
	if f.text == nil {
		return ""
	}
	return f.text(r)
}

func (f Field[T]) compare(a, b T) int {
	switch f.Kind {
	case KindNumber:
		return cmp.Compare(f.number(a), f.number(b))
	case KindDecimal:
		return f.dec(a).Cmp(f.dec(b))
	case KindTime:
		return f.instant(a).Compare(f.instant(b))
	case KindRanked:
		return cmp.Compare(f.rank.Rank(f.text(a)), f.rank.Rank(f.text(b)))
	default:
		return strings.Compare(f.text(a), f.text(b))
	}
}

// Schema - фиксированный набор полей одного типа записей
type Schema[T any] struct {
	name   string
	id     func(T) string
	fields map[string]Field[T]
	names  []string
}

// NewSchema создает схему. Повтор имени поля - ошибка программиста, поэтому panic.
func NewSchema[T any](name string, id func(T) string, fields ...Field[T]) *Schema[T] {
	s := &Schema[T]{
		name:   name,
		id:     id,
		fields: make(map[string]Field[T], len(fields)),
		names:  make([]string, 0, len(fields)),
	}
	for _, f := range fields {
		if _, exists := s.fields[f.Name]; exists {
			panic(fmt.Sprintf("pipeline: schema %s declares field %q twice", name, f.Name))
		}
		s.fields[f.Name] = f
		s.names = append(s.names, f.Name)
	}
	return s
}

func (s *Schema[T]) Name() string {
	return s.name
}

// ID возвращает идентификатор записи
func (s *Schema[T]) ID(r T) string {
	return s.id(r)
}

// Field возвращает поле по имени или ErrInvalidField
func (s *Schema[T]) Field(name string) (Field[T], error) {
	f, ok := s.fields[name]
	if !ok {
		return Field[T]{}, fmt.Errorf("%w: %s has no field %q", ErrInvalidField, s.name, name)
	}
	return f, nil
}

// Fields возвращает имена полей в порядке объявления
func (s *Schema[T]) Fields() []string {
	return slices.Clone(s.names)
}
