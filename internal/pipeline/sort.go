package pipeline

import "slices"

// Direction - направление сортировки
type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

// DefaultDirection применяется при выборе нового поля сортировки:
// сначала самое срочное или самое свежее.
const DefaultDirection = Descending

// ParseDirection разбирает "asc"/"desc"
func ParseDirection(s string) (Direction, bool) {
	switch Direction(s) {
	case Ascending:
		return Ascending, true
	case Descending:
		return Descending, true
	}
	return "", false
}

// SortState - выбранные в интерфейсе поле и направление.
// Нулевое значение означает "без сортировки".
type SortState struct {
	Field     string    `json:"field,omitempty"`
	Direction Direction `json:"direction,omitempty"`
}

func (s SortState) Active() bool {
	return s.Field != ""
}

// Toggle: то же поле меняет направление, новое поле сбрасывает его на DefaultDirection
func (s SortState) Toggle(field string) SortState {
	if s.Field == field {
		if s.Direction == Ascending {
			return SortState{Field: field, Direction: Descending}
		}
		return SortState{Field: field, Direction: Ascending}
	}
	return SortState{Field: field, Direction: DefaultDirection}
}

// Sort возвращает новый упорядоченный срез. Сортировка стабильная:
// записи с равными ключами сохраняют взаимный порядок при любом направлении.
func Sort[T any](schema *Schema[T], records []T, state SortState) ([]T, error) {
	if !state.Active() {
		return slices.Clone(records), nil
	}
	f, err := schema.Field(state.Field)
	if err != nil {
		return nil, err
	}

	out := slices.Clone(records)
	desc := state.Direction != Ascending
	slices.SortStableFunc(out, func(a, b T) int {
		c := f.compare(a, b)
		if desc {
			return -c
		}
		return c
	})
	return out, nil
}
