package pipeline

import "fmt"

// All - значение фильтра, отключающее фильтрацию
const All = "all"

// Filter оставляет записи, у которых значение поля точно совпадает с value.
// Порядок сохраняется, входной срез не меняется.
func Filter[T any](schema *Schema[T], records []T, field, value string) ([]T, error) {
	f, err := schema.Field(field)
	if err != nil {
		return nil, err
	}
	if !f.Categorical() {
		return nil, fmt.Errorf("%w: %s field %q is %s, not categorical", ErrInvalidField, schema.Name(), field, f.Kind)
	}
	if value == All {
		return records, nil
	}

	out := make([]T, 0, len(records))
	for _, r := range records {
		if f.text(r) == value {
			out = append(out, r)
		}
	}
	return out, nil
}
