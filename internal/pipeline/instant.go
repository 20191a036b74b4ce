package pipeline

import (
	"fmt"
	"strings"
	"time"
)

// layouts, которые встречаются в источниках данных. Строки без зоны считаются UTC.
var instantLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"Jan 2, 2006",
}

// ParseInstant приводит строку даты/времени к каноническому моменту времени.
// Сравнивать такие строки лексически нельзя, форматы в источниках неоднородны.
func ParseInstant(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range instantLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidInstant, s)
}

// MustParseInstant - для статических фикстур
func MustParseInstant(s string) time.Time {
	t, err := ParseInstant(s)
	if err != nil {
		panic(err)
	}
	return t
}
