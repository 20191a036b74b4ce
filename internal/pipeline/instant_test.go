package pipeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInstant(t *testing.T) {
	cases := map[string]time.Time{
		"2025-09-01T16:08:30":       time.Date(2025, 9, 1, 16, 8, 30, 0, time.UTC),
		"2024-08-15":                time.Date(2024, 8, 15, 0, 0, 0, 0, time.UTC),
		"2024-09-01T16:05:00Z":      time.Date(2024, 9, 1, 16, 5, 0, 0, time.UTC),
		"2024-09-01T18:05:00+02:00": time.Date(2024, 9, 1, 16, 5, 0, 0, time.UTC),
		" 2024-09-01 16:05 ":        time.Date(2024, 9, 1, 16, 5, 0, 0, time.UTC),
	}
	for in, want := range cases {
		got, err := ParseInstant(in)
		require.NoError(t, err, in)
		assert.True(t, want.Equal(got), "%s: got %s", in, got)
	}
}

func TestParseInstant_Invalid(t *testing.T) {
	_, err := ParseInstant("yesterday")
	assert.ErrorIs(t, err, ErrInvalidInstant)
}

func TestMustParseInstant_Panics(t *testing.T) {
	assert.Panics(t, func() { MustParseInstant("13/45/2024") })
}
