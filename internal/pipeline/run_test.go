package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_FilterAndSort(t *testing.T) {
	view := Run(rowSchema(), scenarioSet(t), Query{
		FilterField: "status",
		FilterValue: "active",
		Sort:        SortState{Field: "priority", Direction: Descending},
	})

	assert.Equal(t, []string{"C", "A"}, ids(view.Records))
	assert.Equal(t, 3, view.Total)
	assert.False(t, view.Empty)
	assert.False(t, view.Degraded)
	assert.NoError(t, view.Err())
}

func TestRun_EmptyResult(t *testing.T) {
	view := Run(rowSchema(), scenarioSet(t), Query{FilterField: "status", FilterValue: "monitoring"})

	assert.True(t, view.Empty)
	assert.NotNil(t, view.Records)
	assert.False(t, view.Degraded)
}

func TestRun_EmptySet(t *testing.T) {
	view := Run(rowSchema(), Set[row]{}, Query{FilterField: "status", FilterValue: "overdue"})

	assert.True(t, view.Empty)
	assert.Equal(t, 0, view.Total)
	assert.NoError(t, view.Err())
}

func TestRun_BadFilterDegradesToUnfiltered(t *testing.T) {
	view := Run(rowSchema(), scenarioSet(t), Query{
		FilterField: "colour",
		FilterValue: "red",
		Sort:        SortState{Field: "priority", Direction: Ascending},
	})

	require.True(t, view.Degraded)
	assert.Equal(t, []string{"A", "C", "B"}, ids(view.Records))
	assert.ErrorIs(t, view.Err(), ErrInvalidField)
	assert.Len(t, view.Notices, 1)
}

func TestRun_BadSortDegradesToUnsorted(t *testing.T) {
	view := Run(rowSchema(), scenarioSet(t), Query{
		FilterField: "status",
		FilterValue: All,
		Sort:        SortState{Field: "bogus", Direction: Ascending},
	})

	require.True(t, view.Degraded)
	assert.Equal(t, []string{"A", "B", "C"}, ids(view.Records))
	assert.False(t, view.Sort.Active())
	assert.ErrorIs(t, view.Err(), ErrInvalidField)
}

func TestRun_DoesNotMutateSet(t *testing.T) {
	set := scenarioSet(t)
	_ = Run(rowSchema(), set, Query{Sort: SortState{Field: "priority", Direction: Descending}})

	assert.Equal(t, []string{"A", "B", "C"}, ids(set.Records()))
}
