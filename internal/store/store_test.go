package store

import (
	"sync"
	"testing"
	"time"

	"github.com/shenikar/road_intelligence/internal/pipeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	ID    string
	Value int
}

var itemSchema = pipeline.NewSchema("item", func(i item) string { return i.ID },
	pipeline.String("id", func(i item) string { return i.ID }),
	pipeline.Int("value", func(i item) int { return i.Value }),
)

func TestStore_ReplaceWholesale(t *testing.T) {
	s := New(itemSchema)
	at := time.Date(2025, 9, 1, 16, 0, 0, 0, time.UTC)

	require.NoError(t, s.Replace([]item{{ID: "a", Value: 1}, {ID: "b", Value: 2}}, at))
	assert.Equal(t, 2, s.Set().Len())
	assert.Equal(t, at, s.LoadedAt())

	require.NoError(t, s.Replace([]item{{ID: "c", Value: 3}}, at.Add(time.Minute)))
	_, ok := s.Set().Get("a")
	assert.False(t, ok)
	assert.Equal(t, 1, s.Set().Len())
}

func TestStore_ReplaceDuplicateKeepsPrevious(t *testing.T) {
	s := New(itemSchema)
	require.NoError(t, s.Replace([]item{{ID: "a"}}, time.Now()))

	err := s.Replace([]item{{ID: "x"}, {ID: "x"}}, time.Now())
	assert.ErrorIs(t, err, pipeline.ErrDuplicateID)

	_, ok := s.Set().Get("a")
	assert.True(t, ok)
}

func TestStore_UpsertDoesNotTouchPriorSnapshot(t *testing.T) {
	s := New(itemSchema)
	require.NoError(t, s.Replace([]item{{ID: "a", Value: 1}}, time.Now()))
	before := s.Set()

	assert.True(t, s.Upsert(item{ID: "a", Value: 10}))
	assert.False(t, s.Upsert(item{ID: "b", Value: 20}))

	old, _ := before.Get("a")
	assert.Equal(t, 1, old.Value)
	cur, _ := s.Set().Get("a")
	assert.Equal(t, 10, cur.Value)
	assert.Equal(t, 2, s.Set().Len())
}

func TestStore_Update(t *testing.T) {
	s := New(itemSchema)
	require.NoError(t, s.Replace([]item{{ID: "a", Value: 1}}, time.Now()))

	next, ok := s.Update("a", func(cur item) (item, bool) {
		cur.Value++
		return cur, true
	})
	require.True(t, ok)
	assert.Equal(t, 2, next.Value)

	_, ok = s.Update("a", func(cur item) (item, bool) { return cur, false })
	assert.False(t, ok)

	_, ok = s.Update("missing", func(cur item) (item, bool) { return cur, true })
	assert.False(t, ok)
}

func TestStore_ConcurrentUpserts(t *testing.T) {
	s := New(itemSchema)
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			s.Update("counter", func(cur item) (item, bool) { return cur, false })
			s.Upsert(item{ID: string(rune('A' + n%26)), Value: n})
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 26, s.Set().Len())
}
