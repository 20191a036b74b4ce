package schema

import (
	"testing"

	"github.com/shenikar/road_intelligence/internal/models"
	"github.com/shenikar/road_intelligence/internal/pipeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeverityRank_UrgencyOrder(t *testing.T) {
	assert.Greater(t, SeverityRank.Rank("critical"), SeverityRank.Rank("high"))
	assert.Greater(t, SeverityRank.Rank("high"), SeverityRank.Rank("medium"))
	assert.Greater(t, SeverityRank.Rank("medium"), SeverityRank.Rank("low"))
	assert.Greater(t, SeverityRank.Rank("low"), SeverityRank.Rank("unknown"))
}

func TestMaintenanceTask_PrioritySortMostUrgentFirst(t *testing.T) {
	tasks := []models.MaintenanceTask{
		{ID: "t1", Priority: "medium"},
		{ID: "t2", Priority: "critical"},
		{ID: "t3", Priority: "low"},
		{ID: "t4", Priority: "high"},
	}
	sorted, err := pipeline.Sort(MaintenanceTask, tasks, pipeline.SortState{Field: "priority", Direction: pipeline.Descending})
	require.NoError(t, err)

	got := make([]string, len(sorted))
	for i, task := range sorted {
		got[i] = task.ID
	}
	assert.Equal(t, []string{"t2", "t4", "t1", "t3"}, got)
}

func TestSchemas_DeclareFilterFields(t *testing.T) {
	for _, check := range []struct {
		name  string
		field func() (bool, error)
	}{
		{"incident.status", func() (bool, error) { f, err := Incident.Field("status"); return f.Categorical(), err }},
		{"resource.type", func() (bool, error) { f, err := Resource.Field("type"); return f.Categorical(), err }},
		{"task.status", func() (bool, error) { f, err := MaintenanceTask.Field("status"); return f.Categorical(), err }},
		{"asset.type", func() (bool, error) { f, err := Asset.Field("type"); return f.Categorical(), err }},
		{"network.status", func() (bool, error) { f, err := NetworkIncident.Field("status"); return f.Categorical(), err }},
		{"alert.severity", func() (bool, error) { f, err := Alert.Field("severity"); return f.Categorical(), err }},
		{"hotspot.severity", func() (bool, error) { f, err := Hotspot.Field("severity"); return f.Categorical(), err }},
		{"message.channel", func() (bool, error) { f, err := Message.Field("channel"); return f.Categorical(), err }},
		{"project.status", func() (bool, error) { f, err := MaintenanceProject.Field("status"); return f.Categorical(), err }},
		{"segment.segment", func() (bool, error) { f, err := SegmentComparison.Field("segment"); return f.Categorical(), err }},
	} {
		ok, err := check.field()
		require.NoError(t, err, check.name)
		assert.True(t, ok, check.name)
	}
}
