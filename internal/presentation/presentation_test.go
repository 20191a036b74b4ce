package presentation

import (
	"testing"

	"github.com/shenikar/road_intelligence/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestLookup_Known(t *testing.T) {
	p := Lookup(TaskPriority, "critical")
	assert.Equal(t, Presentation{ColorToken: "error", IconID: "AlertTriangle", BadgeLabel: "Critical"}, p)

	p = Lookup(ResourceStatus, "on-scene")
	assert.Equal(t, "ON SCENE", p.BadgeLabel)
}

func TestLookup_UnknownFallsBack(t *testing.T) {
	cases := map[Kind]string{
		IncidentStatus: "escalated",
		Severity:       "catastrophic",
		TaskStatus:     "on-hold",
		ResourceType:   "k9",
		Connection:     "",
		Kind("nope"):   "active",
	}
	for kind, value := range cases {
		assert.NotPanics(t, func() {
			p := Lookup(kind, value)
			assert.Equal(t, fallbackColor, p.ColorToken)
			assert.Equal(t, fallbackIcon, p.IconID)
		})
	}
	assert.Equal(t, "Escalated", Lookup(IncidentStatus, "escalated").BadgeLabel)
	assert.Equal(t, "Unknown", Lookup(Connection, "").BadgeLabel)
}

func TestLookup_CaseSensitive(t *testing.T) {
	assert.False(t, Known(Severity, "High"))
	assert.Equal(t, "High", Lookup(Severity, "High").BadgeLabel)
	assert.Equal(t, fallbackColor, Lookup(Severity, "High").ColorToken)
}

func TestPriorityBandOf(t *testing.T) {
	assert.Equal(t, "urgent", PriorityBandOf(1))
	assert.Equal(t, "urgent", PriorityBandOf(2))
	assert.Equal(t, "elevated", PriorityBandOf(4))
	assert.Equal(t, "routine", PriorityBandOf(5))
	assert.Equal(t, "", PriorityBandOf(0))
}

func TestConditionBandOf(t *testing.T) {
	assert.Equal(t, "good", ConditionBandOf(85))
	assert.Equal(t, "fair", ConditionBandOf(60))
	assert.Equal(t, "poor", ConditionBandOf(45))
	assert.Equal(t, "critical", ConditionBandOf(0))
	assert.Equal(t, "", ConditionBandOf(101))
	assert.Equal(t, "", ConditionBandOf(-3))
}

func TestDeriveAsset_OutOfRangeScore(t *testing.T) {
	row := DeriveAsset(models.Asset{ConditionScore: 140})
	assert.Equal(t, Fallback(""), row.Condition)
}

func TestDeriveIncident(t *testing.T) {
	row := DeriveIncident(models.Incident{Status: "active", Severity: "high", Priority: 1})
	assert.Equal(t, "error", row.Status.ColorToken)
	assert.Equal(t, "warning", row.Severity.ColorToken)
	assert.Equal(t, "AlertTriangle", row.Priority.IconID)

	row = DeriveIncident(models.Incident{Status: "lost", Severity: "weird", Priority: -1})
	assert.Equal(t, fallbackColor, row.Status.ColorToken)
	assert.Equal(t, fallbackColor, row.Severity.ColorToken)
	assert.Equal(t, fallbackColor, row.Priority.ColorToken)
}

func TestDeriveHotspot(t *testing.T) {
	row := DeriveHotspot(models.Hotspot{Severity: "critical", CongestionLevel: 89})
	assert.Equal(t, "Severe", row.Congestion.BadgeLabel)
	assert.Equal(t, "AlertTriangle", row.Severity.IconID)
}
