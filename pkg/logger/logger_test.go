package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_JSONByDefault(t *testing.T) {
	var buf bytes.Buffer
	log := newWithOutput("debug", "", &buf)

	log.WithField("view", "emergency.incidents").Debug("View degraded")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "View degraded", entry["msg"])
	assert.Equal(t, "emergency.incidents", entry["view"])
	assert.Equal(t, "debug", entry["level"])
}

func TestNew_TextFormat(t *testing.T) {
	var buf bytes.Buffer
	log := newWithOutput("info", "text", &buf)

	log.Info("Snapshot loaded")

	assert.Contains(t, buf.String(), `msg="Snapshot loaded"`)
}

func TestNew_InvalidLevelFallsBackToInfo(t *testing.T) {
	log := New("verbose", "json")
	assert.Equal(t, logrus.InfoLevel, log.GetLevel())
}
