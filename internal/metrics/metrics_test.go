package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddleware_CountsByRouteTemplate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := New()
	router := gin.New()
	router.Use(m.Middleware())
	router.GET("/items/:id", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	for _, id := range []string{"1", "2"} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/items/"+id, nil))
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(m.httpRequestsTotal.WithLabelValues("/items/:id", "204")))
}

func TestRecorders(t *testing.T) {
	m := New()
	m.ViewDegraded("emergency.incidents")
	m.SnapshotLoaded("assets", 8)
	m.RefreshFinished(time.Millisecond, errors.New("boom"))
	m.RefreshFinished(time.Millisecond, nil)
	m.ResourceDispatched("police")

	assert.Equal(t, 1.0, testutil.ToFloat64(m.viewsDegraded.WithLabelValues("emergency.incidents")))
	assert.Equal(t, 8.0, testutil.ToFloat64(m.snapshotSize.WithLabelValues("assets")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.refreshErrors))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.dispatches.WithLabelValues("police")))
}

func TestNilMetricsIsSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ViewDegraded("x")
		m.SnapshotLoaded("x", 1)
		m.RefreshFinished(time.Second, nil)
		m.ResourceDispatched("fire")
	})
}

func TestHandler_ExposesRegistry(t *testing.T) {
	m := New()
	m.SnapshotLoaded("hotspots", 5)

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), `dashboard_snapshot_records{collection="hotspots"} 5`))
}
