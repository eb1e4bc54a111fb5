package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorderCountsRequestsAndRecords(t *testing.T) {
	r := NewRecorder()

	r.ObserveRequest(http.MethodGet, "/api/animals", http.StatusOK, 5*time.Millisecond)
	r.ObserveRequest(http.MethodGet, "/api/animals", http.StatusOK, 3*time.Millisecond)
	r.ObserveRequest(http.MethodPost, "/api/animals", http.StatusBadRequest, time.Millisecond)
	r.RecordCreated("animal")

	assert.Equal(t, 2.0, testutil.ToFloat64(r.requests.WithLabelValues("GET", "/api/animals", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.requests.WithLabelValues("POST", "/api/animals", "400")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.recordsCreated.WithLabelValues("animal")))
}

func TestRecorderHandlerExposesMetrics(t *testing.T) {
	r := NewRecorder()
	r.RecordCreated("zookeeper")

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `zoo_records_created_total{kind="zookeeper"} 1`)
}
