package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordOperation(t *testing.T) {
	before := testutil.ToFloat64(operations.WithLabelValues("donate", OutcomeFailure))
	RecordOperation("donate", OutcomeFailure)
	assert.Equal(t, before+1, testutil.ToFloat64(operations.WithLabelValues("donate", OutcomeFailure)))
}

func TestHandlerExposesMetrics(t *testing.T) {
	RecordHTTPRequest(http.MethodGet, "/wallet", http.StatusOK, 10*time.Millisecond)

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "stellar_donate_http_requests_total")
}
