package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestPrometheusMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(PrometheusMiddleware())
	router.GET("/test", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	router.GET("/error", func(c *gin.Context) {
		c.String(http.StatusInternalServerError, "error")
	})

	tests := []struct {
		name           string
		path           string
		expectedStatus int
	}{
		{
			name:           "records metrics for successful request",
			path:           "/test",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "records metrics for error request",
			path:           "/error",
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestRecordDeliveryQuote(t *testing.T) {
	quotes := DeliveryQuotesTotal.WithLabelValues("local", "express", "success")
	before := testutil.ToFloat64(quotes)
	freeBefore := testutil.ToFloat64(DeliveryFreeQuotesTotal)

	RecordDeliveryQuote("local", "express", "success", time.Millisecond, false)
	RecordDeliveryQuote("local", "express", "success", time.Millisecond, true)

	assert.Equal(t, before+2, testutil.ToFloat64(quotes))
	assert.Equal(t, freeBefore+1, testutil.ToFloat64(DeliveryFreeQuotesTotal))
}

func TestRecordSettingsCacheOperation(t *testing.T) {
	hits := SettingsCacheOperationsTotal.WithLabelValues("get", "hit")
	before := testutil.ToFloat64(hits)

	RecordSettingsCacheOperation("get", "hit")
	RecordSettingsCacheOperation("get", "miss")

	assert.Equal(t, before+1, testutil.ToFloat64(hits))
}

func TestSetCircuitBreakerState(t *testing.T) {
	SetCircuitBreakerState("mongodb-settings", 1)
	assert.Equal(t, float64(1), testutil.ToFloat64(CircuitBreakerState.WithLabelValues("mongodb-settings")))

	SetCircuitBreakerState("mongodb-settings", 0)
	assert.Equal(t, float64(0), testutil.ToFloat64(CircuitBreakerState.WithLabelValues("mongodb-settings")))
}

func TestRecordAuditLogEntry(t *testing.T) {
	dropped := AuditLogEntriesTotal.WithLabelValues("dropped")
	before := testutil.ToFloat64(dropped)

	RecordAuditLogEntry("dropped")

	assert.Equal(t, before+1, testutil.ToFloat64(dropped))
}
