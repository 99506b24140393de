package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/delivery-service/internal/circuitbreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type checkerFunc func() error

func (f checkerFunc) Check() error { return f() }

func openCircuitBreaker(t *testing.T) *circuitbreaker.CircuitBreaker {
	t.Helper()
	cb := circuitbreaker.New(circuitbreaker.Config{FailureThreshold: 1, SuccessThreshold: 1, Timeout: time.Hour})
	_ = cb.Execute(context.Background(), func() error { return errors.New("down") })
	require.True(t, cb.IsOpen())
	return cb
}

func TestHealthHandler_Liveness(t *testing.T) {
	router := gin.New()
	NewHealthHandler().Register(router)

	w := doRequest(router, http.MethodGet, "/healthz", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestHealthHandler_Readiness(t *testing.T) {
	tests := []struct {
		name           string
		setup          func(*testing.T, *HealthHandler)
		expectedStatus int
		expectedChecks map[string]string
	}{
		{
			name:           "no checkers",
			setup:          func(*testing.T, *HealthHandler) {},
			expectedStatus: http.StatusOK,
			expectedChecks: map[string]string{"service": "ok"},
		},
		{
			name: "healthy database and closed circuit",
			setup: func(_ *testing.T, h *HealthHandler) {
				h.RegisterChecker("mongodb", checkerFunc(func() error { return nil }))
				h.RegisterCircuitBreaker("delivery_settings", circuitbreaker.New(circuitbreaker.DefaultConfig()))
			},
			expectedStatus: http.StatusOK,
			expectedChecks: map[string]string{"mongodb": "ok", "delivery_settings_circuit": "closed"},
		},
		{
			name: "database down",
			setup: func(_ *testing.T, h *HealthHandler) {
				h.RegisterChecker("mongodb", checkerFunc(func() error { return errors.New("ping timeout") }))
			},
			expectedStatus: http.StatusServiceUnavailable,
			expectedChecks: map[string]string{"mongodb": "ping timeout"},
		},
		{
			name: "open circuit",
			setup: func(t *testing.T, h *HealthHandler) {
				h.RegisterCircuitBreaker("logs", openCircuitBreaker(t))
			},
			expectedStatus: http.StatusServiceUnavailable,
			expectedChecks: map[string]string{"logs_circuit": "open"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewHealthHandler()
			tt.setup(t, handler)

			router := gin.New()
			handler.Register(router)

			w := doRequest(router, http.MethodGet, "/readyz", "", nil)
			require.Equal(t, tt.expectedStatus, w.Code)

			var body struct {
				Status string            `json:"status"`
				Checks map[string]string `json:"checks"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.expectedChecks, body.Checks)
			if tt.expectedStatus == http.StatusOK {
				assert.Equal(t, "ok", body.Status)
			} else {
				assert.Equal(t, "degraded", body.Status)
			}
		})
	}
}
