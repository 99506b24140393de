//go:build integration

package http

import (
	"net/http"
	"testing"
	"time"

	"github.com/guttosm/delivery-service/internal/circuitbreaker"
	"github.com/guttosm/delivery-service/internal/domain/dto"
	"github.com/guttosm/delivery-service/internal/domain/model"
	"github.com/guttosm/delivery-service/internal/middleware"
	"github.com/guttosm/delivery-service/internal/repository"
	"github.com/guttosm/delivery-service/internal/service"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupIntegrationRouter(t *testing.T) *Router {
	t.Helper()
	db := setupTestDB(t)

	settingsCB := circuitbreaker.New(circuitbreaker.Config{Name: "delivery_settings", FailureThreshold: 5, SuccessThreshold: 1, Timeout: time.Second})
	logsCB := circuitbreaker.New(circuitbreaker.Config{Name: "logs", FailureThreshold: 5, SuccessThreshold: 1, Timeout: time.Second})

	settingsService := service.NewDeliverySettingsService(
		repository.NewDeliverySettingsRepositoryWithCircuitBreaker(repository.NewDeliverySettingsRepository(db), settingsCB))
	loggingService := service.NewLoggingService(
		repository.NewLogsRepositoryWithCircuitBreaker(repository.NewLogsRepository(db), logsCB))

	_, err := settingsService.EnsureDefault(t.Context(), service.DefaultFreeDeliveryThreshold)
	require.NoError(t, err)

	middleware.InitAsyncLogger(loggingService, middleware.DefaultAsyncLoggerConfig())
	t.Cleanup(middleware.StopAsyncLogger)

	cfg := testRouterConfig()
	cfg.SettingsService = settingsService
	cfg.LoggingService = loggingService
	cfg.PersistRequestLogs = true

	handler := NewHandler(service.NewDeliveryCalculatorService(), settingsService, WithSettingsCacheTTL(time.Minute))
	health := NewHealthHandler()
	health.RegisterChecker("mongodb", db)
	health.RegisterCircuitBreaker("delivery_settings", settingsCB)

	router := NewRouter(handler, health, cfg)
	t.Cleanup(router.Close)
	return router
}

func TestIntegration_SettingsDrivePricing(t *testing.T) {
	router := setupIntegrationRouter(t)

	calculate := func() dto.DeliveryQuoteResponse {
		w := doRequest(router, http.MethodPost, "/api/delivery/calculate", `{"postcode": "M1 1AE", "subtotal": 60}`, nil)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var quote dto.DeliveryQuoteResponse
		decodeData(t, w, &quote)
		return quote
	}

	before := calculate()
	assert.False(t, before.FreeDelivery)
	assert.Equal(t, 100.0, before.FreeDeliveryThreshold)
	assert.Equal(t, 7.99, before.DeliveryCost)

	w := doRequest(router, http.MethodGet, "/api/delivery/settings", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var active dto.DeliverySettingsResponse
	decodeData(t, w, &active)
	assert.Equal(t, 1, active.Version)
	assert.Equal(t, service.SystemActor, active.CreatedBy)

	w = doRequest(router, http.MethodPut, "/api/delivery/settings", `{"free_delivery_threshold": 59.99, "created_by": "ops@example.com"}`, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var updated dto.DeliverySettingsResponse
	decodeData(t, w, &updated)
	assert.Equal(t, 2, updated.Version)
	assert.Equal(t, 59.99, updated.FreeDeliveryThreshold)

	after := calculate()
	assert.True(t, after.FreeDelivery)
	assert.Zero(t, after.DeliveryCost)
	assert.Equal(t, 59.99, after.FreeDeliveryThreshold)

	w = doRequest(router, http.MethodGet, "/api/delivery/settings/history", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var history []dto.DeliverySettingsResponse
	decodeData(t, w, &history)
	require.Len(t, history, 2)
	assert.Equal(t, 2, history[0].Version)
	assert.True(t, history[0].Active)
	assert.False(t, history[1].Active)
}

func TestIntegration_AuditTrail(t *testing.T) {
	router := setupIntegrationRouter(t)

	w := doRequest(router, http.MethodPost, "/api/delivery/calculate", `{"postcode": "EH1 1YZ", "subtotal": 25}`,
		map[string]string{middleware.RequestIDHeader: "audit-req-1"})
	require.Equal(t, http.StatusOK, w.Code)

	// Flush the async pool so the entries are in MongoDB before querying.
	middleware.StopAsyncLogger()

	w = doRequest(router, http.MethodGet, "/api/admin/audit?action_type="+model.ActionDeliveryCalculate+"&request_id=audit-req-1", "", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var page dto.AuditLogResponse
	decodeData(t, w, &page)
	require.Equal(t, int64(1), page.Total)
	require.Len(t, page.Entries, 1)

	entry := page.Entries[0]
	assert.Equal(t, model.ActionDeliveryCalculate, entry.ActionType)
	assert.Equal(t, "EH", entry.Fields["postcode_area"])
	assert.Equal(t, string(model.ZoneRemote), entry.Fields["zone"])
	assert.Equal(t, "12.99", entry.Fields["delivery_cost"])
}

func TestIntegration_Readiness(t *testing.T) {
	router := setupIntegrationRouter(t)

	w := doRequest(router, http.MethodGet, "/readyz", "", nil)
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"mongodb":"ok"`)
	assert.Contains(t, w.Body.String(), `"delivery_settings_circuit":"closed"`)
}

func TestIntegration_DefaultThresholdIsPersistedOnce(t *testing.T) {
	db := setupTestDB(t)
	svc := service.NewDeliverySettingsService(repository.NewDeliverySettingsRepository(db))

	first, err := svc.EnsureDefault(t.Context(), decimal.NewFromInt(100))
	require.NoError(t, err)
	second, err := svc.EnsureDefault(t.Context(), decimal.NewFromInt(50))
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.True(t, second.FreeDeliveryThreshold.Equal(decimal.NewFromInt(100)))
}
