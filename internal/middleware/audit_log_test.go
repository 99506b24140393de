package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/delivery-service/internal/domain/model"
	"github.com/guttosm/delivery-service/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// captureEntries installs a global async logger whose entries are sent on the returned channel.
func captureEntries(t *testing.T) <-chan *model.LogEntry {
	t.Helper()
	entries := make(chan *model.LogEntry, 10)

	svc := new(mocks.MockLoggingService)
	svc.On("CreateLog", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		entries <- args.Get(1).(*model.LogEntry)
	}).Return(nil)

	InitAsyncLogger(svc, AsyncLoggerConfig{BufferSize: 10, NumWorkers: 1, WriteTimeout: time.Second})
	t.Cleanup(StopAsyncLogger)
	return entries
}

func receive(t *testing.T, entries <-chan *model.LogEntry) *model.LogEntry {
	t.Helper()
	select {
	case e := <-entries:
		return e
	case <-time.After(time.Second):
		require.FailNow(t, "no log entry written")
		return nil
	}
}

func TestAuditLog(t *testing.T) {
	entries := captureEntries(t)

	router := gin.New()
	router.Use(RequestID())
	router.POST("/api/delivery/calculate", func(c *gin.Context) {
		c.Set(ContextKeyUserID, "u-1")
		c.Set(ContextKeyUserEmail, "ops@example.com")
		AuditLog(c, model.ActionDeliveryCalculate, "Delivery quote calculated", map[string]interface{}{
			"zone": "local",
		})
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/api/delivery/calculate", nil)
	req.Header.Set(RequestIDHeader, "req-audit")
	router.ServeHTTP(httptest.NewRecorder(), req)

	entry := receive(t, entries)
	assert.Equal(t, "info", entry.Level)
	assert.Equal(t, model.ActionDeliveryCalculate, entry.ActionType)
	assert.Equal(t, "req-audit", entry.RequestID)
	assert.Equal(t, http.MethodPost, entry.Method)
	assert.Equal(t, "/api/delivery/calculate", entry.Path)
	assert.Equal(t, "u-1", entry.UserID)
	assert.Equal(t, "ops@example.com", entry.UserEmail)
	assert.Equal(t, "local", entry.Fields["zone"])
}

func TestAuditLogError(t *testing.T) {
	entries := captureEntries(t)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodPut, "/api/delivery/settings", nil)
	AuditLogError(c, model.ActionUpdateDeliverySettings, "Settings update failed", errors.New("version conflict"), nil)

	entry := receive(t, entries)
	assert.Equal(t, "error", entry.Level)
	assert.Equal(t, "version conflict", entry.Error)
	assert.Empty(t, entry.UserID)
}

func TestAuditLog_NoAsyncLogger(t *testing.T) {
	StopAsyncLogger()

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	assert.NotPanics(t, func() {
		AuditLog(c, model.ActionDeliveryOptions, "noop", nil)
	})
}

func TestRequestLogger(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		persist   bool
		wantLevel string
	}{
		{name: "success persisted", status: http.StatusOK, persist: true, wantLevel: "info"},
		{name: "client error persisted", status: http.StatusBadRequest, persist: true, wantLevel: "warn"},
		{name: "server error persisted", status: http.StatusInternalServerError, persist: true, wantLevel: "error"},
		{name: "console only", status: http.StatusOK, persist: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries := captureEntries(t)

			router := gin.New()
			router.Use(RequestID(), RequestLogger(tt.persist))
			router.GET("/api/delivery/zones", func(c *gin.Context) {
				c.Status(tt.status)
			})
			router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/delivery/zones", nil))

			if !tt.persist {
				StopAsyncLogger()
				assert.Empty(t, entries)
				return
			}

			entry := receive(t, entries)
			assert.Equal(t, tt.wantLevel, entry.Level)
			assert.Equal(t, tt.status, entry.StatusCode)
			assert.Equal(t, "/api/delivery/zones", entry.Path)
			assert.NotEmpty(t, entry.RequestID)
		})
	}
}
