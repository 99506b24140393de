package http

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/delivery-service/internal/domain/dto"
	"github.com/guttosm/delivery-service/internal/i18n"
	"github.com/guttosm/delivery-service/internal/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext(method, target, body string) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, target, bytes.NewBufferString(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Set(string(middleware.RequestIDKey), "req-123")
	return c, w
}

func TestBindJSON(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		expectError bool
	}{
		{name: "valid request", body: `{"postcode": "SW1A 1AA", "subtotal": 10}`},
		{name: "invalid JSON", body: `{"postcode": }`, expectError: true},
		{name: "empty body", body: ``, expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestContext(http.MethodPost, "/", tt.body)

			req, err := BindJSON[dto.CalculateDeliveryRequest](c)
			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, req)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "SW1A 1AA", req.Postcode)
			require.NotNil(t, req.Subtotal)
			assert.Equal(t, 10.0, *req.Subtotal)
		})
	}
}

func TestBindQuery(t *testing.T) {
	c, _ := newTestContext(http.MethodGet, "/?postcode=LS1&subtotal=12.5&weight_kg=3", "")

	query, err := BindQuery[dto.DeliveryOptionsQuery](c)
	require.NoError(t, err)
	assert.Equal(t, "LS1", query.Postcode)
	assert.Equal(t, 12.5, *query.Subtotal)
	assert.Equal(t, 3.0, *query.WeightKg)
	assert.NoError(t, validate(query))
}

func TestValidate(t *testing.T) {
	assert.NoError(t, validate(struct{}{}))
	assert.ErrorIs(t, validate(&dto.CalculateDeliveryRequest{}), dto.ErrInvalidPostcode)
}

func TestResponseBuilder_Success(t *testing.T) {
	tests := []struct {
		name       string
		send       func(*ResponseBuilder)
		statusCode int
	}{
		{name: "ok", send: func(b *ResponseBuilder) { b.SuccessOK(gin.H{"zone": "local"}) }, statusCode: http.StatusOK},
		{name: "created", send: func(b *ResponseBuilder) { b.SuccessCreated(gin.H{"zone": "local"}) }, statusCode: http.StatusCreated},
		{name: "custom status", send: func(b *ResponseBuilder) { b.Success(http.StatusAccepted, gin.H{"zone": "local"}) }, statusCode: http.StatusAccepted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := newTestContext(http.MethodGet, "/", "")
			tt.send(NewResponseBuilder(c))

			assert.Equal(t, tt.statusCode, w.Code)
			var data map[string]string
			envelope := decodeData(t, w, &data)
			assert.Equal(t, "req-123", envelope.RequestID)
			assert.NotZero(t, envelope.Timestamp)
			assert.Equal(t, "local", data["zone"])
		})
	}
}

func TestResponseBuilder_Error(t *testing.T) {
	c, w := newTestContext(http.MethodGet, "/", "")
	c.Request.Header.Set("Accept-Language", "fr")

	NewResponseBuilder(c).Error(http.StatusNotFound, i18n.ErrKeySettingsNotFound, errors.New("no documents"))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.True(t, c.IsAborted())
	require.Len(t, c.Errors, 1)

	resp := decodeError(t, w)
	assert.Equal(t, dto.ErrCodeNotFound, resp.Error)
	assert.Equal(t, i18n.GetTranslator().Translate(i18n.ErrKeySettingsNotFound, "fr"), resp.Message)
	assert.Equal(t, "req-123", resp.RequestID)
}

func TestResponseBuilder_ErrorWithMessage(t *testing.T) {
	c, w := newTestContext(http.MethodGet, "/", "")

	NewResponseBuilder(c).ErrorWithMessage(http.StatusConflict, "settings changed", nil)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Empty(t, c.Errors)
	resp := decodeError(t, w)
	assert.Equal(t, dto.ErrCodeConflict, resp.Error)
	assert.Equal(t, "settings changed", resp.Message)
}

func TestResponseBuilder_ValidationError(t *testing.T) {
	tests := []struct {
		name            string
		err             error
		expectedMessage string
		expectedDetails map[string]string
	}{
		{
			name:            "known field",
			err:             dto.ErrInvalidSubtotal,
			expectedMessage: i18n.GetTranslator().Translate(i18n.ErrKeyValidationSubtotal, "en"),
			expectedDetails: map[string]string{"subtotal": i18n.GetTranslator().Translate(i18n.ErrKeyValidationSubtotal, "en")},
		},
		{
			name:            "unknown field",
			err:             &dto.ValidationError{Field: "colour", Message: "is odd"},
			expectedMessage: i18n.GetTranslator().Translate(i18n.ErrKeyInvalidRequest, "en"),
			expectedDetails: map[string]string{"colour": i18n.GetTranslator().Translate(i18n.ErrKeyInvalidRequest, "en")},
		},
		{
			name:            "not a validation error",
			err:             errors.New("something else"),
			expectedMessage: i18n.GetTranslator().Translate(i18n.ErrKeyInvalidRequest, "en"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := newTestContext(http.MethodPost, "/", "")
			NewResponseBuilder(c).ValidationError(tt.err)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			resp := decodeError(t, w)
			assert.Equal(t, dto.ErrCodeInvalidRequest, resp.Error)
			assert.Equal(t, tt.expectedMessage, resp.Message)
			assert.Equal(t, tt.expectedDetails, resp.Details)
		})
	}
}
