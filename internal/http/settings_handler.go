package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/delivery-service/internal/circuitbreaker"
	"github.com/guttosm/delivery-service/internal/domain/dto"
	"github.com/guttosm/delivery-service/internal/domain/model"
	"github.com/guttosm/delivery-service/internal/i18n"
	"github.com/guttosm/delivery-service/internal/middleware"
	"github.com/guttosm/delivery-service/internal/repository"
	"github.com/guttosm/delivery-service/internal/service"
)

// SettingsHandler provides HTTP handlers for delivery settings routes.
type SettingsHandler struct {
	settingsService service.DeliverySettingsService
	onUpdate        func()
}

// NewSettingsHandler creates a new SettingsHandler. onUpdate, when set, runs
// after every successful update.
func NewSettingsHandler(settingsService service.DeliverySettingsService, onUpdate func()) *SettingsHandler {
	return &SettingsHandler{
		settingsService: settingsService,
		onUpdate:        onUpdate,
	}
}

// GetActiveSettings handles GET /api/delivery/settings requests.
//
// @Summary      Get active delivery settings
// @Description  Returns the delivery settings version currently used for pricing
// @Tags         Delivery Settings
// @Produce      json
// @Param        Authorization header string false "Bearer token (required if auth enabled)"
// @Param        X-API-Key header string false "API key (required if auth enabled without JWT)"
// @Success      200 {object} dto.SuccessResponse{data=dto.DeliverySettingsResponse} "Active settings"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized"
// @Failure      403 {object} dto.ErrorResponse "Forbidden - admin role required"
// @Failure      404 {object} dto.ErrorResponse "No active settings"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Failure      503 {object} dto.ErrorResponse "Settings store unavailable"
// @Security     BearerAuth
// @Security     ApiKeyAuth
// @Router       /api/delivery/settings [get]
func (h *SettingsHandler) GetActiveSettings(c *gin.Context) {
	builder := NewResponseBuilder(c)

	settings, err := h.settingsService.GetActive(c.Request.Context())
	if err != nil {
		h.writeError(builder, err)
		return
	}
	if settings == nil {
		builder.Error(http.StatusNotFound, i18n.ErrKeySettingsNotFound, nil)
		return
	}

	builder.SuccessOK(dto.NewDeliverySettingsResponse(*settings))
}

// UpdateSettings handles PUT /api/delivery/settings requests.
//
// @Summary      Update delivery settings
// @Description  Stores a new delivery settings version and makes it the active one. The previous version is kept in the history.
// @Tags         Delivery Settings
// @Accept       json
// @Produce      json
// @Param        Authorization header string false "Bearer token (required if auth enabled)"
// @Param        X-API-Key header string false "API key (required if auth enabled without JWT)"
// @Param        Idempotency-Key header string false "Idempotency key for request deduplication"
// @Param        request body dto.UpdateDeliverySettingsRequest true "New settings"
// @Success      200 {object} dto.SuccessResponse{data=dto.DeliverySettingsResponse} "New active settings"
// @Failure      400 {object} dto.ErrorResponse "Bad request"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized"
// @Failure      403 {object} dto.ErrorResponse "Forbidden - admin role required"
// @Failure      409 {object} dto.ErrorResponse "Concurrent update"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Failure      503 {object} dto.ErrorResponse "Settings store unavailable"
// @Security     BearerAuth
// @Security     ApiKeyAuth
// @Router       /api/delivery/settings [put]
func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BindJSON[dto.UpdateDeliverySettingsRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}
	if err := validate(req); err != nil {
		builder.ValidationError(err)
		return
	}

	createdBy := req.CreatedBy
	if createdBy == "" {
		createdBy = c.GetString(middleware.ContextKeyUserEmail)
	}

	settings, err := h.settingsService.Create(c.Request.Context(), req.Threshold(), createdBy)
	if err != nil {
		middleware.AuditLogError(c, model.ActionUpdateDeliverySettings, "Delivery settings update failed", err, nil)
		h.writeError(builder, err)
		return
	}

	if h.onUpdate != nil {
		h.onUpdate()
	}

	middleware.AuditLog(c, model.ActionUpdateDeliverySettings, "Delivery settings updated", map[string]interface{}{
		"free_delivery_threshold": settings.FreeDeliveryThreshold.StringFixed(2),
		"version":                 settings.Version,
		"created_by":              settings.CreatedBy,
	})

	builder.SuccessOK(dto.NewDeliverySettingsResponse(*settings))
}

// ListSettings handles GET /api/delivery/settings/history requests.
//
// @Summary      List delivery settings history
// @Description  Returns delivery settings versions, newest first
// @Tags         Delivery Settings
// @Produce      json
// @Param        Authorization header string false "Bearer token (required if auth enabled)"
// @Param        X-API-Key header string false "API key (required if auth enabled without JWT)"
// @Param        limit query int false "Maximum number of versions"
// @Success      200 {object} dto.SuccessResponse{data=[]dto.DeliverySettingsResponse} "Settings history"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized"
// @Failure      403 {object} dto.ErrorResponse "Forbidden - admin role required"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Failure      503 {object} dto.ErrorResponse "Settings store unavailable"
// @Security     BearerAuth
// @Security     ApiKeyAuth
// @Router       /api/delivery/settings/history [get]
func (h *SettingsHandler) ListSettings(c *gin.Context) {
	builder := NewResponseBuilder(c)

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		if l, err := strconv.Atoi(raw); err == nil && l > 0 {
			limit = l
		}
	}

	versions, err := h.settingsService.List(c.Request.Context(), limit)
	if err != nil {
		h.writeError(builder, err)
		return
	}

	out := make([]dto.DeliverySettingsResponse, len(versions))
	for i, v := range versions {
		out[i] = dto.NewDeliverySettingsResponse(v)
	}
	builder.SuccessOK(out)
}

func (h *SettingsHandler) writeError(builder *ResponseBuilder, err error) {
	switch {
	case errors.Is(err, repository.ErrVersionConflict):
		builder.Error(http.StatusConflict, i18n.ErrKeyConflict, err)
	case errors.Is(err, circuitbreaker.ErrCircuitOpen), errors.Is(err, service.ErrRepositoryNotConfigured):
		builder.Error(http.StatusServiceUnavailable, i18n.ErrKeyServiceUnavailable, err)
	default:
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
	}
}
