package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/delivery-service/internal/circuitbreaker"
	"github.com/guttosm/delivery-service/internal/domain/dto"
	"github.com/guttosm/delivery-service/internal/domain/model"
	"github.com/guttosm/delivery-service/internal/i18n"
	"github.com/guttosm/delivery-service/internal/service"
)

// AuditHandler serves the persisted audit log.
type AuditHandler struct {
	loggingService service.LoggingService
}

// NewAuditHandler creates a new AuditHandler.
func NewAuditHandler(loggingService service.LoggingService) *AuditHandler {
	return &AuditHandler{loggingService: loggingService}
}

// ListAuditLogs handles GET /api/admin/audit requests.
//
// @Summary      Query the audit log
// @Description  Returns audit and request log entries, newest first, with the total number of matching entries
// @Tags         Admin
// @Produce      json
// @Param        Authorization header string false "Bearer token (required if auth enabled)"
// @Param        X-API-Key header string false "API key (required if auth enabled without JWT)"
// @Param        action_type query string false "Filter by action (delivery_calculate, delivery_options, update_delivery_settings)"
// @Param        request_id  query string false "Filter by request ID"
// @Param        limit       query int    false "Page size (default 50, max 500)"
// @Param        skip        query int    false "Entries to skip"
// @Success      200 {object} dto.SuccessResponse{data=dto.AuditLogResponse} "Audit log page"
// @Failure      400 {object} dto.ErrorResponse "Bad request"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized"
// @Failure      403 {object} dto.ErrorResponse "Forbidden - admin role required"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Failure      503 {object} dto.ErrorResponse "Log store unavailable"
// @Security     BearerAuth
// @Security     ApiKeyAuth
// @Router       /api/admin/audit [get]
func (h *AuditHandler) ListAuditLogs(c *gin.Context) {
	builder := NewResponseBuilder(c)

	query, err := BindQuery[dto.AuditLogQuery](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidQuery, err)
		return
	}
	opts := query.ToQueryOptions()

	ctx := c.Request.Context()
	entries, err := h.loggingService.QueryLogs(ctx, opts)
	if err != nil {
		h.writeError(builder, err)
		return
	}
	total, err := h.loggingService.CountLogs(ctx, opts)
	if err != nil {
		h.writeError(builder, err)
		return
	}

	if entries == nil {
		entries = []model.LogEntry{}
	}
	builder.SuccessOK(dto.AuditLogResponse{
		Entries: entries,
		Total:   total,
		Limit:   opts.Limit,
		Skip:    opts.Skip,
	})
}

func (h *AuditHandler) writeError(builder *ResponseBuilder, err error) {
	if errors.Is(err, circuitbreaker.ErrCircuitOpen) {
		builder.Error(http.StatusServiceUnavailable, i18n.ErrKeyServiceUnavailable, err)
		return
	}
	builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
}
