package http

import (
	"context"
	"net/http"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/delivery-service/internal/domain/dto"
	"github.com/guttosm/delivery-service/internal/domain/model"
	"github.com/guttosm/delivery-service/internal/i18n"
	"github.com/guttosm/delivery-service/internal/metrics"
	"github.com/guttosm/delivery-service/internal/middleware"
	"github.com/guttosm/delivery-service/internal/service"
	"github.com/shopspring/decimal"
)

const (
	// DefaultSettingsCacheTTL is how long the active threshold is served from memory.
	DefaultSettingsCacheTTL = 30 * time.Second

	settingsFetchTimeout = 2 * time.Second
)

// thresholdCache holds the active free-delivery threshold for a TTL.
type thresholdCache struct {
	threshold atomic.Value // holds decimal.Decimal
	expiresAt atomic.Value // holds time.Time
	mu        sync.Mutex
	ttl       time.Duration
}

func newThresholdCache(ttl time.Duration) *thresholdCache {
	c := &thresholdCache{ttl: ttl}
	c.expiresAt.Store(time.Time{})
	return c
}

// get returns the cached threshold while it is fresh.
func (c *thresholdCache) get() (decimal.Decimal, bool) {
	if expiresAt, ok := c.expiresAt.Load().(time.Time); ok && time.Now().Before(expiresAt) {
		if threshold, ok := c.threshold.Load().(decimal.Decimal); ok {
			metrics.RecordSettingsCacheOperation("get", "hit")
			return threshold, true
		}
	}
	metrics.RecordSettingsCacheOperation("get", "miss")
	return decimal.Decimal{}, false
}

func (c *thresholdCache) set(threshold decimal.Decimal) {
	if c.ttl <= 0 {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.threshold.Store(threshold)
	c.expiresAt.Store(time.Now().Add(c.ttl))
}

func (c *thresholdCache) invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.expiresAt.Store(time.Time{})
	metrics.RecordSettingsCacheOperation("invalidate", "ok")
}

// Handler provides HTTP handlers for delivery pricing routes.
type Handler struct {
	calculator      service.DeliveryCalculator
	settingsService service.DeliverySettingsService
	cache           *thresholdCache
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithSettingsCacheTTL sets how long the active threshold is cached. Zero disables caching.
func WithSettingsCacheTTL(ttl time.Duration) HandlerOption {
	return func(h *Handler) {
		h.cache = newThresholdCache(ttl)
	}
}

// NewHandler creates a new Handler. settingsService may be nil, in which case
// the calculator's configured threshold is always used.
func NewHandler(calculator service.DeliveryCalculator, settingsService service.DeliverySettingsService, opts ...HandlerOption) *Handler {
	h := &Handler{
		calculator:      calculator,
		settingsService: settingsService,
		cache:           newThresholdCache(DefaultSettingsCacheTTL),
	}

	for _, opt := range opts {
		opt(h)
	}

	return h
}

// activeThreshold resolves the free-delivery threshold: cache, then the
// active settings version, then the calculator default.
func (h *Handler) activeThreshold(ctx context.Context) decimal.Decimal {
	if threshold, ok := h.cache.get(); ok {
		return threshold
	}

	if h.settingsService == nil {
		return h.calculator.FreeDeliveryThreshold()
	}

	ctx, cancel := context.WithTimeout(ctx, settingsFetchTimeout)
	defer cancel()

	settings, err := h.settingsService.GetActive(ctx)
	if err != nil || settings == nil {
		return h.calculator.FreeDeliveryThreshold()
	}

	h.cache.set(settings.FreeDeliveryThreshold)
	return settings.FreeDeliveryThreshold
}

// InvalidateSettingsCache drops the cached threshold so the next request reads the active version.
func (h *Handler) InvalidateSettingsCache() {
	h.cache.invalidate()
}

// CalculateDelivery handles POST /api/delivery/calculate requests.
//
// @Summary      Calculate delivery fee
// @Description  Prices delivery for an order from its destination postcode, subtotal, parcel weight and delivery speed. Orders at or above the free-delivery threshold ship free at any speed. Unknown postcode areas are priced as the mid zone and unknown delivery options as standard. Supports idempotency via Idempotency-Key header.
// @Tags         Delivery
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key header string false "Idempotency key for request deduplication"
// @Param        request body dto.CalculateDeliveryRequest true "Order information"
// @Success      200 {object} dto.SuccessResponse{data=dto.DeliveryQuoteResponse} "Delivery quote"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Failure      504 {object} dto.ErrorResponse "Request timed out"
// @Router       /api/delivery/calculate [post]
func (h *Handler) CalculateDelivery(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BindJSON[dto.CalculateDeliveryRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}
	if err := validate(req); err != nil {
		metrics.RecordDeliveryQuote("", "", "validation_error", 0, false)
		builder.ValidationError(err)
		return
	}

	in := req.ToQuoteInput()
	threshold := h.activeThreshold(c.Request.Context())

	start := time.Now()
	quote := h.calculator.CalculateWithThreshold(in, threshold)
	option := string(service.ResolveOption(in.Option))
	metrics.RecordDeliveryQuote(string(quote.Zone), option, "success", time.Since(start), quote.FreeDelivery)

	middleware.AuditLog(c, model.ActionDeliveryCalculate, "Delivery fee calculated", map[string]interface{}{
		"postcode_area": quote.PostcodeArea,
		"zone":          string(quote.Zone),
		"option":        option,
		"delivery_cost": quote.DeliveryCost.StringFixed(2),
		"free_delivery": quote.FreeDelivery,
	})

	builder.SuccessOK(dto.NewDeliveryQuoteResponse(quote))
}

// DeliveryOptions handles GET /api/delivery/options requests.
//
// @Summary      List delivery options
// @Description  Prices every delivery speed (standard, express, next_day) for an order, with per-option delivery estimates.
// @Tags         Delivery
// @Produce      json
// @Param        postcode  query string true  "UK destination postcode"
// @Param        subtotal  query number true  "Order subtotal in GBP"
// @Param        weight_kg query number false "Parcel weight in kg (default 1)"
// @Success      200 {object} dto.SuccessResponse{data=dto.DeliveryOptionsResponse} "Priced delivery options"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/delivery/options [get]
func (h *Handler) DeliveryOptions(c *gin.Context) {
	builder := NewResponseBuilder(c)

	query, err := BindQuery[dto.DeliveryOptionsQuery](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidQuery, err)
		return
	}
	if err := validate(query); err != nil {
		builder.ValidationError(err)
		return
	}

	in := query.ToQuoteInput()
	threshold := h.activeThreshold(c.Request.Context())

	start := time.Now()
	menu := h.calculator.ListOptionsWithThreshold(in, threshold)
	metrics.RecordDeliveryQuote(string(menu.Zone), "menu", "success", time.Since(start), menu.QualifiesForFree)

	middleware.AuditLog(c, model.ActionDeliveryOptions, "Delivery options listed", map[string]interface{}{
		"postcode_area":      service.PostcodeArea(in.Postcode),
		"zone":               string(menu.Zone),
		"qualifies_for_free": menu.QualifiesForFree,
	})

	builder.SuccessOK(dto.NewDeliveryOptionsResponse(menu))
}

// Zones handles GET /api/delivery/zones requests.
//
// @Summary      List delivery zones
// @Description  Returns every delivery zone with its pricing and the postcode areas assigned to it, in lookup order.
// @Tags         Delivery
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=[]dto.ZoneResponse} "Zone catalog"
// @Router       /api/delivery/zones [get]
func (h *Handler) Zones(c *gin.Context) {
	NewResponseBuilder(c).SuccessOK(dto.NewZoneResponses(h.calculator.Zones()))
}

// LookupZone handles GET /api/delivery/zones/lookup requests.
//
// @Summary      Classify a postcode
// @Description  Returns the postcode area and delivery zone for a UK postcode. Postcodes whose area is not listed resolve to the mid zone.
// @Tags         Delivery
// @Produce      json
// @Param        postcode query string true "UK postcode, any casing or spacing"
// @Success      200 {object} dto.SuccessResponse{data=dto.ZoneLookupResponse} "Zone classification"
// @Failure      400 {object} dto.ErrorResponse "Bad request - postcode missing"
// @Router       /api/delivery/zones/lookup [get]
func (h *Handler) LookupZone(c *gin.Context) {
	builder := NewResponseBuilder(c)

	postcode := c.Query("postcode")
	if strings.TrimSpace(postcode) == "" {
		builder.ValidationError(dto.ErrInvalidPostcode)
		return
	}

	zoneID, zone := h.calculator.Classify(postcode)
	builder.SuccessOK(dto.ZoneLookupResponse{
		Postcode:      postcode,
		PostcodeArea:  service.PostcodeArea(postcode),
		Zone:          string(zoneID),
		ZoneName:      zone.Name,
		EstimatedDays: zone.EstimatedDays,
	})
}
