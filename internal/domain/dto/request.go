// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs decouple the HTTP layer from the domain model: money travels as JSON
// numbers here and as exact decimals everywhere else.
package dto

import (
	"math"
	"strings"

	"github.com/guttosm/delivery-service/internal/domain/model"
	"github.com/shopspring/decimal"
)

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

var (
	// ErrInvalidPostcode is returned when postcode is missing or blank.
	ErrInvalidPostcode = &ValidationError{Field: "postcode", Message: "is required"}
	// ErrInvalidSubtotal is returned when subtotal is missing, negative or not finite.
	ErrInvalidSubtotal = &ValidationError{Field: "subtotal", Message: "is required and must not be negative"}
	// ErrInvalidWeightKg is returned when weight_kg is negative or not finite.
	ErrInvalidWeightKg = &ValidationError{Field: "weight_kg", Message: "must not be negative"}
	// ErrInvalidFreeDeliveryThreshold is returned when the threshold is missing, negative or not finite.
	ErrInvalidFreeDeliveryThreshold = &ValidationError{Field: "free_delivery_threshold", Message: "is required and must not be negative"}
)

// CalculateDeliveryRequest represents the JSON request body for the delivery calculation endpoint.
//
// Unknown delivery_option values are accepted and priced as standard.
//
// @Description Request to price delivery for an order
// @Example {"postcode": "SW1A 1AA", "subtotal": 50.0, "weight_kg": 2.0, "delivery_option": "standard"}
type CalculateDeliveryRequest struct {
	// Postcode is the UK destination postcode, any casing or spacing.
	Postcode string `json:"postcode" example:"SW1A 1AA"`
	// Subtotal is the order subtotal in GBP.
	Subtotal *float64 `json:"subtotal" example:"50.00" minimum:"0"`
	// WeightKg is the parcel weight. Defaults to 1 kg.
	WeightKg *float64 `json:"weight_kg,omitempty" example:"2.0" minimum:"0"`
	// DeliveryOption is one of standard, express, next_day. Defaults to standard.
	DeliveryOption string `json:"delivery_option,omitempty" example:"standard" enums:"standard,express,next_day"`
} // @name CalculateDeliveryRequest

// Validate performs custom validation on the request.
func (r *CalculateDeliveryRequest) Validate() error {
	return validateOrder(r.Postcode, r.Subtotal, r.WeightKg)
}

// ToQuoteInput converts the request into calculator input, applying defaults.
// Call Validate first.
func (r *CalculateDeliveryRequest) ToQuoteInput() model.QuoteInput {
	in := toQuoteInput(r.Postcode, r.Subtotal, r.WeightKg)
	if option := strings.TrimSpace(r.DeliveryOption); option != "" {
		in.Option = model.DeliveryOption(option)
	}
	return in
}

// DeliveryOptionsQuery represents the query parameters of the delivery options endpoint.
type DeliveryOptionsQuery struct {
	Postcode string   `form:"postcode"`
	Subtotal *float64 `form:"subtotal"`
	WeightKg *float64 `form:"weight_kg"`
}

// Validate performs custom validation on the query.
func (q *DeliveryOptionsQuery) Validate() error {
	return validateOrder(q.Postcode, q.Subtotal, q.WeightKg)
}

// ToQuoteInput converts the query into calculator input, applying defaults.
func (q *DeliveryOptionsQuery) ToQuoteInput() model.QuoteInput {
	return toQuoteInput(q.Postcode, q.Subtotal, q.WeightKg)
}

// UpdateDeliverySettingsRequest represents the JSON request body for updating delivery settings.
//
// @Description New delivery settings version
// @Example {"free_delivery_threshold": 80.0, "created_by": "ops@example.com"}
type UpdateDeliverySettingsRequest struct {
	// FreeDeliveryThreshold is the subtotal from which delivery is free.
	FreeDeliveryThreshold *float64 `json:"free_delivery_threshold" example:"80.00" minimum:"0"`
	// CreatedBy identifies who made the change. Defaults to the authenticated user.
	CreatedBy string `json:"created_by,omitempty" example:"ops@example.com"`
} // @name UpdateDeliverySettingsRequest

// Validate performs custom validation on the request.
func (r *UpdateDeliverySettingsRequest) Validate() error {
	if !nonNegative(r.FreeDeliveryThreshold) {
		return ErrInvalidFreeDeliveryThreshold
	}
	return nil
}

// Threshold returns the requested threshold as a decimal. Call Validate first.
func (r *UpdateDeliverySettingsRequest) Threshold() decimal.Decimal {
	return decimal.NewFromFloat(*r.FreeDeliveryThreshold)
}

// AuditLogQuery represents the query parameters of the audit log endpoint.
type AuditLogQuery struct {
	ActionType string `form:"action_type"`
	RequestID  string `form:"request_id"`
	Limit      int    `form:"limit"`
	Skip       int    `form:"skip"`
}

const (
	// DefaultAuditLimit is used when no limit is given.
	DefaultAuditLimit = 50
	// MaxAuditLimit caps a single audit page.
	MaxAuditLimit = 500
)

// ToQueryOptions converts the query into repository filters, clamping paging values.
func (q *AuditLogQuery) ToQueryOptions() model.LogQueryOptions {
	limit := q.Limit
	switch {
	case limit <= 0:
		limit = DefaultAuditLimit
	case limit > MaxAuditLimit:
		limit = MaxAuditLimit
	}

	skip := q.Skip
	if skip < 0 {
		skip = 0
	}

	return model.LogQueryOptions{
		ActionType: strings.TrimSpace(q.ActionType),
		RequestID:  strings.TrimSpace(q.RequestID),
		Limit:      limit,
		Skip:       skip,
	}
}

func validateOrder(postcode string, subtotal, weightKg *float64) error {
	if strings.TrimSpace(postcode) == "" {
		return ErrInvalidPostcode
	}
	if !nonNegative(subtotal) {
		return ErrInvalidSubtotal
	}
	if weightKg != nil && !nonNegative(weightKg) {
		return ErrInvalidWeightKg
	}
	return nil
}

func nonNegative(v *float64) bool {
	return v != nil && !math.IsNaN(*v) && !math.IsInf(*v, 0) && *v >= 0
}

func toQuoteInput(postcode string, subtotal, weightKg *float64) model.QuoteInput {
	in := model.NewQuoteInput(postcode, decimal.NewFromFloat(*subtotal))
	if weightKg != nil {
		in.WeightKg = decimal.NewFromFloat(*weightKg)
	}
	return in
}
