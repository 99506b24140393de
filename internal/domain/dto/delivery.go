package dto

import (
	"time"

	"github.com/guttosm/delivery-service/internal/domain/model"
)

// DeliveryQuoteResponse is the JSON form of a priced delivery.
//
// base_cost and weight_cost are rounded on their own and can be a penny away
// from delivery_cost once an option multiplier applies.
//
// @Description Delivery quote with fee breakdown
type DeliveryQuoteResponse struct {
	Zone                  string  `json:"zone" example:"local"`
	ZoneName              string  `json:"zone_name" example:"London"`
	BaseCost              float64 `json:"base_cost" example:"2.99"`
	WeightCost            float64 `json:"weight_cost" example:"0"`
	DeliveryCost          float64 `json:"delivery_cost" example:"2.99"`
	EstimatedDays         string  `json:"estimated_days" example:"1-2 days"`
	DeliveryOptionName    string  `json:"delivery_option_name" example:"Standard Delivery"`
	FreeDelivery          bool    `json:"free_delivery" example:"false"`
	FreeDeliveryThreshold float64 `json:"free_delivery_threshold" example:"100"`
	AmountToFreeDelivery  float64 `json:"amount_to_free_delivery" example:"50"`
	PostcodeArea          string  `json:"postcode_area" example:"SW"`
} // @name DeliveryQuoteResponse

// NewDeliveryQuoteResponse maps a quote to its JSON form.
func NewDeliveryQuoteResponse(q model.DeliveryQuote) DeliveryQuoteResponse {
	return DeliveryQuoteResponse{
		Zone:                  string(q.Zone),
		ZoneName:              q.ZoneName,
		BaseCost:              q.BaseCost.InexactFloat64(),
		WeightCost:            q.WeightCost.InexactFloat64(),
		DeliveryCost:          q.DeliveryCost.InexactFloat64(),
		EstimatedDays:         q.EstimatedDays,
		DeliveryOptionName:    q.DeliveryOptionName,
		FreeDelivery:          q.FreeDelivery,
		FreeDeliveryThreshold: q.FreeDeliveryThreshold.InexactFloat64(),
		AmountToFreeDelivery:  q.AmountToFreeDelivery.InexactFloat64(),
		PostcodeArea:          q.PostcodeArea,
	}
}

// DeliveryOptionResponse is one priced delivery speed.
type DeliveryOptionResponse struct {
	Key           string  `json:"key" example:"express"`
	Name          string  `json:"name" example:"Express Delivery"`
	Cost          float64 `json:"cost" example:"4.49"`
	EstimatedDays string  `json:"estimated_days" example:"Next day"`
	Free          bool    `json:"free" example:"false"`
} // @name DeliveryOptionResponse

// DeliveryOptionsResponse is the JSON form of the options menu.
//
// @Description Every delivery speed priced for an order, in the order standard, express, next_day
type DeliveryOptionsResponse struct {
	Zone                  string                   `json:"zone" example:"local"`
	ZoneName              string                   `json:"zone_name" example:"London"`
	Options               []DeliveryOptionResponse `json:"options"`
	FreeDeliveryThreshold float64                  `json:"free_delivery_threshold" example:"100"`
	QualifiesForFree      bool                     `json:"qualifies_for_free" example:"false"`
	AmountToFreeDelivery  float64                  `json:"amount_to_free_delivery" example:"50"`
} // @name DeliveryOptionsResponse

// NewDeliveryOptionsResponse maps an options menu to its JSON form.
func NewDeliveryOptionsResponse(m model.DeliveryOptionsMenu) DeliveryOptionsResponse {
	options := make([]DeliveryOptionResponse, len(m.Options))
	for i, opt := range m.Options {
		options[i] = DeliveryOptionResponse{
			Key:           string(opt.Key),
			Name:          opt.Name,
			Cost:          opt.Cost.InexactFloat64(),
			EstimatedDays: opt.EstimatedDays,
			Free:          opt.Free,
		}
	}

	return DeliveryOptionsResponse{
		Zone:                  string(m.Zone),
		ZoneName:              m.ZoneName,
		Options:               options,
		FreeDeliveryThreshold: m.FreeDeliveryThreshold.InexactFloat64(),
		QualifiesForFree:      m.QualifiesForFree,
		AmountToFreeDelivery:  m.AmountToFreeDelivery.InexactFloat64(),
	}
}

// ZoneResponse describes one delivery zone in the zone catalog.
type ZoneResponse struct {
	ID            string   `json:"id" example:"local"`
	Name          string   `json:"name" example:"London"`
	BasePrice     float64  `json:"base_price" example:"2.99"`
	PricePerKg    float64  `json:"price_per_kg" example:"0.5"`
	EstimatedDays string   `json:"estimated_days" example:"1-2 days"`
	PostcodeAreas []string `json:"postcode_areas"`
} // @name ZoneResponse

// NewZoneResponses maps the zone catalog to its JSON form.
func NewZoneResponses(zones []model.ZoneInfo) []ZoneResponse {
	out := make([]ZoneResponse, len(zones))
	for i, z := range zones {
		out[i] = ZoneResponse{
			ID:            string(z.ID),
			Name:          z.Zone.Name,
			BasePrice:     z.Zone.BasePrice.InexactFloat64(),
			PricePerKg:    z.Zone.PricePerKg.InexactFloat64(),
			EstimatedDays: z.Zone.EstimatedDays,
			PostcodeAreas: z.PostcodeAreas,
		}
	}
	return out
}

// ZoneLookupResponse is the classification of a single postcode.
type ZoneLookupResponse struct {
	Postcode      string `json:"postcode" example:"sw1a 1aa"`
	PostcodeArea  string `json:"postcode_area" example:"SW"`
	Zone          string `json:"zone" example:"local"`
	ZoneName      string `json:"zone_name" example:"London"`
	EstimatedDays string `json:"estimated_days" example:"1-2 days"`
} // @name ZoneLookupResponse

// DeliverySettingsResponse is the JSON form of a delivery settings version.
type DeliverySettingsResponse struct {
	ID                    string    `json:"id" example:"65b6c2f0e4b0a1a2b3c4d5e6"`
	FreeDeliveryThreshold float64   `json:"free_delivery_threshold" example:"100"`
	Active                bool      `json:"active" example:"true"`
	Version               int       `json:"version" example:"3"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
	CreatedBy             string    `json:"created_by,omitempty" example:"ops@example.com"`
} // @name DeliverySettingsResponse

// NewDeliverySettingsResponse maps a settings version to its JSON form.
func NewDeliverySettingsResponse(s model.DeliverySettings) DeliverySettingsResponse {
	return DeliverySettingsResponse{
		ID:                    s.ID,
		FreeDeliveryThreshold: s.FreeDeliveryThreshold.InexactFloat64(),
		Active:                s.Active,
		Version:               s.Version,
		CreatedAt:             s.CreatedAt,
		UpdatedAt:             s.UpdatedAt,
		CreatedBy:             s.CreatedBy,
	}
}

// AuditLogResponse is one page of audit log entries.
type AuditLogResponse struct {
	Entries []model.LogEntry `json:"entries"`
	Total   int64            `json:"total" example:"120"`
	Limit   int              `json:"limit" example:"50"`
	Skip    int              `json:"skip" example:"0"`
} // @name AuditLogResponse
