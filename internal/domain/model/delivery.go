// Package model defines the core domain entities for the delivery service.
package model

import (
	"github.com/shopspring/decimal"
)

// ZoneID identifies one of the delivery pricing tiers.
type ZoneID string

const (
	// ZoneLocal covers London postcode areas.
	ZoneLocal ZoneID = "local"
	// ZoneNear covers Greater London and the Home Counties.
	ZoneNear ZoneID = "near"
	// ZoneMid covers the Midlands and southern England. It is also the fallback zone.
	ZoneMid ZoneID = "mid"
	// ZoneFar covers northern England, Wales and the South West.
	ZoneFar ZoneID = "far"
	// ZoneRemote covers Scotland, Northern Ireland and the islands.
	ZoneRemote ZoneID = "remote"
)

// ZoneOrder is the fixed lookup priority used when classifying postcode areas.
var ZoneOrder = []ZoneID{ZoneLocal, ZoneNear, ZoneMid, ZoneFar, ZoneRemote}

// DeliveryZone holds the static pricing of a single zone.
type DeliveryZone struct {
	Name          string
	BasePrice     decimal.Decimal
	PricePerKg    decimal.Decimal
	EstimatedDays string
}

// DeliveryOption is a delivery speed key as sent by clients.
type DeliveryOption string

const (
	// OptionStandard is the default delivery speed.
	OptionStandard DeliveryOption = "standard"
	// OptionExpress is the faster, more expensive speed.
	OptionExpress DeliveryOption = "express"
	// OptionNextDay is guaranteed next-day delivery.
	OptionNextDay DeliveryOption = "next_day"
)

// DeliveryOptions lists every option in menu order.
var DeliveryOptions = []DeliveryOption{OptionStandard, OptionExpress, OptionNextDay}

// DefaultWeightKg is used when a caller does not provide a parcel weight.
var DefaultWeightKg = decimal.NewFromInt(1)

// QuoteInput carries the order attributes a quote is priced from.
type QuoteInput struct {
	Postcode string
	Subtotal decimal.Decimal
	WeightKg decimal.Decimal
	Option   DeliveryOption
}

// NewQuoteInput returns an input with the default weight and the standard option.
func NewQuoteInput(postcode string, subtotal decimal.Decimal) QuoteInput {
	return QuoteInput{
		Postcode: postcode,
		Subtotal: subtotal,
		WeightKg: DefaultWeightKg,
		Option:   OptionStandard,
	}
}

// DeliveryQuote is the priced result of a single delivery calculation.
//
// BaseCost, WeightCost and DeliveryCost are each rounded to pence on their own,
// so BaseCost+WeightCost can differ from DeliveryCost by a penny.
type DeliveryQuote struct {
	Zone                  ZoneID
	ZoneName              string
	BaseCost              decimal.Decimal
	WeightCost            decimal.Decimal
	DeliveryCost          decimal.Decimal
	EstimatedDays         string
	DeliveryOptionName    string
	FreeDelivery          bool
	FreeDeliveryThreshold decimal.Decimal
	AmountToFreeDelivery  decimal.Decimal
	PostcodeArea          string
}

// PricedOption is one entry of a DeliveryOptionsMenu.
type PricedOption struct {
	Key           DeliveryOption
	Name          string
	Cost          decimal.Decimal
	EstimatedDays string
	Free          bool
}

// DeliveryOptionsMenu is the full priced list of delivery speeds for an order.
type DeliveryOptionsMenu struct {
	Zone                  ZoneID
	ZoneName              string
	Options               []PricedOption
	FreeDeliveryThreshold decimal.Decimal
	QualifiesForFree      bool
	AmountToFreeDelivery  decimal.Decimal
}

// ZoneInfo describes a zone together with the postcode areas assigned to it.
type ZoneInfo struct {
	ID            ZoneID
	Zone          DeliveryZone
	PostcodeAreas []string
}
