package service

import (
	"sort"

	"github.com/guttosm/delivery-service/internal/domain/model"
	"github.com/shopspring/decimal"
)

// DeliveryCalculator defines the interface for delivery pricing operations.
type DeliveryCalculator interface {
	Classify(postcode string) (model.ZoneID, model.DeliveryZone)
	Calculate(in model.QuoteInput) model.DeliveryQuote
	CalculateWithThreshold(in model.QuoteInput, threshold decimal.Decimal) model.DeliveryQuote
	ListOptions(in model.QuoteInput) model.DeliveryOptionsMenu
	ListOptionsWithThreshold(in model.QuoteInput, threshold decimal.Decimal) model.DeliveryOptionsMenu
	Zones() []model.ZoneInfo
	FreeDeliveryThreshold() decimal.Decimal
}

// Option configures a DeliveryCalculatorService.
type Option func(*DeliveryCalculatorService)

// DeliveryCalculatorService prices deliveries from the static zone tables.
// It holds no mutable state and is safe for concurrent use.
type DeliveryCalculatorService struct {
	freeDeliveryThreshold decimal.Decimal
}

// NewDeliveryCalculatorService creates a calculator with the given options.
func NewDeliveryCalculatorService(opts ...Option) *DeliveryCalculatorService {
	s := &DeliveryCalculatorService{
		freeDeliveryThreshold: DefaultFreeDeliveryThreshold,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// WithFreeDeliveryThreshold overrides the free-delivery threshold. Negative values are ignored.
func WithFreeDeliveryThreshold(threshold decimal.Decimal) Option {
	return func(s *DeliveryCalculatorService) {
		if !threshold.IsNegative() {
			s.freeDeliveryThreshold = threshold
		}
	}
}

// FreeDeliveryThreshold returns the threshold used by Calculate and ListOptions.
func (s *DeliveryCalculatorService) FreeDeliveryThreshold() decimal.Decimal {
	return s.freeDeliveryThreshold
}

// Classify maps a postcode to its delivery zone.
func (s *DeliveryCalculatorService) Classify(postcode string) (model.ZoneID, model.DeliveryZone) {
	return ClassifyPostcode(postcode)
}

// Calculate prices a delivery using the configured free-delivery threshold.
func (s *DeliveryCalculatorService) Calculate(in model.QuoteInput) model.DeliveryQuote {
	return s.CalculateWithThreshold(in, s.freeDeliveryThreshold)
}

// CalculateWithThreshold prices a delivery against an explicit free-delivery threshold.
//
// The option multiplier only applies to paid deliveries: a free delivery stays
// at zero whatever speed is selected.
func (s *DeliveryCalculatorService) CalculateWithThreshold(in model.QuoteInput, threshold decimal.Decimal) model.DeliveryQuote {
	zoneID, zone := ClassifyPostcode(in.Postcode)
	qualifies := in.Subtotal.GreaterThanOrEqual(threshold)
	spec := optionSpec(in.Option)

	baseCost := decimal.Zero
	weightCost := decimal.Zero
	if !qualifies {
		baseCost = zone.BasePrice
		weightCost = weightSurcharge(zone, in.WeightKg)
	}

	total := baseCost.Add(weightCost)
	if !qualifies {
		total = total.Mul(spec.multiplier)
	}

	return model.DeliveryQuote{
		Zone:                  zoneID,
		ZoneName:              zone.Name,
		BaseCost:              baseCost.Round(2),
		WeightCost:            weightCost.Round(2),
		DeliveryCost:          total.Round(2),
		EstimatedDays:         zone.EstimatedDays,
		DeliveryOptionName:    spec.name,
		FreeDelivery:          qualifies,
		FreeDeliveryThreshold: threshold,
		AmountToFreeDelivery:  amountToFreeDelivery(in.Subtotal, threshold, qualifies),
		PostcodeArea:          PostcodeArea(in.Postcode),
	}
}

// ListOptions prices every delivery speed using the configured free-delivery threshold.
func (s *DeliveryCalculatorService) ListOptions(in model.QuoteInput) model.DeliveryOptionsMenu {
	return s.ListOptionsWithThreshold(in, s.freeDeliveryThreshold)
}

// ListOptionsWithThreshold prices every delivery speed against an explicit threshold.
// in.Option is ignored; the menu always lists standard, express and next_day in that order.
func (s *DeliveryCalculatorService) ListOptionsWithThreshold(in model.QuoteInput, threshold decimal.Decimal) model.DeliveryOptionsMenu {
	zoneID, zone := ClassifyPostcode(in.Postcode)
	qualifies := in.Subtotal.GreaterThanOrEqual(threshold)

	options := make([]model.PricedOption, 0, len(model.DeliveryOptions))
	for _, key := range model.DeliveryOptions {
		spec := deliveryOptionSpecs[key]

		cost := decimal.Zero
		if !qualifies {
			cost = zone.BasePrice.
				Add(weightSurcharge(zone, in.WeightKg)).
				Mul(spec.multiplier).
				Round(2)
		}

		options = append(options, model.PricedOption{
			Key:           key,
			Name:          spec.name,
			Cost:          cost,
			EstimatedDays: optionEstimatedDays(key, zoneID, zone),
			Free:          cost.IsZero(),
		})
	}

	return model.DeliveryOptionsMenu{
		Zone:                  zoneID,
		ZoneName:              zone.Name,
		Options:               options,
		FreeDeliveryThreshold: threshold,
		QualifiesForFree:      qualifies,
		AmountToFreeDelivery:  amountToFreeDelivery(in.Subtotal, threshold, qualifies),
	}
}

// Zones returns every zone with its pricing and postcode areas, in lookup order.
func (s *DeliveryCalculatorService) Zones() []model.ZoneInfo {
	zones := make([]model.ZoneInfo, 0, len(model.ZoneOrder))
	for _, zoneID := range model.ZoneOrder {
		areas := make([]string, len(postcodeAreas[zoneID]))
		copy(areas, postcodeAreas[zoneID])
		sort.Strings(areas)

		zones = append(zones, model.ZoneInfo{
			ID:            zoneID,
			Zone:          deliveryZones[zoneID],
			PostcodeAreas: areas,
		})
	}
	return zones
}

// weightSurcharge charges the zone's per-kg rate for every kilogram above freeWeightKg.
func weightSurcharge(zone model.DeliveryZone, weightKg decimal.Decimal) decimal.Decimal {
	chargeable := decimal.Max(decimal.Zero, weightKg.Sub(freeWeightKg))
	return chargeable.Mul(zone.PricePerKg)
}

func amountToFreeDelivery(subtotal, threshold decimal.Decimal, qualifies bool) decimal.Decimal {
	if qualifies {
		return decimal.Zero
	}
	return decimal.Max(decimal.Zero, threshold.Sub(subtotal))
}

// optionEstimatedDays applies the per-option delivery estimate overrides.
func optionEstimatedDays(option model.DeliveryOption, zoneID model.ZoneID, zone model.DeliveryZone) string {
	switch option {
	case model.OptionExpress:
		if zoneID == model.ZoneLocal || zoneID == model.ZoneNear {
			return "Next day"
		}
	case model.OptionNextDay:
		if zoneID == model.ZoneLocal || zoneID == model.ZoneNear || zoneID == model.ZoneMid {
			return "Next day (guaranteed)"
		}
		return "1-2 days"
	}
	return zone.EstimatedDays
}
