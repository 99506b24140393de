package service

import (
	"github.com/guttosm/delivery-service/internal/domain/model"
	"github.com/shopspring/decimal"
)

var (
	// DefaultFreeDeliveryThreshold is the order subtotal from which delivery is free.
	DefaultFreeDeliveryThreshold = decimal.RequireFromString("100.00")

	// freeWeightKg is the parcel weight included in the base price.
	freeWeightKg = decimal.NewFromInt(2)
)

// deliveryZones is the static zone pricing table.
var deliveryZones = map[model.ZoneID]model.DeliveryZone{
	model.ZoneLocal: {
		Name:          "London",
		BasePrice:     decimal.RequireFromString("2.99"),
		PricePerKg:    decimal.RequireFromString("0.50"),
		EstimatedDays: "1-2 days",
	},
	model.ZoneNear: {
		Name:          "Greater London & Home Counties",
		BasePrice:     decimal.RequireFromString("4.99"),
		PricePerKg:    decimal.RequireFromString("0.75"),
		EstimatedDays: "2-3 days",
	},
	model.ZoneMid: {
		Name:          "Midlands & Southern England",
		BasePrice:     decimal.RequireFromString("5.99"),
		PricePerKg:    decimal.RequireFromString("1.00"),
		EstimatedDays: "2-4 days",
	},
	model.ZoneFar: {
		Name:          "Northern England, Wales & South West",
		BasePrice:     decimal.RequireFromString("7.99"),
		PricePerKg:    decimal.RequireFromString("1.25"),
		EstimatedDays: "3-5 days",
	},
	model.ZoneRemote: {
		Name:          "Scotland, Northern Ireland & Islands",
		BasePrice:     decimal.RequireFromString("12.99"),
		PricePerKg:    decimal.RequireFromString("2.00"),
		EstimatedDays: "5-7 days",
	},
}

// postcodeAreas partitions UK postcode areas into zones. An area must not
// appear under more than one zone.
var postcodeAreas = map[model.ZoneID][]string{
	model.ZoneLocal: {
		"E", "EC", "N", "NW", "SE", "SW", "W", "WC",
	},
	model.ZoneNear: {
		"AL", "BR", "CM", "CR", "DA", "EN", "GU", "HA", "HP", "IG", "KT", "LU",
		"ME", "RH", "RM", "SG", "SL", "SM", "SS", "TN", "TW", "UB", "WD",
	},
	model.ZoneMid: {
		"B", "BA", "BH", "BN", "BS", "CB", "CO", "CT", "CV", "DE", "DT", "DY",
		"GL", "HR", "IP", "LE", "LN", "MK", "NG", "NN", "NR", "OX", "PE", "PO",
		"RG", "SN", "SO", "SP", "ST", "TF", "WR", "WS", "WV",
	},
	model.ZoneFar: {
		"BB", "BD", "BL", "CA", "CF", "CH", "CW", "DH", "DL", "DN", "EX", "FY",
		"HD", "HG", "HU", "HX", "L", "LA", "LD", "LL", "LS", "M", "NE", "NP",
		"OL", "PL", "PR", "S", "SA", "SK", "SR", "SY", "TA", "TQ", "TR", "TS",
		"WA", "WF", "WN", "YO",
	},
	model.ZoneRemote: {
		"AB", "BT", "DD", "DG", "EH", "FK", "G", "GY", "HS", "IM", "IV", "JE",
		"KA", "KW", "KY", "ML", "PA", "PH", "TD", "ZE",
	},
}

// areaIndex resolves a postcode area to its zone in one lookup.
// Built from postcodeAreas walking zones in ZoneOrder, so the first zone wins.
var areaIndex = buildAreaIndex()

func buildAreaIndex() map[string]model.ZoneID {
	index := make(map[string]model.ZoneID)
	for _, zoneID := range model.ZoneOrder {
		for _, area := range postcodeAreas[zoneID] {
			if _, taken := index[area]; !taken {
				index[area] = zoneID
			}
		}
	}
	return index
}

// deliveryOptionSpec is the pricing of a single delivery speed.
type deliveryOptionSpec struct {
	name       string
	multiplier decimal.Decimal
}

var deliveryOptionSpecs = map[model.DeliveryOption]deliveryOptionSpec{
	model.OptionStandard: {name: "Standard Delivery", multiplier: decimal.NewFromInt(1)},
	model.OptionExpress:  {name: "Express Delivery", multiplier: decimal.RequireFromString("1.5")},
	model.OptionNextDay:  {name: "Next Day Delivery", multiplier: decimal.NewFromInt(2)},
}

// ResolveOption returns option when it is a known key and model.OptionStandard otherwise.
func ResolveOption(option model.DeliveryOption) model.DeliveryOption {
	if _, ok := deliveryOptionSpecs[option]; ok {
		return option
	}
	return model.OptionStandard
}

// optionSpec returns the pricing for option, falling back to standard for unknown keys.
func optionSpec(option model.DeliveryOption) deliveryOptionSpec {
	return deliveryOptionSpecs[ResolveOption(option)]
}
