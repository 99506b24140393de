package service

import (
	"strings"

	"github.com/guttosm/delivery-service/internal/domain/model"
)

// NormalizePostcode removes all whitespace from postcode and uppercases it.
func NormalizePostcode(postcode string) string {
	return strings.ToUpper(strings.Join(strings.Fields(postcode), ""))
}

// PostcodeArea returns the leading run of A-Z letters of a postcode ("SW" for "sw1a 1aa").
// It returns an empty string when the postcode is empty or starts with anything else.
func PostcodeArea(postcode string) string {
	normalized := NormalizePostcode(postcode)
	end := len(normalized)
	for i, r := range normalized {
		if r < 'A' || r > 'Z' {
			end = i
			break
		}
	}
	return normalized[:end]
}

// ClassifyArea maps a postcode area to its zone.
// Areas not in any zone list resolve to model.ZoneMid; this is a pricing default, not an error.
func ClassifyArea(area string) model.ZoneID {
	if zoneID, ok := areaIndex[area]; ok {
		return zoneID
	}
	return model.ZoneMid
}

// ClassifyPostcode maps any string to a delivery zone. It never fails.
func ClassifyPostcode(postcode string) (model.ZoneID, model.DeliveryZone) {
	zoneID := ClassifyArea(PostcodeArea(postcode))
	return zoneID, deliveryZones[zoneID]
}
