package activities

import (
	"strings"

	"github.com/golang/geo/s2"

	"github.com/sproutly/matchengine/internal/domain/model"
)

// earthRadiusKM is the mean Earth radius used to convert angular
// distances to kilometers.
const earthRadiusKM = 6371.0

// GeoEvaluator is the default AvailabilityEvaluator. An activity with no
// region list, no postcode list, and no radius is available everywhere;
// otherwise any one constraint matching the location is enough.
type GeoEvaluator struct{}

// NewGeoEvaluator creates the default availability evaluator.
func NewGeoEvaluator() *GeoEvaluator {
	return &GeoEvaluator{}
}

// Available reports whether the activity can be delivered at the
// location.
func (e *GeoEvaluator) Available(a model.Activity, loc model.Location) bool {
	unrestricted := len(a.AvailableInRegions) == 0 &&
		len(a.AvailablePostcodes) == 0 &&
		a.ServiceRadiusKM <= 0
	if unrestricted {
		return true
	}

	if loc.Region != "" && matchesRegion(a.AvailableInRegions, loc.Region) {
		return true
	}
	if loc.Postcode != "" && matchesPostcode(a.AvailablePostcodes, loc.Postcode) {
		return true
	}
	return withinRadius(a, loc)
}

func matchesRegion(regions []string, region string) bool {
	for _, r := range regions {
		if strings.EqualFold(r, region) {
			return true
		}
	}
	return false
}

// matchesPostcode compares outward-code prefixes so "SW1A 1AA" matches an
// activity listing "SW1".
func matchesPostcode(postcodes []string, postcode string) bool {
	norm := normalizePostcode(postcode)
	for _, p := range postcodes {
		prefix := normalizePostcode(p)
		if prefix != "" && strings.HasPrefix(norm, prefix) {
			return true
		}
	}
	return false
}

func normalizePostcode(p string) string {
	return strings.ToUpper(strings.ReplaceAll(p, " ", ""))
}

// withinRadius checks the great-circle distance between the activity base
// and the location against the activity's service radius. Either side
// missing coordinates fails the check.
func withinRadius(a model.Activity, loc model.Location) bool {
	if a.ServiceRadiusKM <= 0 || a.Lat == nil || a.Lng == nil || loc.Lat == nil || loc.Lng == nil {
		return false
	}
	from := s2.LatLngFromDegrees(*a.Lat, *a.Lng)
	to := s2.LatLngFromDegrees(*loc.Lat, *loc.Lng)
	distanceKM := from.Distance(to).Radians() * earthRadiusKM
	return distanceKM <= a.ServiceRadiusKM
}
