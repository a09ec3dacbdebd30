package services

import (
	"log"

	"route-suggestion-service/internal/domain"
)

// ComputeCentroid derives the depot reference point as the arithmetic mean
// of the cleaned coordinates. A handful of corrupted rows that survived
// sanitization can drag the mean far outside the service region, so a
// centroid outside the area is discarded for the configured fallback point.
// The second return value reports that substitution.
func ComputeCentroid(records []*domain.CustomerRecord, area domain.BoundingBox, fallback domain.Coordinates) (domain.Coordinates, bool) {
	if len(records) == 0 {
		return fallback, true
	}

	var sumLat, sumLon float64
	for _, rec := range records {
		sumLat += *rec.Latitude
		sumLon += *rec.Longitude
	}

	c := domain.Coordinates{
		Lat: sumLat / float64(len(records)),
		Lon: sumLon / float64(len(records)),
	}

	if !area.Contains(c.Lat, c.Lon) {
		log.Printf(
			"centroid (%.4f, %.4f) outside service area, using fallback (%.4f, %.4f)",
			c.Lat, c.Lon, fallback.Lat, fallback.Lon,
		)
		return fallback, true
	}

	return c, false
}
