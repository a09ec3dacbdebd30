package services

import (
	"regexp"
	"strconv"
	"strings"

	"route-suggestion-service/internal/domain"
)

// Raw fields longer than this are treated as multiple coordinates
// concatenated by an upstream formatting error.
const overlongFieldLength = 100

// Coordinates outside this range are rejected before the service-area
// check regardless of region.
const coordinateSanityRange = 90

var signedDecimalPattern = regexp.MustCompile(`-?\d+\.\d+`)

// ExtractCoordinate pulls a single valid numeric coordinate out of a
// possibly corrupted raw field. Overlong fields are assumed to hold several
// concatenated values; the first signed-decimal substring wins in either
// case. Any parse failure yields (0, false), never an error.
func ExtractCoordinate(raw string) (float64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}

	match := signedDecimalPattern.FindString(raw)
	if match == "" {
		return 0, false
	}

	v, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return 0, false
	}

	if v < -coordinateSanityRange || v > coordinateSanityRange {
		return 0, false
	}

	return v, true
}

// SanitizeRecords cleans coordinates and volumes for a record slice and
// drops rows that cannot participate in route generation: missing or
// unparseable coordinates, coordinates outside the service area, and
// non-numeric volumes. Input order is preserved. Per-record problems are
// counted in the returned stats, never raised.
func SanitizeRecords(records []*domain.CustomerRecord, area domain.BoundingBox) ([]*domain.CustomerRecord, domain.SanitizeStats) {
	stats := domain.SanitizeStats{Input: len(records)}

	kept := make([]*domain.CustomerRecord, 0, len(records))
	for _, rec := range records {
		if len(rec.RawLatitude) > overlongFieldLength {
			stats.OverlongFields++
		}
		if len(rec.RawLongitude) > overlongFieldLength {
			stats.OverlongFields++
		}

		lat, latOK := ExtractCoordinate(rec.RawLatitude)
		lon, lonOK := ExtractCoordinate(rec.RawLongitude)
		if !latOK || !lonOK {
			stats.MissingCoordinates++
			continue
		}

		if !area.Contains(lat, lon) {
			stats.OutOfRegion++
			continue
		}

		vol, err := strconv.ParseFloat(strings.TrimSpace(rec.RawVolume), 64)
		if err != nil {
			stats.InvalidVolume++
			continue
		}

		rec.Latitude = &lat
		rec.Longitude = &lon
		rec.Volume = vol
		kept = append(kept, rec)
	}

	stats.Kept = len(kept)
	return kept, stats
}
