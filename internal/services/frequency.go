package services

import (
	"log"

	"route-suggestion-service/internal/domain"
)

// FilterByFrequency drops customers with fewer than minVisits rows in the
// observation window. All rows of a dropped customer are removed; rows of a
// retained customer are kept as-is, not merged. Input order is preserved,
// so identical input always yields the identical retained set.
func FilterByFrequency(records []*domain.CustomerRecord, minVisits int) ([]*domain.CustomerRecord, domain.FilterStats) {
	stats := domain.FilterStats{RowsBefore: len(records)}

	counts := make(map[string]int, len(records))
	for _, rec := range records {
		counts[rec.CustomerID]++
		stats.VolumeBefore += rec.Volume
	}
	stats.CustomersBefore = len(counts)

	kept := make([]*domain.CustomerRecord, 0, len(records))
	retained := make(map[string]struct{}, len(counts))
	for _, rec := range records {
		n := counts[rec.CustomerID]
		if n < minVisits {
			continue
		}
		rec.Occurrences = n
		kept = append(kept, rec)
		retained[rec.CustomerID] = struct{}{}
		stats.VolumeAfter += rec.Volume
	}

	stats.RowsAfter = len(kept)
	stats.CustomersAfter = len(retained)

	log.Printf(
		"frequency filter: min_visits=%d customers=%d->%d rows=%d->%d volume=%.0f->%.0f",
		minVisits,
		stats.CustomersBefore, stats.CustomersAfter,
		stats.RowsBefore, stats.RowsAfter,
		stats.VolumeBefore, stats.VolumeAfter,
	)

	return kept, stats
}
