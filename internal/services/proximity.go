package services

import (
	"sort"

	"route-suggestion-service/internal/domain"
)

// BuildProximityRoutes produces the single-day route suggestion: customers
// are visited in ascending great-circle distance from the reference point
// and packed greedily under the capacity limits.
//
// The sort is stable, so records at the same distance keep their input
// order and repeated runs over identical input produce identical route
// membership and numbering. Returns the emitted routes and the ids left
// unassigned when MaxRoutes truncates the pass.
func BuildProximityRoutes(records []*domain.CustomerRecord, ref domain.Coordinates, limits CapacityLimits) ([]*domain.Route, []string) {
	pool := make([]*domain.CustomerRecord, len(records))
	copy(pool, records)

	for _, rec := range pool {
		rec.DistanceKm = HaversineKm(ref, domain.Coordinates{Lat: *rec.Latitude, Lon: *rec.Longitude})
	}

	sort.SliceStable(pool, func(i, j int) bool {
		return pool[i].DistanceKm < pool[j].DistanceKm
	})

	routes, remaining := PackRoutes(pool, limits)
	return routes, UniqueCustomerIDs(remaining)
}
