package services

import "route-suggestion-service/internal/domain"

// PackRoutes performs one single-pass capacity-bounded greedy assignment
// over the pool in its given order. It is the shared bin-packing step of
// the single-day builder and the weekly scheduler; callers choose the
// visiting order, this function never re-sorts.
//
// Mechanics: records accumulate into the current route until adding the
// next one would exceed the customer cap or the volume cap; the route is
// then closed with the next contiguous number and a fresh accumulator
// starts with that record. A customer whose own volume already exceeds the
// volume cap still gets a route of its own, which is the one documented
// case where a route may exceed a cap. Repeat rows for an id assigned
// earlier in the pass are skipped, so a customer lands on at most one route.
//
// When MaxRoutes is set and reached, the pass stops and the rest of the
// pool is returned as the remaining (unassigned) records; remaining is nil
// when the pool was exhausted. No backtracking, no rebalancing.
func PackRoutes(pool []*domain.CustomerRecord, limits CapacityLimits) ([]*domain.Route, []*domain.CustomerRecord) {
	routes := make([]*domain.Route, 0)
	assigned := make(map[string]struct{}, len(pool))

	var current []*domain.CustomerRecord
	var volume float64

	for i, rec := range pool {
		if _, ok := assigned[rec.CustomerID]; ok {
			continue
		}

		overCustomers := len(current) >= limits.MaxCustomers
		overVolume := volume+rec.Volume > limits.MaxVolume

		if (overCustomers || overVolume) && len(current) > 0 {
			routes = append(routes, domain.NewRoute(len(routes)+1, current, volume))
			current = nil
			volume = 0

			if limits.MaxRoutes > 0 && len(routes) == limits.MaxRoutes {
				return routes, unassignedRecords(pool[i:], assigned)
			}
		}

		current = append(current, rec)
		volume += rec.Volume
		assigned[rec.CustomerID] = struct{}{}
	}

	if len(current) > 0 {
		routes = append(routes, domain.NewRoute(len(routes)+1, current, volume))
	}

	return routes, nil
}

// unassignedRecords filters rows of already-assigned customers out of the
// untouched tail of the pool, preserving order.
func unassignedRecords(tail []*domain.CustomerRecord, assigned map[string]struct{}) []*domain.CustomerRecord {
	out := make([]*domain.CustomerRecord, 0, len(tail))
	for _, rec := range tail {
		if _, ok := assigned[rec.CustomerID]; ok {
			continue
		}
		out = append(out, rec)
	}
	return out
}

// UniqueCustomerIDs returns the distinct customer ids of the records in
// first-seen order.
func UniqueCustomerIDs(records []*domain.CustomerRecord) []string {
	seen := make(map[string]struct{}, len(records))
	ids := make([]string, 0, len(records))
	for _, rec := range records {
		if _, ok := seen[rec.CustomerID]; ok {
			continue
		}
		seen[rec.CustomerID] = struct{}{}
		ids = append(ids, rec.CustomerID)
	}
	return ids
}
