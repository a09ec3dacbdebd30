package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"route-suggestion-service/internal/domain"
)

// BuildWeeklyPlan projects the customer pool across the business days of
// one week. The pool is sorted once up front (heaviest volume first by
// default, or closest first when OrderByProximity is configured), then each
// business day starting the day after the anchor runs the same greedy
// packing pass the single-day builder uses, consuming from whatever the
// previous days left behind.
//
// Without a MaxRoutes limit the first business day absorbs the entire
// pool; with one, each day emits at most MaxRoutes routes and the
// remainder flows to the next day. A pool not exhausted after one full
// week is returned as unassigned ids, never carried into a following week.
func BuildWeeklyPlan(ctx context.Context, records []*domain.CustomerRecord, ref domain.Coordinates, limits CapacityLimits, anchor time.Weekday, ordering Ordering) (*domain.WeeklyPlan, []string, error) {
	pool := make([]*domain.CustomerRecord, len(records))
	copy(pool, records)

	for _, rec := range pool {
		rec.DistanceKm = HaversineKm(ref, domain.Coordinates{Lat: *rec.Latitude, Lon: *rec.Longitude})
	}

	switch ordering {
	case OrderByVolume, "":
		sort.SliceStable(pool, func(i, j int) bool {
			return pool[i].Volume > pool[j].Volume
		})
	case OrderByProximity:
		sort.SliceStable(pool, func(i, j int) bool {
			return pool[i].DistanceKm < pool[j].DistanceKm
		})
	default:
		return nil, nil, fmt.Errorf("build weekly plan: unknown ordering %q", ordering)
	}

	plan := &domain.WeeklyPlan{}

	// Walk the week once, starting the day after the anchor and wrapping,
	// skipping weekends.
	for i := 0; i < 7 && len(pool) > 0; i++ {
		if err := ctx.Err(); err != nil {
			return nil, nil, fmt.Errorf("build weekly plan: %w", err)
		}

		day := (anchor + time.Weekday(i) + 1) % 7
		if day == time.Saturday || day == time.Sunday {
			continue
		}

		var routes []*domain.Route
		routes, pool = PackRoutes(pool, limits)
		plan.Days = append(plan.Days, domain.DayPlan{Day: day.String(), Routes: routes})
	}

	return plan, UniqueCustomerIDs(pool), nil
}
