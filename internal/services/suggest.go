package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"route-suggestion-service/internal/domain"
	"route-suggestion-service/internal/ports"
)

// SuggestRequest carries everything one engine invocation needs. Callers
// hand over their own copy; nothing is shared between invocations.
type SuggestRequest struct {
	Depot  string
	Config Config
	// Anchor is the "current day" the weekly projection starts after.
	Anchor time.Time
}

// SuggestRoutes runs the full pipeline for one depot: load rows, sanitize
// coordinates and volumes, drop low-frequency customers, derive the depot
// reference point, then build either the single-day proximity routes or
// the weekly projection. The result is a freshly constructed value; the
// engine keeps no state between runs.
func SuggestRoutes(ctx context.Context, req SuggestRequest, repo ports.CustomerRepository) (*domain.PlanResult, error) {
	cfg := req.Config

	records, err := repo.ListByDepot(ctx, req.Depot)
	if err != nil {
		return nil, fmt.Errorf("suggest routes: list customers for depot %q: %w", req.Depot, err)
	}

	clean, sanStats := SanitizeRecords(records, cfg.ServiceArea)
	pool, filtStats := FilterByFrequency(clean, cfg.MinimumVisitCount)
	if len(pool) == 0 {
		return nil, fmt.Errorf("suggest routes: depot %q: %w", req.Depot, ErrEmptyAfterFiltering)
	}

	centroid, usedFallback := ComputeCentroid(pool, cfg.ServiceArea, cfg.FallbackReference)

	res := &domain.PlanResult{
		Depot:            req.Depot,
		GeneratedAt:      time.Now().UTC(),
		Centroid:         centroid,
		CentroidFallback: usedFallback,
		Sanitize:         sanStats,
		Filter:           filtStats,
	}

	if cfg.WeeklyProjection {
		weekly, unassigned, err := BuildWeeklyPlan(ctx, pool, centroid, cfg.Limits(), req.Anchor.Weekday(), cfg.WeeklyOrdering)
		if err != nil {
			return nil, fmt.Errorf("suggest routes: depot %q: %w", req.Depot, err)
		}
		res.Weekly = weekly
		res.UnassignedIDs = unassigned
	} else {
		res.Routes, res.UnassignedIDs = BuildProximityRoutes(pool, centroid, cfg.Limits())
	}

	// Max-routes truncation (or a leftover weekly pool) is a reported
	// business condition, not an error: the partial plan is still returned.
	res.Truncated = len(res.UnassignedIDs) > 0
	if res.Truncated {
		log.Printf("suggest routes: depot=%s unassigned=%d", req.Depot, len(res.UnassignedIDs))
	}

	return res, nil
}
