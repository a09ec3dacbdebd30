package domain

import "time"

// Represents one capacity-bounded delivery route. Routes are numbered
// contiguously from 1 within a day/run and are immutable once emitted
// by the builder.
type Route struct {
	Number        int
	Customers     []*CustomerRecord
	TotalVolume   float64
	CustomerCount int
}

func NewRoute(number int, customers []*CustomerRecord, totalVolume float64) *Route {
	return &Route{
		Number:        number,
		Customers:     customers,
		TotalVolume:   totalVolume,
		CustomerCount: len(customers),
	}
}

// AverageVolume returns the mean volume per customer on the route.
func (r *Route) AverageVolume() float64 {
	if r.CustomerCount == 0 {
		return 0
	}
	return r.TotalVolume / float64(r.CustomerCount)
}

// DayPlan holds the ordered Route list scheduled for one business day.
type DayPlan struct {
	Day    string
	Routes []*Route
}

// WeeklyPlan maps business days to route lists, kept as an ordered slice
// so rendering is deterministic. A customer appears in at most one Route
// across the entire plan.
type WeeklyPlan struct {
	Days []DayPlan
}

// TotalRoutes returns the number of routes scheduled across the week.
func (p *WeeklyPlan) TotalRoutes() int {
	n := 0
	for _, d := range p.Days {
		n += len(d.Routes)
	}
	return n
}

// Per-stage record counts emitted by sanitization for observability.
type SanitizeStats struct {
	Input              int
	Kept               int
	MissingCoordinates int
	OutOfRegion        int
	InvalidVolume      int
	OverlongFields     int
}

// Before/after counts emitted by the frequency filter.
type FilterStats struct {
	RowsBefore      int
	RowsAfter       int
	CustomersBefore int
	CustomersAfter  int
	VolumeBefore    float64
	VolumeAfter     float64
}

// PlanResult is the complete output of one engine invocation. It is a
// freshly constructed value returned to the caller; the engine holds no
// state between runs. Exactly one of Routes or Weekly is populated.
type PlanResult struct {
	Depot       string
	GeneratedAt time.Time

	Centroid         Coordinates
	CentroidFallback bool

	Routes []*Route
	Weekly *WeeklyPlan

	// Customer ids left without a route: max-routes truncation in
	// single-day mode, leftover pool after a full week in projection mode.
	UnassignedIDs []string
	Truncated     bool

	Sanitize SanitizeStats
	Filter   FilterStats
}
