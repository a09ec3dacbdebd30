package services

import "route-suggestion-service/internal/domain"

// Ordering selects the visiting order the weekly scheduler applies to the
// customer pool before packing routes. The single-day builder always orders
// by proximity; whether weekly routes should too is a deliberate,
// caller-visible choice.
type Ordering string

const (
	// Heaviest customers scheduled earliest in the week.
	OrderByVolume Ordering = "volume"
	// Customers closest to the reference point scheduled earliest.
	OrderByProximity Ordering = "proximity"
)

// CapacityLimits bound a single packing pass. MaxRoutes zero means unbounded.
type CapacityLimits struct {
	MaxCustomers int
	MaxVolume    float64
	MaxRoutes    int
}

// Config is the full configuration surface accepted by the engine. Each
// invocation receives its own copy; the engine never mutates it.
type Config struct {
	MaxCustomersPerRoute int
	MaxVolumePerRoute    float64
	MaxRoutes            int
	MinimumVisitCount    int

	WeeklyProjection bool
	WeeklyOrdering   Ordering

	ServiceArea       domain.BoundingBox
	FallbackReference domain.Coordinates
}

// DefaultConfig returns the engine defaults: Costa Rica service region
// with the San José depot as fallback reference point.
func DefaultConfig() Config {
	return Config{
		MaxCustomersPerRoute: 15,
		MaxVolumePerRoute:    694,
		MaxRoutes:            0,
		MinimumVisitCount:    3,
		WeeklyProjection:     false,
		WeeklyOrdering:       OrderByVolume,
		ServiceArea: domain.BoundingBox{
			MinLat: 8,
			MaxLat: 11,
			MinLon: -86,
			MaxLon: -82,
		},
		FallbackReference: domain.Coordinates{Lat: 9.9281, Lon: -84.0907},
	}
}

// Limits derives the per-pass capacity limits from the config.
func (c Config) Limits() CapacityLimits {
	return CapacityLimits{
		MaxCustomers: c.MaxCustomersPerRoute,
		MaxVolume:    c.MaxVolumePerRoute,
		MaxRoutes:    c.MaxRoutes,
	}
}
