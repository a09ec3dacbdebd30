package dto

import "time"

type SuggestionRequest struct {
	Depot                string   `json:"depot"`
	MaxCustomersPerRoute int      `json:"max_customers_per_route"`
	MaxVolumePerRoute    float64  `json:"max_volume_per_route"`
	MaxRoutes            int      `json:"max_routes"`
	MinimumVisitCount    int      `json:"minimum_visit_count"`
	WeeklyProjection     bool     `json:"weekly_projection"`
	WeeklyOrdering       string   `json:"weekly_ordering"`
	AnchorDate           *string  `json:"anchor_date"`
}

type CoordinatesResponse struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type RouteCustomerResponse struct {
	CustomerID string  `json:"customer_id"`
	Name       string  `json:"name"`
	Volume     float64 `json:"volume"`
	Lat        float64 `json:"lat"`
	Lon        float64 `json:"lon"`
	DistanceKm float64 `json:"distance_km"`
	Deliveries int     `json:"deliveries"`
	RouteDist  string  `json:"route_dist,omitempty"`
}

type RouteResponse struct {
	Number        int                     `json:"number"`
	CustomerCount int                     `json:"customer_count"`
	TotalVolume   float64                 `json:"total_volume"`
	Customers     []RouteCustomerResponse `json:"customers"`
}

type DayPlanResponse struct {
	Day    string          `json:"day"`
	Routes []RouteResponse `json:"routes"`
}

type FilterStatsResponse struct {
	CustomersBefore int     `json:"customers_before"`
	CustomersAfter  int     `json:"customers_after"`
	RowsBefore      int     `json:"rows_before"`
	RowsAfter       int     `json:"rows_after"`
	VolumeBefore    float64 `json:"volume_before"`
	VolumeAfter     float64 `json:"volume_after"`
}

type SuggestionResponse struct {
	JobID            string              `json:"job_id"`
	Depot            string              `json:"depot"`
	GeneratedAt      time.Time           `json:"generated_at"`
	Centroid         CoordinatesResponse `json:"centroid"`
	CentroidFallback bool                `json:"centroid_fallback"`
	Routes           []RouteResponse     `json:"routes,omitempty"`
	Weekly           []DayPlanResponse   `json:"weekly,omitempty"`
	UnassignedIDs    []string            `json:"unassigned_ids,omitempty"`
	Truncated        bool                `json:"truncated"`
	Filter           FilterStatsResponse `json:"filter"`
}
