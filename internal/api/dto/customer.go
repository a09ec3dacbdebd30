package dto

type CustomerRowResponse struct {
	CustomerID string `json:"customer_id"`
	Name       string `json:"name"`
	Depot      string `json:"depot"`
	RawVolume  string `json:"raw_volume"`
	RouteDist  string `json:"route_dist,omitempty"`
}

type ListCustomersResponse struct {
	Depot     string                `json:"depot"`
	Customers []CustomerRowResponse `json:"customers"`
}

type ListDepotsResponse struct {
	Depots []string `json:"depots"`
}
