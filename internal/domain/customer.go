package domain

// Represents one imported delivery row for a customer within the
// observation window. Raw fields carry the source values untouched;
// the cleaned numeric fields are populated by coordinate sanitization
// and volume parsing. A record is never mutated after it enters a Route.
type CustomerRecord struct {
	CustomerID string
	Name       string
	DepotID    string

	RawVolume    string
	RawLatitude  string
	RawLongitude string

	// Free-text route tag carried through from source data, never computed.
	RouteDistLabel string

	Volume    float64
	Latitude  *float64
	Longitude *float64

	// Number of rows this customer has within the observation window.
	// Populated by the frequency filter.
	Occurrences int

	// Great-circle distance to the depot reference point in kilometers.
	// Populated by the route builders before assignment.
	DistanceKm float64
}

// HasCoordinates reports whether both cleaned coordinates are present.
func (c *CustomerRecord) HasCoordinates() bool {
	return c.Latitude != nil && c.Longitude != nil
}
