package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"route-suggestion-service/internal/domain"
)

type stubRepository struct {
	records []*domain.CustomerRecord
	err     error
}

func (s *stubRepository) ListByDepot(ctx context.Context, depot string) ([]*domain.CustomerRecord, error) {
	return s.records, s.err
}

func (s *stubRepository) ListDepots(ctx context.Context) ([]string, error) {
	return []string{"D001"}, nil
}

func importedRow(id, volume, lat, lon string) *domain.CustomerRecord {
	return &domain.CustomerRecord{
		CustomerID:   id,
		Name:         "Customer " + id,
		DepotID:      "D001",
		RawVolume:    volume,
		RawLatitude:  lat,
		RawLongitude: lon,
	}
}

// Three rows each so the frequency filter keeps them.
func frequentRows(id, volume, lat, lon string) []*domain.CustomerRecord {
	rows := make([]*domain.CustomerRecord, 3)
	for i := range rows {
		rows[i] = importedRow(id, volume, lat, lon)
	}
	return rows
}

func TestSuggestRoutesSingleDay(t *testing.T) {
	var records []*domain.CustomerRecord
	records = append(records, frequentRows("C1", "120", "9.93", "-84.09")...)
	records = append(records, frequentRows("C2", "80", "10.00", "-84.00")...)
	// Below the visit threshold: must not reach a route.
	records = append(records, importedRow("C3", "999", "9.95", "-84.05"))

	repo := &stubRepository{records: records}

	req := SuggestRequest{Depot: "D001", Config: DefaultConfig(), Anchor: time.Now()}
	res, err := SuggestRoutes(context.Background(), req, repo)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.Weekly != nil {
		t.Fatal("weekly plan produced in single-day mode")
	}
	if len(res.Routes) != 1 {
		t.Fatalf("got %d routes, want 1", len(res.Routes))
	}
	if !equalIDs(routeIDs(res.Routes[0]), []string{"C1", "C2"}) {
		t.Fatalf("route customers = %v, want [C1 C2]", routeIDs(res.Routes[0]))
	}
	if res.Truncated || len(res.UnassignedIDs) != 0 {
		t.Fatalf("unexpected truncation: %v", res.UnassignedIDs)
	}
	if res.CentroidFallback {
		t.Error("fallback centroid used for in-region data")
	}
	if res.Filter.CustomersAfter != 2 {
		t.Errorf("customers after filter = %d, want 2", res.Filter.CustomersAfter)
	}
}

func TestSuggestRoutesWeekly(t *testing.T) {
	var records []*domain.CustomerRecord
	records = append(records, frequentRows("C1", "500", "9.93", "-84.09")...)
	records = append(records, frequentRows("C2", "400", "10.00", "-84.00")...)

	cfg := DefaultConfig()
	cfg.WeeklyProjection = true
	cfg.MaxRoutes = 1
	cfg.MaxCustomersPerRoute = 1

	anchor := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC) // a Tuesday
	res, err := SuggestRoutes(context.Background(), SuggestRequest{Depot: "D001", Config: cfg, Anchor: anchor}, &stubRepository{records: records})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.Routes != nil {
		t.Fatal("single-day routes produced in weekly mode")
	}
	if res.Weekly == nil || len(res.Weekly.Days) != 2 {
		t.Fatalf("weekly plan days = %v, want 2", res.Weekly)
	}
	if res.Weekly.Days[0].Day != "Wednesday" || res.Weekly.Days[1].Day != "Thursday" {
		t.Fatalf("days = [%s %s], want [Wednesday Thursday]",
			res.Weekly.Days[0].Day, res.Weekly.Days[1].Day)
	}
}

func TestSuggestRoutesEmptyAfterFiltering(t *testing.T) {
	// Every row fails sanitization or the visit threshold.
	records := []*domain.CustomerRecord{
		importedRow("C1", "100", "", ""),
		importedRow("C2", "100", "9.95", "-84.05"),
	}

	_, err := SuggestRoutes(context.Background(), SuggestRequest{Depot: "D001", Config: DefaultConfig()}, &stubRepository{records: records})
	if !errors.Is(err, ErrEmptyAfterFiltering) {
		t.Fatalf("err = %v, want ErrEmptyAfterFiltering", err)
	}
}

func TestSuggestRoutesRepositoryError(t *testing.T) {
	repoErr := errors.New("connection refused")
	_, err := SuggestRoutes(context.Background(), SuggestRequest{Depot: "D001", Config: DefaultConfig()}, &stubRepository{err: repoErr})
	if !errors.Is(err, repoErr) {
		t.Fatalf("err = %v, want wrapped repository error", err)
	}
}

func TestSuggestRoutesMaxRoutesReported(t *testing.T) {
	var records []*domain.CustomerRecord
	for _, id := range []string{"C1", "C2", "C3"} {
		records = append(records, frequentRows(id, "600", "9.93", "-84.09")...)
	}

	cfg := DefaultConfig()
	cfg.MaxRoutes = 2

	res, err := SuggestRoutes(context.Background(), SuggestRequest{Depot: "D001", Config: cfg}, &stubRepository{records: records})
	if err != nil {
		t.Fatalf("truncation must not be an error: %v", err)
	}
	if len(res.Routes) != 2 {
		t.Fatalf("got %d routes, want 2", len(res.Routes))
	}
	if !res.Truncated || !equalIDs(res.UnassignedIDs, []string{"C3"}) {
		t.Fatalf("truncated=%v unassigned=%v, want truncated with [C3]", res.Truncated, res.UnassignedIDs)
	}
}
