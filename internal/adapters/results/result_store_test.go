package results

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"route-suggestion-service/internal/domain"
)

func sampleResult() *domain.PlanResult {
	lat, lon := 9.93, -84.09
	return &domain.PlanResult{
		Depot:       "D001",
		GeneratedAt: time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC),
		Centroid:    domain.Coordinates{Lat: 9.9281, Lon: -84.0907},
		Routes: []*domain.Route{
			domain.NewRoute(1, []*domain.CustomerRecord{{
				CustomerID: "C1",
				Name:       "Customer C1",
				Volume:     120,
				Latitude:   &lat,
				Longitude:  &lon,
			}}, 120),
		},
		UnassignedIDs: []string{"C9"},
		Truncated:     true,
	}
}

func TestMemoryResultStore(t *testing.T) {
	store := NewMemoryResultStore()
	ctx := context.Background()

	if _, ok, err := store.Get(ctx, "missing"); err != nil || ok {
		t.Fatalf("lookup of unknown job: ok=%v err=%v", ok, err)
	}

	want := sampleResult()
	if err := store.Put(ctx, "job-1", want); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, ok, err := store.Get(ctx, "job-1")
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if got.Depot != "D001" || len(got.Routes) != 1 {
		t.Fatalf("stored result mangled: %+v", got)
	}

	if err := store.Put(ctx, "", want); err == nil {
		t.Fatal("expected an error for an empty job id")
	}
}

func TestRedisResultStoreRoundTrip(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	store := NewRedisResultStore(client, time.Hour)
	ctx := context.Background()

	want := sampleResult()
	if err := store.Put(ctx, "job-1", want); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, ok, err := store.Get(ctx, "job-1")
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}

	if got.Depot != want.Depot || got.Truncated != want.Truncated {
		t.Fatalf("round trip mangled top-level fields: %+v", got)
	}
	if len(got.Routes) != 1 || got.Routes[0].TotalVolume != 120 {
		t.Fatalf("round trip mangled routes: %+v", got.Routes)
	}
	if got.Routes[0].Customers[0].CustomerID != "C1" {
		t.Fatalf("round trip mangled customers: %+v", got.Routes[0].Customers)
	}
	if !got.GeneratedAt.Equal(want.GeneratedAt) {
		t.Fatalf("generated at = %v, want %v", got.GeneratedAt, want.GeneratedAt)
	}
}

func TestRedisResultStoreMissingAndExpired(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	store := NewRedisResultStore(client, time.Minute)
	ctx := context.Background()

	if _, ok, err := store.Get(ctx, "unknown"); err != nil || ok {
		t.Fatalf("lookup of unknown job: ok=%v err=%v", ok, err)
	}

	if err := store.Put(ctx, "job-1", sampleResult()); err != nil {
		t.Fatalf("put: %v", err)
	}

	mr.FastForward(2 * time.Minute)

	if _, ok, err := store.Get(ctx, "job-1"); err != nil || ok {
		t.Fatalf("expired entry still visible: ok=%v err=%v", ok, err)
	}
}
