package repositories

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
	_ "modernc.org/sqlite"

	"route-suggestion-service/internal/adapters/ingest"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	// A second pooled connection would see its own empty in-memory database.
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	if err := InitSchema(db); err != nil {
		t.Fatalf("init schema: %v", err)
	}
	return db
}

func seedWorkbookFile(t *testing.T) string {
	t.Helper()

	f := excelize.NewFile()
	sheet := "REP PLR"
	if _, err := f.NewSheet(sheet); err != nil {
		t.Fatalf("new sheet: %v", err)
	}

	rows := [][]any{
		{"Centro", "Cliente", "Nombre de cliente", "Cajas Equiv.", "Latitud", "Longitud", "Ruta Dist."},
		{"D001", "C1", "Soda La Esquina", "120", "9.9281", "-84.0907", "R-12"},
		{"D001", "C2", "Super El Valle", "80.5", "10.01", "-84.21", ""},
		{"D002", "C3", "Mini Super Norte", "55", "9.85", "-83.95", "R-03"},
	}
	for i, row := range rows {
		cellName, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("cell name: %v", err)
		}
		if err := f.SetSheetRow(sheet, cellName, &row); err != nil {
			t.Fatalf("set row: %v", err)
		}
	}

	path := filepath.Join(t.TempDir(), "seed.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("save workbook: %v", err)
	}
	return path
}

func TestSeedAndList(t *testing.T) {
	db := openTestDB(t)
	path := seedWorkbookFile(t)

	if err := SeedFromWorkbook(db, path, "REP PLR", ingest.DefaultColumnMap()); err != nil {
		t.Fatalf("seed: %v", err)
	}

	repo := NewSQLCustomerRepository(db)

	records, err := repo.ListByDepot(context.Background(), "D001")
	if err != nil {
		t.Fatalf("list by depot: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records for D001, want 2", len(records))
	}
	if records[0].CustomerID != "C1" || records[1].CustomerID != "C2" {
		t.Fatalf("import order not preserved: [%s %s]", records[0].CustomerID, records[1].CustomerID)
	}
	if records[0].RawVolume != "120" || records[0].RouteDistLabel != "R-12" {
		t.Errorf("raw fields = %q %q", records[0].RawVolume, records[0].RouteDistLabel)
	}

	depots, err := repo.ListDepots(context.Background())
	if err != nil {
		t.Fatalf("list depots: %v", err)
	}
	if len(depots) != 2 || depots[0] != "D001" || depots[1] != "D002" {
		t.Fatalf("depots = %v, want [D001 D002]", depots)
	}
}

func TestSeedSkipsWhenPopulated(t *testing.T) {
	db := openTestDB(t)
	path := seedWorkbookFile(t)

	if err := SeedFromWorkbook(db, path, "REP PLR", ingest.DefaultColumnMap()); err != nil {
		t.Fatalf("first seed: %v", err)
	}
	if err := SeedFromWorkbook(db, path, "REP PLR", ingest.DefaultColumnMap()); err != nil {
		t.Fatalf("second seed: %v", err)
	}

	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM customer_rows;`).Scan(&count); err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 3 {
		t.Fatalf("row count = %d after reseed, want 3", count)
	}
}

func TestListByDepotEmptyDepot(t *testing.T) {
	repo := NewSQLCustomerRepository(openTestDB(t))
	if _, err := repo.ListByDepot(context.Background(), ""); err == nil {
		t.Fatal("expected an error for an empty depot")
	}
}
