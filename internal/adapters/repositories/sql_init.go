package repositories

import (
	"database/sql"
	"fmt"
	"log"

	"github.com/xuri/excelize/v2"

	"route-suggestion-service/internal/adapters/ingest"
)

// InitSchema creates the imported-rows table when it does not exist.
// The DDL is portable between SQLite and Postgres.
func InitSchema(db *sql.DB) error {
	ddl := `
	CREATE TABLE IF NOT EXISTS customer_rows (
		row_id        INTEGER PRIMARY KEY,
		depot         TEXT NOT NULL,
		customer_id   TEXT NOT NULL,
		customer_name TEXT NOT NULL DEFAULT '',
		raw_volume    TEXT NOT NULL DEFAULT '',
		raw_latitude  TEXT NOT NULL DEFAULT '',
		raw_longitude TEXT NOT NULL DEFAULT '',
		route_dist    TEXT NOT NULL DEFAULT ''
	);
	CREATE INDEX IF NOT EXISTS idx_customer_rows_depot ON customer_rows (depot);
	`
	if _, err := db.Exec(ddl); err != nil {
		return fmt.Errorf("init schema: create customer_rows: %w", err)
	}
	return nil
}

// SeedFromWorkbook imports one sheet of a delivery status workbook into
// the customer_rows table. It is a no-op when rows already exist, so local
// restarts do not duplicate data. Row ids preserve sheet order, which is
// the tie-break order the engine relies on.
func SeedFromWorkbook(db *sql.DB, path, sheet string, cols ingest.ColumnMap) error {
	var existing int
	if err := db.QueryRow(`SELECT COUNT(*) FROM customer_rows;`).Scan(&existing); err != nil {
		return fmt.Errorf("seed from workbook: count rows: %w", err)
	}
	if existing > 0 {
		log.Printf("seed: customer_rows already has %d rows, skipping import", existing)
		return nil
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return fmt.Errorf("seed from workbook: open %q: %w", path, err)
	}
	defer f.Close()

	records, err := ingest.ReadCustomerRows(f, sheet, cols)
	if err != nil {
		return fmt.Errorf("seed from workbook: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed from workbook: begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.Prepare(`
	INSERT INTO customer_rows
		(row_id, depot, customer_id, customer_name, raw_volume, raw_latitude, raw_longitude, route_dist)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`)
	if err != nil {
		return fmt.Errorf("seed from workbook: prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, rec := range records {
		_, err := stmt.Exec(
			i+1,
			rec.DepotID,
			rec.CustomerID,
			rec.Name,
			rec.RawVolume,
			rec.RawLatitude,
			rec.RawLongitude,
			rec.RouteDistLabel,
		)
		if err != nil {
			return fmt.Errorf("seed from workbook: insert row %d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed from workbook: commit: %w", err)
	}

	log.Printf("seed: imported %d rows from %s (%s)", len(records), path, sheet)
	return nil
}
