package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"route-suggestion-service/internal/domain"
	"route-suggestion-service/internal/platform/obs"
)

// SQL-backed implementation of the CustomerRepository port. The SQL sticks
// to $n placeholders and portable types so the same queries run against
// the local SQLite file and the shared Postgres deployment.
type SQLCustomerRepository struct{ DB *sql.DB }

func NewSQLCustomerRepository(db *sql.DB) *SQLCustomerRepository {
	return &SQLCustomerRepository{DB: db}
}

// Return all imported rows for one depot in import order. Raw fields come
// back exactly as imported; cleaning them is the engine's job.
func (s *SQLCustomerRepository) ListByDepot(ctx context.Context, depot string) (_ []*domain.CustomerRecord, err error) {
	defer obs.Time(ctx, "repo.ListByDepot")(&err)

	if s.DB == nil {
		return nil, errors.New("customer repository: DB is nil")
	}
	if depot == "" {
		return nil, errors.New("list by depot: depot must not be empty")
	}

	query := `
	SELECT
		row_id,
		depot,
		customer_id,
		customer_name,
		raw_volume,
		raw_latitude,
		raw_longitude,
		route_dist
	FROM customer_rows
	WHERE depot = $1
	ORDER BY row_id;
	`
	rows, err := s.DB.QueryContext(ctx, query, depot)
	if err != nil {
		return nil, fmt.Errorf("list by depot: query customer_rows: %w", err)
	}
	defer rows.Close()

	records := make([]*domain.CustomerRecord, 0, 256)
	for rows.Next() {
		var rowID int
		rec := &domain.CustomerRecord{}
		err := rows.Scan(
			&rowID,
			&rec.DepotID,
			&rec.CustomerID,
			&rec.Name,
			&rec.RawVolume,
			&rec.RawLatitude,
			&rec.RawLongitude,
			&rec.RouteDistLabel,
		)
		if err != nil {
			return nil, fmt.Errorf("list by depot: scan row: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list by depot: row iteration: %w", err)
	}

	return records, nil
}

// Return the distinct depot ids present in the imported data.
func (s *SQLCustomerRepository) ListDepots(ctx context.Context) (_ []string, err error) {
	defer obs.Time(ctx, "repo.ListDepots")(&err)

	if s.DB == nil {
		return nil, errors.New("customer repository: DB is nil")
	}

	rows, err := s.DB.QueryContext(ctx, `SELECT DISTINCT depot FROM customer_rows ORDER BY depot;`)
	if err != nil {
		return nil, fmt.Errorf("list depots: query customer_rows: %w", err)
	}
	defer rows.Close()

	depots := make([]string, 0, 8)
	for rows.Next() {
		var d string
		if err := rows.Scan(&d); err != nil {
			return nil, fmt.Errorf("list depots: scan row: %w", err)
		}
		depots = append(depots, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list depots: row iteration: %w", err)
	}

	return depots, nil
}
