package ingest

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"route-suggestion-service/internal/domain"
	"route-suggestion-service/internal/services"
)

// ColumnMap names the spreadsheet headers that hold each semantic field.
// The mapping is resolved by the caller (configuration, not header
// guessing); the engine never re-derives it. RouteDist is optional.
type ColumnMap struct {
	Depot      string
	CustomerID string
	Name       string
	Volume     string
	Latitude   string
	Longitude  string
	RouteDist  string
}

// DefaultColumnMap matches the delivery status workbook the planning team
// exports ("REP PLR" sheet layout).
func DefaultColumnMap() ColumnMap {
	return ColumnMap{
		Depot:      "Centro",
		CustomerID: "Cliente",
		Name:       "Nombre de cliente",
		Volume:     "Cajas Equiv.",
		Latitude:   "Latitud",
		Longitude:  "Longitud",
		RouteDist:  "Ruta Dist.",
	}
}

// ReadCustomerRows loads one sheet into customer records, one record per
// row, in sheet order. Field values are carried raw; sanitization is the
// engine's job. A mapped required header that is absent from the sheet is
// a fatal schema error for the whole run.
func ReadCustomerRows(f *excelize.File, sheet string, cols ColumnMap) ([]*domain.CustomerRecord, error) {
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read customer rows: sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("read customer rows: sheet %q is empty", sheet)
	}

	idx, err := resolveColumns(rows[0], cols)
	if err != nil {
		return nil, fmt.Errorf("read customer rows: sheet %q: %w", sheet, err)
	}

	records := make([]*domain.CustomerRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		rec := &domain.CustomerRecord{
			DepotID:        cell(row, idx.depot),
			CustomerID:     cell(row, idx.customerID),
			Name:           cell(row, idx.name),
			RawVolume:      cell(row, idx.volume),
			RawLatitude:    cell(row, idx.latitude),
			RawLongitude:   cell(row, idx.longitude),
			RouteDistLabel: cell(row, idx.routeDist),
		}
		if rec.CustomerID == "" {
			// Trailing formatting rows carry no customer id.
			continue
		}
		records = append(records, rec)
	}

	return records, nil
}

type columnIndexes struct {
	depot      int
	customerID int
	name       int
	volume     int
	latitude   int
	longitude  int
	routeDist  int
}

func resolveColumns(header []string, cols ColumnMap) (columnIndexes, error) {
	find := func(name string) int {
		for i, h := range header {
			if strings.EqualFold(strings.TrimSpace(h), name) {
				return i
			}
		}
		return -1
	}

	idx := columnIndexes{
		depot:      find(cols.Depot),
		customerID: find(cols.CustomerID),
		name:       find(cols.Name),
		volume:     find(cols.Volume),
		latitude:   find(cols.Latitude),
		longitude:  find(cols.Longitude),
		routeDist:  -1,
	}

	required := map[string]int{
		cols.Depot:      idx.depot,
		cols.CustomerID: idx.customerID,
		cols.Name:       idx.name,
		cols.Volume:     idx.volume,
		cols.Latitude:   idx.latitude,
		cols.Longitude:  idx.longitude,
	}
	for name, i := range required {
		if i < 0 {
			return columnIndexes{}, fmt.Errorf("column %q: %w", name, services.ErrMissingSchemaField)
		}
	}

	if cols.RouteDist != "" {
		idx.routeDist = find(cols.RouteDist)
	}

	return idx, nil
}

func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}
