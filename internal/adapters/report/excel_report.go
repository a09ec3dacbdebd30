package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"route-suggestion-service/internal/domain"
)

// BuildWorkbook renders a plan result into a spreadsheet: a summary sheet,
// a customer detail sheet per plan (or per day for weekly projections),
// and an unassigned sheet when the run was truncated. The caller decides
// whether to stream or save the file.
func BuildWorkbook(res *domain.PlanResult) (*excelize.File, error) {
	f := excelize.NewFile()

	if res.Weekly != nil {
		if err := writeWeeklySummary(f, res); err != nil {
			return nil, err
		}
		for _, day := range res.Weekly.Days {
			if err := writeRouteDetail(f, "Customers "+day.Day, day.Routes); err != nil {
				return nil, err
			}
		}
	} else {
		if err := writeRouteSummary(f, res.Routes); err != nil {
			return nil, err
		}
		if err := writeRouteDetail(f, "Customers by Route", res.Routes); err != nil {
			return nil, err
		}
	}

	if len(res.UnassignedIDs) > 0 {
		if err := writeUnassigned(f, res.UnassignedIDs); err != nil {
			return nil, err
		}
	}

	f.DeleteSheet("Sheet1")
	return f, nil
}

func newSheet(f *excelize.File, name string) error {
	if _, err := f.NewSheet(name); err != nil {
		return fmt.Errorf("report: create sheet %q: %w", name, err)
	}
	return nil
}

func setRow(f *excelize.File, sheet string, rowNum int, values []any) error {
	cellName, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return fmt.Errorf("report: cell name for row %d: %w", rowNum, err)
	}
	if err := f.SetSheetRow(sheet, cellName, &values); err != nil {
		return fmt.Errorf("report: write row %d of %q: %w", rowNum, sheet, err)
	}
	return nil
}

func writeRouteSummary(f *excelize.File, routes []*domain.Route) error {
	const sheet = "Route Summary"
	if err := newSheet(f, sheet); err != nil {
		return err
	}

	if err := setRow(f, sheet, 1, []any{"Route", "Customers", "Total Volume", "Avg Volume per Customer"}); err != nil {
		return err
	}

	var totalVolume float64
	totalCustomers := 0
	for i, r := range routes {
		if err := setRow(f, sheet, i+2, []any{r.Number, r.CustomerCount, r.TotalVolume, r.AverageVolume()}); err != nil {
			return err
		}
		totalVolume += r.TotalVolume
		totalCustomers += r.CustomerCount
	}

	avg := 0.0
	if totalCustomers > 0 {
		avg = totalVolume / float64(totalCustomers)
	}
	return setRow(f, sheet, len(routes)+2, []any{"TOTAL", totalCustomers, totalVolume, avg})
}

func writeWeeklySummary(f *excelize.File, res *domain.PlanResult) error {
	const sheet = "Weekly Summary"
	if err := newSheet(f, sheet); err != nil {
		return err
	}

	if err := setRow(f, sheet, 1, []any{"Day", "Routes", "Customers", "Total Volume"}); err != nil {
		return err
	}

	for i, day := range res.Weekly.Days {
		var volume float64
		customers := 0
		for _, r := range day.Routes {
			volume += r.TotalVolume
			customers += r.CustomerCount
		}
		if err := setRow(f, sheet, i+2, []any{day.Day, len(day.Routes), customers, volume}); err != nil {
			return err
		}
	}
	return nil
}

func writeRouteDetail(f *excelize.File, sheet string, routes []*domain.Route) error {
	if err := newSheet(f, sheet); err != nil {
		return err
	}

	header := []any{"Route", "Customer", "Name", "Route Dist.", "Volume", "Deliveries", "Latitude", "Longitude", "Distance to Depot (km)"}
	if err := setRow(f, sheet, 1, header); err != nil {
		return err
	}

	rowNum := 2
	for _, r := range routes {
		for _, c := range r.Customers {
			row := []any{
				r.Number, c.CustomerID, c.Name, c.RouteDistLabel,
				c.Volume, c.Occurrences, *c.Latitude, *c.Longitude, c.DistanceKm,
			}
			if err := setRow(f, sheet, rowNum, row); err != nil {
				return err
			}
			rowNum++
		}
	}
	return nil
}

func writeUnassigned(f *excelize.File, ids []string) error {
	const sheet = "Unassigned"
	if err := newSheet(f, sheet); err != nil {
		return err
	}

	if err := setRow(f, sheet, 1, []any{"Customer"}); err != nil {
		return err
	}
	for i, id := range ids {
		if err := setRow(f, sheet, i+2, []any{id}); err != nil {
			return err
		}
	}
	return nil
}
