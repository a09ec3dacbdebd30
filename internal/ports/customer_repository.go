package ports

import (
	"context"
	"route-suggestion-service/internal/domain"
)

// Port: a boundary for retrieving imported customer rows from a data source.
type CustomerRepository interface {
	// Return all rows recorded for one depot, in import order.
	ListByDepot(ctx context.Context, depot string) ([]*domain.CustomerRecord, error)
	// Return the distinct depot ids present in the data source.
	ListDepots(ctx context.Context) ([]string, error)
}
