package ports

import (
	"context"
	"route-suggestion-service/internal/domain"
)

// Port: a caller-owned, job-id-keyed store for plan results. The engine
// never retains its own "last result"; concurrent runs write under
// distinct job ids and cannot race.
type ResultStore interface {
	// Store the result under the given job id, replacing any previous value.
	Put(ctx context.Context, jobID string, res *domain.PlanResult) error
	// Retrieve a stored result. The second return value is false when the
	// job id is unknown or the entry has expired.
	Get(ctx context.Context, jobID string) (*domain.PlanResult, bool, error)
}
