package obs

import (
	"context"
	"log"
	"time"
)

type ctxKey string

// JobIDKey carries the suggestion job id through a request context so
// adapter timings can be correlated with the run that caused them.
const JobIDKey ctxKey = "job_id"

// Time returns a deferred-call hook that logs the duration of an operation,
// including the error the operation finished with, if any.
//
//	defer obs.Time(ctx, "repo.ListByDepot")(&err)
func Time(ctx context.Context, name string) func(errp *error) {
	start := time.Now()

	jobID, _ := ctx.Value(JobIDKey).(string)

	return func(errp *error) {
		dur := time.Since(start)

		if errp != nil && *errp != nil {
			log.Printf("job_id=%s op=%s dur=%dms err=%v", jobID, name, dur.Milliseconds(), *errp)
			return
		}
		log.Printf("job_id=%s op=%s dur=%dms", jobID, name, dur.Milliseconds())
	}
}
