package results

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"route-suggestion-service/internal/domain"
	"route-suggestion-service/internal/platform/obs"
)

// RedisResultStore keeps plan results in Redis as TTL'd JSON, so several
// service instances can share one job-id-keyed result cache.
type RedisResultStore struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisResultStore(client *redis.Client, ttl time.Duration) *RedisResultStore {
	return &RedisResultStore{Client: client, TTL: ttl}
}

func resultKey(jobID string) string { return "suggestion:" + jobID }

func (s *RedisResultStore) Put(ctx context.Context, jobID string, res *domain.PlanResult) (err error) {
	defer obs.Time(ctx, "results.redis.Put")(&err)

	if jobID == "" {
		return errors.New("result store: job id must not be empty")
	}

	payload, err := json.Marshal(res)
	if err != nil {
		return fmt.Errorf("result store: marshal result for job %q: %w", jobID, err)
	}

	if err := s.Client.Set(ctx, resultKey(jobID), payload, s.TTL).Err(); err != nil {
		return fmt.Errorf("result store: set job %q: %w", jobID, err)
	}
	return nil
}

func (s *RedisResultStore) Get(ctx context.Context, jobID string) (_ *domain.PlanResult, _ bool, err error) {
	defer obs.Time(ctx, "results.redis.Get")(&err)

	payload, err := s.Client.Get(ctx, resultKey(jobID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("result store: get job %q: %w", jobID, err)
	}

	var res domain.PlanResult
	if err := json.Unmarshal(payload, &res); err != nil {
		return nil, false, fmt.Errorf("result store: unmarshal job %q: %w", jobID, err)
	}
	return &res, true, nil
}
