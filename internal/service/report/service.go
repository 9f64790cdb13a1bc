package report

import (
	"context"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/an-seung-kwon/ts-ankien-daily-production-analysis-system/internal/storage"
)

type Fetcher interface {
	FetchRange(ctx context.Context, dateFrom, dateTo string) ([]storage.ProductionRecord, error)
}

// Service sits between the handlers and the store: one memoized fetch per
// date range, everything else derived in memory from the cached rows.
type Service struct {
	fetcher Fetcher
	cache   *rangeCache
	group   singleflight.Group
}

func NewService(fetcher Fetcher, ttl time.Duration) *Service {
	return &Service{fetcher: fetcher, cache: newRangeCache(ttl)}
}

// Load returns the rows for an inclusive date range, hitting the store at
// most once per range per TTL window. Concurrent requests for the same range
// share a single fetch. An empty dateTo collapses the range to one day.
func (s *Service) Load(ctx context.Context, dateFrom, dateTo string) ([]storage.ProductionRecord, error) {
	if dateTo == "" {
		dateTo = dateFrom
	}
	key := dateFrom + ".." + dateTo

	if rows, ok := s.cache.get(key); ok {
		return rows, nil
	}

	v, err, _ := s.group.Do(key, func() (interface{}, error) {
		rows, err := s.fetcher.FetchRange(ctx, dateFrom, dateTo)
		if err != nil {
			return nil, err
		}
		s.cache.set(key, rows)
		return rows, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]storage.ProductionRecord), nil
}

// Refresh drops every memoized range so the next load re-queries the store.
func (s *Service) Refresh() {
	s.cache.clear()
}
