package directory

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// fanOut runs op once per id with bounded concurrency and waits for all of
// them. Every id is attempted even after a failure; completed writes are
// kept. The returned error is the first failure, if any.
func (s *Service) fanOut(ctx context.Context, ids []uuid.UUID, op func(ctx context.Context, id uuid.UUID) error) (*BulkResult, error) {
	limit := s.cfg.BulkConcurrency
	if limit <= 0 {
		limit = 1
	}

	var (
		g      errgroup.Group
		mu     sync.Mutex
		failed = make([]error, len(ids))
	)
	g.SetLimit(limit)

	for i, id := range ids {
		g.Go(func() error {
			if err := op(ctx, id); err != nil {
				mu.Lock()
				failed[i] = err
				mu.Unlock()
				return fmt.Errorf("client %s: %w", id, err)
			}
			return nil
		})
	}
	err := g.Wait()

	result := &BulkResult{Requested: len(ids)}
	for i, id := range ids {
		if failed[i] != nil {
			result.Failures = append(result.Failures, BulkFailure{ID: id, Error: failed[i].Error()})
			continue
		}
		result.Succeeded++
	}
	return result, err
}
