// Package runner executes domain checks on a bounded worker pool.
package runner

import (
	"context"
	"sync"
	"time"

	"hunter/pkg/domain"
	"hunter/pkg/logger"
	"hunter/pkg/serrors"

	"go.uber.org/zap"
)

// CheckFunc resolves the status of a single fully qualified domain name.
type CheckFunc func(ctx context.Context, fqdn string) domain.Status

// Run fans the tasks out to concurrency workers, calling check for each one.
// After finishing a check every worker sleeps for delay before pulling the
// next task, which keeps the request rate towards registries polite. Results
// come back in completion order. Run returns early when ctx is cancelled,
// with the results gathered so far.
func Run(ctx context.Context, tasks []domain.CheckTask, check CheckFunc, concurrency int, delay time.Duration) ([]domain.CheckResult, error) {
	if concurrency < 1 {
		return nil, serrors.With(serrors.ErrBadRequest, "concurrency must be at least 1, got %d", concurrency)
	}

	taskCh := make(chan domain.CheckTask)
	resultCh := make(chan domain.CheckResult)

	var wg sync.WaitGroup
	for i := 0; i < concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker(ctx, taskCh, resultCh, check, delay)
		}()
	}

	go func() {
		defer close(taskCh)
		for _, task := range tasks {
			select {
			case taskCh <- task:
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		close(resultCh)
	}()

	results := make([]domain.CheckResult, 0, len(tasks))
	for result := range resultCh {
		results = append(results, result)
	}

	return results, nil
}

func worker(ctx context.Context, taskCh <-chan domain.CheckTask, resultCh chan<- domain.CheckResult, check CheckFunc, delay time.Duration) {
	for task := range taskCh {
		started := time.Now()
		status := check(ctx, task.Domain)
		elapsed := time.Since(started)

		logger.Debug(ctx, "checked domain",
			zap.String("domain", task.Domain),
			zap.String("status", string(status)),
			zap.Duration("elapsed", elapsed))

		resultCh <- domain.CheckResult{
			Base:    task.Base,
			Domain:  task.Domain,
			Status:  status,
			Elapsed: elapsed,
		}

		if delay > 0 {
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return
			}
		}
	}
}
