// file: internal/reconcile/pool.go
// version: 1.0.0
// guid: 3f4a5b6c-7d8e-9f0a-1b2c-3d4e5f6a7b8c

package reconcile

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/jdfalk/audiobook-curator/internal/models"
	"github.com/jdfalk/audiobook-curator/internal/progress"
)

// DefaultWorkers bounds reconciliation concurrency when unconfigured.
const DefaultWorkers = 10

// ReconcileAll reconciles every group with a bounded worker pool.
// Cancellation is checked before launching each group's task; a started
// task runs to completion. Per-group failures are logged and counted, not
// propagated; the call errors only when cancelled before start.
func ReconcileAll(ctx context.Context, r *Reconciler, groups []*models.BookGroup, workers int, reporter progress.Reporter) (int, error) {
	if reporter == nil {
		reporter = progress.Noop{}
	}
	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("reconcile cancelled before start: %w", err)
	}
	if reporter.IsCanceled() {
		return 0, fmt.Errorf("reconcile cancelled before start")
	}
	if workers < 1 {
		workers = DefaultWorkers
	}

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		done      int
		failed    int
		semaphore = make(chan struct{}, workers)
	)
	total := len(groups)

	for _, group := range groups {
		if ctx.Err() != nil || reporter.IsCanceled() {
			break
		}
		wg.Add(1)
		go func(g *models.BookGroup) {
			defer wg.Done()
			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			if err := r.Reconcile(ctx, g); err != nil {
				log.Printf("[ERROR] reconcile: %s failed: %v", g.Name, err)
				mu.Lock()
				failed++
				mu.Unlock()
			}

			mu.Lock()
			done++
			current := done
			mu.Unlock()
			reporter.UpdateProgress(current, total, g.Name)
		}(group)
	}
	wg.Wait()

	return failed, nil
}
