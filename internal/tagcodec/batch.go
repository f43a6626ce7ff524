// file: internal/tagcodec/batch.go
// version: 1.1.0
// guid: 7c8d9e0f-1a2b-3c4d-5e6f-7a8b9c0d1e2f

package tagcodec

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/jdfalk/audiobook-curator/internal/metrics"
	"github.com/jdfalk/audiobook-curator/internal/models"
	"github.com/jdfalk/audiobook-curator/internal/progress"
)

// DefaultWorkers bounds batch write concurrency when unconfigured.
const DefaultWorkers = 10

// GroupFunc is a side effect run at most once per book group during a
// batch, e.g. caching extracted cover bytes.
type GroupFunc func(ctx context.Context, group *models.BookGroup) error

// Batch writes tag changes across many book groups with a bounded worker
// pool. Files of one group may be written by different workers
// concurrently; the OnGroup side effect still runs at most once per group.
type Batch struct {
	Writer   *Writer
	Read     ReadFunc
	Workers  int
	Progress progress.Reporter
	OnGroup  GroupFunc
}

type writeJob struct {
	group *models.BookGroup
	file  *models.AudioFile
}

// Run diffs and writes every member file of every group. Per-item failures
// are aggregated; the call itself only errors when cancelled before start.
func (b *Batch) Run(ctx context.Context, groups []*models.BookGroup) (models.BatchResult, error) {
	reporter := b.Progress
	if reporter == nil {
		reporter = progress.Noop{}
	}
	if err := ctx.Err(); err != nil {
		return models.BatchResult{}, fmt.Errorf("batch cancelled before start: %w", err)
	}
	if reporter.IsCanceled() {
		return models.BatchResult{}, fmt.Errorf("batch cancelled before start")
	}

	var jobs []writeJob
	for _, group := range groups {
		for _, file := range group.Files {
			jobs = append(jobs, writeJob{group: group, file: file})
		}
	}
	total := len(jobs)

	workers := b.Workers
	if workers <= 0 {
		workers = DefaultWorkers
	}
	if workers > total {
		workers = total
	}

	var (
		mu     sync.Mutex
		result models.BatchResult
		done   int
		// Once-per-group side-effect guard: whichever file task first
		// observes the group as unprocessed performs the side effect.
		groupDone = make(map[string]bool)
	)

	jobCh := make(chan writeJob)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobCh {
				// Cooperative cancellation: in-flight work completes, queued
				// work is skipped but still counted.
				if ctx.Err() != nil || reporter.IsCanceled() {
					mu.Lock()
					result.Skipped++
					done++
					current := done
					mu.Unlock()
					reporter.UpdateProgress(current, total, job.file.Name)
					continue
				}
				b.runGroupOnce(ctx, job.group, &mu, groupDone)
				err := b.writeOne(job)

				mu.Lock()
				if err != nil {
					result.Failed++
					result.Failures = append(result.Failures, models.WriteFailure{
						Path:   job.file.Path,
						Reason: err.Error(),
					})
				} else {
					result.Succeeded++
				}
				done++
				current := done
				mu.Unlock()
				reporter.UpdateProgress(current, total, job.file.Name)
			}
		}()
	}
	for _, job := range jobs {
		jobCh <- job
	}
	close(jobCh)
	wg.Wait()

	return result, nil
}

func (b *Batch) runGroupOnce(ctx context.Context, group *models.BookGroup, mu *sync.Mutex, seen map[string]bool) {
	mu.Lock()
	first := !seen[group.ID]
	seen[group.ID] = true
	mu.Unlock()
	if !first || b.OnGroup == nil {
		return
	}
	// No retry or rollback if this file's write later fails.
	if err := b.OnGroup(ctx, group); err != nil {
		log.Printf("[WARN] tagcodec: group side effect failed for %s: %v", group.Name, err)
	}
}

func (b *Batch) writeOne(job writeJob) error {
	changes, err := DiffTags(b.Read, job.file.Path, &job.group.Metadata)
	if err != nil {
		job.file.Status = models.FileFailed
		job.file.WriteErr = err.Error()
		metrics.IncFilesFailed()
		return err
	}
	job.file.Changes = changes
	if len(changes) == 0 {
		job.file.Status = models.FileUnchanged
		return nil
	}

	start := time.Now()
	if err := b.Writer.Write(job.file.Path, &job.group.Metadata, changes); err != nil {
		job.file.Status = models.FileFailed
		job.file.WriteErr = err.Error()
		metrics.IncFilesFailed()
		return err
	}
	metrics.ObserveWriteDuration(time.Since(start))
	metrics.IncFilesWritten()
	job.file.Status = models.FileWritten
	return nil
}
