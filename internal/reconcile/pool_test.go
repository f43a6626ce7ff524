// file: internal/reconcile/pool_test.go
// version: 1.0.0
// guid: 6c7d8e9f-0a1b-2c3d-4e5f-6a7b8c9d0e20

package reconcile

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/jdfalk/audiobook-curator/internal/models"
	"github.com/jdfalk/audiobook-curator/internal/sources"
)

// countingTags counts concurrent readers to verify pooled execution stays
// within bounds.
type countingTags struct {
	mu      sync.Mutex
	active  int
	maxSeen int
}

func (c *countingTags) Read(path string) (sources.EmbeddedTags, error) {
	c.mu.Lock()
	c.active++
	if c.active > c.maxSeen {
		c.maxSeen = c.active
	}
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		c.active--
		c.mu.Unlock()
	}()
	return sources.EmbeddedTags{Title: "Pooled", Artist: "Worker Test"}, nil
}

func TestReconcileAll(t *testing.T) {
	tags := &countingTags{}
	r := &Reconciler{Tags: tags}

	groups := make([]*models.BookGroup, 20)
	for i := range groups {
		groups[i] = newGroup(fmt.Sprintf("Book %02d", i))
	}

	var mu sync.Mutex
	updates := 0
	reporter := &recordingReporter{onUpdate: func() {
		mu.Lock()
		updates++
		mu.Unlock()
	}}

	failed, err := ReconcileAll(context.Background(), r, groups, 4, reporter)
	if err != nil {
		t.Fatalf("ReconcileAll failed: %v", err)
	}
	if failed != 0 {
		t.Errorf("failed = %d", failed)
	}
	for _, g := range groups {
		if g.State != models.StateReconciled {
			t.Errorf("group %s state = %v", g.Name, g.State)
		}
	}
	if tags.maxSeen > 4 {
		t.Errorf("observed %d concurrent tasks, worker bound is 4", tags.maxSeen)
	}
	mu.Lock()
	defer mu.Unlock()
	if updates != len(groups) {
		t.Errorf("progress updates = %d, want one per group", updates)
	}
}

func TestReconcileAllCancelledBeforeStart(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	r := &Reconciler{Tags: fakeTags{}}
	if _, err := ReconcileAll(ctx, r, nil, 2, nil); err == nil {
		t.Fatal("cancelled-before-start must error")
	}
}

type recordingReporter struct {
	onUpdate func()
}

func (r *recordingReporter) UpdateProgress(current, total int, label string) {
	if r.onUpdate != nil {
		r.onUpdate()
	}
}

func (r *recordingReporter) IsCanceled() bool { return false }
