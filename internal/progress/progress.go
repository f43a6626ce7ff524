// file: internal/progress/progress.go
// version: 1.0.0
// guid: c3d4e5f6-a7b8-9c0d-1e2f-3a4b5c6d7e8f

// Package progress defines the coarse progress sink the curator reports to.
// Reporting is fire-and-forget: the core never depends on the sink
// succeeding or being read.
package progress

import (
	"sync/atomic"

	progressbar "github.com/schollz/progressbar/v3"
)

// Reporter receives (current, total, label) after each group or file
// completes, and exposes a cooperative cancellation flag checked at coarse
// boundaries.
type Reporter interface {
	UpdateProgress(current, total int, label string)
	IsCanceled() bool
}

// Noop discards all progress updates.
type Noop struct{}

func (Noop) UpdateProgress(current, total int, label string) {}
func (Noop) IsCanceled() bool                                { return false }

// Bar renders progress to the terminal via progressbar. Safe for use from
// one reporting goroutine at a time; the curator reports sequentially per
// batch.
type Bar struct {
	bar      *progressbar.ProgressBar
	canceled atomic.Bool
}

// NewBar creates a terminal progress bar reporter for total items.
func NewBar(total int, description string) *Bar {
	return &Bar{
		bar: progressbar.NewOptions(total,
			progressbar.OptionSetDescription(description),
			progressbar.OptionShowCount(),
			progressbar.OptionClearOnFinish(),
		),
	}
}

func (b *Bar) UpdateProgress(current, total int, label string) {
	if b.bar == nil {
		return
	}
	b.bar.Describe(label)
	_ = b.bar.Set(current)
}

// Cancel flips the cooperative cancellation flag. In-flight work runs to
// completion; new work is not started.
func (b *Bar) Cancel() { b.canceled.Store(true) }

func (b *Bar) IsCanceled() bool { return b.canceled.Load() }
