// file: internal/metrics/metrics.go
// version: 2.0.0
// guid: 9f8e7d6c-5b4a-3210-9fed-cba876543210

package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce sync.Once

	groupsReconciled = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "audiobook_curator",
		Name:      "groups_reconciled_total",
		Help:      "Total number of book groups reconciled to canonical metadata",
	})
	cacheHits = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "audiobook_curator",
		Name:      "reconcile_cache_hits_total",
		Help:      "Total number of reconciliations short-circuited by a cache hit",
	})
	sourceFailures = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "audiobook_curator",
		Name:      "source_failures_total",
		Help:      "Total number of metadata source failures by source name",
	}, []string{"source"})
	filesWritten = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "audiobook_curator",
		Name:      "files_written_total",
		Help:      "Total number of audio files with tags successfully written",
	})
	filesFailed = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "audiobook_curator",
		Name:      "files_failed_total",
		Help:      "Total number of audio file tag writes that failed",
	})
	writeDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "audiobook_curator",
		Name:      "file_write_duration_seconds",
		Help:      "Histogram of per-file tag write durations in seconds",
		Buckets:   prometheus.ExponentialBuckets(0.05, 1.6, 10),
	})
)

// Register initializes metrics with the global Prometheus registry (idempotent)
func Register() {
	registerOnce.Do(func() {
		prometheus.MustRegister(groupsReconciled, cacheHits, sourceFailures,
			filesWritten, filesFailed, writeDuration)
	})
}

func IncGroupsReconciled()           { groupsReconciled.Inc() }
func IncCacheHits()                  { cacheHits.Inc() }
func IncSourceFailure(source string) { sourceFailures.WithLabelValues(source).Inc() }
func IncFilesWritten()               { filesWritten.Inc() }
func IncFilesFailed()                { filesFailed.Inc() }
func ObserveWriteDuration(d time.Duration) {
	writeDuration.Observe(d.Seconds())
}
